package services_test

import (
	"context"

	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/jewel_ledger/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuditRecorder ---
type MockAuditRecorder struct {
	mock.Mock
}

var _ portssvc.AuditRecorder = (*MockAuditRecorder)(nil)

func (m *MockAuditRecorder) Record(ctx context.Context, event domain.AuditEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// events returns the events recorded so far, in order.
func (m *MockAuditRecorder) events() []domain.AuditEvent {
	var out []domain.AuditEvent
	for _, call := range m.Calls {
		if call.Method == "Record" {
			out = append(out, call.Arguments.Get(1).(domain.AuditEvent))
		}
	}
	return out
}

func (m *MockAuditRecorder) lastEvent() domain.AuditEvent {
	events := m.events()
	if len(events) == 0 {
		return domain.AuditEvent{}
	}
	return events[len(events)-1]
}

// --- Mock PaymentNumberSequence ---
type MockSequence struct {
	mock.Mock
}

var _ portsrepo.PaymentNumberSequence = (*MockSequence)(nil)

func (m *MockSequence) NextPaymentSequence(ctx context.Context, shopID string) (int64, error) {
	args := m.Called(ctx, shopID)
	return args.Get(0).(int64), args.Error(1)
}
