package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/jewel_ledger/internal/apperrors"
	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	"github.com/SscSPs/jewel_ledger/internal/core/services"
	"github.com/SscSPs/jewel_ledger/internal/dto"
	"github.com/SscSPs/jewel_ledger/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderFixture(t *testing.T) (*MockAuditRecorder, func() time.Time, *memory.Store) {
	t.Helper()
	audit := new(MockAuditRecorder)
	audit.On("Record", mock.Anything, mock.Anything).Return(nil)
	return audit, func() time.Time { return fixedNow }, memory.NewStore()
}

func TestOrderService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	audit, clock, store := newOrderFixture(t)
	repos := store.Provider(memory.NewSequence())
	svc := services.NewOrderService(repos.OrderRepo, repos.TxManager, audit, clock)

	order, err := svc.CreateOrder(ctx, testShop, dto.CreateOrderRequest{OrderNumber: "ORD-7", CustomerID: customerID, TotalAmount: dec(2500)}, testActor)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderDraft, order.Status)
	assert.True(t, order.Payment.DueAmount.Equal(dec(2500)))
	assert.Equal(t, domain.SettlementUnpaid, order.Payment.PaymentStatus)

	path := []domain.OrderStatus{
		domain.OrderConfirmed, domain.OrderInProgress, domain.OrderOnHold, domain.OrderInProgress,
		domain.OrderQualityCheck, domain.OrderReady, domain.OrderDelivered, domain.OrderCompleted,
	}
	for _, next := range path {
		order, err = svc.UpdateOrderStatus(ctx, testShop, order.OrderID, next, testActor)
		require.NoError(t, err, "moving to %s", next)
		assert.Equal(t, next, order.Status)
	}
	require.NotNil(t, order.ActualStartDate)
	require.NotNil(t, order.ActualCompletionDate)
	assert.Equal(t, fixedNow, *order.ActualCompletionDate)

	_, err = svc.UpdateOrderStatus(ctx, testShop, order.OrderID, domain.OrderCancelled, testActor)
	assert.ErrorIs(t, err, apperrors.ErrConflict, "completed is terminal")

	last := audit.lastEvent()
	assert.Equal(t, services.ActionOrderStatusUpdated, last.Action)
	assert.Equal(t, "delivered", last.Metadata["from_status"])
}

func TestOrderService_Errors(t *testing.T) {
	ctx := context.Background()
	audit, clock, store := newOrderFixture(t)
	repos := store.Provider(memory.NewSequence())
	svc := services.NewOrderService(repos.OrderRepo, repos.TxManager, audit, clock)

	tests := []struct {
		name string
		req  dto.CreateOrderRequest
	}{
		{"missing number", dto.CreateOrderRequest{CustomerID: customerID, TotalAmount: dec(1)}},
		{"missing customer", dto.CreateOrderRequest{OrderNumber: "ORD-1", TotalAmount: dec(1)}},
		{"negative total", dto.CreateOrderRequest{OrderNumber: "ORD-1", CustomerID: customerID, TotalAmount: dec(-1)}},
		{"sub-cent total", dto.CreateOrderRequest{OrderNumber: "ORD-1", CustomerID: customerID, TotalAmount: decimal.RequireFromString("99.999")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateOrder(ctx, testShop, tt.req, testActor)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}

	order, err := svc.CreateOrder(ctx, testShop, dto.CreateOrderRequest{OrderNumber: "ORD-1", CustomerID: customerID, TotalAmount: dec(100)}, testActor)
	require.NoError(t, err)

	_, err = svc.UpdateOrderStatus(ctx, testShop, order.OrderID, domain.OrderReady, testActor)
	var te *domain.InvalidTransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "order", te.Entity)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	_, err = svc.UpdateOrderStatus(ctx, testShop, order.OrderID, "shipped", testActor)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.UpdateOrderStatus(ctx, testShop, "missing", domain.OrderConfirmed, testActor)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.GetOrder(ctx, "other-shop", order.OrderID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	got, err := svc.GetOrder(ctx, testShop, order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderDraft, got.Status, "failed transitions leave the order untouched")
}

func TestPartyAndReferenceServices(t *testing.T) {
	ctx := context.Background()
	_, clock, store := newOrderFixture(t)
	repos := store.Provider(memory.NewSequence())
	parties := services.NewPartyService(repos.PartyRepo, clock)
	refs := services.NewReferenceService(repos.ReferenceRepo, clock)

	p, err := parties.CreateParty(ctx, testShop, dto.CreatePartyRequest{PartyType: domain.PartySupplier, Name: "Karigar Works", OpeningBalance: dec(-1200)}, testActor)
	require.NoError(t, err)
	assert.NotEmpty(t, p.PartyID)

	got, err := parties.GetParty(ctx, testShop, domain.PartySupplier, p.PartyID)
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(dec(-1200)))

	_, err = parties.CreateParty(ctx, testShop, dto.CreatePartyRequest{PartyID: p.PartyID, PartyType: domain.PartySupplier, Name: "Again"}, testActor)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	_, err = parties.CreateParty(ctx, testShop, dto.CreatePartyRequest{PartyType: domain.PartyOther, Name: "Walk-in"}, testActor)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = parties.CreateParty(ctx, testShop, dto.CreatePartyRequest{PartyType: domain.PartyCustomer, Name: "Meera", OpeningBalance: decimal.RequireFromString("10.555")}, testActor)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = parties.GetParty(ctx, testShop, domain.PartyCustomer, p.PartyID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "party type is part of the key")

	doc, err := refs.CreateReference(ctx, testShop, dto.CreateReferenceRequest{ReferenceType: domain.ReferenceSale, Number: "INV-42", TotalAmount: dec(999)}, testActor)
	require.NoError(t, err)
	assert.Equal(t, domain.SettlementUnpaid, doc.Payment.PaymentStatus)

	_, err = refs.CreateReference(ctx, testShop, dto.CreateReferenceRequest{ReferenceType: domain.ReferenceSale, Number: "INV-43", TotalAmount: decimal.RequireFromString("0.005")}, testActor)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = refs.CreateReference(ctx, testShop, dto.CreateReferenceRequest{ReferenceType: domain.ReferenceOrder, Number: "ORD-1"}, testActor)
	assert.ErrorIs(t, err, apperrors.ErrValidation, "orders are created by the order service")
	_, err = refs.GetReference(ctx, testShop, domain.ReferenceNone, "x")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = refs.GetReference(ctx, testShop, domain.ReferencePurchase, doc.DocumentID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
