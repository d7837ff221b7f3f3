package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/jewel_ledger/internal/apperrors"
	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger/internal/core/ports/repositories"
)

func requireApprovable(p *domain.Payment) error {
	if p.Status != domain.PaymentPending {
		return fmt.Errorf("%w: only pending payments can be approved or rejected, payment is %s", apperrors.ErrConflict, p.Status)
	}
	if p.Approval.ApprovalStatus != domain.ApprovalPending {
		return fmt.Errorf("%w: payment is already %s", apperrors.ErrConflict, p.Approval.ApprovalStatus)
	}
	return nil
}

// ApprovePayment approves a pending payment. Status is unchanged.
func (s *paymentService) ApprovePayment(ctx context.Context, shopID, paymentID, actorID string) (*domain.Payment, error) {
	outcome, err := s.mutate(ctx, shopID, paymentID, actorID, func(_ context.Context, _ portsrepo.TxRepositories, p *domain.Payment, now time.Time) ([]domain.EffectOutcome, error) {
		if err := requireApprovable(p); err != nil {
			return nil, err
		}
		p.Approval = domain.Approval{ApprovalStatus: domain.ApprovalApproved, ApprovedBy: actorID, ApprovedAt: &now}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	s.Emit(ctx, paymentEvent(ActionPaymentApproved, actorID,
		fmt.Sprintf("Payment %s approved", outcome.Payment.PaymentNumber), outcome.Payment, nil))
	return outcome.Payment, nil
}

// RejectPayment rejects a pending payment with a reason. Status is unchanged.
func (s *paymentService) RejectPayment(ctx context.Context, shopID, paymentID, reason, actorID string) (*domain.Payment, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", apperrors.ErrValidation)
	}

	outcome, err := s.mutate(ctx, shopID, paymentID, actorID, func(_ context.Context, _ portsrepo.TxRepositories, p *domain.Payment, now time.Time) ([]domain.EffectOutcome, error) {
		if err := requireApprovable(p); err != nil {
			return nil, err
		}
		p.Approval = domain.Approval{ApprovalStatus: domain.ApprovalRejected, ApprovedBy: actorID, ApprovedAt: &now, RejectionReason: reason}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	event := paymentEvent(ActionPaymentRejected, actorID,
		fmt.Sprintf("Payment %s rejected: %s", outcome.Payment.PaymentNumber, reason), outcome.Payment, nil)
	event.Severity = domain.SeverityWarning
	s.Emit(ctx, event)
	return outcome.Payment, nil
}
