package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/jewel_ledger/internal/apperrors"
	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/jewel_ledger/internal/dto"
)

// RefundPayment creates a completed compensating payment in the opposite direction, applies
// its effects like any other payment and moves the original to refunded.
func (s *paymentService) RefundPayment(ctx context.Context, shopID, paymentID string, req dto.RefundPaymentRequest, actorID string) (*domain.RefundOutcome, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: refund amount must be greater than zero", apperrors.ErrValidation)
	}
	if err := validateMoney("amount", req.Amount); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Reason) == "" {
		return nil, fmt.Errorf("%w: refund reason is required", apperrors.ErrValidation)
	}
	if req.PaymentMode != "" && !req.PaymentMode.IsValid() {
		return nil, fmt.Errorf("%w: invalid payment mode %q", apperrors.ErrValidation, req.PaymentMode)
	}

	// Check before allocating a number; the check is repeated under the row lock.
	original, err := s.paymentRepo.FindPaymentByID(ctx, shopID, paymentID)
	if err != nil {
		return nil, err
	}
	if err := validateRefundable(original, req); err != nil {
		return nil, err
	}

	number, err := s.nextPaymentNumber(ctx, shopID)
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate refund number", slog.String("shop_id", shopID))
		return nil, err
	}

	now := s.Now()
	var result *domain.RefundOutcome
	err = s.txManager.RunInTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		original, err := repos.Payments.FindPaymentByIDForUpdate(ctx, shopID, paymentID)
		if err != nil {
			return err
		}
		if err := validateRefundable(original, req); err != nil {
			return err
		}

		mode := req.PaymentMode
		if mode == "" {
			mode = original.PaymentMode
		}
		refund := domain.Payment{
			PaymentID:       uuid.NewString(),
			ShopID:          shopID,
			PaymentNumber:   number,
			Amount:          req.Amount,
			TransactionType: original.TransactionType.Flip(),
			PaymentMode:     mode,
			PaymentDate:     now,
			Party:           original.Party,
			Reference:       original.Reference,
			Status:          domain.PaymentCompleted,
			Approval:        domain.Approval{ApprovalStatus: domain.ApprovalApproved, ApprovedBy: actorID, ApprovedAt: &now},
			Refund: &domain.RefundInfo{
				IsRefund:          true,
				OriginalPaymentID: original.PaymentID,
				RefundReason:      req.Reason,
				RefundedBy:        actorID,
			},
			AuditFields: domain.NewAuditFields(actorID, now),
		}

		effects, err := s.applyEffects(ctx, repos, &refund, actorID, now)
		if err != nil {
			return err
		}
		if err := repos.Payments.SavePayment(ctx, refund); err != nil {
			return fmt.Errorf("failed to save refund: %w", err)
		}

		if err := original.TransitionTo(domain.PaymentRefunded); err != nil {
			return err
		}
		original.Touch(actorID, now)
		if err := repos.Payments.UpdatePayment(ctx, *original); err != nil {
			return fmt.Errorf("failed to update original payment: %w", err)
		}

		result = &domain.RefundOutcome{
			Refund:   &domain.PaymentOutcome{Payment: &refund, Effects: effects},
			Original: original,
		}
		return nil
	})
	if err != nil {
		if !isClientError(err) {
			s.LogError(ctx, err, "Failed to refund payment", slog.String("payment_id", paymentID))
		}
		return nil, err
	}

	refund := result.Refund.Payment
	s.LogInfo(ctx, "Payment refunded",
		slog.String("payment_id", paymentID),
		slog.String("refund_payment_id", refund.PaymentID),
		slog.String("amount", refund.Amount.String()))
	event := paymentEvent(ActionPaymentRefunded, actorID,
		fmt.Sprintf("Payment %s refunded %s by %s: %s", result.Original.PaymentNumber, refund.Amount, refund.PaymentNumber, req.Reason),
		refund, result.Refund.Effects)
	event.Metadata["original_payment_id"] = result.Original.PaymentID
	s.Emit(ctx, event)

	return result, nil
}
