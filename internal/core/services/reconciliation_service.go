package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/jewel_ledger/internal/apperrors"
	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/jewel_ledger/internal/dto"
)

// ReconcilePayment records a match between a completed payment and a statement line.
// The discrepancy is recorded only; balances are never touched.
func (s *paymentService) ReconcilePayment(ctx context.Context, shopID, paymentID string, req dto.ReconcilePaymentRequest, actorID string) (*domain.Payment, error) {
	if strings.TrimSpace(req.ReconciledWith) == "" {
		return nil, fmt.Errorf("%w: reconciledWith is required", apperrors.ErrValidation)
	}
	if err := validateMoney("discrepancy", req.Discrepancy); err != nil {
		return nil, err
	}

	outcome, err := s.mutate(ctx, shopID, paymentID, actorID, func(_ context.Context, _ portsrepo.TxRepositories, p *domain.Payment, now time.Time) ([]domain.EffectOutcome, error) {
		if p.Status != domain.PaymentCompleted {
			return nil, fmt.Errorf("%w: only completed payments can be reconciled, payment is %s", apperrors.ErrConflict, p.Status)
		}
		if p.Reconciliation.IsReconciled {
			return nil, fmt.Errorf("%w: payment is already reconciled", apperrors.ErrConflict)
		}
		p.Reconciliation = domain.Reconciliation{
			IsReconciled:   true,
			ReconciledAt:   &now,
			ReconciledBy:   actorID,
			ReconciledWith: req.ReconciledWith,
			Discrepancy:    req.Discrepancy,
			Notes:          req.Notes,
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	event := paymentEvent(ActionPaymentReconciled, actorID,
		fmt.Sprintf("Payment %s reconciled with %s", outcome.Payment.PaymentNumber, req.ReconciledWith), outcome.Payment, nil)
	event.Metadata["discrepancy"] = req.Discrepancy.String()
	if !req.Discrepancy.IsZero() {
		event.Severity = domain.SeverityWarning
	}
	s.Emit(ctx, event)
	return outcome.Payment, nil
}

// UnreconcilePayment clears the reconciliation of a reconciled payment.
func (s *paymentService) UnreconcilePayment(ctx context.Context, shopID, paymentID, actorID string) (*domain.Payment, error) {
	outcome, err := s.mutate(ctx, shopID, paymentID, actorID, func(_ context.Context, _ portsrepo.TxRepositories, p *domain.Payment, _ time.Time) ([]domain.EffectOutcome, error) {
		if !p.Reconciliation.IsReconciled {
			return nil, fmt.Errorf("%w: payment is not reconciled", apperrors.ErrConflict)
		}
		p.Reconciliation = domain.Reconciliation{}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	s.Emit(ctx, paymentEvent(ActionPaymentUnreconciled, actorID,
		fmt.Sprintf("Payment %s unreconciled", outcome.Payment.PaymentNumber), outcome.Payment, nil))
	return outcome.Payment, nil
}

// BulkReconcile reconciles each item independently. Items that cannot be reconciled are
// skipped with a reason instead of failing the batch.
func (s *paymentService) BulkReconcile(ctx context.Context, shopID string, req dto.BulkReconcileRequest, actorID string) (*dto.BulkReconcileResult, error) {
	result := &dto.BulkReconcileResult{Skipped: []dto.BulkReconcileSkip{}}

	for _, item := range req.Items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, err := s.ReconcilePayment(ctx, shopID, item.PaymentID, item.ReconcilePaymentRequest, actorID); err != nil {
			if !isClientError(err) && !errors.Is(err, context.Canceled) {
				s.LogError(ctx, err, "Bulk reconcile item failed", slog.String("payment_id", item.PaymentID))
			}
			result.Skipped = append(result.Skipped, dto.BulkReconcileSkip{PaymentID: item.PaymentID, Reason: err.Error()})
			continue
		}
		result.ReconciledCount++
	}
	result.SkippedCount = len(result.Skipped)

	s.LogInfo(ctx, "Bulk reconcile finished",
		slog.String("shop_id", shopID),
		slog.Int("reconciled", result.ReconciledCount),
		slog.Int("skipped", result.SkippedCount))
	return result, nil
}
