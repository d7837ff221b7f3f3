package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/jewel_ledger/internal/apperrors"
	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger/internal/core/ports/repositories"
)

// ClearCheque marks a pending cheque cleared, completes the payment and applies the
// deferred balance effect once.
func (s *paymentService) ClearCheque(ctx context.Context, shopID, paymentID string, clearanceDate *time.Time, actorID string) (*domain.PaymentOutcome, error) {
	outcome, err := s.mutate(ctx, shopID, paymentID, actorID, func(ctx context.Context, repos portsrepo.TxRepositories, p *domain.Payment, now time.Time) ([]domain.EffectOutcome, error) {
		return s.clearInTx(ctx, repos, p, clearanceDate, actorID, now)
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Cheque cleared", slog.String("payment_id", paymentID))
	s.Emit(ctx, paymentEvent(ActionChequeCleared, actorID,
		fmt.Sprintf("Cheque %s on payment %s cleared", outcome.Payment.Details.Cheque.ChequeNumber, outcome.Payment.PaymentNumber),
		outcome.Payment, outcome.Effects))
	return outcome, nil
}

// BounceCheque marks a pending cheque bounced, fails the payment and reverses whatever it
// had applied. A balance effect that was never applied is not touched.
func (s *paymentService) BounceCheque(ctx context.Context, shopID, paymentID, reason, actorID string) (*domain.PaymentOutcome, error) {
	outcome, err := s.mutate(ctx, shopID, paymentID, actorID, func(ctx context.Context, repos portsrepo.TxRepositories, p *domain.Payment, now time.Time) ([]domain.EffectOutcome, error) {
		return s.bounceInTx(ctx, repos, p, reason, actorID, now)
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Cheque bounced", slog.String("payment_id", paymentID), slog.String("reason", reason))
	event := paymentEvent(ActionChequeBounced, actorID,
		fmt.Sprintf("Cheque %s on payment %s bounced: %s", outcome.Payment.Details.Cheque.ChequeNumber, outcome.Payment.PaymentNumber, reason),
		outcome.Payment, outcome.Effects)
	event.Severity = domain.SeverityWarning
	s.Emit(ctx, event)
	return outcome, nil
}

// pendingCheque returns the cheque of p if it can still be cleared or bounced.
func pendingCheque(p *domain.Payment) (*domain.ChequeDetails, error) {
	if !p.IsCheque() || p.Details.Cheque == nil {
		return nil, fmt.Errorf("%w: payment %s is not a cheque payment", apperrors.ErrValidation, p.PaymentNumber)
	}
	cheque := p.Details.Cheque
	if cheque.ChequeStatus != domain.ChequePending {
		return nil, fmt.Errorf("%w: cheque is already %s", apperrors.ErrConflict, cheque.ChequeStatus)
	}
	return cheque, nil
}

func (s *paymentService) clearInTx(ctx context.Context, repos portsrepo.TxRepositories, p *domain.Payment, clearanceDate *time.Time, actorID string, now time.Time) ([]domain.EffectOutcome, error) {
	cheque, err := pendingCheque(p)
	if err != nil {
		return nil, err
	}
	if err := p.TransitionTo(domain.PaymentCompleted); err != nil {
		return nil, err
	}

	cleared := now
	if clearanceDate != nil {
		cleared = clearanceDate.UTC()
	}
	cheque.ChequeStatus = domain.ChequeCleared
	cheque.ClearanceDate = &cleared

	return s.applyEffects(ctx, repos, p, actorID, now)
}

func (s *paymentService) bounceInTx(ctx context.Context, repos portsrepo.TxRepositories, p *domain.Payment, reason, actorID string, now time.Time) ([]domain.EffectOutcome, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: bounce reason is required", apperrors.ErrValidation)
	}
	cheque, err := pendingCheque(p)
	if err != nil {
		return nil, err
	}
	if err := p.TransitionTo(domain.PaymentFailed); err != nil {
		return nil, err
	}

	cheque.ChequeStatus = domain.ChequeBounced
	cheque.BounceReason = reason

	return s.reverseEffects(ctx, repos, p, actorID, now)
}
