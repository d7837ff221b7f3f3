package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/jewel_ledger/internal/apperrors"
	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// referenceUpdater moves a reference document's paid amount. It performs no idempotency
// check; callers guard with the payment's applied flags.
type referenceUpdater struct {
	BaseService
}

func referenceTarget(ref *domain.Reference) string {
	return fmt.Sprintf("%s:%s", ref.ReferenceType, ref.ReferenceID)
}

// apply adds delta to the document's paid amount inside the caller's transaction.
// A missing document yields a skipped outcome, not an error.
func (u *referenceUpdater) apply(ctx context.Context, repos portsrepo.TxRepositories, shopID string, ref *domain.Reference, delta decimal.Decimal, actorID string, now time.Time) (domain.EffectOutcome, error) {
	out := domain.EffectOutcome{Kind: domain.EffectReference, Target: referenceTarget(ref), Delta: delta}

	doc, err := repos.References.FindReferenceForUpdate(ctx, shopID, ref.ReferenceType, ref.ReferenceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			u.GetLogger(ctx).Warn("Reference document not found, effect skipped",
				slog.String("shop_id", shopID),
				slog.String("reference", out.Target))
			out.Skipped = true
			out.Reason = "reference document not found"
			return out, nil
		}
		return out, fmt.Errorf("failed to load reference %s: %w", out.Target, err)
	}

	if doc.Payment.PaidAmount.Add(delta).IsNegative() {
		return out, fmt.Errorf("%w: reference %s paid amount %s cannot absorb %s",
			apperrors.ErrUnprocessable, out.Target, doc.Payment.PaidAmount, delta)
	}

	doc.Payment.ApplyDelta(delta)
	doc.Touch(actorID, now)
	if err := repos.References.UpdateReferencePayment(ctx, *doc); err != nil {
		return out, fmt.Errorf("failed to update reference %s: %w", out.Target, err)
	}

	out.Applied = true
	return out, nil
}
