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

// partyBalanceStore adjusts customer and supplier balances. No floor or ceiling applies.
type partyBalanceStore struct {
	BaseService
}

func partyTarget(party domain.Party) string {
	return fmt.Sprintf("%s:%s", party.PartyType, party.PartyID)
}

// adjust adds signedDelta to the party's balance inside the caller's transaction.
// A missing party yields a skipped outcome, not an error.
func (b *partyBalanceStore) adjust(ctx context.Context, repos portsrepo.TxRepositories, shopID string, party domain.Party, signedDelta decimal.Decimal, actorID string, now time.Time) (domain.EffectOutcome, error) {
	out := domain.EffectOutcome{Kind: domain.EffectBalance, Target: partyTarget(party), Delta: signedDelta}

	if _, err := repos.Parties.FindPartyForUpdate(ctx, shopID, party.PartyType, party.PartyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			b.GetLogger(ctx).Warn("Party not found, balance effect skipped",
				slog.String("shop_id", shopID),
				slog.String("party", out.Target))
			out.Skipped = true
			out.Reason = fmt.Sprintf("%s not found", party.PartyType)
			return out, nil
		}
		return out, fmt.Errorf("failed to load party %s: %w", out.Target, err)
	}

	if err := repos.Parties.AdjustPartyBalance(ctx, shopID, party.PartyType, party.PartyID, signedDelta, actorID, now); err != nil {
		return out, fmt.Errorf("failed to adjust balance of %s: %w", out.Target, err)
	}

	out.Applied = true
	return out, nil
}
