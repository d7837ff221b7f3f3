package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReferenceRepository is the port to the sales, purchases and orders that payments settle.
// Documents of another shop are reported as not found.
type ReferenceRepository interface {
	// FindReference retrieves the payment view of a document.
	FindReference(ctx context.Context, shopID string, refType domain.ReferenceType, refID string) (*domain.ReferenceDocument, error)

	// FindReferenceForUpdate is FindReference that also locks the document.
	FindReferenceForUpdate(ctx context.Context, shopID string, refType domain.ReferenceType, refID string) (*domain.ReferenceDocument, error)

	// UpdateReferencePayment persists the document's payment summary.
	UpdateReferencePayment(ctx context.Context, doc domain.ReferenceDocument) error

	// SaveReference registers a sale or purchase document.
	SaveReference(ctx context.Context, doc domain.ReferenceDocument) error
}

// PartyRepository is the port to customer and supplier balances.
type PartyRepository interface {
	// FindParty retrieves a customer or supplier of a shop.
	FindParty(ctx context.Context, shopID string, partyType domain.PartyType, partyID string) (*domain.PartyAccount, error)

	// FindPartyForUpdate is FindParty that also locks the party.
	FindPartyForUpdate(ctx context.Context, shopID string, partyType domain.PartyType, partyID string) (*domain.PartyAccount, error)

	// AdjustPartyBalance adds delta to the party's balance.
	AdjustPartyBalance(ctx context.Context, shopID string, partyType domain.PartyType, partyID string, delta decimal.Decimal, userID string, now time.Time) error

	// SaveParty registers a customer or supplier.
	SaveParty(ctx context.Context, party domain.PartyAccount) error
}
