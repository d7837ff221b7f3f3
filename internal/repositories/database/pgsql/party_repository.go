package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/jewel_ledger/internal/models"
	"github.com/SscSPs/jewel_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxPartyRepository struct {
	BaseRepository
}

func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepository {
	return &PgxPartyRepository{BaseRepository: newBaseRepository(pool)}
}

var _ portsrepo.PartyRepository = (*PgxPartyRepository)(nil)

func (r *PgxPartyRepository) findParty(ctx context.Context, shopID string, partyType domain.PartyType, partyID string, lock bool) (*domain.PartyAccount, error) {
	query := `
		SELECT shop_id, party_type, party_id, name, balance, created_at, created_by, last_updated_at, last_updated_by
		FROM parties
		WHERE shop_id = $1 AND party_type = $2 AND party_id = $3`
	if lock {
		query += ` FOR UPDATE`
	}

	var m models.Party
	err := r.DB.QueryRow(ctx, query, shopID, string(partyType), partyID).Scan(
		&m.ShopID,
		&m.PartyType,
		&m.PartyID,
		&m.Name,
		&m.Balance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, notFoundOr(err, fmt.Sprintf("%s %s", partyType, partyID))
	}
	party := mapping.ToDomainParty(m)
	return &party, nil
}

// FindParty retrieves a customer or supplier.
func (r *PgxPartyRepository) FindParty(ctx context.Context, shopID string, partyType domain.PartyType, partyID string) (*domain.PartyAccount, error) {
	return r.findParty(ctx, shopID, partyType, partyID, false)
}

// FindPartyForUpdate retrieves and row-locks a customer or supplier.
func (r *PgxPartyRepository) FindPartyForUpdate(ctx context.Context, shopID string, partyType domain.PartyType, partyID string) (*domain.PartyAccount, error) {
	return r.findParty(ctx, shopID, partyType, partyID, true)
}

// AdjustPartyBalance adds delta in the database so concurrent adjustments compose.
func (r *PgxPartyRepository) AdjustPartyBalance(ctx context.Context, shopID string, partyType domain.PartyType, partyID string, delta decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE parties
		SET balance = balance + $4, last_updated_at = $5, last_updated_by = $6
		WHERE shop_id = $1 AND party_type = $2 AND party_id = $3;
	`
	tag, err := r.DB.Exec(ctx, query, shopID, string(partyType), partyID, delta, now, userID)
	return requireAffected(tag, err, fmt.Sprintf("%s %s", partyType, partyID))
}

// SaveParty inserts a customer or supplier.
func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.PartyAccount) error {
	m := mapping.ToModelParty(party)
	query := `
		INSERT INTO parties (shop_id, party_type, party_id, name, balance, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.DB.Exec(ctx, query,
		m.ShopID,
		m.PartyType,
		m.PartyID,
		m.Name,
		m.Balance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return duplicateOr(err, fmt.Sprintf("%s %s", party.PartyType, party.PartyID))
	}
	return nil
}
