package pgsql

import (
	"context"

	"github.com/SscSPs/jewel_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/jewel_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSequenceRepository allocates payment numbers from the payment_sequences table. Each call
// commits on its own, so a rolled-back payment leaves a gap.
type PgxSequenceRepository struct {
	BaseRepository
}

func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.PaymentNumberSequence {
	return &PgxSequenceRepository{BaseRepository: newBaseRepository(pool)}
}

var _ portsrepo.PaymentNumberSequence = (*PgxSequenceRepository)(nil)

func (r *PgxSequenceRepository) NextPaymentSequence(ctx context.Context, shopID string) (int64, error) {
	query := `
		INSERT INTO payment_sequences (shop_id, last_value)
		VALUES ($1, 1)
		ON CONFLICT (shop_id) DO UPDATE SET last_value = payment_sequences.last_value + 1
		RETURNING last_value;
	`
	var next int64
	if err := r.Pool.QueryRow(ctx, query, shopID).Scan(&next); err != nil {
		return 0, apperrors.NewAppError(500, "failed to allocate payment sequence for shop "+shopID, err)
	}
	return next, nil
}
