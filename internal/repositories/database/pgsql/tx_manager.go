package pgsql

import (
	"context"

	portsrepo "github.com/SscSPs/jewel_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxTxManager runs units of work in a single pgx transaction.
type pgxTxManager struct {
	BaseRepository
}

func newPgxTxManager(pool *pgxpool.Pool) portsrepo.TransactionManager {
	return &pgxTxManager{BaseRepository: newBaseRepository(pool)}
}

var _ portsrepo.TransactionManager = (*pgxTxManager)(nil)

// RunInTx begins a transaction, hands fn repositories bound to it, and commits when fn
// succeeds. Any error rolls the whole unit back.
func (m *pgxTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}
	defer m.Rollback(ctx, tx) // No-op once committed

	base := BaseRepository{Pool: m.Pool, DB: tx}
	repos := portsrepo.TxRepositories{
		Payments:   &PgxPaymentRepository{BaseRepository: base},
		References: &PgxReferenceRepository{BaseRepository: base},
		Parties:    &PgxPartyRepository{BaseRepository: base},
		Orders:     &PgxOrderRepository{BaseRepository: base},
	}
	if err := fn(ctx, repos); err != nil {
		return err
	}
	return m.Commit(ctx, tx)
}
