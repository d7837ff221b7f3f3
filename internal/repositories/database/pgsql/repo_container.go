package pgsql

import (
	portsrepo "github.com/SscSPs/jewel_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the PostgreSQL repositories. seq may be nil, in which case the
// payment_sequences table hands out payment numbers.
func NewRepositoryProvider(dbPool *pgxpool.Pool, seq portsrepo.PaymentNumberSequence) portsrepo.RepositoryProvider {
	if seq == nil {
		seq = newPgxSequenceRepository(dbPool)
	}
	return portsrepo.RepositoryProvider{
		PaymentRepo:   newPgxPaymentRepository(dbPool),
		ReferenceRepo: newPgxReferenceRepository(dbPool),
		PartyRepo:     newPgxPartyRepository(dbPool),
		OrderRepo:     newPgxOrderRepository(dbPool),
		Sequence:      seq,
		TxManager:     newPgxTxManager(dbPool),
	}
}
