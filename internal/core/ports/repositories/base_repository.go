package repositories

import (
	"context"
)

// TxRepositories are the repositories bound to a single unit of work. Reads made through
// them see the transaction's own writes, and the *ForUpdate finders lock what they return
// until the transaction ends.
type TxRepositories struct {
	Payments   PaymentRepositoryFacade
	References ReferenceRepository
	Parties    PartyRepository
	Orders     OrderRepositoryFacade
}

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// RunInTx runs fn inside one transaction. The transaction commits when fn returns nil
	// and rolls back otherwise; fn's error is returned unchanged.
	RunInTx(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error
}
