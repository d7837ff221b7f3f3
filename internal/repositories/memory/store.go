// Package memory is an in-process implementation of the repository ports. One mutex guards
// all state; RunInTx holds it for the whole unit of work and restores a snapshot on error.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type refKey struct {
	shopID string
	typ    domain.ReferenceType
	id     string
}

type partyKey struct {
	shopID string
	typ    domain.PartyType
	id     string
}

// state holds stored values. Entries are replaced, never mutated in place, so a copy of
// the maps is a consistent snapshot.
type state struct {
	payments   map[string]domain.Payment
	references map[refKey]domain.ReferenceDocument
	orders     map[string]domain.Order
	parties    map[partyKey]domain.PartyAccount
}

func newState() *state {
	return &state{
		payments:   make(map[string]domain.Payment),
		references: make(map[refKey]domain.ReferenceDocument),
		orders:     make(map[string]domain.Order),
		parties:    make(map[partyKey]domain.PartyAccount),
	}
}

func (st *state) snapshot() *state {
	cp := newState()
	for k, v := range st.payments {
		cp.payments[k] = v
	}
	for k, v := range st.references {
		cp.references[k] = v
	}
	for k, v := range st.orders {
		cp.orders[k] = v
	}
	for k, v := range st.parties {
		cp.parties[k] = v
	}
	return cp
}

// Store is the in-memory repository set.
type Store struct {
	mu sync.Mutex
	st *state
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{st: newState()}
}

var (
	_ portsrepo.PaymentRepositoryFacade = (*Store)(nil)
	_ portsrepo.ReferenceRepository     = (*Store)(nil)
	_ portsrepo.PartyRepository         = (*Store)(nil)
	_ portsrepo.OrderRepositoryFacade   = (*Store)(nil)
	_ portsrepo.TransactionManager      = (*Store)(nil)
)

// Provider wires the store and the given sequence into a RepositoryProvider.
func (s *Store) Provider(seq portsrepo.PaymentNumberSequence) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PaymentRepo:   s,
		ReferenceRepo: s,
		PartyRepo:     s,
		OrderRepo:     s,
		Sequence:      seq,
		TxManager:     s,
	}
}

// RunInTx runs fn with exclusive access to the store. State is restored if fn fails.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	saved := s.st.snapshot()
	v := &view{st: s.st}
	repos := portsrepo.TxRepositories{Payments: v, References: v, Parties: v, Orders: v}
	if err := fn(ctx, repos); err != nil {
		s.st = saved
		return err
	}
	return nil
}

func (s *Store) locked() (*view, func()) {
	s.mu.Lock()
	return &view{st: s.st}, s.mu.Unlock
}

func (s *Store) FindPaymentByID(ctx context.Context, shopID, paymentID string) (*domain.Payment, error) {
	v, unlock := s.locked()
	defer unlock()
	return v.FindPaymentByID(ctx, shopID, paymentID)
}

func (s *Store) FindPaymentByIDForUpdate(ctx context.Context, shopID, paymentID string) (*domain.Payment, error) {
	return s.FindPaymentByID(ctx, shopID, paymentID)
}

func (s *Store) ListPayments(ctx context.Context, shopID string, filter portsrepo.PaymentListFilter, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	v, unlock := s.locked()
	defer unlock()
	return v.ListPayments(ctx, shopID, filter, limit, nextToken)
}

func (s *Store) SavePayment(ctx context.Context, payment domain.Payment) error {
	v, unlock := s.locked()
	defer unlock()
	return v.SavePayment(ctx, payment)
}

func (s *Store) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	v, unlock := s.locked()
	defer unlock()
	return v.UpdatePayment(ctx, payment)
}

func (s *Store) FindReference(ctx context.Context, shopID string, refType domain.ReferenceType, refID string) (*domain.ReferenceDocument, error) {
	v, unlock := s.locked()
	defer unlock()
	return v.FindReference(ctx, shopID, refType, refID)
}

func (s *Store) FindReferenceForUpdate(ctx context.Context, shopID string, refType domain.ReferenceType, refID string) (*domain.ReferenceDocument, error) {
	return s.FindReference(ctx, shopID, refType, refID)
}

func (s *Store) UpdateReferencePayment(ctx context.Context, doc domain.ReferenceDocument) error {
	v, unlock := s.locked()
	defer unlock()
	return v.UpdateReferencePayment(ctx, doc)
}

func (s *Store) SaveReference(ctx context.Context, doc domain.ReferenceDocument) error {
	v, unlock := s.locked()
	defer unlock()
	return v.SaveReference(ctx, doc)
}

func (s *Store) FindParty(ctx context.Context, shopID string, partyType domain.PartyType, partyID string) (*domain.PartyAccount, error) {
	v, unlock := s.locked()
	defer unlock()
	return v.FindParty(ctx, shopID, partyType, partyID)
}

func (s *Store) FindPartyForUpdate(ctx context.Context, shopID string, partyType domain.PartyType, partyID string) (*domain.PartyAccount, error) {
	return s.FindParty(ctx, shopID, partyType, partyID)
}

func (s *Store) AdjustPartyBalance(ctx context.Context, shopID string, partyType domain.PartyType, partyID string, delta decimal.Decimal, userID string, now time.Time) error {
	v, unlock := s.locked()
	defer unlock()
	return v.AdjustPartyBalance(ctx, shopID, partyType, partyID, delta, userID, now)
}

func (s *Store) SaveParty(ctx context.Context, party domain.PartyAccount) error {
	v, unlock := s.locked()
	defer unlock()
	return v.SaveParty(ctx, party)
}

func (s *Store) FindOrderByID(ctx context.Context, shopID, orderID string) (*domain.Order, error) {
	v, unlock := s.locked()
	defer unlock()
	return v.FindOrderByID(ctx, shopID, orderID)
}

func (s *Store) FindOrderByIDForUpdate(ctx context.Context, shopID, orderID string) (*domain.Order, error) {
	return s.FindOrderByID(ctx, shopID, orderID)
}

func (s *Store) SaveOrder(ctx context.Context, order domain.Order) error {
	v, unlock := s.locked()
	defer unlock()
	return v.SaveOrder(ctx, order)
}

func (s *Store) UpdateOrder(ctx context.Context, order domain.Order) error {
	v, unlock := s.locked()
	defer unlock()
	return v.UpdateOrder(ctx, order)
}

// Sequence is an in-memory PaymentNumberSequence.
type Sequence struct {
	mu     sync.Mutex
	values map[string]int64
}

// NewSequence creates a sequence starting at 1 for every shop.
func NewSequence() *Sequence {
	return &Sequence{values: make(map[string]int64)}
}

var _ portsrepo.PaymentNumberSequence = (*Sequence)(nil)

func (q *Sequence) NextPaymentSequence(_ context.Context, shopID string) (int64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.values[shopID]++
	return q.values[shopID], nil
}
