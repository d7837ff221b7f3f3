package repositories

import (
	"context"

	"github.com/SscSPs/jewel_ledger/internal/core/domain"
)

// PaymentListFilter narrows ListPayments. Empty fields match everything.
type PaymentListFilter struct {
	Status      domain.PaymentStatus
	Mode        domain.PaymentMode
	PartyID     string
	ReferenceID string
}

// PaymentReader defines read operations for payment data. Soft-deleted payments are never returned.
type PaymentReader interface {
	// FindPaymentByID retrieves a payment of a shop. Returns apperrors.ErrNotFound when absent or deleted.
	FindPaymentByID(ctx context.Context, shopID, paymentID string) (*domain.Payment, error)

	// ListPayments returns a page of payments ordered newest first, and the token for the next page.
	ListPayments(ctx context.Context, shopID string, filter PaymentListFilter, limit int, nextToken *string) ([]domain.Payment, *string, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	// SavePayment persists a new payment. A duplicate payment number yields apperrors.ErrDuplicate.
	SavePayment(ctx context.Context, payment domain.Payment) error

	// UpdatePayment overwrites the mutable state of an existing payment.
	UpdatePayment(ctx context.Context, payment domain.Payment) error
}

// PaymentLocker defines the row-locking read used inside a transaction.
type PaymentLocker interface {
	// FindPaymentByIDForUpdate is FindPaymentByID that also locks the payment row.
	FindPaymentByIDForUpdate(ctx context.Context, shopID, paymentID string) (*domain.Payment, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
	PaymentLocker
}

// PaymentNumberSequence hands out per-shop payment sequence values. Values are unique and
// increasing per shop; gaps are allowed.
type PaymentNumberSequence interface {
	NextPaymentSequence(ctx context.Context, shopID string) (int64, error)
}
