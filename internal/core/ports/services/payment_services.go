package services

import (
	"context"
	"time"

	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	"github.com/SscSPs/jewel_ledger/internal/dto"
)

// PaymentReaderSvc defines read operations for payment data
type PaymentReaderSvc interface {
	// GetPayment retrieves a payment of a shop. Deleted payments are not found.
	GetPayment(ctx context.Context, shopID, paymentID string) (*domain.Payment, error)

	// ListPayments retrieves a page of payments, newest first.
	ListPayments(ctx context.Context, shopID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error)
}

// PaymentLedgerSvc defines the payment lifecycle operations. Every call runs in one
// transaction together with the reference and party balance effects it produces.
type PaymentLedgerSvc interface {
	// CreatePayment records a payment and applies its effects.
	CreatePayment(ctx context.Context, shopID string, req dto.CreatePaymentRequest, actorID string) (*domain.PaymentOutcome, error)

	// CancelPayment cancels a pending or completed payment and reverses its applied effects.
	CancelPayment(ctx context.Context, shopID, paymentID, reason, actorID string) (*domain.PaymentOutcome, error)

	// DeletePayment soft-deletes a pending, unreconciled payment after reversing its effects.
	DeletePayment(ctx context.Context, shopID, paymentID, actorID string) (*domain.PaymentOutcome, error)

	// UpdatePaymentStatus is the single mutation point for payment status.
	UpdatePaymentStatus(ctx context.Context, shopID, paymentID string, target domain.PaymentStatus, actorID string) (*domain.PaymentOutcome, error)
}

// ChequeSvc defines the cheque sub-lifecycle.
type ChequeSvc interface {
	// ClearCheque marks a pending cheque cleared and applies the deferred balance effect.
	ClearCheque(ctx context.Context, shopID, paymentID string, clearanceDate *time.Time, actorID string) (*domain.PaymentOutcome, error)

	// BounceCheque marks a pending cheque bounced and reverses what it had applied.
	BounceCheque(ctx context.Context, shopID, paymentID, reason, actorID string) (*domain.PaymentOutcome, error)
}

// ReconciliationSvc defines bank reconciliation operations. Reconciliation never moves money.
type ReconciliationSvc interface {
	ReconcilePayment(ctx context.Context, shopID, paymentID string, req dto.ReconcilePaymentRequest, actorID string) (*domain.Payment, error)
	UnreconcilePayment(ctx context.Context, shopID, paymentID, actorID string) (*domain.Payment, error)
	BulkReconcile(ctx context.Context, shopID string, req dto.BulkReconcileRequest, actorID string) (*dto.BulkReconcileResult, error)
}

// RefundSvc defines refunds of completed payments.
type RefundSvc interface {
	RefundPayment(ctx context.Context, shopID, paymentID string, req dto.RefundPaymentRequest, actorID string) (*domain.RefundOutcome, error)
}

// ApprovalSvc defines the approval sub-document operations. Neither changes payment status.
type ApprovalSvc interface {
	ApprovePayment(ctx context.Context, shopID, paymentID, actorID string) (*domain.Payment, error)
	RejectPayment(ctx context.Context, shopID, paymentID, reason, actorID string) (*domain.Payment, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
// This is a facade for clients that need access to all operations
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentLedgerSvc
	ChequeSvc
	ReconciliationSvc
	RefundSvc
	ApprovalSvc
}
