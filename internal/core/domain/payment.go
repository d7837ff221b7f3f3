package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultPaymentNumberPrefix prefixes the shop-scoped payment sequence.
const DefaultPaymentNumberPrefix = "PAY"

// FormatPaymentNumber renders a sequence value as PREFIX + six zero-padded digits.
func FormatPaymentNumber(prefix string, seq int64) string {
	return fmt.Sprintf("%s%06d", prefix, seq)
}

// Party is the counterparty of a payment. Immutable after creation.
type Party struct {
	PartyType PartyType `json:"partyType"`
	PartyID   string    `json:"partyId"`
	PartyName string    `json:"partyName"`
}

// Reference points at the sale, purchase or order a payment is applied against.
type Reference struct {
	ReferenceType   ReferenceType `json:"referenceType"`
	ReferenceID     string        `json:"referenceId"`
	ReferenceNumber string        `json:"referenceNumber"`
}

// IsLive reports whether the reference points at an actual document.
func (r *Reference) IsLive() bool {
	return r != nil && r.ReferenceType != "" && r.ReferenceType != ReferenceNone
}

// ChequeDetails tracks the nested cheque lifecycle (pending -> cleared | bounced).
type ChequeDetails struct {
	ChequeNumber  string       `json:"chequeNumber"`
	ChequeDate    *time.Time   `json:"chequeDate,omitempty"`
	ChequeStatus  ChequeStatus `json:"chequeStatus"`
	ClearanceDate *time.Time   `json:"clearanceDate,omitempty"`
	BounceReason  string       `json:"bounceReason,omitempty"`
}

// PaymentDetails is the mode-specific sub-document.
type PaymentDetails struct {
	TransactionID string         `json:"transactionId,omitempty"` // UPI / card / bank reference
	BankName      string         `json:"bankName,omitempty"`
	CardLast4     string         `json:"cardLast4,omitempty"`
	UPIID         string         `json:"upiId,omitempty"`
	WalletName    string         `json:"walletName,omitempty"`
	Cheque        *ChequeDetails `json:"cheque,omitempty"`
}

// Reconciliation records a match against a bank statement line.
type Reconciliation struct {
	IsReconciled   bool            `json:"isReconciled"`
	ReconciledAt   *time.Time      `json:"reconciledAt,omitempty"`
	ReconciledBy   string          `json:"reconciledBy,omitempty"`
	ReconciledWith string          `json:"reconciledWith,omitempty"`
	Discrepancy    decimal.Decimal `json:"discrepancy" swaggertype:"string"`
	Notes          string          `json:"notes,omitempty"`
}

// Approval is the approval sub-document.
type Approval struct {
	ApprovalStatus  ApprovalStatus `json:"approvalStatus"`
	ApprovedBy      string         `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time     `json:"approvedAt,omitempty"`
	RejectionReason string         `json:"rejectionReason,omitempty"`
}

// RefundInfo is present only on refund payments.
type RefundInfo struct {
	IsRefund          bool   `json:"isRefund"`
	OriginalPaymentID string `json:"originalPaymentId"`
	RefundReason      string `json:"refundReason"`
	RefundedBy        string `json:"refundedBy"`
}

// Cancellation records who cancelled a payment and why.
type Cancellation struct {
	CancelledAt time.Time `json:"cancelledAt"`
	CancelledBy string    `json:"cancelledBy"`
	Reason      string    `json:"reason"`
}

// AppliedEffects remembers which side effects of this payment are currently in force.
// A flag is set when the effect is applied and cleared when it is reversed, so each
// effect is applied at most once and reversed at most once.
type AppliedEffects struct {
	ReferenceApplied bool `json:"referenceApplied"`
	BalanceApplied   bool `json:"balanceApplied"`
}

// Payment is a record of money movement between a shop and a party.
type Payment struct {
	PaymentID       string          `json:"paymentId"`
	ShopID          string          `json:"shopId"`
	PaymentNumber   string          `json:"paymentNumber"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType TransactionType `json:"transactionType"`
	PaymentMode     PaymentMode     `json:"paymentMode"`
	PaymentDate     time.Time       `json:"paymentDate"`
	Party           Party           `json:"party"`
	Reference       *Reference      `json:"reference,omitempty"`
	Details         PaymentDetails  `json:"paymentDetails"`
	Status          PaymentStatus   `json:"status"`
	Reconciliation  Reconciliation  `json:"reconciliation"`
	Approval        Approval        `json:"approval"`
	Refund          *RefundInfo     `json:"refund,omitempty"`
	Cancellation    *Cancellation   `json:"cancellation,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Effects         AppliedEffects  `json:"effects"`
	DeletedAt       *time.Time      `json:"deletedAt,omitempty"`
	AuditFields
}

// InitialPaymentStatus picks the status a new payment starts in.
// Cash settles immediately, UPI settles when a transaction id is known; all else waits.
func InitialPaymentStatus(mode PaymentMode, details PaymentDetails) PaymentStatus {
	switch {
	case mode == ModeCash:
		return PaymentCompleted
	case mode == ModeUPI && details.TransactionID != "":
		return PaymentCompleted
	}
	return PaymentPending
}

// TransitionTo moves the payment along the status machine. It is the only place
// that writes Status after creation.
func (p *Payment) TransitionTo(target PaymentStatus) error {
	if !p.Status.CanTransitionTo(target) {
		return &InvalidTransitionError{Entity: "payment", From: string(p.Status), To: string(target)}
	}
	p.Status = target
	return nil
}

// IsCheque reports whether the payment is a cheque-mode payment.
func (p *Payment) IsCheque() bool {
	return p.PaymentMode == ModeCheque
}

// DefersBalance reports whether the balance effect waits for cheque clearance.
// Only a cheque instrument that has not cleared defers; a cheque-mode refund carries no
// instrument and settles immediately.
func (p *Payment) DefersBalance() bool {
	return p.IsCheque() && p.Details.Cheque != nil && p.Details.Cheque.ChequeStatus != ChequeCleared
}

// IsDeleted reports whether the payment has been soft-deleted.
func (p *Payment) IsDeleted() bool {
	return p.DeletedAt != nil
}

// IsRefund reports whether this payment compensates another one.
func (p *Payment) IsRefund() bool {
	return p.Refund != nil && p.Refund.IsRefund
}

// HasLiveReference reports whether the payment is applied against a document.
func (p *Payment) HasLiveReference() bool {
	return p.Reference.IsLive()
}
