package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChequeDetails is stored inside the payment_details JSONB column.
type ChequeDetails struct {
	ChequeNumber  string     `json:"cheque_number"`
	ChequeDate    *time.Time `json:"cheque_date,omitempty"`
	ChequeStatus  string     `json:"cheque_status"`
	ClearanceDate *time.Time `json:"clearance_date,omitempty"`
	BounceReason  string     `json:"bounce_reason,omitempty"`
}

// PaymentDetails is the payment_details JSONB column.
type PaymentDetails struct {
	TransactionID string         `json:"transaction_id,omitempty"`
	BankName      string         `json:"bank_name,omitempty"`
	CardLast4     string         `json:"card_last4,omitempty"`
	UPIID         string         `json:"upi_id,omitempty"`
	WalletName    string         `json:"wallet_name,omitempty"`
	Cheque        *ChequeDetails `json:"cheque,omitempty"`
}

// Reconciliation is the reconciliation JSONB column.
type Reconciliation struct {
	IsReconciled   bool            `json:"is_reconciled"`
	ReconciledAt   *time.Time      `json:"reconciled_at,omitempty"`
	ReconciledBy   string          `json:"reconciled_by,omitempty"`
	ReconciledWith string          `json:"reconciled_with,omitempty"`
	Discrepancy    decimal.Decimal `json:"discrepancy"`
	Notes          string          `json:"notes,omitempty"`
}

// Approval is the approval JSONB column.
type Approval struct {
	ApprovalStatus  string     `json:"approval_status"`
	ApprovedBy      string     `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
}

// Refund is the nullable refund JSONB column.
type Refund struct {
	OriginalPaymentID string `json:"original_payment_id"`
	RefundReason      string `json:"refund_reason"`
	RefundedBy        string `json:"refunded_by"`
}

// Cancellation is the nullable cancellation JSONB column.
type Cancellation struct {
	CancelledAt time.Time `json:"cancelled_at"`
	CancelledBy string    `json:"cancelled_by"`
	Reason      string    `json:"reason"`
}

// Payment is a row of the payments table.
type Payment struct {
	PaymentID        string          `db:"payment_id"`
	ShopID           string          `db:"shop_id"`
	PaymentNumber    string          `db:"payment_number"`
	Amount           decimal.Decimal `db:"amount"`
	TransactionType  string          `db:"transaction_type"`
	PaymentMode      string          `db:"payment_mode"`
	PaymentDate      time.Time       `db:"payment_date"`
	PartyType        string          `db:"party_type"`
	PartyID          string          `db:"party_id"`
	PartyName        string          `db:"party_name"`
	ReferenceType    *string         `db:"reference_type"` // Nullable
	ReferenceID      *string         `db:"reference_id"`
	ReferenceNumber  *string         `db:"reference_number"`
	Status           string          `db:"status"`
	Details          PaymentDetails  `db:"payment_details"`
	Reconciliation   Reconciliation  `db:"reconciliation"`
	Approval         Approval        `db:"approval"`
	Refund           *Refund         `db:"refund"`
	Cancellation     *Cancellation   `db:"cancellation"`
	Notes            string          `db:"notes"`
	ReferenceApplied bool            `db:"reference_applied"`
	BalanceApplied   bool            `db:"balance_applied"`
	DeletedAt        *time.Time      `db:"deleted_at"`
	AuditFields
}
