package dto

import (
	"time"

	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ChequeRequest carries the cheque instrument for cheque-mode payments.
type ChequeRequest struct {
	ChequeNumber string     `json:"chequeNumber" binding:"required"`
	ChequeDate   *time.Time `json:"chequeDate"`
}

// CreatePaymentRequest defines the data needed to record a payment.
// Amount positivity and cross-field rules are checked by the service.
type CreatePaymentRequest struct {
	Amount          decimal.Decimal        `json:"amount" swaggertype:"string" example:"4000.00"`
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,transaction_type" example:"receipt"`
	PaymentMode     domain.PaymentMode     `json:"paymentMode" binding:"required,payment_mode" example:"cash"`
	PaymentDate     *time.Time             `json:"paymentDate"` // Optional, defaults to now
	PartyType       domain.PartyType       `json:"partyType" binding:"required,party_type" example:"customer"`
	PartyID         string                 `json:"partyId"`
	PartyName       string                 `json:"partyName"`
	ReferenceType   domain.ReferenceType   `json:"referenceType" binding:"omitempty,reference_type" example:"order"`
	ReferenceID     string                 `json:"referenceId"`
	ReferenceNumber string                 `json:"referenceNumber"`
	TransactionID   string                 `json:"transactionId"`
	BankName        string                 `json:"bankName"`
	CardLast4       string                 `json:"cardLast4" binding:"omitempty,len=4,numeric"`
	UPIID           string                 `json:"upiId"`
	WalletName      string                 `json:"walletName"`
	Cheque          *ChequeRequest         `json:"cheque"`
	Notes           string                 `json:"notes" binding:"max=1000"`
}

// UpdatePaymentStatusRequest moves a payment along its status machine.
type UpdatePaymentStatusRequest struct {
	Status domain.PaymentStatus `json:"status" binding:"required,payment_status" example:"completed"`
}

// CancelPaymentRequest carries the cancellation reason.
type CancelPaymentRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// ClearChequeRequest optionally overrides the clearance date.
type ClearChequeRequest struct {
	ClearanceDate *time.Time `json:"clearanceDate"`
}

// BounceChequeRequest carries the bounce reason.
type BounceChequeRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// RejectPaymentRequest carries the rejection reason.
type RejectPaymentRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// RefundPaymentRequest defines a (possibly partial) refund of a completed payment.
type RefundPaymentRequest struct {
	Amount      decimal.Decimal    `json:"amount" swaggertype:"string" example:"1500.00"`
	PaymentMode domain.PaymentMode `json:"paymentMode" binding:"omitempty,payment_mode"` // Defaults to the original's mode
	Reason      string             `json:"reason" binding:"required,max=500"`
}

// ReconcilePaymentRequest matches a payment against a statement line.
type ReconcilePaymentRequest struct {
	ReconciledWith string          `json:"reconciledWith" binding:"required"`
	Discrepancy    decimal.Decimal `json:"discrepancy" swaggertype:"string"`
	Notes          string          `json:"notes" binding:"max=1000"`
}

// BulkReconcileItem is one line of a bulk reconciliation.
type BulkReconcileItem struct {
	PaymentID string `json:"paymentId" binding:"required"`
	ReconcilePaymentRequest
}

// BulkReconcileRequest reconciles many payments at once.
type BulkReconcileRequest struct {
	Items []BulkReconcileItem `json:"items" binding:"required,min=1,max=500,dive"`
}

// BulkReconcileSkip explains why one item was not reconciled.
type BulkReconcileSkip struct {
	PaymentID string `json:"paymentId"`
	Reason    string `json:"reason"`
}

// BulkReconcileResult reports counts and itemized skips.
type BulkReconcileResult struct {
	ReconciledCount int                 `json:"reconciledCount"`
	SkippedCount    int                 `json:"skippedCount"`
	Skipped         []BulkReconcileSkip `json:"skipped"`
}

// ListPaymentsParams defines the query parameters for listing payments.
type ListPaymentsParams struct {
	Status      domain.PaymentStatus `form:"status" binding:"omitempty,payment_status"`
	PaymentMode domain.PaymentMode   `form:"paymentMode" binding:"omitempty,payment_mode"`
	PartyID     string               `form:"partyId"`
	ReferenceID string               `form:"referenceId"`
	Limit       int                  `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken   *string              `form:"nextToken"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID       string                 `json:"paymentId"`
	ShopID          string                 `json:"shopId"`
	PaymentNumber   string                 `json:"paymentNumber"`
	Amount          decimal.Decimal        `json:"amount" swaggertype:"string"`
	TransactionType domain.TransactionType `json:"transactionType"`
	PaymentMode     domain.PaymentMode     `json:"paymentMode"`
	PaymentDate     time.Time              `json:"paymentDate"`
	Status          domain.PaymentStatus   `json:"status"`
	Party           domain.Party           `json:"party"`
	Reference       *domain.Reference      `json:"reference,omitempty"`
	PaymentDetails  domain.PaymentDetails  `json:"paymentDetails"`
	Reconciliation  domain.Reconciliation  `json:"reconciliation"`
	Approval        domain.Approval        `json:"approval"`
	Refund          *domain.RefundInfo     `json:"refund,omitempty"`
	Cancellation    *domain.Cancellation   `json:"cancellation,omitempty"`
	Notes           string                 `json:"notes,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
	CreatedBy       string                 `json:"createdBy"`
	LastUpdatedAt   time.Time              `json:"lastUpdatedAt"`
	LastUpdatedBy   string                 `json:"lastUpdatedBy"`
}

// PaymentOutcomeResponse is a payment plus the side effects the call produced.
type PaymentOutcomeResponse struct {
	Payment PaymentResponse        `json:"payment"`
	Effects []domain.EffectOutcome `json:"effects"`
}

// RefundResponse is the refund payment and the updated original.
type RefundResponse struct {
	Refund   PaymentOutcomeResponse `json:"refund"`
	Original PaymentResponse        `json:"original"`
}

// ListPaymentsResponse wraps a page of payments.
type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:       p.PaymentID,
		ShopID:          p.ShopID,
		PaymentNumber:   p.PaymentNumber,
		Amount:          p.Amount,
		TransactionType: p.TransactionType,
		PaymentMode:     p.PaymentMode,
		PaymentDate:     p.PaymentDate,
		Status:          p.Status,
		Party:           p.Party,
		Reference:       p.Reference,
		PaymentDetails:  p.Details,
		Reconciliation:  p.Reconciliation,
		Approval:        p.Approval,
		Refund:          p.Refund,
		Cancellation:    p.Cancellation,
		Notes:           p.Notes,
		CreatedAt:       p.CreatedAt,
		CreatedBy:       p.CreatedBy,
		LastUpdatedAt:   p.LastUpdatedAt,
		LastUpdatedBy:   p.LastUpdatedBy,
	}
}

// ToPaymentResponses converts a slice of domain.Payment to []PaymentResponse.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return responses
}

// ToPaymentOutcomeResponse converts a domain.PaymentOutcome.
func ToPaymentOutcomeResponse(o *domain.PaymentOutcome) PaymentOutcomeResponse {
	effects := o.Effects
	if effects == nil {
		effects = []domain.EffectOutcome{}
	}
	return PaymentOutcomeResponse{
		Payment: ToPaymentResponse(o.Payment),
		Effects: effects,
	}
}

// ToRefundResponse converts a domain.RefundOutcome.
func ToRefundResponse(o *domain.RefundOutcome) RefundResponse {
	return RefundResponse{
		Refund:   ToPaymentOutcomeResponse(o.Refund),
		Original: ToPaymentResponse(o.Original),
	}
}
