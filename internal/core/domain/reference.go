package domain

import "github.com/shopspring/decimal"

// PaymentSummary is the payment block carried by sales, purchases and orders.
// PaidAmount + DueAmount == TotalAmount holds after every change.
type PaymentSummary struct {
	TotalAmount   decimal.Decimal  `json:"totalAmount" swaggertype:"string"`
	PaidAmount    decimal.Decimal  `json:"paidAmount" swaggertype:"string"`
	DueAmount     decimal.Decimal  `json:"dueAmount" swaggertype:"string"`
	PaymentStatus SettlementStatus `json:"paymentStatus"`
}

// NewPaymentSummary returns an unpaid summary for the given total.
func NewPaymentSummary(total decimal.Decimal) PaymentSummary {
	s := PaymentSummary{TotalAmount: total, PaidAmount: decimal.Zero}
	s.recompute()
	return s
}

// ApplyDelta adds delta to the paid amount and recomputes due and status.
func (s *PaymentSummary) ApplyDelta(delta decimal.Decimal) {
	s.PaidAmount = s.PaidAmount.Add(delta)
	s.recompute()
}

func (s *PaymentSummary) recompute() {
	s.DueAmount = s.TotalAmount.Sub(s.PaidAmount)
	switch {
	case s.PaidAmount.GreaterThanOrEqual(s.TotalAmount):
		s.PaymentStatus = SettlementPaid
	case s.PaidAmount.IsPositive():
		s.PaymentStatus = SettlementPartial
	default:
		s.PaymentStatus = SettlementUnpaid
	}
}

// IsBalanced checks the paid + due == total invariant.
func (s PaymentSummary) IsBalanced() bool {
	return s.PaidAmount.Add(s.DueAmount).Equal(s.TotalAmount)
}

// ReferenceDocument is the view of a sale, purchase or order that payments settle.
type ReferenceDocument struct {
	DocumentID    string         `json:"documentId"`
	ShopID        string         `json:"shopId"`
	ReferenceType ReferenceType  `json:"referenceType"`
	Number        string         `json:"number"`
	Payment       PaymentSummary `json:"payment"`
	AuditFields
}
