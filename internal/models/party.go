package models

import "github.com/shopspring/decimal"

// Party is a row of the parties table.
type Party struct {
	ShopID    string          `db:"shop_id"`
	PartyType string          `db:"party_type"`
	PartyID   string          `db:"party_id"`
	Name      string          `db:"name"`
	Balance   decimal.Decimal `db:"balance"`
	AuditFields
}

// ReferenceDocument is a row of the reference_documents table.
type ReferenceDocument struct {
	ShopID        string          `db:"shop_id"`
	ReferenceType string          `db:"reference_type"`
	DocumentID    string          `db:"document_id"`
	Number        string          `db:"number"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	PaidAmount    decimal.Decimal `db:"paid_amount"`
	DueAmount     decimal.Decimal `db:"due_amount"`
	PaymentStatus string          `db:"payment_status"`
	AuditFields
}
