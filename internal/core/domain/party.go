package domain

import "github.com/shopspring/decimal"

// PartyAccount is the balance-carrying side of a customer or supplier.
// Balance is what the party owes the shop; negative means the shop owes the party.
type PartyAccount struct {
	PartyID   string          `json:"partyId"`
	ShopID    string          `json:"shopId"`
	PartyType PartyType       `json:"partyType"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	AuditFields
}
