package dto

import (
	"time"

	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePartyRequest registers a customer or supplier with an opening balance.
type CreatePartyRequest struct {
	PartyID        string           `json:"partyId"` // Optional, generated when empty
	PartyType      domain.PartyType `json:"partyType" binding:"required,oneof=customer supplier"`
	Name           string           `json:"name" binding:"required,max=200"`
	OpeningBalance decimal.Decimal  `json:"openingBalance" swaggertype:"string"`
}

// PartyResponse defines the data returned for a customer or supplier.
type PartyResponse struct {
	PartyID       string           `json:"partyId"`
	ShopID        string           `json:"shopId"`
	PartyType     domain.PartyType `json:"partyType"`
	Name          string           `json:"name"`
	Balance       decimal.Decimal  `json:"balance" swaggertype:"string"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// ToPartyResponse converts a domain.PartyAccount to PartyResponse DTO.
func ToPartyResponse(p *domain.PartyAccount) PartyResponse {
	return PartyResponse{
		PartyID:       p.PartyID,
		ShopID:        p.ShopID,
		PartyType:     p.PartyType,
		Name:          p.Name,
		Balance:       p.Balance,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// CreateReferenceRequest registers a sale or purchase that payments can settle.
type CreateReferenceRequest struct {
	DocumentID    string               `json:"documentId"` // Optional, generated when empty
	ReferenceType domain.ReferenceType `json:"referenceType" binding:"required,oneof=sale purchase"`
	Number        string               `json:"number" binding:"required,max=50"`
	TotalAmount   decimal.Decimal      `json:"totalAmount" swaggertype:"string"`
}

// ReferenceResponse defines the data returned for a reference document.
type ReferenceResponse struct {
	DocumentID    string                `json:"documentId"`
	ShopID        string                `json:"shopId"`
	ReferenceType domain.ReferenceType  `json:"referenceType"`
	Number        string                `json:"number"`
	Payment       domain.PaymentSummary `json:"payment"`
}

// ToReferenceResponse converts a domain.ReferenceDocument to ReferenceResponse DTO.
func ToReferenceResponse(d *domain.ReferenceDocument) ReferenceResponse {
	return ReferenceResponse{
		DocumentID:    d.DocumentID,
		ShopID:        d.ShopID,
		ReferenceType: d.ReferenceType,
		Number:        d.Number,
		Payment:       d.Payment,
	}
}
