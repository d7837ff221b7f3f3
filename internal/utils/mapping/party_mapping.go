package mapping

import (
	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	"github.com/SscSPs/jewel_ledger/internal/models"
)

// ToModelParty converts a domain PartyAccount to a model Party
func ToModelParty(d domain.PartyAccount) models.Party {
	return models.Party{
		ShopID:      d.ShopID,
		PartyType:   string(d.PartyType),
		PartyID:     d.PartyID,
		Name:        d.Name,
		Balance:     d.Balance,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainParty converts a model Party to a domain PartyAccount
func ToDomainParty(m models.Party) domain.PartyAccount {
	return domain.PartyAccount{
		PartyID:     m.PartyID,
		ShopID:      m.ShopID,
		PartyType:   domain.PartyType(m.PartyType),
		Name:        m.Name,
		Balance:     m.Balance,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelReferenceDocument converts a domain ReferenceDocument to a model ReferenceDocument
func ToModelReferenceDocument(d domain.ReferenceDocument) models.ReferenceDocument {
	return models.ReferenceDocument{
		ShopID:        d.ShopID,
		ReferenceType: string(d.ReferenceType),
		DocumentID:    d.DocumentID,
		Number:        d.Number,
		TotalAmount:   d.Payment.TotalAmount,
		PaidAmount:    d.Payment.PaidAmount,
		DueAmount:     d.Payment.DueAmount,
		PaymentStatus: string(d.Payment.PaymentStatus),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReferenceDocument converts a model ReferenceDocument to a domain ReferenceDocument
func ToDomainReferenceDocument(m models.ReferenceDocument) domain.ReferenceDocument {
	return domain.ReferenceDocument{
		DocumentID:    m.DocumentID,
		ShopID:        m.ShopID,
		ReferenceType: domain.ReferenceType(m.ReferenceType),
		Number:        m.Number,
		Payment: domain.PaymentSummary{
			TotalAmount:   m.TotalAmount,
			PaidAmount:    m.PaidAmount,
			DueAmount:     m.DueAmount,
			PaymentStatus: domain.SettlementStatus(m.PaymentStatus),
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
