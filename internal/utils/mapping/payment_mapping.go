package mapping

import (
	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	"github.com/SscSPs/jewel_ledger/internal/models"
)

func strPtr(s string) *string {
	return &s
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	m := models.Payment{
		PaymentID:        d.PaymentID,
		ShopID:           d.ShopID,
		PaymentNumber:    d.PaymentNumber,
		Amount:           d.Amount,
		TransactionType:  string(d.TransactionType),
		PaymentMode:      string(d.PaymentMode),
		PaymentDate:      d.PaymentDate,
		PartyType:        string(d.Party.PartyType),
		PartyID:          d.Party.PartyID,
		PartyName:        d.Party.PartyName,
		Status:           string(d.Status),
		Details:          toModelDetails(d.Details),
		Notes:            d.Notes,
		ReferenceApplied: d.Effects.ReferenceApplied,
		BalanceApplied:   d.Effects.BalanceApplied,
		DeletedAt:        d.DeletedAt,
		AuditFields:      ToModelAuditFields(d.AuditFields),
		Reconciliation: models.Reconciliation{
			IsReconciled:   d.Reconciliation.IsReconciled,
			ReconciledAt:   d.Reconciliation.ReconciledAt,
			ReconciledBy:   d.Reconciliation.ReconciledBy,
			ReconciledWith: d.Reconciliation.ReconciledWith,
			Discrepancy:    d.Reconciliation.Discrepancy,
			Notes:          d.Reconciliation.Notes,
		},
		Approval: models.Approval{
			ApprovalStatus:  string(d.Approval.ApprovalStatus),
			ApprovedBy:      d.Approval.ApprovedBy,
			ApprovedAt:      d.Approval.ApprovedAt,
			RejectionReason: d.Approval.RejectionReason,
		},
	}
	if d.Reference != nil {
		m.ReferenceType = strPtr(string(d.Reference.ReferenceType))
		m.ReferenceID = strPtr(d.Reference.ReferenceID)
		m.ReferenceNumber = strPtr(d.Reference.ReferenceNumber)
	}
	if d.Refund != nil {
		m.Refund = &models.Refund{
			OriginalPaymentID: d.Refund.OriginalPaymentID,
			RefundReason:      d.Refund.RefundReason,
			RefundedBy:        d.Refund.RefundedBy,
		}
	}
	if d.Cancellation != nil {
		m.Cancellation = &models.Cancellation{
			CancelledAt: d.Cancellation.CancelledAt,
			CancelledBy: d.Cancellation.CancelledBy,
			Reason:      d.Cancellation.Reason,
		}
	}
	return m
}

func toModelDetails(d domain.PaymentDetails) models.PaymentDetails {
	m := models.PaymentDetails{
		TransactionID: d.TransactionID,
		BankName:      d.BankName,
		CardLast4:     d.CardLast4,
		UPIID:         d.UPIID,
		WalletName:    d.WalletName,
	}
	if c := d.Cheque; c != nil {
		m.Cheque = &models.ChequeDetails{
			ChequeNumber:  c.ChequeNumber,
			ChequeDate:    c.ChequeDate,
			ChequeStatus:  string(c.ChequeStatus),
			ClearanceDate: c.ClearanceDate,
			BounceReason:  c.BounceReason,
		}
	}
	return m
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	d := domain.Payment{
		PaymentID:       m.PaymentID,
		ShopID:          m.ShopID,
		PaymentNumber:   m.PaymentNumber,
		Amount:          m.Amount,
		TransactionType: domain.TransactionType(m.TransactionType),
		PaymentMode:     domain.PaymentMode(m.PaymentMode),
		PaymentDate:     m.PaymentDate,
		Party: domain.Party{
			PartyType: domain.PartyType(m.PartyType),
			PartyID:   m.PartyID,
			PartyName: m.PartyName,
		},
		Details: toDomainDetails(m.Details),
		Status:  domain.PaymentStatus(m.Status),
		Reconciliation: domain.Reconciliation{
			IsReconciled:   m.Reconciliation.IsReconciled,
			ReconciledAt:   m.Reconciliation.ReconciledAt,
			ReconciledBy:   m.Reconciliation.ReconciledBy,
			ReconciledWith: m.Reconciliation.ReconciledWith,
			Discrepancy:    m.Reconciliation.Discrepancy,
			Notes:          m.Reconciliation.Notes,
		},
		Approval: domain.Approval{
			ApprovalStatus:  domain.ApprovalStatus(m.Approval.ApprovalStatus),
			ApprovedBy:      m.Approval.ApprovedBy,
			ApprovedAt:      m.Approval.ApprovedAt,
			RejectionReason: m.Approval.RejectionReason,
		},
		Notes: m.Notes,
		Effects: domain.AppliedEffects{
			ReferenceApplied: m.ReferenceApplied,
			BalanceApplied:   m.BalanceApplied,
		},
		DeletedAt:   m.DeletedAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.ReferenceType != nil {
		d.Reference = &domain.Reference{
			ReferenceType:   domain.ReferenceType(*m.ReferenceType),
			ReferenceID:     derefStr(m.ReferenceID),
			ReferenceNumber: derefStr(m.ReferenceNumber),
		}
	}
	if m.Refund != nil {
		d.Refund = &domain.RefundInfo{
			IsRefund:          true,
			OriginalPaymentID: m.Refund.OriginalPaymentID,
			RefundReason:      m.Refund.RefundReason,
			RefundedBy:        m.Refund.RefundedBy,
		}
	}
	if m.Cancellation != nil {
		d.Cancellation = &domain.Cancellation{
			CancelledAt: m.Cancellation.CancelledAt,
			CancelledBy: m.Cancellation.CancelledBy,
			Reason:      m.Cancellation.Reason,
		}
	}
	return d
}

func toDomainDetails(m models.PaymentDetails) domain.PaymentDetails {
	d := domain.PaymentDetails{
		TransactionID: m.TransactionID,
		BankName:      m.BankName,
		CardLast4:     m.CardLast4,
		UPIID:         m.UPIID,
		WalletName:    m.WalletName,
	}
	if c := m.Cheque; c != nil {
		d.Cheque = &domain.ChequeDetails{
			ChequeNumber:  c.ChequeNumber,
			ChequeDate:    c.ChequeDate,
			ChequeStatus:  domain.ChequeStatus(c.ChequeStatus),
			ClearanceDate: c.ClearanceDate,
			BounceReason:  c.BounceReason,
		}
	}
	return d
}

// ToDomainPaymentSlice converts a slice of model Payments to domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	if ms == nil {
		return nil
	}
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
