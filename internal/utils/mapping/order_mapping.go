package mapping

import (
	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	"github.com/SscSPs/jewel_ledger/internal/models"
)

// ToModelOrder converts a domain Order to a model Order
func ToModelOrder(d domain.Order) models.Order {
	return models.Order{
		OrderID:              d.OrderID,
		ShopID:               d.ShopID,
		OrderNumber:          d.OrderNumber,
		CustomerID:           d.CustomerID,
		CustomerName:         d.CustomerName,
		Status:               string(d.Status),
		TotalAmount:          d.Payment.TotalAmount,
		PaidAmount:           d.Payment.PaidAmount,
		DueAmount:            d.Payment.DueAmount,
		PaymentStatus:        string(d.Payment.PaymentStatus),
		ExpectedDeliveryDate: d.ExpectedDeliveryDate,
		ActualStartDate:      d.ActualStartDate,
		ActualCompletionDate: d.ActualCompletionDate,
		Notes:                d.Notes,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOrder converts a model Order to a domain Order
func ToDomainOrder(m models.Order) domain.Order {
	return domain.Order{
		OrderID:      m.OrderID,
		ShopID:       m.ShopID,
		OrderNumber:  m.OrderNumber,
		CustomerID:   m.CustomerID,
		CustomerName: m.CustomerName,
		Status:       domain.OrderStatus(m.Status),
		Payment: domain.PaymentSummary{
			TotalAmount:   m.TotalAmount,
			PaidAmount:    m.PaidAmount,
			DueAmount:     m.DueAmount,
			PaymentStatus: domain.SettlementStatus(m.PaymentStatus),
		},
		ExpectedDeliveryDate: m.ExpectedDeliveryDate,
		ActualStartDate:      m.ActualStartDate,
		ActualCompletionDate: m.ActualCompletionDate,
		Notes:                m.Notes,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}
