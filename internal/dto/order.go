package dto

import (
	"time"

	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest defines the data needed to open a customer order.
type CreateOrderRequest struct {
	OrderNumber          string          `json:"orderNumber" binding:"required,max=50"`
	CustomerID           string          `json:"customerId" binding:"required"`
	CustomerName         string          `json:"customerName"`
	TotalAmount          decimal.Decimal `json:"totalAmount" swaggertype:"string" example:"10000.00"`
	ExpectedDeliveryDate *time.Time      `json:"expectedDeliveryDate"`
	Notes                string          `json:"notes" binding:"max=1000"`
}

// UpdateOrderStatusRequest moves an order along its status machine.
type UpdateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status" binding:"required,order_status" example:"confirmed"`
}

// OrderResponse defines the data returned for an order.
type OrderResponse struct {
	OrderID              string                `json:"orderId"`
	ShopID               string                `json:"shopId"`
	OrderNumber          string                `json:"orderNumber"`
	CustomerID           string                `json:"customerId"`
	CustomerName         string                `json:"customerName"`
	Status               domain.OrderStatus    `json:"status"`
	Payment              domain.PaymentSummary `json:"payment"`
	ExpectedDeliveryDate *time.Time            `json:"expectedDeliveryDate,omitempty"`
	ActualStartDate      *time.Time            `json:"actualStartDate,omitempty"`
	ActualCompletionDate *time.Time            `json:"actualCompletionDate,omitempty"`
	Notes                string                `json:"notes,omitempty"`
	CreatedAt            time.Time             `json:"createdAt"`
	CreatedBy            string                `json:"createdBy"`
	LastUpdatedAt        time.Time             `json:"lastUpdatedAt"`
	LastUpdatedBy        string                `json:"lastUpdatedBy"`
}

// ToOrderResponse converts a domain.Order to OrderResponse DTO.
func ToOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		OrderID:              o.OrderID,
		ShopID:               o.ShopID,
		OrderNumber:          o.OrderNumber,
		CustomerID:           o.CustomerID,
		CustomerName:         o.CustomerName,
		Status:               o.Status,
		Payment:              o.Payment,
		ExpectedDeliveryDate: o.ExpectedDeliveryDate,
		ActualStartDate:      o.ActualStartDate,
		ActualCompletionDate: o.ActualCompletionDate,
		Notes:                o.Notes,
		CreatedAt:            o.CreatedAt,
		CreatedBy:            o.CreatedBy,
		LastUpdatedAt:        o.LastUpdatedAt,
		LastUpdatedBy:        o.LastUpdatedBy,
	}
}
