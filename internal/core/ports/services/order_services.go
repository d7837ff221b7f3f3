package services

import (
	"context"

	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	"github.com/SscSPs/jewel_ledger/internal/dto"
)

// OrderSvcFacade defines order operations.
type OrderSvcFacade interface {
	// CreateOrder opens a draft order with an unpaid payment summary.
	CreateOrder(ctx context.Context, shopID string, req dto.CreateOrderRequest, actorID string) (*domain.Order, error)

	// GetOrder retrieves an order of a shop.
	GetOrder(ctx context.Context, shopID, orderID string) (*domain.Order, error)

	// UpdateOrderStatus moves an order along its transition table.
	UpdateOrderStatus(ctx context.Context, shopID, orderID string, target domain.OrderStatus, actorID string) (*domain.Order, error)
}
