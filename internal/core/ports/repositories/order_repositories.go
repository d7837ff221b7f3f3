package repositories

import (
	"context"

	"github.com/SscSPs/jewel_ledger/internal/core/domain"
)

// OrderReader defines read operations for order data
type OrderReader interface {
	FindOrderByID(ctx context.Context, shopID, orderID string) (*domain.Order, error)
}

// OrderWriter defines write operations for order data
type OrderWriter interface {
	SaveOrder(ctx context.Context, order domain.Order) error
	UpdateOrder(ctx context.Context, order domain.Order) error
}

// OrderRepositoryFacade combines all order-related repository interfaces
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
	FindOrderByIDForUpdate(ctx context.Context, shopID, orderID string) (*domain.Order, error)
}
