package pgsql

import (
	"context"

	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/jewel_ledger/internal/models"
	"github.com/SscSPs/jewel_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderColumns = `
	order_id, shop_id, order_number, customer_id, customer_name, status,
	total_amount, paid_amount, due_amount, payment_status,
	expected_delivery_date, actual_start_date, actual_completion_date, notes,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxOrderRepository struct {
	BaseRepository
}

func newPgxOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{BaseRepository: newBaseRepository(pool)}
}

var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

func (r *PgxOrderRepository) findOrder(ctx context.Context, shopID, orderID string, lock bool) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE shop_id = $1 AND order_id = $2`
	if lock {
		query += ` FOR UPDATE`
	}

	var m models.Order
	err := r.DB.QueryRow(ctx, query, shopID, orderID).Scan(
		&m.OrderID,
		&m.ShopID,
		&m.OrderNumber,
		&m.CustomerID,
		&m.CustomerName,
		&m.Status,
		&m.TotalAmount,
		&m.PaidAmount,
		&m.DueAmount,
		&m.PaymentStatus,
		&m.ExpectedDeliveryDate,
		&m.ActualStartDate,
		&m.ActualCompletionDate,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, notFoundOr(err, "order "+orderID)
	}
	order := mapping.ToDomainOrder(m)
	return &order, nil
}

// FindOrderByID retrieves an order of a shop.
func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, shopID, orderID string) (*domain.Order, error) {
	return r.findOrder(ctx, shopID, orderID, false)
}

// FindOrderByIDForUpdate retrieves and row-locks an order.
func (r *PgxOrderRepository) FindOrderByIDForUpdate(ctx context.Context, shopID, orderID string) (*domain.Order, error) {
	return r.findOrder(ctx, shopID, orderID, true)
}

// SaveOrder inserts a new order.
func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	m := mapping.ToModelOrder(order)
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.DB.Exec(ctx, query,
		m.OrderID,
		m.ShopID,
		m.OrderNumber,
		m.CustomerID,
		m.CustomerName,
		m.Status,
		m.TotalAmount,
		m.PaidAmount,
		m.DueAmount,
		m.PaymentStatus,
		m.ExpectedDeliveryDate,
		m.ActualStartDate,
		m.ActualCompletionDate,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return duplicateOr(err, "order "+m.OrderNumber)
	}
	return nil
}

// UpdateOrder writes the lifecycle columns of an order. The payment summary is owned by
// the reference repository and is left alone.
func (r *PgxOrderRepository) UpdateOrder(ctx context.Context, order domain.Order) error {
	m := mapping.ToModelOrder(order)
	query := `
		UPDATE orders
		SET status = $3, expected_delivery_date = $4, actual_start_date = $5, actual_completion_date = $6,
		    notes = $7, last_updated_at = $8, last_updated_by = $9
		WHERE shop_id = $1 AND order_id = $2;
	`
	tag, err := r.DB.Exec(ctx, query,
		m.ShopID,
		m.OrderID,
		m.Status,
		m.ExpectedDeliveryDate,
		m.ActualStartDate,
		m.ActualCompletionDate,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	return requireAffected(tag, err, "order "+m.OrderID)
}
