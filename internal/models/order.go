package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a row of the orders table.
type Order struct {
	OrderID              string          `db:"order_id"`
	ShopID               string          `db:"shop_id"`
	OrderNumber          string          `db:"order_number"`
	CustomerID           string          `db:"customer_id"`
	CustomerName         string          `db:"customer_name"`
	Status               string          `db:"status"`
	TotalAmount          decimal.Decimal `db:"total_amount"`
	PaidAmount           decimal.Decimal `db:"paid_amount"`
	DueAmount            decimal.Decimal `db:"due_amount"`
	PaymentStatus        string          `db:"payment_status"`
	ExpectedDeliveryDate *time.Time      `db:"expected_delivery_date"`
	ActualStartDate      *time.Time      `db:"actual_start_date"`
	ActualCompletionDate *time.Time      `db:"actual_completion_date"`
	Notes                string          `db:"notes"`
	AuditFields
}
