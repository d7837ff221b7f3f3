package pgsql

import (
	"context"
	"strconv"
	"strings"

	"github.com/SscSPs/jewel_ledger/internal/apperrors"
	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/jewel_ledger/internal/models"
	"github.com/SscSPs/jewel_ledger/internal/utils/mapping"
	"github.com/SscSPs/jewel_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const paymentColumns = `
	payment_id, shop_id, payment_number, amount, transaction_type, payment_mode, payment_date,
	party_type, party_id, party_name, reference_type, reference_id, reference_number,
	status, payment_details, reconciliation, approval, refund, cancellation, notes,
	reference_applied, balance_applied, deleted_at,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository: newBaseRepository(pool)}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryFacade
var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.ShopID,
		&m.PaymentNumber,
		&m.Amount,
		&m.TransactionType,
		&m.PaymentMode,
		&m.PaymentDate,
		&m.PartyType,
		&m.PartyID,
		&m.PartyName,
		&m.ReferenceType,
		&m.ReferenceID,
		&m.ReferenceNumber,
		&m.Status,
		&m.Details,
		&m.Reconciliation,
		&m.Approval,
		&m.Refund,
		&m.Cancellation,
		&m.Notes,
		&m.ReferenceApplied,
		&m.BalanceApplied,
		&m.DeletedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxPaymentRepository) findPayment(ctx context.Context, shopID, paymentID string, lock bool) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE shop_id = $1 AND payment_id = $2 AND deleted_at IS NULL`
	if lock {
		query += ` FOR UPDATE`
	}

	m, err := scanPayment(r.DB.QueryRow(ctx, query, shopID, paymentID))
	if err != nil {
		return nil, notFoundOr(err, "payment "+paymentID)
	}
	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

// FindPaymentByID retrieves a live payment of a shop.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, shopID, paymentID string) (*domain.Payment, error) {
	return r.findPayment(ctx, shopID, paymentID, false)
}

// FindPaymentByIDForUpdate retrieves and row-locks a live payment.
func (r *PgxPaymentRepository) FindPaymentByIDForUpdate(ctx context.Context, shopID, paymentID string) (*domain.Payment, error) {
	return r.findPayment(ctx, shopID, paymentID, true)
}

// ListPayments retrieves a page of payments using token-based pagination, newest first.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context, shopID string, filter portsrepo.PaymentListFilter, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	limit = pagination.NormalizeLimit(limit)
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	conditions := []string{"shop_id = $1", "deleted_at IS NULL"}
	args := []any{shopID}
	addCondition := func(column string, value any) {
		args = append(args, value)
		conditions = append(conditions, column+" = $"+strconv.Itoa(len(args)))
	}
	if filter.Status != "" {
		addCondition("status", string(filter.Status))
	}
	if filter.Mode != "" {
		addCondition("payment_mode", string(filter.Mode))
	}
	if filter.PartyID != "" {
		addCondition("party_id", filter.PartyID)
	}
	if filter.ReferenceID != "" {
		addCondition("reference_id", filter.ReferenceID)
	}

	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		args = append(args, cursor.CreatedAt, cursor.ID)
		// Tuple comparison keeps the (created_at, payment_id) order stable across pages
		conditions = append(conditions, "(created_at, payment_id) < ($"+strconv.Itoa(len(args)-1)+", $"+strconv.Itoa(len(args))+")")
	}

	args = append(args, fetchLimit)
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY created_at DESC, payment_id DESC
		LIMIT $` + strconv.Itoa(len(args))

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query payments for shop "+shopID, err)
	}
	defer rows.Close()

	results := make([]models.Payment, 0, fetchLimit)
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan payment row for shop "+shopID, err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating payment rows for shop "+shopID, err)
	}

	var nextTokenVal *string
	if len(results) > limit {
		results = results[:limit]
		last := results[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.PaymentID)
		nextTokenVal = &token
	}

	return mapping.ToDomainPaymentSlice(results), nextTokenVal, nil
}

// SavePayment inserts a new payment.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
		        $21, $22, $23, $24, $25, $26, $27);
	`
	_, err := r.DB.Exec(ctx, query,
		m.PaymentID,
		m.ShopID,
		m.PaymentNumber,
		m.Amount,
		m.TransactionType,
		m.PaymentMode,
		m.PaymentDate,
		m.PartyType,
		m.PartyID,
		m.PartyName,
		m.ReferenceType,
		m.ReferenceID,
		m.ReferenceNumber,
		m.Status,
		m.Details,
		m.Reconciliation,
		m.Approval,
		m.Refund,
		m.Cancellation,
		m.Notes,
		m.ReferenceApplied,
		m.BalanceApplied,
		m.DeletedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return duplicateOr(err, "payment "+m.PaymentNumber)
	}
	return nil
}

// UpdatePayment writes back every mutable column of a payment.
func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
		UPDATE payments
		SET status = $3, payment_details = $4, reconciliation = $5, approval = $6, cancellation = $7,
		    reference_applied = $8, balance_applied = $9, deleted_at = $10,
		    last_updated_at = $11, last_updated_by = $12
		WHERE shop_id = $1 AND payment_id = $2;
	`
	tag, err := r.DB.Exec(ctx, query,
		m.ShopID,
		m.PaymentID,
		m.Status,
		m.Details,
		m.Reconciliation,
		m.Approval,
		m.Cancellation,
		m.ReferenceApplied,
		m.BalanceApplied,
		m.DeletedAt,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	return requireAffected(tag, err, "payment "+m.PaymentID)
}
