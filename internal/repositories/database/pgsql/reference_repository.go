package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/jewel_ledger/internal/apperrors"
	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/jewel_ledger/internal/models"
	"github.com/SscSPs/jewel_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReferenceRepository exposes sales and purchases from reference_documents and orders
// from the orders table through one payment-summary view.
type PgxReferenceRepository struct {
	BaseRepository
}

func newPgxReferenceRepository(pool *pgxpool.Pool) portsrepo.ReferenceRepository {
	return &PgxReferenceRepository{BaseRepository: newBaseRepository(pool)}
}

var _ portsrepo.ReferenceRepository = (*PgxReferenceRepository)(nil)

func (r *PgxReferenceRepository) findReference(ctx context.Context, shopID string, refType domain.ReferenceType, refID string, lock bool) (*domain.ReferenceDocument, error) {
	what := fmt.Sprintf("%s %s", refType, refID)
	suffix := ""
	if lock {
		suffix = " FOR UPDATE"
	}

	switch refType {
	case domain.ReferenceOrder:
		query := `
			SELECT order_id, shop_id, order_number, total_amount, paid_amount, due_amount, payment_status,
			       created_at, created_by, last_updated_at, last_updated_by
			FROM orders
			WHERE shop_id = $1 AND order_id = $2` + suffix
		var m models.ReferenceDocument
		err := r.DB.QueryRow(ctx, query, shopID, refID).Scan(
			&m.DocumentID,
			&m.ShopID,
			&m.Number,
			&m.TotalAmount,
			&m.PaidAmount,
			&m.DueAmount,
			&m.PaymentStatus,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, notFoundOr(err, what)
		}
		m.ReferenceType = string(domain.ReferenceOrder)
		doc := mapping.ToDomainReferenceDocument(m)
		return &doc, nil

	case domain.ReferenceSale, domain.ReferencePurchase:
		query := `
			SELECT shop_id, reference_type, document_id, number, total_amount, paid_amount, due_amount, payment_status,
			       created_at, created_by, last_updated_at, last_updated_by
			FROM reference_documents
			WHERE shop_id = $1 AND reference_type = $2 AND document_id = $3` + suffix
		var m models.ReferenceDocument
		err := r.DB.QueryRow(ctx, query, shopID, string(refType), refID).Scan(
			&m.ShopID,
			&m.ReferenceType,
			&m.DocumentID,
			&m.Number,
			&m.TotalAmount,
			&m.PaidAmount,
			&m.DueAmount,
			&m.PaymentStatus,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, notFoundOr(err, what)
		}
		doc := mapping.ToDomainReferenceDocument(m)
		return &doc, nil
	}

	return nil, fmt.Errorf("%w: %s", apperrors.ErrNotFound, what)
}

// FindReference retrieves the payment view of a sale, purchase or order.
func (r *PgxReferenceRepository) FindReference(ctx context.Context, shopID string, refType domain.ReferenceType, refID string) (*domain.ReferenceDocument, error) {
	return r.findReference(ctx, shopID, refType, refID, false)
}

// FindReferenceForUpdate retrieves and row-locks a document.
func (r *PgxReferenceRepository) FindReferenceForUpdate(ctx context.Context, shopID string, refType domain.ReferenceType, refID string) (*domain.ReferenceDocument, error) {
	return r.findReference(ctx, shopID, refType, refID, true)
}

// UpdateReferencePayment writes the payment summary back to the owning table.
func (r *PgxReferenceRepository) UpdateReferencePayment(ctx context.Context, doc domain.ReferenceDocument) error {
	m := mapping.ToModelReferenceDocument(doc)
	what := fmt.Sprintf("%s %s", doc.ReferenceType, doc.DocumentID)

	if doc.ReferenceType == domain.ReferenceOrder {
		query := `
			UPDATE orders
			SET paid_amount = $3, due_amount = $4, payment_status = $5, last_updated_at = $6, last_updated_by = $7
			WHERE shop_id = $1 AND order_id = $2;
		`
		tag, err := r.DB.Exec(ctx, query, m.ShopID, m.DocumentID, m.PaidAmount, m.DueAmount, m.PaymentStatus, m.LastUpdatedAt, m.LastUpdatedBy)
		return requireAffected(tag, err, what)
	}

	query := `
		UPDATE reference_documents
		SET paid_amount = $4, due_amount = $5, payment_status = $6, last_updated_at = $7, last_updated_by = $8
		WHERE shop_id = $1 AND reference_type = $2 AND document_id = $3;
	`
	tag, err := r.DB.Exec(ctx, query, m.ShopID, m.ReferenceType, m.DocumentID, m.PaidAmount, m.DueAmount, m.PaymentStatus, m.LastUpdatedAt, m.LastUpdatedBy)
	return requireAffected(tag, err, what)
}

// SaveReference inserts a sale or purchase document.
func (r *PgxReferenceRepository) SaveReference(ctx context.Context, doc domain.ReferenceDocument) error {
	if doc.ReferenceType != domain.ReferenceSale && doc.ReferenceType != domain.ReferencePurchase {
		return fmt.Errorf("%w: cannot store %s documents as references", apperrors.ErrValidation, doc.ReferenceType)
	}
	m := mapping.ToModelReferenceDocument(doc)
	query := `
		INSERT INTO reference_documents (
			shop_id, reference_type, document_id, number, total_amount, paid_amount, due_amount, payment_status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.DB.Exec(ctx, query,
		m.ShopID,
		m.ReferenceType,
		m.DocumentID,
		m.Number,
		m.TotalAmount,
		m.PaidAmount,
		m.DueAmount,
		m.PaymentStatus,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return duplicateOr(err, fmt.Sprintf("%s %s", doc.ReferenceType, doc.DocumentID))
	}
	return nil
}
