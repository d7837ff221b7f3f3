package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/jewel_ledger/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgUniqueViolation is the SQLSTATE of unique constraint violations.
const pgUniqueViolation = "23505"

// dbtx is the query surface shared by *pgxpool.Pool and pgx.Tx.
type dbtx interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories.
// DB is the pool outside a transaction and the pgx.Tx inside one.
type BaseRepository struct {
	Pool *pgxpool.Pool
	DB   dbtx
}

func newBaseRepository(pool *pgxpool.Pool) BaseRepository {
	return BaseRepository{Pool: pool, DB: pool}
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// notFoundOr maps pgx.ErrNoRows to apperrors.ErrNotFound and wraps anything else.
func notFoundOr(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, what)
	}
	return apperrors.NewAppError(500, "failed to query "+what, err)
}

// duplicateOr maps unique violations to apperrors.ErrDuplicate and wraps anything else.
func duplicateOr(err error, what string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, what)
	}
	return apperrors.NewAppError(500, "failed to insert "+what, err)
}

// requireAffected turns an UPDATE that matched nothing into apperrors.ErrNotFound.
func requireAffected(tag pgconn.CommandTag, err error, what string) error {
	if err != nil {
		return apperrors.NewAppError(500, "failed to update "+what, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, what)
	}
	return nil
}
