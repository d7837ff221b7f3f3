package domain

import (
	"fmt"

	"github.com/SscSPs/jewel_ledger/internal/apperrors"
)

// InvalidTransitionError is returned when a status machine refuses a move.
// It matches apperrors.ErrConflict under errors.Is.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot transition %s from %q to %q", apperrors.ErrConflict, e.Entity, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return apperrors.ErrConflict
}
