package services

import (
	"fmt"
	"strings"

	"github.com/SscSPs/jewel_ledger/internal/apperrors"
	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	"github.com/SscSPs/jewel_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// moneyScale is the number of decimal places every stored amount carries.
const moneyScale = 2

// validateMoney rejects amounts finer than moneyScale places.
func validateMoney(field string, amount decimal.Decimal) error {
	if !amount.Equal(amount.Round(moneyScale)) {
		return fmt.Errorf("%w: %s %s has more than %d decimal places", apperrors.ErrValidation, field, amount, moneyScale)
	}
	return nil
}

// validateCreatePayment checks the rules a payment request must satisfy before a number is allocated.
func validateCreatePayment(req dto.CreatePaymentRequest) error {
	if !req.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	if err := validateMoney("amount", req.Amount); err != nil {
		return err
	}
	if !req.TransactionType.IsValid() {
		return fmt.Errorf("%w: invalid transaction type %q", apperrors.ErrValidation, req.TransactionType)
	}
	if !req.PaymentMode.IsValid() {
		return fmt.Errorf("%w: invalid payment mode %q", apperrors.ErrValidation, req.PaymentMode)
	}
	if !req.PartyType.IsValid() {
		return fmt.Errorf("%w: invalid party type %q", apperrors.ErrValidation, req.PartyType)
	}
	if req.PartyType.HasBalance() && strings.TrimSpace(req.PartyID) == "" {
		return fmt.Errorf("%w: partyId is required for %s payments", apperrors.ErrValidation, req.PartyType)
	}
	if req.ReferenceType != "" {
		if !req.ReferenceType.IsValid() {
			return fmt.Errorf("%w: invalid reference type %q", apperrors.ErrValidation, req.ReferenceType)
		}
		if req.ReferenceType != domain.ReferenceNone && strings.TrimSpace(req.ReferenceID) == "" {
			return fmt.Errorf("%w: referenceId is required for a %s reference", apperrors.ErrValidation, req.ReferenceType)
		}
	}
	if req.PaymentMode == domain.ModeCheque && (req.Cheque == nil || strings.TrimSpace(req.Cheque.ChequeNumber) == "") {
		return fmt.Errorf("%w: chequeNumber is required for cheque payments", apperrors.ErrValidation)
	}
	return nil
}

// validateRefundable checks that original can be refunded by amount.
func validateRefundable(original *domain.Payment, req dto.RefundPaymentRequest) error {
	if original.IsRefund() {
		return fmt.Errorf("%w: a refund cannot be refunded", apperrors.ErrConflict)
	}
	if original.Status != domain.PaymentCompleted {
		return fmt.Errorf("%w: only completed payments can be refunded, payment is %s", apperrors.ErrConflict, original.Status)
	}
	if req.Amount.GreaterThan(original.Amount) {
		return fmt.Errorf("%w: refund amount %s exceeds payment amount %s", apperrors.ErrValidation, req.Amount, original.Amount)
	}
	return nil
}
