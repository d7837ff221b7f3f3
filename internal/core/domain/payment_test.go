package domain_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/jewel_ledger/internal/apperrors"
	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentStatus_TransitionTable(t *testing.T) {
	allowed := map[domain.PaymentStatus][]domain.PaymentStatus{
		domain.PaymentPending:   {domain.PaymentCompleted, domain.PaymentCancelled, domain.PaymentFailed},
		domain.PaymentCompleted: {domain.PaymentRefunded, domain.PaymentCancelled},
	}

	for _, from := range domain.AllPaymentStatuses {
		for _, to := range domain.AllPaymentStatuses {
			want := false
			for _, next := range allowed[from] {
				if next == to {
					want = true
				}
			}

			p := &domain.Payment{Status: from}
			err := p.TransitionTo(to)
			if want {
				assert.NoError(t, err, "%s -> %s should be allowed", from, to)
				assert.Equal(t, to, p.Status)
				continue
			}
			require.Error(t, err, "%s -> %s should be rejected", from, to)
			assert.True(t, errors.Is(err, apperrors.ErrConflict))
			var te *domain.InvalidTransitionError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, "payment", te.Entity)
			assert.Equal(t, string(from), te.From)
			assert.Equal(t, string(to), te.To)
			assert.Equal(t, from, p.Status, "status must not change on a rejected transition")
		}
	}
}

func TestPaymentStatus_Terminal(t *testing.T) {
	assert.False(t, domain.PaymentPending.IsTerminal())
	assert.False(t, domain.PaymentCompleted.IsTerminal())
	assert.True(t, domain.PaymentFailed.IsTerminal())
	assert.True(t, domain.PaymentCancelled.IsTerminal())
	assert.True(t, domain.PaymentRefunded.IsTerminal())
}

func TestInitialPaymentStatus(t *testing.T) {
	tests := []struct {
		name    string
		mode    domain.PaymentMode
		details domain.PaymentDetails
		want    domain.PaymentStatus
	}{
		{name: "cash settles immediately", mode: domain.ModeCash, want: domain.PaymentCompleted},
		{name: "upi with transaction id", mode: domain.ModeUPI, details: domain.PaymentDetails{TransactionID: "UTR123"}, want: domain.PaymentCompleted},
		{name: "upi without transaction id", mode: domain.ModeUPI, want: domain.PaymentPending},
		{name: "card waits", mode: domain.ModeCard, details: domain.PaymentDetails{TransactionID: "T1"}, want: domain.PaymentPending},
		{name: "cheque waits", mode: domain.ModeCheque, want: domain.PaymentPending},
		{name: "bank transfer waits", mode: domain.ModeBankTransfer, want: domain.PaymentPending},
		{name: "wallet waits", mode: domain.ModeWallet, want: domain.PaymentPending},
		{name: "other waits", mode: domain.ModeOther, want: domain.PaymentPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.InitialPaymentStatus(tt.mode, tt.details))
		})
	}
}

func TestFormatPaymentNumber(t *testing.T) {
	assert.Equal(t, "PAY000001", domain.FormatPaymentNumber("PAY", 1))
	assert.Equal(t, "PAY123456", domain.FormatPaymentNumber("PAY", 123456))
	assert.Equal(t, "PAY1234567", domain.FormatPaymentNumber("PAY", 1234567))
}

func TestPayment_DefersBalance(t *testing.T) {
	cash := &domain.Payment{PaymentMode: domain.ModeCash, Amount: decimal.NewFromInt(10)}
	assert.False(t, cash.DefersBalance())

	cheque := &domain.Payment{
		PaymentMode: domain.ModeCheque,
		Details:     domain.PaymentDetails{Cheque: &domain.ChequeDetails{ChequeNumber: "000111", ChequeStatus: domain.ChequePending}},
	}
	assert.True(t, cheque.DefersBalance())

	cheque.Details.Cheque.ChequeStatus = domain.ChequeCleared
	assert.False(t, cheque.DefersBalance())

	refundByCheque := &domain.Payment{PaymentMode: domain.ModeCheque}
	assert.False(t, refundByCheque.DefersBalance())
}

func TestTransactionType_Flip(t *testing.T) {
	assert.Equal(t, domain.Payout, domain.Receipt.Flip())
	assert.Equal(t, domain.Receipt, domain.Payout.Flip())
}

func TestReference_IsLive(t *testing.T) {
	var nilRef *domain.Reference
	assert.False(t, nilRef.IsLive())
	assert.False(t, (&domain.Reference{ReferenceType: domain.ReferenceNone}).IsLive())
	assert.True(t, (&domain.Reference{ReferenceType: domain.ReferenceSale, ReferenceID: "s1"}).IsLive())
}
