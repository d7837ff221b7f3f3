package accounting

import (
	"testing"

	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSignedBalanceDelta(t *testing.T) {
	amt := decimal.NewFromInt(4000)

	receipt := &domain.Payment{Amount: amt, TransactionType: domain.Receipt}
	assert.True(t, SignedBalanceDelta(receipt).Equal(decimal.NewFromInt(-4000)))

	payout := &domain.Payment{Amount: amt, TransactionType: domain.Payout}
	assert.True(t, SignedBalanceDelta(payout).Equal(amt))
}

func TestReferenceDelta(t *testing.T) {
	amt := decimal.NewFromInt(250)
	tests := []struct {
		name    string
		txnType domain.TransactionType
		refType domain.ReferenceType
		want    decimal.Decimal
	}{
		{"receipt against sale", domain.Receipt, domain.ReferenceSale, amt},
		{"receipt against order", domain.Receipt, domain.ReferenceOrder, amt},
		{"payment against purchase", domain.Payout, domain.ReferencePurchase, amt},
		{"refund payout against sale", domain.Payout, domain.ReferenceSale, amt.Neg()},
		{"refund receipt against purchase", domain.Receipt, domain.ReferencePurchase, amt.Neg()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &domain.Payment{
				Amount:          amt,
				TransactionType: tt.txnType,
				Reference:       &domain.Reference{ReferenceType: tt.refType, ReferenceID: "doc-1"},
			}
			assert.True(t, tt.want.Equal(ReferenceDelta(p)), "got %s want %s", ReferenceDelta(p), tt.want)
		})
	}

	assert.True(t, ReferenceDelta(&domain.Payment{Amount: amt}).IsZero())
}

func TestNetPaid(t *testing.T) {
	ref := &domain.Reference{ReferenceType: domain.ReferenceSale, ReferenceID: "s1"}
	payments := []domain.Payment{
		{Amount: decimal.NewFromInt(1000), TransactionType: domain.Receipt, Reference: ref, Effects: domain.AppliedEffects{ReferenceApplied: true}},
		{Amount: decimal.NewFromInt(300), TransactionType: domain.Payout, Reference: ref, Effects: domain.AppliedEffects{ReferenceApplied: true}},
		{Amount: decimal.NewFromInt(999), TransactionType: domain.Receipt, Reference: ref},
	}
	assert.True(t, NetPaid(payments).Equal(decimal.NewFromInt(700)))
}
