package accounting

import (
	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedBalanceDelta returns the change a payment makes to its party's balance.
// Balance is what the party owes the shop, so a receipt lowers it and a payout raises it.
//
//	receipt -> -amount
//	payment -> +amount
func SignedBalanceDelta(p *domain.Payment) decimal.Decimal {
	if p.TransactionType == domain.Receipt {
		return p.Amount.Neg()
	}
	return p.Amount
}

// ReferenceDelta returns the change a payment makes to its reference document's paid amount.
// A payment moving in the document's natural direction settles it (+amount); one moving
// against it, such as a refund, unsettles it (-amount).
func ReferenceDelta(p *domain.Payment) decimal.Decimal {
	if p.Reference == nil {
		return decimal.Zero
	}
	if p.TransactionType == p.Reference.ReferenceType.NaturalDirection() {
		return p.Amount
	}
	return p.Amount.Neg()
}

// NetPaid sums the reference deltas of the payments whose reference effect is applied.
// For all payments of one document it equals the document's paid amount.
func NetPaid(payments []domain.Payment) decimal.Decimal {
	sum := decimal.Zero
	for i := range payments {
		if !payments[i].Effects.ReferenceApplied {
			continue
		}
		sum = sum.Add(ReferenceDelta(&payments[i]))
	}
	return sum
}
