package domain

// TransactionType tells whether money comes into the shop or goes out of it.
type TransactionType string

const (
	Receipt TransactionType = "receipt" // money received from the party
	Payout  TransactionType = "payment" // money paid out to the party
)

func (t TransactionType) IsValid() bool {
	return t == Receipt || t == Payout
}

// Flip returns the opposite direction. A refund of a receipt is a payment and vice versa.
func (t TransactionType) Flip() TransactionType {
	if t == Receipt {
		return Payout
	}
	return Receipt
}

// PaymentMode is the instrument used to move the money.
type PaymentMode string

const (
	ModeCash         PaymentMode = "cash"
	ModeCard         PaymentMode = "card"
	ModeUPI          PaymentMode = "upi"
	ModeCheque       PaymentMode = "cheque"
	ModeBankTransfer PaymentMode = "bank_transfer"
	ModeWallet       PaymentMode = "wallet"
	ModeOther        PaymentMode = "other"
)

func (m PaymentMode) IsValid() bool {
	switch m {
	case ModeCash, ModeCard, ModeUPI, ModeCheque, ModeBankTransfer, ModeWallet, ModeOther:
		return true
	}
	return false
}

// PartyType identifies the kind of counterparty.
type PartyType string

const (
	PartyCustomer PartyType = "customer"
	PartySupplier PartyType = "supplier"
	PartyOther    PartyType = "other"
)

func (p PartyType) IsValid() bool {
	return p == PartyCustomer || p == PartySupplier || p == PartyOther
}

// HasBalance reports whether parties of this type keep a running balance.
func (p PartyType) HasBalance() bool {
	return p == PartyCustomer || p == PartySupplier
}

// ReferenceType identifies the business document a payment is applied against.
type ReferenceType string

const (
	ReferenceSale     ReferenceType = "sale"
	ReferencePurchase ReferenceType = "purchase"
	ReferenceOrder    ReferenceType = "order"
	ReferenceNone     ReferenceType = "none"
)

func (r ReferenceType) IsValid() bool {
	switch r {
	case ReferenceSale, ReferencePurchase, ReferenceOrder, ReferenceNone:
		return true
	}
	return false
}

// NaturalDirection is the transaction type that settles a document of this kind.
// Sales and orders are paid by the customer; purchases are paid to the supplier.
func (r ReferenceType) NaturalDirection() TransactionType {
	if r == ReferencePurchase {
		return Payout
	}
	return Receipt
}

// ChequeStatus is the state of a deferred cheque instrument.
type ChequeStatus string

const (
	ChequePending ChequeStatus = "pending"
	ChequeCleared ChequeStatus = "cleared"
	ChequeBounced ChequeStatus = "bounced"
)

func (c ChequeStatus) IsValid() bool {
	return c == ChequePending || c == ChequeCleared || c == ChequeBounced
}

// ApprovalStatus is the state of the approval sub-document.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

func (a ApprovalStatus) IsValid() bool {
	return a == ApprovalPending || a == ApprovalApproved || a == ApprovalRejected
}
