package domain

// PaymentStatus is the lifecycle state of a Payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentCancelled PaymentStatus = "cancelled"
	PaymentRefunded  PaymentStatus = "refunded"
)

// AllPaymentStatuses lists every payment status in declaration order.
var AllPaymentStatuses = []PaymentStatus{
	PaymentPending, PaymentCompleted, PaymentFailed, PaymentCancelled, PaymentRefunded,
}

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:   {PaymentCompleted, PaymentCancelled, PaymentFailed},
	PaymentCompleted: {PaymentRefunded, PaymentCancelled},
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentCancelled, PaymentRefunded:
		return true
	}
	return false
}

func (s PaymentStatus) String() string {
	return string(s)
}

// IsTerminal returns true when no transition leaves the status.
func (s PaymentStatus) IsTerminal() bool {
	return len(paymentTransitions[s]) == 0
}

// CanTransitionTo checks the payment status machine.
func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	for _, next := range paymentTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// SettlementStatus is the paymentStatus of a reference document.
type SettlementStatus string

const (
	SettlementUnpaid  SettlementStatus = "unpaid"
	SettlementPartial SettlementStatus = "partial"
	SettlementPaid    SettlementStatus = "paid"
)

func (s SettlementStatus) IsValid() bool {
	return s == SettlementUnpaid || s == SettlementPartial || s == SettlementPaid
}
