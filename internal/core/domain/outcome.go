package domain

import "github.com/shopspring/decimal"

// EffectKind names a side effect a payment has on another aggregate.
type EffectKind string

const (
	EffectReference EffectKind = "reference"
	EffectBalance   EffectKind = "balance"
)

// EffectOutcome itemizes what happened to one side effect during an operation.
type EffectOutcome struct {
	Kind    EffectKind      `json:"kind"`
	Target  string          `json:"target"` // e.g. "order:<id>", "customer:<id>"
	Delta   decimal.Decimal `json:"delta" swaggertype:"string"`
	Applied bool            `json:"applied"`
	Skipped bool            `json:"skipped"`
	Reason  string          `json:"reason,omitempty"`
}

// PaymentOutcome is the composite result of a ledger operation: the payment plus
// every side effect that was applied, reversed or skipped.
type PaymentOutcome struct {
	Payment *Payment        `json:"payment"`
	Effects []EffectOutcome `json:"effects"`
}

// HasSkippedEffects reports whether any side effect could not be carried out.
func (o *PaymentOutcome) HasSkippedEffects() bool {
	for _, e := range o.Effects {
		if e.Skipped {
			return true
		}
	}
	return false
}

// RefundOutcome is the result of a refund: the compensating payment and the original.
type RefundOutcome struct {
	Refund   *PaymentOutcome `json:"refund"`
	Original *Payment        `json:"original"`
}
