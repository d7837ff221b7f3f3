package dto

import (
	"fmt"

	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// enumValidators maps binding tags to the closed value sets of the domain enums.
var enumValidators = map[string]func(string) bool{
	"transaction_type": func(s string) bool { return domain.TransactionType(s).IsValid() },
	"payment_mode":     func(s string) bool { return domain.PaymentMode(s).IsValid() },
	"party_type":       func(s string) bool { return domain.PartyType(s).IsValid() },
	"reference_type":   func(s string) bool { return domain.ReferenceType(s).IsValid() },
	"payment_status":   func(s string) bool { return domain.PaymentStatus(s).IsValid() },
	"order_status":     func(s string) bool { return domain.OrderStatus(s).IsValid() },
}

// RegisterValidators installs the enum tags on gin's validator engine.
// It must run before the router serves requests.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return RegisterEnumValidations(v)
}

// RegisterEnumValidations registers the enum tags on the given validator.
func RegisterEnumValidations(v *validator.Validate) error {
	for tag, valid := range enumValidators {
		valid := valid
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return valid(fl.Field().String())
		}); err != nil {
			return fmt.Errorf("registering %s validator: %w", tag, err)
		}
	}
	return nil
}
