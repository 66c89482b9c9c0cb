// Package validation checks order drafts before they are submitted or
// queued. Validation runs client side so that an order captured offline is
// not discovered to be malformed only days later during synchronization.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/vendapp/repvendas/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("cnpj", validCNPJ); err != nil {
		panic(fmt.Sprintf("failed to register cnpj rule: %v", err))
	}
	return v
}

// orderDraft mirrors the fields of a queued order that need checking.
// CNPJ plausibility beyond shape (registry lookup) is a server concern.
type orderDraft struct {
	CNPJ               string      `validate:"required,cnpj"`
	RazaoSocial        string      `validate:"required"`
	Items              []itemDraft `validate:"required,min=1,dive"`
	DiscountPercentage float64     `validate:"gte=0,lte=100"`
}

type itemDraft struct {
	Code      string  `validate:"required"`
	UnitValue float64 `validate:"gte=0"`
}

// ValidateOrder checks an order draft: client identity present, CNPJ
// well-formed, at least one line item, discount within 0-100, and at least
// one size quantity greater than zero.
func ValidateOrder(order *models.QueuedOrder) error {
	if order == nil {
		return errors.New("order is required")
	}

	draft := orderDraft{
		CNPJ:               order.Client.CNPJ,
		RazaoSocial:        order.Client.RazaoSocial,
		DiscountPercentage: order.DiscountPercentage,
	}
	for _, item := range order.Items {
		draft.Items = append(draft.Items, itemDraft{
			Code:      item.Code,
			UnitValue: item.UnitValue,
		})
	}

	if err := validate.Struct(draft); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			return fmt.Errorf("invalid order: %s", describeFieldError(fieldErrors[0]))
		}
		return fmt.Errorf("invalid order: %w", err)
	}

	for _, item := range order.Items {
		if item.TotalUnits() > 0 {
			return nil
		}
	}
	return errors.New("invalid order: at least one item must have a quantity greater than zero")
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Field() {
	case "CNPJ":
		if fe.Tag() == "cnpj" {
			return "client CNPJ must have 14 digits"
		}
		return "client CNPJ is required"
	case "RazaoSocial":
		return "client razão social is required"
	case "Items":
		return "at least one item is required"
	case "DiscountPercentage":
		return "discount must be between 0 and 100"
	case "Code":
		return "every item needs a product code"
	case "UnitValue":
		return "item unit value cannot be negative"
	default:
		return fmt.Sprintf("field %s failed on %s", fe.Field(), fe.Tag())
	}
}

// validCNPJ accepts a CNPJ with or without punctuation, as long as it
// carries exactly 14 digits. Check-digit and registry verification belong
// to the server's CNPJ lookup service.
func validCNPJ(fl validator.FieldLevel) bool {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, fl.Field().String())

	stripped := strings.NewReplacer(".", "", "/", "", "-", "", " ", "").Replace(fl.Field().String())

	return len(digits) == 14 && digits == stripped
}
