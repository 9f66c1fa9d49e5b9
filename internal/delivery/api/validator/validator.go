// Package validator adapts go-playground/validator to echo.
package validator

import (
	"strings"

	"bizhub/internal/domain/catalog"
	"bizhub/internal/domain/entity"
	"bizhub/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates a validator with the catalog-aware tags registered:
// plan, lead_status, order_status and withdrawal_status.
func New() *CustomValidator {
	v := playground.New(playground.WithRequiredStructEnabled())

	_ = v.RegisterValidation("plan", func(fl playground.FieldLevel) bool {
		return catalog.IsKnownPlan(fl.Field().String())
	})
	_ = v.RegisterValidation("lead_status", func(fl playground.FieldLevel) bool {
		return entity.LeadStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("order_status", func(fl playground.FieldLevel) bool {
		return entity.OrderStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("withdrawal_status", func(fl playground.FieldLevel) bool {
		return entity.WithdrawalStatus(fl.Field().String()).IsValid()
	})

	return &CustomValidator{validate: v}
}

// Validate validates a bound request struct.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// FieldErrors flattens validation failures into field -> rule pairs suitable
// for the error response details. Non-validation errors yield nil.
func FieldErrors(err error) map[string]string {
	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		out[lowerFirst(fe.Field())] = rule
	}

	return out
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToLower(s[:1]) + s[1:]
}
