package middleware

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"jimpitan-be-svc/internal/models"
)

var setupValidatorOnce sync.Once

// SetupValidator registers the custom binding tags on gin's validator:
// payment_source accepts cash, credit or mixed and periodkey accepts keys like period_12.
func SetupValidator() {
	setupValidatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("uri"), ",", 2)[0]
			}
			return name
		})

		_ = v.RegisterValidation("payment_source", func(fl validator.FieldLevel) bool {
			source := fl.Field().String()
			return source == "" || models.PaymentSource(source).IsValid()
		})
		_ = v.RegisterValidation("periodkey", func(fl validator.FieldLevel) bool {
			_, err := models.ParsePeriodOrdinal(fl.Field().String())
			return err == nil
		})
	})
}

// ValidationMessage renders the first failed binding rule as a readable message
func ValidationMessage(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return "Request body must be valid JSON"
	}

	e := validationErrors[0]
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "gte":
		return e.Field() + " must be greater than or equal to " + e.Param()
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "lte":
		return e.Field() + " must be less than or equal to " + e.Param()
	case "payment_source":
		return e.Field() + " must be one of: cash, credit, mixed"
	case "periodkey":
		return e.Field() + " must look like period_<n>"
	default:
		return e.Field() + " is invalid"
	}
}
