package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"

	"github.com/xyz-asif/azul/internal/pkg/response"
)

var registerOnce sync.Once

// Register installs the custom rules on gin's binding validator. Safe to
// call more than once.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*playground.Validate)
		if !ok {
			return
		}
		Configure(v)
	})
}

// Configure adds the custom rules and JSON field naming to v.
func Configure(v *playground.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)
	v.RegisterCustomTypeFunc(civilDateValue, civil.Date{})
	_ = v.RegisterValidation("notblank", IsNotBlank)
	_ = v.RegisterValidation("notpast", IsNotPast)
}

// IsNotBlank rejects strings made only of whitespace
func IsNotBlank(fl playground.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

// IsNotPast accepts dates of today or later
func IsNotPast(fl playground.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !civil.DateOf(t).Before(civil.DateOf(time.Now()))
}

func civilDateValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(civil.Date); ok {
		return d.In(time.UTC)
	}
	return nil
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// FieldErrors turns a binding error into per-field messages. The second
// result is false when err is not a validation failure (e.g. bad JSON).
func FieldErrors(err error) ([]response.FieldError, bool) {
	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	details := make([]response.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, response.FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return details, true
}

func message(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "notblank":
		return fmt.Sprintf("%s must not be blank", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "notpast":
		return fmt.Sprintf("%s cannot be in the past", fe.Field())
	default:
		return fmt.Sprintf("%s failed the %s rule", fe.Field(), fe.Tag())
	}
}
