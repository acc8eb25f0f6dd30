package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a form field to its messages, in the order they were found.
type FieldErrors map[string][]string

// Add appends msg to field.
func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Empty reports whether no field failed.
func (fe FieldErrors) Empty() bool { return len(fe) == 0 }

var (
	once sync.Once
	std  *validator.Validate
)

// Validator returns the process-wide validator, sharing Gin's engine when available.
func Validator() *validator.Validate {
	once.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			std = v
		} else {
			std = validator.New()
		}
		configure(std)
	})
	return std
}

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers alias tags for common validations.
func Init() { _ = Validator() }

func configure(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterAlias("pwd", "min=6") // login password minimum length
}

// IsEmail reports whether s is a syntactically valid email address.
func IsEmail(s string) bool {
	return Validator().Var(s, "required,email") == nil
}

// ToDetails converts validation/binding errors into a map[field]message suitable for API error.details.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return map[string]string{"payload": "invalid json"}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	return map[string]string{"payload": "invalid payload"}
}

func formatFieldError(fe validator.FieldError) string {
	param := fe.Param()
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	case "min":
		if isNumberKind(fe.Kind()) {
			return "must be at least " + param
		}
		return "must be at least " + param + " characters long"
	case "max":
		if isNumberKind(fe.Kind()) {
			return "must be at most " + param
		}
		return "must be at most " + param + " characters long"
	case "gt":
		return "must be greater than " + param
	case "numeric":
		return "must be numeric"
	case "pwd":
		return "min length 6"
	default:
		if param != "" {
			return "validation failed for '" + fe.Tag() + "' with parameter '" + param + "'"
		}
		return "validation failed for '" + fe.Tag() + "'"
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
