package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	usernameRe  = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
	hasLetterRe = regexp.MustCompile(`[A-Za-z]`)
	hasDigitRe  = regexp.MustCompile(`\d`)
)

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers the credential rules: username charset and password
//   letter+digit content.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return usernameRe.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("pwd", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return hasLetterRe.MatchString(s) && hasDigitRe.MatchString(s)
		})
	}
}

// ToDetails converts validation/binding errors into a map[field]message.
// Every field violation is reported, not just the first one.
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

	// Validation errors from validator.v10
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	// Fallback
	return map[string]string{"payload": "invalid payload"}
}

func formatFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()
	kind := fe.Kind()

	switch tag {
	case "required":
		return "is required"
	case "min":
		if kind == reflect.String {
			return "must be at least " + param + " characters"
		}
		return "must be at least " + param
	case "max":
		if kind == reflect.String {
			return "must be at most " + param + " characters"
		}
		return "must be at most " + param
	case "gte":
		return "must be greater than or equal to " + param
	case "lte":
		return "must be less than or equal to " + param
	case "username":
		return "may only contain letters, digits, dot, dash or underscore"
	case "pwd":
		return "must contain at least one letter and one digit"
	}
	return "is invalid"
}
