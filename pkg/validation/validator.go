package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// engine returns the shared validator.
// - Uses JSON tag names in errors.
// - Registers alias tags for the note and credential rules.
func engine() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		v.RegisterAlias("pwd", "min=5")   // password minimum length
		v.RegisterAlias("title", "min=3") // note title minimum length
		v.RegisterAlias("desc", "min=5")  // note description minimum length
		_ = v.RegisterValidation("maxbytes", maxBytes)
		validate = v
	})
	return validate
}

// Violation is one failed rule on one field.
type Violation struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// Violations is returned by Struct when any rule fails.
type Violations []Violation

func (v Violations) Error() string {
	msgs := make([]string, 0, len(v))
	for _, x := range v {
		msgs = append(msgs, x.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Struct validates s against its `validate` tags. It returns nil or Violations.
func Struct(s any) error {
	err := engine().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(Violations, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, Violation{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: fe.Field() + " " + formatFieldError(fe),
		})
	}
	return out
}

// ToDetails converts decoding/validation errors into a list suitable for the API error field.
func ToDetails(err error) Violations {
	if err == nil {
		return nil
	}

	var vs Violations
	if errors.As(err, &vs) {
		return vs
	}

	if errors.Is(err, io.EOF) {
		return Violations{{Field: "payload", Tag: "json", Message: "request body is required"}}
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		return Violations{{Field: ute.Field, Tag: "json", Message: ute.Field + " must be a " + ute.Type.String()}}
	}
	if errors.As(err, &se) {
		return Violations{{Field: "payload", Tag: "json", Message: "invalid json"}}
	}

	// Fallback
	return Violations{{Field: "payload", Tag: "json", Message: "invalid payload"}}
}

func formatFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "uuid":
		return "must be a valid UUID"
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", param)
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

	// aliases report their own tag
	case "pwd":
		return "must be at least 5 characters long"
	case "title":
		return "must be at least 3 characters long"
	case "desc":
		return "must be at least 5 characters long"
	case "maxbytes":
		return "must be at most " + param + " bytes long"

	default:
		if param != "" {
			return fmt.Sprintf("validation failed for '%s' with parameter '%s'", tag, param)
		}
		return fmt.Sprintf("validation failed for '%s'", tag)
	}
}

// maxBytes bounds a string's encoded length rather than its rune count.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
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
