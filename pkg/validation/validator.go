package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// messages are shown next to the offending field, keyed by json name.
var messages = map[string]string{
	"name":       "Please enter your full name.",
	"email":      "Enter a valid email address.",
	"phone":      "Phone or WhatsApp number looks too short.",
	"studyLevel": "Please specify your level (e.g., Masters).",
	"intake":     "Please add a target intake (e.g., Sep 2026).",
	"message":    "Please add a short message.",
}

// Message is the text shown next to the named field when it fails.
func Message(name string) string {
	return messages[name]
}

// FieldErrors maps a field name to the message shown next to it.
type FieldErrors map[string]string

// Error is returned when one or more fields fail their constraint.
type Error struct {
	Fields FieldErrors
}

// Names lists the failing fields in sorted order.
func (f FieldErrors) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid fields: %s", strings.Join(e.Fields.Names(), ", "))
}

// Fields extracts the per-field messages from err, or nil if err is not a validation failure.
func Fields(err error) FieldErrors {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		validateInst = v
	})
	return validateInst
}

// Struct validates s and converts failures into an *Error covering every failing field.
func Struct(s any) error {
	err := validatorInstance().Struct(s)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}

	fields := make(FieldErrors, len(ves))
	for _, fe := range ves {
		name := fe.Field()
		if _, seen := fields[name]; seen {
			continue
		}
		msg, ok := messages[name]
		if !ok {
			msg = fmt.Sprintf("%s failed validation for tag '%s'", name, fe.Tag())
		}
		fields[name] = msg
	}
	return &Error{Fields: fields}
}
