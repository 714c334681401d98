package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// TagName is the struct tag the rules live under. It matches gin's binding
// tag so one set of tags serves request binding and standalone validation.
const TagName = "binding"

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		validate.SetTagName(TagName)
		validate.RegisterTagNameFunc(fieldName)
	})
	return validate
}

// fieldName reports fields by their form/json name rather than the Go name.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// Struct validates v and returns one message per failing field, or nil.
func Struct(v interface{}) map[string]string {
	return Messages(instance().Struct(v))
}

// Messages converts a validation error into per-field messages. Errors that
// are not field validation failures come back under the "_" key.
func Messages(err error) map[string]string {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; !seen {
			out[fe.Field()] = formatValidationError(fe)
		}
	}
	return out
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "email":
		return e.Field() + " must be a valid email address"
	case "url":
		return e.Field() + " must be a valid URL"
	case "uuid":
		return e.Field() + " must be a UUID"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}

// ginValidator adapts the shared instance to gin's binding.StructValidator.
type ginValidator struct{}

func (ginValidator) ValidateStruct(obj interface{}) error {
	if obj == nil {
		return nil
	}
	value := reflect.ValueOf(obj)
	for value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil
	}
	return instance().Struct(obj)
}

func (ginValidator) Engine() interface{} {
	return instance()
}

// RegisterWithGin makes gin's binding use the shared validator so binding
// errors carry form field names.
func RegisterWithGin() {
	binding.Validator = ginValidator{}
}
