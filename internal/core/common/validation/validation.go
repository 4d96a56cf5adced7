package validation

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	errors "github.com/frahmantamala/budget-tracker/internal"
	"github.com/frahmantamala/budget-tracker/internal/core/month"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	hexColorPattern = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)
	digitPattern    = regexp.MustCompile(`[0-9]`)
	nonSpacePattern = regexp.MustCompile(`\S`)

	dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"}

	ErrInvalidDate = stderrors.New("date must be ISO 8601")

	// redacted fields are reported without their value.
	redacted = map[string]bool{"password": true}
)

// Validator turns struct tags into a field-level error list.
type Validator struct {
	validate *validator.Validate
	messages map[string]string
}

var std = New()

// Struct validates s with the package validator.
func Struct(s interface{}) *errors.AppError {
	return std.Struct(s)
}

// RegisterMessage overrides the message reported for a "field.tag" pair of the package validator.
func RegisterMessage(field, tag, message string) {
	std.messages[field+"."+tag] = message
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("rgbhex", func(fl validator.FieldLevel) bool {
		return hexColorPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("yearmonth", func(fl validator.FieldLevel) bool {
		return month.Valid(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return nonSpacePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("hasdigit", func(fl validator.FieldLevel) bool {
		return digitPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		return err == nil && len(fl.Field().String()) <= limit
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})

	return &Validator{
		validate: v,
		messages: map[string]string{
			"email.required":    "Please provide a valid email address",
			"email.email":       "Please provide a valid email address",
			"password.required": "Password is required",
			"password.min":      "Password must be at least 6 characters long",
			"password.max":      "Password must not exceed 128 characters",
		"password.maxbytes": "Password must not exceed 72 bytes",
			"password.hasdigit": "Password must contain at least one number",
			"name.required":     "Name is required",
			"name.notblank":     "Name is required",
			"name.max":          "Name must not exceed 100 characters",
			"color.rgbhex":      "Color must be a valid hex color code",
			"amount.required":   "Amount must be a positive number",
			"amount.gte":        "Amount must be a positive number",
			"amount.gt":         "Amount must be a positive number",
		"amount.lte":        "Amount must not exceed 9999999999.99",
			"month.required":    "Month must be in YYYY-MM format",
			"month.yearmonth":   "Month must be in YYYY-MM format",
			"category.required": "Category is required",
			"category.gt":       "Category is required",
			"date.isodate":      "Please provide a valid date",
			"description.max":   "Description must not exceed 500 characters",
		},
	}
}

func (v *Validator) Struct(s interface{}) *errors.AppError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !stderrors.As(err, &fieldErrors) {
		return errors.NewInternalError("validation could not run", err)
	}

	validationErrors := make([]errors.ValidationError, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		entry := errors.ValidationError{
			Field:   fe.Field(),
			Message: v.message(fe),
			Code:    fe.Tag(),
		}
		if !redacted[fe.Field()] {
			entry.Value = plainValue(fe.Value())
		}
		validationErrors = append(validationErrors, entry)
	}

	return errors.NewValidationError("Validation failed", errors.ErrCodeValidationFailed).
		WithDetails(errors.ValidationErrors{Errors: validationErrors})
}

func (v *Validator) message(fe validator.FieldError) string {
	if msg, ok := v.messages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", fe.Field(), fe.Param())
	case "gt", "gte":
		return fmt.Sprintf("%s must be a positive number", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// plainValue unwraps pointers so the echoed value serialises as the client sent it.
func plainValue(value interface{}) interface{} {
	rv := reflect.ValueOf(value)
	for rv.IsValid() && rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}

// ParseDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates and returns UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
