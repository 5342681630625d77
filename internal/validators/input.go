package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/agency-portal/models"
	"github.com/go-playground/validator/v10"
)

// Custom validation tags used in model struct tags.
const (
	TagSlug    = "slug"
	TagINN     = "inn"
	TagBIK     = "bik"
	TagAccount = "account"

	// TagMaxBytes caps the UTF-8 length of a string, unlike max which
	// counts characters.
	TagMaxBytes = "maxbytes"

	tagRequiredForIndividual = "required_for_individual"
	tagRequiredForLegal      = "required_for_legal"
)

var (
	slugPattern    = regexp.MustCompile(`^[a-z0-9-]+$`)
	innPattern     = regexp.MustCompile(`^(\d{10}|\d{12})$`)
	bikPattern     = regexp.MustCompile(`^\d{9}$`)
	accountPattern = regexp.MustCompile(`^\d{20}$`)
)

// InputValidator validates API inputs with go-playground/validator.
type InputValidator struct {
	validate *validator.Validate
}

// NewInputValidator builds a validator with the portal's custom tags and
// struct-level rules registered.
func NewInputValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)

	mustRegister(v, TagSlug, slugPattern)
	mustRegister(v, TagINN, innPattern)
	mustRegister(v, TagBIK, bikPattern)
	mustRegister(v, TagAccount, accountPattern)
	if err := v.RegisterValidation(TagMaxBytes, maxBytes); err != nil {
		panic(fmt.Sprintf("validators: registering %q: %v", TagMaxBytes, err))
	}

	v.RegisterStructValidation(clientProfileRules, models.ClientProfile{})

	return &InputValidator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, pattern *regexp.Regexp) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("validators: registering %q: %v", tag, err))
	}
}

func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// Validate checks a struct (or pointer to struct) against its validate tags.
// A []models.CaseMedia is validated element by element. Optional fields
// restrict validation to the named Go struct fields.
func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case nil:
		return ErrUnsupportedType
	case []models.CaseMedia:
		for i, m := range value {
			if err := v.validateStruct(ctx, m, fields...); err != nil {
				return fmt.Errorf("%w (media[%d])", err, i)
			}
		}
		return nil
	}

	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return ErrUnsupportedType
	}

	return v.validateStruct(ctx, obj, fields...)
}

func (v *InputValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return ErrUnsupportedType
	}
	return err
}

// clientProfileRules enforces the fields each client type requires.
func clientProfileRules(sl validator.StructLevel) {
	p := sl.Current().Interface().(models.ClientProfile)

	switch p.Type {
	case models.ClientIndividual:
		requireField(sl, p.LastName, "lastName", "LastName", tagRequiredForIndividual)
		requireField(sl, p.FirstName, "firstName", "FirstName", tagRequiredForIndividual)
	case models.ClientLegal:
		requireField(sl, p.INN, "inn", "INN", tagRequiredForLegal)
		requireField(sl, p.CompanyName, "companyName", "CompanyName", tagRequiredForLegal)
		requireField(sl, p.LegalAddress, "legalAddress", "LegalAddress", tagRequiredForLegal)
	}
}

func requireField(sl validator.StructLevel, value *string, name, structName, tag string) {
	if value == nil || strings.TrimSpace(*value) == "" {
		sl.ReportError(value, name, structName, tag, "")
	}
}

// fieldName reports fields by their JSON name, falling back to the Go name
// with a lowercased first letter.
func fieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name != "" {
		return name
	}
	return strings.ToLower(f.Name[:1]) + f.Name[1:]
}

// fieldError converts a single FieldError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	unit := "characters"
	if k := fe.Kind(); k == reflect.Slice || k == reflect.Array {
		unit = "items"
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s %s", field, fe.Param(), unit)
	case "max":
		return fmt.Sprintf("%s must be at most %s %s", field, fe.Param(), unit)
	case TagMaxBytes:
		return fmt.Sprintf("%s must be at most %s bytes", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case TagSlug:
		return field + " may contain only lowercase letters, digits and dashes"
	case TagINN:
		return field + " must be 10 or 12 digits"
	case TagBIK:
		return field + " must be 9 digits"
	case TagAccount:
		return field + " must be 20 digits"
	case tagRequiredForIndividual:
		return field + " is required for individuals"
	case tagRequiredForLegal:
		return field + " is required for legal entities"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
