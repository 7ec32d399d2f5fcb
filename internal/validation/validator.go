// package validation provides helper functions for request data validation.
// It uses the go-playground/validator library and includes custom validation rules.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/YusovID/reputation-engine/internal/domain"
	"github.com/go-playground/validator/v10"
)

var (
	validate = validator.New()
	idRegexp = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// init registers custom validation rules with the validator instance.
func init() {
	// "custom_id" restricts business, review and token identifiers to
	// letters, numbers, hyphens and underscores.
	if err := validate.RegisterValidation("custom_id", func(fl validator.FieldLevel) bool {
		if fl.Field().String() == "" {
			// Allow empty strings to be handled by the 'required' tag.
			return true
		}

		return idRegexp.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("failed to register custom validation: %v", err))
	}

	// "review_source" accepts the platforms a review can be ingested from.
	if err := validate.RegisterValidation("review_source", func(fl validator.FieldLevel) bool {
		switch domain.Source(fl.Field().String()) {
		case domain.SourceGoogle, domain.SourceFacebook, domain.SourceDirect:
			return true
		default:
			return false
		}
	}); err != nil {
		panic(fmt.Sprintf("failed to register custom validation: %v", err))
	}
}

// ValidationError is a custom error type that holds a slice of validation error messages.
type ValidationError struct {
	Errors []string
}

// Error returns a single string concatenating all validation error messages.
func (v *ValidationError) Error() string {
	return strings.Join(v.Errors, ", ")
}

// ValidateStruct performs validation on a given struct based on its validation tags.
// If validation fails, it returns a *ValidationError with user-friendly messages.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return toValidationError(err)
	}

	return nil
}

// ValidateID checks a single identifier taken from the URL path.
func ValidateID(field, value string) error {
	if err := validate.Var(value, "required,custom_id,max=100"); err != nil {
		verr := toValidationError(err)
		for i := range verr.Errors {
			verr.Errors[i] = strings.Replace(verr.Errors[i], "field ''", fmt.Sprintf("field '%s'", field), 1)
		}

		return verr
	}

	return nil
}

func toValidationError(err error) *ValidationError {
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Errors: []string{err.Error()}}
	}

	messages := make([]string, 0, len(fieldErrors))

	for _, fe := range fieldErrors {
		var message string

		switch fe.Tag() {
		case "custom_id":
			message = fmt.Sprintf(
				"field '%s' must contain only letters, numbers, hyphens, and underscores",
				fe.Field(),
			)
		case "review_source":
			message = fmt.Sprintf(
				"field '%s' must be one of GOOGLE, FACEBOOK, DIRECT",
				fe.Field(),
			)
		default:
			// Default message for other standard validation tags like 'required', 'min', 'max', etc.
			message = fmt.Sprintf(
				"field '%s' failed on the '%s' tag",
				fe.Field(),
				fe.Tag(),
			)
		}

		messages = append(messages, message)
	}

	return &ValidationError{Errors: messages}
}
