package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Validator maps a field value to an error message.
// An empty message means the value is valid.
type Validator func(value string) string

// Factory builds a Validator that reports the given message on failure.
type Factory func(message string) Validator

// AlwaysTrue never fails. It stands in for rules that are switched off,
// e.g. an optional phone number.
var AlwaysTrue Validator = func(string) string { return "" }

// Compose returns a validator that yields the first failure in declaration order.
// Nil validators are skipped.
func Compose(validators ...Validator) Validator {
	return func(value string) string {
		for _, v := range validators {
			if v == nil {
				continue
			}
			if msg := v(value); msg != "" {
				return msg
			}
		}
		return ""
	}
}

// Valid reports whether v accepts value.
func Valid(v Validator, value string) bool {
	return v(value) == ""
}

// messageOr substitutes the rule's default message for an empty one,
// otherwise a failing rule would be indistinguishable from a passing one.
func messageOr(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}

// ValidationError is a single field failure.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors represents a collection of field failures.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(field, message string) {
	*ve = append(*ve, ValidationError{Field: field, Message: message})
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the failing field names in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors extracts ValidationErrors from an error chain.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
