package validator

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// Required fails on the empty string. Whitespace counts as content.
func Required(message string) Validator {
	message = messageOr(message, "field is required")
	return func(value string) string {
		if value == "" {
			return message
		}
		return ""
	}
}

// MinLength fails when the value has fewer than n characters.
func MinLength(n int) Factory {
	return func(message string) Validator {
		message = messageOr(message, fmt.Sprintf("must be at least %d characters long", n))
		return func(value string) string {
			if utf8.RuneCountInString(value) < n {
				return message
			}
			return ""
		}
	}
}

// MaxLength fails when the value has more than n characters.
func MaxLength(n int) Factory {
	return func(message string) Validator {
		message = messageOr(message, fmt.Sprintf("must be at most %d characters long", n))
		return func(value string) string {
			if utf8.RuneCountInString(value) > n {
				return message
			}
			return ""
		}
	}
}

// Equals fails when the value differs from other.
// Used for confirmation fields such as a repeated password.
func Equals(other string) Factory {
	return func(message string) Validator {
		message = messageOr(message, "values must match")
		return func(value string) string {
			if value != other {
				return message
			}
			return ""
		}
	}
}

// When returns v if cond holds and AlwaysTrue otherwise.
func When(cond bool, v Validator) Validator {
	if !cond || v == nil {
		return AlwaysTrue
	}
	return v
}

// OneOf fails when the value is not one of allowed.
func OneOf(allowed ...string) Factory {
	return func(message string) Validator {
		message = messageOr(message, "must be one of the allowed values")
		return func(value string) string {
			if !slices.Contains(allowed, value) {
				return message
			}
			return ""
		}
	}
}

// NotIn fails when the value is one of taken.
func NotIn(taken ...string) Factory {
	return func(message string) Validator {
		message = messageOr(message, "value is already taken")
		return func(value string) string {
			if slices.Contains(taken, value) {
				return message
			}
			return ""
		}
	}
}
