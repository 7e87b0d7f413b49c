package validator

import (
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var decimalLiteral = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?$`)

// ToNumber coerces s the way a browser coerces an input value to a number.
// The empty (or blank) string is 0. Anything that is not a number is NaN.
func ToNumber(s string) float64 {
	s = strings.TrimFunc(s, isInputSpace)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			return parseInteger(s[2:], base)
		}
	}

	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}
	// Out of range literals still yield ±Inf or 0, which is what we want.
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func parseInteger(digits string, base int) float64 {
	for _, r := range digits {
		if r == '_' || r == '+' || r == '-' {
			return math.NaN()
		}
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return math.NaN()
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return f
}

func isInputSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u00a0', '\ufeff', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// Numeric fails when the value does not coerce to a number.
// The empty string coerces to 0 and passes.
func Numeric(message string) Validator {
	message = messageOr(message, "must be a number")
	return func(value string) string {
		if math.IsNaN(ToNumber(value)) {
			return message
		}
		return ""
	}
}

// Min fails when the value is strictly below n.
func Min(n float64) Factory {
	return func(message string) Validator {
		message = messageOr(message, fmt.Sprintf("must be at least %v", n))
		return func(value string) string {
			if ToNumber(value) < n {
				return message
			}
			return ""
		}
	}
}

// Max fails when the value is strictly above n.
func Max(n float64) Factory {
	return func(message string) Validator {
		message = messageOr(message, fmt.Sprintf("must be at most %v", n))
		return func(value string) string {
			if ToNumber(value) > n {
				return message
			}
			return ""
		}
	}
}

// BiggerThan fails unless the value is strictly greater than other.
// other is the raw text of a sibling field.
func BiggerThan(other string) Factory {
	return func(message string) Validator {
		message = messageOr(message, fmt.Sprintf("must be bigger than %s", other))
		return func(value string) string {
			if ToNumber(value) <= ToNumber(other) {
				return message
			}
			return ""
		}
	}
}
