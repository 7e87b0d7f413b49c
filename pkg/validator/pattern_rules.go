package validator

import (
	"fmt"
	"regexp"
)

// EmailPattern is intentionally permissive. It is not an RFC 5322 check.
const EmailPattern = `.+@.+\..+`

// Pattern fails when the value does not contain a match for expr.
// The expression is not anchored; add ^ and $ to require a full match.
// Panics when expr does not compile, since a broken pattern is a
// programming error that should surface at startup.
func Pattern(expr string) Factory {
	return PatternRegexp(regexp.MustCompile(expr))
}

// PatternRegexp is Pattern for an already compiled expression.
func PatternRegexp(re *regexp.Regexp) Factory {
	return func(message string) Validator {
		message = messageOr(message, fmt.Sprintf("must match pattern %s", re.String()))
		return func(value string) string {
			if !re.MatchString(value) {
				return message
			}
			return ""
		}
	}
}

var emailRegexp = regexp.MustCompile(EmailPattern)

// Email fails when the value does not look like an e-mail address.
func Email(message string) Validator {
	return PatternRegexp(emailRegexp)(messageOr(message, "must be a valid email address"))
}
