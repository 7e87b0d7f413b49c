// Package validator provides small, composable field validators for form
// values entered as text.
//
// A Validator is a plain function that maps the current field value to an
// error message. The empty string means the value is valid. Validators are
// built from curried factories: a Factory takes the user-facing message and
// returns the Validator, and parameterized rules take their parameter first.
//
//	validateName := validator.Compose(
//	    validator.Required("Please enter a name"),
//	    validator.MinLength(4)("Please enter a name with min 4 characters"),
//	    validator.MaxLength(14)("Please enter a name with max 13 characters"),
//	)
//	msg := validateName("abc") // "Please enter a name with min 4 characters"
//
// # Composition
//
// Compose evaluates validators left to right and returns the first failure.
// Validators that come after the first failure are not invoked.
//
// # Cross-field rules
//
// Rules that depend on a sibling field close over that field's value:
// BiggerThan, Equals and When. Build them inside the form-level validate
// function on every pass so they observe the current sibling state.
//
// # Numbers
//
// Numeric, Min, Max and BiggerThan use loose number coercion that follows
// the rules browsers apply to input values: surrounding whitespace is
// ignored, the empty string is zero, and hex, octal and binary integer
// literals as well as Infinity are accepted. Min and Max never fail on a
// value that is not a number, so pair them with Numeric.
//
// # Error aggregation
//
// ValidationError and ValidationErrors collect per-field messages into a
// single error value that works with errors.As. Forms use them to report
// why a submit was rejected.
//
// Every exported function is stateless and safe for concurrent use.
package validator
