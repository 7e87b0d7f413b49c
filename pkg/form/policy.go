package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Policy decides which field errors make a form invalid.
type Policy int

const (
	// PolicyAnyError counts every error, touched or not. Use it to gate submits.
	PolicyAnyError Policy = iota
	// PolicyTouched counts only errors of touched fields.
	PolicyTouched
)

func (p Policy) String() string {
	switch p {
	case PolicyAnyError:
		return "any"
	case PolicyTouched:
		return "touched"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy accepts "any" and "touched".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return PolicyAnyError, nil
	case "touched":
		return PolicyTouched, nil
	default:
		return PolicyAnyError, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Field is the read side of a form value.
type Field interface {
	HasError() bool
	IsTouched() bool
	Message() string
}

// NamedField pairs a field with the name used in error reports.
type NamedField struct {
	Name  string
	Field Field
}

// Fields is the set of leaves that make up a form's aggregate validity.
type Fields []NamedField

func (fs Fields) counts(f Field, p Policy) bool {
	if !f.HasError() {
		return false
	}
	return p != PolicyTouched || f.IsTouched()
}

// Invalid reports whether any field fails under p.
func (fs Fields) Invalid(p Policy) bool {
	for _, nf := range fs {
		if fs.counts(nf.Field, p) {
			return true
		}
	}
	return false
}

// Errors lists the fields failing under p.
func (fs Fields) Errors(p Policy) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for _, nf := range fs {
		if fs.counts(nf.Field, p) {
			errs.Add(nf.Name, nf.Field.Message())
		}
	}
	return errs
}

// Err returns nil for a valid form and ErrInvalidForm joined with the field
// errors otherwise.
func (fs Fields) Err(p Policy) error {
	errs := fs.Errors(p)
	if errs.IsEmpty() {
		return nil
	}
	return errors.Join(ErrInvalidForm, errs)
}
