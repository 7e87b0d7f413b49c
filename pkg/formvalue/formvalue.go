package formvalue

import "github.com/dmitrymomot/formkit/pkg/validator"

// Kind lists the field value types a form can hold.
type Kind interface {
	~string | ~bool
}

// Value is the state of one form field.
type Value[T Kind] struct {
	Value   T      `json:"value" yaml:"value"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
	Touched bool   `json:"touched" yaml:"touched"`
}

// New creates a field with an explicit error and touched state, e.g. when
// hydrating a form whose validity has not been verified yet.
func New[T Kind](value T, err string, touched bool) *Value[T] {
	return &Value[T]{Value: value, Error: err, Touched: touched}
}

// String creates an untouched text field.
func String(value string) *Value[string] {
	return &Value[string]{Value: value}
}

// Bool creates an untouched checkbox field.
func Bool(value bool) *Value[bool] {
	return &Value[bool]{Value: value}
}

// Invalid reports whether the field should display its error:
// it has been touched and the last validation failed.
func (v *Value[T]) Invalid() bool {
	return v.Touched && v.Error != ""
}

// HasError reports whether the last validation failed, touched or not.
func (v *Value[T]) HasError() bool {
	return v.Error != ""
}

// IsTouched reports whether the user has left the field at least once.
func (v *Value[T]) IsTouched() bool {
	return v.Touched
}

// Message returns the last validation message, empty when valid.
func (v *Value[T]) Message() string {
	return v.Error
}

func (v *Value[T]) Touch() {
	v.Touched = true
}

// Reset replaces the value and returns the field to its pristine state.
func (v *Value[T]) Reset(value T) {
	v.Value = value
	v.Error = ""
	v.Touched = false
}

// Validate runs fn against the current value and stores the result in Error.
// A nil validator clears the error.
func Validate(v *Value[string], fn validator.Validator) {
	if fn == nil {
		v.Error = ""
		return
	}
	v.Error = fn(v.Value)
}
