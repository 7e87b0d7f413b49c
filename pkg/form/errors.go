package form

import "errors"

var (
	// ErrInvalidForm is returned when a submit is attempted on a form with errors.
	ErrInvalidForm = errors.New("form: invalid form")

	// ErrClosed is returned when a closed dispatcher is asked to change state.
	ErrClosed = errors.New("form: dispatcher is closed")

	// ErrUnknownPolicy is returned by ParsePolicy.
	ErrUnknownPolicy = errors.New("form: unknown invalid policy")
)
