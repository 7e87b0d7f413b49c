package scenario

import "errors"

var (
	ErrUnknownForm  = errors.New("scenario: unknown form")
	ErrUnknownKind  = errors.New("scenario: unknown event kind")
	ErrUnknownField = errors.New("scenario: unknown field")
	ErrRowIndex     = errors.New("scenario: row index out of range")
	ErrDecode       = errors.New("scenario: failed to decode")
)
