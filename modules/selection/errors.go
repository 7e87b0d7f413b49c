package selection

import "errors"

var (
	ErrColumnNotFound = errors.New("selection: column not found")
	ErrColumnFull     = errors.New("selection: every option of the column is already selected")
	ErrRowNotFound    = errors.New("selection: row not found")
	ErrUnknownOption  = errors.New("selection: unknown option")
	ErrUnknownField   = errors.New("selection: unknown field")
)
