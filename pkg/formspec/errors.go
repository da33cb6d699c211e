package formspec

import "errors"

var (
	// ErrReadSpec is returned when the definition file cannot be read.
	ErrReadSpec = errors.New("formspec: failed to read form definition")

	// ErrInvalidSpec is returned when the definition is malformed, fails schema
	// validation, or references rules that are not registered.
	ErrInvalidSpec = errors.New("formspec: invalid form definition")

	// ErrFieldNotFound is returned when a field is not defined.
	ErrFieldNotFound = errors.New("formspec: field not found")
)
