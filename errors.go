package fieldcheck

import "errors"

var (
	// ErrConfiguration is returned when a session or validator cannot be built:
	// a missing rule list, an unresolvable value source, or malformed settings.
	ErrConfiguration = errors.New("fieldcheck: invalid configuration")

	// ErrUnknownRule is returned when a rule name has no registered predicate.
	ErrUnknownRule = errors.New("fieldcheck: unknown rule")
)
