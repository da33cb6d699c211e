package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Field records the form field name.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Rule records the validation rule name.
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Pattern records a pattern name or expression.
func Pattern(name string) slog.Attr {
	return slog.String("pattern", name)
}

// Valid records the outcome of a validation run.
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// ErrorCount records how many validation messages were produced.
func ErrorCount(n int) slog.Attr {
	return slog.Int("error_count", n)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
