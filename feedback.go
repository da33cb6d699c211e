package fieldcheck

import (
	"context"
	"io"
)

// Feedback is what a renderer needs to display a validation outcome.
type Feedback struct {
	// Field is the form field name.
	Field string
	// Container identifies the element that holds the field's messages.
	Container string
	// Errors holds failure messages in the order the checks ran.
	Errors []string
	// Valid is true when Errors is empty.
	Valid bool
	// Classes maps presentation roles to CSS classes.
	Classes map[string]string
}

// InputClass returns the success or error class for the input.
func (f Feedback) InputClass() string {
	if f.Valid {
		return f.Classes[ClassInputSuccess]
	}
	return f.Classes[ClassInputError]
}

// RemovedClass returns the class that must be removed from the input, the
// opposite of InputClass.
func (f Feedback) RemovedClass() string {
	if f.Valid {
		return f.Classes[ClassInputError]
	}
	return f.Classes[ClassInputSuccess]
}

// At returns a copy of f that shows only the message at index. An index out
// of range shows no messages. Validity and classes are unchanged.
func (f Feedback) At(index int) Feedback {
	out := f
	out.Errors = nil
	if index >= 0 && index < len(f.Errors) {
		out.Errors = []string{f.Errors[index]}
	}
	return out
}

// ContainerID returns the element id of the messages container.
func (f Feedback) ContainerID() string {
	if f.Container != "" {
		return f.Container
	}
	return f.Field + "-feedback"
}

// Renderer writes feedback for display. Implementations live outside the core;
// see pkg/render.
type Renderer interface {
	Render(ctx context.Context, w io.Writer, fb Feedback) error
}
