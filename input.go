package fieldcheck

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// ValueSource supplies the value under test.
type ValueSource interface {
	// Value returns the current input value.
	Value() string
	// ParentContainer identifies the element that holds the input. It is only
	// used by renderers.
	ParentContainer() string
}

// Resolver looks up a value source by selector.
type Resolver interface {
	Resolve(selector string) (ValueSource, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(selector string) (ValueSource, error)

func (f ResolverFunc) Resolve(selector string) (ValueSource, error) { return f(selector) }

type staticValue struct {
	value     string
	container string
}

func (v staticValue) Value() string           { return v.value }
func (v staticValue) ParentContainer() string { return v.container }

// StaticValue returns a source with a fixed value and no container.
func StaticValue(value string) ValueSource {
	return staticValue{value: value}
}

// StaticValueIn returns a source with a fixed value inside container.
func StaticValueIn(value, container string) ValueSource {
	return staticValue{value: value, container: container}
}

// FormResolver resolves selectors against submitted form values.
// Supported selectors: "#name", "[name=name]", `input[name="name"]` and a bare
// field name. The container of a resolved field is "<name>-feedback".
type FormResolver url.Values

// FromRequest parses the request form and returns a resolver over it.
func FromRequest(r *http.Request) (FormResolver, error) {
	if err := r.ParseForm(); err != nil {
		return nil, errors.Join(ErrConfiguration, err)
	}
	return FormResolver(r.Form), nil
}

// Resolve returns the first submitted value of the selected field.
func (f FormResolver) Resolve(selector string) (ValueSource, error) {
	name := SelectorName(selector)
	if name == "" {
		return nil, fmt.Errorf("%w: empty selector %q", ErrConfiguration, selector)
	}
	values, ok := f[name]
	if !ok {
		return nil, fmt.Errorf("%w: no input matches selector %q", ErrConfiguration, selector)
	}
	value := ""
	if len(values) > 0 {
		value = values[0]
	}
	return staticValue{value: value, container: name + "-feedback"}, nil
}

// SelectorName extracts a field name from a selector.
func SelectorName(selector string) string {
	sel := strings.TrimSpace(selector)
	if strings.HasPrefix(sel, "#") {
		return sel[1:]
	}
	if i := strings.Index(sel, "[name="); i >= 0 && strings.HasSuffix(sel, "]") {
		name := sel[i+len("[name=") : len(sel)-1]
		return strings.Trim(name, `"'`)
	}
	return sel
}

func resolve(r Resolver, selector string) (ValueSource, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: resolver is nil", ErrConfiguration)
	}
	src, err := r.Resolve(selector)
	if err != nil {
		if errors.Is(err, ErrConfiguration) {
			return nil, err
		}
		return nil, errors.Join(ErrConfiguration, err)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: selector %q did not resolve to an input", ErrConfiguration, selector)
	}
	return src, nil
}
