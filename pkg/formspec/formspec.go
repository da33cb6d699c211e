package formspec

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fieldcheck"
)

// Field is one form field definition.
type Field struct {
	Name     string
	Rules    fieldcheck.Rules
	Messages map[string]string
}

// Config returns a validator configuration for the field.
func (f Field) Config() fieldcheck.ValidatorConfig {
	return fieldcheck.ValidatorConfig{
		Field:    f.Name,
		Rules:    append(fieldcheck.Rules(nil), f.Rules...),
		Messages: f.Messages,
	}
}

// Spec is a loaded form definition.
type Spec struct {
	// Settings are the defaults with the definition's overrides merged in.
	Settings fieldcheck.Settings
	// Fields in definition order.
	Fields []Field
}

// Field returns the named field definition.
func (s *Spec) Field(name string) (Field, error) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, nil
		}
	}
	return Field{}, fmt.Errorf("%w: %q", ErrFieldNotFound, name)
}

// Verify checks that every rule the definition references is registered in rs.
func (s *Spec) Verify(rs *fieldcheck.RuleSet) error {
	var errs []error
	for _, f := range s.Fields {
		for _, r := range f.Rules {
			if !rs.Has(r.Name) {
				errs = append(errs, fmt.Errorf("field %q: %w: %q", f.Name, fieldcheck.ErrUnknownRule, r.Name))
			}
		}
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidSpec}, errs...)...)
	}
	return nil
}

// Load reads and parses the definition at path.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadSpec, err)
	}
	return Parse(data)
}

// Parse parses a definition.
func Parse(data []byte) (*Spec, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	overrides := make(map[string]any, 3)
	for _, zone := range []string{fieldcheck.ZoneMessages, fieldcheck.ZonePatterns, fieldcheck.ZoneClasses} {
		if v, ok := doc[zone]; ok {
			overrides[zone] = v
		}
	}
	settings, err := fieldcheck.DefaultSettings().MergeTree(overrides)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}
	fields, err := decodeFields(&root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}

	return &Spec{Settings: settings, Fields: fields}, nil
}

// decodeFields walks the node tree rather than a decoded map so that the
// order of fields and of each field's rules is kept.
func decodeFields(root *yaml.Node) ([]Field, error) {
	doc := root
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil, nil
		}
		doc = doc.Content[0]
	}

	fieldsNode := mappingValue(doc, "fields")
	if fieldsNode == nil {
		return nil, nil
	}

	var fields []Field
	for i := 0; i+1 < len(fieldsNode.Content); i += 2 {
		name := fieldsNode.Content[i].Value
		body := fieldsNode.Content[i+1]

		f := Field{Name: name}

		rulesNode := mappingValue(body, "rules")
		if rulesNode == nil {
			return nil, fmt.Errorf("field %q has no rules", name)
		}
		for j := 0; j+1 < len(rulesNode.Content); j += 2 {
			var param any
			if err := rulesNode.Content[j+1].Decode(&param); err != nil {
				return nil, fmt.Errorf("field %q rule %q: %w", name, rulesNode.Content[j].Value, err)
			}
			f.Rules = append(f.Rules, fieldcheck.RuleSpec{Name: rulesNode.Content[j].Value, Param: param})
		}

		if msgNode := mappingValue(body, "messages"); msgNode != nil {
			if err := msgNode.Decode(&f.Messages); err != nil {
				return nil, fmt.Errorf("field %q messages: %w", name, err)
			}
		}

		fields = append(fields, f)
	}
	return fields, nil
}

func mappingValue(n *yaml.Node, key string) *yaml.Node {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			v := n.Content[i+1]
			if v.Kind != yaml.MappingNode {
				return nil
			}
			return v
		}
	}
	return nil
}
