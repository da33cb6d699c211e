package fieldcheck

import (
	"fmt"
	"maps"
	"regexp"
	"slices"

	"github.com/dmitrymomot/fieldcheck/pkg/merge"
)

// Settings zone keys in tree form.
const (
	ZoneMessages = "messages"
	ZonePatterns = "patterns"
	ZoneClasses  = "classes"
)

// Presentation class roles consumed by renderers.
const (
	ClassMessage         = "message"
	ClassErrorsContainer = "errorsContainer"
	ClassInputSuccess    = "inputSuccess"
	ClassInputError      = "inputError"
)

// FallbackMessage is used when neither the caller nor the settings provide a
// template for a rule.
const FallbackMessage = "This field is invalid"

// Settings is the configuration a session validates with.
type Settings struct {
	// Messages maps rule name to message template.
	Messages map[string]string
	// Patterns maps pattern name to the expression used by the match rule.
	Patterns map[string]*regexp.Regexp
	// Classes maps presentation role to CSS class name.
	Classes map[string]string
}

var (
	emailRegex  = regexp.MustCompile(`(?i)^([\w-]+(?:\.[\w-]+)*)@((?:[\w-]+\.)*\w[\w-]{0,66})\.([a-z]{2,6}(?:\.[a-z]{2})?)$`)
	urlRegex    = regexp.MustCompile(`^((http|https)://(\w+:?\w*@)?(\S+)|)(:[0-9]+)?(/|/([\w#!:.?+=&%@!\-/]))?$`)
	ipRegex     = regexp.MustCompile(`(?i)^((25[0-5]|2[0-4][0-9]|1[0-9]{2}|[0-9]{1,2})\.){3}(25[0-5]|2[0-4][0-9]|1[0-9]{2}|[0-9]{1,2})$`)
	dateRegex   = regexp.MustCompile(`\d{1,2}-|.\d{1,2}-|.\d{4}`)
	base64Regex = regexp.MustCompile(`^(?:[A-Za-z0-9+/]{4})*(?:[A-Za-z0-9+/]{4}|[A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=)$`)
)

// DefaultSettings returns a fresh copy of the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Messages: map[string]string{
			RuleRequired: "This field is required",
			RuleMin:      "This field should contain at least %s characters",
			RuleMax:      "This field should not contain more than %s characters",
			RuleMatch:    `This field should match this pattern "%s"`,
			RuleContain:  "This field should contain these characters %s",
		},
		Patterns: map[string]*regexp.Regexp{
			"email":  emailRegex,
			"url":    urlRegex,
			"ip":     ipRegex,
			"date":   dateRegex,
			"base64": base64Regex,
		},
		Classes: map[string]string{
			ClassMessage:         "iv-message",
			ClassErrorsContainer: "iv-errors-container",
			ClassInputSuccess:    "iv-success",
			ClassInputError:      "iv-error",
		},
	}
}

// Merge returns new settings with override layered on top of s.
// Keys present in override win; keys only in s are kept. Neither value is
// modified.
func (s Settings) Merge(override Settings) Settings {
	merged, err := SettingsFromTree(merge.Deep(s.Tree(), override.Tree()))
	if err != nil {
		// Both trees come from typed Settings, so every zone decodes.
		panic(fmt.Sprintf("fieldcheck: settings merge produced an invalid tree: %v", err))
	}
	return merged
}

// MergeTree layers an untyped override tree on top of s. A zone replaced by
// a non-mapping value, a non-string message or class, or a pattern that does
// not compile is reported as ErrConfiguration.
func (s Settings) MergeTree(override map[string]any) (Settings, error) {
	return SettingsFromTree(merge.Deep(s.Tree(), override))
}

// RegisterPattern adds or replaces a named pattern in place.
func (s *Settings) RegisterPattern(name string, re *regexp.Regexp) {
	if s.Patterns == nil {
		s.Patterns = make(map[string]*regexp.Regexp)
	}
	s.Patterns[name] = re
}

// Pattern returns the named pattern.
func (s Settings) Pattern(name string) (*regexp.Regexp, bool) {
	re, ok := s.Patterns[name]
	return re, ok && re != nil
}

// PatternNames returns the registered pattern names, sorted.
func (s Settings) PatternNames() []string {
	return slices.Sorted(maps.Keys(s.Patterns))
}

// Message returns the template for a rule, or FallbackMessage.
func (s Settings) Message(rule string) string {
	if tmpl, ok := s.Messages[rule]; ok && tmpl != "" {
		return tmpl
	}
	return FallbackMessage
}

// Class returns the CSS class configured for a presentation role.
func (s Settings) Class(role string) string {
	return s.Classes[role]
}

// Tree converts s to the nested form merged by pkg/merge.
// Nil zones are omitted so they never replace anything during a merge.
func (s Settings) Tree() map[string]any {
	tree := make(map[string]any, 3)
	if s.Messages != nil {
		zone := make(map[string]any, len(s.Messages))
		for k, v := range s.Messages {
			zone[k] = v
		}
		tree[ZoneMessages] = zone
	}
	if s.Patterns != nil {
		zone := make(map[string]any, len(s.Patterns))
		for k, v := range s.Patterns {
			zone[k] = v
		}
		tree[ZonePatterns] = zone
	}
	if s.Classes != nil {
		zone := make(map[string]any, len(s.Classes))
		for k, v := range s.Classes {
			zone[k] = v
		}
		tree[ZoneClasses] = zone
	}
	return tree
}

// SettingsFromTree decodes a settings tree. Pattern values may be compiled
// expressions or strings, which are compiled here. Keys outside the three
// zones are ignored.
func SettingsFromTree(tree map[string]any) (Settings, error) {
	var s Settings

	messages, err := stringZone(tree, ZoneMessages)
	if err != nil {
		return Settings{}, err
	}
	s.Messages = messages

	classes, err := stringZone(tree, ZoneClasses)
	if err != nil {
		return Settings{}, err
	}
	s.Classes = classes

	raw, err := zone(tree, ZonePatterns)
	if err != nil {
		return Settings{}, err
	}
	if raw != nil {
		s.Patterns = make(map[string]*regexp.Regexp, len(raw))
		for name, v := range raw {
			switch pv := v.(type) {
			case *regexp.Regexp:
				s.Patterns[name] = pv
			case string:
				re, err := regexp.Compile(pv)
				if err != nil {
					return Settings{}, fmt.Errorf("%w: pattern %q: %w", ErrConfiguration, name, err)
				}
				s.Patterns[name] = re
			default:
				return Settings{}, fmt.Errorf("%w: pattern %q must be a regular expression, got %T", ErrConfiguration, name, v)
			}
		}
	}

	return s, nil
}

func zone(tree map[string]any, key string) (map[string]any, error) {
	v, ok := tree[key]
	if !ok || v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a mapping, got %T", ErrConfiguration, key, v)
	}
	return m, nil
}

func stringZone(tree map[string]any, key string) (map[string]string, error) {
	raw, err := zone(tree, key)
	if err != nil || raw == nil {
		return nil, err
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		str, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s must be a string, got %T", ErrConfiguration, key, k, v)
		}
		out[k] = str
	}
	return out, nil
}
