package fieldcheck

import (
	"fmt"
	"maps"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Built-in rule names.
const (
	RuleRequired = "required"
	RuleMin      = "min"
	RuleMax      = "max"
	RuleMatch    = "match"
	RuleContain  = "contain"
)

// Predicate reports whether value satisfies a rule with the given parameter.
// Rules that take no parameter ignore it.
type Predicate func(value string, param any) bool

// RuleSet maps rule names to predicates. It is safe for concurrent use and may
// be shared by any number of sessions.
type RuleSet struct {
	mu    sync.RWMutex
	rules map[string]Predicate
}

// NewRuleSet returns a rule set seeded with the built-in rules.
func NewRuleSet() *RuleSet {
	return &RuleSet{
		rules: map[string]Predicate{
			RuleRequired: Required,
			RuleMin:      MinLength,
			RuleMax:      MaxLength,
			RuleMatch:    Match,
			RuleContain:  Contain,
		},
	}
}

// Register adds a rule or replaces an existing one with the same name.
func (rs *RuleSet) Register(name string, fn Predicate) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: rule name is empty", ErrConfiguration)
	}
	if fn == nil {
		return fmt.Errorf("%w: rule %q has no predicate", ErrConfiguration, name)
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()
	if rs.rules == nil {
		rs.rules = make(map[string]Predicate)
	}
	rs.rules[name] = fn
	return nil
}

// MustRegister is like Register but panics on error.
func (rs *RuleSet) MustRegister(name string, fn Predicate) *RuleSet {
	if err := rs.Register(name, fn); err != nil {
		panic(err)
	}
	return rs
}

// Resolve returns the predicate registered under name, or ErrUnknownRule.
func (rs *RuleSet) Resolve(name string) (Predicate, error) {
	rs.mu.RLock()
	fn, ok := rs.rules[name]
	rs.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	return fn, nil
}

// Has reports whether a rule is registered under name.
func (rs *RuleSet) Has(name string) bool {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	_, ok := rs.rules[name]
	return ok
}

// Names returns registered rule names, sorted.
func (rs *RuleSet) Names() []string {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return slices.Sorted(maps.Keys(rs.rules))
}

// Required passes when the trimmed value is not empty.
func Required(value string, _ any) bool {
	return strings.TrimSpace(value) != ""
}

// MinLength passes when value has at least param characters. Any numeric
// bound is accepted: a negative bound always passes, a fractional one
// compares as is.
func MinLength(value string, param any) bool {
	n, ok := Length(param)
	if !ok {
		return false
	}
	return float64(CharCount(value)) >= n
}

// MaxLength passes when value has at most param characters. A negative bound
// always fails.
func MaxLength(value string, param any) bool {
	n, ok := Length(param)
	if !ok {
		return false
	}
	return float64(CharCount(value)) <= n
}

// CharCount returns the number of characters in value after NFC
// normalization, so a letter typed with a combining accent counts once.
func CharCount(value string) int {
	return utf8.RuneCountInString(norm.NFC.String(value))
}

// Match passes when value matches the compiled expression in param.
// Pattern names are resolved by the session before this predicate runs.
func Match(value string, param any) bool {
	re, ok := param.(*regexp.Regexp)
	if !ok || re == nil {
		return false
	}
	return re.MatchString(value)
}

// Contain passes when value contains param. A list of needles passes only
// when every needle is present.
func Contain(value string, param any) bool {
	needles, ok := Needles(param)
	if !ok {
		return false
	}
	for _, needle := range needles {
		if !strings.Contains(value, needle) {
			return false
		}
	}
	return true
}

// Needles normalizes a contain parameter to a list of substrings.
func Needles(param any) ([]string, bool) {
	switch p := param.(type) {
	case string:
		return []string{p}, true
	case []string:
		return p, true
	case []any:
		out := make([]string, 0, len(p))
		for _, item := range p {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

// Length reads a numeric length bound: any integer or float kind, or a
// decimal string. NaN and non-numeric params are rejected.
func Length(param any) (float64, bool) {
	var n float64
	switch p := param.(type) {
	case int:
		n = float64(p)
	case int8:
		n = float64(p)
	case int16:
		n = float64(p)
	case int32:
		n = float64(p)
	case int64:
		n = float64(p)
	case uint:
		n = float64(p)
	case uint8:
		n = float64(p)
	case uint16:
		n = float64(p)
	case uint32:
		n = float64(p)
	case uint64:
		n = float64(p)
	case float32:
		n = float64(p)
	case float64:
		n = p
	case string:
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, false
		}
		n = v
	default:
		return 0, false
	}
	if math.IsNaN(n) {
		return 0, false
	}
	return n, true
}
