package fieldcheck

import (
	"fmt"
	"maps"
	"regexp"

	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/message"
)

// Warning is a non-fatal diagnostic raised while validating, such as a match
// against a pattern name that is not configured. Warnings never fail a check.
type Warning struct {
	Rule    string
	Pattern string
	Message string
}

// Session validates one value snapshot with chained rule calls. Every check
// runs regardless of earlier failures and appends its message on failure.
//
//	s := fieldcheck.New(email).
//		Required().
//		Min(8).
//		Match("email").
//		OnError(func(s *fieldcheck.Session) { render(s.Feedback("email")) })
//
// A Session is not safe for concurrent use; create one per validation attempt.
type Session struct {
	value    string
	source   ValueSource
	env      env
	errors   []string
	warnings []Warning
	err      error
}

// New returns a session validating value.
func New(value string, opts ...Option) *Session {
	return newSession(value, nil, resolveOptions(opts))
}

// FromSource returns a session validating the current value of src.
// The value is read once, here.
func FromSource(src ValueSource, opts ...Option) (*Session, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: value source is nil", ErrConfiguration)
	}
	return newSession(src.Value(), src, resolveOptions(opts)), nil
}

// Select resolves selector with r and returns a session for the result.
func Select(r Resolver, selector string, opts ...Option) (*Session, error) {
	src, err := resolve(r, selector)
	if err != nil {
		return nil, err
	}
	return FromSource(src, opts...)
}

func newSession(value string, src ValueSource, e env) *Session {
	return &Session{value: value, source: src, env: e}
}

// Value returns the value under test.
func (s *Session) Value() string { return s.value }

// Source returns the value source the session was created from, if any.
func (s *Session) Source() ValueSource { return s.source }

// Settings returns the merged settings in effect.
func (s *Session) Settings() Settings { return s.env.settings }

// Required fails when the trimmed value is empty.
func (s *Session) Required(msg ...string) *Session {
	return s.run(RuleRequired, nil, nil, msg)
}

// Min fails when the value is shorter than n characters.
func (s *Session) Min(n int, msg ...string) *Session {
	return s.run(RuleMin, n, n, msg)
}

// Max fails when the value is longer than n characters.
func (s *Session) Max(n int, msg ...string) *Session {
	return s.run(RuleMax, n, n, msg)
}

// Match fails when the value does not match pattern, which is either a
// *regexp.Regexp or the name of a configured pattern. An unknown pattern name
// is reported as a Warning and the check passes.
func (s *Session) Match(pattern any, msg ...string) *Session {
	switch p := pattern.(type) {
	case *regexp.Regexp:
		if p == nil {
			return s.fail(fmt.Errorf("%w: match pattern is nil", ErrConfiguration))
		}
		return s.run(RuleMatch, p, p.String(), msg)
	case string:
		re, ok := s.env.settings.Pattern(p)
		if !ok {
			s.warnUnknownPattern(p)
			return s
		}
		return s.run(RuleMatch, re, p, msg)
	default:
		return s.fail(fmt.Errorf("%w: match pattern must be a name or *regexp.Regexp, got %T", ErrConfiguration, pattern))
	}
}

// Contain fails unless the value contains needles: a string, or a []string
// (or []any of strings) that must all be present.
func (s *Session) Contain(needles any, msg ...string) *Session {
	list, ok := Needles(needles)
	if !ok {
		return s.fail(fmt.Errorf("%w: contain expects a string or a list of strings, got %T", ErrConfiguration, needles))
	}
	return s.run(RuleContain, list, list, msg)
}

// Check runs any registered rule by name. Built-in rules behave exactly like
// their dedicated methods. An unknown rule name does not pass silently: it is
// recorded and returned by Err.
func (s *Session) Check(name string, param any, msg ...string) *Session {
	switch name {
	case RuleMatch:
		return s.Match(param, msg...)
	case RuleContain:
		return s.Contain(param, msg...)
	}
	return s.run(name, param, param, msg)
}

func (s *Session) run(name string, param, display any, msg []string) *Session {
	fn, err := s.env.rules.Resolve(name)
	if err != nil {
		return s.fail(err)
	}
	if !fn(s.value, param) {
		s.errors = append(s.errors, s.format(name, display, msg))
	}
	return s
}

func (s *Session) format(rule string, display any, msg []string) string {
	tmpl := ""
	if len(msg) > 0 {
		tmpl = msg[0]
	}
	if tmpl == "" {
		tmpl = s.env.settings.Message(rule)
	}
	return message.Format(tmpl, display, map[string]any{
		"rule": display,
		"data": s.value,
		"name": rule,
	})
}

func (s *Session) warnUnknownPattern(name string) {
	w := Warning{
		Rule:    RuleMatch,
		Pattern: name,
		Message: fmt.Sprintf("match works only with a regular expression or one of the configured patterns: %v", s.env.settings.PatternNames()),
	}
	s.warnings = append(s.warnings, w)
	s.env.log.Warn("unknown pattern, check skipped",
		logger.Rule(w.Rule),
		logger.Pattern(w.Pattern),
		"known_patterns", s.env.settings.PatternNames(),
	)
}

// fail records the first configuration error; later ones are dropped.
func (s *Session) fail(err error) *Session {
	if s.err == nil {
		s.err = err
		s.env.log.Error("invalid rule configuration", logger.Error(err))
	}
	return s
}

// Err returns the first configuration error hit by a chained call, such as an
// unknown rule name. Validation failures are never reported here. Until Clear
// is called the session reports itself invalid.
func (s *Session) Err() error { return s.err }

// Errors returns a copy of the failure messages in the order checks ran.
func (s *Session) Errors() []string {
	if len(s.errors) == 0 {
		return nil
	}
	out := make([]string, len(s.errors))
	copy(out, s.errors)
	return out
}

// Warnings returns a copy of the non-fatal diagnostics.
func (s *Session) Warnings() []Warning {
	if len(s.warnings) == 0 {
		return nil
	}
	out := make([]Warning, len(s.warnings))
	copy(out, s.warnings)
	return out
}

// IsValid reports whether no check has failed and no configuration error was
// hit. A session with an unknown rule or a malformed parameter is never valid.
func (s *Session) IsValid() bool { return len(s.errors) == 0 && s.err == nil }

// Clear drops all collected failure messages and the configuration error.
func (s *Session) Clear() *Session {
	s.errors = nil
	s.err = nil
	return s
}

// OnSuccess calls fn with the session when it is valid. A nil fn is ignored.
func (s *Session) OnSuccess(fn func(*Session)) *Session {
	if fn != nil && s.IsValid() {
		fn(s)
	}
	return s
}

// OnError calls fn with the session when it is invalid, including when Err is
// set. A nil fn is ignored.
func (s *Session) OnError(fn func(*Session)) *Session {
	if fn != nil && !s.IsValid() {
		fn(s)
	}
	return s
}

// InputClass returns the presentation class for the input's current state.
func (s *Session) InputClass() string {
	return s.Feedback("").InputClass()
}

// Feedback snapshots the session's outcome for a renderer.
func (s *Session) Feedback(field string) Feedback {
	fb := Feedback{
		Field:   field,
		Errors:  s.Errors(),
		Valid:   s.IsValid(),
		Classes: maps.Clone(s.env.settings.Classes),
	}
	if s.source != nil {
		fb.Container = s.source.ParentContainer()
	}
	return fb
}
