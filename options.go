package fieldcheck

import (
	"log/slog"

	"github.com/dmitrymomot/fieldcheck/pkg/logger"
)

// builtinRules backs sessions created without WithRuleSet. It is never
// exposed, so nothing can register into it.
var builtinRules = NewRuleSet()

// Option configures a Session or a Validator.
type Option func(*options)

type options struct {
	overrides []Settings
	rules     *RuleSet
	log       *slog.Logger
}

// WithSettings layers s over the default settings. Repeated options are
// merged in order, so later ones win.
func WithSettings(s Settings) Option {
	return func(o *options) {
		o.overrides = append(o.overrides, s)
	}
}

// WithRuleSet evaluates rules against rs instead of the built-in set.
func WithRuleSet(rs *RuleSet) Option {
	return func(o *options) {
		if rs != nil {
			o.rules = rs
		}
	}
}

// WithLogger sets the sink for non-fatal diagnostics. Defaults to a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// env is the resolved, immutable environment shared by a validator and the
// sessions it creates.
type env struct {
	settings Settings
	rules    *RuleSet
	log      *slog.Logger
}

func resolveOptions(opts []Option) env {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	e := env{
		settings: DefaultSettings(),
		rules:    o.rules,
		log:      o.log,
	}
	for _, s := range o.overrides {
		e.settings = e.settings.Merge(s)
	}
	if e.rules == nil {
		e.rules = builtinRules
	}
	if e.log == nil {
		e.log = logger.Nop()
	}
	return e
}
