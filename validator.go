package fieldcheck

import (
	"fmt"

	"github.com/dmitrymomot/fieldcheck/pkg/logger"
)

// State is the outcome of a declarative validation run.
type State int

const (
	StatePending State = iota
	StateFailed
	StateValid
)

func (s State) String() string {
	switch s {
	case StateFailed:
		return "failed"
	case StateValid:
		return "valid"
	default:
		return "pending"
	}
}

// RuleSpec names a rule and its single parameter.
type RuleSpec struct {
	Name  string
	Param any
}

// Rules is an ordered rule list; rules run in slice order.
type Rules []RuleSpec

// Names returns the rule names in order.
func (r Rules) Names() []string {
	names := make([]string, len(r))
	for i, spec := range r {
		names[i] = spec.Name
	}
	return names
}

// Result describes one declarative run.
type Result struct {
	State State
	// Value is the snapshot that was validated.
	Value string
	// Rule is the name of the failing rule, empty unless State is StateFailed.
	Rule string
	// Message is the formatted failure message, empty unless State is StateFailed.
	Message  string
	Warnings []Warning
	// Feedback is ready to hand to a renderer.
	Feedback Feedback
}

// Valid reports whether every rule passed.
func (r Result) Valid() bool { return r.State == StateValid }

// ValidatorConfig configures a declarative Validator.
type ValidatorConfig struct {
	// Field names the validated input in feedback and logs.
	Field string
	// Rules run in order until the first failure. Required.
	Rules Rules
	// Messages override the settings' templates for this validator only.
	Messages map[string]string
	// OnSuccess is called once when every rule passes.
	OnSuccess func(Result)
	// OnError is called once with the first failure.
	OnError func(Result)
}

// Validator runs a fixed rule list against a value source and stops at the
// first failing rule. Unlike Session, an unknown rule name is an error.
type Validator struct {
	source ValueSource
	cfg    ValidatorConfig
	env    env
}

// NewValidator returns a validator for src. It fails with ErrConfiguration
// when src is nil or cfg has no rules.
func NewValidator(src ValueSource, cfg ValidatorConfig, opts ...Option) (*Validator, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: value source is nil", ErrConfiguration)
	}
	if len(cfg.Rules) == 0 {
		return nil, fmt.Errorf("%w: rules are required", ErrConfiguration)
	}
	for i, spec := range cfg.Rules {
		if spec.Name == "" {
			return nil, fmt.Errorf("%w: rule #%d has no name", ErrConfiguration, i)
		}
	}

	if len(cfg.Messages) > 0 {
		opts = append(opts[:len(opts):len(opts)], WithSettings(Settings{Messages: cfg.Messages}))
	}

	cfg.Rules = append(Rules(nil), cfg.Rules...)
	return &Validator{source: src, cfg: cfg, env: resolveOptions(opts)}, nil
}

// NewValidatorFor resolves selector with r and returns a validator for it.
func NewValidatorFor(r Resolver, selector string, cfg ValidatorConfig, opts ...Option) (*Validator, error) {
	src, err := resolve(r, selector)
	if err != nil {
		return nil, err
	}
	if cfg.Field == "" {
		cfg.Field = SelectorName(selector)
	}
	return NewValidator(src, cfg, opts...)
}

// Rules returns a copy of the configured rules.
func (v *Validator) Rules() Rules {
	return append(Rules(nil), v.cfg.Rules...)
}

// Validate reads a fresh value from the source and runs the rules in order.
// It stops at the first failing rule, calls OnError once and returns a failed
// result carrying exactly one message. When all rules pass it calls OnSuccess
// once. An unknown rule name aborts the run with ErrUnknownRule and no
// callback fires. A rule whose parameter is false is skipped.
func (v *Validator) Validate() (Result, error) {
	s := newSession(v.source.Value(), v.source, v.env)
	res := Result{State: StatePending, Value: s.value}

	for _, spec := range v.cfg.Rules {
		if disabled, ok := spec.Param.(bool); ok && !disabled {
			continue
		}
		if !v.env.rules.Has(spec.Name) {
			err := fmt.Errorf("%w: %q", ErrUnknownRule, spec.Name)
			v.env.log.Error("declarative validation aborted", logger.Field(v.cfg.Field), logger.Rule(spec.Name), logger.Error(err))
			return res, err
		}

		s.Check(spec.Name, spec.Param)
		if err := s.Err(); err != nil {
			return res, err
		}
		if !s.IsValid() {
			res.State = StateFailed
			res.Rule = spec.Name
			res.Message = s.errors[0]
			res.Warnings = s.Warnings()
			res.Feedback = s.Feedback(v.cfg.Field)
			if v.cfg.OnError != nil {
				v.cfg.OnError(res)
			}
			return res, nil
		}
	}

	res.State = StateValid
	res.Warnings = s.Warnings()
	res.Feedback = s.Feedback(v.cfg.Field)
	if v.cfg.OnSuccess != nil {
		v.cfg.OnSuccess(res)
	}
	return res, nil
}
