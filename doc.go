// Package fieldcheck validates a single form input value against named rules.
//
// Two usage modes share one engine:
//
//   - Session, the fluent mode: chained checks that always run and accumulate
//     every failure message.
//   - Validator, the declarative mode: an ordered rule list that stops at the
//     first failing rule and reports exactly one message.
//
// Fluent usage:
//
//	s := fieldcheck.New(value).
//		Required().
//		Min(8).
//		Max(120).
//		Match("email").
//		Contain([]string{"a", "b"}).
//		OnSuccess(func(s *fieldcheck.Session) { /* mark input valid */ }).
//		OnError(func(s *fieldcheck.Session) { /* render s.Errors() */ })
//
// Declarative usage:
//
//	v, err := fieldcheck.NewValidatorFor(form, "#email", fieldcheck.ValidatorConfig{
//		Rules: fieldcheck.Rules{
//			{Name: "min", Param: 5},
//			{Name: "max", Param: 20},
//			{Name: "match", Param: "email"},
//		},
//		OnError:   func(r fieldcheck.Result) { /* r.Message */ },
//		OnSuccess: func(r fieldcheck.Result) {},
//	})
//	if err != nil {
//		// ErrConfiguration
//	}
//	res, err := v.Validate() // err wraps ErrUnknownRule for unregistered names
//
// # Settings
//
// Settings hold message templates, named patterns and presentation classes.
// User settings are deep-merged over DefaultSettings with pkg/merge: nested
// keys merge one by one, everything else (including compiled patterns) is
// replaced. Templates use "%s" for the rule parameter, or the named tokens
// %rule%, %data% (the value) and %name% (the rule name); see pkg/message.
//
// # Extending
//
// Custom rules are registered on a RuleSet passed with WithRuleSet, custom
// patterns with Settings.RegisterPattern or WithSettings:
//
//	rules := fieldcheck.NewRuleSet()
//	rules.MustRegister("password", func(v string, _ any) bool {
//		return passwordRe.MatchString(v)
//	})
//	fieldcheck.New(pw, fieldcheck.WithRuleSet(rules)).Check("password", nil)
//
// # Errors
//
// Failed checks are data, collected in Session.Errors or Result.Message, never
// Go errors. ErrConfiguration and ErrUnknownRule report broken setup. Matching
// against an unknown pattern name passes with a Warning logged to the
// WithLogger sink.
package fieldcheck
