// Package merge deep-merges configuration trees.
//
// A tree is a map[string]any whose values are either nested trees or leaves.
// Deep walks every key of the override: when both sides hold a nested tree the
// merge recurses, otherwise the override value replaces the base value. Slices,
// compiled regular expressions and primitives are leaves and are never merged
// into. Keys missing from the override keep their base value.
//
// # Usage
//
//	defaults := map[string]any{
//	    "messages": map[string]any{"required": "This field is required"},
//	    "patterns": map[string]any{"email": emailRe},
//	}
//	merged := merge.Deep(defaults, map[string]any{
//	    "messages": map[string]any{"min": "At least %s characters"},
//	})
//	// merged["messages"] now holds both "required" and "min".
//
// Deep never mutates its arguments: the result is a fresh tree built from deep
// copies of both inputs, so the same defaults can be merged into any number of
// sessions without aliasing.
package merge
