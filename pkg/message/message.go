// Package message renders validation message templates.
//
// Two placeholder styles are supported and may be mixed in one template:
//
//   - positional: the first "%s" is replaced by a single argument;
//   - named: "%name%" is replaced by the parameter called name.
//
// Placeholders without a value are left untouched, so a template is always
// returned in a readable form:
//
//	message.Format("At least %s characters", 8, nil)
//	// "At least 8 characters"
//	message.Format("min %rule%, got %data%", nil, map[string]any{"rule": 5, "data": "ab"})
//	// "min 5, got ab"
package message

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Positional is the positional placeholder token.
const Positional = "%s"

// placeholderRegex matches a named %key% token or the positional token.
// Named tokens come first so that "%size%" is not read as "%s" + "ize%".
var placeholderRegex = regexp.MustCompile(`%([A-Za-z_][A-Za-z0-9_]*)%|%s`)

// Format substitutes placeholders in tmpl in a single pass.
// Only the first "%s" is replaced with arg, and only when arg renders to a
// non-blank string. Named tokens take their values from named; unknown names
// stay verbatim. Substituted values are never scanned again.
func Format(tmpl string, arg any, named map[string]any) string {
	if tmpl == "" {
		return tmpl
	}

	positional, hasPositional := "", false
	if arg != nil {
		positional = Stringify(arg)
		hasPositional = strings.TrimSpace(positional) != ""
	}

	used := false
	substitute := func() string {
		if used || !hasPositional {
			return Positional
		}
		used = true
		return positional
	}

	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if match == Positional {
			return substitute()
		}

		name := match[1 : len(match)-1]
		if val, ok := named[name]; ok && val != nil {
			return Stringify(val)
		}
		// "%s%" with no "s" parameter is a positional token followed by a percent sign.
		if name == "s" {
			return substitute() + "%"
		}
		return match
	})
}

// Stringify renders a rule parameter for display.
// Numbers use their decimal form, lists are joined with ", ", and regular
// expressions render as their source.
func Stringify(v any) string {
	switch tv := v.(type) {
	case nil:
		return ""
	case string:
		return tv
	case int:
		return strconv.Itoa(tv)
	case int64:
		return strconv.FormatInt(tv, 10)
	case int32:
		return strconv.FormatInt(int64(tv), 10)
	case uint:
		return strconv.FormatUint(uint64(tv), 10)
	case uint64:
		return strconv.FormatUint(tv, 10)
	case float64:
		return strconv.FormatFloat(tv, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(tv), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(tv)
	case *regexp.Regexp:
		if tv == nil {
			return ""
		}
		return tv.String()
	case []string:
		return strings.Join(tv, ", ")
	case []any:
		parts := make([]string, 0, len(tv))
		for _, item := range tv {
			parts = append(parts, Stringify(item))
		}
		return strings.Join(parts, ", ")
	case fmt.Stringer:
		return tv.String()
	default:
		return fmt.Sprint(v)
	}
}
