package merge

// Tree is a nested configuration map.
type Tree = map[string]any

// Deep returns a new tree holding base with override merged on top of it.
// Override values win on conflicts. Nested trees merge key by key; any other
// pair of values, including a tree on one side and a leaf on the other,
// resolves by replacement. Neither argument is modified.
func Deep(base, override Tree) Tree {
	out := Clone(base)
	if out == nil {
		out = make(Tree, len(override))
	}
	deepInto(out, override)
	return out
}

// All folds overrides into base from left to right, so later overrides win.
func All(base Tree, overrides ...Tree) Tree {
	out := Clone(base)
	if out == nil {
		out = make(Tree)
	}
	for _, o := range overrides {
		deepInto(out, o)
	}
	return out
}

// Clone returns a deep copy of t. Nested trees are copied recursively; leaves
// are copied by value (slices are copied shallowly, regexps are shared since
// they are immutable).
func Clone(t Tree) Tree {
	if t == nil {
		return nil
	}
	out := make(Tree, len(t))
	for k, v := range t {
		out[k] = cloneValue(v)
	}
	return out
}

func deepInto(dst, src Tree) {
	for key, srcVal := range src {
		dstVal, exists := dst[key]
		if exists && Mergeable(dstVal) && Mergeable(srcVal) {
			nested := dstVal.(Tree)
			if nested == nil {
				nested = make(Tree)
				dst[key] = nested
			}
			deepInto(nested, srcVal.(Tree))
			continue
		}
		dst[key] = cloneValue(srcVal)
	}
}

// Mergeable reports whether v is a nested tree that Deep recurses into.
// Only map[string]any qualifies; regexps, slices and primitives are leaves.
func Mergeable(v any) bool {
	_, ok := v.(Tree)
	return ok
}

func cloneValue(v any) any {
	switch tv := v.(type) {
	case Tree:
		return Clone(tv)
	case []any:
		return append([]any(nil), tv...)
	case []string:
		return append([]string(nil), tv...)
	default:
		return v
	}
}
