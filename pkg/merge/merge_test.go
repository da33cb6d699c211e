package merge_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/merge"
)

func TestDeep(t *testing.T) {
	t.Run("keeps base keys missing from override", func(t *testing.T) {
		base := merge.Tree{
			"messages": merge.Tree{"required": "req", "min": "min %s"},
			"classes":  merge.Tree{"message": "iv-message"},
		}
		override := merge.Tree{
			"messages": merge.Tree{"min": "at least %s"},
		}

		got := merge.Deep(base, override)

		assert.Equal(t, merge.Tree{
			"messages": merge.Tree{"required": "req", "min": "at least %s"},
			"classes":  merge.Tree{"message": "iv-message"},
		}, got)
	})

	t.Run("override wins on conflicts", func(t *testing.T) {
		got := merge.Deep(merge.Tree{"a": 1}, merge.Tree{"a": 2})
		assert.Equal(t, 2, got["a"])
	})

	t.Run("adds new keys", func(t *testing.T) {
		got := merge.Deep(merge.Tree{"a": 1}, merge.Tree{"b": merge.Tree{"c": true}})
		assert.Equal(t, merge.Tree{"a": 1, "b": merge.Tree{"c": true}}, got)
	})

	t.Run("primitive replaces tree", func(t *testing.T) {
		base := merge.Tree{"messages": merge.Tree{"required": "req"}}
		got := merge.Deep(base, merge.Tree{"messages": "flat"})
		assert.Equal(t, "flat", got["messages"])
	})

	t.Run("tree replaces primitive", func(t *testing.T) {
		got := merge.Deep(merge.Tree{"messages": "flat"}, merge.Tree{"messages": merge.Tree{"min": "x"}})
		assert.Equal(t, merge.Tree{"min": "x"}, got["messages"])
	})

	t.Run("regexp values are replaced, never merged into", func(t *testing.T) {
		oldRe := regexp.MustCompile(`^old$`)
		newRe := regexp.MustCompile(`^new$`)
		base := merge.Tree{"patterns": merge.Tree{"email": oldRe, "ip": oldRe}}
		override := merge.Tree{"patterns": merge.Tree{"email": newRe}}

		got := merge.Deep(base, override)

		patterns, ok := got["patterns"].(merge.Tree)
		require.True(t, ok)
		assert.Same(t, newRe, patterns["email"])
		assert.Same(t, oldRe, patterns["ip"])
	})

	t.Run("regexp replaces tree and tree replaces regexp", func(t *testing.T) {
		re := regexp.MustCompile(`x`)
		got := merge.Deep(merge.Tree{"p": merge.Tree{"a": 1}}, merge.Tree{"p": re})
		assert.Same(t, re, got["p"])

		got = merge.Deep(merge.Tree{"p": re}, merge.Tree{"p": merge.Tree{"a": 1}})
		assert.Equal(t, merge.Tree{"a": 1}, got["p"])
	})

	t.Run("slices replace wholesale", func(t *testing.T) {
		got := merge.Deep(merge.Tree{"s": []any{1, 2, 3}}, merge.Tree{"s": []any{9}})
		assert.Equal(t, []any{9}, got["s"])
	})

	t.Run("does not mutate arguments", func(t *testing.T) {
		base := merge.Tree{"messages": merge.Tree{"required": "req"}}
		override := merge.Tree{"messages": merge.Tree{"min": "min"}}

		got := merge.Deep(base, override)
		got["messages"].(merge.Tree)["max"] = "max"
		override["messages"].(merge.Tree)["extra"] = "extra"

		assert.Equal(t, merge.Tree{"messages": merge.Tree{"required": "req"}}, base)
		assert.NotContains(t, got["messages"], "extra")
	})

	t.Run("nil inputs", func(t *testing.T) {
		assert.Equal(t, merge.Tree{"a": 1}, merge.Deep(nil, merge.Tree{"a": 1}))
		assert.Equal(t, merge.Tree{"a": 1}, merge.Deep(merge.Tree{"a": 1}, nil))
		assert.Equal(t, merge.Tree{}, merge.Deep(nil, nil))
	})

	t.Run("nil nested tree in base", func(t *testing.T) {
		got := merge.Deep(merge.Tree{"m": merge.Tree(nil)}, merge.Tree{"m": merge.Tree{"a": 1}})
		assert.Equal(t, merge.Tree{"a": 1}, got["m"])
	})
}

func TestAll(t *testing.T) {
	base := merge.Tree{"m": merge.Tree{"a": 1, "b": 1}}
	got := merge.All(base,
		merge.Tree{"m": merge.Tree{"a": 2}},
		merge.Tree{"m": merge.Tree{"a": 3, "c": 3}},
	)
	assert.Equal(t, merge.Tree{"m": merge.Tree{"a": 3, "b": 1, "c": 3}}, got)
	assert.Equal(t, merge.Tree{"m": merge.Tree{"a": 1, "b": 1}}, base)
}

func TestMergeable(t *testing.T) {
	assert.True(t, merge.Mergeable(merge.Tree{}))
	assert.False(t, merge.Mergeable(regexp.MustCompile(`a`)))
	assert.False(t, merge.Mergeable([]any{1}))
	assert.False(t, merge.Mergeable("x"))
	assert.False(t, merge.Mergeable(map[string]string{"a": "b"}))
	assert.False(t, merge.Mergeable(nil))
}

func TestClone(t *testing.T) {
	src := merge.Tree{"a": merge.Tree{"b": []any{1}}}
	cp := merge.Clone(src)
	cp["a"].(merge.Tree)["b"] = []any{2}
	assert.Equal(t, []any{1}, src["a"].(merge.Tree)["b"])
	assert.Nil(t, merge.Clone(nil))
}
