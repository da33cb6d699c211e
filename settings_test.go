package fieldcheck_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck"
)

func TestDefaultSettings(t *testing.T) {
	s := fieldcheck.DefaultSettings()

	for _, rule := range []string{"required", "min", "max", "match", "contain"} {
		assert.NotEmpty(t, s.Messages[rule], rule)
	}
	assert.Equal(t, []string{"base64", "date", "email", "ip", "url"}, s.PatternNames())
	assert.Equal(t, "iv-error", s.Class(fieldcheck.ClassInputError))

	t.Run("returns independent copies", func(t *testing.T) {
		a := fieldcheck.DefaultSettings()
		a.Messages["required"] = "changed"
		assert.Equal(t, "This field is required", fieldcheck.DefaultSettings().Messages["required"])
	})
}

func TestDefaultPatterns(t *testing.T) {
	s := fieldcheck.DefaultSettings()
	tests := []struct {
		pattern string
		value   string
		want    bool
	}{
		{"email", "john.doe@example.com", true},
		{"email", "John@Example.ORG", true},
		{"email", "not-an-email", false},
		{"ip", "192.168.0.1", true},
		{"ip", "256.1.1.1", false},
		{"url", "https://example.com/path", true},
		{"base64", "aGVsbG8=", true},
		{"base64", "not base64!", false},
		{"base64", "aGVsbG8gd29ybGQ=", true},
		{"base64", "aGk=", true},
		{"base64", "YWJj", true},
		{"base64", "abc", false},
		{"base64", "", false},
		{"base64", "aGVsbG8", false},
		{"base64", "aG=k", false},
		{"date", "12-05-2020", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.value, func(t *testing.T) {
			re, ok := s.Pattern(tt.pattern)
			require.True(t, ok)
			assert.Equal(t, tt.want, re.MatchString(tt.value))
		})
	}
}

func TestSettingsMerge(t *testing.T) {
	t.Run("override wins and defaults are kept", func(t *testing.T) {
		merged := fieldcheck.DefaultSettings().Merge(fieldcheck.Settings{
			Messages: map[string]string{"min": "At least %s"},
			Classes:  map[string]string{fieldcheck.ClassInputError: "is-invalid"},
		})

		assert.Equal(t, "At least %s", merged.Messages["min"])
		assert.Equal(t, "This field is required", merged.Messages["required"])
		assert.Equal(t, "is-invalid", merged.Classes[fieldcheck.ClassInputError])
		assert.Equal(t, "iv-success", merged.Classes[fieldcheck.ClassInputSuccess])
		assert.Len(t, merged.Patterns, 5)
	})

	t.Run("pattern override replaces the regexp instance", func(t *testing.T) {
		custom := regexp.MustCompile(`^[a-z]+@corp\.io$`)
		merged := fieldcheck.DefaultSettings().Merge(fieldcheck.Settings{
			Patterns: map[string]*regexp.Regexp{"email": custom},
		})

		re, ok := merged.Pattern("email")
		require.True(t, ok)
		assert.Same(t, custom, re)
		_, ok = merged.Pattern("ip")
		assert.True(t, ok)
	})

	t.Run("does not modify receiver or override", func(t *testing.T) {
		base := fieldcheck.DefaultSettings()
		override := fieldcheck.Settings{Messages: map[string]string{"min": "x"}}
		merged := base.Merge(override)
		merged.Messages["max"] = "changed"

		assert.Equal(t, "This field should not contain more than %s characters", base.Messages["max"])
		assert.Len(t, override.Messages, 1)
	})
}

func TestSettingsMergeTree(t *testing.T) {
	t.Run("compiles string patterns", func(t *testing.T) {
		merged, err := fieldcheck.DefaultSettings().MergeTree(map[string]any{
			"patterns": map[string]any{"zip": `^\d{5}$`},
		})
		require.NoError(t, err)

		re, ok := merged.Pattern("zip")
		require.True(t, ok)
		assert.True(t, re.MatchString("12345"))
		assert.Len(t, merged.Patterns, 6)
	})

	t.Run("primitive replacing a zone is a configuration error", func(t *testing.T) {
		_, err := fieldcheck.DefaultSettings().MergeTree(map[string]any{"messages": "oops"})
		assert.ErrorIs(t, err, fieldcheck.ErrConfiguration)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := fieldcheck.DefaultSettings().MergeTree(map[string]any{
			"patterns": map[string]any{"bad": "("},
		})
		assert.ErrorIs(t, err, fieldcheck.ErrConfiguration)
	})

	t.Run("non-string message", func(t *testing.T) {
		_, err := fieldcheck.DefaultSettings().MergeTree(map[string]any{
			"messages": map[string]any{"min": 5},
		})
		assert.ErrorIs(t, err, fieldcheck.ErrConfiguration)
	})

	t.Run("unknown zones are ignored", func(t *testing.T) {
		merged, err := fieldcheck.DefaultSettings().MergeTree(map[string]any{"extra": true})
		require.NoError(t, err)
		assert.Equal(t, fieldcheck.DefaultSettings().Messages, merged.Messages)
	})
}

func TestSettingsRegisterPattern(t *testing.T) {
	var s fieldcheck.Settings
	s.RegisterPattern("zip", regexp.MustCompile(`^\d{5}$`))
	_, ok := s.Pattern("zip")
	assert.True(t, ok)
	assert.Equal(t, fieldcheck.FallbackMessage, s.Message("anything"))
}
