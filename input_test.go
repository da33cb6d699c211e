package fieldcheck_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck"
)

func TestSelectorName(t *testing.T) {
	tests := map[string]string{
		"#email":                "email",
		"email":                 "email",
		"[name=email]":          "email",
		`input[name="email"]`:   "email",
		"textarea[name='bio']":  "bio",
		"  #padded ":            "padded",
		"":                      "",
	}
	for selector, want := range tests {
		t.Run(selector, func(t *testing.T) {
			assert.Equal(t, want, fieldcheck.SelectorName(selector))
		})
	}
}

func TestFormResolver(t *testing.T) {
	form := fieldcheck.FormResolver(url.Values{"email": {"a@b.co", "ignored"}, "empty": {}})

	src, err := form.Resolve("#email")
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", src.Value())
	assert.Equal(t, "email-feedback", src.ParentContainer())

	src, err = form.Resolve("empty")
	require.NoError(t, err)
	assert.Equal(t, "", src.Value())

	_, err = form.Resolve("#missing")
	assert.ErrorIs(t, err, fieldcheck.ErrConfiguration)

	_, err = form.Resolve("   ")
	assert.ErrorIs(t, err, fieldcheck.ErrConfiguration)
}

func TestFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("email=john%40example.com"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	form, err := fieldcheck.FromRequest(r)
	require.NoError(t, err)

	s, err := fieldcheck.Select(form, `input[name="email"]`)
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", s.Value())
}
