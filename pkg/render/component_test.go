package render_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck"
	"github.com/dmitrymomot/fieldcheck/pkg/render"
)

func TestComponent(t *testing.T) {
	classes := fieldcheck.DefaultSettings().Classes

	t.Run("renders messages in order", func(t *testing.T) {
		fb := fieldcheck.Feedback{
			Field:   "email",
			Errors:  []string{"first", "second"},
			Classes: classes,
		}
		var buf bytes.Buffer
		require.NoError(t, render.Component(fb).Render(context.Background(), &buf))

		assert.Equal(t,
			`<div id="email-feedback" class="iv-errors-container iv-error" data-valid="false">`+
				`<p class="iv-message">first</p><p class="iv-message">second</p></div>`,
			buf.String())
	})

	t.Run("renders empty container when valid", func(t *testing.T) {
		fb := fieldcheck.Feedback{Field: "email", Valid: true, Classes: classes}
		var buf bytes.Buffer
		require.NoError(t, render.HTML{}.Render(context.Background(), &buf, fb))

		assert.Equal(t, `<div id="email-feedback" class="iv-errors-container iv-success" data-valid="true"></div>`, buf.String())
	})

	t.Run("escapes messages", func(t *testing.T) {
		fb := fieldcheck.Feedback{
			Container: "c",
			Errors:    []string{`<script>alert("x")</script>`},
		}
		var buf bytes.Buffer
		require.NoError(t, render.Component(fb).Render(context.Background(), &buf))

		assert.NotContains(t, buf.String(), "<script>")
		assert.Contains(t, buf.String(), "&lt;script&gt;")
		assert.Contains(t, buf.String(), `id="c"`)
	})

	t.Run("uses feedback from a session", func(t *testing.T) {
		fb := fieldcheck.New("ab").Required().Min(5).Max(1).Feedback("login")
		var buf bytes.Buffer
		require.NoError(t, render.Component(fb).Render(context.Background(), &buf))

		assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte(`<p class="iv-message">`)))
	})

	t.Run("renders a single message by index", func(t *testing.T) {
		fb := fieldcheck.New("ab").Required().Min(5).Max(1).Feedback("login").At(1)
		var buf bytes.Buffer
		require.NoError(t, render.Component(fb).Render(context.Background(), &buf))

		assert.Equal(t,
			`<div id="login-feedback" class="iv-errors-container iv-error" data-valid="false">`+
				`<p class="iv-message">This field should not contain more than 1 characters</p></div>`,
			buf.String())
	})
}
