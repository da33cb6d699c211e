package render

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/fieldcheck"
)

// Component renders fb as a messages container. The container carries the
// errors-container class plus the input state class, and one paragraph per
// message in the order the checks ran.
func Component(fb fieldcheck.Feedback) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<div id="`)
		b.WriteString(templ.EscapeString(fb.ContainerID()))
		b.WriteString(`" class="`)
		b.WriteString(templ.EscapeString(containerClass(fb)))
		b.WriteString(`" data-valid="`)
		b.WriteString(strconv.FormatBool(fb.Valid))
		b.WriteString(`">`)

		msgClass := templ.EscapeString(fb.Classes[fieldcheck.ClassMessage])
		for _, msg := range fb.Errors {
			b.WriteString(`<p class="`)
			b.WriteString(msgClass)
			b.WriteString(`">`)
			b.WriteString(templ.EscapeString(msg))
			b.WriteString(`</p>`)
		}

		b.WriteString(`</div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func containerClass(fb fieldcheck.Feedback) string {
	classes := make([]string, 0, 2)
	if c := fb.Classes[fieldcheck.ClassErrorsContainer]; c != "" {
		classes = append(classes, c)
	}
	if c := fb.InputClass(); c != "" {
		classes = append(classes, c)
	}
	return strings.Join(classes, " ")
}

// HTML implements fieldcheck.Renderer with Component.
type HTML struct{}

var _ fieldcheck.Renderer = HTML{}

// Render writes the component for fb to w.
func (HTML) Render(ctx context.Context, w io.Writer, fb fieldcheck.Feedback) error {
	return Component(fb).Render(ctx, w)
}
