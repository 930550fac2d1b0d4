// Package markup writes hand-built HTML for templ components.
package markup

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Writer writes HTML to w and keeps the first write error.
type Writer struct {
	ctx context.Context
	w   io.Writer
	err error
}

// New returns a Writer for one component render.
func New(ctx context.Context, w io.Writer) *Writer {
	return &Writer{ctx: ctx, w: w}
}

// Raw writes parts unescaped.
func (m *Writer) Raw(parts ...string) {
	for _, part := range parts {
		if m.err != nil {
			return
		}
		_, m.err = io.WriteString(m.w, part)
	}
}

// Text writes value HTML-escaped.
func (m *Writer) Text(value string) {
	m.Raw(templ.EscapeString(value))
}

// Lines writes value escaped with each line break turned into <br>.
func (m *Writer) Lines(value string) {
	value = strings.ReplaceAll(value, "\r\n", "\n")
	for i, line := range strings.Split(value, "\n") {
		if i > 0 {
			m.Raw("<br>")
		}
		m.Text(line)
	}
}

// Attr writes ` name="value"` with value escaped.
func (m *Writer) Attr(name string, value string) {
	m.Raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// Render renders a nested component into the same writer.
func (m *Writer) Render(component templ.Component) {
	if m.err != nil || component == nil {
		return
	}
	m.err = component.Render(m.ctx, m.w)
}

// Err returns the first write error.
func (m *Writer) Err() error {
	return m.err
}
