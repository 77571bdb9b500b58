package web

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so components can render
// straight-line markup and check once at the end.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) rawf(format string, args ...any) {
	h.raw(fmt.Sprintf(format, args...))
}

// text writes s HTML-escaped
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// option writes one <option>, marking it selected when value == current
func (h *htmlWriter) option(value, label, current string) {
	h.raw(`<option value="`)
	h.text(value)
	h.raw(`"`)
	if value == current {
		h.raw(` selected`)
	}
	h.raw(`>`)
	h.text(label)
	h.raw(`</option>`)
}
