package indent

import (
	"io"
	"strings"
)

// A TextWriter is the textual counterpart of Writer. It adapts an
// io.StringWriter, such as a strings.Builder, to insert an indent
// before each non-empty line.
//
// A TextWriter keeps no retry state: it is meant for destinations
// whose WriteString accepts everything it is given or fails
// outright, so unlike Writer it never stops mid-indent.
type TextWriter struct {
	sw     io.StringWriter
	indent string
	level  int
	prefix string
	bol    bool // an indent is owed before the next non-empty line
}

// NewTextWriter returns a TextWriter with a level of 0 that indents
// each non-empty line with indent repeated level times.
func NewTextWriter(sw io.StringWriter, indent string) *TextWriter {
	return &TextWriter{
		sw:     sw,
		indent: indent,
		bol:    true,
	}
}

// Inc increases the indent level by 1.
func (w *TextWriter) Inc() {
	w.level++
	w.prefix += w.indent
}

// Dec decreases the indent level by 1.
// It does nothing if the level is already 0.
func (w *TextWriter) Dec() {
	if w.level == 0 {
		return
	}
	w.level--
	w.prefix = w.prefix[:len(w.prefix)-len(w.indent)]
}

// Reset sets the indent level back to 0.
func (w *TextWriter) Reset() {
	w.level = 0
	w.prefix = ""
}

// Level returns the current indent level.
func (w *TextWriter) Level() int { return w.level }

// Indent returns the indent string passed to NewTextWriter.
func (w *TextWriter) Indent() string { return w.indent }

// WriteString writes s with indents inserted. It applies the same
// line detection as Writer.Write: empty lines pass through with no
// indent. On error it returns the number of bytes of s already
// accepted by the destination.
func (w *TextWriter) WriteString(s string) (n int, err error) {
	for len(s) > 0 {
		if w.bol {
			if i := newlineRun(s); i > 0 {
				// Empty lines are never indented.
				m, err := w.sw.WriteString(s[:i])
				n += m
				if err != nil {
					return n, err
				}
				s = s[i:]
				continue
			}
			if _, err := w.sw.WriteString(w.prefix); err != nil {
				return n, err
			}
			w.bol = false
		}
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			m, err := w.sw.WriteString(s)
			return n + m, err
		}
		m, err := w.sw.WriteString(s[:i+1])
		n += m
		if err != nil {
			return n, err
		}
		s = s[i+1:]
		w.bol = true
	}
	return n, nil
}

// newlineRun returns the length of the run of newlines at the
// start of s.
func newlineRun(s string) int {
	i := 0
	for i < len(s) && s[i] == '\n' {
		i++
	}
	return i
}
