package indent

import (
	"bytes"
	"io"
)

// A writeState says how far the current line has been processed.
type writeState int

const (
	// Inside a line. Forward bytes until the next newline.
	midLine writeState = iota

	// An indent is owed before the next non-empty line.
	// Empty lines pass through unindented.
	needIndent

	// Draining Writer.pending into the destination before
	// any further caller bytes.
	writingIndent
)

// A Writer adapts an io.Writer to insert an indent before each
// non-empty line. Specifically, it inserts the indent between each
// newline when followed by a non-newline.
//
// A Writer has a level, starting at 0, meaning no indentation is
// written. Inc and Dec raise and lower it. Each non-empty line is
// prefixed with the indent string repeated level times.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	w      io.Writer
	indent string
	level  int

	// prefix is indent repeated level times.
	// Inc, Dec, and Reset maintain it incrementally.
	prefix []byte

	state writeState

	// pending is the tail of prefix still owed to w.
	// It is non-empty only in the writingIndent state.
	pending []byte
}

// NewWriter returns a Writer with a level of 0 that indents each
// non-empty line with indent repeated level times.
func NewWriter(w io.Writer, indent string) *Writer {
	return &Writer{
		w:      w,
		indent: indent,
		state:  needIndent,
	}
}

// Inc increases the indent level by 1.
func (w *Writer) Inc() {
	w.level++
	w.prefix = append(w.prefix, w.indent...)
}

// Dec decreases the indent level by 1.
// It does nothing if the level is already 0.
func (w *Writer) Dec() {
	if w.level == 0 {
		return
	}
	w.level--
	// len is in bytes, not runes, so a multi-byte indent
	// is removed exactly.
	w.prefix = w.prefix[:len(w.prefix)-len(w.indent)]
}

// Reset sets the indent level back to 0.
func (w *Writer) Reset() {
	w.level = 0
	// Drop the buffer rather than truncate it, so a stalled
	// pending indent keeps its backing bytes.
	w.prefix = nil
}

// Level returns the current indent level.
func (w *Writer) Level() int { return w.level }

// Indent returns the indent string passed to NewWriter.
func (w *Writer) Indent() string { return w.indent }

// Unwrap returns the underlying writer. A caller that abandons w
// after Unwrap discards any partially written indent.
func (w *Writer) Unwrap() io.Writer { return w.w }

// Write writes p with indents inserted, stopping early only if the
// underlying writer reports a short write, a zero-length write, or
// an error. The returned count covers bytes of p only; indent bytes
// are never charged to the caller. A return of n < len(p) with a nil
// error means the underlying writer is not accepting more data, and
// the caller may retry with the rest of p.
func (w *Writer) Write(p []byte) (n int, err error) {
	for {
		switch w.state {
		case midLine:
			i := bytes.IndexByte(p, '\n')
			if i < 0 {
				// No newline; forward the rest verbatim.
				m, err := w.w.Write(p)
				return n + m, err
			}
			if i == 0 {
				// At a newline now. Request an indent at the
				// front of the next non-empty line. The newline
				// itself is forwarded by the needIndent state.
				w.state = needIndent
				continue
			}
			// Forward the rest of this line plus its newline. Once
			// the line body is out, the next non-empty line owes an
			// indent: a still-unwritten trailing newline is handled
			// by needIndent the same way as a blank line.
			m, err := w.w.Write(p[:i+1])
			if m >= i {
				w.state = needIndent
			}
			n += m
			if err != nil || m < i+1 {
				return n, err
			}
			p = p[i+1:]

		case needIndent:
			i := indexNonNewline(p)
			if i < 0 {
				// Nothing but empty lines; forward them verbatim.
				m, err := w.w.Write(p)
				return n + m, err
			}
			if i == 0 {
				// At the start of a non-empty line now.
				// Begin inserting an indent.
				w.state = writingIndent
				w.pending = w.prefix
				continue
			}
			// Forward the leading empty lines. If they all made it
			// out, force an indent before the line that follows.
			m, err := w.w.Write(p[:i])
			if m >= i {
				w.state = writingIndent
				w.pending = w.prefix
			}
			n += m
			if err != nil || m < i {
				return n, err
			}
			p = p[i:]

		case writingIndent:
			// The indent is internal data; none of it counts
			// toward n. On error, pending is left exactly where
			// the write stalled so a retry resumes correctly.
			m, err := w.w.Write(w.pending)
			if m >= len(w.pending) {
				w.state = midLine
				w.pending = nil
				if err != nil {
					return n, err
				}
				continue
			}
			w.pending = w.pending[m:]
			if err != nil {
				return n, err
			}
			if m == 0 {
				// The destination cannot accept more data.
				// Report only caller bytes consumed so far,
				// which may be zero even after empty lines
				// were forwarded earlier in this call.
				return n, nil
			}
		}

		if len(p) == 0 && w.state != writingIndent {
			return n, nil
		}
	}
}

// Flush completes any partially written indent, then flushes the
// underlying writer if it has a Flush method. A zero-length write
// while draining the indent is reported as io.ErrShortWrite, since
// Flush has no count to carry partial progress.
func (w *Writer) Flush() error {
	for w.state == writingIndent {
		m, err := w.w.Write(w.pending)
		if m >= len(w.pending) {
			w.state = midLine
			w.pending = nil
			if err != nil {
				return err
			}
			break
		}
		w.pending = w.pending[m:]
		if err != nil {
			return err
		}
		if m == 0 {
			return io.ErrShortWrite
		}
	}
	if f, ok := w.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// indexNonNewline returns the index of the first byte of p that is
// not a newline, or -1 if there is none.
func indexNonNewline(p []byte) int {
	for i, b := range p {
		if b != '\n' {
			return i
		}
	}
	return -1
}
