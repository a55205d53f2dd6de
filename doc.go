/*
Package indent provides adapters that insert an indent at the
front of every non-empty line written through them.

Writer wraps an io.Writer. It keeps an indent level, starting
at 0, and writes the indent string once per level before the
first byte of each non-empty line. Empty lines (bare newlines)
pass through untouched. Call Inc, Dec, and Reset to change the
level between writes:

	w := indent.NewWriter(os.Stdout, "    ")
	fmt.Fprintln(w, "<trk>")
	w.Inc()
	fmt.Fprintln(w, "<name>X</name>")
	w.Dec()
	fmt.Fprintln(w, "</trk>")

A Writer is itself an io.Writer, so writers can be nested to
combine indent strings, say a mixture of tabs and spaces. The
writer constructed first (nearest the destination) produces
the leftmost indent.

Writer follows the destination's own contract: its Write may
consume fewer bytes than given when the destination reports a
short or zero-length write, and the caller retries with the
rest. Internal state survives any such split, so the output is
the same no matter how the writes are divided.

TextWriter is the counterpart for in-memory destinations such
as a strings.Builder, where a write cannot partially fail.
String and Stringer indent a string or a fmt.Stringer directly.
*/
package indent
