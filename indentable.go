package indent

import (
	"fmt"
	"strings"
)

// String returns s with prefix inserted at the front of every
// non-empty line.
func String(prefix, s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(prefix)*(1+strings.Count(s, "\n")))
	w := NewTextWriter(&b, prefix)
	w.Inc()
	w.WriteString(s)
	return b.String()
}

// Stringer wraps v so that its rendering has prefix inserted at the
// front of every non-empty line.
func Stringer(prefix string, v fmt.Stringer) fmt.Stringer {
	return &stringer{prefix, v}
}

type stringer struct {
	prefix string
	v      fmt.Stringer
}

func (s *stringer) String() string {
	return String(s.prefix, s.v.String())
}
