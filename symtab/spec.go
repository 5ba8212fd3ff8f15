package symtab

import (
	"slices"
	"strings"
)

// Spec is the calling signature of one exported function.
type Spec struct {
	Name   string
	Args   []Kind
	Return Kind
}

// Signature renders the argument and return kinds, e.g. "(i32, i32) i32".
func (s Spec) Signature() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, a := range s.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	if s.Return != Void {
		b.WriteByte(' ')
		b.WriteString(s.Return.String())
	}
	return b.String()
}

// String renders the spec as "name(args) ret".
func (s Spec) String() string {
	return s.Name + s.Signature()
}

// Equal reports whether two specs declare the same name and signature.
func (s Spec) Equal(o Spec) bool {
	return s.Name == o.Name && s.Return == o.Return && slices.Equal(s.Args, o.Args)
}

func (s Spec) clone() Spec {
	s.Args = slices.Clone(s.Args)
	return s
}
