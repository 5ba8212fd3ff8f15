package binder

import (
	"slices"

	"github.com/wippyai/dynbind/loader"
	"github.com/wippyai/dynbind/symtab"
)

// Symbol is a bound export. It is created once per name by a Cache and
// shared read-only by every caller that resolves that name.
type Symbol struct {
	proc loader.Proc
	spec symtab.Spec
}

// Name returns the export name.
func (s *Symbol) Name() string {
	return s.spec.Name
}

// Spec returns the declared signature.
func (s *Symbol) Spec() symtab.Spec {
	spec := s.spec
	spec.Args = slices.Clone(spec.Args)
	return spec
}

// Proc returns the underlying entry point.
func (s *Symbol) Proc() loader.Proc {
	return s.proc
}

// Call coerces args to the declared kinds and invokes the export.
// The result is the Go value of the return kind, or nil for void.
func (s *Symbol) Call(args ...any) (any, error) {
	in, err := loader.CoerceArgs(s.spec, args)
	if err != nil {
		return nil, err
	}
	return s.proc.Call(in)
}

func (s *Symbol) String() string {
	return s.spec.String()
}
