// Package dl opens native shared libraries with the platform dynamic loader.
//
// On unix systems libraries are opened with dlopen and symbols resolved with
// dlsym through purego, so no cgo toolchain is needed. On Windows LoadLibrary
// and GetProcAddress are used. In both cases a bound symbol is turned into a
// typed Go function with purego.RegisterFunc, built from the declared kinds.
//
// Handles returned by Open are never closed by the binder. Library.Close
// exists for callers that manage lifetimes themselves.
package dl

import (
	"reflect"

	dynerrors "github.com/wippyai/dynbind/errors"
	"github.com/wippyai/dynbind/loader"
	"github.com/wippyai/dynbind/symtab"
)

// Loader opens libraries with the platform dynamic loader.
type Loader struct{}

// New returns a platform loader.
func New() *Loader {
	return &Loader{}
}

// Open implements loader.Loader. name is passed to the platform loader
// unchanged, so the usual search path rules apply.
func (l *Loader) Open(name string) (loader.Library, error) {
	h, err := open(name)
	if err != nil {
		return nil, dynerrors.LibraryLoad(name, err)
	}
	return &Library{name: name, handle: h}, nil
}

// Library is an opened native library.
type Library struct {
	name   string
	handle uintptr
}

// Name implements loader.Library.
func (lib *Library) Name() string {
	return lib.name
}

// Lookup implements loader.Library. The native signature cannot be
// inspected; the declared spec is trusted.
func (lib *Library) Lookup(spec symtab.Spec) (loader.Proc, error) {
	addr, err := sym(lib.handle, spec.Name)
	if err != nil || addr == 0 {
		return nil, dynerrors.SymbolNotFound(lib.name, []string{spec.Name}, err)
	}
	fn, err := makeFunc(spec, addr)
	if err != nil {
		return nil, dynerrors.New(dynerrors.PhaseLookup, dynerrors.KindUnsupportedKind).
			Library(lib.name).
			Symbols(spec.Name).
			Detail("cannot marshal %s", spec.Signature()).
			Cause(err).
			Build()
	}
	return &proc{spec: spec, fn: fn, addr: addr}, nil
}

// LookupBatch implements loader.Library.
func (lib *Library) LookupBatch(specs []symtab.Spec) (map[string]loader.Proc, error) {
	return loader.LookupEach(lib, specs)
}

// Close releases the handle. Procs bound from it must not be called afterwards.
func (lib *Library) Close() error {
	if lib.handle == 0 {
		return nil
	}
	err := closeLib(lib.handle)
	lib.handle = 0
	return err
}

type proc struct {
	fn   reflect.Value
	spec symtab.Spec
	addr uintptr
}

func (p *proc) Spec() symtab.Spec { return p.spec }

// Addr returns the entry point address.
func (p *proc) Addr() uintptr { return p.addr }

func (p *proc) Call(args []any) (any, error) {
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		in[i] = reflect.ValueOf(a)
	}
	out := p.fn.Call(in)
	if len(out) == 0 {
		return nil, nil
	}
	return out[0].Interface(), nil
}
