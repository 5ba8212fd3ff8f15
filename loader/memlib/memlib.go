// Package memlib provides in-process libraries made of Go functions.
//
// It stands in for a shared library in tests and examples. Every open and
// lookup is counted so callers can assert how often a binder reached the
// loader.
//
//	lib := memlib.NewLibrary().
//		Define("add", func(a, b int32) int32 { return a + b })
//	ld := memlib.New().Add("libmath", lib)
package memlib

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	dynerrors "github.com/wippyai/dynbind/errors"
	"github.com/wippyai/dynbind/loader"
	"github.com/wippyai/dynbind/symtab"
)

// Loader serves registered Libraries by name.
// Safe for concurrent use.
type Loader struct {
	libs        map[string]*Library
	unavailable map[string]bool
	opens       atomic.Int64
	mu          sync.RWMutex
}

// New creates an empty loader.
func New() *Loader {
	return &Loader{
		libs:        make(map[string]*Library),
		unavailable: make(map[string]bool),
	}
}

// Add registers lib under name and returns the loader for chaining.
func (l *Loader) Add(name string, lib *Library) *Loader {
	l.mu.Lock()
	defer l.mu.Unlock()
	lib.mu.Lock()
	lib.name = name
	lib.mu.Unlock()
	l.libs[name] = lib
	return l
}

// SetUnavailable makes Open fail for name until cleared, simulating a
// missing or unloadable file.
func (l *Loader) SetUnavailable(name string, unavailable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.unavailable[name] = unavailable
}

// Open implements loader.Loader.
func (l *Loader) Open(name string) (loader.Library, error) {
	l.opens.Add(1)

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.unavailable[name] {
		return nil, dynerrors.LibraryLoad(name, fmt.Errorf("%s: marked unavailable", name))
	}
	lib, ok := l.libs[name]
	if !ok {
		return nil, dynerrors.LibraryLoad(name, fmt.Errorf("%s: no such library", name))
	}
	return lib, nil
}

// Opens returns the number of Open calls, successful or not.
func (l *Loader) Opens() int64 {
	return l.opens.Load()
}

// Library is a set of Go functions exported by name.
type Library struct {
	funcs    map[string]reflect.Value
	name     string
	lookups  atomic.Int64
	batches  atomic.Int64
	resolved atomic.Int64
	mu       sync.RWMutex
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{funcs: make(map[string]reflect.Value)}
}

// Define exports fn under name. fn must be a func whose parameter and result
// types are the Go types of symtab kinds (see symtab.Kind.GoType), with at
// most one result. Define panics otherwise.
func (l *Library) Define(name string, fn any) *Library {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		panic(fmt.Sprintf("memlib: Define %q: %T is not a func", name, fn))
	}
	if v.Type().NumOut() > 1 {
		panic(fmt.Sprintf("memlib: Define %q: more than one result", name))
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.funcs[name] = v
	return l
}

// Name implements loader.Library.
func (l *Library) Name() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.name
}

// Lookup implements loader.Library.
func (l *Library) Lookup(spec symtab.Spec) (loader.Proc, error) {
	l.lookups.Add(1)
	return l.lookup(spec)
}

// LookupBatch implements loader.Library.
func (l *Library) LookupBatch(specs []symtab.Spec) (map[string]loader.Proc, error) {
	l.batches.Add(1)
	procs := make(map[string]loader.Proc, len(specs))
	var missing []string
	var first error
	for _, s := range specs {
		p, err := l.lookup(s)
		if err != nil {
			missing = append(missing, s.Name)
			if first == nil {
				first = err
			}
			continue
		}
		procs[s.Name] = p
	}
	if len(missing) > 0 {
		return nil, dynerrors.SymbolNotFound(l.Name(), missing, first)
	}
	return procs, nil
}

func (l *Library) lookup(spec symtab.Spec) (loader.Proc, error) {
	l.mu.RLock()
	fn, ok := l.funcs[spec.Name]
	name := l.name
	l.mu.RUnlock()

	if !ok {
		return nil, dynerrors.SymbolNotFound(name, []string{spec.Name}, nil)
	}
	if got, match := signatureOf(fn.Type(), spec); !match {
		return nil, dynerrors.SignatureMismatch(name, spec.Name, spec.Signature(), got)
	}
	l.resolved.Add(1)
	return &proc{spec: spec, fn: fn}, nil
}

// Lookups returns the number of single-symbol Lookup calls.
func (l *Library) Lookups() int64 { return l.lookups.Load() }

// Batches returns the number of LookupBatch calls.
func (l *Library) Batches() int64 { return l.batches.Load() }

// Resolved returns how many symbols were successfully looked up, through
// either path.
func (l *Library) Resolved() int64 { return l.resolved.Load() }

func signatureOf(t reflect.Type, spec symtab.Spec) (string, bool) {
	match := t.NumIn() == len(spec.Args)
	for i := 0; match && i < t.NumIn(); i++ {
		match = t.In(i) == spec.Args[i].GoType()
	}
	if spec.Return == symtab.Void {
		match = match && t.NumOut() == 0
	} else {
		match = match && t.NumOut() == 1 && t.Out(0) == spec.Return.GoType()
	}
	if match {
		return spec.Signature(), true
	}
	return t.String(), false
}

type proc struct {
	fn   reflect.Value
	spec symtab.Spec
}

func (p *proc) Spec() symtab.Spec { return p.spec }

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
