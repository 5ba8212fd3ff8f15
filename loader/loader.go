package loader

import "github.com/wippyai/dynbind/symtab"

// Loader opens shared libraries.
type Loader interface {
	// Open returns a handle to the named library. Failures are
	// errors.ErrLibraryLoad.
	Open(name string) (Library, error)
}

// Library is an opened shared library.
type Library interface {
	// Name returns the identifier the library was opened with.
	Name() string

	// Lookup binds one export. A missing export, or one whose native
	// signature is known to differ from spec, is errors.ErrSymbolNotFound.
	Lookup(spec symtab.Spec) (Proc, error)

	// LookupBatch binds every spec or none. On failure it returns a nil map
	// and a single errors.ErrSymbolNotFound naming all missing exports.
	LookupBatch(specs []symtab.Spec) (map[string]Proc, error)
}

// Proc is a bound entry point.
type Proc interface {
	Spec() symtab.Spec

	// Call invokes the entry point. args must already be coerced with
	// CoerceArgs. The result is the Go value of the return kind, or nil for void.
	Call(args []any) (any, error)
}

// LookupEach implements LookupBatch on top of Lookup for libraries that have
// no native batch operation. All specs are attempted so the error names every
// missing export.
func LookupEach(lib Library, specs []symtab.Spec) (map[string]Proc, error) {
	procs := make(map[string]Proc, len(specs))
	var missing []string
	var first error
	for _, s := range specs {
		p, err := lib.Lookup(s)
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
		return nil, batchError(lib.Name(), missing, first)
	}
	return procs, nil
}
