package glu

import (
	"slices"
	"sync"

	"github.com/wippyai/dynbind/binder"
	"github.com/wippyai/dynbind/loader"
	"github.com/wippyai/dynbind/loader/dl"
)

// Handle types returned by the New* constructors. They are opaque
// addresses owned by GLU and released by the matching Delete* call.
type (
	Quadric    uintptr
	Tesselator uintptr
	Nurbs      uintptr
)

// ExtensionExports lists exports that only some GLU builds provide.
var ExtensionExports = []string{"gluErrorUnicodeStringEXT"}

// CoreNames returns the exports every GLU build provides, sorted.
func CoreNames() []string {
	return slices.DeleteFunc(Symbols.Names(), func(n string) bool {
		return slices.Contains(ExtensionExports, n)
	})
}

// GLU binds and calls GLU exports through a binding cache.
// Safe for concurrent use to the extent the underlying library is.
type GLU struct {
	cache *binder.Cache
}

// New creates a GLU that opens LibraryName through ld on first use.
func New(ld loader.Loader) *GLU {
	return NewWithOptions(ld, binder.Options{Name: "glu"})
}

// NewWithOptions is like New with explicit cache options.
func NewWithOptions(ld loader.Loader, opts binder.Options) *GLU {
	return &GLU{cache: binder.NewWithOptions(Symbols, ld, LibraryName, opts)}
}

// Wrap uses an existing cache. Its table should contain Symbols; methods
// whose export is missing from the table fail with errors.ErrUnknownSymbol.
func Wrap(c *binder.Cache) *GLU {
	return &GLU{cache: c}
}

var defaultGLU = sync.OnceValue(func() *GLU {
	return New(dl.New())
})

// Default returns the process-wide GLU backed by the system library.
func Default() *GLU {
	return defaultGLU()
}

// Cache returns the binding cache.
func (g *GLU) Cache() *binder.Cache {
	return g.cache
}

// Preload binds names ahead of use, or every export when names is empty.
func (g *GLU) Preload(names ...string) error {
	return g.cache.Preload(names...)
}

// Resolve binds a single export.
func (g *GLU) Resolve(name string) (*binder.Symbol, error) {
	return g.cache.Resolve(name)
}

func (g *GLU) callVoid(name string, args ...any) error {
	_, err := g.cache.Call(name, args...)
	return err
}

func (g *GLU) callInt32(name string, args ...any) (int32, error) {
	res, err := g.cache.Call(name, args...)
	if err != nil {
		return 0, err
	}
	n, _ := res.(int32)
	return n, nil
}

func (g *GLU) callAddr(name string, args ...any) (uintptr, error) {
	res, err := g.cache.Call(name, args...)
	if err != nil {
		return 0, err
	}
	p, _ := res.(uintptr)
	return p, nil
}
