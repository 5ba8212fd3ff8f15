package binder

import (
	"slices"
	"sync"

	"go.uber.org/zap"

	dynerrors "github.com/wippyai/dynbind/errors"
	"github.com/wippyai/dynbind/loader"
	"github.com/wippyai/dynbind/symtab"
)

// Options configures a Cache.
type Options struct {
	// Logger overrides the package logger for this cache.
	Logger *zap.Logger
	// Name labels the cache in log output. Defaults to the library name.
	Name string
}

// DefaultOptions returns default cache configuration.
func DefaultOptions() Options {
	return Options{}
}

// Stats counts loader interactions. Bound is the number of bound names.
type Stats struct {
	Opens   int64
	Lookups int64
	Batches int64
	Bound   int
}

// Cache binds the exports declared in a symbol table against one library,
// at most once per name.
type Cache struct {
	table   *symtab.Table
	loader  loader.Loader
	lib     loader.Library
	bound   map[string]*Symbol
	log     *zap.Logger
	library string
	stats   Stats
	mu      sync.RWMutex
}

// New creates a cache with default options. Nothing is opened until the
// first Resolve or Preload.
func New(table *symtab.Table, ld loader.Loader, library string) *Cache {
	return NewWithOptions(table, ld, library, DefaultOptions())
}

// NewWithOptions creates a cache with the given options.
func NewWithOptions(table *symtab.Table, ld loader.Loader, library string, opts Options) *Cache {
	log := opts.Logger
	if log == nil {
		log = Logger()
	}
	name := opts.Name
	if name == "" {
		name = library
	}
	return &Cache{
		table:   table,
		loader:  ld,
		library: library,
		bound:   make(map[string]*Symbol),
		log:     log.With(zap.String("cache", name)),
	}
}

// Table returns the symbol table.
func (c *Cache) Table() *symtab.Table {
	return c.table
}

// Library returns the library identifier.
func (c *Cache) Library() string {
	return c.library
}

// Resolve returns the bound symbol for name, binding it on first use.
//
// Errors: errors.ErrUnknownSymbol if name is not in the table (checked before
// any library interaction), errors.ErrLibraryLoad if the library cannot be
// opened, errors.ErrSymbolNotFound if the library does not export name.
func (c *Cache) Resolve(name string) (*Symbol, error) {
	c.mu.RLock()
	sym, ok := c.bound[name]
	c.mu.RUnlock()
	if ok {
		return sym, nil
	}

	spec, ok := c.table.Lookup(name)
	if !ok {
		return nil, dynerrors.UnknownSymbol(name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have bound it while we waited.
	if sym, ok := c.bound[name]; ok {
		return sym, nil
	}

	lib, err := c.openLocked()
	if err != nil {
		return nil, err
	}

	c.stats.Lookups++
	proc, err := lib.Lookup(spec)
	if err != nil {
		c.log.Warn("bind failed", zap.String("symbol", name), zap.Error(err))
		return nil, err
	}

	sym = &Symbol{spec: spec, proc: proc}
	c.bound[name] = sym
	c.log.Debug("bound symbol",
		zap.String("symbol", name),
		zap.String("signature", spec.Signature()))
	return sym, nil
}

// MustResolve is like Resolve but panics on error.
func (c *Cache) MustResolve(name string) *Symbol {
	sym, err := c.Resolve(name)
	if err != nil {
		panic(err)
	}
	return sym
}

// Call resolves name and invokes it with args.
func (c *Cache) Call(name string, args ...any) (any, error) {
	sym, err := c.Resolve(name)
	if err != nil {
		return nil, err
	}
	return sym.Call(args...)
}

// Preload binds names ahead of first use in a single batch lookup. With no
// names, every symbol in the table is preloaded. Names already bound are
// skipped; if all are bound, the library is not touched.
//
// The batch is all-or-nothing: on error no name from this call is bound.
// Names bound before the call stay bound. Unknown names fail with
// errors.ErrUnknownSymbol before the library is opened.
func (c *Cache) Preload(names ...string) error {
	if len(names) == 0 {
		names = c.table.Names()
	}

	specs := make([]symtab.Spec, 0, len(names))
	seen := make(map[string]bool, len(names))
	var unknown []string
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		spec, ok := c.table.Lookup(n)
		if !ok {
			unknown = append(unknown, n)
			continue
		}
		specs = append(specs, spec)
	}
	if len(unknown) > 0 {
		return dynerrors.UnknownSymbol(unknown...)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	pending := specs[:0]
	for _, s := range specs {
		if _, ok := c.bound[s.Name]; !ok {
			pending = append(pending, s)
		}
	}
	if len(pending) == 0 {
		return nil
	}

	lib, err := c.openLocked()
	if err != nil {
		return err
	}

	c.stats.Batches++
	procs, err := lib.LookupBatch(pending)
	if err != nil {
		c.log.Warn("preload failed", zap.Int("requested", len(pending)), zap.Error(err))
		return err
	}

	// A loader that drops names without an error fails the whole batch.
	if missing := missingFrom(pending, procs); len(missing) > 0 {
		return dynerrors.SymbolNotFound(c.library, missing, nil)
	}
	for _, s := range pending {
		c.bound[s.Name] = &Symbol{spec: s, proc: procs[s.Name]}
	}
	c.log.Debug("preloaded symbols",
		zap.Int("bound", len(pending)),
		zap.Int("skipped", len(specs)-len(pending)))
	return nil
}

func missingFrom(specs []symtab.Spec, procs map[string]loader.Proc) []string {
	var missing []string
	for _, s := range specs {
		if _, ok := procs[s.Name]; !ok {
			missing = append(missing, s.Name)
		}
	}
	return missing
}

// openLocked returns the library handle, opening it on first use.
// A failed open is not remembered. Caller holds c.mu.
func (c *Cache) openLocked() (loader.Library, error) {
	if c.lib != nil {
		return c.lib, nil
	}
	c.stats.Opens++
	lib, err := c.loader.Open(c.library)
	if err != nil {
		c.log.Warn("open library failed", zap.String("library", c.library), zap.Error(err))
		return nil, err
	}
	c.lib = lib
	c.log.Debug("opened library", zap.String("library", c.library))
	return lib, nil
}

// IsBound reports whether name has been bound.
func (c *Cache) IsBound(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.bound[name]
	return ok
}

// Bound returns the bound names in sorted order.
func (c *Cache) Bound() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.bound))
	for n := range c.bound {
		names = append(names, n)
	}
	c.mu.RUnlock()
	slices.Sort(names)
	return names
}

// Opened reports whether the library handle is open.
func (c *Cache) Opened() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lib != nil
}

// Stats returns a snapshot of the loader interaction counters.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := c.stats
	s.Bound = len(c.bound)
	return s
}
