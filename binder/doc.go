// Package binder implements lazy, memoized symbol binding.
//
// A Cache binds each declared export of one shared library on first use and
// hands out the same *Symbol for every later request. The library is opened on
// the first bind and never closed by the cache, since bound entry points may be
// called at any later time.
//
// # Main Types
//
//   - Cache: the binding cache for one library and one symbol table
//   - Symbol: a bound export with its declared signature
//
// # Thread Safety
//
// Cache is safe for concurrent use. The check-then-bind sequence runs under
// the cache's write lock, so a name is looked up in the library at most once
// no matter how many goroutines resolve it. Already-bound names are served
// under a read lock without touching the loader.
//
// # Failure Policy
//
// A failed Resolve or Preload leaves the cache unchanged for the failing
// names. Preload is all-or-nothing per call: if any requested export is
// missing, none of the names in that batch are bound. A failed library open is
// not remembered, so a later call opens again.
//
// # Example
//
//	cache := binder.New(table, dl.New(), "libGLU.so.1")
//	sym, err := cache.Resolve("gluNewQuadric")
//	q, err := sym.Call()
package binder
