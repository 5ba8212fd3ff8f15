// Package dynbind binds exports of a dynamic library lazily, at most once
// per name.
//
// A symbol table declares every export the program may call together with
// its calling signature. A binding cache opens the library on first need,
// binds each name on its first resolve, and returns the same bound symbol
// to every later caller. Names can also be preloaded in one batch.
//
// # Architecture Overview
//
//	dynbind/
//	├── symtab/          Kinds, signatures and the immutable symbol table
//	├── binder/          Binding cache: Resolve, Preload, bound symbols
//	├── loader/          Library capability interfaces and argument coercion
//	│   ├── dl/          Native shared libraries (purego, x/sys/windows)
//	│   ├── wasm/        wazero modules served as libraries
//	│   └── memlib/      Go functions served as libraries, for tests
//	├── glu/             OpenGL Utility Library table and typed wrappers
//	├── errors/          Structured error types
//	└── cmd/glu-info/    Demo and inspection CLI
//
// # Quick Start
//
//	table := symtab.MustNew(symtab.Spec{
//		Name:   "cos",
//		Args:   []symtab.Kind{symtab.F64},
//		Return: symtab.F64,
//	})
//	cache := binder.New(table, dl.New(), "libm.so.6")
//	cos, err := cache.Resolve("cos")
//	if err != nil {
//		return err
//	}
//	v, err := cos.Call(0.5)
//
// # Errors
//
// Failures are *errors.Error values matched with errors.Is against
// errors.ErrLibraryLoad, errors.ErrUnknownSymbol and errors.ErrSymbolNotFound.
package dynbind
