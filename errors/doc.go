// Package errors provides structured error types for the dynbind library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the library identifier, the offending symbol names, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLookup, errors.KindSymbolNotFound).
//		Library("glu32.dll").
//		Symbols("gluNewQuadric").
//		Detail("export not present").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnknownSymbol("not_a_real_symbol")
//	err := errors.SymbolNotFound(phase, "glu32.dll", missing, cause)
//
// Callers match categories with the sentinels, independent of phase:
//
//	if errors.Is(err, dynerrors.ErrSymbolNotFound) { ... }
package errors
