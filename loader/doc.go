// Package loader defines the dynamic-library capability a binding cache
// depends on.
//
// A Loader opens a library by identifier. A Library looks up exports, one at
// a time or as an all-or-nothing batch, and returns a Proc: an invocable entry
// point with a fixed signature. Implementations:
//
//   - loader/dl: the platform dynamic loader (dlopen / LoadLibrary)
//   - loader/wasm: wasm modules hosted by wazero, standing in for a native library
//   - loader/memlib: Go functions, for tests and examples
//
// Arguments reach Proc.Call already coerced to each kind's Go type (see Coerce),
// so implementations only translate between Go values and their calling convention.
package loader
