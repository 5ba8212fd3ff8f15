// Package wasm serves WebAssembly modules as shared libraries.
//
// Each library identifier is registered with a Source: either a compiled wasm
// binary or a set of Go host functions. Open instantiates the module in a
// wazero runtime once; Lookup binds exported functions and checks their wasm
// signature against the declared kinds.
//
// # Kind Mapping
//
//   - i8, u8, i16, u16, i32, u32: i32
//   - i64, u64, ptr: i64
//   - f32: f32
//   - f64: f64
//   - void: no result
//
// Pointers are opaque 64-bit handles; the loader does not translate them into
// guest memory.
//
// # Thread Safety
//
// Loader is safe for concurrent use. Procs share their module's wazero
// instance and inherit wazero's calling rules.
package wasm
