// Package symtab declares the calling signatures of native exports.
//
// A Table maps an exported function name to a Spec: the ordered argument
// kinds and the return kind needed to marshal a call. Tables are authored
// data. They are validated once at construction (no duplicate names, no
// unsupported kinds) and never mutated afterwards.
//
// The table is trusted to match the library ABI. A wrong kind is not a
// catchable error at call time; it corrupts the call frame.
//
//	tbl := symtab.MustNew(
//		symtab.Spec{Name: "add", Args: []symtab.Kind{symtab.I32, symtab.I32}, Return: symtab.I32},
//	)
//	spec, ok := tbl.Lookup("add")
package symtab
