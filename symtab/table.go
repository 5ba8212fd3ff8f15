package symtab

import (
	"fmt"
	"slices"

	dynerrors "github.com/wippyai/dynbind/errors"
)

// Table is an immutable name -> Spec mapping.
// Safe for concurrent use.
type Table struct {
	specs map[string]Spec
	names []string
}

// New builds a table, validating it once: names are non-empty and unique,
// argument kinds are valid and not Void, and the return kind is valid.
func New(specs ...Spec) (*Table, error) {
	t := &Table{
		specs: make(map[string]Spec, len(specs)),
		names: make([]string, 0, len(specs)),
	}
	for _, s := range specs {
		if err := validate(s); err != nil {
			return nil, err
		}
		if _, dup := t.specs[s.Name]; dup {
			return nil, dynerrors.InvalidTable(dynerrors.KindDuplicateSymbol, s.Name, "declared more than once")
		}
		t.specs[s.Name] = s.clone()
		t.names = append(t.names, s.Name)
	}
	slices.Sort(t.names)
	return t, nil
}

// MustNew is like New but panics on an invalid table.
// Intended for compiled-in tables.
func MustNew(specs ...Spec) *Table {
	t, err := New(specs...)
	if err != nil {
		panic(err)
	}
	return t
}

func validate(s Spec) error {
	if s.Name == "" {
		return dynerrors.InvalidTable(dynerrors.KindInvalidData, "", "empty symbol name")
	}
	for i, a := range s.Args {
		if !a.Valid() {
			return dynerrors.InvalidTable(dynerrors.KindUnsupportedKind, s.Name,
				fmt.Sprintf("argument %d has unsupported kind %s", i, a))
		}
		if a == Void {
			return dynerrors.InvalidTable(dynerrors.KindUnsupportedKind, s.Name,
				fmt.Sprintf("argument %d is void", i))
		}
	}
	if !s.Return.Valid() {
		return dynerrors.InvalidTable(dynerrors.KindUnsupportedKind, s.Name,
			fmt.Sprintf("unsupported return kind %s", s.Return))
	}
	return nil
}

// Lookup returns the spec declared for name.
func (t *Table) Lookup(name string) (Spec, bool) {
	s, ok := t.specs[name]
	if !ok {
		return Spec{}, false
	}
	return s.clone(), true
}

// Has reports whether name is declared.
func (t *Table) Has(name string) bool {
	_, ok := t.specs[name]
	return ok
}

// Names returns all declared names in sorted order.
func (t *Table) Names() []string {
	return slices.Clone(t.names)
}

// Specs returns all specs in name order.
func (t *Table) Specs() []Spec {
	out := make([]Spec, 0, len(t.names))
	for _, n := range t.names {
		out = append(out, t.specs[n].clone())
	}
	return out
}

// Len returns the number of declared symbols.
func (t *Table) Len() int {
	return len(t.names)
}

// Merge returns a new table holding the symbols of t and other.
// A name declared in both is a duplicate, unless the specs are equal.
func (t *Table) Merge(other *Table) (*Table, error) {
	specs := t.Specs()
	for _, s := range other.Specs() {
		if have, ok := t.specs[s.Name]; ok {
			if have.Equal(s) {
				continue
			}
			return nil, dynerrors.InvalidTable(dynerrors.KindDuplicateSymbol, s.Name,
				fmt.Sprintf("conflicting declarations %s and %s", have, s))
		}
		specs = append(specs, s)
	}
	return New(specs...)
}
