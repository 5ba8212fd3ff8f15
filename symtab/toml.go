package symtab

import (
	"io"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	dynerrors "github.com/wippyai/dynbind/errors"
)

type tomlFile struct {
	Symbol []tomlSymbol `toml:"symbol"`
}

type tomlSymbol struct {
	Name    string `toml:"name"`
	Args    []Kind `toml:"args"`
	Returns Kind   `toml:"returns"`
}

// DecodeTOML reads a table written as an array of [[symbol]] records:
//
//	[[symbol]]
//	name = "add"
//	args = ["i32", "i32"]
//	returns = "i32"
//
// A missing returns key means void. Unknown keys are rejected.
func DecodeTOML(r io.Reader) (*Table, error) {
	var f tomlFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, dynerrors.ParseFailed("symbol table", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slices.Sort(keys)
		return nil, dynerrors.New(dynerrors.PhaseParse, dynerrors.KindInvalidData).
			Detail("unknown keys: %s", strings.Join(keys, ", ")).
			Build()
	}

	specs := make([]Spec, len(f.Symbol))
	for i, s := range f.Symbol {
		specs[i] = Spec{Name: s.Name, Args: s.Args, Return: s.Returns}
	}
	return New(specs...)
}
