package wasm

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/dynbind/symtab"
)

// Source produces the module behind a library identifier.
type Source interface {
	instantiate(ctx context.Context, rt wazero.Runtime, name string) (api.Module, error)
}

type binarySource struct {
	wasm []byte
}

// Binary serves a compiled wasm module. Its exported functions are the
// library's symbols.
func Binary(wasm []byte) Source {
	return binarySource{wasm: wasm}
}

func (s binarySource) instantiate(ctx context.Context, rt wazero.Runtime, name string) (api.Module, error) {
	compiled, err := rt.CompileModule(ctx, s.wasm)
	if err != nil {
		return nil, err
	}
	return rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName(name))
}

// HostFunc defines a Go function exported by a host library.
type HostFunc struct {
	Name        string
	Handler     api.GoModuleFunc
	ParamTypes  []api.ValueType
	ResultTypes []api.ValueType
}

// Func builds a HostFunc whose wasm signature follows spec. fn receives the
// raw parameter words and returns the raw result word (ignored for void).
func Func(spec symtab.Spec, fn func(params []uint64) uint64) HostFunc {
	params, results := ValueTypes(spec)
	nparams := len(params)
	hasResult := len(results) > 0
	return HostFunc{
		Name:        spec.Name,
		ParamTypes:  params,
		ResultTypes: results,
		Handler: func(_ context.Context, _ api.Module, stack []uint64) {
			r := fn(stack[:nparams])
			if hasResult {
				stack[0] = r
			}
		},
	}
}

type hostSource struct {
	funcs []HostFunc
}

// Host serves a host module made of Go functions.
func Host(funcs ...HostFunc) Source {
	return hostSource{funcs: funcs}
}

func (s hostSource) instantiate(ctx context.Context, rt wazero.Runtime, name string) (api.Module, error) {
	builder := rt.NewHostModuleBuilder(name)
	for _, f := range s.funcs {
		builder.NewFunctionBuilder().
			WithGoModuleFunction(f.Handler, f.ParamTypes, f.ResultTypes).
			Export(f.Name)
	}
	return builder.Instantiate(ctx)
}
