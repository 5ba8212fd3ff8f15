package wasm

import (
	"context"
	"fmt"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	dynerrors "github.com/wippyai/dynbind/errors"
	"github.com/wippyai/dynbind/loader"
	"github.com/wippyai/dynbind/symtab"
)

// Loader opens registered Sources as libraries in a wazero runtime.
// The runtime is owned by the caller.
type Loader struct {
	ctx     context.Context
	rt      wazero.Runtime
	sources map[string]Source
	mu      sync.Mutex
}

// New creates a loader. ctx is used for instantiation and for every call
// made through bound procs.
func New(ctx context.Context, rt wazero.Runtime) *Loader {
	return &Loader{
		ctx:     ctx,
		rt:      rt,
		sources: make(map[string]Source),
	}
}

// Runtime returns the wazero runtime.
func (l *Loader) Runtime() wazero.Runtime {
	return l.rt
}

// Register maps a library identifier to a source.
func (l *Loader) Register(name string, src Source) *Loader {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sources[name] = src
	return l
}

// Open implements loader.Loader. A module already instantiated under name
// is reused.
func (l *Loader) Open(name string) (loader.Library, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if mod := l.rt.Module(name); mod != nil {
		return &Library{ctx: l.ctx, name: name, mod: mod}, nil
	}

	src, ok := l.sources[name]
	if !ok {
		return nil, dynerrors.LibraryLoad(name, fmt.Errorf("no wasm source registered for %q", name))
	}
	mod, err := src.instantiate(l.ctx, l.rt, name)
	if err != nil {
		return nil, dynerrors.LibraryLoad(name, err)
	}
	Logger().Debug("instantiated wasm library",
		zap.String("library", name),
		zap.Int("exports", len(mod.ExportedFunctionDefinitions())))
	return &Library{ctx: l.ctx, name: name, mod: mod}, nil
}

// Library is an instantiated wasm module.
type Library struct {
	ctx  context.Context
	mod  api.Module
	name string
}

// Name implements loader.Library.
func (lib *Library) Name() string {
	return lib.name
}

// Module returns the underlying wazero module.
func (lib *Library) Module() api.Module {
	return lib.mod
}

// Lookup implements loader.Library.
func (lib *Library) Lookup(spec symtab.Spec) (loader.Proc, error) {
	fn := lib.mod.ExportedFunction(spec.Name)
	if fn == nil {
		return nil, dynerrors.SymbolNotFound(lib.name, []string{spec.Name}, nil)
	}

	def := fn.Definition()
	params, results := ValueTypes(spec)
	if !sameTypes(params, def.ParamTypes()) || !sameTypes(results, def.ResultTypes()) {
		return nil, dynerrors.SignatureMismatch(lib.name, spec.Name,
			formatSignature(params, results),
			formatSignature(def.ParamTypes(), def.ResultTypes()))
	}
	return &proc{ctx: lib.ctx, fn: fn, spec: spec}, nil
}

// LookupBatch implements loader.Library.
func (lib *Library) LookupBatch(specs []symtab.Spec) (map[string]loader.Proc, error) {
	return loader.LookupEach(lib, specs)
}

type proc struct {
	ctx  context.Context
	fn   api.Function
	spec symtab.Spec
}

func (p *proc) Spec() symtab.Spec { return p.spec }

func (p *proc) Call(args []any) (any, error) {
	stack := make([]uint64, len(args))
	for i, a := range args {
		stack[i] = encode(p.spec.Args[i], a)
	}
	res, err := p.fn.Call(p.ctx, stack...)
	if err != nil {
		return nil, dynerrors.New(dynerrors.PhaseCall, dynerrors.KindTrap).
			Symbols(p.spec.Name).
			Detail("wasm call trapped").
			Cause(err).
			Build()
	}
	if p.spec.Return == symtab.Void || len(res) == 0 {
		return nil, nil
	}
	return decode(p.spec.Return, res[0]), nil
}
