package binder

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	dynerrors "github.com/wippyai/dynbind/errors"
	"github.com/wippyai/dynbind/loader"
	"github.com/wippyai/dynbind/loader/memlib"
	"github.com/wippyai/dynbind/symtab"
)

const libName = "libstub"

func stubTable() *symtab.Table {
	return symtab.MustNew(
		symtab.Spec{Name: "add", Args: []symtab.Kind{symtab.I32, symtab.I32}, Return: symtab.I32},
		symtab.Spec{Name: "scale", Args: []symtab.Kind{symtab.F64, symtab.F32}, Return: symtab.F64},
		symtab.Spec{Name: "ghost"},
	)
}

func stubLoader() (*memlib.Loader, *memlib.Library) {
	lib := memlib.NewLibrary().
		Define("add", func(a, b int32) int32 { return a + b }).
		Define("scale", func(x float64, f float32) float64 { return x * float64(f) })
	return memlib.New().Add(libName, lib), lib
}

func TestResolve_EndToEnd(t *testing.T) {
	ld, lib := stubLoader()
	c := New(stubTable(), ld, libName)

	add, err := c.Resolve("add")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	res, err := add.Call(2, 3)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if res != int32(5) {
		t.Errorf("add(2, 3) = %v, want 5", res)
	}

	again, err := c.Resolve("add")
	if err != nil {
		t.Fatalf("second Resolve: %v", err)
	}
	if again != add {
		t.Error("second Resolve returned a different symbol")
	}
	if lib.Lookups() != 1 {
		t.Errorf("library lookups = %d, want 1", lib.Lookups())
	}
	if ld.Opens() != 1 {
		t.Errorf("library opens = %d, want 1", ld.Opens())
	}
}

func TestResolve_MissingExport(t *testing.T) {
	ld, _ := stubLoader()
	c := New(stubTable(), ld, libName)

	_, err := c.Resolve("ghost")
	if !errors.Is(err, dynerrors.ErrSymbolNotFound) {
		t.Fatalf("err = %v, want ErrSymbolNotFound", err)
	}
	if c.IsBound("ghost") {
		t.Error("failed bind left an entry")
	}
	if !c.Opened() {
		t.Error("library should be open after a lookup attempt")
	}
}

func TestResolve_UnknownSymbol(t *testing.T) {
	ld, _ := stubLoader()
	c := New(stubTable(), ld, libName)

	_, err := c.Resolve("not_a_real_symbol")
	if !errors.Is(err, dynerrors.ErrUnknownSymbol) {
		t.Fatalf("err = %v, want ErrUnknownSymbol", err)
	}
	if ld.Opens() != 0 || c.Opened() {
		t.Error("unknown symbol opened the library")
	}
	if len(c.Bound()) != 0 {
		t.Errorf("Bound = %v", c.Bound())
	}
}

func TestResolve_LibraryLoadRetry(t *testing.T) {
	ld, _ := stubLoader()
	ld.SetUnavailable(libName, true)
	c := New(stubTable(), ld, libName)

	if _, err := c.Resolve("add"); !errors.Is(err, dynerrors.ErrLibraryLoad) {
		t.Fatalf("err = %v, want ErrLibraryLoad", err)
	}
	if c.Opened() || c.IsBound("add") {
		t.Fatal("failed open left state behind")
	}

	ld.SetUnavailable(libName, false)
	if _, err := c.Resolve("add"); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if ld.Opens() != 2 {
		t.Errorf("opens = %d, want 2", ld.Opens())
	}
}

func TestResolve_SingleOpenAcrossSymbols(t *testing.T) {
	ld, _ := stubLoader()
	c := New(stubTable(), ld, libName)

	for _, n := range []string{"add", "scale", "add"} {
		if _, err := c.Resolve(n); err != nil {
			t.Fatalf("Resolve(%s): %v", n, err)
		}
	}
	if ld.Opens() != 1 {
		t.Errorf("opens = %d, want 1", ld.Opens())
	}
	want := Stats{Opens: 1, Lookups: 2, Bound: 2}
	if diff := cmp.Diff(want, c.Stats()); diff != "" {
		t.Errorf("Stats mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_Concurrent(t *testing.T) {
	ld, lib := stubLoader()
	c := New(stubTable(), ld, libName)

	const n = 64
	syms := make([]*Symbol, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			syms[i], errs[i] = c.Resolve("add")
		}(i)
	}
	close(start)
	wg.Wait()

	for i := range n {
		if errs[i] != nil {
			t.Fatalf("goroutine %d: %v", i, errs[i])
		}
		if syms[i] != syms[0] {
			t.Fatalf("goroutine %d got a different symbol", i)
		}
	}
	if lib.Lookups() != 1 {
		t.Errorf("lookups = %d, want 1", lib.Lookups())
	}
	if ld.Opens() != 1 {
		t.Errorf("opens = %d, want 1", ld.Opens())
	}
}

func TestPreload_All(t *testing.T) {
	ld, lib := stubLoader()
	lib.Define("ghost", func() {})
	c := New(stubTable(), ld, libName)

	if err := c.Preload(); err != nil {
		t.Fatalf("Preload: %v", err)
	}
	if diff := cmp.Diff([]string{"add", "ghost", "scale"}, c.Bound()); diff != "" {
		t.Errorf("Bound mismatch (-want +got):\n%s", diff)
	}
	if lib.Batches() != 1 || lib.Lookups() != 0 {
		t.Errorf("batches = %d, lookups = %d", lib.Batches(), lib.Lookups())
	}

	resolvedBefore := lib.Resolved()
	if err := c.Preload(); err != nil {
		t.Fatalf("second Preload: %v", err)
	}
	if lib.Resolved() != resolvedBefore || lib.Batches() != 1 {
		t.Error("second full Preload reached the library")
	}

	sym, err := c.Resolve("add")
	if err != nil {
		t.Fatalf("Resolve after Preload: %v", err)
	}
	if res, _ := sym.Call(20, 22); res != int32(42) {
		t.Errorf("add = %v", res)
	}
	if lib.Lookups() != 0 {
		t.Error("Resolve after Preload performed a lookup")
	}
}

func TestPreload_SkipsBound(t *testing.T) {
	ld, lib := stubLoader()
	c := New(stubTable(), ld, libName)

	add, err := c.Resolve("add")
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Preload("add", "scale", "scale"); err != nil {
		t.Fatalf("Preload: %v", err)
	}
	if lib.Resolved() != 2 {
		t.Errorf("resolved = %d, want 2 (add once, scale once)", lib.Resolved())
	}
	if again, _ := c.Resolve("add"); again != add {
		t.Error("Preload replaced an existing binding")
	}
}

func TestPreload_ResolveEquivalence(t *testing.T) {
	subset := []string{"scale", "add"}

	ldA, _ := stubLoader()
	viaPreload := New(stubTable(), ldA, libName)
	if err := viaPreload.Preload(subset...); err != nil {
		t.Fatalf("Preload: %v", err)
	}

	ldB, _ := stubLoader()
	viaResolve := New(stubTable(), ldB, libName)
	for _, n := range subset {
		if _, err := viaResolve.Resolve(n); err != nil {
			t.Fatalf("Resolve(%s): %v", n, err)
		}
	}

	if diff := cmp.Diff(viaResolve.Bound(), viaPreload.Bound()); diff != "" {
		t.Errorf("bound state differs (-resolve +preload):\n%s", diff)
	}
	for _, n := range subset {
		a, _ := viaPreload.Resolve(n)
		b, _ := viaResolve.Resolve(n)
		if !a.Spec().Equal(b.Spec()) {
			t.Errorf("%s: specs differ: %s vs %s", n, a, b)
		}
	}
}

func TestPreload_PartialBatchFailure(t *testing.T) {
	var specs []symtab.Spec
	lib := memlib.NewLibrary()
	var names []string
	for i := range 9 {
		name := fmt.Sprintf("f%d", i)
		specs = append(specs, symtab.Spec{Name: name, Return: symtab.I32})
		lib.Define(name, func() int32 { return int32(i) })
		names = append(names, name)
	}
	specs = append(specs, symtab.Spec{Name: "missing"})
	names = append(names, "missing")

	ld := memlib.New().Add(libName, lib)
	c := New(symtab.MustNew(specs...), ld, libName)

	if _, err := c.Resolve("f0"); err != nil {
		t.Fatal(err)
	}

	err := c.Preload(names...)
	if !errors.Is(err, dynerrors.ErrSymbolNotFound) {
		t.Fatalf("err = %v, want ErrSymbolNotFound", err)
	}
	var e *dynerrors.Error
	if !errors.As(err, &e) || len(e.Symbols) != 1 || e.Symbols[0] != "missing" {
		t.Errorf("error does not name the offending symbol: %v", err)
	}

	if diff := cmp.Diff([]string{"f0"}, c.Bound()); diff != "" {
		t.Errorf("partial state after failed batch (-want +got):\n%s", diff)
	}
}

func TestPreload_UnknownName(t *testing.T) {
	ld, _ := stubLoader()
	c := New(stubTable(), ld, libName)

	err := c.Preload("add", "bogus", "nope")
	if !errors.Is(err, dynerrors.ErrUnknownSymbol) {
		t.Fatalf("err = %v, want ErrUnknownSymbol", err)
	}
	var e *dynerrors.Error
	errors.As(err, &e)
	if diff := cmp.Diff([]string{"bogus", "nope"}, e.Symbols); diff != "" {
		t.Errorf("Symbols (-want +got):\n%s", diff)
	}
	if ld.Opens() != 0 || len(c.Bound()) != 0 {
		t.Error("unknown name in Preload touched the library or bound names")
	}
}

func TestPreload_LibraryLoadError(t *testing.T) {
	ld, _ := stubLoader()
	ld.SetUnavailable(libName, true)
	c := New(stubTable(), ld, libName)

	if err := c.Preload("add"); !errors.Is(err, dynerrors.ErrLibraryLoad) {
		t.Fatalf("err = %v", err)
	}
	ld.SetUnavailable(libName, false)
	if err := c.Preload("add"); err != nil {
		t.Fatalf("retry: %v", err)
	}
}

type droppingLibrary struct{ loader.Library }

func (d droppingLibrary) LookupBatch(specs []symtab.Spec) (map[string]loader.Proc, error) {
	procs, err := d.Library.LookupBatch(specs)
	if err != nil {
		return nil, err
	}
	for k := range procs {
		delete(procs, k)
		break
	}
	return procs, nil
}

type droppingLoader struct{ ld loader.Loader }

func (d droppingLoader) Open(name string) (loader.Library, error) {
	lib, err := d.ld.Open(name)
	if err != nil {
		return nil, err
	}
	return droppingLibrary{lib}, nil
}

func TestPreload_LoaderDropsNames(t *testing.T) {
	ld, _ := stubLoader()
	c := New(stubTable(), droppingLoader{ld}, libName)

	if err := c.Preload("add", "scale"); !errors.Is(err, dynerrors.ErrSymbolNotFound) {
		t.Fatalf("err = %v", err)
	}
	if len(c.Bound()) != 0 {
		t.Errorf("Bound = %v", c.Bound())
	}
}

func TestCall(t *testing.T) {
	ld, _ := stubLoader()
	c := New(stubTable(), ld, libName)

	res, err := c.Call("scale", 2.0, 1.5)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if res != 3.0 {
		t.Errorf("scale = %v", res)
	}

	if _, err := c.Call("add", 1); !errors.Is(err, dynerrors.ErrArity) {
		t.Errorf("arity: err = %v", err)
	}
	if _, err := c.Call("add", 1, "x"); !errors.Is(err, dynerrors.ErrInvalidArg) {
		t.Errorf("invalid arg: err = %v", err)
	}
	if _, err := c.Call("bogus"); !errors.Is(err, dynerrors.ErrUnknownSymbol) {
		t.Errorf("unknown: err = %v", err)
	}
}

func TestMustResolve(t *testing.T) {
	ld, _ := stubLoader()
	c := New(stubTable(), ld, libName)

	if sym := c.MustResolve("add"); sym.Name() != "add" {
		t.Errorf("Name = %q", sym.Name())
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, dynerrors.ErrSymbolNotFound) {
			t.Errorf("recovered %v", r)
		}
	}()
	c.MustResolve("ghost")
}

func TestSymbol_SpecIsCopy(t *testing.T) {
	ld, _ := stubLoader()
	c := New(stubTable(), ld, libName)

	sym := c.MustResolve("add")
	spec := sym.Spec()
	spec.Args[0] = symtab.F64

	if sym.Spec().Args[0] != symtab.I32 {
		t.Error("Spec exposes internal storage")
	}
	if sym.String() != "add(i32, i32) i32" {
		t.Errorf("String = %q", sym.String())
	}
	if sym.Proc() == nil {
		t.Error("Proc is nil")
	}
}

func TestAccessors(t *testing.T) {
	ld, _ := stubLoader()
	tbl := stubTable()
	c := New(tbl, ld, libName)

	if c.Table() != tbl {
		t.Error("Table mismatch")
	}
	if c.Library() != libName {
		t.Errorf("Library = %q", c.Library())
	}
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ld, _ := stubLoader()
	c := NewWithOptions(stubTable(), ld, libName, Options{Logger: zap.New(core), Name: "stub"})

	c.MustResolve("add")
	_, _ = c.Resolve("ghost")

	if n := logs.FilterMessage("opened library").Len(); n != 1 {
		t.Errorf("opened library logged %d times", n)
	}
	bound := logs.FilterMessage("bound symbol").All()
	if len(bound) != 1 || bound[0].ContextMap()["symbol"] != "add" {
		t.Errorf("bound symbol entries = %v", bound)
	}
	if bound[0].ContextMap()["cache"] != "stub" {
		t.Errorf("cache field = %v", bound[0].ContextMap()["cache"])
	}
	if logs.FilterMessage("bind failed").FilterLevelExact(zapcore.WarnLevel).Len() != 1 {
		t.Error("failed bind not logged at warn")
	}
}

func TestPackageLogger(t *testing.T) {
	if Logger() == nil {
		t.Fatal("Logger returned nil")
	}
}
