package loader

import (
	"errors"
	"math"
	"testing"
	"unsafe"

	dynerrors "github.com/wippyai/dynbind/errors"
	"github.com/wippyai/dynbind/symtab"
)

func TestCoerce(t *testing.T) {
	x := 7
	ptr := unsafe.Pointer(&x)

	tests := []struct {
		name string
		kind symtab.Kind
		in   any
		want any
		ok   bool
	}{
		{"int to i32", symtab.I32, 5, int32(5), true},
		{"negative to i32", symtab.I32, -5, int32(-5), true},
		{"int overflows i32", symtab.I32, int64(math.MaxInt32) + 1, nil, false},
		{"uint32 to u32", symtab.U32, uint32(math.MaxUint32), uint32(math.MaxUint32), true},
		{"negative to u32", symtab.U32, -1, nil, false},
		{"int to u8", symtab.U8, 255, uint8(255), true},
		{"int overflows u8", symtab.U8, 256, nil, false},
		{"bool to u8", symtab.U8, true, uint8(1), true},
		{"false to i32", symtab.I32, false, int32(0), true},
		{"int to i8", symtab.I8, -128, int8(-128), true},
		{"int to i16", symtab.I16, 300, int16(300), true},
		{"int to u16", symtab.U16, 65535, uint16(65535), true},
		{"uint64 to i64 overflow", symtab.I64, uint64(math.MaxUint64), nil, false},
		{"int to u64", symtab.U64, 9, uint64(9), true},
		{"float64 to f64", symtab.F64, 2.5, 2.5, true},
		{"int to f64", symtab.F64, 2, 2.0, true},
		{"float64 to f32", symtab.F32, 0.5, float32(0.5), true},
		{"float to int kind", symtab.I32, 1.5, nil, false},
		{"string to i32", symtab.I32, "5", nil, false},
		{"nil to i32", symtab.I32, nil, nil, false},
		{"nil to ptr", symtab.Ptr, nil, uintptr(0), true},
		{"unsafe pointer", symtab.Ptr, ptr, uintptr(ptr), true},
		{"uintptr", symtab.Ptr, uintptr(0x1000), uintptr(0x1000), true},
		{"string to ptr", symtab.Ptr, "x", nil, false},
		{"anything to void", symtab.Void, 1, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Coerce(tt.kind, tt.in)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v (got %v)", ok, tt.ok, got)
			}
			if ok && got != tt.want {
				t.Errorf("got %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestCoerce_GoPointer(t *testing.T) {
	buf := []float64{1, 2}
	got, ok := Coerce(symtab.Ptr, &buf[0])
	if !ok {
		t.Fatal("pointer not accepted for ptr kind")
	}
	if got.(uintptr) != uintptr(unsafe.Pointer(&buf[0])) {
		t.Error("pointer address mismatch")
	}
	if _, ok := Coerce(symtab.I64, &buf[0]); ok {
		t.Error("pointer accepted for integer kind")
	}
}

func TestCoerceArgs(t *testing.T) {
	spec := symtab.Spec{Name: "add", Args: []symtab.Kind{symtab.I32, symtab.I32}, Return: symtab.I32}

	args, err := CoerceArgs(spec, []any{2, uint8(3)})
	if err != nil {
		t.Fatalf("CoerceArgs: %v", err)
	}
	if args[0] != int32(2) || args[1] != int32(3) {
		t.Errorf("args = %#v", args)
	}

	if _, err := CoerceArgs(spec, []any{1}); !errors.Is(err, dynerrors.ErrArity) {
		t.Errorf("arity: err = %v", err)
	}
	if _, err := CoerceArgs(spec, []any{1, "two"}); !errors.Is(err, dynerrors.ErrInvalidArg) {
		t.Errorf("invalid: err = %v", err)
	}
}

func TestZero(t *testing.T) {
	if Zero(symtab.Void) != nil {
		t.Error("Zero(Void) != nil")
	}
	if Zero(symtab.F32) != float32(0) {
		t.Error("Zero(F32)")
	}
	if Zero(symtab.Ptr) != uintptr(0) {
		t.Error("Zero(Ptr)")
	}
}
