package loader

import (
	"math"
	"reflect"
	"unsafe"

	dynerrors "github.com/wippyai/dynbind/errors"
	"github.com/wippyai/dynbind/symtab"
)

// CoerceArgs checks arity and converts each argument to the Go type of its
// declared kind.
func CoerceArgs(spec symtab.Spec, args []any) ([]any, error) {
	if len(args) != len(spec.Args) {
		return nil, dynerrors.Arity(spec.Name, len(spec.Args), len(args))
	}
	out := make([]any, len(args))
	for i, a := range args {
		v, ok := Coerce(spec.Args[i], a)
		if !ok {
			return nil, dynerrors.InvalidArgument(spec.Name, i, a, spec.Args[i].String())
		}
		out[i] = v
	}
	return out, nil
}

// Coerce converts v to the Go type of kind k. Integers are range-checked,
// bools become 0 or 1, and unsafe.Pointer is accepted for Ptr. Floats are
// only accepted for float kinds.
func Coerce(k symtab.Kind, v any) (any, bool) {
	switch k {
	case symtab.F32:
		f, ok := toFloat(v)
		return float32(f), ok
	case symtab.F64:
		f, ok := toFloat(v)
		return f, ok
	case symtab.Ptr:
		switch p := v.(type) {
		case unsafe.Pointer:
			return uintptr(p), true
		case nil:
			return uintptr(0), true
		}
	}

	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return fromUint(k, 1)
		}
		return fromUint(k, 0)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fromInt(k, rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fromUint(k, rv.Uint())
	case reflect.Pointer, reflect.UnsafePointer:
		if k == symtab.Ptr {
			return rv.Pointer(), true
		}
	}
	return nil, false
}

func toFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	}
	return 0, false
}

func fromInt(k symtab.Kind, n int64) (any, bool) {
	switch k {
	case symtab.I8:
		return int8(n), n >= math.MinInt8 && n <= math.MaxInt8
	case symtab.U8:
		return uint8(n), n >= 0 && n <= math.MaxUint8
	case symtab.I16:
		return int16(n), n >= math.MinInt16 && n <= math.MaxInt16
	case symtab.U16:
		return uint16(n), n >= 0 && n <= math.MaxUint16
	case symtab.I32:
		return int32(n), n >= math.MinInt32 && n <= math.MaxInt32
	case symtab.U32:
		return uint32(n), n >= 0 && n <= math.MaxUint32
	case symtab.I64:
		return n, true
	case symtab.U64:
		return uint64(n), n >= 0
	case symtab.Ptr:
		return uintptr(n), n >= 0
	}
	return nil, false
}

func fromUint(k symtab.Kind, n uint64) (any, bool) {
	switch k {
	case symtab.I8:
		return int8(n), n <= math.MaxInt8
	case symtab.U8:
		return uint8(n), n <= math.MaxUint8
	case symtab.I16:
		return int16(n), n <= math.MaxInt16
	case symtab.U16:
		return uint16(n), n <= math.MaxUint16
	case symtab.I32:
		return int32(n), n <= math.MaxInt32
	case symtab.U32:
		return uint32(n), n <= math.MaxUint32
	case symtab.I64:
		return int64(n), n <= math.MaxInt64
	case symtab.U64:
		return n, true
	case symtab.Ptr:
		return uintptr(n), uint64(uintptr(n)) == n
	}
	return nil, false
}

// Zero returns the zero Go value of kind k, or nil for Void.
func Zero(k symtab.Kind) any {
	t := k.GoType()
	if t == nil {
		return nil
	}
	return reflect.Zero(t).Interface()
}
