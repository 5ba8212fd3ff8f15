package wasm

import (
	"strings"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/dynbind/symtab"
)

// ValueType maps a kind to its wasm value type. Void has none.
func ValueType(k symtab.Kind) (api.ValueType, bool) {
	switch k {
	case symtab.I8, symtab.U8, symtab.I16, symtab.U16, symtab.I32, symtab.U32:
		return api.ValueTypeI32, true
	case symtab.I64, symtab.U64, symtab.Ptr:
		return api.ValueTypeI64, true
	case symtab.F32:
		return api.ValueTypeF32, true
	case symtab.F64:
		return api.ValueTypeF64, true
	}
	return 0, false
}

// ValueTypes returns the wasm parameter and result types of spec.
func ValueTypes(spec symtab.Spec) (params, results []api.ValueType) {
	params = make([]api.ValueType, len(spec.Args))
	for i, a := range spec.Args {
		params[i], _ = ValueType(a)
	}
	if t, ok := ValueType(spec.Return); ok {
		results = []api.ValueType{t}
	}
	return params, results
}

func sameTypes(a, b []api.ValueType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func formatSignature(params, results []api.ValueType) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, p := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(api.ValueTypeName(p))
	}
	b.WriteByte(')')
	for _, r := range results {
		b.WriteByte(' ')
		b.WriteString(api.ValueTypeName(r))
	}
	return b.String()
}

func encode(k symtab.Kind, v any) uint64 {
	switch k {
	case symtab.I8:
		return api.EncodeI32(int32(v.(int8)))
	case symtab.U8:
		return api.EncodeU32(uint32(v.(uint8)))
	case symtab.I16:
		return api.EncodeI32(int32(v.(int16)))
	case symtab.U16:
		return api.EncodeU32(uint32(v.(uint16)))
	case symtab.I32:
		return api.EncodeI32(v.(int32))
	case symtab.U32:
		return api.EncodeU32(v.(uint32))
	case symtab.I64:
		return api.EncodeI64(v.(int64))
	case symtab.U64:
		return v.(uint64)
	case symtab.Ptr:
		return uint64(v.(uintptr))
	case symtab.F32:
		return api.EncodeF32(v.(float32))
	case symtab.F64:
		return api.EncodeF64(v.(float64))
	}
	return 0
}

func decode(k symtab.Kind, w uint64) any {
	switch k {
	case symtab.I8:
		return int8(api.DecodeI32(w))
	case symtab.U8:
		return uint8(api.DecodeU32(w))
	case symtab.I16:
		return int16(api.DecodeI32(w))
	case symtab.U16:
		return uint16(api.DecodeU32(w))
	case symtab.I32:
		return api.DecodeI32(w)
	case symtab.U32:
		return api.DecodeU32(w)
	case symtab.I64:
		return int64(w)
	case symtab.U64:
		return w
	case symtab.Ptr:
		return uintptr(w)
	case symtab.F32:
		return api.DecodeF32(w)
	case symtab.F64:
		return api.DecodeF64(w)
	}
	return nil
}
