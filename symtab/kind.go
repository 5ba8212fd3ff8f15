package symtab

import (
	"fmt"
	"reflect"
)

// Kind is the native calling-convention shape of a value.
type Kind uint8

const (
	Void Kind = iota
	I8
	U8
	I16
	U16
	I32
	U32
	I64
	U64
	F32
	F64
	Ptr

	kindCount
)

var kindNames = [kindCount]string{
	Void: "void",
	I8:   "i8",
	U8:   "u8",
	I16:  "i16",
	U16:  "u16",
	I32:  "i32",
	U32:  "u32",
	I64:  "i64",
	U64:  "u64",
	F32:  "f32",
	F64:  "f64",
	Ptr:  "ptr",
}

var kindGoTypes = [kindCount]reflect.Type{
	I8:  reflect.TypeFor[int8](),
	U8:  reflect.TypeFor[uint8](),
	I16: reflect.TypeFor[int16](),
	U16: reflect.TypeFor[uint16](),
	I32: reflect.TypeFor[int32](),
	U32: reflect.TypeFor[uint32](),
	I64: reflect.TypeFor[int64](),
	U64: reflect.TypeFor[uint64](),
	F32: reflect.TypeFor[float32](),
	F64: reflect.TypeFor[float64](),
	Ptr: reflect.TypeFor[uintptr](),
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k < kindCount
}

// String returns the short name, e.g. "i32".
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// GoType returns the Go type a value of this kind is marshaled as.
// Void has no Go type and returns nil.
func (k Kind) GoType() reflect.Type {
	if !k.Valid() {
		return nil
	}
	return kindGoTypes[k]
}

// IsFloat reports whether k is passed in floating-point registers.
func (k Kind) IsFloat() bool {
	return k == F32 || k == F64
}

// IsSigned reports whether k is a signed integer kind.
func (k Kind) IsSigned() bool {
	switch k {
	case I8, I16, I32, I64:
		return true
	}
	return false
}

// Size returns the width of the kind in bytes. Ptr reports the host pointer width.
func (k Kind) Size() int {
	switch k {
	case I8, U8:
		return 1
	case I16, U16:
		return 2
	case I32, U32, F32:
		return 4
	case I64, U64, F64:
		return 8
	case Ptr:
		return int(reflect.TypeFor[uintptr]().Size())
	}
	return 0
}

// ParseKind parses a short kind name. Common C spellings are accepted as
// aliases ("int" for i32, "double" for f64, "pointer" for ptr).
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	if k, ok := kindAliases[s]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("symtab: unknown kind %q", s)
}

var kindAliases = map[string]Kind{
	"int8":    I8,
	"uint8":   U8,
	"int16":   I16,
	"uint16":  U16,
	"int":     I32,
	"int32":   I32,
	"uint":    U32,
	"uint32":  U32,
	"int64":   I64,
	"uint64":  U64,
	"float":   F32,
	"float32": F32,
	"double":  F64,
	"float64": F64,
	"pointer": Ptr,
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("symtab: invalid kind %d", uint8(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
