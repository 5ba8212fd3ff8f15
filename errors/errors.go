package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseLoad     Phase = "load"     // opening the shared library
	PhaseLookup   Phase = "lookup"   // symbol lookup in an opened library
	PhaseValidate Phase = "validate" // symbol table validation
	PhaseBind     Phase = "bind"     // binding-cache bookkeeping
	PhaseCall     Phase = "call"     // argument marshaling and invocation
	PhaseParse    Phase = "parse"    // symbol table decoding
)

// Kind categorizes the error
type Kind string

const (
	KindLibraryLoad       Kind = "library_load"
	KindUnknownSymbol     Kind = "unknown_symbol"
	KindSymbolNotFound    Kind = "symbol_not_found"
	KindDuplicateSymbol   Kind = "duplicate_symbol"
	KindUnsupportedKind   Kind = "unsupported_kind"
	KindSignatureMismatch Kind = "signature_mismatch"
	KindArity             Kind = "arity"
	KindInvalidArgument   Kind = "invalid_argument"
	KindInvalidData       Kind = "invalid_data"
	KindTrap              Kind = "trap"
)

// Sentinels for errors.Is. A sentinel leaves Phase or Kind empty to
// match any value of that field.
var (
	ErrLibraryLoad    = &Error{Kind: KindLibraryLoad}
	ErrUnknownSymbol  = &Error{Kind: KindUnknownSymbol}
	ErrSymbolNotFound = &Error{Kind: KindSymbolNotFound}
	ErrInvalidTable   = &Error{Phase: PhaseValidate}
	ErrArity          = &Error{Kind: KindArity}
	ErrInvalidArg     = &Error{Kind: KindInvalidArgument}
)

// Error is the structured error type used throughout dynbind
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	Library string
	Detail  string
	Symbols []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Symbols) > 0 {
		b.WriteString(" ")
		b.WriteString(strings.Join(e.Symbols, ", "))
	}

	if e.Library != "" {
		b.WriteString(" in ")
		b.WriteString(e.Library)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// Empty Phase or Kind on the target act as wildcards.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && t.Phase != e.Phase {
		return false
	}
	if t.Kind != "" && t.Kind != e.Kind {
		return false
	}
	return true
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Library sets the library identifier
func (b *Builder) Library(name string) *Builder {
	b.err.Library = name
	return b
}

// Symbols sets the offending symbol names
func (b *Builder) Symbols(names ...string) *Builder {
	b.err.Symbols = names
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// LibraryLoad creates a library open failure
func LibraryLoad(library string, cause error) *Error {
	return &Error{
		Phase:   PhaseLoad,
		Kind:    KindLibraryLoad,
		Library: library,
		Detail:  "cannot open shared library",
		Cause:   cause,
	}
}

// UnknownSymbol creates an error for names absent from the symbol table
func UnknownSymbol(names ...string) *Error {
	return &Error{
		Phase:   PhaseBind,
		Kind:    KindUnknownSymbol,
		Symbols: names,
		Detail:  "not declared in symbol table",
	}
}

// SymbolNotFound creates an error for declared names the library does not export
func SymbolNotFound(library string, names []string, cause error) *Error {
	return &Error{
		Phase:   PhaseLookup,
		Kind:    KindSymbolNotFound,
		Library: library,
		Symbols: names,
		Detail:  "not exported",
		Cause:   cause,
	}
}

// SignatureMismatch reports an export whose native signature differs from the
// declared one. It is a symbol_not_found error: the name is not exported under
// the expected signature.
func SignatureMismatch(library, name, want, got string) *Error {
	return &Error{
		Phase:   PhaseLookup,
		Kind:    KindSymbolNotFound,
		Library: library,
		Symbols: []string{name},
		Detail:  fmt.Sprintf("signature mismatch: declared %s, exported %s", want, got),
	}
}

// Arity creates an argument count error
func Arity(name string, want, got int) *Error {
	return &Error{
		Phase:   PhaseCall,
		Kind:    KindArity,
		Symbols: []string{name},
		Detail:  fmt.Sprintf("expected %d arguments, got %d", want, got),
	}
}

// InvalidArgument creates an argument marshaling error
func InvalidArgument(name string, index int, value any, kind string) *Error {
	return &Error{
		Phase:   PhaseCall,
		Kind:    KindInvalidArgument,
		Symbols: []string{name},
		Detail:  fmt.Sprintf("argument %d: cannot pass %v (%T) as %s", index, value, value, kind),
		Value:   value,
	}
}

// InvalidTable creates a symbol table validation error
func InvalidTable(kind Kind, name, detail string) *Error {
	e := &Error{
		Phase:  PhaseValidate,
		Kind:   kind,
		Detail: detail,
	}
	if name != "" {
		e.Symbols = []string{name}
	}
	return e
}

// ParseFailed creates a symbol table decoding error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}
