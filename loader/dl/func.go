//go:build darwin || freebsd || linux || netbsd || windows

package dl

import (
	"fmt"
	"reflect"

	"github.com/ebitengine/purego"

	"github.com/wippyai/dynbind/symtab"
)

// makeFunc builds a Go func of the declared signature calling addr.
func makeFunc(spec symtab.Spec, addr uintptr) (fn reflect.Value, err error) {
	in := make([]reflect.Type, len(spec.Args))
	for i, a := range spec.Args {
		in[i] = a.GoType()
	}
	var out []reflect.Type
	if t := spec.Return.GoType(); t != nil {
		out = []reflect.Type{t}
	}

	// RegisterFunc panics on signatures it cannot marshal on this platform.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	fptr := reflect.New(reflect.FuncOf(in, out, false))
	purego.RegisterFunc(fptr.Interface(), addr)
	return fptr.Elem(), nil
}
