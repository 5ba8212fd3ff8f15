//go:build !(darwin || freebsd || linux || netbsd || windows)

package dl

import (
	"errors"
	"reflect"
	"runtime"

	"github.com/wippyai/dynbind/symtab"
)

var errUnsupported = errors.New("dynamic loading is not supported on " + runtime.GOOS)

func open(string) (uintptr, error) {
	return 0, errUnsupported
}

func sym(uintptr, string) (uintptr, error) {
	return 0, errUnsupported
}

func closeLib(uintptr) error {
	return errUnsupported
}

func makeFunc(symtab.Spec, uintptr) (reflect.Value, error) {
	return reflect.Value{}, errUnsupported
}
