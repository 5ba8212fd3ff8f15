//go:build darwin || freebsd || linux || netbsd

package dl

import "github.com/ebitengine/purego"

func open(name string) (uintptr, error) {
	return purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func sym(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func closeLib(handle uintptr) error {
	return purego.Dlclose(handle)
}
