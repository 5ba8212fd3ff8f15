//go:build windows

package dl

import "golang.org/x/sys/windows"

func open(name string) (uintptr, error) {
	h, err := windows.LoadLibrary(name)
	return uintptr(h), err
}

func sym(handle uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), name)
}

func closeLib(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}
