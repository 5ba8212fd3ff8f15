package glu

import (
	"unicode/utf16"
	"unsafe"
)

// goString copies the NUL-terminated string at p.
func goString(p uintptr) string {
	if p == 0 {
		return ""
	}
	base := *(*unsafe.Pointer)(unsafe.Pointer(&p))
	n := 0
	for *(*byte)(unsafe.Add(base, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(base), n))
}

// goWideString copies the NUL-terminated wchar_t string at p.
func goWideString(p uintptr) string {
	if p == 0 {
		return ""
	}
	base := *(*unsafe.Pointer)(unsafe.Pointer(&p))
	if wcharSize == 2 {
		var units []uint16
		for i := 0; ; i++ {
			u := *(*uint16)(unsafe.Add(base, i*2))
			if u == 0 {
				break
			}
			units = append(units, u)
		}
		return string(utf16.Decode(units))
	}
	var runes []rune
	for i := 0; ; i++ {
		r := *(*rune)(unsafe.Add(base, i*4))
		if r == 0 {
			break
		}
		runes = append(runes, r)
	}
	return string(runes)
}

func first[T any](s []T) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(&s[0])
}
