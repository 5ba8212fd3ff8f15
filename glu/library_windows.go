//go:build windows

package glu

// LibraryName is the shared library the default loader opens.
const LibraryName = "glu32.dll"

const wcharSize = 2
