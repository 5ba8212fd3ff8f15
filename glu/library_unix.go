//go:build !windows && !darwin

package glu

// LibraryName is the shared library the default loader opens.
const LibraryName = "libGLU.so.1"

const wcharSize = 4
