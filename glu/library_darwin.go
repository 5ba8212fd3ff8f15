//go:build darwin

package glu

// LibraryName is the shared library the default loader opens.
const LibraryName = "/System/Library/Frameworks/OpenGL.framework/OpenGL"

const wcharSize = 4
