// Package glu binds the OpenGL Utility Library lazily.
//
// Every GLU export is declared in Symbols. A GLU value owns a binding cache:
// the first call of a method binds that export, later calls reuse it.
// Preload binds a subset, or everything, ahead of time.
//
//	g := glu.Default()
//	if err := g.Preload("gluSphere", "gluDisk"); err != nil {
//		log.Fatal(err)
//	}
//	q, err := g.NewQuadric()
//
// Pointer arguments refer to Go memory only for the duration of a call,
// except where GLU keeps the pointer (TessVertex, TessBeginPolygon); the
// caller keeps that memory alive until the polygon is finished.
package glu
