package glu

import (
	"runtime"
	"unsafe"
)

// Errors and strings

// ErrorString describes a GL or GLU error code.
func (g *GLU) ErrorString(code Enum) (string, error) {
	p, err := g.callAddr("gluErrorString", code)
	if err != nil {
		return "", err
	}
	return goString(p), nil
}

// ErrorUnicodeString is the wide-character form of ErrorString. It is an
// extension; see ExtensionExports.
func (g *GLU) ErrorUnicodeString(code Enum) (string, error) {
	p, err := g.callAddr("gluErrorUnicodeStringEXT", code)
	if err != nil {
		return "", err
	}
	return goWideString(p), nil
}

// GetString returns Version or Extensions.
func (g *GLU) GetString(name Enum) (string, error) {
	p, err := g.callAddr("gluGetString", name)
	if err != nil {
		return "", err
	}
	return goString(p), nil
}

// Mipmaps and images. A zero Enum result means success.

func (g *GLU) Build1DMipmaps(target Enum, internalFormat, width int32, format, typ Enum, data unsafe.Pointer) (Enum, error) {
	rc, err := g.callInt32("gluBuild1DMipmaps", target, internalFormat, width, format, typ, data)
	return Enum(rc), err
}

func (g *GLU) Build2DMipmaps(target Enum, internalFormat, width, height int32, format, typ Enum, data unsafe.Pointer) (Enum, error) {
	rc, err := g.callInt32("gluBuild2DMipmaps", target, internalFormat, width, height, format, typ, data)
	return Enum(rc), err
}

func (g *GLU) ScaleImage(format Enum, wIn, hIn int32, typeIn Enum, dataIn unsafe.Pointer, wOut, hOut int32, typeOut Enum, dataOut unsafe.Pointer) (Enum, error) {
	rc, err := g.callInt32("gluScaleImage", format, wIn, hIn, typeIn, dataIn, wOut, hOut, typeOut, dataOut)
	return Enum(rc), err
}

// Matrices

func (g *GLU) LookAt(eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ float64) error {
	return g.callVoid("gluLookAt", eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ)
}

func (g *GLU) Ortho2D(left, right, bottom, top float64) error {
	return g.callVoid("gluOrtho2D", left, right, bottom, top)
}

func (g *GLU) Perspective(fovy, aspect, zNear, zFar float64) error {
	return g.callVoid("gluPerspective", fovy, aspect, zNear, zFar)
}

func (g *GLU) PickMatrix(x, y, width, height float64, viewport *[4]int32) error {
	err := g.callVoid("gluPickMatrix", x, y, width, height, viewport)
	runtime.KeepAlive(viewport)
	return err
}

// Project maps object coordinates to window coordinates. ok is false when
// GLU reports failure, for example a singular matrix.
func (g *GLU) Project(objX, objY, objZ float64, model, proj *[16]float64, viewport *[4]int32) (win [3]float64, ok bool, err error) {
	rc, err := g.callInt32("gluProject", objX, objY, objZ, model, proj, viewport, &win[0], &win[1], &win[2])
	runtime.KeepAlive(model)
	runtime.KeepAlive(proj)
	runtime.KeepAlive(viewport)
	return win, rc != 0, err
}

// UnProject maps window coordinates back to object coordinates.
func (g *GLU) UnProject(winX, winY, winZ float64, model, proj *[16]float64, viewport *[4]int32) (obj [3]float64, ok bool, err error) {
	rc, err := g.callInt32("gluUnProject", winX, winY, winZ, model, proj, viewport, &obj[0], &obj[1], &obj[2])
	runtime.KeepAlive(model)
	runtime.KeepAlive(proj)
	runtime.KeepAlive(viewport)
	return obj, rc != 0, err
}

// Quadrics

func (g *GLU) NewQuadric() (Quadric, error) {
	p, err := g.callAddr("gluNewQuadric")
	return Quadric(p), err
}

func (g *GLU) DeleteQuadric(q Quadric) error {
	return g.callVoid("gluDeleteQuadric", q)
}

// QuadricCallback installs fn, a C function pointer, for which.
func (g *GLU) QuadricCallback(q Quadric, which Enum, fn uintptr) error {
	return g.callVoid("gluQuadricCallback", q, which, fn)
}

func (g *GLU) QuadricDrawStyle(q Quadric, style Enum) error {
	return g.callVoid("gluQuadricDrawStyle", q, style)
}

func (g *GLU) QuadricNormals(q Quadric, normal Enum) error {
	return g.callVoid("gluQuadricNormals", q, normal)
}

func (g *GLU) QuadricOrientation(q Quadric, orientation Enum) error {
	return g.callVoid("gluQuadricOrientation", q, orientation)
}

func (g *GLU) QuadricTexture(q Quadric, texture bool) error {
	return g.callVoid("gluQuadricTexture", q, texture)
}

func (g *GLU) Cylinder(q Quadric, base, top, height float64, slices, stacks int32) error {
	return g.callVoid("gluCylinder", q, base, top, height, slices, stacks)
}

func (g *GLU) Disk(q Quadric, inner, outer float64, slices, loops int32) error {
	return g.callVoid("gluDisk", q, inner, outer, slices, loops)
}

func (g *GLU) PartialDisk(q Quadric, inner, outer float64, slices, loops int32, start, sweep float64) error {
	return g.callVoid("gluPartialDisk", q, inner, outer, slices, loops, start, sweep)
}

func (g *GLU) Sphere(q Quadric, radius float64, slices, stacks int32) error {
	return g.callVoid("gluSphere", q, radius, slices, stacks)
}

// Tessellation

func (g *GLU) NewTess() (Tesselator, error) {
	p, err := g.callAddr("gluNewTess")
	return Tesselator(p), err
}

func (g *GLU) DeleteTess(t Tesselator) error {
	return g.callVoid("gluDeleteTess", t)
}

// TessBeginPolygon starts a polygon. data is passed back to *_DATA
// callbacks and must stay valid until TessEndPolygon.
func (g *GLU) TessBeginPolygon(t Tesselator, data unsafe.Pointer) error {
	return g.callVoid("gluTessBeginPolygon", t, data)
}

func (g *GLU) TessEndPolygon(t Tesselator) error {
	return g.callVoid("gluTessEndPolygon", t)
}

func (g *GLU) TessBeginContour(t Tesselator) error {
	return g.callVoid("gluTessBeginContour", t)
}

func (g *GLU) TessEndContour(t Tesselator) error {
	return g.callVoid("gluTessEndContour", t)
}

// TessVertex adds a vertex. GLU keeps both pointers until TessEndPolygon.
func (g *GLU) TessVertex(t Tesselator, location *[3]float64, data unsafe.Pointer) error {
	return g.callVoid("gluTessVertex", t, location, data)
}

// TessCallback installs fn, a C function pointer, for which.
func (g *GLU) TessCallback(t Tesselator, which Enum, fn uintptr) error {
	return g.callVoid("gluTessCallback", t, which, fn)
}

func (g *GLU) TessNormal(t Tesselator, x, y, z float64) error {
	return g.callVoid("gluTessNormal", t, x, y, z)
}

func (g *GLU) TessProperty(t Tesselator, which Enum, value float64) error {
	return g.callVoid("gluTessProperty", t, which, value)
}

func (g *GLU) GetTessProperty(t Tesselator, which Enum) (float64, error) {
	var v float64
	err := g.callVoid("gluGetTessProperty", t, which, &v)
	return v, err
}

// Legacy polygon API.

func (g *GLU) BeginPolygon(t Tesselator) error {
	return g.callVoid("gluBeginPolygon", t)
}

func (g *GLU) NextContour(t Tesselator, typ Enum) error {
	return g.callVoid("gluNextContour", t, typ)
}

func (g *GLU) EndPolygon(t Tesselator) error {
	return g.callVoid("gluEndPolygon", t)
}

// NURBS

func (g *GLU) NewNurbsRenderer() (Nurbs, error) {
	p, err := g.callAddr("gluNewNurbsRenderer")
	return Nurbs(p), err
}

func (g *GLU) DeleteNurbsRenderer(n Nurbs) error {
	return g.callVoid("gluDeleteNurbsRenderer", n)
}

func (g *GLU) BeginCurve(n Nurbs) error   { return g.callVoid("gluBeginCurve", n) }
func (g *GLU) EndCurve(n Nurbs) error     { return g.callVoid("gluEndCurve", n) }
func (g *GLU) BeginSurface(n Nurbs) error { return g.callVoid("gluBeginSurface", n) }
func (g *GLU) EndSurface(n Nurbs) error   { return g.callVoid("gluEndSurface", n) }
func (g *GLU) BeginTrim(n Nurbs) error    { return g.callVoid("gluBeginTrim", n) }
func (g *GLU) EndTrim(n Nurbs) error      { return g.callVoid("gluEndTrim", n) }

// NurbsCallback installs fn, a C function pointer, for which.
func (g *GLU) NurbsCallback(n Nurbs, which Enum, fn uintptr) error {
	return g.callVoid("gluNurbsCallback", n, which, fn)
}

func (g *GLU) NurbsProperty(n Nurbs, property Enum, value float32) error {
	return g.callVoid("gluNurbsProperty", n, property, value)
}

func (g *GLU) GetNurbsProperty(n Nurbs, property Enum) (float32, error) {
	var v float32
	err := g.callVoid("gluGetNurbsProperty", n, property, &v)
	return v, err
}

func (g *GLU) LoadSamplingMatrices(n Nurbs, model, persp *[16]float32, viewport *[4]int32) error {
	err := g.callVoid("gluLoadSamplingMatrices", n, model, persp, viewport)
	runtime.KeepAlive(model)
	runtime.KeepAlive(persp)
	runtime.KeepAlive(viewport)
	return err
}

// NurbsCurve renders a curve. The knot count is len(knots).
func (g *GLU) NurbsCurve(n Nurbs, knots []float32, stride int32, control []float32, order int32, typ Enum) error {
	err := g.callVoid("gluNurbsCurve", n, int32(len(knots)), first(knots), stride, first(control), order, typ)
	runtime.KeepAlive(knots)
	runtime.KeepAlive(control)
	return err
}

// NurbsSurface renders a surface. Knot counts are the slice lengths.
func (g *GLU) NurbsSurface(n Nurbs, sKnots, tKnots []float32, sStride, tStride int32, control []float32, sOrder, tOrder int32, typ Enum) error {
	err := g.callVoid("gluNurbsSurface", n,
		int32(len(sKnots)), first(sKnots),
		int32(len(tKnots)), first(tKnots),
		sStride, tStride, first(control), sOrder, tOrder, typ)
	runtime.KeepAlive(sKnots)
	runtime.KeepAlive(tKnots)
	runtime.KeepAlive(control)
	return err
}

// PwlCurve adds a piecewise linear trim curve of count points.
func (g *GLU) PwlCurve(n Nurbs, count int32, data []float32, stride int32, typ Enum) error {
	err := g.callVoid("gluPwlCurve", n, count, first(data), stride, typ)
	runtime.KeepAlive(data)
	return err
}
