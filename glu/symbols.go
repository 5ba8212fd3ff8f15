package glu

import "github.com/wippyai/dynbind/symtab"

const (
	ptr = symtab.Ptr
	u8  = symtab.U8
	i32 = symtab.I32
	u32 = symtab.U32
	f32 = symtab.F32
	f64 = symtab.F64
)

// Symbols declares every GLU export and its calling signature.
var Symbols = symtab.MustNew(specs...)

var specs = []symtab.Spec{
	{Name: "gluBeginCurve", Args: []symtab.Kind{ptr}},
	{Name: "gluBeginPolygon", Args: []symtab.Kind{ptr}},
	{Name: "gluBeginSurface", Args: []symtab.Kind{ptr}},
	{Name: "gluBeginTrim", Args: []symtab.Kind{ptr}},
	{Name: "gluBuild1DMipmaps", Args: []symtab.Kind{u32, i32, i32, u32, u32, ptr}, Return: i32},
	{Name: "gluBuild2DMipmaps", Args: []symtab.Kind{u32, i32, i32, i32, u32, u32, ptr}, Return: i32},
	{Name: "gluCylinder", Args: []symtab.Kind{ptr, f64, f64, f64, i32, i32}},
	{Name: "gluDeleteNurbsRenderer", Args: []symtab.Kind{ptr}},
	{Name: "gluDeleteQuadric", Args: []symtab.Kind{ptr}},
	{Name: "gluDeleteTess", Args: []symtab.Kind{ptr}},
	{Name: "gluDisk", Args: []symtab.Kind{ptr, f64, f64, i32, i32}},
	{Name: "gluEndCurve", Args: []symtab.Kind{ptr}},
	{Name: "gluEndPolygon", Args: []symtab.Kind{ptr}},
	{Name: "gluEndSurface", Args: []symtab.Kind{ptr}},
	{Name: "gluEndTrim", Args: []symtab.Kind{ptr}},
	{Name: "gluErrorString", Args: []symtab.Kind{u32}, Return: ptr},
	{Name: "gluErrorUnicodeStringEXT", Args: []symtab.Kind{u32}, Return: ptr},
	{Name: "gluGetNurbsProperty", Args: []symtab.Kind{ptr, u32, ptr}},
	{Name: "gluGetString", Args: []symtab.Kind{u32}, Return: ptr},
	{Name: "gluGetTessProperty", Args: []symtab.Kind{ptr, u32, ptr}},
	{Name: "gluLoadSamplingMatrices", Args: []symtab.Kind{ptr, ptr, ptr, ptr}},
	{Name: "gluLookAt", Args: []symtab.Kind{f64, f64, f64, f64, f64, f64, f64, f64, f64}},
	{Name: "gluNewNurbsRenderer", Return: ptr},
	{Name: "gluNewQuadric", Return: ptr},
	{Name: "gluNewTess", Return: ptr},
	{Name: "gluNextContour", Args: []symtab.Kind{ptr, u32}},
	{Name: "gluNurbsCallback", Args: []symtab.Kind{ptr, u32, ptr}},
	{Name: "gluNurbsCurve", Args: []symtab.Kind{ptr, i32, ptr, i32, ptr, i32, u32}},
	{Name: "gluNurbsProperty", Args: []symtab.Kind{ptr, u32, f32}},
	{Name: "gluNurbsSurface", Args: []symtab.Kind{ptr, i32, ptr, i32, ptr, i32, i32, ptr, i32, i32, u32}},
	{Name: "gluOrtho2D", Args: []symtab.Kind{f64, f64, f64, f64}},
	{Name: "gluPartialDisk", Args: []symtab.Kind{ptr, f64, f64, i32, i32, f64, f64}},
	{Name: "gluPerspective", Args: []symtab.Kind{f64, f64, f64, f64}},
	{Name: "gluPickMatrix", Args: []symtab.Kind{f64, f64, f64, f64, ptr}},
	{Name: "gluProject", Args: []symtab.Kind{f64, f64, f64, ptr, ptr, ptr, ptr, ptr, ptr}, Return: i32},
	{Name: "gluPwlCurve", Args: []symtab.Kind{ptr, i32, ptr, i32, u32}},
	{Name: "gluQuadricCallback", Args: []symtab.Kind{ptr, u32, ptr}},
	{Name: "gluQuadricDrawStyle", Args: []symtab.Kind{ptr, u32}},
	{Name: "gluQuadricNormals", Args: []symtab.Kind{ptr, u32}},
	{Name: "gluQuadricOrientation", Args: []symtab.Kind{ptr, u32}},
	{Name: "gluQuadricTexture", Args: []symtab.Kind{ptr, u8}},
	{Name: "gluScaleImage", Args: []symtab.Kind{u32, i32, i32, u32, ptr, i32, i32, u32, ptr}, Return: i32},
	{Name: "gluSphere", Args: []symtab.Kind{ptr, f64, i32, i32}},
	{Name: "gluTessBeginContour", Args: []symtab.Kind{ptr}},
	{Name: "gluTessBeginPolygon", Args: []symtab.Kind{ptr, ptr}},
	{Name: "gluTessCallback", Args: []symtab.Kind{ptr, u32, ptr}},
	{Name: "gluTessEndContour", Args: []symtab.Kind{ptr}},
	{Name: "gluTessEndPolygon", Args: []symtab.Kind{ptr}},
	{Name: "gluTessNormal", Args: []symtab.Kind{ptr, f64, f64, f64}},
	{Name: "gluTessProperty", Args: []symtab.Kind{ptr, u32, f64}},
	{Name: "gluTessVertex", Args: []symtab.Kind{ptr, ptr, ptr}},
	{Name: "gluUnProject", Args: []symtab.Kind{f64, f64, f64, ptr, ptr, ptr, ptr, ptr, ptr}, Return: i32},
}
