package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/wippyai/dynbind/glu"
)

type demo struct {
	w      io.Writer
	g      *glu.GLU
	failed int
}

func runDemo(w io.Writer, g *glu.GLU) error {
	d := &demo{w: w, g: g}

	fmt.Fprintln(w, bannerStyle.Render("GLU Bindings Demo"))
	d.stringQueries()
	d.errorStrings()
	d.quadric()
	d.tessellator()
	d.nurbs()
	d.projection()

	rule := typeStyle.Render(strings.Repeat("═", 44))
	fmt.Fprintln(w, "\n"+rule)
	if d.failed > 0 {
		fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("%d GLU calls failed", d.failed)))
	} else {
		fmt.Fprintln(w, resultStyle.Render("All GLU bindings exercised"))
	}
	fmt.Fprintln(w, rule)
	if d.failed > 0 {
		return fmt.Errorf("%d GLU calls failed", d.failed)
	}
	return nil
}

func (d *demo) section(n int, title string) {
	fmt.Fprintf(d.w, "\n%s\n%s\n", sectionStyle.Render(fmt.Sprintf("[%d] %s", n, title)), strings.Repeat("─", 44))
}

func (d *demo) line(label string, value any) {
	fmt.Fprintf(d.w, "    %-19s %v\n", label+":", value)
}

// check reports err and returns false when a call failed.
func (d *demo) check(what string, err error) bool {
	if err == nil {
		return true
	}
	d.failed++
	fmt.Fprintf(d.w, "    %s\n", errorStyle.Render(fmt.Sprintf("%s: %v", what, err)))
	return false
}

func (d *demo) ok() string {
	return resultStyle.Render("OK")
}

func handle(p uintptr) string {
	if p == 0 {
		return errorStyle.Render("FAILED")
	}
	return fmt.Sprintf("%#x", p)
}

func (d *demo) stringQueries() {
	d.section(1, "GLU String Queries")
	for _, q := range []struct {
		label string
		name  glu.Enum
	}{
		{"GLU_VERSION", glu.Version},
		{"GLU_EXTENSIONS", glu.Extensions},
	} {
		s, err := d.g.GetString(q.name)
		if !d.check(q.label, err) {
			continue
		}
		if s == "" {
			s = dimStyle.Render("(requires GL context)")
		}
		d.line(q.label, s)
	}
}

func (d *demo) errorStrings() {
	d.section(2, "GLU Error Strings")
	for _, e := range []struct {
		label string
		code  glu.Enum
	}{
		{"GLU_INVALID_ENUM", glu.InvalidEnum},
		{"GLU_INVALID_VALUE", glu.InvalidValue},
		{"GLU_OUT_OF_MEMORY", glu.OutOfMemory},
		{"GLU_INCOMPATIBLE_GL_VERSION", glu.IncompatibleGLVersion},
	} {
		msg, err := d.g.ErrorString(e.code)
		if !d.check(e.label, err) {
			continue
		}
		if msg == "" {
			msg = "(null)"
		}
		fmt.Fprintf(d.w, "    %-28s => %q\n", e.label, msg)
	}
}

func (d *demo) quadric() {
	d.section(3, "Quadric Object Lifecycle")
	q, err := d.g.NewQuadric()
	if !d.check("gluNewQuadric", err) {
		return
	}
	d.line("Created quadric", handle(uintptr(q)))
	if q == 0 {
		return
	}
	steps := []struct {
		label, value string
		call         func() error
	}{
		{"Set draw style", "GLU_FILL", func() error { return d.g.QuadricDrawStyle(q, glu.Fill) }},
		{"Set normals", "GLU_SMOOTH", func() error { return d.g.QuadricNormals(q, glu.Smooth) }},
		{"Set orientation", "GLU_OUTSIDE", func() error { return d.g.QuadricOrientation(q, glu.Outside) }},
		{"Set texture", "GLU_TRUE", func() error { return d.g.QuadricTexture(q, true) }},
	}
	for _, s := range steps {
		if d.check(s.label, s.call()) {
			d.line(s.label, s.value)
		}
	}
	if d.check("gluDeleteQuadric", d.g.DeleteQuadric(q)) {
		d.line("Deleted quadric", d.ok())
	}
}

func (d *demo) tessellator() {
	d.section(4, "Tessellator Object Lifecycle")
	t, err := d.g.NewTess()
	if !d.check("gluNewTess", err) {
		return
	}
	d.line("Created tessellator", handle(uintptr(t)))
	if t == 0 {
		return
	}
	if tol, err := d.g.GetTessProperty(t, glu.TessTolerance); d.check("gluGetTessProperty", err) {
		d.line("Default tolerance", tol)
	}
	if d.check("gluTessProperty", d.g.TessProperty(t, glu.TessWindingRule, float64(glu.TessWindingOdd))) {
		d.line("Set winding rule", "GLU_TESS_WINDING_ODD")
	}
	if d.check("gluTessNormal", d.g.TessNormal(t, 0, 0, 1)) {
		d.line("Set normal", "(0, 0, 1)")
	}
	if d.check("gluDeleteTess", d.g.DeleteTess(t)) {
		d.line("Deleted tessellator", d.ok())
	}
}

func (d *demo) nurbs() {
	d.section(5, "NURBS Renderer Lifecycle")
	n, err := d.g.NewNurbsRenderer()
	if !d.check("gluNewNurbsRenderer", err) {
		return
	}
	d.line("Created NURBS", handle(uintptr(n)))
	if n == 0 {
		return
	}
	if d.check("gluNurbsProperty", d.g.NurbsProperty(n, glu.SamplingTolerance, 50)) {
		d.line("Sampling tolerance", "50.0")
	}
	if d.check("gluNurbsProperty", d.g.NurbsProperty(n, glu.DisplayMode, float32(glu.Fill))) {
		d.line("Display mode", "GLU_FILL")
	}
	if tol, err := d.g.GetNurbsProperty(n, glu.SamplingTolerance); d.check("gluGetNurbsProperty", err) {
		d.line("Read back tolerance", tol)
	}
	if d.check("gluDeleteNurbsRenderer", d.g.DeleteNurbsRenderer(n)) {
		d.line("Deleted NURBS", d.ok())
	}
}

func (d *demo) projection() {
	d.section(6, "Coordinate Projection Demo")

	// Column-major; the model matrix translates back 5 units.
	model := [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, -5, 1,
	}
	proj := [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, -1.02, -1,
		0, 0, -2.02, 0,
	}
	viewport := [4]int32{0, 0, 800, 600}

	win, ok, err := d.g.Project(0, 0, 0, &model, &proj, &viewport)
	if !d.check("gluProject", err) {
		return
	}
	d.line("Object coords", "(0, 0, 0)")
	d.line("Projection", status(ok))
	if !ok {
		return
	}
	d.line("Window coords", fmt.Sprintf("(%.1f, %.1f, %.6f)", win[0], win[1], win[2]))

	obj, ok, err := d.g.UnProject(win[0], win[1], win[2], &model, &proj, &viewport)
	if !d.check("gluUnProject", err) {
		return
	}
	d.line("Unproject", status(ok))
	if ok {
		d.line("Recovered", fmt.Sprintf("(%.6f, %.6f, %.6f)", obj[0], obj[1], obj[2]))
	}
}

func status(ok bool) string {
	if ok {
		return resultStyle.Render("SUCCESS")
	}
	return errorStyle.Render("FAILED")
}
