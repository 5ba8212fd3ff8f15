package main

import (
	"fmt"
	"io"

	"github.com/wippyai/dynbind/binder"
)

func printTable(w io.Writer, c *binder.Cache) {
	table := c.Table()
	fmt.Fprintf(w, "%s %s\n\n", titleStyle.Render("GLU Symbols"), c.Library())
	for _, spec := range table.Specs() {
		mark := dimStyle.Render("○")
		if c.IsBound(spec.Name) {
			mark = resultStyle.Render("●")
		}
		fmt.Fprintf(w, "  %s %s%s\n", mark, funcStyle.Render(spec.Name), typeStyle.Render(spec.Signature()))
	}
	s := c.Stats()
	fmt.Fprintf(w, "\n%s\n", helpStyle.Render(fmt.Sprintf("%d symbols, %d bound, %d opens, %d lookups, %d batches",
		table.Len(), s.Bound, s.Opens, s.Lookups, s.Batches)))
}
