package io

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/wires/circuit"
	"github.com/ezrec/wires/internal"
)

// WriteTable writes a report of every wire signal known to a resolver,
// sorted by wire name, with the definition that supplied it.
func WriteTable(output io.Writer, title string, rv *circuit.Resolver) {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(output)
	tbl.AppendHeader(table.Row{"wire", "signal", "hex", "source"})

	st := rv.Store()
	for wire, value := range internal.IterSeq2Sorted(rv.Values()) {
		source := "seed"
		def, ok := st.Lookup(wire)
		if ok && !rv.Seeded(wire) {
			source = def.String()
		}
		tbl.AppendRow(table.Row{wire, value, fmt.Sprintf("%04x", value), source})
	}

	tbl.Render()
}
