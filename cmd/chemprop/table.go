package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderTable renders rows under headers with rounded borders. Columns
// listed in numeric are right-aligned.
func renderTable(headers []string, rows [][]string, numeric ...int) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)

	hdr := make(table.Row, len(headers))
	for i, h := range headers {
		hdr[i] = h
	}
	t.AppendHeader(hdr)

	for _, row := range rows {
		r := make(table.Row, len(row))
		for i, cell := range row {
			r[i] = cell
		}
		t.AppendRow(r)
	}

	if len(numeric) > 0 {
		configs := make([]table.ColumnConfig, 0, len(numeric))
		for _, col := range numeric {
			configs = append(configs, table.ColumnConfig{
				Number: col + 1,
				Align:  text.AlignRight,
			})
		}
		t.SetColumnConfigs(configs)
	}

	return t.Render()
}
