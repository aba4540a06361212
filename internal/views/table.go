package views

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/beanview/internal/dataset"
)

// TabularView is the full cleaned table for display. Rows share storage with the
// table and must not be modified.
type TabularView struct {
	Title   string     `json:"title"`
	Source  string     `json:"source"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// RenderTable passes the cleaned table through unchanged.
func RenderTable(t *dataset.Table) TabularView {
	rows := make([][]string, len(t.Records))
	for i := range t.Records {
		rows[i] = t.Records[i].Cells
	}
	return TabularView{Title: "Data Table", Source: t.Source, Columns: t.Columns, Rows: rows}
}

// Markdown renders up to limit rows as a Markdown table; limit <= 0 renders every row.
func (v TabularView) Markdown(limit int) string {
	var b strings.Builder
	b.WriteString("| ")
	b.WriteString(strings.Join(v.Columns, " | "))
	b.WriteString(" |\n|")
	for range v.Columns {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")
	n := len(v.Rows)
	if limit > 0 && limit < n {
		n = limit
	}
	for _, row := range v.Rows[:n] {
		b.WriteString("| ")
		for i, c := range row {
			if i > 0 {
				b.WriteString(" | ")
			}
			if len(c) > 80 {
				c = c[:77] + "..."
			}
			b.WriteString(safeVal(c))
		}
		b.WriteString(" |\n")
	}
	if n < len(v.Rows) {
		b.WriteString(fmt.Sprintf("\n(showing %d of %d rows)\n", n, len(v.Rows)))
	}
	return b.String()
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
