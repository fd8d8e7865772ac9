package view

import "strings"

// Cell is one table cell. Class carries styling hints such as
// "status active".
type Cell struct {
	Text  string
	Class string
}

// Row is one rendered table row. Hidden rows stay in the table.
type Row struct {
	Key     string
	Cells   []Cell
	Actions []string
	Hidden  bool
}

// Text is the full text content of the row: every cell followed by every
// action label, separated by spaces.
func (r Row) Text() string {
	parts := make([]string, 0, len(r.Cells)+len(r.Actions))
	for _, c := range r.Cells {
		parts = append(parts, c.Text)
	}
	parts = append(parts, r.Actions...)
	return strings.Join(parts, " ")
}
