package chemdata

import "math"

// Table is one loaded property table: a CAS-indexed matrix of float64
// cells with named value columns. Blank cells are stored as NaN and
// reported as absent. A Table never changes after parsing.
type Table struct {
	name    string
	columns []string
	colIdx  map[string]int
	rows    map[string][]float64
	names   map[string]string
	order   []string
}

// Name returns the registry name of the table.
func (t *Table) Name() string { return t.name }

// Columns returns the value column names in file order.
func (t *Table) Columns() []string { return append([]string(nil), t.columns...) }

// Len returns the number of compounds in the table.
func (t *Table) Len() int { return len(t.order) }

// CAS returns every CAS number in the table, in file order.
func (t *Table) CAS() []string { return append([]string(nil), t.order...) }

// Has reports whether the table has a row for cas.
func (t *Table) Has(cas string) bool {
	_, ok := t.rows[cas]
	return ok
}

// Chemical returns the compound name recorded for cas.
func (t *Table) Chemical(cas string) (string, bool) {
	name, ok := t.names[cas]
	return name, ok
}

// Value returns the cell at (cas, column). Missing rows, unknown
// columns and blank cells all report absence.
func (t *Table) Value(cas, column string) (float64, bool) {
	row, ok := t.rows[cas]
	if !ok {
		return 0, false
	}
	i, ok := t.colIdx[column]
	if !ok {
		return 0, false
	}
	if math.IsNaN(row[i]) {
		return 0, false
	}
	return row[i], true
}
