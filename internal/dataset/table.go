package dataset

// Column is one named column of raw cells plus a missing-cell mask.
// Cells and Missing always have the table's row count.
type Column struct {
	Name    string
	Cells   []string
	Missing []bool
}

// MissingCount returns the number of missing cells in the column.
func (c *Column) MissingCount() int {
	n := 0
	for _, m := range c.Missing {
		if m {
			n++
		}
	}
	return n
}

// Table is a loaded CSV: an ordered sequence of uniquely named columns of
// equal length. It is read-only after Load returns.
type Table struct {
	// Source is the base name of the file the table was loaded from.
	Source  string
	Columns []Column
	Rows    int
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.Columns) }

// Column returns the column with the given name, if present.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// Row returns the raw cells of row i across all columns, in column order.
func (t *Table) Row(i int) []string {
	row := make([]string, len(t.Columns))
	for j := range t.Columns {
		row[j] = t.Columns[j].Cells[i]
	}
	return row
}

// MissingTotal returns the total number of missing cells in the table.
func (t *Table) MissingTotal() int {
	n := 0
	for i := range t.Columns {
		n += t.Columns[i].MissingCount()
	}
	return n
}
