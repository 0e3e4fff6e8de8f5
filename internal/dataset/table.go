package dataset

// Key is a join-key cell after numeric coercion. Valid is false for cells
// whose original value failed numeric parsing; a missing key never matches
// in an equi-join.
type Key struct {
	Num   int64
	Valid bool
}

// Table is an ordered sequence of rows over a fixed column set. Cells are
// strings as read from the source; join-key columns designated by the schema
// additionally carry coerced numeric values after CoerceKeys.
type Table struct {
	Name    string
	Columns []string
	Rows    []map[string]string

	keys map[string][]Key
}

// NewTable creates a table from a header and row maps keyed by header name.
func NewTable(name string, columns []string, rows []map[string]string) *Table {
	return &Table{Name: name, Columns: columns, Rows: rows}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Key returns the coerced key value for the given column and row index.
// ok is false when the column was never designated as a key column.
func (t *Table) Key(column string, row int) (Key, bool) {
	if t.keys == nil {
		return Key{}, false
	}
	vals, exists := t.keys[column]
	if !exists || row < 0 || row >= len(vals) {
		return Key{}, false
	}
	return vals[row], true
}

// Clone returns a deep copy of the table. Normalization operates on a clone
// so callers never observe their input mutated.
func (t *Table) Clone() *Table {
	out := &Table{
		Name:    t.Name,
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]map[string]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		nr := make(map[string]string, len(row))
		for k, v := range row {
			nr[k] = v
		}
		out.Rows[i] = nr
	}
	if t.keys != nil {
		out.keys = make(map[string][]Key, len(t.keys))
		for k, v := range t.keys {
			out.keys[k] = append([]Key(nil), v...)
		}
	}
	return out
}

// rename changes a column name in place, carrying cell values and any coerced
// keys over to the new name. No-op when the old column does not exist.
func (t *Table) rename(from, to string) {
	if from == to {
		return
	}
	found := false
	for i, c := range t.Columns {
		if c == from {
			t.Columns[i] = to
			found = true
		}
	}
	if !found {
		return
	}
	for _, row := range t.Rows {
		if v, ok := row[from]; ok {
			row[to] = v
			delete(row, from)
		}
	}
	if vals, ok := t.keys[from]; ok {
		t.keys[to] = vals
		delete(t.keys, from)
	}
}
