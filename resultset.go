package unisql

// ResultSet is the fully materialized output of one statement execution:
// an ordered list of column names and the converted rows, in statement
// order. It is immutable after construction and safe for concurrent readers;
// it holds no live connection state.
type ResultSet struct {
	columns []string
	rows    [][]Value
}

func newResultSet(columns []string, rows [][]Value) *ResultSet {
	return &ResultSet{columns: columns, rows: rows}
}

// Columns returns the column names in statement output order.
func (rs *ResultSet) Columns() []string {
	columns := make([]string, len(rs.columns))
	copy(columns, rs.columns)
	return columns
}

// RowCount returns the number of materialized rows.
func (rs *ResultSet) RowCount() int {
	return len(rs.rows)
}

// Row returns a copy of the i-th row. It panics if i is out of range, like a
// slice index.
func (rs *ResultSet) Row(i int) []Value {
	row := make([]Value, len(rs.rows[i]))
	copy(row, rs.rows[i])
	return row
}

// columnIndex returns the position of the first column with the given name.
func (rs *ResultSet) columnIndex(column string) (int, bool) {
	for i, name := range rs.columns {
		if name == column {
			return i, true
		}
	}
	return 0, false
}

// GetFirstOne returns the first row's value for the given column name, the
// common shortcut for single-row and aggregate queries. It fails with a
// ColumnNotFound error if the name is absent and an EmptyResult error if the
// result set has zero rows.
//
// If the statement produced duplicate output column names, the first match
// wins; alias columns in the statement to disambiguate.
func (rs *ResultSet) GetFirstOne(column string) (Value, error) {
	i, ok := rs.columnIndex(column)
	if !ok {
		return Value{}, NewColumnNotFoundError(column)
	}
	if len(rs.rows) == 0 {
		return Value{}, NewEmptyResultError(column)
	}
	return rs.rows[0][i], nil
}

// GetAll returns every row's value for the given column name, in row order.
// It fails with a ColumnNotFound error if the name is absent; a zero-row
// result set yields an empty slice, not an error.
//
// If the statement produced duplicate output column names, the first match
// wins; alias columns in the statement to disambiguate.
func (rs *ResultSet) GetAll(column string) ([]Value, error) {
	i, ok := rs.columnIndex(column)
	if !ok {
		return nil, NewColumnNotFoundError(column)
	}
	values := make([]Value, 0, len(rs.rows))
	for _, row := range rs.rows {
		values = append(values, row[i])
	}
	return values, nil
}
