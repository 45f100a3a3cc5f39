// Package resultset holds the materialized cell grid produced by one query
// execution. A ResultSet exclusively owns every cell until Release.
package resultset

// Cell is one column value of one fetched row: either owned bytes or a
// distinguished is-null marker.
type Cell struct {
	data []byte
	null bool
}

// NewCell wraps b as an owned cell value. The ResultSet takes ownership of
// b; callers must not retain it.
func NewCell(b []byte) Cell { return Cell{data: b} }

// NullCell returns the is-null marker.
func NullCell() Cell { return Cell{null: true} }

// IsNull reports whether the cell carries the is-null marker.
func (c Cell) IsNull() bool { return c.null }

// Bytes exposes the cell's backing bytes. Nil for null cells. The slice is
// owned by the ResultSet and is only valid until Release.
func (c Cell) Bytes() []byte { return c.data }

// Len is the cell's byte length; 0 for null cells.
func (c Cell) Len() int { return len(c.data) }

// Row is an ordered sequence of cells. Every row in a ResultSet has the
// same length: the field count of the executed statement.
type Row []Cell

// ResultSet is the owned row grid from one execution, plus column names
// when the engine reported them. It is plain immutable data once built and
// may be shared across goroutines until Release.
type ResultSet struct {
	cols     []string
	rows     []Row
	released bool
}

// New returns an empty ResultSet with the given column names.
func New(cols []string) *ResultSet {
	return &ResultSet{cols: cols}
}

// Grow pre-sizes the row sequence for n appends.
func (rs *ResultSet) Grow(n int) {
	if n > cap(rs.rows)-len(rs.rows) {
		rows := make([]Row, len(rs.rows), len(rs.rows)+n)
		copy(rows, rs.rows)
		rs.rows = rows
	}
}

// Append takes ownership of row.
func (rs *ResultSet) Append(row Row) {
	rs.rows = append(rs.rows, row)
}

// Columns returns the column names reported by the engine; may be empty.
func (rs *ResultSet) Columns() []string { return rs.cols }

func (rs *ResultSet) RowCount() int { return len(rs.rows) }

// FieldCount is the width of the grid, 0 when there are no rows and the
// engine reported no columns.
func (rs *ResultSet) FieldCount() int {
	if len(rs.rows) > 0 {
		return len(rs.rows[0])
	}
	return len(rs.cols)
}

// Row returns row r. The returned slice is owned by the ResultSet.
func (rs *ResultSet) Row(r int) Row { return rs.rows[r] }

// Cell returns the cell at row r, column c.
func (rs *ResultSet) Cell(r, c int) Cell { return rs.rows[r][c] }

// Release drops every cell, then every row, then the row sequence, exactly
// once. Converted records are unaffected; they carry their own storage.
// Releasing twice is a programming error and panics. Releasing an empty
// ResultSet is a no-op.
func (rs *ResultSet) Release() {
	if rs.released {
		panic("resultset: double release")
	}
	rs.released = true
	for i := range rs.rows {
		rs.rows[i] = nil
	}
	rs.rows = nil
}

// Released reports whether Release has been called.
func (rs *ResultSet) Released() bool { return rs.released }
