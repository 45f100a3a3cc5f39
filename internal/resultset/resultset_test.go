package resultset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReleaseEmpty_NoOp(t *testing.T) {
	rs := New(nil)
	rs.Release() // must not panic or error
	require.True(t, rs.Released())
	require.Equal(t, 0, rs.RowCount())
}

func TestDoubleRelease_Panics(t *testing.T) {
	rs := New([]string{"id"})
	rs.Append(Row{NewCell([]byte("1"))})
	rs.Release()

	require.Panics(t, func() { rs.Release() })
}

func TestAccessors(t *testing.T) {
	rs := New([]string{"id", "name"})
	rs.Grow(2)
	rs.Append(Row{NewCell([]byte("1")), NewCell([]byte("Alice"))})
	rs.Append(Row{NewCell([]byte("2")), NullCell()})

	require.Equal(t, []string{"id", "name"}, rs.Columns())
	require.Equal(t, 2, rs.RowCount())
	require.Equal(t, 2, rs.FieldCount())

	require.Equal(t, []byte("Alice"), rs.Cell(0, 1).Bytes())
	require.Equal(t, 5, rs.Cell(0, 1).Len())
	require.False(t, rs.Cell(0, 1).IsNull())

	require.True(t, rs.Cell(1, 1).IsNull())
	require.Nil(t, rs.Cell(1, 1).Bytes())
	require.Equal(t, 0, rs.Cell(1, 1).Len())
}

func TestFieldCount_EmptySetUsesColumns(t *testing.T) {
	rs := New([]string{"a", "b", "c"})
	require.Equal(t, 3, rs.FieldCount())
	require.Equal(t, 0, rs.RowCount())
}

func TestRelease_DropsRows(t *testing.T) {
	rs := New(nil)
	rs.Append(Row{NewCell([]byte("x"))})
	require.Equal(t, 1, rs.RowCount())

	rs.Release()
	require.Equal(t, 0, rs.RowCount())
}
