// Package fetch drives result retrieval for an executed statement and
// materializes rows into an owned ResultSet.
package fetch

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/tuannm99/rowmat/internal/engine"
	"github.com/tuannm99/rowmat/internal/resultset"
)

// DefaultBufSize is the per-field transfer buffer capacity used when the
// Fetcher has none configured.
const DefaultBufSize = 4096

// Fetcher retrieves all rows of an executed statement. It owns the
// fixed-capacity per-field transfer buffers for the duration of one Fetch
// call; every cell handed out is a fresh copy owned by the ResultSet.
type Fetcher struct {
	// BufSize is the transfer buffer capacity per field.
	BufSize int

	// MaxValueSize caps the size of a single value recovered through a
	// truncation refetch. 0 means no cap.
	MaxValueSize int

	Log *slog.Logger
}

func (f *Fetcher) bufSize() int {
	if f.BufSize > 0 {
		return f.BufSize
	}
	return DefaultBufSize
}

func (f *Fetcher) logger() *slog.Logger {
	if f.Log != nil {
		return f.Log
	}
	return slog.Default()
}

// Fetch retrieves every row of stmt into a ResultSet.
//
// Statements without result-set metadata (mutations) yield
// engine.ErrNoResult so callers can tell "no rows by nature" apart from a
// query that matched zero rows, which yields an empty ResultSet. On any
// mid-fetch failure the partially built ResultSet is released before the
// error is returned; no partial grid is ever handed to the caller.
func (f *Fetcher) Fetch(stmt engine.Statement) (*resultset.ResultSet, error) {
	md, ok := stmt.Metadata()
	if !ok {
		return nil, engine.ErrNoResult
	}

	rs := resultset.New(md.Columns)
	if md.RowCount == 0 {
		return rs, nil
	}
	rs.Grow(md.RowCount)

	// One transfer buffer plus length and null-flag registers per field,
	// bound once and reused across every row fetch.
	size := f.bufSize()
	bufs := make([]engine.ResultBuffer, md.FieldCount)
	lengths := make([]int, md.FieldCount)
	nulls := make([]bool, md.FieldCount)
	for i := range bufs {
		bufs[i] = engine.ResultBuffer{
			Data:   make([]byte, size),
			Length: &lengths[i],
			Null:   &nulls[i],
		}
	}
	if err := stmt.BindResult(bufs); err != nil {
		return nil, errors.Join(engine.ErrStoreResult, err)
	}

	for {
		st, err := stmt.FetchNext()
		if err != nil {
			rs.Release()
			return nil, errors.Join(engine.ErrFetchResult, err)
		}
		if st == engine.FetchDone {
			break
		}

		row := make(resultset.Row, md.FieldCount)
		for i := range bufs {
			cell, err := f.cell(stmt, bufs[i], i, lengths[i], nulls[i])
			if err != nil {
				rs.Release()
				return nil, err
			}
			row[i] = cell
		}
		rs.Append(row)
	}
	return rs, nil
}

// cell copies one field of the current row out of its transfer buffer into
// row-owned storage. The reported length may exceed the buffer capacity;
// the copy is clamped to the buffer and the full value is recovered with an
// enlarged refetch rather than silently truncated.
func (f *Fetcher) cell(stmt engine.Statement, buf engine.ResultBuffer, col, reported int, isNull bool) (resultset.Cell, error) {
	if isNull {
		return resultset.NullCell(), nil
	}
	if reported <= len(buf.Data) {
		return resultset.NewCell(append([]byte(nil), buf.Data[:reported]...)), nil
	}

	if f.MaxValueSize > 0 && reported > f.MaxValueSize {
		return resultset.Cell{}, errors.Join(engine.ErrFetchResult,
			fmt.Errorf("fetch: column %d reports %d bytes, over the %d byte value cap", col, reported, f.MaxValueSize))
	}

	f.logger().Warn("fetch: transfer buffer too small, refetching column",
		"column", col, "reported", reported, "capacity", len(buf.Data))

	grown := make([]byte, reported)
	if err := stmt.RefetchColumn(col, grown); err != nil {
		return resultset.Cell{}, errors.Join(engine.ErrFetchResult, err)
	}
	return resultset.NewCell(grown), nil
}
