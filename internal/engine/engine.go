// Package engine defines the seam between rowmat and a synchronous
// prepared-statement engine. rowmat never talks to a wire protocol itself;
// it drives whatever implementation of Engine the caller plugs in.
package engine

// BindKind tags one parameter bind descriptor.
type BindKind uint8

const (
	BindNull BindKind = iota
	BindBytes
	BindInt64
	BindFloat64
)

// BindArg is one protocol-level bind descriptor. For BindBytes the Data
// slice aliases the caller's parameter bytes (no copy); the caller must keep
// the parameter alive until Execute returns. Scalar kinds point at a stable
// location so the engine can read them at execute time.
type BindArg struct {
	Kind  BindKind
	Data  []byte
	Int   *int64
	Float *float64
}

// ResultBuffer is one per-field transfer binding: a fixed-capacity staging
// buffer reused across row fetches, plus the length and null-flag registers
// the engine writes on every FetchNext.
//
// Length holds the reported length of the current value, which may exceed
// len(Data) when the value did not fit; readers must clamp to len(Data) and
// recover the full value through RefetchColumn.
type ResultBuffer struct {
	Data   []byte
	Length *int
	Null   *bool
}

// Metadata describes the result set a statement produced. Statements that
// return no rows by nature (INSERT, UPDATE, ...) have no Metadata at all,
// which is distinct from a SELECT that matched zero rows.
type Metadata struct {
	RowCount   int
	FieldCount int
	Columns    []string
}

// FetchStatus is the outcome of one FetchNext call.
type FetchStatus uint8

const (
	FetchRow  FetchStatus = iota // registers and buffers hold a new row
	FetchDone                    // no more rows
)

// Engine is a synchronous prepared-statement engine. Connection
// establishment, credentials and pooling all live behind it; rowmat assumes
// one statement is driven by one caller at a time.
type Engine interface {
	Prepare(query string) (Statement, error)

	// LastError returns the engine's last error text, or "" if none.
	LastError() string
}

// Statement is a prepared, parameter-bindable query handle.
type Statement interface {
	// BindParams installs one descriptor per placeholder, in order. The
	// engine, not the caller, enforces that the count matches the
	// statement's placeholder count.
	BindParams(args []BindArg) error

	Execute() error

	// Metadata reports the result-set shape, or ok=false when the
	// statement produced no result-set metadata.
	Metadata() (md Metadata, ok bool)

	// AffectedRows reports the row count touched by a mutation statement.
	AffectedRows() int64

	// BindResult installs the per-field transfer buffers reused by every
	// subsequent FetchNext.
	BindResult(bufs []ResultBuffer) error

	FetchNext() (FetchStatus, error)

	// RefetchColumn re-reads column col of the current row into buf.
	// Used to recover values longer than the bound transfer buffer.
	RefetchColumn(col int, buf []byte) error

	Close() error
}
