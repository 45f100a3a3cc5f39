package rowmat

import (
	"github.com/tuannm99/rowmat/internal/convert"
	"github.com/tuannm99/rowmat/internal/engine"
	"github.com/tuannm99/rowmat/internal/param"
	"github.com/tuannm99/rowmat/internal/resultset"
)

// Engine seam, re-exported so callers can plug in their own implementation.
type (
	Engine       = engine.Engine
	Statement    = engine.Statement
	BindArg      = engine.BindArg
	BindKind     = engine.BindKind
	ResultBuffer = engine.ResultBuffer
	Metadata     = engine.Metadata
	FetchStatus  = engine.FetchStatus
)

const (
	BindNull    = engine.BindNull
	BindBytes   = engine.BindBytes
	BindInt64   = engine.BindInt64
	BindFloat64 = engine.BindFloat64

	FetchRow  = engine.FetchRow
	FetchDone = engine.FetchDone
)

// Parameters.
type Parameter = param.Parameter

// String binds a text parameter.
func String(s string) Parameter { return param.String(s) }

// Bytes binds a raw byte parameter without copying; the caller keeps the
// slice alive until execution completes.
func Bytes(b []byte) Parameter { return param.Bytes(b) }

// Int binds a 64-bit signed integer parameter.
func Int(v int64) Parameter { return param.Int(v) }

// Float binds a 64-bit float parameter.
func Float(v float64) Parameter { return param.Float(v) }

// Null binds SQL NULL.
func Null() Parameter { return param.Null() }

// Materialized results.
type (
	Cell      = resultset.Cell
	Row       = resultset.Row
	ResultSet = resultset.ResultSet
)

// Conversion.
type (
	RecordShape = convert.Shape

	FieldCountError      = convert.FieldCountError
	ParseError           = convert.ParseError
	UnsupportedTypeError = convert.UnsupportedTypeError
)

// Execution-stage errors, surfaced verbatim from the engine boundary.
var (
	ErrConnectionFailed     = engine.ErrConnectionFailed
	ErrPrepareStatement     = engine.ErrPrepareStatement
	ErrBindParameters       = engine.ErrBindParameters
	ErrExecuteStatement     = engine.ErrExecuteStatement
	ErrStoreResult          = engine.ErrStoreResult
	ErrFetchResult          = engine.ErrFetchResult
	ErrInvalidParameterType = engine.ErrInvalidParameterType
	ErrNoResult             = engine.ErrNoResult
	ErrNoRows               = engine.ErrNoRows
)
