package engine

import "errors"

// Execution-stage errors. They originate at the engine boundary and are
// surfaced verbatim to the caller; rowmat never retries or swallows them.
var (
	ErrConnectionFailed     = errors.New("engine: connection failed")
	ErrPrepareStatement     = errors.New("engine: prepare statement failed")
	ErrBindParameters       = errors.New("engine: bind parameters failed")
	ErrExecuteStatement     = errors.New("engine: execute statement failed")
	ErrStoreResult          = errors.New("engine: store result failed")
	ErrFetchResult          = errors.New("engine: fetch result failed")
	ErrInvalidParameterType = errors.New("engine: invalid parameter type")

	// ErrNoResult marks statements that return no rows by nature (a
	// mutation). Distinct from a query that matched zero rows, which
	// yields an empty result set instead.
	ErrNoResult = errors.New("engine: statement produced no result set")

	// ErrNoRows is returned by single-record lookups over an empty
	// result set.
	ErrNoRows = errors.New("engine: no rows in result set")
)
