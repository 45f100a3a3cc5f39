// Package rowmat executes parameterized queries against a pluggable
// prepared-statement engine and materializes the results into strongly
// typed records.
//
// The caller supplies the engine (see Engine); rowmat binds parameters,
// fetches rows through reusable transfer buffers into an owned ResultSet,
// and optionally converts the ResultSet into a slice of caller-defined
// structs. One DB is meant to be driven by one caller at a time for the
// duration of an execute/convert cycle; a finished ResultSet or record
// slice is plain data and can be shared freely.
package rowmat

import (
	"errors"
	"log/slog"
	"reflect"
	"sync"

	"github.com/tuannm99/rowmat/internal/convert"
	"github.com/tuannm99/rowmat/internal/engine"
	"github.com/tuannm99/rowmat/internal/fetch"
	"github.com/tuannm99/rowmat/internal/param"
)

// DB drives one engine connection.
type DB struct {
	eng     engine.Engine
	fetcher fetch.Fetcher
	log     *slog.Logger
}

// Option configures a DB at Open time.
type Option func(*DB)

// WithTransferBufferSize sets the per-field transfer buffer capacity.
func WithTransferBufferSize(n int) Option {
	return func(db *DB) { db.fetcher.BufSize = n }
}

// WithMaxValueSize caps the size of a single refetched value; 0 disables
// the cap.
func WithMaxValueSize(n int) Option {
	return func(db *DB) { db.fetcher.MaxValueSize = n }
}

// WithLogger replaces the default slog logger.
func WithLogger(l *slog.Logger) Option {
	return func(db *DB) {
		db.log = l
		db.fetcher.Log = l
	}
}

// WithConfig applies a loaded Config.
func WithConfig(cfg *Config) Option {
	return func(db *DB) {
		db.fetcher.BufSize = cfg.TransferBufferSize
		db.fetcher.MaxValueSize = cfg.MaxValueSize
	}
}

// Open wraps an engine connection. The connection's lifecycle (dialing,
// credentials, teardown) belongs to the caller.
func Open(eng engine.Engine, opts ...Option) *DB {
	db := &DB{eng: eng, log: slog.Default()}
	for _, o := range opts {
		o(db)
	}
	if db.fetcher.Log == nil {
		db.fetcher.Log = db.log
	}
	return db
}

// Query prepares and executes query with params bound in placeholder order
// and fetches every row. Mutation statements yield ErrNoResult; a query
// matching nothing yields an empty ResultSet. The caller owns the returned
// ResultSet and must Release it exactly once.
func (db *DB) Query(query string, params ...Parameter) (*ResultSet, error) {
	stmt, err := db.eng.Prepare(query)
	if err != nil {
		return nil, db.stageErr(engine.ErrPrepareStatement, err)
	}
	defer func() { _ = stmt.Close() }()

	rs, err := db.run(stmt, params)
	if err != nil {
		return nil, err
	}
	return rs, nil
}

// Exec prepares and executes a statement that is not expected to return
// rows and reports the affected row count. A statement that does produce a
// result set has its rows discarded.
func (db *DB) Exec(query string, params ...Parameter) (int64, error) {
	stmt, err := db.eng.Prepare(query)
	if err != nil {
		return 0, db.stageErr(engine.ErrPrepareStatement, err)
	}
	defer func() { _ = stmt.Close() }()

	rs, err := db.run(stmt, params)
	if err != nil && !errors.Is(err, engine.ErrNoResult) {
		return 0, err
	}
	if rs != nil {
		rs.Release()
	}
	return stmt.AffectedRows(), nil
}

func (db *DB) run(stmt engine.Statement, params []Parameter) (*ResultSet, error) {
	if err := stmt.BindParams(param.Bind(params)); err != nil {
		return nil, db.stageErr(engine.ErrBindParameters, err)
	}
	if err := stmt.Execute(); err != nil {
		return nil, db.stageErr(engine.ErrExecuteStatement, err)
	}
	return db.fetcher.Fetch(stmt)
}

// stageErr tags err with the failed stage and the engine's last-error text.
func (db *DB) stageErr(stage, err error) error {
	if msg := db.eng.LastError(); msg != "" && msg != err.Error() {
		return errors.Join(stage, err, errors.New(msg))
	}
	return errors.Join(stage, err)
}

// --- typed conversion ---

// shapes caches one Shape per record type.
var shapes sync.Map // reflect.Type -> *convert.Shape

func shapeOf(rt reflect.Type) (*convert.Shape, error) {
	if v, ok := shapes.Load(rt); ok {
		return v.(*convert.Shape), nil
	}
	sh, err := convert.ShapeOf(rt)
	if err != nil {
		return nil, err
	}
	shapes.Store(rt, sh)
	return sh, nil
}

// ShapeOf returns the cached record shape for T. Mostly useful for
// inspecting how a record type will be converted.
func ShapeOf[T any]() (*RecordShape, error) {
	return shapeOf(reflect.TypeOf((*T)(nil)).Elem())
}

// Convert maps every row of rs into a T. Columns are matched positionally
// against T's exported fields in declaration order (skip a field with
// `db:"-"`); pointer fields are optional and stay nil for empty cells.
// Conversion is all-or-nothing and the records are independent of rs: they
// remain valid after rs.Release.
func Convert[T any](rs *ResultSet) ([]T, error) {
	sh, err := ShapeOf[T]()
	if err != nil {
		return nil, err
	}
	return convert.Records[T](rs, sh)
}

// Get runs query and converts exactly one record. An empty result set
// yields ErrNoRows; extra rows beyond the first are ignored.
func Get[T any](db *DB, query string, params ...Parameter) (T, error) {
	var zero T
	rs, err := db.Query(query, params...)
	if err != nil {
		return zero, err
	}
	defer rs.Release()

	recs, err := Convert[T](rs)
	if err != nil {
		return zero, err
	}
	if len(recs) == 0 {
		return zero, engine.ErrNoRows
	}
	return recs[0], nil
}
