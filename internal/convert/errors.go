package convert

import (
	"fmt"
	"reflect"
)

// FieldCountError reports a row whose cell count does not match the record
// shape's field count.
type FieldCountError struct {
	Row    int
	Cells  int
	Fields int
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("convert: row %d has %d cells, record shape has %d fields", e.Row, e.Cells, e.Fields)
}

// ParseError reports malformed numeric or boolean cell text.
type ParseError struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("convert: row %d field %q: cannot parse %q: %v", e.Row, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnsupportedTypeError reports a declared field type with no conversion
// rule.
type UnsupportedTypeError struct {
	Field string
	Type  reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("convert: field %q has unsupported type %s", e.Field, e.Type)
}
