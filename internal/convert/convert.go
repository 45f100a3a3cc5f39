package convert

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/tuannm99/rowmat/internal/resultset"
)

// Records converts every row of rs into a T under shape's per-field rules.
// Conversion is all-or-nothing: the first failure aborts and nothing of the
// partial batch escapes. The returned records own their storage and outlive
// rs.Release.
//
// A null cell and an empty cell are identical inputs to every rule: the
// fetch stage cannot tell SQL NULL from a zero-length value for
// non-optional fields, so both produce the field's zero value.
func Records[T any](rs *resultset.ResultSet, shape *Shape) ([]T, error) {
	n := rs.RowCount()
	out := make([]T, 0, n)
	for r := 0; r < n; r++ {
		row := rs.Row(r)
		if len(row) != len(shape.Fields) {
			return nil, &FieldCountError{Row: r, Cells: len(row), Fields: len(shape.Fields)}
		}

		var rec T
		rv := reflect.ValueOf(&rec).Elem()
		for c := range shape.Fields {
			fd := &shape.Fields[c]
			if err := setField(rv.Field(fd.Index), fd, row[c], r); err != nil {
				return nil, err
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

// setField applies fd's rule to one cell. Empty (or null) cells leave the
// zero value in place: 0, 0.0, false, "" — or a nil pointer for optional
// fields.
func setField(fv reflect.Value, fd *Field, cell resultset.Cell, row int) error {
	data := cell.Bytes()
	if fd.Optional {
		if cell.IsNull() || len(data) == 0 {
			return nil // no value present
		}
		ev := reflect.New(fv.Type().Elem()).Elem()
		if err := setScalar(ev, fd, data, row); err != nil {
			return err
		}
		fv.Set(ev.Addr())
		return nil
	}
	if fd.Kind == KindInvalid {
		return &UnsupportedTypeError{Field: fd.Name, Type: fd.Type}
	}
	if cell.IsNull() || len(data) == 0 {
		return nil
	}
	return setScalar(fv, fd, data, row)
}

func setScalar(fv reflect.Value, fd *Field, data []byte, row int) error {
	switch fd.Kind {
	case KindString:
		// string(data) duplicates the bytes; the field is independent
		// of the cell's storage.
		fv.SetString(string(data))
	case KindBytes:
		fv.SetBytes(append([]byte(nil), data...))
	case KindInt:
		n, err := strconv.ParseInt(string(data), 10, fd.Bits)
		if err != nil {
			return &ParseError{Row: row, Field: fd.Name, Value: string(data), Err: err}
		}
		fv.SetInt(n)
	case KindUint:
		n, err := strconv.ParseUint(string(data), 10, fd.Bits)
		if err != nil {
			return &ParseError{Row: row, Field: fd.Name, Value: string(data), Err: err}
		}
		fv.SetUint(n)
	case KindFloat:
		n, err := strconv.ParseFloat(string(data), fd.Bits)
		if err != nil {
			return &ParseError{Row: row, Field: fd.Name, Value: string(data), Err: err}
		}
		fv.SetFloat(n)
	case KindBool:
		b, ok := parseBool(string(data))
		if !ok {
			return &ParseError{Row: row, Field: fd.Name, Value: string(data),
				Err: errors.New("not a recognized boolean token")}
		}
		fv.SetBool(b)
	default:
		return &UnsupportedTypeError{Field: fd.Name, Type: fd.Type}
	}
	return nil
}

// parseBool matches exactly the truthy and falsy token sets,
// case-insensitively.
func parseBool(s string) (value, ok bool) {
	switch strings.ToLower(s) {
	case "true", "1", "yes", "on":
		return true, true
	case "false", "0", "no", "off":
		return false, true
	}
	return false, false
}
