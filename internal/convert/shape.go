// Package convert maps a materialized ResultSet into caller-defined record
// types through a runtime-built shape descriptor.
package convert

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind tags a field's conversion rule.
type Kind uint8

const (
	KindInvalid Kind = iota // no conversion rule for the declared type
	KindString
	KindBytes
	KindInt
	KindUint
	KindFloat
	KindBool
)

// Field describes one target record field, in column order.
type Field struct {
	// Name is the db tag when present, the lower-cased Go field name
	// otherwise. Used in error context only; matching is positional.
	Name string

	Kind Kind

	// Bits is the numeric width passed to strconv, 0 for the platform
	// int/uint width.
	Bits int

	// Optional marks pointer fields: an empty cell leaves the pointer
	// nil, a non-empty cell converts under the element's rule.
	Optional bool

	// Index is the struct field index in the record type.
	Index int

	// Type is the declared Go field type, reported by UnsupportedType
	// errors.
	Type reflect.Type
}

// Shape is the ordered field descriptor of one record type. Built once per
// type and reused for every conversion; it is never mutated afterwards.
type Shape struct {
	Type   reflect.Type
	Fields []Field
}

// ShapeOf builds the Shape for record type rt, which must be a struct.
// Unexported fields and fields tagged `db:"-"` are skipped; every other
// field claims the next result column in declaration order. Fields whose
// type has no conversion rule are kept with KindInvalid so the error
// surfaces on first conversion, naming the type.
func ShapeOf(rt reflect.Type) (*Shape, error) {
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("convert: record type %s is not a struct", rt)
	}

	sh := &Shape{Type: rt}
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if sf.PkgPath != "" { // unexported
			continue
		}
		tag := sf.Tag.Get("db")
		if tag == "-" {
			continue
		}
		name := tag
		if c := strings.IndexByte(name, ','); c >= 0 {
			name = name[:c]
		}
		if name == "" {
			name = strings.ToLower(sf.Name)
		}

		ft := sf.Type
		optional := false
		if ft.Kind() == reflect.Pointer {
			optional = true
			ft = ft.Elem()
		}
		kind, bits := classify(ft)
		sh.Fields = append(sh.Fields, Field{
			Name:     name,
			Kind:     kind,
			Bits:     bits,
			Optional: optional,
			Index:    i,
			Type:     sf.Type,
		})
	}
	if len(sh.Fields) == 0 {
		return nil, fmt.Errorf("convert: record type %s has no convertible fields", rt)
	}
	return sh, nil
}

func classify(ft reflect.Type) (Kind, int) {
	switch ft.Kind() {
	case reflect.String:
		return KindString, 0
	case reflect.Slice:
		if ft.Elem().Kind() == reflect.Uint8 {
			return KindBytes, 0
		}
	case reflect.Int:
		return KindInt, 0
	case reflect.Int8:
		return KindInt, 8
	case reflect.Int16:
		return KindInt, 16
	case reflect.Int32:
		return KindInt, 32
	case reflect.Int64:
		return KindInt, 64
	case reflect.Uint:
		return KindUint, 0
	case reflect.Uint8:
		return KindUint, 8
	case reflect.Uint16:
		return KindUint, 16
	case reflect.Uint32:
		return KindUint, 32
	case reflect.Uint64:
		return KindUint, 64
	case reflect.Float32:
		return KindFloat, 32
	case reflect.Float64:
		return KindFloat, 64
	case reflect.Bool:
		return KindBool, 0
	}
	return KindInvalid, 0
}
