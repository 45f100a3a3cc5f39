// Package param models one bound input value to a parameterized query and
// turns ordered parameter lists into engine bind descriptors.
package param

// Kind tags a Parameter variant. The set is closed: string, integer, float
// and null are the only bindable value shapes.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindFloat
)

// Parameter is one immutable bound value. Construct with String, Bytes,
// Int, Float or Null; the zero Parameter binds as null.
type Parameter struct {
	kind Kind
	data []byte
	num  int64
	real float64
}

// String binds a text value. The bytes are copied out of s by the string
// conversion, so the Parameter is self-contained.
func String(s string) Parameter { return Parameter{kind: KindString, data: []byte(s)} }

// Bytes binds a raw byte value without copying. The caller must keep b
// alive and unmodified until the execute call returns.
func Bytes(b []byte) Parameter { return Parameter{kind: KindString, data: b} }

// Int binds a 64-bit signed integer.
func Int(v int64) Parameter { return Parameter{kind: KindInt, num: v} }

// Float binds a 64-bit float.
func Float(v float64) Parameter { return Parameter{kind: KindFloat, real: v} }

// Null binds SQL NULL.
func Null() Parameter { return Parameter{kind: KindNull} }

func (p Parameter) Kind() Kind { return p.kind }
