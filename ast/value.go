// Package ast defines the xCDN in-memory tree: Document, Node, Value,
// and the ordered Object mapping, plus accessors for read-only
// navigation. Construction, mutation, and accessors never fail: every
// accessor documented as "total" returns a null-equivalent or zero
// value instead of an error, per spec §7.
package ast

// ValueKind identifies one of the 12 closed value kinds of xCDN.
type ValueKind int

const (
	// Null is the absence of a value.
	Null ValueKind = iota
	// Bool is a true/false value.
	Bool
	// Int is a signed 64-bit integer.
	Int
	// Float is an IEEE-754 binary64 floating point number.
	Float
	// Decimal preserves a d"..." literal's text verbatim.
	Decimal
	// String is decoded textual content.
	String
	// Bytes is a decoded byte vector from a b"..." literal.
	Bytes
	// DateTime preserves a t"..." literal's text verbatim.
	DateTime
	// Duration preserves an r"..." literal's text verbatim.
	Duration
	// UUID preserves a u"..." literal's text verbatim, case included.
	UUID
	// Array is an ordered sequence of Nodes.
	Array
	// Object is an ordered key->Node mapping.
	Object
)

// String returns the programmatic name of the value kind.
func (k ValueKind) String() string {
	switch k {
	case Null:
		return "Null"
	case Bool:
		return "Bool"
	case Int:
		return "Int"
	case Float:
		return "Float"
	case Decimal:
		return "Decimal"
	case String:
		return "String"
	case Bytes:
		return "Bytes"
	case DateTime:
		return "DateTime"
	case Duration:
		return "Duration"
	case UUID:
		return "UUID"
	case Array:
		return "Array"
	case Object:
		return "Object"
	default:
		return "(invalid)"
	}
}

// Value is a tagged union over the 12 value kinds. Exactly one payload
// field is meaningful for a given Kind; composite payloads (arrayV,
// objectV) own their children exclusively.
type Value struct {
	kind    ValueKind
	boolV   bool
	intV    int64
	floatV  float64
	// textV holds decoded String content, or the verbatim inner text of
	// a Decimal/DateTime/Duration/UUID typed literal.
	textV   string
	bytesV  []byte
	arrayV  []*Node
	objectV *ObjectValue
}

// Kind returns the value's kind.
func (v Value) Kind() ValueKind { return v.kind }

// NullValue constructs a Null value.
func NullValue() Value { return Value{kind: Null} }

// BoolValue constructs a Bool value.
func BoolValue(b bool) Value { return Value{kind: Bool, boolV: b} }

// IntValue constructs an Int value.
func IntValue(i int64) Value { return Value{kind: Int, intV: i} }

// FloatValue constructs a Float value.
func FloatValue(f float64) Value { return Value{kind: Float, floatV: f} }

// DecimalValue constructs a Decimal value, storing text verbatim with no validation.
func DecimalValue(text string) Value { return Value{kind: Decimal, textV: text} }

// StringValue constructs a String value from already-decoded text.
func StringValue(s string) Value { return Value{kind: String, textV: s} }

// BytesValue constructs a Bytes value. b is not copied.
func BytesValue(b []byte) Value { return Value{kind: Bytes, bytesV: b} }

// DateTimeValue constructs a DateTime value, storing text verbatim with no validation.
func DateTimeValue(text string) Value { return Value{kind: DateTime, textV: text} }

// DurationValue constructs a Duration value, storing text verbatim with no validation.
func DurationValue(text string) Value { return Value{kind: Duration, textV: text} }

// UUIDValue constructs a UUID value from already-validated, case-preserved text.
func UUIDValue(text string) Value { return Value{kind: UUID, textV: text} }

// ArrayValue constructs an Array value. A nil element is a no-op per the
// construction contract in spec §7: it is silently skipped rather than
// stored, so a partially-built tree can never contain a null child.
func ArrayValue(items ...*Node) Value {
	v := Value{kind: Array}
	for _, n := range items {
		if n != nil {
			v.arrayV = append(v.arrayV, n)
		}
	}
	return v
}

// ObjectValueOf constructs an Object value wrapping obj. A nil obj yields
// an empty, non-nil Object value.
func ObjectValueOf(obj *ObjectValue) Value {
	if obj == nil {
		obj = NewObject()
	}
	return Value{kind: Object, objectV: obj}
}

// --- total "as-kind" accessors: a type mismatch returns the zero value ---

// AsBool returns the Bool payload, or false if Kind() != Bool.
func (v Value) AsBool() bool {
	if v.kind != Bool {
		return false
	}
	return v.boolV
}

// AsInt returns the Int payload, or 0 if Kind() != Int.
func (v Value) AsInt() int64 {
	if v.kind != Int {
		return 0
	}
	return v.intV
}

// AsFloat returns the Float payload, or 0 if Kind() != Float.
func (v Value) AsFloat() float64 {
	if v.kind != Float {
		return 0
	}
	return v.floatV
}

// AsString returns decoded text for a String value, or "" for any other kind.
func (v Value) AsString() string {
	if v.kind != String {
		return ""
	}
	return v.textV
}

// AsText returns the verbatim inner text for Decimal, DateTime, Duration,
// or UUID kinds (and decoded text for String), or "" for any other kind.
func (v Value) AsText() string {
	switch v.kind {
	case String, Decimal, DateTime, Duration, UUID:
		return v.textV
	default:
		return ""
	}
}

// AsBytes returns the Bytes payload, or nil if Kind() != Bytes.
func (v Value) AsBytes() []byte {
	if v.kind != Bytes {
		return nil
	}
	return v.bytesV
}

// AsArray returns the Array payload, or nil if Kind() != Array.
func (v Value) AsArray() []*Node {
	if v.kind != Array {
		return nil
	}
	return v.arrayV
}

// AsObject returns the Object payload, or nil if Kind() != Object.
func (v Value) AsObject() *ObjectValue {
	if v.kind != Object {
		return nil
	}
	return v.objectV
}

// IsNull reports whether this value is Null.
func (v Value) IsNull() bool { return v.kind == Null }

// Len returns the number of elements for Array and Object kinds, or 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.arrayV)
	case Object:
		return v.objectV.Len()
	default:
		return 0
	}
}

// AppendArrayItem appends a node to an Array value in place, for building
// up a document programmatically alongside ObjectValue.Set. A nil node is
// a silent no-op, and calling it on a non-Array value is also a no-op.
func (v *Value) AppendArrayItem(n *Node) {
	if n == nil || v.kind != Array {
		return
	}
	v.arrayV = append(v.arrayV, n)
}
