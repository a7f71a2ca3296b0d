package database

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
)

// Kind identifies the storage class of a cell value.
type Kind int

const (
	KindNull Kind = iota
	KindInteger
	KindReal
	KindText
	KindBlob
)

// Value is a single table cell. Exactly the five SQLite storage classes are
// representable; anything else fails the scan with ErrUnsupportedType.
type Value struct {
	kind    Kind
	integer int64
	real    float64
	text    string
	blob    []byte
}

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Integer returns an integer value.
func Integer(v int64) Value { return Value{kind: KindInteger, integer: v} }

// Real returns a real value.
func Real(v float64) Value { return Value{kind: KindReal, real: v} }

// Text returns a text value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Blob returns a blob value.
func Blob(b []byte) Value { return Value{kind: KindBlob, blob: b} }

// Kind returns the storage class of the value.
func (v Value) Kind() Kind { return v.kind }

// String renders the value for display: integers and reals in decimal form,
// blobs as lowercase hex, null as the literal "null".
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindInteger:
		return strconv.FormatInt(v.integer, 10)
	case KindReal:
		return strconv.FormatFloat(v.real, 'g', -1, 64)
	case KindText:
		return v.text
	case KindBlob:
		return hex.EncodeToString(v.blob)
	}
	return ""
}

// valueOf converts a scanned driver value into a Value.
func valueOf(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null(), nil
	case int64:
		return Integer(val), nil
	case float64:
		return Real(val), nil
	case string:
		return Text(val), nil
	case []byte:
		// Copy; the driver may reuse the buffer between rows
		b := make([]byte, len(val))
		copy(b, val)
		return Blob(b), nil
	case time.Time:
		// DATETIME columns come back parsed; display as stored text
		return Text(val.Format(time.RFC3339)), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}
