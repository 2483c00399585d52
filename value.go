package unisql

import (
	"bytes"
	"strconv"
	"time"
)

// BinaryPlaceholder is rendered in place of binary column contents.
const BinaryPlaceholder = "[binary]"

// Canonical text layouts for the temporal kinds.
const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04:05"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// Engine identifies which engine family produced a value or owns a
// connection.
type Engine int

const (
	// EngineMySQL is the MySQL/MariaDB engine family
	EngineMySQL Engine = iota
	// EnginePostgres is the PostgreSQL engine family
	EnginePostgres
	// EngineSQLite is the embedded file-based SQLite engine family
	EngineSQLite
)

// String returns the conventional identifier for the engine family.
func (e Engine) String() string {
	switch e {
	case EngineMySQL:
		return "mysql"
	case EnginePostgres:
		return "postgres"
	case EngineSQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

// Kind identifies the concrete scalar carried by a Value.
type Kind int

const (
	// KindNull is the explicit representation of SQL NULL. It is distinct
	// from every scalar kind; a NULL cell is never substituted with a zero
	// value.
	KindNull Kind = iota
	// KindBool is a boolean
	KindBool
	// KindInt32 is a signed 32-bit integer
	KindInt32
	// KindInt64 is a signed 64-bit integer
	KindInt64
	// KindFloat64 is a double-precision float
	KindFloat64
	// KindText is UTF-8 text
	KindText
	// KindBinary is a binary blob
	KindBinary
	// KindDate is a calendar date without a time component
	KindDate
	// KindTime is a time of day without a date component
	KindTime
	// KindDateTime is a date and time of day, naive (no timezone)
	KindDateTime
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindText:
		return "text"
	case KindBinary:
		return "binary"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindDateTime:
		return "datetime"
	default:
		return "unknown"
	}
}

// Value is a tagged scalar produced by row conversion. It carries exactly one
// concrete scalar together with the engine family and kind that produced it,
// and is immutable once constructed.
type Value struct {
	engine Engine
	kind   Kind
	num    int64
	real   float64
	flag   bool
	text   string
	blob   []byte
	when   time.Time
}

func nullValue(e Engine) Value {
	return Value{engine: e, kind: KindNull}
}

func boolValue(e Engine, v bool) Value {
	return Value{engine: e, kind: KindBool, flag: v}
}

func int32Value(e Engine, v int32) Value {
	return Value{engine: e, kind: KindInt32, num: int64(v)}
}

func int64Value(e Engine, v int64) Value {
	return Value{engine: e, kind: KindInt64, num: v}
}

func float64Value(e Engine, v float64) Value {
	return Value{engine: e, kind: KindFloat64, real: v}
}

func textValue(e Engine, v string) Value {
	return Value{engine: e, kind: KindText, text: v}
}

func binaryValue(e Engine, v []byte) Value {
	blob := make([]byte, len(v))
	copy(blob, v)
	return Value{engine: e, kind: KindBinary, blob: blob}
}

func dateValue(e Engine, v time.Time) Value {
	return Value{engine: e, kind: KindDate, when: v}
}

func timeOfDayValue(e Engine, v time.Time) Value {
	return Value{engine: e, kind: KindTime, when: v}
}

func dateTimeValue(e Engine, v time.Time) Value {
	return Value{engine: e, kind: KindDateTime, when: v}
}

// Engine returns the engine family that produced the value.
func (v Value) Engine() Engine {
	return v.engine
}

// Kind returns the concrete scalar kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is SQL NULL.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Bool returns the boolean scalar. The second return is false if the value
// is not of KindBool.
func (v Value) Bool() (bool, bool) {
	return v.flag, v.kind == KindBool
}

// Int32 returns the 32-bit integer scalar. The second return is false if the
// value is not of KindInt32.
func (v Value) Int32() (int32, bool) {
	return int32(v.num), v.kind == KindInt32
}

// Int64 returns the 64-bit integer scalar. The second return is false if the
// value is not of KindInt64.
func (v Value) Int64() (int64, bool) {
	return v.num, v.kind == KindInt64
}

// Float64 returns the double-precision scalar. The second return is false if
// the value is not of KindFloat64.
func (v Value) Float64() (float64, bool) {
	return v.real, v.kind == KindFloat64
}

// Text returns the text scalar. The second return is false if the value is
// not of KindText.
func (v Value) Text() (string, bool) {
	return v.text, v.kind == KindText
}

// Binary returns a copy of the binary scalar. The second return is false if
// the value is not of KindBinary.
func (v Value) Binary() ([]byte, bool) {
	if v.kind != KindBinary {
		return nil, false
	}
	blob := make([]byte, len(v.blob))
	copy(blob, v.blob)
	return blob, true
}

// Date returns the calendar-date scalar. The second return is false if the
// value is not of KindDate.
func (v Value) Date() (time.Time, bool) {
	return v.when, v.kind == KindDate
}

// Time returns the time-of-day scalar. The second return is false if the
// value is not of KindTime.
func (v Value) Time() (time.Time, bool) {
	return v.when, v.kind == KindTime
}

// DateTime returns the date-time scalar. The second return is false if the
// value is not of KindDateTime.
func (v Value) DateTime() (time.Time, bool) {
	return v.when, v.kind == KindDateTime
}

// String returns the canonical text form of the value: dates as 2006-01-02,
// times as 15:04:05, date-times as 2006-01-02 15:04:05, booleans as
// true/false, binary as the BinaryPlaceholder, NULL as "NULL".
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "NULL"
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindInt32, KindInt64:
		return strconv.FormatInt(v.num, 10)
	case KindFloat64:
		return strconv.FormatFloat(v.real, 'g', -1, 64)
	case KindText:
		return v.text
	case KindBinary:
		return BinaryPlaceholder
	case KindDate:
		return v.when.Format(dateLayout)
	case KindTime:
		return v.when.Format(timeLayout)
	case KindDateTime:
		return v.when.Format(dateTimeLayout)
	default:
		return ""
	}
}

// Equal reports whether two values carry the same scalar under the kind's
// natural equality: dates compare by calendar day, times by clock reading,
// date-times at second precision, binary by content. Values from different
// engine families are never equal.
func (v Value) Equal(o Value) bool {
	if v.engine != o.engine || v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.flag == o.flag
	case KindInt32, KindInt64:
		return v.num == o.num
	case KindFloat64:
		return v.real == o.real
	case KindText:
		return v.text == o.text
	case KindBinary:
		return bytes.Equal(v.blob, o.blob)
	case KindDate:
		return v.when.Format(dateLayout) == o.when.Format(dateLayout)
	case KindTime:
		return v.when.Format(timeLayout) == o.when.Format(timeLayout)
	case KindDateTime:
		return v.when.Format(dateTimeLayout) == o.when.Format(dateTimeLayout)
	default:
		return false
	}
}
