package unisql

import (
	"testing"
	"time"
)

func TestValueKindAccessors(t *testing.T) {
	day := time.Date(2023, 6, 11, 0, 0, 0, 0, time.UTC)

	v := int32Value(EngineMySQL, 42)
	if v.Kind() != KindInt32 || v.Engine() != EngineMySQL {
		t.Errorf("unexpected tag: kind=%v engine=%v", v.Kind(), v.Engine())
	}
	if n, ok := v.Int32(); !ok || n != 42 {
		t.Errorf("Int32() = %d, %v; want 42, true", n, ok)
	}
	if _, ok := v.Int64(); ok {
		t.Error("Int64() should not match an int32 value")
	}
	if _, ok := v.Text(); ok {
		t.Error("Text() should not match an int32 value")
	}

	d := dateValue(EngineSQLite, day)
	if got, ok := d.Date(); !ok || !got.Equal(day) {
		t.Errorf("Date() = %v, %v; want %v, true", got, ok, day)
	}

	b := binaryValue(EnginePostgres, []byte{1, 2, 3})
	blob, ok := b.Binary()
	if !ok || len(blob) != 3 {
		t.Fatalf("Binary() = %v, %v", blob, ok)
	}
	blob[0] = 99
	again, _ := b.Binary()
	if again[0] != 1 {
		t.Error("Binary() must return a copy; the value was mutated through it")
	}
}

func TestValueNull(t *testing.T) {
	v := nullValue(EnginePostgres)
	if !v.IsNull() {
		t.Error("IsNull() = false for a null value")
	}
	if v.String() != "NULL" {
		t.Errorf("String() = %q; want NULL", v.String())
	}
	if _, ok := v.Text(); ok {
		t.Error("a null value must not satisfy any scalar accessor")
	}
	if !v.Equal(nullValue(EnginePostgres)) {
		t.Error("two nulls from the same engine should be equal")
	}
}

func TestValueCanonicalString(t *testing.T) {
	when := time.Date(2023, 6, 11, 9, 5, 7, 0, time.UTC)
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"bool", boolValue(EngineMySQL, true), "true"},
		{"int32", int32Value(EngineMySQL, -7), "-7"},
		{"int64", int64Value(EngineSQLite, 1<<40), "1099511627776"},
		{"float", float64Value(EnginePostgres, 3.5), "3.5"},
		{"text", textValue(EngineSQLite, "test1"), "test1"},
		{"binary", binaryValue(EngineMySQL, []byte{0xde, 0xad}), BinaryPlaceholder},
		{"date", dateValue(EnginePostgres, when), "2023-06-11"},
		{"time", timeOfDayValue(EngineMySQL, when), "09:05:07"},
		{"datetime", dateTimeValue(EngineSQLite, when), "2023-06-11 09:05:07"},
	}
	for _, tt := range tests {
		if got := tt.value.String(); got != tt.want {
			t.Errorf("%s: String() = %q; want %q", tt.name, got, tt.want)
		}
	}
}

func TestValueEqual(t *testing.T) {
	day := time.Date(2023, 6, 11, 0, 0, 0, 0, time.UTC)
	drifted := time.Date(2023, 6, 11, 17, 30, 0, 0, time.UTC)

	if !dateValue(EngineMySQL, day).Equal(dateValue(EngineMySQL, drifted)) {
		t.Error("date equality must ignore time-of-day drift")
	}
	if dateValue(EngineMySQL, day).Equal(dateValue(EngineSQLite, day)) {
		t.Error("values from different engines must never be equal")
	}
	if int32Value(EngineMySQL, 1).Equal(int64Value(EngineMySQL, 1)) {
		t.Error("values of different kinds must never be equal")
	}
	if !binaryValue(EngineSQLite, []byte{1, 2}).Equal(binaryValue(EngineSQLite, []byte{1, 2})) {
		t.Error("binary equality must compare content")
	}

	sub := dateTimeValue(EnginePostgres, time.Date(2023, 6, 11, 9, 5, 7, 120, time.UTC))
	whole := dateTimeValue(EnginePostgres, time.Date(2023, 6, 11, 9, 5, 7, 0, time.UTC))
	if !sub.Equal(whole) {
		t.Error("date-time equality holds at second precision")
	}
}
