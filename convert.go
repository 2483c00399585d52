package unisql

import (
	"math"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
)

// columnMeta describes one output column of the active statement: its
// position, name, and the engine-reported type name.
type columnMeta struct {
	index  int
	name   string
	dbType string
}

// cellMapper converts one raw driver cell into a tagged Value. Each engine
// family supplies its own mapper; mappers are pure and never perform I/O.
type cellMapper func(meta columnMeta, raw any) (Value, error)

// convertRows drains the cursor and converts every row through the engine's
// cell mapper, preserving column order exactly as reported by the driver.
// Every converted row has the same length as the column list. Conversion of
// the whole statement aborts on the first unsupported column type; no
// partial result set is ever returned.
func convertRows(rows *sqlx.Rows, mapCell cellMapper) (*ResultSet, error) {
	columns, metas, err := readColumns(rows)
	if err != nil {
		return nil, err
	}

	converted := [][]Value{}
	for rows.Next() {
		row, err := convertNextRow(rows, metas, mapCell)
		if err != nil {
			return nil, err
		}
		converted = append(converted, row)
	}
	if err := rows.Err(); err != nil {
		return nil, NewQueryError("failed to drain rows", err)
	}
	return newResultSet(columns, converted), nil
}

// convertFirstRow converts only the cursor's first row and discards the
// remainder. A statement that produces no rows at all fails with an
// EmptyResult error, matching GetFirstOne's contract for empty sets.
func convertFirstRow(rows *sqlx.Rows, mapCell cellMapper) (*ResultSet, error) {
	columns, metas, err := readColumns(rows)
	if err != nil {
		return nil, err
	}

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, NewQueryError("failed to drain rows", err)
		}
		return nil, NewError(ErrorTypeEmptyResult, "statement produced no rows")
	}
	row, err := convertNextRow(rows, metas, mapCell)
	if err != nil {
		return nil, err
	}
	return newResultSet(columns, [][]Value{row}), nil
}

func readColumns(rows *sqlx.Rows) ([]string, []columnMeta, error) {
	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, nil, NewQueryError("failed to read column metadata", err)
	}
	columns := make([]string, len(colTypes))
	metas := make([]columnMeta, len(colTypes))
	for i, colType := range colTypes {
		columns[i] = colType.Name()
		metas[i] = columnMeta{index: i, name: colType.Name(), dbType: colType.DatabaseTypeName()}
	}
	return columns, metas, nil
}

func convertNextRow(rows *sqlx.Rows, metas []columnMeta, mapCell cellMapper) ([]Value, error) {
	raw, err := rows.SliceScan()
	if err != nil {
		return nil, NewQueryError("failed to scan row", err)
	}
	row := make([]Value, len(raw))
	for i, cell := range raw {
		value, err := mapCell(metas[i], cell)
		if err != nil {
			return nil, err
		}
		row[i] = value
	}
	return row, nil
}

// decodeError reports a cell whose payload could not be decoded into the
// kind its declared type maps to. It shares the unsupported-type category
// since the caller's remedy is the same: the column as reported cannot be
// represented.
func decodeError(meta columnMeta) *Error {
	return &Error{
		Type:     ErrorTypeUnsupportedType,
		Message:  "cannot decode " + strconv.Quote(meta.dbType) + " value for column " + strconv.Quote(meta.name) + " (index " + strconv.Itoa(meta.index) + ")",
		Column:   meta.name,
		TypeName: meta.dbType,
	}
}

// Raw driver cells arrive as the database/sql native set (int64, float64,
// bool, []byte, string, time.Time, nil) regardless of engine; the helpers
// below coerce that set into the scalar a kind arm needs.

func rawInt64(raw any) (int64, bool) {
	switch v := raw.(type) {
	case int64:
		return v, true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case []byte:
		n, err := strconv.ParseInt(string(v), 10, 64)
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

func rawInt32(raw any) (int32, bool) {
	n, ok := rawInt64(raw)
	if !ok || n < math.MinInt32 || n > math.MaxInt32 {
		return 0, false
	}
	return int32(n), true
}

func rawFloat64(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int64:
		return float64(v), true
	case []byte:
		f, err := strconv.ParseFloat(string(v), 64)
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func rawBool(raw any) (bool, bool) {
	switch v := raw.(type) {
	case bool:
		return v, true
	case int64:
		return v != 0, true
	case []byte:
		b, err := strconv.ParseBool(string(v))
		return b, err == nil
	case string:
		b, err := strconv.ParseBool(v)
		return b, err == nil
	default:
		return false, false
	}
}

func rawText(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	default:
		return "", false
	}
}

func rawBytes(raw any) ([]byte, bool) {
	switch v := raw.(type) {
	case []byte:
		return v, true
	case string:
		return []byte(v), true
	default:
		return nil, false
	}
}

// rawTemporal accepts either a driver-parsed time.Time or a textual payload
// in one of the given layouts. Drivers differ on whether temporal columns
// arrive pre-parsed.
func rawTemporal(raw any, layouts ...string) (time.Time, bool) {
	switch v := raw.(type) {
	case time.Time:
		return v, true
	case []byte:
		return parseTemporal(string(v), layouts)
	case string:
		return parseTemporal(v, layouts)
	default:
		return time.Time{}, false
	}
}

func parseTemporal(s string, layouts []string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func rawDate(raw any) (time.Time, bool) {
	return rawTemporal(raw, dateLayout, dateTimeLayout, time.RFC3339)
}

func rawTimeOfDay(raw any) (time.Time, bool) {
	return rawTemporal(raw, timeLayout, "15:04:05.999999999")
}

func rawDateTime(raw any) (time.Time, bool) {
	return rawTemporal(raw, dateTimeLayout, time.RFC3339Nano, time.RFC3339, dateLayout)
}
