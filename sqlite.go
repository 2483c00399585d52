package unisql

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLite is the connection facade for the embedded file-based SQLite engine.
type SQLite struct {
	conn
}

// ConnectSQLite opens an SQLite database file. The URL must use the sqlite
// scheme; the remainder is the database path and driver parameters:
//
//	sqlite://test.db
//	sqlite:///var/data/test.db
//	sqlite::memory:
//
// A malformed or mismatched-scheme URL fails with a SchemeMismatch error
// before any file I/O; a driver failure (unreadable file, bad parameters)
// fails with a ConnectionError.
func ConnectSQLite(ctx context.Context, connectionURL string, options ...Option) (*SQLite, error) {
	u, err := url.Parse(connectionURL)
	if err != nil {
		return nil, NewErrorWithCause(ErrorTypeSchemeMismatch, "malformed connection URL", err)
	}
	if u.Scheme != "sqlite" {
		return nil, NewSchemeMismatchError(u.Scheme, "sqlite")
	}

	dsn := u.Opaque
	if dsn == "" {
		dsn = u.Host + u.Path
	}
	if u.RawQuery != "" {
		dsn += "?" + u.RawQuery
	}

	s := newSettings(options...)
	db, err := sqlx.ConnectContext(ctx, "sqlite3", dsn)
	if err != nil {
		return nil, NewConnectionError("failed to open sqlite database", err)
	}
	s.logger.DebugContext(ctx, "connected", "engine", "sqlite", "path", dsn)
	return &SQLite{conn: newConn(EngineSQLite, db, sqliteCell, s)}, nil
}

// sqliteCell maps one raw SQLite cell into a tagged Value by the declared
// column type. SQLite integers are 64-bit, so the INTEGER family maps to the
// 64-bit kind. Expression columns carry no declared type; their kind is
// inferred from the driver-native value instead.
func sqliteCell(meta columnMeta, raw any) (Value, error) {
	if raw == nil {
		return nullValue(EngineSQLite), nil
	}
	// SQLite reports the column type exactly as declared, so "varchar(16)"
	// and "VARCHAR" are the same type; normalize before matching.
	declared := meta.dbType
	if i := strings.IndexByte(declared, '('); i >= 0 {
		declared = declared[:i]
	}
	declared = strings.ToUpper(strings.TrimSpace(declared))
	switch declared {
	case "BOOLEAN", "BOOL":
		if v, ok := rawBool(raw); ok {
			return boolValue(EngineSQLite, v), nil
		}
	case "INTEGER", "INT", "BIGINT", "INT8", "TINYINT", "SMALLINT", "MEDIUMINT":
		if v, ok := rawInt64(raw); ok {
			return int64Value(EngineSQLite, v), nil
		}
	case "REAL", "FLOAT", "DOUBLE":
		if v, ok := rawFloat64(raw); ok {
			return float64Value(EngineSQLite, v), nil
		}
	case "TEXT", "VARCHAR", "CHAR", "NVARCHAR", "CLOB":
		if v, ok := rawText(raw); ok {
			return textValue(EngineSQLite, v), nil
		}
	case "BLOB":
		if v, ok := rawBytes(raw); ok {
			return binaryValue(EngineSQLite, v), nil
		}
	case "DATE":
		if v, ok := rawDate(raw); ok {
			return dateValue(EngineSQLite, v), nil
		}
	case "TIME":
		if v, ok := rawTimeOfDay(raw); ok {
			return timeOfDayValue(EngineSQLite, v), nil
		}
	case "DATETIME", "TIMESTAMP":
		if v, ok := rawDateTime(raw); ok {
			return dateTimeValue(EngineSQLite, v), nil
		}
	case "":
		return sqliteInferred(meta, raw)
	default:
		return Value{}, NewUnsupportedTypeError(meta.name, meta.index, meta.dbType)
	}
	return Value{}, decodeError(meta)
}

// sqliteInferred types an expression column from the driver-native value.
func sqliteInferred(meta columnMeta, raw any) (Value, error) {
	switch v := raw.(type) {
	case bool:
		return boolValue(EngineSQLite, v), nil
	case int64:
		return int64Value(EngineSQLite, v), nil
	case float64:
		return float64Value(EngineSQLite, v), nil
	case string:
		return textValue(EngineSQLite, v), nil
	case []byte:
		return binaryValue(EngineSQLite, v), nil
	case time.Time:
		return dateTimeValue(EngineSQLite, v), nil
	default:
		return Value{}, NewUnsupportedTypeError(meta.name, meta.index, meta.dbType)
	}
}
