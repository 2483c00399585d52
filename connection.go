package unisql

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
)

// Connection is the capability set shared by every engine facade, so generic
// tooling can hold mixed-engine handles (e.g. a health-check sweep over many
// connections).
//
// A Connection is exclusively owned by the caller holding it; concurrent use
// of one instance from multiple goroutines is out of contract. Statements
// issued sequentially on one handle execute in issuance order.
type Connection interface {
	// Engine returns the engine family of the connection.
	Engine() Engine

	// CheckConnection issues a trivial round-trip and reports liveness. A
	// transient probe failure is (false, nil), not an error; only a closed
	// connection fails, with an AlreadyClosed error.
	CheckConnection(ctx context.Context) (bool, error)

	// Execute sends the statement and fully materializes its output. DDL and
	// DML statements without tabular output yield an empty ResultSet.
	Execute(ctx context.Context, query string) (*ResultSet, error)

	// ExecuteFetchOne sends the statement and materializes only its first
	// row, discarding the rest. A statement that produces no rows fails
	// with an EmptyResult error.
	ExecuteFetchOne(ctx context.Context, query string) (*ResultSet, error)

	// Exec sends the statement and returns the driver-reported number of
	// rows affected, without materializing output.
	Exec(ctx context.Context, query string) (int64, error)

	// Close releases the driver connection. A second Close is an
	// AlreadyClosed error, not a no-op.
	Close() error
}

// conn carries the state and behavior shared by the engine facades: one live
// driver handle, the engine's cell mapper, and the open/closed lifecycle.
type conn struct {
	engine      Engine
	db          *sqlx.DB
	mapCell     cellMapper
	logger      *slog.Logger
	pingTimeout time.Duration
	closed      bool
}

func newConn(engine Engine, db *sqlx.DB, mapCell cellMapper, s settings) conn {
	// One logical connection per facade; the pool must not multiplex
	// statements across handles behind the caller's back.
	db.SetMaxOpenConns(1)
	return conn{
		engine:      engine,
		db:          db,
		mapCell:     mapCell,
		logger:      s.logger,
		pingTimeout: s.pingTimeout,
	}
}

// Engine returns the engine family of the connection.
func (c *conn) Engine() Engine {
	return c.engine
}

// CheckConnection pings the engine and reports liveness. See Connection.
func (c *conn) CheckConnection(ctx context.Context) (bool, error) {
	if c.closed {
		return false, NewAlreadyClosedError("check connection")
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline && c.pingTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.pingTimeout)
		defer cancel()
	}
	if err := c.db.PingContext(ctx); err != nil {
		c.logger.DebugContext(ctx, "ping failed", "engine", c.engine.String(), "error", err)
		return false, nil
	}
	return true, nil
}

// Execute runs the statement and drains all rows into a ResultSet. See
// Connection.
func (c *conn) Execute(ctx context.Context, query string) (*ResultSet, error) {
	if c.closed {
		return nil, NewAlreadyClosedError("execute")
	}
	rows, err := c.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, NewQueryError(fmt.Sprintf("failed to execute statement on %s", c.engine), err)
	}
	defer rows.Close()

	rs, err := convertRows(rows, c.mapCell)
	if err != nil {
		return nil, err
	}
	c.logger.DebugContext(ctx, "statement executed",
		"engine", c.engine.String(), "columns", len(rs.columns), "rows", rs.RowCount())
	return rs, nil
}

// ExecuteFetchOne runs the statement and converts at most its first row.
// See Connection.
func (c *conn) ExecuteFetchOne(ctx context.Context, query string) (*ResultSet, error) {
	if c.closed {
		return nil, NewAlreadyClosedError("execute")
	}
	rows, err := c.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, NewQueryError(fmt.Sprintf("failed to execute statement on %s", c.engine), err)
	}
	defer rows.Close()

	rs, err := convertFirstRow(rows, c.mapCell)
	if err != nil {
		return nil, err
	}
	c.logger.DebugContext(ctx, "statement executed",
		"engine", c.engine.String(), "columns", len(rs.columns), "rows", rs.RowCount())
	return rs, nil
}

// Exec runs the statement and returns the rows affected. See Connection.
func (c *conn) Exec(ctx context.Context, query string) (int64, error) {
	if c.closed {
		return 0, NewAlreadyClosedError("exec")
	}
	result, err := c.db.ExecContext(ctx, query)
	if err != nil {
		return 0, NewQueryError(fmt.Sprintf("failed to execute statement on %s", c.engine), err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, NewQueryError("failed to read rows affected", err)
	}
	return affected, nil
}

// Close releases the driver connection. See Connection.
func (c *conn) Close() error {
	if c.closed {
		return NewAlreadyClosedError("close")
	}
	c.closed = true
	if err := c.db.Close(); err != nil {
		return NewConnectionError(fmt.Sprintf("failed to close %s connection", c.engine), err)
	}
	c.logger.Debug("connection closed", "engine", c.engine.String())
	return nil
}

// CheckConnections probes every connection in order and reports each
// liveness result at the matching index. Dead or closed connections never
// fail the sweep; they simply report false.
func CheckConnections(ctx context.Context, conns ...Connection) []bool {
	results := make([]bool, len(conns))
	for i, connection := range conns {
		alive, err := connection.CheckConnection(ctx)
		results[i] = alive && err == nil
		slog.DebugContext(ctx, "connection health",
			"engine", connection.Engine().String(), "alive", results[i])
	}
	return results
}
