package unisql

import (
	"context"
	"testing"
)

// stubConnection lets the sweep be tested against mixed engines without
// live servers.
type stubConnection struct {
	engine Engine
	alive  bool
	err    error
}

func (s *stubConnection) Engine() Engine { return s.engine }
func (s *stubConnection) CheckConnection(ctx context.Context) (bool, error) {
	return s.alive, s.err
}
func (s *stubConnection) Execute(ctx context.Context, query string) (*ResultSet, error) {
	return newResultSet(nil, nil), nil
}
func (s *stubConnection) ExecuteFetchOne(ctx context.Context, query string) (*ResultSet, error) {
	return newResultSet(nil, nil), nil
}
func (s *stubConnection) Exec(ctx context.Context, query string) (int64, error) {
	return 0, nil
}
func (s *stubConnection) Close() error { return nil }

func TestCheckConnections(t *testing.T) {
	ctx := context.Background()
	results := CheckConnections(ctx,
		&stubConnection{engine: EngineMySQL, alive: true},
		&stubConnection{engine: EnginePostgres, alive: false},
		&stubConnection{engine: EngineSQLite, alive: false, err: NewAlreadyClosedError("check connection")},
	)
	want := []bool{true, false, false}
	if len(results) != len(want) {
		t.Fatalf("len(results) = %d; want %d", len(results), len(want))
	}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("results[%d] = %v; want %v", i, results[i], want[i])
		}
	}
}

func TestCheckConnectionsMixedLive(t *testing.T) {
	ctx := context.Background()
	db := openTestSQLite(t)

	closed, err := ConnectSQLite(ctx, "sqlite::memory:")
	if err != nil {
		t.Fatal(err)
	}
	if err := closed.Close(); err != nil {
		t.Fatal(err)
	}

	results := CheckConnections(ctx, db, closed)
	if !results[0] || results[1] {
		t.Errorf("results = %v; want [true false]", results)
	}
}

func TestFacadesSatisfyConnection(t *testing.T) {
	// Compile-time checks that every facade exposes the polymorphic
	// capability set.
	var _ Connection = (*MySQL)(nil)
	var _ Connection = (*PostgreSQL)(nil)
	var _ Connection = (*SQLite)(nil)
}
