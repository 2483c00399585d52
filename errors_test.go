package unisql

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorTypes(t *testing.T) {
	tests := []struct {
		err   error
		check func(error) bool
		name  string
	}{
		{NewSchemeMismatchError("http", "mysql"), IsSchemeMismatchError, "scheme mismatch"},
		{NewConnectionError("connect failed", errors.New("refused")), IsConnectionError, "connection"},
		{NewQueryError("bad statement", errors.New("syntax error")), IsQueryError, "query"},
		{NewUnsupportedTypeError("total", 2, "DECIMAL"), IsUnsupportedTypeError, "unsupported type"},
		{NewColumnNotFoundError("total"), IsColumnNotFoundError, "column not found"},
		{NewEmptyResultError("total"), IsEmptyResultError, "empty result"},
		{NewAlreadyClosedError("execute"), IsAlreadyClosedError, "already closed"},
	}
	for _, tt := range tests {
		if !tt.check(tt.err) {
			t.Errorf("%s: check failed for %v", tt.name, tt.err)
		}
		for _, other := range tests {
			if other.name != tt.name && other.check(tt.err) {
				t.Errorf("%s: matched the %s check", tt.name, other.name)
			}
		}
	}
}

func TestErrorContext(t *testing.T) {
	err := NewUnsupportedTypeError("amount", 3, "NUMERIC")
	if err.Column != "amount" || err.TypeName != "NUMERIC" {
		t.Errorf("context fields not carried: %+v", err)
	}
	msg := err.Error()
	for _, want := range []string{"amount", "NUMERIC", "3"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewConnectionError("failed to connect to mysql", cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is must see through to the cause")
	}
	var typed *Error
	if !errors.As(fmt.Errorf("wrapped: %w", err), &typed) {
		t.Error("errors.As must recover the typed error through wrapping")
	}
	if IsConnectionError(nil) {
		t.Error("nil is not a connection error")
	}
}
