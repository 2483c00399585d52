package unisql

import (
	"log/slog"
	"time"
)

const defaultPingTimeout = 5 * time.Second

// settings holds connection-level configuration applied by Options.
type settings struct {
	logger      *slog.Logger
	pingTimeout time.Duration
}

// Option represents a functional option for configuring a connection
type Option func(*settings)

// WithLogger sets the logger used for connection diagnostics. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithPingTimeout bounds CheckConnection probes when the caller's context
// carries no deadline. A zero duration disables the bound.
func WithPingTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.pingTimeout = timeout
	}
}

func newSettings(options ...Option) settings {
	s := settings{
		logger:      slog.Default(),
		pingTimeout: defaultPingTimeout,
	}
	for _, option := range options {
		option(&s)
	}
	return s
}
