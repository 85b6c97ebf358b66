// Package loggertest provides a Logger for tests.
package loggertest

import (
	"testing"

	"dubiqo_quotes/internal/infrastructure/logger"

	"go.uber.org/zap/zaptest"
)

// New returns a Logger that writes through t.Log.
func New(t testing.TB) logger.Logger {
	return logger.NewZapAdapter(zaptest.NewLogger(t))
}
