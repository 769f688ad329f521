package mex

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the logger the trampoline writes dispatch and raise
// events to. Until SetLogger installs one it is a no-op, so extensions
// loaded without logging configured stay silent.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger installs the trampoline's logger. The binding is not
// synchronized with in-flight invocations; call it before the host
// dispatches.
func SetLogger(l *zap.Logger) {
	logger = l
}
