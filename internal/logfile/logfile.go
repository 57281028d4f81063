// Package logfile appends operational failures to a log file.
//
// The file is only created once something is actually logged, so a
// clean run leaves no error.log behind.
package logfile

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultPath is the log file written next to the invocation directory.
const DefaultPath = "error.log"

// lazyFile is a WriteSyncer that opens its file in append mode on first
// write.
type lazyFile struct {
	path string

	mu sync.Mutex
	f  *os.File
}

func (l *lazyFile) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.f == nil {
		f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return 0, err
		}
		l.f = f
	}
	return l.f.Write(p)
}

func (l *lazyFile) Sync() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.f == nil {
		return nil
	}
	return l.f.Sync()
}

// Open returns a logger appending warnings and errors to the file at
// path. The close function flushes buffered entries.
func Open(path string) (*zap.Logger, func()) {
	enc := zapcore.NewConsoleEncoder(encoderConfig())
	core := zapcore.NewCore(enc, &lazyFile{path: path}, zapcore.WarnLevel)
	logger := zap.New(core)
	return logger, func() { _ = logger.Sync() }
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}
