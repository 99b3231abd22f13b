package internal

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

var (
	logMu    sync.Mutex
	logLevel = LogLevelInfo
	atomLvl  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger   = newLogger(atomLvl)
)

func newLogger(level zap.AtomicLevel) *zap.SugaredLogger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.EncodeCaller = nil
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core).Sugar()
}

// SetLogLevel sets the global log level
func SetLogLevel(level LogLevel) {
	logMu.Lock()
	defer logMu.Unlock()
	logLevel = level
	switch level {
	case LogLevelError:
		atomLvl.SetLevel(zapcore.ErrorLevel)
	case LogLevelWarn:
		atomLvl.SetLevel(zapcore.WarnLevel)
	case LogLevelDebug:
		atomLvl.SetLevel(zapcore.DebugLevel)
	default:
		atomLvl.SetLevel(zapcore.InfoLevel)
	}
}

// GetLogLevel returns the current log level
func GetLogLevel() LogLevel {
	logMu.Lock()
	defer logMu.Unlock()
	return logLevel
}

// SetVerbose enables verbose (debug) logging
func SetVerbose(verbose bool) {
	if verbose {
		SetLogLevel(LogLevelDebug)
	} else {
		SetLogLevel(LogLevelInfo)
	}
}

// SetLogger replaces the underlying zap logger. Used by tests to capture output.
func SetLogger(l *zap.Logger) {
	logMu.Lock()
	defer logMu.Unlock()
	logger = l.Sugar()
}

// ResetLogger restores the default stderr logger.
func ResetLogger() {
	SetLogger(newLogger(atomLvl).Desugar())
}

// SyncLogger flushes buffered log entries.
func SyncLogger() {
	_ = logger.Sync()
}

// LogError logs an error message
func LogError(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// LogWarn logs a warning message
func LogWarn(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// LogInfo logs an info message
func LogInfo(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// LogDebug logs a debug message
func LogDebug(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}
