package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Logger is the structured logger used across the service.
type Logger = log.Logger

const (
	DebugLevel = log.DebugLevel
	InfoLevel  = log.InfoLevel
	WarnLevel  = log.WarnLevel
	ErrorLevel = log.ErrorLevel
)

// New creates a logger writing to w. JSON output is meant for production.
func New(w io.Writer, level log.Level, json bool) *Logger {
	formatter := log.TextFormatter
	if json {
		formatter = log.JSONFormatter
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
}

// ParseLevel maps a config string to a level; unknown values mean info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// Global logger instance
var defaultLogger = New(os.Stdout, log.InfoLevel, false)

// Default returns the global logger.
func Default() *Logger { return defaultLogger }

// SetDefault replaces the global logger, e.g. after config is loaded.
func SetDefault(l *Logger) { defaultLogger = l }

// Package-level functions for easy access
func Debug(msg string, keyvals ...interface{}) { defaultLogger.Debug(msg, keyvals...) }
func Info(msg string, keyvals ...interface{})  { defaultLogger.Info(msg, keyvals...) }
func Warn(msg string, keyvals ...interface{})  { defaultLogger.Warn(msg, keyvals...) }
func Error(msg string, keyvals ...interface{}) { defaultLogger.Error(msg, keyvals...) }
func Fatal(msg string, keyvals ...interface{}) { defaultLogger.Fatal(msg, keyvals...) }
