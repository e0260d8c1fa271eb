package errors

import (
	"sync/atomic"

	"codeberg.org/mutker/mappederr/internal/logger"
)

// Level is the severity of a construction log line.
type Level int8

const (
	LevelWarning Level = iota
	LevelError
)

func (l Level) String() string {
	if l == LevelError {
		return "error"
	}

	return "warning"
}

// Sink receives the log line emitted when a MappedError is constructed.
// Emit is fire-and-forget; a panicking sink does not abort construction.
type Sink interface {
	Emit(level Level, text string)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(level Level, text string)

func (f SinkFunc) Emit(level Level, text string) {
	f(level, text)
}

// Discard drops every line.
var Discard Sink = SinkFunc(func(Level, string) {})

// defaultSink forwards to the process logger.
var defaultSink Sink = SinkFunc(func(level Level, text string) {
	if level == LevelError {
		logger.Error().Msg(text)
		return
	}
	logger.Warn().Msg(text)
})

type sinkHolder struct {
	sink Sink
}

var currentSink atomic.Pointer[sinkHolder]

// SetSink installs s as the package sink. A nil s restores the default
// zerolog-backed sink. Safe for concurrent use.
func SetSink(s Sink) {
	if s == nil {
		currentSink.Store(nil)
		return
	}
	currentSink.Store(&sinkHolder{sink: s})
}

// CurrentSink returns the installed sink.
func CurrentSink() Sink {
	if h := currentSink.Load(); h != nil {
		return h.sink
	}

	return defaultSink
}
