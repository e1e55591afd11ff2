package obs

import (
	"log"
)

type Level int8

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the minimal logging surface the server needs. Implementations must
// be safe for concurrent use, as workers share a single instance.
type Logger interface {
	Logf(level Level, format string, args ...any)
}

// Nop discards all records.
type Nop struct{}

func (Nop) Logf(Level, string, ...any) {}

// Std adapts the standard library logger, dropping records below Min.
type Std struct {
	L   *log.Logger
	Min Level
}

func NewStd(min Level) Std {
	return Std{L: log.Default(), Min: min}
}

func (s Std) Logf(level Level, format string, args ...any) {
	if s.L == nil || level < s.Min {
		return
	}

	s.L.Printf("[%s] "+format, append([]any{level.String()}, args...)...)
}
