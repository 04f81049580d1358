package logging

import (
	"sync/atomic"

	"github.com/pkg/errors"
)

// Level represents a logging verbosity level.
type Level int32

const (
	// LevelInfo is the default logging level.
	LevelInfo Level = iota
	// LevelDebug enables debug output in addition to normal output.
	LevelDebug
)

// currentLevel is the active logging level. It is accessed atomically so that
// loggers can be used from multiple Goroutines.
var currentLevel int32

// SetLevel sets the active logging level.
func SetLevel(level Level) {
	atomic.StoreInt32(&currentLevel, int32(level))
}

// DebugEnabled indicates whether or not debug logging is active.
func DebugEnabled() bool {
	return Level(atomic.LoadInt32(&currentLevel)) >= LevelDebug
}

// ParseLevel parses a logging level name ("info" or "debug").
func ParseLevel(name string) (Level, error) {
	switch name {
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	default:
		return LevelInfo, errors.Errorf("unknown logging level: %s", name)
	}
}
