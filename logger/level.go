package logger

import "github.com/philipp01105/mirrorlog/core"

// Level is re-exported from core for convenience
type Level = core.Level

const (
	VerboseLevel = core.VerboseLevel
	DebugLevel   = core.DebugLevel
	InfoLevel    = core.InfoLevel
	WarnLevel    = core.WarnLevel
	ErrorLevel   = core.ErrorLevel
	FatalLevel   = core.FatalLevel
)

// ParseLevel parses a level name such as "debug" or "W".
func ParseLevel(s string) (Level, bool) {
	return core.ParseLevel(s)
}
