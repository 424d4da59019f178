package core

import "strings"

// Level is the severity of a record.
type Level int8

const (
	// VerboseLevel for very detailed tracing
	VerboseLevel Level = iota
	// DebugLevel for debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for failures the caller cannot recover from. It does not
	// terminate the process.
	FatalLevel
)

// Priority is the severity understood by the platform log service. Values
// match android/log.h.
type Priority int32

const (
	PriorityVerbose Priority = 2
	PriorityDebug   Priority = 3
	PriorityInfo    Priority = 4
	PriorityWarn    Priority = 5
	PriorityError   Priority = 6
	PriorityFatal   Priority = 7
)

type levelInfo struct {
	char     byte
	priority Priority
	name     string
}

var levels = [...]levelInfo{
	VerboseLevel: {'V', PriorityVerbose, "VERBOSE"},
	DebugLevel:   {'D', PriorityDebug, "DEBUG"},
	InfoLevel:    {'I', PriorityInfo, "INFO"},
	WarnLevel:    {'W', PriorityWarn, "WARN"},
	ErrorLevel:   {'E', PriorityError, "ERROR"},
	FatalLevel:   {'F', PriorityError, "FATAL"},
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= VerboseLevel && int(l) < len(levels)
}

// Char returns the character printed in the level column of a record.
func (l Level) Char() byte {
	if !l.Valid() {
		return '?'
	}
	return levels[l].char
}

// Priority returns the platform priority used for l.
func (l Level) Priority() Priority {
	if !l.Valid() {
		return PriorityInfo
	}
	return levels[l].priority
}

// String returns the string representation of the level
func (l Level) String() string {
	if !l.Valid() {
		return "UNKNOWN"
	}
	return levels[l].name
}

// ParseLevel converts a level name or its single-character form to a Level.
// Unknown input yields InfoLevel and false.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(s) {
	case "V", "VERBOSE":
		return VerboseLevel, true
	case "D", "DEBUG":
		return DebugLevel, true
	case "I", "INFO":
		return InfoLevel, true
	case "W", "WARN", "WARNING":
		return WarnLevel, true
	case "E", "ERROR":
		return ErrorLevel, true
	case "F", "FATAL":
		return FatalLevel, true
	default:
		return InfoLevel, false
	}
}

// Char returns the logcat brief-format character for p.
func (p Priority) Char() byte {
	switch p {
	case PriorityVerbose:
		return 'V'
	case PriorityDebug:
		return 'D'
	case PriorityInfo:
		return 'I'
	case PriorityWarn:
		return 'W'
	case PriorityError:
		return 'E'
	case PriorityFatal:
		return 'F'
	default:
		return '?'
	}
}
