//go:build !android || !cgo

package handler

import "os"

// LogcatAvailable reports whether this build can write to logcat.
const LogcatAvailable = false

// DefaultPlatform returns a WriterPlatform on os.Stderr.
func DefaultPlatform() Platform {
	return NewWriterPlatform(os.Stderr)
}
