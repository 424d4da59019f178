//go:build android && cgo

package handler

/*
#cgo LDFLAGS: -llog

#include <android/log.h>
*/
import "C"

import (
	"unsafe"

	"github.com/philipp01105/mirrorlog/core"
)

// LogcatAvailable reports whether this build can write to logcat.
const LogcatAvailable = true

// LogcatPlatform writes to Android's logcat through liblog.
type LogcatPlatform struct{}

// Write passes tag and msg to __android_log_write without copying. Both
// slices are NUL-terminated in memory by the caller.
func (LogcatPlatform) Write(prio core.Priority, tag, msg []byte) error {
	C.__android_log_write(
		C.int(prio),
		(*C.char)(unsafe.Pointer(unsafe.SliceData(tag))),
		(*C.char)(unsafe.Pointer(unsafe.SliceData(msg))),
	)
	return nil
}

// DefaultPlatform returns logcat.
func DefaultPlatform() Platform {
	return LogcatPlatform{}
}
