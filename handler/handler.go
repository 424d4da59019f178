package handler

import (
	"fmt"
	"os"
	"strings"

	"github.com/philipp01105/mirrorlog/core"
)

// Platform is the host log service.
type Platform interface {
	// Write emits msg under tag with the given priority. tag and msg must
	// not be retained after Write returns.
	Write(prio core.Priority, tag, msg []byte) error
}

// PlatformFunc adapts an ordinary function to the Platform interface.
type PlatformFunc func(prio core.Priority, tag, msg []byte) error

// Write calls f.
func (f PlatformFunc) Write(prio core.Priority, tag, msg []byte) error {
	return f(prio, tag, msg)
}

// Discard is a Platform that drops everything.
var Discard Platform = PlatformFunc(func(core.Priority, []byte, []byte) error { return nil })

// Platform names accepted by NewPlatform.
const (
	PlatformAuto   = "auto"
	PlatformLogcat = "logcat"
	PlatformStderr = "stderr"
	PlatformSyslog = "syslog"
	PlatformNone   = "none"
)

// NewPlatform returns the platform registered under name. processTag is
// only used by platforms that fix their tag when they connect. The zap
// platform needs a logger and is built with NewZapPlatform instead.
func NewPlatform(name, processTag string) (Platform, error) {
	switch strings.ToLower(name) {
	case "", PlatformAuto:
		return DefaultPlatform(), nil
	case PlatformLogcat:
		if !LogcatAvailable {
			return nil, fmt.Errorf("platform %q is not available in this build", name)
		}
		return DefaultPlatform(), nil
	case PlatformStderr:
		return NewWriterPlatform(os.Stderr), nil
	case PlatformSyslog:
		p, err := NewSyslogPlatform(processTag)
		if err != nil {
			return nil, err
		}
		return p, nil
	case PlatformNone:
		return Discard, nil
	default:
		return nil, fmt.Errorf("unknown platform %q", name)
	}
}
