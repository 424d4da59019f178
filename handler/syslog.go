//go:build !windows && !plan9

package handler

import (
	"fmt"
	"log/syslog"

	"github.com/philipp01105/mirrorlog/core"
)

// SyslogPlatform writes to the local syslog daemon. The syslog tag is fixed
// when the connection is made; the per-record tag is ignored.
type SyslogPlatform struct {
	w *syslog.Writer
}

// NewSyslogPlatform connects to the local syslog daemon using tag.
func NewSyslogPlatform(tag string) (*SyslogPlatform, error) {
	w, err := syslog.New(syslog.LOG_USER|syslog.LOG_DEBUG, tag)
	if err != nil {
		return nil, fmt.Errorf("connect to syslog: %w", err)
	}
	return &SyslogPlatform{w: w}, nil
}

// Write sends msg with the syslog severity matching prio.
func (s *SyslogPlatform) Write(prio core.Priority, _, msg []byte) error {
	m := string(msg)
	switch {
	case prio >= core.PriorityFatal:
		return s.w.Crit(m)
	case prio >= core.PriorityError:
		return s.w.Err(m)
	case prio >= core.PriorityWarn:
		return s.w.Warning(m)
	case prio >= core.PriorityInfo:
		return s.w.Info(m)
	default:
		return s.w.Debug(m)
	}
}

// Close closes the connection to the daemon.
func (s *SyslogPlatform) Close() error {
	return s.w.Close()
}
