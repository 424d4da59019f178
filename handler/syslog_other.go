//go:build windows || plan9

package handler

import "errors"

// SyslogPlatform is unavailable on this operating system.
type SyslogPlatform struct{ Platform }

// NewSyslogPlatform always fails on this operating system.
func NewSyslogPlatform(string) (*SyslogPlatform, error) {
	return nil, errors.New("syslog is not supported on this platform")
}
