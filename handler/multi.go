package handler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/mirrorlog/core"
)

// MultiPlatform sends every record to several platforms.
type MultiPlatform struct {
	platforms []Platform
}

// NewMultiPlatform creates a platform that fans out to platforms in order.
func NewMultiPlatform(platforms ...Platform) *MultiPlatform {
	return &MultiPlatform{platforms: platforms}
}

// Write writes to every child, even after one fails, and combines the errors.
func (m *MultiPlatform) Write(prio core.Priority, tag, msg []byte) error {
	var err error
	for _, p := range m.platforms {
		err = multierr.Append(err, p.Write(prio, tag, msg))
	}
	return err
}
