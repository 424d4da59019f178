//go:build linux

package core

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

func realtimeNow() (time.Time, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_REALTIME, &ts); err != nil {
		return time.Time{}, fmt.Errorf("clock_gettime: %w", err)
	}
	sec, nsec := ts.Unix()
	return time.Unix(sec, nsec), nil
}
