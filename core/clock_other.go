//go:build !linux

package core

import "time"

func realtimeNow() (time.Time, error) {
	return time.Now(), nil
}
