package core

import (
	"sync"
	"sync/atomic"
	"time"
	"unsafe"
)

// Clock samples the wall-clock time used to stamp mirrored records.
type Clock interface {
	Now() (time.Time, error)
}

// ClockFunc adapts an ordinary function to the Clock interface.
type ClockFunc func() (time.Time, error)

// Now calls f.
func (f ClockFunc) Now() (time.Time, error) {
	return f()
}

// SystemClock reads the realtime clock on every call and converts it to
// local time.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() (time.Time, error) {
	return realtimeNow()
}

var (
	coarseClockOnce sync.Once
	coarseNow       unsafe.Pointer // *time.Time
)

// StartCoarseClock starts the background goroutine that caches
// time.Now() every 500µs. It is safe to call multiple times; the
// goroutine is started exactly once and runs for the lifetime of the
// process.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		atomic.StorePointer(&coarseNow, unsafe.Pointer(&t))
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				atomic.StorePointer(&coarseNow, unsafe.Pointer(&t))
			}
		}()
	})
}

// CoarseNow returns the most recently cached time.Time value.
// StartCoarseClock must have been called before using CoarseNow.
func CoarseNow() time.Time {
	return *(*time.Time)(atomic.LoadPointer(&coarseNow))
}

// CoarseClock is a Clock backed by the cached coarse time. Milliseconds in
// records stamped with it may lag by up to one tick.
type CoarseClock struct{}

// Now returns the cached time, starting the refresher on first use.
func (CoarseClock) Now() (time.Time, error) {
	StartCoarseClock()
	return CoarseNow(), nil
}
