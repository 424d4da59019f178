package handler

import (
	"sync/atomic"

	"github.com/philipp01105/mirrorlog/core"
)

// Stats tracks what happened to records on both sinks
type Stats struct {
	// Records per level, counted once per write call
	RecordsVerbose uint64
	RecordsDebug   uint64
	RecordsInfo    uint64
	RecordsWarn    uint64
	RecordsError   uint64
	RecordsFatal   uint64
	// PlatformErrors counts failed platform writes
	PlatformErrors uint64
	// FileWritten counts records written and flushed to the mirrored file
	FileWritten uint64
	// FileErrors counts records whose file write or flush failed
	FileErrors uint64
	// ClockErrors counts failed wall-clock samples
	ClockErrors uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) recordCounter(level core.Level) *uint64 {
	switch level {
	case core.VerboseLevel:
		return &s.RecordsVerbose
	case core.DebugLevel:
		return &s.RecordsDebug
	case core.InfoLevel:
		return &s.RecordsInfo
	case core.WarnLevel:
		return &s.RecordsWarn
	case core.ErrorLevel:
		return &s.RecordsError
	case core.FatalLevel:
		return &s.RecordsFatal
	default:
		return nil
	}
}

// IncrementRecords atomically increments the record counter for a level
func (s *Stats) IncrementRecords(level core.Level) {
	if c := s.recordCounter(level); c != nil {
		atomic.AddUint64(c, 1)
	}
}

// IncrementPlatformErrors atomically increments the platform error counter
func (s *Stats) IncrementPlatformErrors() {
	atomic.AddUint64(&s.PlatformErrors, 1)
}

// IncrementFileWritten atomically increments the file written counter
func (s *Stats) IncrementFileWritten() {
	atomic.AddUint64(&s.FileWritten, 1)
}

// IncrementFileErrors atomically increments the file error counter
func (s *Stats) IncrementFileErrors() {
	atomic.AddUint64(&s.FileErrors, 1)
}

// IncrementClockErrors atomically increments the clock error counter
func (s *Stats) IncrementClockErrors() {
	atomic.AddUint64(&s.ClockErrors, 1)
}

// GetRecords returns the record count for a level
func (s *Stats) GetRecords(level core.Level) uint64 {
	if c := s.recordCounter(level); c != nil {
		return atomic.LoadUint64(c)
	}
	return 0
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Records        map[core.Level]uint64
	PlatformErrors uint64
	FileWritten    uint64
	FileErrors     uint64
	ClockErrors    uint64
}

// TotalRecords sums the per-level record counts
func (s Snapshot) TotalRecords() uint64 {
	var n uint64
	for _, v := range s.Records {
		n += v
	}
	return n
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	records := make(map[core.Level]uint64, 6)
	for l := core.VerboseLevel; l <= core.FatalLevel; l++ {
		records[l] = s.GetRecords(l)
	}
	return Snapshot{
		Records:        records,
		PlatformErrors: atomic.LoadUint64(&s.PlatformErrors),
		FileWritten:    atomic.LoadUint64(&s.FileWritten),
		FileErrors:     atomic.LoadUint64(&s.FileErrors),
		ClockErrors:    atomic.LoadUint64(&s.ClockErrors),
	}
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for l := core.VerboseLevel; l <= core.FatalLevel; l++ {
		atomic.StoreUint64(s.recordCounter(l), 0)
	}
	atomic.StoreUint64(&s.PlatformErrors, 0)
	atomic.StoreUint64(&s.FileWritten, 0)
	atomic.StoreUint64(&s.FileErrors, 0)
	atomic.StoreUint64(&s.ClockErrors, 0)
}
