// Package bridge exposes loggers to a managed runtime that passes strings
// as UTF-16 and refers to objects by integer handles.
//
// A handle is a positive int64. Zero is never a valid handle and is what
// the managed side should store for "no logger".
package bridge

import (
	"errors"
	"sync"

	"github.com/philipp01105/mirrorlog/logger"
)

var (
	// ErrNotInitialized is returned before Init or Attach.
	ErrNotInitialized = errors.New("bridge: not initialized")
	// ErrUnknownHandle is returned for handles that were never issued or
	// were already released.
	ErrUnknownHandle = errors.New("bridge: unknown handle")
)

// Bridge maps handles to Loggers of one Process.
type Bridge struct {
	mu      sync.RWMutex
	proc    *logger.Process
	loggers map[int64]*logger.Logger
	next    int64
}

// Default is the bridge used by the exported entry points.
var Default = &Bridge{}

// Init creates the default process from a UTF-16 process tag and binds b
// to it. See logger.Init for the handling of fd. If the default process
// already exists, b is bound to it and logger.ErrAlreadyInitialized is
// returned.
func (b *Bridge) Init(processTag []uint16, fd int32) error {
	tag, err := DecodeString(processTag)
	if err != nil {
		return err
	}
	err = logger.Init(tag, int(fd))
	if p := logger.Default(); p != nil {
		b.Attach(p)
	}
	return err
}

// Attach binds b to p. Existing handles stay valid.
func (b *Bridge) Attach(p *logger.Process) {
	b.mu.Lock()
	b.proc = p
	b.mu.Unlock()
}

// NewLogger creates a Logger with classTag used verbatim and returns its
// handle.
func (b *Bridge) NewLogger(classTag []uint16) (int64, error) {
	tag, err := DecodeString(classTag)
	if err != nil {
		return 0, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.proc == nil {
		return 0, ErrNotInitialized
	}
	if b.loggers == nil {
		b.loggers = make(map[int64]*logger.Logger)
	}
	b.next++
	b.loggers[b.next] = b.proc.NewLogger(tag)
	return b.next, nil
}

// Log writes msg at level through the Logger behind handle. level uses the
// numbering of logger.Level; out-of-range values log at ErrorLevel.
func (b *Bridge) Log(handle int64, level int32, msg []uint16) error {
	b.mu.RLock()
	l, ok := b.loggers[handle]
	b.mu.RUnlock()
	if !ok {
		return ErrUnknownHandle
	}

	d := getDecoder()
	text, err := d.decode(msg)
	if err == nil {
		l.LogBytes(toLevel(level), text)
	}
	putDecoder(d)
	return err
}

// Release forgets handle. The Logger itself needs no cleanup.
func (b *Bridge) Release(handle int64) {
	b.mu.Lock()
	delete(b.loggers, handle)
	b.mu.Unlock()
}

// Len returns the number of live handles.
func (b *Bridge) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.loggers)
}

func toLevel(level int32) logger.Level {
	if level < int32(logger.VerboseLevel) || level > int32(logger.FatalLevel) {
		return logger.ErrorLevel
	}
	return logger.Level(level)
}
