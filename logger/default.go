package logger

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/mirrorlog/core"
)

var (
	// ErrAlreadyInitialized is returned by Init when the default process
	// already exists.
	ErrAlreadyInitialized = errors.New("logger: already initialized")
	// ErrNotInitialized is returned by Lookup before Init.
	ErrNotInitialized = errors.New("logger: not initialized")
)

var (
	defaultProcess atomic.Pointer[Process]
	initMu         sync.Mutex

	// replaced in tests
	osExit = os.Exit
)

// Init creates the default process. Records are mirrored into fd when it
// is not negative; the process takes ownership of fd.
//
// If fd cannot be used for writing, Init reports the failure on the
// platform sink at fatal priority and terminates the process with status 1.
func Init(processTag string, fd int) error {
	return InitWith(NewBuilder(processTag).WithFileDescriptor(fd))
}

// InitWith creates the default process from b. See Init.
func InitWith(b *Builder) error {
	initMu.Lock()
	defer initMu.Unlock()

	if defaultProcess.Load() != nil {
		return ErrAlreadyInitialized
	}

	p, err := b.Build()
	if err != nil {
		msg := fmt.Sprintf("[mirrorlog] init: %v", err)
		z := append([]byte(b.processTag), 0)
		m := append([]byte(msg), 0)
		b.resolvedPlatform().Write(core.PriorityFatal, z[:len(b.processTag)], m[:len(msg)])
		osExit(1)
		return err
	}

	defaultProcess.Store(p)
	return nil
}

// Default returns the default process, or nil before Init.
func Default() *Process {
	return defaultProcess.Load()
}

// Lookup returns the named Logger of the default process.
func Lookup(name string) (*Logger, error) {
	p := defaultProcess.Load()
	if p == nil {
		return nil, ErrNotInitialized
	}
	return p.Logger(name), nil
}

// Get returns the named Logger of the default process. It panics before
// Init.
func Get(name string) *Logger {
	l, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return l
}

// New returns a fresh Logger of the default process with classTag used
// verbatim. It panics before Init.
func New(classTag string) *Logger {
	p := defaultProcess.Load()
	if p == nil {
		panic(ErrNotInitialized)
	}
	return p.NewLogger(classTag)
}
