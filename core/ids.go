package core

import "os"

// IDSource supplies the process and thread ids printed in records.
type IDSource interface {
	// PID returns the id of the current process.
	PID() int
	// TID returns the id of the OS thread the caller is running on.
	TID() int
}

// SystemIDs reads ids from the operating system.
type SystemIDs struct{}

// PID returns os.Getpid().
func (SystemIDs) PID() int {
	return os.Getpid()
}

// TID returns the kernel thread id of the calling thread, or 0 where the
// platform has no such notion.
func (SystemIDs) TID() int {
	return gettid()
}

// FixedIDs always reports the same ids.
type FixedIDs struct {
	Process int
	Thread  int
}

// PID returns f.Process.
func (f FixedIDs) PID() int { return f.Process }

// TID returns f.Thread.
func (f FixedIDs) TID() int { return f.Thread }
