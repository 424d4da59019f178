//go:build unix

package filehandler

import (
	"golang.org/x/sys/unix"
)

// checkWritable verifies that fd is open and its access mode allows writes.
func checkWritable(fd int) error {
	flags, err := unix.FcntlInt(uintptr(fd), unix.F_GETFL, 0)
	if err != nil {
		return err
	}
	switch flags & unix.O_ACCMODE {
	case unix.O_WRONLY, unix.O_RDWR:
		return nil
	default:
		return ErrNotWritable
	}
}
