package handler

import (
	"io"
	"os"
	"sync"

	"github.com/philipp01105/mirrorlog/core"
)

// WriterPlatform writes records in logcat brief format, one per line:
//
//	D/tag: message
type WriterPlatform struct {
	mu  sync.Mutex
	w   io.Writer
	buf []byte
}

// NewWriterPlatform creates a platform writing to w (default: os.Stderr).
func NewWriterPlatform(w io.Writer) *WriterPlatform {
	if w == nil {
		w = os.Stderr
	}
	return &WriterPlatform{w: w, buf: make([]byte, 0, 256)}
}

// Write formats and writes a single line under the platform's lock.
func (p *WriterPlatform) Write(prio core.Priority, tag, msg []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	b := p.buf[:0]
	b = append(b, prio.Char(), '/')
	b = append(b, tag...)
	b = append(b, ':', ' ')
	b = append(b, msg...)
	b = append(b, '\n')
	p.buf = b

	_, err := p.w.Write(b)
	return err
}
