package filehandler

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/multierr"
)

// ErrNotWritable is returned when a descriptor cannot be used for writing.
var ErrNotWritable = errors.New("file descriptor is not writable")

// FileConfig holds configuration for a file handler
type FileConfig struct {
	// Durable fsyncs the file after every record (default: false)
	Durable bool
	// BufferSize is the size of the write buffer (default: 4096). Records
	// larger than the buffer bypass it.
	BufferSize int
}

func applyFileDefaults(cfg *FileConfig) {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 4096
	}
}

// FileHandler writes records to the mirrored file.
type FileHandler struct {
	mu        sync.Mutex
	file      *os.File
	bufWriter *bufio.Writer
	durable   bool
	closed    bool
}

func newFileHandler(file *os.File, cfg FileConfig) *FileHandler {
	applyFileDefaults(&cfg)
	return &FileHandler{
		file:      file,
		bufWriter: bufio.NewWriterSize(file, cfg.BufferSize),
		durable:   cfg.Durable,
	}
}

// NewFromFD takes ownership of an open descriptor. It fails with
// ErrNotWritable if fd is not open for writing.
func NewFromFD(fd int, cfg FileConfig) (*FileHandler, error) {
	if fd < 0 {
		return nil, fmt.Errorf("fd %d: %w", fd, ErrNotWritable)
	}
	if err := checkWritable(fd); err != nil {
		return nil, fmt.Errorf("fd %d: %w", fd, err)
	}
	file := os.NewFile(uintptr(fd), fmt.Sprintf("fd%d", fd))
	if file == nil {
		return nil, fmt.Errorf("fd %d: %w", fd, ErrNotWritable)
	}
	return newFileHandler(file, cfg), nil
}

// Open opens filename for appending, creating it and its directory when
// needed.
func Open(filename string, cfg FileConfig) (*FileHandler, error) {
	if filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	return newFileHandler(file, cfg), nil
}

// Name returns the name of the underlying file.
func (h *FileHandler) Name() string {
	return h.file.Name()
}

// WriteRecord writes p and flushes it. Errors from the write, the flush and
// the optional sync are combined.
func (h *FileHandler) WriteRecord(p []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return os.ErrClosed
	}
	_, err := h.bufWriter.Write(p)
	err = multierr.Append(err, h.bufWriter.Flush())
	if err != nil {
		// bufio errors are sticky
		h.bufWriter.Reset(h.file)
		return err
	}
	if h.durable {
		return h.file.Sync()
	}
	return nil
}

// Close flushes, syncs and closes the underlying file. The process-wide
// handler is normally never closed; Close exists for tests and tools.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true
	return multierr.Combine(h.bufWriter.Flush(), h.file.Sync(), h.file.Close())
}
