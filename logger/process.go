package logger

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/philipp01105/mirrorlog/core"
	"github.com/philipp01105/mirrorlog/formatter"
	"github.com/philipp01105/mirrorlog/handler"
	"github.com/philipp01105/mirrorlog/handler/filehandler"
)

// Process is the process-wide logging state. It is immutable after Build
// and safe for concurrent use.
type Process struct {
	tag       string
	tagZ      []byte // tag followed by NUL
	platform  handler.Platform
	file      *filehandler.FileHandler
	clock     core.Clock
	formatter *formatter.Formatter
	pool      *formatter.Pool
	stats     *handler.Stats
	diag      *zap.Logger
	registry  registry
}

// Builder provides a fluent API for building a Process
type Builder struct {
	processTag string
	fd         int
	path       string
	file       *filehandler.FileHandler
	fileCfg    filehandler.FileConfig
	platform   handler.Platform
	clock      core.Clock
	ids        core.IDSource
	stats      *handler.Stats
	diag       *zap.Logger
}

// NewBuilder creates a builder for a process tagged processTag. Without
// further options records go to the default platform only.
func NewBuilder(processTag string) *Builder {
	return &Builder{
		processTag: processTag,
		fd:         -1,
	}
}

// WithFileDescriptor mirrors records into the already open descriptor fd.
// A negative fd disables the mirrored file. The process takes ownership of
// the descriptor.
func (b *Builder) WithFileDescriptor(fd int) *Builder {
	b.fd = fd
	return b
}

// WithFilePath mirrors records into the file at path, appending to it.
func (b *Builder) WithFilePath(path string) *Builder {
	b.path = path
	return b
}

// WithFileHandler mirrors records into an existing handler.
func (b *Builder) WithFileHandler(h *filehandler.FileHandler) *Builder {
	b.file = h
	return b
}

// WithDurable fsyncs the mirrored file after every record.
func (b *Builder) WithDurable(durable bool) *Builder {
	b.fileCfg.Durable = durable
	return b
}

// WithPlatform sets the platform sink (default: handler.DefaultPlatform)
func (b *Builder) WithPlatform(p handler.Platform) *Builder {
	b.platform = p
	return b
}

// WithClock sets the clock used to stamp mirrored records (default: core.SystemClock)
func (b *Builder) WithClock(c core.Clock) *Builder {
	b.clock = c
	return b
}

// WithIDs sets the source of pid and tid (default: core.SystemIDs)
func (b *Builder) WithIDs(ids core.IDSource) *Builder {
	b.ids = ids
	return b
}

// WithStats sets the counters updated by every write
func (b *Builder) WithStats(s *handler.Stats) *Builder {
	b.stats = s
	return b
}

// WithDiagnostics sets the zap logger used for problems of the logging
// subsystem itself (default: no-op)
func (b *Builder) WithDiagnostics(l *zap.Logger) *Builder {
	b.diag = l
	return b
}

func (b *Builder) resolvedPlatform() handler.Platform {
	if b.platform == nil {
		b.platform = handler.DefaultPlatform()
	}
	return b.platform
}

// openFile returns the configured mirrored file, or nil when there is none.
func (b *Builder) openFile() (*filehandler.FileHandler, error) {
	switch {
	case b.file != nil:
		return b.file, nil
	case b.path != "":
		h, err := filehandler.Open(b.path, b.fileCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", b.path, err)
		}
		return h, nil
	case b.fd >= 0:
		h, err := filehandler.NewFromFD(b.fd, b.fileCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open file descriptor %d: %w", b.fd, err)
		}
		return h, nil
	default:
		return nil, nil
	}
}

// Build creates the Process. It fails only if the mirrored file cannot be
// opened.
func (b *Builder) Build() (*Process, error) {
	file, err := b.openFile()
	if err != nil {
		return nil, err
	}

	p := &Process{
		tag:       b.processTag,
		tagZ:      append([]byte(b.processTag), 0),
		platform:  b.resolvedPlatform(),
		file:      file,
		clock:     b.clock,
		formatter: formatter.New(b.processTag, b.ids),
		pool:      formatter.NewPool(),
		stats:     b.stats,
		diag:      b.diag,
	}
	if p.clock == nil {
		p.clock = core.SystemClock{}
	}
	if p.stats == nil {
		p.stats = handler.NewStats()
	}
	if p.diag == nil {
		p.diag = zap.NewNop()
	}
	p.diag = p.diag.With(zap.String("processTag", p.tag))
	return p, nil
}

// Tag returns the process tag.
func (p *Process) Tag() string {
	return p.tag
}

// Stats returns the counters updated by every write.
func (p *Process) Stats() *handler.Stats {
	return p.stats
}

// Mirrored reports whether records are also written to a file.
func (p *Process) Mirrored() bool {
	return p.file != nil
}

// Close closes the mirrored file. Loggers must not be used afterwards. A
// long-running process normally never calls Close.
func (p *Process) Close() error {
	if p.file == nil {
		return nil
	}
	return p.file.Close()
}

// platformTag returns the bare process tag, NUL-terminated in memory.
func (p *Process) platformTag() []byte {
	return p.tagZ[:len(p.tag)]
}

// reportFatal writes a diagnostic at fatal priority to the platform sink.
func (p *Process) reportFatal(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	b := append([]byte(msg), 0)
	p.platform.Write(core.PriorityFatal, p.platformTag(), b[:len(msg)])
}

// Diagnostics returns the diagnostics logger the builder was configured
// with, or a no-op logger.
func (b *Builder) Diagnostics() *zap.Logger {
	if b.diag == nil {
		return zap.NewNop()
	}
	return b.diag
}
