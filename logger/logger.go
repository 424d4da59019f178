package logger

import (
	"sync"
	"unsafe"

	"go.uber.org/zap"

	"github.com/philipp01105/mirrorlog/core"
	"github.com/philipp01105/mirrorlog/formatter"
)

// Logger writes records under one class tag. It is safe for concurrent use;
// writes to the mirrored file are serialized per Logger.
type Logger struct {
	proc     *Process
	classTag string
	mu       sync.Mutex
}

// Discard is a Logger that does nothing. It can stand in for a real Logger
// in builds where logging is compiled out.
var Discard = &Logger{}

// NewLogger creates a Logger whose messages are prefixed with classTag
// verbatim.
func (p *Process) NewLogger(classTag string) *Logger {
	return &Logger{proc: p, classTag: classTag}
}

// ClassTag returns the prefix written before every message.
func (l *Logger) ClassTag() string {
	return l.classTag
}

// Verbose logs msg at VerboseLevel
func (l *Logger) Verbose(msg string) {
	l.write(VerboseLevel, msg)
}

// Debug logs msg at DebugLevel
func (l *Logger) Debug(msg string) {
	l.write(DebugLevel, msg)
}

// Info logs msg at InfoLevel
func (l *Logger) Info(msg string) {
	l.write(InfoLevel, msg)
}

// Warn logs msg at WarnLevel
func (l *Logger) Warn(msg string) {
	l.write(WarnLevel, msg)
}

// Error logs msg at ErrorLevel
func (l *Logger) Error(msg string) {
	l.write(ErrorLevel, msg)
}

// Fatal logs msg at FatalLevel. It does not terminate the process.
func (l *Logger) Fatal(msg string) {
	l.write(FatalLevel, msg)
}

// ErrorErr logs msg followed by ": " and err at ErrorLevel. A nil err logs
// msg alone.
func (l *Logger) ErrorErr(msg string, err error) {
	if err == nil {
		l.write(ErrorLevel, msg)
		return
	}
	l.write(ErrorLevel, msg+": "+err.Error())
}

// Log logs msg at level. Invalid levels are logged as ErrorLevel.
func (l *Logger) Log(level Level, msg string) {
	if !level.Valid() {
		level = ErrorLevel
	}
	l.write(level, msg)
}

// LogBytes is like Log but takes the message as bytes. msg is not retained.
func (l *Logger) LogBytes(level Level, msg []byte) {
	l.Log(level, unsafe.String(unsafe.SliceData(msg), len(msg)))
}

func (l *Logger) write(level core.Level, msg string) {
	p := l.proc
	if p == nil {
		return
	}

	buf := p.pool.Get()
	rec := p.formatter.Format(buf, l.classTag, msg)
	p.stats.IncrementRecords(level)

	if err := p.platform.Write(level.Priority(), p.platformTag(), rec.Body()); err != nil {
		p.stats.IncrementPlatformErrors()
		p.diag.Warn("platform write failed", zap.Stringer("level", level), zap.Error(err))
	}

	if p.file != nil {
		rec.SetLevel(level)
		l.writeFile(rec)
	}
	p.pool.Put(buf)
}

func (l *Logger) writeFile(rec formatter.Record) {
	p := l.proc

	l.mu.Lock()
	defer l.mu.Unlock()

	now, err := p.clock.Now()
	if err != nil {
		// keep whatever date the buffer already holds
		p.stats.IncrementClockErrors()
		p.reportFatal("[mirrorlog] failed to read the clock: %v", err)
		p.diag.Error("clock read failed", zap.Error(err))
	} else {
		rec.Stamp(now)
	}

	if err := p.file.WriteRecord(rec.Line()); err != nil {
		p.stats.IncrementFileErrors()
		p.diag.Warn("mirrored file write failed", zap.String("file", p.file.Name()), zap.Error(err))
		return
	}
	p.stats.IncrementFileWritten()
}
