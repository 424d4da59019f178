package formatter

import (
	"time"

	"github.com/philipp01105/mirrorlog/core"
)

// Formatter writes records for one process tag.
type Formatter struct {
	processTag []byte
	ids        core.IDSource
}

// New creates a formatter for processTag. A nil ids falls back to
// core.SystemIDs.
func New(processTag string, ids core.IDSource) *Formatter {
	if ids == nil {
		ids = core.SystemIDs{}
	}
	return &Formatter{
		processTag: []byte(processTag),
		ids:        ids,
	}
}

// ProcessTag returns the tag this formatter writes.
func (f *Formatter) ProcessTag() string {
	return string(f.processTag)
}

// Format lays out classTag and msg in buf and returns the record. The
// level and timestamp columns are left untouched; see Record.SetLevel and
// Record.Stamp.
func (f *Formatter) Format(buf *Buffer, classTag, msg string) Record {
	l := NewLayout(len(f.processTag), len(classTag), len(msg))
	buf.Grow(l.Size)
	if buf.owner != f {
		f.writeTemplate(buf)
	}
	b := buf.b

	// goroutines migrate between threads; pid never changes
	if tid := f.ids.TID(); tid != buf.tid {
		putID(b[offTID:offTID+IDWidth], tid)
		buf.tid = tid
	}
	if !buf.hasClass || buf.classTag != classTag {
		copy(b[l.ClassTagStart:], classTag)
		buf.classTag = classTag
		buf.hasClass = true
	}
	copy(b[l.MessageStart:], msg)
	b[l.ProcessTagEnd] = 0
	b[l.MessageEnd] = 0

	return Record{b: b[:l.Size], layout: l}
}

// writeTemplate fills the fields that stay constant for this formatter.
func (f *Formatter) writeTemplate(buf *Buffer) {
	b := buf.b
	// a record stamped before any clock read shows a zero date
	copy(b, "00-00 00:00:00.000 ")
	b[24] = ' '
	b[30] = ' '
	b[32] = ' '

	tid := f.ids.TID()
	putID(b[offPID:offPID+IDWidth], f.ids.PID())
	putID(b[offTID:offTID+IDWidth], tid)

	start := ThreadInfoSize
	n := copy(b[start:], f.processTag)
	end := start + n
	for end < start+MinTagFieldSize {
		b[end] = ' '
		end++
	}
	b[end+1] = ' '

	buf.owner = f
	buf.tid = tid
	buf.hasClass = false
	buf.classTag = ""
}

// putDigits writes the last len(dst) decimal digits of v, zero padded.
func putDigits(dst []byte, v int) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = byte(v%10) + '0'
		v /= 10
	}
}

// putID writes v like putDigits but pads with spaces instead of zeros.
func putID(dst []byte, v int) {
	putDigits(dst, v)
	for i := 0; i < len(dst) && dst[i] == '0'; i++ {
		dst[i] = ' '
	}
}

// Record is a formatted record backed by a Buffer. It is valid until the
// buffer is formatted again or returned to its pool.
type Record struct {
	b      []byte
	layout Layout
}

// Layout returns the offsets used by r.
func (r Record) Layout() Layout {
	return r.layout
}

// Tag returns the padded process tag field. Until Line is called, it is
// followed by a NUL byte.
func (r Record) Tag() []byte {
	return r.b[r.layout.ProcessTagStart:r.layout.ProcessTagEnd]
}

// Body returns the class tag followed by the message. Until Line is called,
// it is followed by a NUL byte.
func (r Record) Body() []byte {
	return r.b[r.layout.ClassTagStart:r.layout.MessageEnd]
}

// SetLevel writes the level character.
func (r Record) SetLevel(level core.Level) {
	r.b[OffLevel] = level.Char()
}

// Stamp writes the date, time and milliseconds of t.
func (r Record) Stamp(t time.Time) {
	_, month, day := t.Date()
	hour, minute, sec := t.Clock()
	putDigits(r.b[offMonth:offMonth+TimeFieldWidth], int(month))
	putDigits(r.b[offDay:offDay+TimeFieldWidth], day)
	putDigits(r.b[offHour:offHour+TimeFieldWidth], hour)
	putDigits(r.b[offMinute:offMinute+TimeFieldWidth], minute)
	putDigits(r.b[offSecond:offSecond+TimeFieldWidth], sec)
	putDigits(r.b[offMillis:offMillis+MillisWidth], t.Nanosecond()/int(time.Millisecond))
}

// Line replaces the NUL terminators with ':' and '\n' and returns the whole
// record, newline included.
func (r Record) Line() []byte {
	r.b[r.layout.ProcessTagEnd] = ':'
	r.b[r.layout.MessageEnd] = '\n'
	return r.b
}
