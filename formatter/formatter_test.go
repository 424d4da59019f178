package formatter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/mirrorlog/core"
)

var testIDs = core.FixedIDs{Process: 100, Thread: 200}

func testTime() time.Time {
	return time.Date(2024, time.January, 2, 3, 4, 5, 678*int(time.Millisecond), time.UTC)
}

func TestNewLayout_Offsets(t *testing.T) {
	l := NewLayout(5, 5, 5)
	want := Layout{
		ProcessTagStart: 33,
		ProcessTagEnd:   41,
		ClassTagStart:   43,
		MessageStart:    48,
		MessageEnd:      53,
		Size:            54,
	}
	if l != want {
		t.Errorf("NewLayout(5, 5, 5) = %+v, want %+v", l, want)
	}
}

func TestNewLayout_Monotonic(t *testing.T) {
	for pt := 0; pt <= 20; pt++ {
		for ct := 0; ct <= 12; ct++ {
			for msg := 0; msg <= 40; msg += 5 {
				l := NewLayout(pt, ct, msg)
				if l.ProcessTagStart != ThreadInfoSize {
					t.Fatalf("ProcessTagStart = %d", l.ProcessTagStart)
				}
				if l.ProcessTagEnd-l.ProcessTagStart < MinTagFieldSize {
					t.Fatalf("tag field %d shorter than %d", l.ProcessTagEnd-l.ProcessTagStart, MinTagFieldSize)
				}
				if !(l.ProcessTagStart < l.ProcessTagEnd &&
					l.ProcessTagEnd < l.ClassTagStart &&
					l.ClassTagStart <= l.MessageStart &&
					l.MessageStart <= l.MessageEnd &&
					l.MessageEnd < l.Size) {
					t.Fatalf("offsets not increasing for (%d, %d, %d): %+v", pt, ct, msg, l)
				}
				if l.Size != l.MessageStart+msg+1 {
					t.Fatalf("Size = %d, want %d", l.Size, l.MessageStart+msg+1)
				}
			}
		}
	}
}

func TestThreadInfoSize(t *testing.T) {
	if ThreadInfoSize != 33 {
		t.Errorf("ThreadInfoSize = %d, want 33", ThreadInfoSize)
	}
}

func TestFormat_EndToEnd(t *testing.T) {
	f := New("myapp", testIDs)
	buf := NewBuffer(0)

	rec := f.Format(buf, "[Foo]", "hello")
	if got := string(rec.Body()); got != "[Foo]hello" {
		t.Errorf("Body() = %q", got)
	}
	if got := string(rec.Tag()); got != "myapp   " {
		t.Errorf("Tag() = %q", got)
	}
	rec.SetLevel(core.DebugLevel)
	rec.Stamp(testTime())

	want := "01-02 03:04:05.678   100   200 D myapp   : [Foo]hello\n"
	if got := string(rec.Line()); got != want {
		t.Errorf("Line() =\n%q\nwant\n%q", got, want)
	}
}

func TestFormat_NulTerminators(t *testing.T) {
	f := New("tag", testIDs)
	buf := NewBuffer(0)
	rec := f.Format(buf, "[C] ", "msg")
	l := rec.Layout()

	if buf.b[l.ProcessTagEnd] != 0 {
		t.Errorf("byte after tag field = %q, want NUL", buf.b[l.ProcessTagEnd])
	}
	if buf.b[l.MessageEnd] != 0 {
		t.Errorf("byte after message = %q, want NUL", buf.b[l.MessageEnd])
	}
	if bytes.IndexByte(rec.Body(), 0) != -1 {
		t.Error("body contains NUL")
	}
}

func TestFormat_PaddingLaw(t *testing.T) {
	for _, tag := range []string{"a", "ab", "myapp", "1234567", "12345678", "123456789", "a-much-longer-tag"} {
		f := New(tag, testIDs)
		rec := f.Format(NewBuffer(0), "", "x")
		field := string(rec.Tag())
		if got := strings.TrimRight(field, " "); got != tag {
			t.Errorf("tag %q: trimmed field = %q", tag, got)
		}
		if len(tag) >= MinTagFieldSize && field != tag {
			t.Errorf("tag %q: field = %q, want no padding", tag, field)
		}
		if len(tag) < MinTagFieldSize && len(field) != MinTagFieldSize {
			t.Errorf("tag %q: field length = %d, want %d", tag, len(field), MinTagFieldSize)
		}
	}
}

func TestPutID_SpacePadding(t *testing.T) {
	tests := []struct {
		v    int
		want string
	}{
		{42, "   42"},
		{100, "  100"},
		{12345, "12345"},
		{123456, "23456"},
		{10, "   10"},
		{0, "     "},
	}
	for _, tt := range tests {
		dst := make([]byte, IDWidth)
		putID(dst, tt.v)
		if string(dst) != tt.want {
			t.Errorf("putID(%d) = %q, want %q", tt.v, dst, tt.want)
		}
	}
}

func TestPutDigits_ZeroPadding(t *testing.T) {
	dst := make([]byte, TimeFieldWidth)
	putDigits(dst, 3)
	if string(dst) != "03" {
		t.Errorf("putDigits(3) = %q, want \"03\"", dst)
	}
	ms := make([]byte, MillisWidth)
	putDigits(ms, 7)
	if string(ms) != "007" {
		t.Errorf("putDigits(7) = %q, want \"007\"", ms)
	}
}

func TestFormat_Idempotent(t *testing.T) {
	f := New("myapp", testIDs)
	buf := NewBuffer(0)

	rec := f.Format(buf, "[Foo]", "same message")
	rec.SetLevel(core.InfoLevel)
	rec.Stamp(testTime())
	first := string(rec.Line())

	rec = f.Format(buf, "[Foo]", "same message")
	rec.SetLevel(core.InfoLevel)
	rec.Stamp(testTime().Add(90 * time.Minute))
	second := string(rec.Line())

	if first[ThreadInfoSize-15:] != second[ThreadInfoSize-15:] {
		t.Errorf("records differ outside the timestamp:\n%q\n%q", first, second)
	}
	if first == second {
		t.Error("timestamp did not change")
	}
}

func TestFormat_ShorterMessageAfterLonger(t *testing.T) {
	f := New("myapp", testIDs)
	buf := NewBuffer(0)

	rec := f.Format(buf, "[Foo]", strings.Repeat("x", 300))
	rec.Line()
	rec = f.Format(buf, "[Foo]", "short")
	rec.SetLevel(core.WarnLevel)
	rec.Stamp(testTime())

	want := "01-02 03:04:05.678   100   200 W myapp   : [Foo]short\n"
	if got := string(rec.Line()); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestFormat_ClassTagSwitch(t *testing.T) {
	f := New("myapp", testIDs)
	buf := NewBuffer(0)

	f.Format(buf, "[A] ", "one")
	rec := f.Format(buf, "[Longer] ", "two")
	if got := string(rec.Body()); got != "[Longer] two" {
		t.Errorf("Body() = %q", got)
	}
	rec = f.Format(buf, "[A] ", "three")
	if got := string(rec.Body()); got != "[A] three" {
		t.Errorf("Body() = %q", got)
	}
}

type countingIDs struct {
	pids, tids int
	tid        int
}

func (c *countingIDs) PID() int { c.pids++; return 7 }
func (c *countingIDs) TID() int { c.tids++; return c.tid }

func TestFormat_TemplateWrittenOnce(t *testing.T) {
	ids := &countingIDs{tid: 9}
	f := New("myapp", ids)
	buf := NewBuffer(0)

	f.Format(buf, "[Foo]", "a")
	f.Format(buf, "[Foo]", strings.Repeat("b", 1000))
	f.Format(buf, "[Foo]", strings.Repeat("c", 5000))

	if ids.pids != 1 {
		t.Errorf("PID sampled %d times, want 1", ids.pids)
	}
}

func TestFormat_ThreadChange(t *testing.T) {
	ids := &countingIDs{tid: 9}
	f := New("myapp", ids)
	buf := NewBuffer(0)

	f.Format(buf, "", "a")
	ids.tid = 31337
	rec := f.Format(buf, "", "a")
	rec.Stamp(testTime())
	line := string(rec.Line())
	if got := line[offTID : offTID+IDWidth]; got != "31337" {
		t.Errorf("tid field = %q, want 31337", got)
	}
	if got := line[offPID : offPID+IDWidth]; got != "    7" {
		t.Errorf("pid field = %q", got)
	}
}

func TestFormat_OtherFormatterRewritesTemplate(t *testing.T) {
	buf := NewBuffer(0)
	New("first-tag", testIDs).Format(buf, "", "x")
	rec := New("second", testIDs).Format(buf, "", "x")
	if got := string(rec.Tag()); got != "second  " {
		t.Errorf("Tag() = %q", got)
	}
}

func TestBuffer_GrowthMonotonic(t *testing.T) {
	f := New("myapp", testIDs)
	buf := NewBuffer(0)

	sizes := []int{10, 500, 20, 5000, 1, 5000, 200}
	prev := 0
	for _, n := range sizes {
		f.Format(buf, "[Foo]", strings.Repeat("m", n))
		if buf.Len() < prev {
			t.Fatalf("buffer shrank from %d to %d", prev, buf.Len())
		}
		prev = buf.Len()
	}
	// 10 (first), 500, 5000
	if buf.Grows() != 3 {
		t.Errorf("Grows() = %d, want 3", buf.Grows())
	}
}

func TestBuffer_SingleGrowthPerLargerMessage(t *testing.T) {
	f := New("myapp", testIDs)
	buf := NewBuffer(0)
	f.Format(buf, "[Foo]", "small")
	before := buf.Grows()

	f.Format(buf, "[Foo]", strings.Repeat("z", 4096))
	if got := buf.Grows() - before; got != 1 {
		t.Errorf("larger message caused %d growths, want 1", got)
	}
}

func TestBuffer_GrowKeepsBytes(t *testing.T) {
	buf := NewBuffer(4)
	copy(buf.b, "abcd")
	if !buf.Grow(100) {
		t.Fatal("Grow(100) did not grow")
	}
	if string(buf.b[:4]) != "abcd" {
		t.Errorf("prefix = %q after growth", buf.b[:4])
	}
	if buf.Len()%growQuantum != 0 || buf.Len() < 100 {
		t.Errorf("Len() = %d", buf.Len())
	}
	if buf.Grow(50) {
		t.Error("Grow(50) reallocated a larger buffer")
	}
}

func TestPool_DropsHugeBuffers(t *testing.T) {
	p := NewPool()
	b := p.Get()
	if b.Len() != defaultBufferSize {
		t.Errorf("new buffer Len() = %d, want %d", b.Len(), defaultBufferSize)
	}
	b.Grow(maxPooledSize + 1)
	p.Put(b) // must not panic, buffer is discarded
	p.Put(nil)
}

func BenchmarkFormat(b *testing.B) {
	f := New("myapp", testIDs)
	buf := NewBuffer(0)
	now := testTime()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rec := f.Format(buf, "[Bench] ", "a typical short debug message")
		rec.SetLevel(core.DebugLevel)
		rec.Stamp(now)
		rec.Line()
	}
}
