package handler

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/philipp01105/mirrorlog/core"
)

func TestWriterPlatform_BriefFormat(t *testing.T) {
	var buf bytes.Buffer
	p := NewWriterPlatform(&buf)

	if err := p.Write(core.PriorityDebug, []byte("myapp"), []byte("[Foo]hello")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := p.Write(core.DebugLevel.Priority(), []byte("myapp"), []byte("second")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := "D/myapp: [Foo]hello\nD/myapp: second\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriterPlatform_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	p := NewWriterPlatform(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				p.Write(core.PriorityInfo, []byte("t"), []byte("message"))
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 800 {
		t.Fatalf("got %d lines, want 800", len(lines))
	}
	for _, l := range lines {
		if l != "I/t: message" {
			t.Fatalf("torn line %q", l)
		}
	}
}

func TestMultiPlatform(t *testing.T) {
	var a, b bytes.Buffer
	errBoom := errors.New("boom")
	failing := PlatformFunc(func(core.Priority, []byte, []byte) error { return errBoom })

	m := NewMultiPlatform(NewWriterPlatform(&a), failing, NewWriterPlatform(&b))
	err := m.Write(core.PriorityWarn, []byte("tag"), []byte("msg"))

	if !errors.Is(err, errBoom) {
		t.Errorf("Write() error = %v, want %v", err, errBoom)
	}
	if len(multierr.Errors(err)) != 1 {
		t.Errorf("got %d errors, want 1", len(multierr.Errors(err)))
	}
	if a.String() != "W/tag: msg\n" || b.String() != "W/tag: msg\n" {
		t.Errorf("outputs = %q, %q", a.String(), b.String())
	}
}

func TestZapPlatform(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	p := NewZapPlatform(zap.New(obsCore))

	tests := []struct {
		prio core.Priority
		want zapcore.Level
	}{
		{core.PriorityVerbose, zapcore.DebugLevel},
		{core.PriorityDebug, zapcore.DebugLevel},
		{core.PriorityInfo, zapcore.InfoLevel},
		{core.PriorityWarn, zapcore.WarnLevel},
		{core.PriorityError, zapcore.ErrorLevel},
		{core.PriorityFatal, zapcore.DPanicLevel},
	}
	for _, tt := range tests {
		if err := p.Write(tt.prio, []byte("myapp"), []byte("[Foo]hello")); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}

	entries := logs.All()
	if len(entries) != len(tests) {
		t.Fatalf("got %d entries, want %d", len(entries), len(tests))
	}
	for i, e := range entries {
		if e.Level != tests[i].want {
			t.Errorf("entry %d level = %v, want %v", i, e.Level, tests[i].want)
		}
		if e.Message != "[Foo]hello" {
			t.Errorf("entry %d message = %q", i, e.Message)
		}
		if got := e.ContextMap()["tag"]; got != "myapp" {
			t.Errorf("entry %d tag = %v", i, got)
		}
	}
}

func TestNewPlatform(t *testing.T) {
	for _, name := range []string{"", "auto", "stderr", "none"} {
		p, err := NewPlatform(name, "myapp")
		if err != nil || p == nil {
			t.Errorf("NewPlatform(%q) = %v, %v", name, p, err)
		}
	}
	if _, err := NewPlatform("carrier-pigeon", "myapp"); err == nil {
		t.Error("NewPlatform() accepted unknown name")
	}
	if !LogcatAvailable {
		if _, err := NewPlatform("logcat", "myapp"); err == nil {
			t.Error("NewPlatform(logcat) succeeded without liblog")
		}
	}
}

func TestStats(t *testing.T) {
	s := NewStats()
	s.IncrementRecords(core.DebugLevel)
	s.IncrementRecords(core.DebugLevel)
	s.IncrementRecords(core.FatalLevel)
	s.IncrementRecords(core.Level(99))
	s.IncrementFileWritten()
	s.IncrementFileErrors()
	s.IncrementClockErrors()
	s.IncrementPlatformErrors()

	snap := s.GetSnapshot()
	if snap.Records[core.DebugLevel] != 2 || snap.Records[core.FatalLevel] != 1 {
		t.Errorf("Records = %v", snap.Records)
	}
	if snap.TotalRecords() != 3 {
		t.Errorf("TotalRecords() = %d, want 3", snap.TotalRecords())
	}
	if snap.FileWritten != 1 || snap.FileErrors != 1 || snap.ClockErrors != 1 || snap.PlatformErrors != 1 {
		t.Errorf("snapshot = %+v", snap)
	}

	s.Reset()
	if got := s.GetSnapshot().TotalRecords(); got != 0 {
		t.Errorf("TotalRecords() after Reset = %d", got)
	}
}

func TestCollector(t *testing.T) {
	s := NewStats()
	s.IncrementFileErrors()
	s.IncrementFileErrors()
	s.IncrementRecords(core.InfoLevel)

	c := NewCollector(s, "")
	if n := testutil.CollectAndCount(c); n != 10 {
		t.Errorf("CollectAndCount() = %d, want 10", n)
	}

	expected := `
# HELP mirrorlog_file_errors_total Total number of records whose file write or flush failed
# TYPE mirrorlog_file_errors_total counter
mirrorlog_file_errors_total 2
`
	if err := testutil.CollectAndCompare(c, strings.NewReader(expected), "mirrorlog_file_errors_total"); err != nil {
		t.Error(err)
	}
}
