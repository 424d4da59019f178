package logger

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"
)

// SlogHandler lets code written against log/slog log through a Logger.
// Attributes are appended to the message as " key=value".
type SlogHandler struct {
	logger *Logger
	level  slog.Leveler
	prefix string // pre-rendered attributes from WithAttrs
	group  string
}

var _ slog.Handler = (*SlogHandler)(nil)

var slogBufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 256)
		return &b
	},
}

// NewSlogHandler returns a handler that logs through l. A nil level means
// slog.LevelInfo.
func NewSlogHandler(l *Logger, level slog.Leveler) *SlogHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &SlogHandler{logger: l, level: level}
}

// Enabled implements slog.Handler.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
func (h *SlogHandler) Handle(_ context.Context, r slog.Record) error {
	bp := slogBufPool.Get().(*[]byte)
	b := append((*bp)[:0], r.Message...)
	b = append(b, h.prefix...)
	r.Attrs(func(a slog.Attr) bool {
		b = appendAttr(b, h.group, a)
		return true
	})

	h.logger.LogBytes(fromSlogLevel(r.Level), b)

	*bp = b
	slogBufPool.Put(bp)
	return nil
}

// WithAttrs implements slog.Handler.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	b := []byte(h.prefix)
	for _, a := range attrs {
		b = appendAttr(b, h.group, a)
	}
	h2 := *h
	h2.prefix = string(b)
	return &h2
}

// WithGroup implements slog.Handler.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	if h2.group == "" {
		h2.group = name
	} else {
		h2.group = h2.group + "." + name
	}
	return &h2
}

func fromSlogLevel(l slog.Level) Level {
	switch {
	case l >= slog.LevelError+4:
		return FatalLevel
	case l >= slog.LevelError:
		return ErrorLevel
	case l >= slog.LevelWarn:
		return WarnLevel
	case l >= slog.LevelInfo:
		return InfoLevel
	case l >= slog.LevelDebug:
		return DebugLevel
	default:
		return VerboseLevel
	}
}

func appendAttr(b []byte, group string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return b
	}

	if a.Value.Kind() == slog.KindGroup {
		g := a.Key
		if group != "" && g != "" {
			g = group + "." + g
		} else if g == "" {
			g = group
		}
		for _, ga := range a.Value.Group() {
			b = appendAttr(b, g, ga)
		}
		return b
	}

	b = append(b, ' ')
	if group != "" {
		b = append(b, group...)
		b = append(b, '.')
	}
	b = append(b, a.Key...)
	b = append(b, '=')

	v := a.Value
	switch v.Kind() {
	case slog.KindString:
		b = append(b, v.String()...)
	case slog.KindInt64:
		b = strconv.AppendInt(b, v.Int64(), 10)
	case slog.KindUint64:
		b = strconv.AppendUint(b, v.Uint64(), 10)
	case slog.KindFloat64:
		b = strconv.AppendFloat(b, v.Float64(), 'g', -1, 64)
	case slog.KindBool:
		b = strconv.AppendBool(b, v.Bool())
	case slog.KindDuration:
		b = append(b, v.Duration().String()...)
	case slog.KindTime:
		b = v.Time().AppendFormat(b, time.RFC3339Nano)
	default:
		b = append(b, v.String()...)
	}
	return b
}
