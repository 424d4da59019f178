package handler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/mirrorlog/core"
)

// ZapPlatform uses a *zap.Logger as the platform log service. The record
// body becomes the zap message and the tag a "tag" field.
type ZapPlatform struct {
	logger *zap.Logger
}

// NewZapPlatform wraps l. A nil logger discards everything.
func NewZapPlatform(l *zap.Logger) *ZapPlatform {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapPlatform{logger: l}
}

// Write logs msg at the zap level matching prio. PriorityFatal maps to
// DPanicLevel so that a zap logger never exits or panics in production.
func (z *ZapPlatform) Write(prio core.Priority, tag, msg []byte) error {
	ce := z.logger.Check(zapLevel(prio), string(msg))
	if ce == nil {
		return nil
	}
	ce.Write(zap.ByteString("tag", tag))
	return nil
}

func zapLevel(prio core.Priority) zapcore.Level {
	switch {
	case prio >= core.PriorityFatal:
		return zapcore.DPanicLevel
	case prio >= core.PriorityError:
		return zapcore.ErrorLevel
	case prio >= core.PriorityWarn:
		return zapcore.WarnLevel
	case prio >= core.PriorityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
