package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/mirrorlog/config"
	"github.com/philipp01105/mirrorlog/core"
	"github.com/philipp01105/mirrorlog/handler"
)

// NewBuilderFromConfig translates cfg into a Builder. The diagnostics
// logger it builds is also used as the sink of the "zap" platform.
func NewBuilderFromConfig(cfg *config.Config) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	diag, err := cfg.Diagnostics.BuildDiagnostics()
	if err != nil {
		return nil, err
	}

	b := NewBuilder(cfg.ProcessTag).
		WithDiagnostics(diag).
		WithDurable(cfg.File.Durable)

	if strings.EqualFold(cfg.Platform, "zap") {
		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		zl, err := zc.Build()
		if err != nil {
			return nil, fmt.Errorf("failed to build zap platform: %w", err)
		}
		b.WithPlatform(handler.NewZapPlatform(zl.Named(cfg.ProcessTag)))
	} else {
		p, err := handler.NewPlatform(cfg.Platform, cfg.ProcessTag)
		if err != nil {
			return nil, err
		}
		b.WithPlatform(p)
	}

	if strings.EqualFold(cfg.Clock, "coarse") {
		core.StartCoarseClock()
		b.WithClock(core.CoarseClock{})
	}

	switch {
	case cfg.File.Path != "":
		b.WithFilePath(cfg.File.Path)
	case cfg.File.FD >= 0:
		b.WithFileDescriptor(cfg.File.FD)
	}
	return b, nil
}
