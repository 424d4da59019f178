package logger_test

import (
	"errors"
	"log/slog"
	"os"

	"github.com/philipp01105/mirrorlog/handler"
	"github.com/philipp01105/mirrorlog/logger"
)

// Build a process that writes to stdout in logcat brief format.
func ExampleNewBuilder() {
	proc, err := logger.NewBuilder("myapp").
		WithPlatform(handler.NewWriterPlatform(os.Stdout)).
		Build()
	if err != nil {
		panic(err)
	}

	log := proc.Logger("Downloader")
	log.Info("started")
	log.ErrorErr("fetch failed", errors.New("timeout"))
	// Output:
	// I/myapp: [Downloader] started
	// E/myapp: [Downloader] fetch failed: timeout
}

// Route log/slog records through a Logger.
func ExampleNewSlogHandler() {
	proc, err := logger.NewBuilder("myapp").
		WithPlatform(handler.NewWriterPlatform(os.Stdout)).
		Build()
	if err != nil {
		panic(err)
	}

	l := slog.New(logger.NewSlogHandler(proc.Logger("api"), slog.LevelDebug))
	l.Warn("slow request", "path", "/users", "ms", 1200)
	// Output:
	// W/myapp: [api] slow request path=/users ms=1200
}
