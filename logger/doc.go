// Package logger is the public API of mirrorlog. Most users only need to
// import this package.
//
// A Process holds the process-wide state: the process tag, the platform
// sink, the optional mirrored file and the buffer pool. It is built once
// with a Builder and never changes afterwards. A Logger belongs to one
// Process and carries a class tag that prefixes every message:
//
//	if err := logger.Init("myapp", fd); err != nil {
//	    // Init was already called
//	}
//	log := logger.Get("Downloader") // class tag "[Downloader] "
//	log.Debug("started")
//
// Each call formats the record into a pooled buffer, writes it to the
// platform sink, and, when a file is configured, stamps it with the current
// time and appends it to the file under the Logger's lock. The file write
// is flushed before the call returns. Logging never returns errors; failures
// are counted in handler.Stats and reported on the diagnostics zap logger.
//
// Init terminates the process if the descriptor it is given cannot be used,
// because nothing can be logged reliably after that. Builder.Build returns
// the same failure as an error instead.
package logger
