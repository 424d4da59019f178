// Package handler provides the sinks a record is written to.
//
// Platform is the host log service: a severity-leveled, tag-keyed sink that
// is safe for concurrent use. Built-in platforms:
//
//   - LogcatPlatform writes to Android's liblog (android builds with cgo).
//   - WriterPlatform writes logcat "brief" lines ("D/tag: msg") to any
//     io.Writer, os.Stderr by default. It is the default off Android.
//   - SyslogPlatform writes to the local syslog daemon.
//   - ZapPlatform hands records to a *zap.Logger.
//   - MultiPlatform fans a record out to several platforms.
//
// The tag and message slices passed to Platform.Write are each followed by a
// NUL byte in memory, so C-backed platforms can use them without copying.
// Implementations must not retain either slice.
//
// The mirrored file lives in the filehandler subpackage. Stats counts what
// happened on both paths and can be exported to Prometheus with
// NewCollector.
package handler
