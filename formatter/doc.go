// Package formatter lays out LogCat-compatible records in reusable byte
// buffers.
//
// A record has a fixed-width prefix followed by the process tag, the class
// tag and the message:
//
//	MM-DD HH:MM:SS.mmm PPPPP TTTTT L <tag....>: <classTag><message>\n
//
// Layout computes every offset from three lengths. Formatter writes the
// parts of a record that never change for a buffer (delimiters, pid, tid,
// padded process tag) once, and the per-call parts (class tag, message,
// level, timestamp) on every call. Buffers come from a Pool, are owned by
// one goroutine at a time, and only ever grow.
//
// Until Record.Line is called, the byte after the process tag field and the
// byte after the message are NUL, so the tag and the class tag plus message
// can be handed to C as two independent strings without copying.
package formatter
