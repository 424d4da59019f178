// Package filehandler provides the mirrored log file.
//
// A FileHandler wraps a process-lifetime file, opened either from a
// descriptor handed over by the host application or from a path. Every
// WriteRecord call writes one complete record and flushes it before
// returning, so a record is visible to readers of the file as soon as the
// log call finishes. Setting Durable additionally fsyncs each record.
//
// WriteRecord is safe for concurrent use; records from different goroutines
// never interleave.
package filehandler
