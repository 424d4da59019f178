// Package core defines the small set of types shared by every layer of
// mirrorlog: the Level enumeration with its platform priority table, the
// Clock used to stamp mirrored records, and the IDSource that supplies the
// process and thread ids printed in the LogCat-style prefix.
//
// Level replaces per-severity code paths with a lookup table. Each level
// carries the single display character written into a record and the
// priority handed to the platform sink. FatalLevel is displayed as 'F' but
// reported to the platform with error priority; PriorityFatal is reserved
// for diagnostics about the logging subsystem itself.
//
// Clock returns an error so that a failing wall-clock read can be reported
// without aborting the write. SystemClock reads CLOCK_REALTIME directly;
// CoarseClock trades precision for a cached value refreshed every 500µs.
package core
