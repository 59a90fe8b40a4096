// Copyright (c) 2025 Neomantra Corp

package eventlog

import (
	"fmt"
	"time"

	"github.com/relvacode/iso8601"
)

var processStart = time.Now()

// maxClockSkewNs bounds how far ts_receive_ns may trail ts_event_ns
// (spec §3 invariant 2).
const maxClockSkewNs = int64(60 * time.Second)

// minWallNs/maxWallNs bound every wall-clock timestamp column (spec §3
// invariant 1).
var (
	minWallNs = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC).UnixNano()
	maxWallNs = time.Date(2050, 1, 1, 0, 0, 0, 0, time.UTC).UnixNano()
)

// WithinWallBounds reports whether ns falls within the accepted
// [2020-01-01, 2050-01-01) wall-clock range every timestamp column
// must satisfy.
func WithinWallBounds(ns int64) bool {
	return ns >= minWallNs && ns < maxWallNs
}

// WithinClockSkew reports whether receiveNs trails eventNs by no more
// than the accepted bound of maxClockSkewNs.
func WithinClockSkew(eventNs, receiveNs int64) bool {
	return receiveNs >= eventNs-maxClockSkewNs
}

// MonotonicNowNanos returns nanoseconds elapsed since the process
// began observing events, read off the monotonic component Go's
// time.Time carries internally. It never goes backwards within a
// process and is only comparable within that process.
func MonotonicNowNanos() int64 {
	return time.Since(processStart).Nanoseconds()
}

// WallNowNanos returns the current wall-clock time as Unix nanoseconds.
func WallNowNanos() int64 {
	return time.Now().UnixNano()
}

// ParseTimestamp parses an ISO-8601 timestamp of arbitrary fractional
// precision, returning Unix nanoseconds.
func ParseTimestamp(s string) (int64, error) {
	t, err := iso8601.ParseString(s)
	if err != nil {
		return 0, newFormatError("invalid ISO-8601 timestamp: " + err.Error())
	}
	return t.UnixNano(), nil
}

// FormatTimestamp renders Unix nanoseconds as an ISO-8601 string of
// the form YYYY-MM-DDTHH:MM:SS.nnnnnnnnnZ, always in UTC with exactly
// nine fractional digits. time.RFC3339Nano trims trailing zeros, so
// the fractional part is rebuilt and zero-padded explicitly.
func FormatTimestamp(unixNanos int64) string {
	t := time.Unix(0, unixNanos).UTC()
	return fmt.Sprintf("%s.%09dZ", t.Format("2006-01-02T15:04:05"), t.Nanosecond())
}

// DateOf truncates Unix nanoseconds to the UTC calendar date it falls
// on, returned as a time.Time at midnight UTC.
func DateOf(unixNanos int64) time.Time {
	t := time.Unix(0, unixNanos).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
