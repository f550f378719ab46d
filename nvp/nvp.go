// Package nvp parses the name=value pair line format emitted by GC tracers.
//
// Each input line is a sequence of whitespace-separated name=value tokens,
// for example:
//
//	pause=12.5 type=scavenge reason=allocation
//
// Parsing is lenient: tokens without a "=" separator or with an empty name
// are ignored, and when a name repeats on one line the last occurrence wins.
// Values are kept as raw text; interpreting them is the caller's concern.
package nvp

import "strings"

// Record maps field names to their raw textual values for one input line.
type Record map[string]string

// Split parses one line into a fresh Record.
func Split(line string) Record {
	rec := make(Record)
	SplitInto(line, rec)

	return rec
}

// SplitInto parses line into rec, clearing rec first. Reusing one Record
// across lines avoids a map allocation per line on large inputs.
func SplitInto(line string, rec Record) {
	clear(rec)

	for _, token := range strings.Fields(line) {
		name, value, ok := strings.Cut(token, "=")
		if !ok || name == "" {
			continue
		}
		rec[name] = value
	}
}
