// Package classify decides whether a byte prefix looks like binary content.
package classify

import "bytes"

const (
	// SniffWindow is the maximum number of leading bytes IsBinary inspects.
	SniffWindow = 8192

	// PrefixLen is how many leading bytes the scanner reads from each file
	// before classifying it.
	PrefixLen = 1024
)

// IsBinary reports whether buf contains a NUL byte within its first
// SniffWindow bytes. An empty buffer is text.
//
// The heuristic is deliberately crude and must stay stable: callers compare
// classifications across runs.
func IsBinary(buf []byte) bool {
	if len(buf) > SniffWindow {
		buf = buf[:SniffWindow]
	}
	return bytes.IndexByte(buf, 0) >= 0
}
