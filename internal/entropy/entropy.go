// Package entropy estimates the Shannon entropy of byte buffers.
package entropy

import "math"

// MaxBits is the upper bound of Shannon, reached by a uniform byte distribution.
const MaxBits = 8.0

// Shannon returns the entropy of buf in bits per byte, in [0, MaxBits].
// An empty buffer has entropy 0.
func Shannon(buf []byte) float64 {
	if len(buf) == 0 {
		return 0
	}

	var counts [256]uint64
	for _, b := range buf {
		counts[b]++
	}

	n := float64(len(buf))
	var h float64
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		h -= p * math.Log2(p)
	}
	// Rounding can push a near-uniform distribution a few ulps past 8.
	return min(h, MaxBits)
}

// Chunks returns the entropy of each consecutive size-byte window of buf.
// The final window may be shorter. Returns nil for an empty buffer or size <= 0.
func Chunks(buf []byte, size int) []float64 {
	if len(buf) == 0 || size <= 0 {
		return nil
	}
	// A window wider than buf is a single window; clamping also keeps
	// i+size from overflowing.
	size = min(size, len(buf))
	out := make([]float64, 0, (len(buf)+size-1)/size)
	for i := 0; i < len(buf); i += size {
		end := min(i+size, len(buf))
		out = append(out, Shannon(buf[i:end]))
	}
	return out
}

// MaxChunk returns the highest window entropy reported by Chunks, or 0.
func MaxChunk(buf []byte, size int) float64 {
	var best float64
	for _, h := range Chunks(buf, size) {
		best = max(best, h)
	}
	return best
}
