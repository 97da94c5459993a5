// Package digest computes whole-file content digests over memory-mapped files.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"os"
	"runtime/debug"

	"github.com/zeebo/xxh3"
)

// Algorithm names a supported digest function.
type Algorithm string

const (
	// SHA256 is FIPS 180-4 SHA-256; output matches any conforming implementation.
	SHA256 Algorithm = "sha256"
	// XXH3 is the 64-bit XXH3 hash, for fast change detection only.
	XXH3 Algorithm = "xxh3"
)

var (
	// ErrUnknownAlgorithm is returned for an Algorithm this package does not implement.
	ErrUnknownAlgorithm = errors.New("unknown digest algorithm")
	// ErrMappingFault is returned when the mapped file faulted while being hashed,
	// typically because it was truncated concurrently.
	ErrMappingFault = errors.New("fault reading mapped file")
)

// Algorithms lists the supported algorithms, default first.
func Algorithms() []Algorithm {
	return []Algorithm{SHA256, XXH3}
}

// File returns the hex SHA-256 digest of the file at path.
func File(path string) (string, error) {
	return FileWith(path, SHA256)
}

// FileWith returns the hex digest of the file at path using algo.
// Non-empty files are mapped read-only and hashed in a single pass.
func FileWith(path string, algo Algorithm) (string, error) {
	h, err := newHash(algo)
	if err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("digest %s: is a directory", path)
	}

	// Mapping a zero-length region is an error on most platforms.
	if info.Size() > 0 {
		if err := hashFile(f, info.Size(), h); err != nil {
			return "", fmt.Errorf("digest %s: %w", path, err)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func newHash(algo Algorithm) (hash.Hash, error) {
	switch algo {
	case SHA256, "":
		return sha256.New(), nil
	case XXH3:
		return xxh3.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
}

// writeGuarded hashes a mapped region, turning a SIGBUS/SIGSEGV on the
// mapping into ErrMappingFault instead of crashing the process.
func writeGuarded(h hash.Hash, data []byte) (err error) {
	old := debug.SetPanicOnFault(true)
	defer func() {
		debug.SetPanicOnFault(old)
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrMappingFault, r)
		}
	}()
	h.Write(data)
	return nil
}
