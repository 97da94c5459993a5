//go:build !unix

package digest

import (
	"hash"
	"io"
	"os"
)

// hashFile streams the file on hosts without unix.Mmap; the digest is identical.
func hashFile(f *os.File, _ int64, h hash.Hash) error {
	_, err := io.Copy(h, f)
	return err
}
