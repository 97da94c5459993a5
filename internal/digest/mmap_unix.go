//go:build unix

package digest

import (
	"fmt"
	"hash"
	"os"

	"golang.org/x/sys/unix"
)

func hashFile(f *os.File, size int64, h hash.Hash) error {
	if int64(int(size)) != size {
		return fmt.Errorf("file too large to map: %d bytes", size)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return fmt.Errorf("mmap: %w", err)
	}
	defer unix.Munmap(data)

	return writeGuarded(h, data)
}
