// Package discover walks a directory tree in parallel and reports regular
// files with their size, modification time and a binary/text classification.
package discover

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/novalym/velm-native/internal/classify"
)

// FileRecord describes one regular file found by Scan.
type FileRecord struct {
	Path     string  `json:"path"` // relative to the scan root, '/'-separated
	Size     int64   `json:"size"`
	IsBinary bool    `json:"is_binary"`
	MTime    float64 `json:"mtime"` // seconds since the Unix epoch, 0 if unknown
}

// Options configures Scan.
type Options struct {
	IncludeHidden bool // visit entries whose name starts with '.'
	Workers       int  // directory walkers; <= 0 means runtime.NumCPU()
}

func (o *Options) workers() int {
	if o == nil || o.Workers <= 0 {
		return runtime.NumCPU()
	}
	return o.Workers
}

// Scan walks root and returns a record for every regular file that is not
// excluded by ignore rules or, unless opts.IncludeHidden, by being hidden.
//
// Only a failure to stat or list root itself is returned. Entries that vanish,
// cannot be read or otherwise fail are left out of the result. Output order is
// unspecified.
func Scan(root string, opts *Options) ([]FileRecord, error) {
	start := time.Now()

	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return scanFile(root, info)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	w := &walker{includeHidden: opts != nil && opts.IncludeHidden}
	w.g.SetLimit(opts.workers())

	w.visit(root, nil, entries, rootRules(root))
	_ = w.g.Wait()

	slog.Debug("scan.done", "root", root, "files", len(w.records), "elapsed", time.Since(start))
	return w.records, nil
}

// scanFile handles a root that is not a directory.
func scanFile(path string, info fs.FileInfo) ([]FileRecord, error) {
	if !info.Mode().IsRegular() {
		return nil, nil
	}
	rec, err := newRecord(path, filepath.Base(path), info)
	if err != nil {
		slog.Debug("scan.skip", "path", path, "err", err)
		return nil, nil
	}
	return []FileRecord{rec}, nil
}

type walker struct {
	includeHidden bool
	g             errgroup.Group

	mu      sync.Mutex
	records []FileRecord
}

// spawn runs fn on a pool worker, or inline when every worker is busy so that
// deep trees cannot exhaust the pool waiting on their own children.
func (w *walker) spawn(fn func()) {
	if w.g.TryGo(func() error { fn(); return nil }) {
		return
	}
	fn()
}

func (w *walker) walkDir(dir string, rel []string, parent *ignoreRules) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		slog.Debug("scan.skip", "path", strings.Join(rel, "/"), "err", err)
		if len(entries) == 0 {
			return
		}
	}
	w.visit(dir, rel, entries, parent)
}

func (w *walker) visit(dir string, rel []string, entries []os.DirEntry, parent *ignoreRules) {
	rules := parent.extend(dir, rel)

	var batch []FileRecord
	for _, e := range entries {
		name := e.Name()
		if !w.includeHidden && isHidden(name) {
			continue
		}
		childRel := append(slices.Clip(rel), name)
		abs := filepath.Join(dir, name)

		if e.IsDir() {
			if rules.ignored(childRel, true) {
				continue
			}
			w.spawn(func() { w.walkDir(abs, childRel, rules) })
			continue
		}
		if !e.Type().IsRegular() || rules.ignored(childRel, false) {
			continue
		}

		relPath := strings.Join(childRel, "/")
		info, err := e.Info()
		if err != nil {
			slog.Debug("scan.skip", "path", relPath, "err", err)
			continue
		}
		rec, err := newRecord(abs, relPath, info)
		if err != nil {
			slog.Debug("scan.skip", "path", relPath, "err", err)
			continue
		}
		batch = append(batch, rec)
	}

	if len(batch) == 0 {
		return
	}
	w.mu.Lock()
	w.records = append(w.records, batch...)
	w.mu.Unlock()
}

// newRecord builds a FileRecord from already-read metadata. The prefix read
// below is a second filesystem access and may observe a different file.
func newRecord(abs, relPath string, info fs.FileInfo) (FileRecord, error) {
	rec := FileRecord{
		Path:  relPath,
		Size:  info.Size(),
		MTime: epochSeconds(info.ModTime()),
	}
	if rec.Size == 0 {
		return rec, nil
	}
	bin, err := sniff(abs)
	if err != nil {
		return FileRecord{}, err
	}
	rec.IsBinary = bin
	return rec, nil
}

func sniff(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	buf := make([]byte, classify.PrefixLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, err
	}
	return classify.IsBinary(buf[:n]), nil
}

func epochSeconds(t time.Time) float64 {
	if t.IsZero() || t.Before(time.Unix(0, 0)) {
		return 0
	}
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

func isHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}
