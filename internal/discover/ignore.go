package discover

import (
	"bufio"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// ignoreFiles are read from every visited directory, lowest precedence first.
var ignoreFiles = []string{".gitignore", ".ignore"}

// ignoreRules is the accumulated set of patterns in effect for one directory.
// Instances are immutable once built and shared by child directories.
//
// Patterns are matched against paths relative to the enclosing repository;
// base is the scan root's position within it.
type ignoreRules struct {
	base     []string
	patterns []gitignore.Pattern
	matcher  gitignore.Matcher
}

// rootRules returns the rules that already apply to root before its own
// ignore files are read. Inside a git work tree these are, lowest precedence
// first: the user's core.excludesFile, the repository's .git/info/exclude,
// and the ignore files of every directory from the work tree root down to
// root's parent. Outside a work tree nothing applies.
func rootRules(root string) *ignoreRules {
	abs, err := filepath.Abs(root)
	if err != nil {
		return &ignoreRules{}
	}
	repo, base := enclosingRepo(abs)
	if repo == "" {
		return &ignoreRules{}
	}

	var ps []gitignore.Pattern
	global, err := gitignore.LoadGlobalPatterns(osfs.New(string(filepath.Separator)))
	if err != nil {
		slog.Debug("scan.ignore.global", "err", err)
	}
	ps = append(ps, global...)

	lines, _ := loadIgnoreFile(filepath.Join(repo, ".git", "info", "exclude"))
	for _, l := range lines {
		ps = append(ps, gitignore.ParsePattern(l, nil))
	}

	for i := range base {
		domain := base[:i]
		dir := filepath.Join(append([]string{repo}, domain...)...)
		ps = append(ps, dirPatterns(dir, domain)...)
	}

	r := &ignoreRules{base: base, patterns: ps}
	if len(ps) > 0 {
		r.matcher = gitignore.NewMatcher(ps)
	}
	return r
}

// enclosingRepo finds the nearest directory at or above dir holding a .git
// entry, and returns it with dir's path components relative to it.
func enclosingRepo(dir string) (string, []string) {
	for d := dir; ; {
		if _, err := os.Lstat(filepath.Join(d, ".git")); err == nil {
			rel, err := filepath.Rel(d, dir)
			if err != nil || rel == "." {
				return d, nil
			}
			return d, strings.Split(filepath.ToSlash(rel), "/")
		}
		parent := filepath.Dir(d)
		if parent == d {
			return "", nil
		}
		d = parent
	}
}

// dirPatterns parses the ignore files declared in dir.
func dirPatterns(dir string, domain []string) []gitignore.Pattern {
	var ps []gitignore.Pattern
	for _, name := range ignoreFiles {
		lines, err := loadIgnoreFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		for _, l := range lines {
			ps = append(ps, gitignore.ParsePattern(l, domain))
		}
	}
	return ps
}

// extend returns the rules for dir: the parent's patterns followed by any
// declared in dir itself, which take precedence. rel is dir relative to the
// scan root.
func (r *ignoreRules) extend(dir string, rel []string) *ignoreRules {
	if r == nil {
		r = &ignoreRules{}
	}
	own := dirPatterns(dir, slices.Concat(r.base, rel))
	if len(own) == 0 {
		return r
	}

	all := make([]gitignore.Pattern, 0, len(r.patterns)+len(own))
	all = append(all, r.patterns...)
	all = append(all, own...)
	return &ignoreRules{base: r.base, patterns: all, matcher: gitignore.NewMatcher(all)}
}

// ignored reports whether the scan-root-relative path components are excluded.
func (r *ignoreRules) ignored(path []string, isDir bool) bool {
	if r == nil || r.matcher == nil {
		return false
	}
	return r.matcher.Match(slices.Concat(r.base, path), isDir)
}

func loadIgnoreFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var patterns []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line != "" && !strings.HasPrefix(line, "#") {
			patterns = append(patterns, line)
		}
	}
	return patterns, scanner.Err()
}
