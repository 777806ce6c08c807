package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/mendkit/mendkit/internal/domain"
)

// FileScanner implements domain.ProjectScanner by walking the filesystem
// depth-first. Traversal is pure: unreadable directories are skipped with
// a warning and the walk continues.
type FileScanner struct {
	log hclog.Logger
}

func New(log hclog.Logger) *FileScanner {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &FileScanner{log: log}
}

func (s *FileScanner) Scan(root string, cfg domain.ProjectConfig) (*domain.Listing, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root: %w", err)
	}

	listing := &domain.Listing{RootPath: absRoot}
	var tree strings.Builder
	fmt.Fprintf(&tree, "%s/\n", filepath.Base(absRoot))

	// WalkDir does not descend into symlinked directories, so the walk
	// cannot cycle; symlinks fall through the regular-file check below.
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.log.Warn("skipping unreadable path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(absRoot, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && excluded(rel, cfg.ExcludeDirs) {
				return fs.SkipDir
			}
			if rel != "." {
				listing.DirCount++
				fmt.Fprintf(&tree, "%s%s/\n", indentFor(rel), d.Name())
			}
			return nil
		}

		if !d.Type().IsRegular() || cfg.IsIgnoredFile(d.Name()) {
			return nil
		}

		dir := "."
		if i := strings.LastIndex(rel, "/"); i >= 0 {
			dir = rel[:i]
		}
		listing.Files = append(listing.Files, domain.FileEntry{Dir: dir, Name: d.Name()})
		fmt.Fprintf(&tree, "%s%s\n", indentFor(rel), d.Name())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", absRoot, err)
	}

	listing.Tree = tree.String()
	return listing, nil
}

// excluded reports whether a root-relative directory path contains any of
// the configured exclude substrings.
func excluded(rel string, excludeDirs []string) bool {
	for _, sub := range excludeDirs {
		if sub != "" && strings.Contains(rel, sub) {
			return true
		}
	}
	return false
}

// indentFor indents tree lines two spaces per path segment, matching the
// listing format sent to the advisory service.
func indentFor(rel string) string {
	return strings.Repeat("  ", strings.Count(rel, "/")+1)
}
