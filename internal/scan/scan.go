package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// ExtensionSet is an exact-match set of file extensions including the leading dot.
type ExtensionSet map[string]struct{}

// NewExtensionSet builds a set from the provided extensions. Entries are
// trimmed but otherwise kept verbatim.
func NewExtensionSet(exts []string) ExtensionSet {
	set := make(ExtensionSet, len(exts))
	for _, ext := range exts {
		if trimmed := strings.TrimSpace(ext); trimmed != "" {
			set[trimmed] = struct{}{}
		}
	}
	return set
}

// Matches reports whether name ends in a member extension. Leading dots are
// part of the stem, so ".jpg" has no extension.
func (s ExtensionSet) Matches(name string) bool {
	ext := filepath.Ext(strings.TrimLeft(name, "."))
	if ext == "" {
		return false
	}
	_, ok := s[ext]
	return ok
}

// Options controls a scan.
type Options struct {
	Extensions ExtensionSet
	// ExcludeDirs names directories (by base name) skipped along with their subtrees.
	// The root itself is never excluded.
	ExcludeDirs []string
}

// TargetDirs walks root and returns the unique directories that directly
// contain a matching file, sorted lexically. A symlinked root is followed;
// returned paths stay under root as given. Symlinks below the root are not
// followed.
func TargetDirs(root string, opts Options) ([]string, error) {
	if len(opts.Extensions) == 0 {
		return nil, errors.New("scan: no extensions configured")
	}
	root = filepath.Clean(root)
	walkRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	excluded := make(map[string]struct{}, len(opts.ExcludeDirs))
	for _, name := range opts.ExcludeDirs {
		excluded[name] = struct{}{}
	}

	seen := make(map[string]struct{})
	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if path == walkRoot {
				return nil
			}
			if _, skip := excluded[d.Name()]; skip {
				return filepath.SkipDir
			}
			return nil
		}
		if !opts.Extensions.Matches(d.Name()) {
			return nil
		}
		seen[filepath.Dir(path)] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	dirs := make([]string, 0, len(seen))
	for dir := range seen {
		rel, err := filepath.Rel(walkRoot, dir)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", root, err)
		}
		dirs = append(dirs, filepath.Join(root, rel))
	}
	sort.Strings(dirs)
	return dirs, nil
}
