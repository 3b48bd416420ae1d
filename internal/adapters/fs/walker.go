// Package fs provides file system adapters for discovering, matching and hashing files.
package fs

import (
	"errors"
	iofs "io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/droidpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every regular file below root in lexical order. Hidden
// directories and directories whose name matches one of ignores are skipped.
// A missing root yields nothing.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && w.skipDir(d.Name(), ignores) {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) skipDir(name string, ignores []string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}

// SourceFiles returns the files below dirs whose name ends in ext, sorted.
// Every dir must exist.
func (w *Walker) SourceFiles(dirs []string, ext string) ([]string, error) {
	var files []string
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if errors.Is(err, iofs.ErrNotExist) || (err == nil && !info.IsDir()) {
			return nil, zerr.With(domain.ErrSourceDirNotFound, "path", dir)
		}
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to stat source directory"), "path", dir)
		}

		for path := range w.WalkFiles(dir, nil) {
			if strings.HasSuffix(path, ext) {
				files = append(files, path)
			}
		}
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}

// TreeFiles resolves the files of tree: its explicit list, or every file below
// its root when the list is nil.
func (w *Walker) TreeFiles(tree domain.FileTree) []string {
	if tree.Files != nil {
		return tree.Files
	}
	return slices.Collect(w.WalkFiles(tree.Root, nil))
}
