package domain

import (
	"path/filepath"
	"strings"
)

// ArchiveSpec configures an archive task.
type ArchiveSpec struct {
	BaseName       string
	Version        string
	Classifier     string
	Extension      string
	DestinationDir string
	From           []FileTree
}

// FileName returns the archive name: base[-version][-classifier].extension.
func (a *ArchiveSpec) FileName() string {
	parts := []string{a.BaseName}
	if a.Version != "" {
		parts = append(parts, a.Version)
	}
	if a.Classifier != "" {
		parts = append(parts, a.Classifier)
	}
	name := strings.Join(parts, "-")
	if a.Extension != "" {
		name += "." + a.Extension
	}
	return name
}

// Path returns the absolute location of the archive.
func (a *ArchiveSpec) Path() string {
	return filepath.Join(a.DestinationDir, a.FileName())
}

// AddFrom appends a file tree to the archive contents.
func (a *ArchiveSpec) AddFrom(tree FileTree) {
	a.From = append(a.From, tree)
}
