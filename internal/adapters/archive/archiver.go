// Package archive writes jar archives from file trees.
package archive

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/droidpack/internal/adapters/fs"
	"go.trai.ch/droidpack/internal/core/domain"
	"go.trai.ch/droidpack/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// ManifestPath is the location of the jar manifest.
	ManifestPath = "META-INF/MANIFEST.MF"

	manifestDir = "META-INF/"
	manifest    = "Manifest-Version: 1.0\r\nCreated-By: droidpack\r\n\r\n"
)

// EntryTime is the modification time stamped on every entry so archives are
// reproducible. Zip cannot represent times before 1980.
var EntryTime = time.Date(1980, time.February, 1, 0, 0, 0, 0, time.UTC)

var _ ports.Archiver = (*Archiver)(nil)

// Archiver implements ports.Archiver with archive/zip.
type Archiver struct {
	walker *fs.Walker
}

// NewArchiver creates a new Archiver.
func NewArchiver(walker *fs.Walker) *Archiver {
	return &Archiver{walker: walker}
}

type entry struct {
	name string
	src  string
}

// Archive writes the jar described by spec. The archive is written to a
// temporary file next to the destination and renamed into place.
func (a *Archiver) Archive(ctx context.Context, spec *domain.ArchiveSpec) error {
	dest := spec.Path()
	entries := a.collect(spec.From)

	if err := os.MkdirAll(spec.DestinationDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveCreateFailed.Error()), "path", dest)
	}

	tmp, err := os.CreateTemp(spec.DestinationDir, "."+spec.FileName()+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveCreateFailed.Error()), "path", dest)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := writeZip(ctx, tmp, entries); err != nil {
		_ = tmp.Close()
		return zerr.With(err, "path", dest)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveCreateFailed.Error()), "path", dest)
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveCreateFailed.Error()), "path", dest)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveCreateFailed.Error()), "path", dest)
	}
	return nil
}

// Entries returns the entry names Archive would write for trees, in archive order.
func (a *Archiver) Entries(trees []domain.FileTree) []string {
	entries := a.collect(trees)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.name)
	}
	return names
}

// collect resolves the trees into entries. The manifest comes first, then
// directories and files sorted by name. When two trees provide the same
// name the first one wins.
func (a *Archiver) collect(trees []domain.FileTree) []entry {
	seen := map[string]bool{manifestDir: true, ManifestPath: true}
	var entries []entry

	for _, tree := range trees {
		for _, file := range a.walker.TreeFiles(tree) {
			rel, err := filepath.Rel(tree.Root, file)
			if err != nil || rel == "." || escapesRoot(rel) {
				continue
			}
			name := filepath.ToSlash(rel)
			if seen[name] {
				continue
			}
			seen[name] = true
			entries = append(entries, entry{name: name, src: file})

			for dir := path.Dir(name); dir != "."; dir = path.Dir(dir) {
				if seen[dir+"/"] {
					break
				}
				seen[dir+"/"] = true
				entries = append(entries, entry{name: dir + "/"})
			}
		}
	}

	slices.SortFunc(entries, func(x, y entry) int { return strings.Compare(x.name, y.name) })

	return append([]entry{{name: manifestDir}, {name: ManifestPath}}, entries...)
}

func writeZip(ctx context.Context, w io.Writer, entries []entry) error {
	zw := zip.NewWriter(w)

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := writeEntry(zw, e); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrArchiveEntryFailed.Error()), "entry", e.name)
		}
	}

	if err := zw.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrArchiveCreateFailed.Error())
	}
	return nil
}

func writeEntry(zw *zip.Writer, e entry) error {
	header := &zip.FileHeader{Name: e.name, Modified: EntryTime, Method: zip.Deflate}
	if strings.HasSuffix(e.name, "/") {
		header.Method = zip.Store
		header.SetMode(os.ModeDir | domain.DirPerm)
	} else {
		header.SetMode(domain.FilePerm)
	}

	w, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}

	switch {
	case e.name == ManifestPath:
		_, err = io.WriteString(w, manifest)
		return err
	case e.src == "":
		return nil
	}

	f, err := os.Open(e.src) //nolint:gosec // Path comes from the task's own file tree
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck // Read-only file

	_, err = io.Copy(w, f)
	return err
}

// escapesRoot reports whether a relative path points outside its root.
func escapesRoot(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
