package fs

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/droidpack/internal/core/domain"
	"go.trai.ch/droidpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes fingerprints of tasks and their files.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeInputHash fingerprints the task configuration and the content of its inputs.
func (h *Hasher) ComputeInputHash(task *domain.Task) (string, error) {
	hasher := xxhash.New()

	hashTaskDefinition(task, hasher)

	for _, tree := range task.Inputs() {
		if err := h.hashTree(tree, hasher); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrInputHashComputationFailed.Error()), "task", task.Name)
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// ComputeOutputHash fingerprints the files the task produced. A missing output
// returns an error wrapping fs.ErrNotExist.
func (h *Hasher) ComputeOutputHash(task *domain.Task) (string, error) {
	hasher := xxhash.New()

	for _, output := range task.Outputs() {
		info, err := os.Stat(output)
		if errors.Is(err, iofs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(iofs.ErrNotExist, "output missing"), "path", output)
		}
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", output)
		}

		if !info.IsDir() {
			if err := h.hashFile(output, output, hasher); err != nil {
				return "", err
			}
			continue
		}
		for path := range h.walker.WalkFiles(output, nil) {
			if err := h.hashFile(output, path, hasher); err != nil {
				return "", err
			}
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func writeField(hasher *xxhash.Digest, s string) {
	_, _ = hasher.WriteString(s)
	_, _ = hasher.Write([]byte{0})
}

func writeList(hasher *xxhash.Digest, items []string) {
	for _, item := range items {
		writeField(hasher, item)
	}
	_, _ = hasher.Write([]byte{0})
}

// hashTaskDefinition hashes everything about the task that changes its output.
func hashTaskDefinition(task *domain.Task, hasher *xxhash.Digest) {
	writeField(hasher, task.Name)
	writeField(hasher, string(task.Kind))
	writeList(hasher, task.DependsOn)

	if a := task.Archive; a != nil {
		writeField(hasher, a.Path())
		for _, tree := range a.From {
			writeField(hasher, tree.Root)
		}
		_, _ = hasher.Write([]byte{0})
	}

	if j := task.Javadoc; j != nil {
		writeField(hasher, j.Tool)
		writeField(hasher, j.DestinationDir)
		writeList(hasher, j.SourceDirs)
		writeList(hasher, j.Classpath)
		writeList(hasher, j.Excludes)
		writeField(hasher, strconv.FormatBool(j.FailOnError))
		if j.Options != nil {
			writeField(hasher, j.Options.Encoding)
			if std, ok := j.Options.Standard(); ok {
				writeField(hasher, std.CharSet)
				for _, opt := range std.StringOptions {
					writeField(hasher, opt.Name)
					writeField(hasher, opt.Value)
				}
			}
		}
		_, _ = hasher.Write([]byte{0})
	}
}

// hashTree hashes the files of tree. A tree whose root does not exist yet, such
// as the output of a task that has not run, hashes as empty.
func (h *Hasher) hashTree(tree domain.FileTree, hasher *xxhash.Digest) error {
	writeField(hasher, tree.Root)
	for _, path := range h.walker.TreeFiles(tree) {
		if err := h.hashFile(tree.Root, path, hasher); err != nil {
			return err
		}
	}
	_, _ = hasher.Write([]byte{0})
	return nil
}

// hashFile writes the path relative to root followed by the content hash.
func (h *Hasher) hashFile(root, path string, mainHasher *xxhash.Digest) error {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	writeField(mainHasher, filepath.ToSlash(rel))

	hash, err := h.ComputeFileHash(path)
	if err != nil {
		return err
	}

	if err := binary.Write(mainHasher, binary.LittleEndian, hash); err != nil {
		return zerr.Wrap(err, "failed to write hash to digest")
	}
	return nil
}
