package domain

import (
	"regexp"

	"go.trai.ch/zerr"
)

// TaskKind identifies which host executor runs a task.
type TaskKind string

const (
	// TaskKindArchive packages files into a jar.
	TaskKindArchive TaskKind = "archive"
	// TaskKindJavadoc generates API documentation with the javadoc tool.
	TaskKindJavadoc TaskKind = "javadoc"
)

// Task represents a unit of work registered on a project.
// Exactly one of Archive or Javadoc is set, matching Kind.
type Task struct {
	Name        string
	Kind        TaskKind
	Group       string
	Description string
	DependsOn   []string
	Archive     *ArchiveSpec
	Javadoc     *JavadocSpec
}

var validTaskNameRegex = regexp.MustCompile("^[a-zA-Z][a-zA-Z0-9_-]*$")

// ValidateTaskName reports whether name can be used as a task name.
func ValidateTaskName(name string) error {
	if !validTaskNameRegex.MatchString(name) {
		return zerr.With(ErrInvalidTaskName, "task_name", name)
	}
	return nil
}

// Inputs returns the file trees the task reads.
func (t *Task) Inputs() []FileTree {
	switch {
	case t.Archive != nil:
		return t.Archive.From
	case t.Javadoc != nil:
		trees := make([]FileTree, 0, len(t.Javadoc.SourceDirs))
		for _, dir := range t.Javadoc.SourceDirs {
			trees = append(trees, FileTree{Root: dir})
		}
		return trees
	default:
		return nil
	}
}

// Outputs returns the paths the task produces.
func (t *Task) Outputs() []string {
	switch {
	case t.Archive != nil:
		return []string{t.Archive.Path()}
	case t.Javadoc != nil:
		return []string{t.Javadoc.DestinationDir}
	default:
		return nil
	}
}

// FileTree is a set of files below Root. Files are absolute paths.
// A nil Files slice means every regular file below Root, resolved when the tree is read.
type FileTree struct {
	Root  string
	Files []string
}
