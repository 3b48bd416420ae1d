// Package javadoc runs the javadoc tool for javadoc tasks.
package javadoc

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/droidpack/internal/adapters/fs"
	"go.trai.ch/droidpack/internal/core/domain"
	"go.trai.ch/droidpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// OptionsFileName is the argument file written next to the destination directory.
const OptionsFileName = "javadoc.options"

var _ ports.DocTool = (*DocTool)(nil)

// DocTool implements ports.DocTool by invoking the javadoc command line tool.
type DocTool struct {
	executor ports.Executor
	walker   *fs.Walker
}

// NewDocTool creates a new DocTool.
func NewDocTool(executor ports.Executor, walker *fs.Walker) *DocTool {
	return &DocTool{executor: executor, walker: walker}
}

// Generate regenerates the documentation for spec. The destination directory
// is emptied first. Arguments are passed through an options file, which keeps
// large source sets below the command line limit. A spec without source files
// produces an empty destination directory and does not start the tool.
func (d *DocTool) Generate(ctx context.Context, spec *domain.JavadocSpec) error {
	files, err := d.SourceFiles(spec)
	if err != nil {
		return zerr.Wrap(err, domain.ErrJavadocFailed.Error())
	}

	if err := os.RemoveAll(spec.DestinationDir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrJavadocFailed.Error()), "path", spec.DestinationDir)
	}
	if err := os.MkdirAll(spec.DestinationDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrJavadocFailed.Error()), "path", spec.DestinationDir)
	}

	if len(files) == 0 {
		return nil
	}

	optionsFile := filepath.Join(filepath.Dir(spec.DestinationDir), OptionsFileName)
	if err := os.WriteFile(optionsFile, []byte(OptionsFile(Arguments(spec, files))), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrJavadocFailed.Error()), "path", optionsFile)
	}

	cmd := domain.Command{Name: spec.Tool, Args: []string{"@" + optionsFile}}
	if err := d.executor.Run(ctx, cmd); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrJavadocFailed.Error()), "tool", spec.Tool)
	}
	return nil
}

// SourceFiles returns the java files below the task's source directories that
// are not excluded, in source directory order.
func (d *DocTool) SourceFiles(spec *domain.JavadocSpec) ([]string, error) {
	matcher := fs.NewMatcher(spec.Excludes)

	var files []string
	for _, dir := range spec.SourceDirs {
		found, err := d.walker.SourceFiles([]string{dir}, ".java")
		if err != nil {
			return nil, err
		}
		files = append(files, matcher.Filter(dir, found)...)
	}
	return files, nil
}

// Arguments builds the javadoc argument vector for spec and the given source files.
func Arguments(spec *domain.JavadocSpec, files []string) []string {
	args := []string{"-d", spec.DestinationDir}

	if opts := spec.Options; opts != nil {
		if opts.Encoding != "" {
			args = append(args, "-encoding", opts.Encoding)
		}
		if std, ok := opts.Standard(); ok {
			if std.CharSet != "" {
				args = append(args, "-charset", std.CharSet)
			}
		}
	}

	if len(spec.Classpath) > 0 {
		args = append(args, "-classpath", strings.Join(spec.Classpath, string(os.PathListSeparator)))
	}
	if len(spec.SourceDirs) > 0 {
		args = append(args, "-sourcepath", strings.Join(spec.SourceDirs, string(os.PathListSeparator)))
	}

	if opts := spec.Options; opts != nil {
		if std, ok := opts.Standard(); ok {
			for _, opt := range std.StringOptions {
				args = append(args, "-"+opt.Name)
				if opt.Value != "" {
					args = append(args, opt.Value)
				}
			}
		}
	}

	return append(args, files...)
}

// OptionsFile renders args in the javadoc argument file format: one quoted
// argument per line.
func OptionsFile(args []string) string {
	var b strings.Builder
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	for _, arg := range args {
		b.WriteString(`"`)
		b.WriteString(r.Replace(arg))
		b.WriteString("\"\n")
	}
	return b.String()
}
