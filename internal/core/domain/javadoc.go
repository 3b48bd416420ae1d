package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Doclet selects the option set a javadoc task accepts.
type Doclet string

const (
	// DocletStandard is the standard doclet, which accepts extended options.
	DocletStandard Doclet = "standard"
	// DocletMinimal only understands the minimal option set.
	DocletMinimal Doclet = "minimal"
)

// ParseDoclet converts a config value into a Doclet. Empty means standard.
func ParseDoclet(s string) (Doclet, error) {
	switch d := Doclet(strings.ToLower(s)); d {
	case "":
		return DocletStandard, nil
	case DocletStandard, DocletMinimal:
		return d, nil
	default:
		return "", zerr.With(ErrInvalidDoclet, "doclet", s)
	}
}

// JavadocSpec configures a javadoc task.
type JavadocSpec struct {
	Tool           string
	SourceDirs     []string
	Classpath      []string
	Excludes       []string
	DestinationDir string
	FailOnError    bool
	Options        *JavadocOptions
}

// AddClasspath appends entries to the javadoc classpath.
func (j *JavadocSpec) AddClasspath(entries ...string) {
	j.Classpath = append(j.Classpath, entries...)
}

// Exclude adds a pattern to the javadoc source excludes.
func (j *JavadocSpec) Exclude(patterns ...string) {
	j.Excludes = append(j.Excludes, patterns...)
}

// JavadocOptions holds the options every doclet understands.
type JavadocOptions struct {
	Encoding string

	standard *StandardDocletOptions
}

// NewJavadocOptions creates options for the given doclet.
func NewJavadocOptions(doclet Doclet) *JavadocOptions {
	opts := &JavadocOptions{}
	if doclet == DocletStandard {
		opts.standard = &StandardDocletOptions{}
	}
	return opts
}

// Standard returns the extended options when the doclet supports them.
func (o *JavadocOptions) Standard() (*StandardDocletOptions, bool) {
	return o.standard, o.standard != nil
}

// StandardDocletOptions are only understood by the standard doclet.
type StandardDocletOptions struct {
	CharSet       string
	StringOptions []StringOption
}

// StringOption is a raw "-name value" pair passed through to the doclet.
type StringOption struct {
	Name  string
	Value string
}

// AddStringOption appends a raw doclet option. Options keep insertion order.
func (s *StandardDocletOptions) AddStringOption(name, value string) {
	s.StringOptions = append(s.StringOptions, StringOption{Name: name, Value: value})
}
