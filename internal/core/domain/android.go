package domain

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// AndroidExtensionName is the name the android build configuration is registered under.
const AndroidExtensionName = "android"

// MainSourceSet is the name of the primary source set.
const MainSourceSet = "main"

// ExtensionKind describes which flavor of android configuration a project declares.
type ExtensionKind string

const (
	// ExtensionApplication is an application module configuration.
	ExtensionApplication ExtensionKind = "application"
	// ExtensionLibrary is a library module configuration with library variants.
	ExtensionLibrary ExtensionKind = "library"
	// ExtensionMinimal exposes source sets only.
	ExtensionMinimal ExtensionKind = "minimal"
)

// ParseExtensionKind converts a config value into an ExtensionKind. Empty means library.
func ParseExtensionKind(s string) (ExtensionKind, error) {
	switch kind := ExtensionKind(strings.ToLower(s)); kind {
	case "":
		return ExtensionLibrary, nil
	case ExtensionApplication, ExtensionLibrary, ExtensionMinimal:
		return kind, nil
	default:
		return "", zerr.With(ErrInvalidExtensionKind, "kind", s)
	}
}

// Compiler identifies the compiler task of a variant.
type Compiler string

const (
	// CompilerJavac is the standard java compile task.
	CompilerJavac Compiler = "javac"
	// CompilerKotlinc is a kotlin compile task; its classpath is not exposed to javadoc.
	CompilerKotlinc Compiler = "kotlinc"
)

// ParseCompiler converts a config value into a Compiler. Empty means javac.
func ParseCompiler(s string) (Compiler, error) {
	switch c := Compiler(strings.ToLower(s)); c {
	case "":
		return CompilerJavac, nil
	case CompilerJavac, CompilerKotlinc:
		return c, nil
	default:
		return "", zerr.With(ErrInvalidCompiler, "compiler", s)
	}
}

// AndroidExtension is the android build configuration of a project.
type AndroidExtension struct {
	Kind       ExtensionKind
	SourceSets map[string]*SourceSet
	BootJars   []string
	Variants   []Variant
}

// SourceSet returns the named source set.
func (e *AndroidExtension) SourceSet(name string) (*SourceSet, bool) {
	ss, ok := e.SourceSets[name]
	return ss, ok
}

// BootClasspath returns the boot classpath. Only application and library
// configurations carry one.
func (e *AndroidExtension) BootClasspath() ([]string, bool) {
	if e.Kind == ExtensionMinimal {
		return nil, false
	}
	return e.BootJars, true
}

// LibraryVariants returns the build variants of a library configuration.
func (e *AndroidExtension) LibraryVariants() ([]Variant, bool) {
	if e.Kind != ExtensionLibrary {
		return nil, false
	}
	return e.Variants, true
}

// SourceSet is a named grouping of java source directories.
type SourceSet struct {
	Name        string
	SrcDirs     []string
	SourceFiles []string
}

// SourceTrees groups the source files by the source directory that contains them.
func (s *SourceSet) SourceTrees() []FileTree {
	trees := make([]FileTree, 0, len(s.SrcDirs))
	for _, dir := range s.SrcDirs {
		prefix := filepath.Clean(dir) + string(filepath.Separator)
		var files []string
		for _, f := range s.SourceFiles {
			if strings.HasPrefix(f, prefix) {
				files = append(files, f)
			}
		}
		slices.Sort(files)
		trees = append(trees, FileTree{Root: dir, Files: files})
	}
	return trees
}

// Variant is a named build flavor with its own compiler task.
type Variant struct {
	Name      string
	Compiler  Compiler
	Classpath []string
}

// JavaCompileClasspath returns the compile classpath when the variant compiles with javac.
func (v Variant) JavaCompileClasspath() ([]string, bool) {
	if v.Compiler != CompilerJavac {
		return nil, false
	}
	return v.Classpath, true
}
