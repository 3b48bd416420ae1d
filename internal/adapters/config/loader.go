// Package config provides the configuration loader for droidpack.
package config

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"go.trai.ch/droidpack/internal/adapters/fs"
	"go.trai.ch/droidpack/internal/core/domain"
	"go.trai.ch/droidpack/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the configuration schema version this loader understands.
const SupportedVersion = "1"

var validProjectNameRegex = regexp.MustCompile("^[a-zA-Z0-9._-]+$")

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	walker *fs.Walker
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger, walker *fs.Walker) *Loader {
	return &Loader{Logger: logger, walker: walker}
}

// Load reads droidpack.yaml and returns the project description with every
// path made absolute and the source files of each source set resolved.
func (l *Loader) Load(path string) (*domain.ProjectSpec, error) {
	configPath, err := findConfiguration(path)
	if err != nil {
		return nil, err
	}

	var cfg Configfile
	if err := readAndUnmarshalYAML(configPath, &cfg); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if err := l.validate(&cfg); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	dir := filepath.Dir(configPath)
	spec := &domain.ProjectSpec{
		Name:        cfg.Project,
		Version:     cfg.ProjectVersion,
		Dir:         dir,
		BuildDir:    resolvePath(dir, cfg.BuildDir, domain.DefaultBuildDirName),
		Plugins:     slices.Clone(cfg.Plugins),
		JavadocTool: os.ExpandEnv(cfg.Javadoc.Tool),
	}

	if spec.Doclet, err = domain.ParseDoclet(cfg.Javadoc.Doclet); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if cfg.Android != nil {
		if spec.Android, err = l.buildAndroid(dir, cfg.Android); err != nil {
			return nil, zerr.With(err, "path", configPath)
		}
	}

	return spec, nil
}

func (l *Loader) validate(cfg *Configfile) error {
	if cfg.Version != "" && cfg.Version != SupportedVersion {
		l.Logger.Warning("unknown configuration version %q, reading it as version %s", cfg.Version, SupportedVersion)
	}
	if cfg.Project == "" {
		return domain.ErrMissingProjectName
	}
	if !validProjectNameRegex.MatchString(cfg.Project) {
		return zerr.With(domain.ErrInvalidProjectName, "project_name", cfg.Project)
	}
	return nil
}

func (l *Loader) buildAndroid(dir string, dto *AndroidDTO) (*domain.AndroidExtension, error) {
	kind, err := domain.ParseExtensionKind(dto.Kind)
	if err != nil {
		return nil, err
	}

	ext := &domain.AndroidExtension{
		Kind:       kind,
		SourceSets: make(map[string]*domain.SourceSet, len(dto.SourceSets)),
		BootJars:   resolvePaths(dir, dto.BootClasspath),
	}

	for name, ssDTO := range dto.SourceSets {
		ss, err := l.buildSourceSet(dir, name, ssDTO)
		if err != nil {
			return nil, err
		}
		ext.SourceSets[name] = ss
	}

	for _, v := range dto.Variants {
		compiler, err := domain.ParseCompiler(v.Compiler)
		if err != nil {
			return nil, zerr.With(err, "variant", v.Name)
		}
		ext.Variants = append(ext.Variants, domain.Variant{
			Name:      v.Name,
			Compiler:  compiler,
			Classpath: resolvePaths(dir, v.Classpath),
		})
	}

	return ext, nil
}

// buildSourceSet resolves the java directories of a source set. Directories
// that do not exist are dropped, since most projects declare more
// conventional locations than they use.
func (l *Loader) buildSourceSet(dir, name string, dto *SourceSetDTO) (*domain.SourceSet, error) {
	ss := &domain.SourceSet{Name: name}
	if dto == nil {
		return ss, nil
	}

	for _, srcDir := range resolvePaths(dir, dto.Java) {
		if info, err := os.Stat(srcDir); err != nil || !info.IsDir() {
			l.Logger.Verbose("source directory %s of source set %s does not exist, skipping", srcDir, name)
			continue
		}
		ss.SrcDirs = append(ss.SrcDirs, srcDir)
	}

	files, err := l.walker.SourceFiles(ss.SrcDirs, ".java")
	if err != nil {
		return nil, zerr.With(err, "source_set", name)
	}
	ss.SourceFiles = files
	return ss, nil
}

// findConfiguration returns path when it names a file. When path is an
// existing directory it searches path and its parents for droidpack.yaml.
// A path that does not exist is never searched from.
func findConfiguration(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		return "", zerr.With(domain.ErrConfigNotFound, "path", path)
	case err != nil:
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	case !info.IsDir():
		return abs, nil
	}

	currentDir := abs
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", path)
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

// resolvePath expands environment variables in p and makes it absolute
// relative to dir. An empty p resolves to fallback.
func resolvePath(dir, p, fallback string) string {
	p = os.ExpandEnv(p)
	if p == "" {
		p = fallback
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(dir, p)
}

func resolvePaths(dir string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	resolved := make([]string, 0, len(paths))
	for _, p := range paths {
		resolved = append(resolved, resolvePath(dir, p, "."))
	}
	return resolved
}
