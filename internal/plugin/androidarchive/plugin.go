// Package androidarchive registers the sources and javadoc archives of an
// android library and publishes them to the archives bucket.
package androidarchive

import (
	"context"
	"sync"

	"go.trai.ch/droidpack/internal/adapters/logger" //nolint:depguard // Plugins log through a tagged adapter
	"go.trai.ch/droidpack/internal/core/domain"
	"go.trai.ch/droidpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// ID is the identifier used in the plugins list of droidpack.yaml.
const ID = "android-archive"

// Task names registered by the plugin.
const (
	SourcesJarTask = "androidSourcesJar"
	JavadocTask    = "androidJavadoc"
	JavadocJarTask = "androidJavadocJar"
)

const (
	taskGroup      = "publishing"
	releaseVariant = "release"
	utf8           = "UTF-8"
	// Generated resource accessors carry no API documentation.
	resourceClassPattern = "**/R.java"
)

// Plugin is the android archive plugin. It implements ports.Plugin.
// A Plugin keeps no per-project state and may be applied to any number of projects.
type Plugin struct{}

var _ ports.Plugin = (*Plugin)(nil)

// New creates the plugin.
func New() *Plugin {
	return &Plugin{}
}

// ID returns the plugin identifier.
func (p *Plugin) ID() string { return ID }

// Apply defers task registration until the project configuration is final.
// Messages go to the project's logger, tagged with the plugin ID.
func (p *Plugin) Apply(host ports.ProjectHost) error {
	a := &application{
		log: logger.NewAdapter(host.Logger(), logger.WithTag("["+ID+"]")),
	}
	host.AfterEvaluate(a.onConfigurationReady)
	return nil
}

// application is the plugin applied to one project.
type application struct {
	log ports.Logger

	mu         sync.Mutex
	configured bool
}

// onConfigurationReady registers the three tasks and publishes the archives.
// It must be delivered once per application; a second delivery fails with ErrAlreadyConfigured.
func (a *application) onConfigurationReady(_ context.Context, host ports.ProjectHost) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.configured {
		return zerr.With(domain.ErrAlreadyConfigured, "plugin", ID)
	}
	a.configured = true

	ext, ok := host.Extension(domain.AndroidExtensionName)
	if !ok {
		return zerr.With(domain.ErrExtensionNotFound, "extension", domain.AndroidExtensionName)
	}
	android, ok := ext.(ports.BuildConfiguration)
	if !ok {
		return zerr.With(domain.ErrIncompatibleExtension, "extension", domain.AndroidExtensionName)
	}

	mainSet, ok := android.SourceSet(domain.MainSourceSet)
	if !ok {
		return zerr.With(domain.ErrSourceSetNotFound, "source_set", domain.MainSourceSet)
	}

	a.log.Verbose("create %s task", SourcesJarTask)
	if err := registerSourcesJar(host, mainSet); err != nil {
		return err
	}
	a.log.Verbose("create %s task", JavadocTask)
	javadoc, err := registerJavadoc(host, android, mainSet)
	if err != nil {
		return err
	}
	a.log.Verbose("create %s task", JavadocJarTask)
	if err := registerJavadocJar(host, javadoc); err != nil {
		return err
	}

	a.log.Verbose("add archives to %s of %s", domain.ArchivesBucket, host.Name())
	for _, name := range []string{SourcesJarTask, JavadocJarTask} {
		if err := host.AddArtifact(domain.ArchivesBucket, name); err != nil {
			return err
		}
	}
	return nil
}

func registerSourcesJar(host ports.ProjectHost, mainSet *domain.SourceSet) error {
	_, err := host.RegisterTask(SourcesJarTask, domain.TaskKindArchive, func(t *domain.Task) error {
		t.Group = taskGroup
		t.Description = "Assembles a jar archive containing the main sources."
		t.Archive.Classifier = "sources"
		for _, tree := range mainSet.SourceTrees() {
			t.Archive.AddFrom(tree)
		}
		return nil
	})
	return err
}

func registerJavadoc(
	host ports.ProjectHost,
	android ports.BuildConfiguration,
	mainSet *domain.SourceSet,
) (*domain.Task, error) {
	return host.RegisterTask(JavadocTask, domain.TaskKindJavadoc, func(t *domain.Task) error {
		t.Group = taskGroup
		t.Description = "Generates Javadoc API documentation for the main sources."

		doc := t.Javadoc
		if boot, ok := android.BootClasspath(); ok {
			doc.AddClasspath(boot...)
		}
		if variants, ok := android.LibraryVariants(); ok {
			for _, v := range variants {
				if v.Name != releaseVariant {
					continue
				}
				if cp, ok := v.JavaCompileClasspath(); ok {
					doc.AddClasspath(cp...)
				}
			}
		}

		doc.SourceDirs = append(doc.SourceDirs, mainSet.SrcDirs...)

		doc.Options.Encoding = utf8
		if std, ok := doc.Options.Standard(); ok {
			std.CharSet = utf8
			std.AddStringOption("Xdoclint:none", "-quiet")
		}

		doc.Exclude(resourceClassPattern)
		doc.FailOnError = false
		return nil
	})
}

func registerJavadocJar(host ports.ProjectHost, javadoc *domain.Task) error {
	if _, err := host.RegisterTask(JavadocJarTask, domain.TaskKindArchive, func(t *domain.Task) error {
		t.Group = taskGroup
		t.Description = "Assembles a jar archive containing the generated Javadoc."
		t.Archive.Classifier = "javadoc"
		t.Archive.AddFrom(domain.FileTree{Root: javadoc.Javadoc.DestinationDir})
		return nil
	}); err != nil {
		return err
	}
	return host.DependsOn(JavadocJarTask, JavadocTask)
}
