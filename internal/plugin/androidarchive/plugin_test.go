package androidarchive_test

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/droidpack/internal/core/domain"
	"go.trai.ch/droidpack/internal/core/ports"
	"go.trai.ch/droidpack/internal/core/ports/mocks"
	"go.trai.ch/droidpack/internal/engine/project"
	"go.trai.ch/droidpack/internal/plugin/androidarchive"
	"go.uber.org/mock/gomock"
)

const root = "/work/mylib"

var javaDir = filepath.Join(root, "src", "main", "java")

func mainSourceSet() *domain.SourceSet {
	return &domain.SourceSet{
		Name:    domain.MainSourceSet,
		SrcDirs: []string{javaDir},
		SourceFiles: []string{
			filepath.Join(javaDir, "com", "example", "A.java"),
			filepath.Join(javaDir, "com", "example", "B.java"),
		},
	}
}

func newProject(doclet domain.Doclet, android *domain.AndroidExtension) *project.Project {
	return newProjectWithLogger(doclet, android, slog.New(slog.DiscardHandler))
}

func newProjectWithLogger(doclet domain.Doclet, android *domain.AndroidExtension, log ports.HostLogger) *project.Project {
	return project.New(&domain.ProjectSpec{
		Name:     "mylib",
		Dir:      root,
		BuildDir: filepath.Join(root, "build"),
		Doclet:   doclet,
		Android:  android,
	}, log)
}

func library() *domain.AndroidExtension {
	return &domain.AndroidExtension{
		Kind:       domain.ExtensionLibrary,
		SourceSets: map[string]*domain.SourceSet{domain.MainSourceSet: mainSourceSet()},
	}
}

func apply(t *testing.T, p *project.Project) error {
	t.Helper()
	require.NoError(t, androidarchive.New().Apply(p))
	return p.Evaluate(t.Context())
}

func javadocTask(t *testing.T, p *project.Project) *domain.JavadocSpec {
	t.Helper()
	task, ok := p.Task(androidarchive.JavadocTask)
	require.True(t, ok)
	require.NotNil(t, task.Javadoc)
	return task.Javadoc
}

func TestPlugin_ID(t *testing.T) {
	assert.Equal(t, "android-archive", androidarchive.New().ID())
}

func TestPlugin_RegistersNothingBeforeEvaluation(t *testing.T) {
	p := newProject(domain.DocletStandard, &domain.AndroidExtension{
		Kind:       domain.ExtensionApplication,
		SourceSets: map[string]*domain.SourceSet{domain.MainSourceSet: mainSourceSet()},
	})

	require.NoError(t, androidarchive.New().Apply(p))
	assert.Empty(t, p.Tasks())
}

func TestPlugin_EndToEnd(t *testing.T) {
	p := newProject(domain.DocletStandard, &domain.AndroidExtension{
		Kind:       domain.ExtensionApplication,
		SourceSets: map[string]*domain.SourceSet{domain.MainSourceSet: mainSourceSet()},
		BootJars:   []string{"/sdk/android.jar"},
	})

	require.NoError(t, apply(t, p))

	var names []string
	for _, task := range p.Tasks() {
		names = append(names, task.Name)
	}
	assert.Equal(t, []string{
		androidarchive.JavadocTask,
		androidarchive.JavadocJarTask,
		androidarchive.SourcesJarTask,
	}, names)

	jar, _ := p.Task(androidarchive.JavadocJarTask)
	assert.Equal(t, []string{androidarchive.JavadocTask}, jar.DependsOn)

	plan, err := p.Plan([]string{androidarchive.JavadocJarTask})
	require.NoError(t, err)
	require.Len(t, plan, 2)
	assert.Equal(t, androidarchive.JavadocTask, plan[0].Name)
	assert.Equal(t, androidarchive.JavadocJarTask, plan[1].Name)

	arts := p.Artifacts(domain.ArchivesBucket)
	require.Len(t, arts, 2)
	assert.Equal(t, androidarchive.SourcesJarTask, arts[0].Task)
	assert.Equal(t, "sources", arts[0].Classifier)
	assert.Equal(t, filepath.Join(root, "build", "libs", "mylib-sources.jar"), arts[0].File)
	assert.Equal(t, androidarchive.JavadocJarTask, arts[1].Task)
	assert.Equal(t, "javadoc", arts[1].Classifier)
	assert.Equal(t, filepath.Join(root, "build", "libs", "mylib-javadoc.jar"), arts[1].File)
}

func TestPlugin_SourcesJarContents(t *testing.T) {
	p := newProject(domain.DocletStandard, &domain.AndroidExtension{
		Kind:       domain.ExtensionLibrary,
		SourceSets: map[string]*domain.SourceSet{domain.MainSourceSet: mainSourceSet()},
	})
	require.NoError(t, apply(t, p))

	task, ok := p.Task(androidarchive.SourcesJarTask)
	require.True(t, ok)
	require.Len(t, task.Archive.From, 1)
	assert.Equal(t, javaDir, task.Archive.From[0].Root)
	assert.Equal(t, mainSourceSet().SourceFiles, task.Archive.From[0].Files)

	docJar, _ := p.Task(androidarchive.JavadocJarTask)
	require.Len(t, docJar.Archive.From, 1)
	assert.Equal(t, javadocTask(t, p).DestinationDir, docJar.Archive.From[0].Root)
	assert.Nil(t, docJar.Archive.From[0].Files, "javadoc output is read when the archive runs")
}

func TestPlugin_JavadocOptions(t *testing.T) {
	p := newProject(domain.DocletStandard, &domain.AndroidExtension{
		Kind:       domain.ExtensionLibrary,
		SourceSets: map[string]*domain.SourceSet{domain.MainSourceSet: mainSourceSet()},
	})
	require.NoError(t, apply(t, p))

	doc := javadocTask(t, p)
	assert.Equal(t, []string{javaDir}, doc.SourceDirs)
	assert.Equal(t, []string{"**/R.java"}, doc.Excludes)
	assert.False(t, doc.FailOnError)
	assert.Equal(t, "UTF-8", doc.Options.Encoding)

	std, ok := doc.Options.Standard()
	require.True(t, ok)
	assert.Equal(t, "UTF-8", std.CharSet)
	assert.Equal(t, []domain.StringOption{{Name: "Xdoclint:none", Value: "-quiet"}}, std.StringOptions)
}

func TestPlugin_JavadocOptions_MinimalDoclet(t *testing.T) {
	p := newProject(domain.DocletMinimal, &domain.AndroidExtension{
		Kind:       domain.ExtensionLibrary,
		SourceSets: map[string]*domain.SourceSet{domain.MainSourceSet: mainSourceSet()},
	})
	require.NoError(t, apply(t, p))

	doc := javadocTask(t, p)
	assert.Equal(t, "UTF-8", doc.Options.Encoding)
	_, ok := doc.Options.Standard()
	assert.False(t, ok)
	assert.False(t, doc.FailOnError)
}

func TestPlugin_ReleaseVariantClasspath(t *testing.T) {
	debug := domain.Variant{Name: "debug", Compiler: domain.CompilerJavac, Classpath: []string{"Y.jar"}}
	release := domain.Variant{Name: "release", Compiler: domain.CompilerJavac, Classpath: []string{"X.jar"}}
	staging := domain.Variant{Name: "releaseStaging", Compiler: domain.CompilerJavac, Classpath: []string{"Z.jar"}}

	orders := map[string][]domain.Variant{
		"debug first":   {debug, release, staging},
		"release first": {release, staging, debug},
	}

	for name, variants := range orders {
		t.Run(name, func(t *testing.T) {
			p := newProject(domain.DocletStandard, &domain.AndroidExtension{
				Kind:       domain.ExtensionLibrary,
				SourceSets: map[string]*domain.SourceSet{domain.MainSourceSet: mainSourceSet()},
				BootJars:   []string{"/sdk/android.jar"},
				Variants:   variants,
			})
			require.NoError(t, apply(t, p))

			doc := javadocTask(t, p)
			assert.Equal(t, []string{"/sdk/android.jar", "X.jar"}, doc.Classpath)
			assert.NotContains(t, doc.Classpath, "Y.jar")
			assert.NotContains(t, doc.Classpath, "Z.jar")
		})
	}
}

func TestPlugin_ClasspathCapabilities(t *testing.T) {
	release := domain.Variant{Name: "release", Compiler: domain.CompilerJavac, Classpath: []string{"X.jar"}}

	tests := []struct {
		name     string
		ext      *domain.AndroidExtension
		expected []string
	}{
		{
			name:     "application has boot classpath but no variants",
			ext:      &domain.AndroidExtension{Kind: domain.ExtensionApplication, BootJars: []string{"boot.jar"}, Variants: []domain.Variant{release}},
			expected: []string{"boot.jar"},
		},
		{
			name:     "minimal has neither",
			ext:      &domain.AndroidExtension{Kind: domain.ExtensionMinimal, BootJars: []string{"boot.jar"}, Variants: []domain.Variant{release}},
			expected: nil,
		},
		{
			name: "kotlin release variant does not contribute",
			ext: &domain.AndroidExtension{
				Kind:     domain.ExtensionLibrary,
				BootJars: []string{"boot.jar"},
				Variants: []domain.Variant{{Name: "release", Compiler: domain.CompilerKotlinc, Classpath: []string{"X.jar"}}},
			},
			expected: []string{"boot.jar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.ext.SourceSets = map[string]*domain.SourceSet{domain.MainSourceSet: mainSourceSet()}
			p := newProject(domain.DocletStandard, tt.ext)
			require.NoError(t, apply(t, p))
			assert.Equal(t, tt.expected, javadocTask(t, p).Classpath)
		})
	}
}

func TestPlugin_ConfigurationErrors(t *testing.T) {
	t.Run("missing extension", func(t *testing.T) {
		p := newProject(domain.DocletStandard, nil)
		err := apply(t, p)
		require.ErrorContains(t, err, domain.ErrExtensionNotFound.Error())
		assert.Empty(t, p.Tasks())
	})

	t.Run("incompatible extension", func(t *testing.T) {
		p := newProject(domain.DocletStandard, nil)
		p.AddExtension(domain.AndroidExtensionName, "not a build configuration")
		err := apply(t, p)
		require.ErrorContains(t, err, domain.ErrIncompatibleExtension.Error())
		assert.Empty(t, p.Tasks())
	})

	t.Run("missing main source set", func(t *testing.T) {
		p := newProject(domain.DocletStandard, &domain.AndroidExtension{
			Kind:       domain.ExtensionLibrary,
			SourceSets: map[string]*domain.SourceSet{"test": {Name: "test"}},
		})
		err := apply(t, p)
		require.ErrorContains(t, err, domain.ErrSourceSetNotFound.Error())
		assert.Empty(t, p.Tasks())
	})

	t.Run("task name taken", func(t *testing.T) {
		p := newProject(domain.DocletStandard, &domain.AndroidExtension{
			Kind:       domain.ExtensionLibrary,
			SourceSets: map[string]*domain.SourceSet{domain.MainSourceSet: mainSourceSet()},
		})
		_, err := p.RegisterTask(androidarchive.JavadocTask, domain.TaskKindJavadoc, nil)
		require.NoError(t, err)

		err = apply(t, p)
		require.ErrorContains(t, err, domain.ErrTaskAlreadyExists.Error())
	})
}

func TestPlugin_SecondSignalFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockProjectHost(ctrl)

	var ready func(context.Context, ports.ProjectHost) error
	host.EXPECT().Logger().Return(slog.New(slog.DiscardHandler))
	host.EXPECT().AfterEvaluate(gomock.Any()).Do(func(fn func(context.Context, ports.ProjectHost) error) {
		ready = fn
	})

	require.NoError(t, androidarchive.New().Apply(host))
	require.NotNil(t, ready)

	p := newProject(domain.DocletStandard, library())

	require.NoError(t, ready(t.Context(), p))
	require.ErrorContains(t, ready(t.Context(), p), domain.ErrAlreadyConfigured.Error())
	assert.Len(t, p.Tasks(), 3, "a second signal must not register tasks again")
}

func TestPlugin_AppliesToSeveralProjects(t *testing.T) {
	plugin := androidarchive.New()

	first := newProject(domain.DocletStandard, library())
	second := newProject(domain.DocletStandard, library())

	require.NoError(t, plugin.Apply(first))
	require.NoError(t, plugin.Apply(second))
	require.NoError(t, first.Evaluate(t.Context()))
	require.NoError(t, second.Evaluate(t.Context()))

	assert.Len(t, first.Tasks(), 3)
	assert.Len(t, second.Tasks(), 3)
	assert.Len(t, second.Artifacts(domain.ArchivesBucket), 2)
}

func TestPlugin_LogsEachStepToProjectLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockHostLogger(ctrl)
	log.EXPECT().Enabled(gomock.Any(), slog.LevelInfo).Return(true).AnyTimes()

	gomock.InOrder(
		log.EXPECT().Log(gomock.Any(), slog.LevelInfo, "[android-archive] create androidSourcesJar task"),
		log.EXPECT().Log(gomock.Any(), slog.LevelInfo, "[android-archive] create androidJavadoc task"),
		log.EXPECT().Log(gomock.Any(), slog.LevelInfo, "[android-archive] create androidJavadocJar task"),
		log.EXPECT().Log(gomock.Any(), slog.LevelInfo, "[android-archive] add archives to archives of mylib"),
	)

	p := newProjectWithLogger(domain.DocletStandard, library(), log)
	require.NoError(t, apply(t, p))
}
