package domain

import "go.trai.ch/zerr"

var (
	// ErrTaskAlreadyExists is returned when attempting to register a task with a name that already exists.
	ErrTaskAlreadyExists = zerr.New("task already exists")

	// ErrTaskNotFound is returned when a requested task is not registered on the project.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrCycleDetected is returned when a task dependency would close a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrInvalidTaskName is returned when a task name is empty or contains invalid characters.
	ErrInvalidTaskName = zerr.New("invalid task name")

	// ErrUnknownTaskKind is returned when a task kind has no executor.
	ErrUnknownTaskKind = zerr.New("unknown task kind")

	// ErrNoTargetsSpecified is returned when no targets are specified for the run command.
	ErrNoTargetsSpecified = zerr.New("no targets specified")

	// ErrAlreadyEvaluated is returned when a project is evaluated more than once.
	ErrAlreadyEvaluated = zerr.New("project already evaluated")

	// ErrNotEvaluated is returned when tasks are requested before the project was evaluated.
	ErrNotEvaluated = zerr.New("project not evaluated")

	// ErrAlreadyConfigured is returned when a plugin receives the configuration-ready signal twice.
	ErrAlreadyConfigured = zerr.New("configuration ready signal delivered twice")

	// ErrExtensionNotFound is returned when a project does not expose a required extension.
	ErrExtensionNotFound = zerr.New("extension not found")

	// ErrIncompatibleExtension is returned when an extension does not provide the expected capabilities.
	ErrIncompatibleExtension = zerr.New("incompatible extension")

	// ErrSourceSetNotFound is returned when a named source set is missing from the build configuration.
	ErrSourceSetNotFound = zerr.New("source set not found")

	// ErrUnknownPlugin is returned when the configuration references a plugin that is not registered.
	ErrUnknownPlugin = zerr.New("unknown plugin")

	// ErrInvalidExtensionKind is returned when the android extension kind is not recognized.
	ErrInvalidExtensionKind = zerr.New("invalid android extension kind, expected 'application', 'library' or 'minimal'")

	// ErrInvalidCompiler is returned when a variant declares an unknown compiler.
	ErrInvalidCompiler = zerr.New("invalid compiler, expected 'javac' or 'kotlinc'")

	// ErrInvalidDoclet is returned when the javadoc doclet is not recognized.
	ErrInvalidDoclet = zerr.New("invalid doclet, expected 'standard' or 'minimal'")

	// ErrMissingProjectName is returned when the configuration does not name the project.
	ErrMissingProjectName = zerr.New("missing project name")

	// ErrInvalidProjectName is returned when a project name is invalid.
	ErrInvalidProjectName = zerr.New("project name can only contain alphanumeric characters, dots, hyphens and underscores")

	// ErrConfigNotFound is returned when no droidpack.yaml can be found.
	ErrConfigNotFound = zerr.New("could not find droidpack.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrSourceDirNotFound is returned when a declared source directory does not exist.
	ErrSourceDirNotFound = zerr.New("source directory not found")

	// ErrStoreCreateFailed is returned when the build info store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create build info store directory")

	// ErrStoreReadFailed is returned when the build info cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build info")

	// ErrStoreUnmarshalFailed is returned when the build info cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build info")

	// ErrStoreMarshalFailed is returned when the build info cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build info")

	// ErrStoreWriteFailed is returned when the build info cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build info")

	// ErrArchiveCreateFailed is returned when an archive file cannot be created.
	ErrArchiveCreateFailed = zerr.New("failed to create archive")

	// ErrArchiveEntryFailed is returned when a file cannot be added to an archive.
	ErrArchiveEntryFailed = zerr.New("failed to add archive entry")

	// ErrJavadocFailed is returned when the javadoc tool exits with an error.
	ErrJavadocFailed = zerr.New("javadoc generation failed")

	// ErrCommandFailed is returned when an external command exits with a non-zero status.
	ErrCommandFailed = zerr.New("command failed")

	// ErrBuildExecutionFailed is returned when the build execution fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrTaskExecutionFailed is returned when a task execution fails.
	ErrTaskExecutionFailed = zerr.New("task execution failed")

	// ErrInputHashComputationFailed is returned when input hash computation fails.
	ErrInputHashComputationFailed = zerr.New("failed to compute input hash")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")
)
