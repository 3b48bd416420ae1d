package domain

import "path/filepath"

const (
	// StateDirName is the name of the internal project state directory.
	StateDirName = ".droidpack"

	// StoreDirName is the name of the build info store directory.
	StoreDirName = "store"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "droidpack.yaml"

	// DefaultBuildDirName is the build directory used when the configuration does not set one.
	DefaultBuildDirName = "build"

	// LibsDirName is the directory below the build dir that receives archives.
	LibsDirName = "libs"

	// JavadocDirName is the directory below the build dir that receives generated docs.
	JavadocDirName = "docs/javadoc"

	// ArchivesBucket is the conventional artifact bucket consumed by publishing.
	ArchivesBucket = "archives"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStorePath returns the build info store path below root.
func DefaultStorePath(root string) string {
	return filepath.Join(root, StateDirName, StoreDirName)
}

// DefaultLibsPath returns the directory archives are written to.
func DefaultLibsPath(buildDir string) string {
	return filepath.Join(buildDir, LibsDirName)
}

// DefaultJavadocPath returns the directory javadoc output is written to.
func DefaultJavadocPath(buildDir string) string {
	return filepath.Join(buildDir, filepath.FromSlash(JavadocDirName))
}
