package config

// Configfile represents the structure of the droidpack.yaml configuration file.
type Configfile struct {
	Version        string      `yaml:"version"`
	Project        string      `yaml:"project"`
	ProjectVersion string      `yaml:"projectVersion"`
	BuildDir       string      `yaml:"buildDir"`
	Plugins        []string    `yaml:"plugins"`
	Javadoc        JavadocDTO  `yaml:"javadoc"`
	Android        *AndroidDTO `yaml:"android"`
}

// JavadocDTO configures the javadoc tool.
type JavadocDTO struct {
	Tool   string `yaml:"tool"`
	Doclet string `yaml:"doclet"`
}

// AndroidDTO represents the android build configuration.
type AndroidDTO struct {
	Kind          string                   `yaml:"kind"`
	BootClasspath []string                 `yaml:"bootClasspath"`
	SourceSets    map[string]*SourceSetDTO `yaml:"sourceSets"`
	Variants      []VariantDTO             `yaml:"variants"`
}

// SourceSetDTO lists the java source directories of a source set.
type SourceSetDTO struct {
	Java []string `yaml:"java"`
}

// VariantDTO represents a build variant.
type VariantDTO struct {
	Name      string   `yaml:"name"`
	Compiler  string   `yaml:"compiler"`
	Classpath []string `yaml:"classpath"`
}
