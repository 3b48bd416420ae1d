package domain

// ProjectSpec is the loaded description of a project, before plugins are applied.
type ProjectSpec struct {
	Name        string
	Version     string
	Dir         string
	BuildDir    string
	Plugins     []string
	JavadocTool string
	Doclet      Doclet
	Android     *AndroidExtension
}
