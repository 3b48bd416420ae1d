package domain

// Artifact is a task output published into a named bucket.
type Artifact struct {
	Bucket     string
	Task       string
	File       string
	Classifier string
}
