package domain

// Command is an external process invocation.
type Command struct {
	Name string
	Args []string
	Dir  string
	Env  map[string]string
}
