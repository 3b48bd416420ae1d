package domain

const (
	// AttrTaskKind is the span attribute carrying the task kind. Only task spans set it.
	AttrTaskKind = "task.kind"
	// AttrTaskStatus is the span attribute carrying the final TaskStatus.
	AttrTaskStatus = "task.status"
	// AttrTaskInputHash is the span attribute carrying the task input hash.
	AttrTaskInputHash = "task.input_hash"
)
