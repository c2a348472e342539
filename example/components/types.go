package components

// Status is the completion state of a todo.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Todo is a single task.
type Todo struct {
	ID     string
	Title  string
	Status Status
}

// TodoStats summarizes the store.
type TodoStats struct {
	Total     int
	Completed int
	Pending   int
}

// TodoStore is the persistence the components act on.
type TodoStore interface {
	Add(title string) string
	Toggle(id string) bool
	Delete(id string) bool
	List(status *Status) []*Todo
	Stats() TodoStats
}

// Events emitted between components.
const (
	EventReady   = "app:ready"
	EventChanged = "todos:changed"
	EventFilter  = "todos:filter"
)

// todoRef is the payload carried by item actions.
type todoRef struct {
	ID string `msgpack:"id"`
}

// newTodo is the payload carried by the add action.
type newTodo struct {
	Title string `msgpack:"title"`
}
