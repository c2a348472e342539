package components

import (
	"github.com/pthm/domcmp"
)

// Init registers every example component on e. Call it before e.Init.
func Init(e *domcmp.Engine, store TodoStore, enc *domcmp.Encoder) error {
	for _, cfg := range []domcmp.Config{
		TodoList(store, enc),
		Sidebar(),
		AddTodo(store, enc),
		Stats(store),
	} {
		if _, err := e.Register(cfg); err != nil {
			return err
		}
	}
	return nil
}
