package components

import (
	"github.com/pthm/domcmp"
)

// TodoList binds to the #todos list. It tracks the active filter and
// owns the per-item component.
func TodoList(store TodoStore, enc *domcmp.Encoder) domcmp.Config {
	return domcmp.Config{
		Name:     "todolist",
		Selector: "#todos",
		Init: func(e *domcmp.Engine, c *domcmp.Component) {
			c.On(EventFilter, func(data any) {
				status, _ := data.(string)
				c.Set("filter", status)
				var filter *Status
				if status != "" {
					s := Status(status)
					filter = &s
				}
				c.Set("visible", len(store.List(filter)))
			})
		},
		Remove:   func(e *domcmp.Engine, c *domcmp.Component) {},
		Data:     map[string]any{"filter": ""},
		Children: []domcmp.Config{TodoItem(store, enc)},
	}
}

// VisibleCount returns how many todos matched the last filter.
func VisibleCount(c *domcmp.Component) int {
	n, _ := c.Get("visible")
	v, _ := n.(int)
	return v
}
