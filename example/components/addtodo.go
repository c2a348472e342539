package components

import (
	"github.com/a-h/templ"

	"github.com/pthm/domcmp"
	"github.com/pthm/domcmp/lib/dom"
)

// AddTodo creates todos from the title sealed into the add button.
func AddTodo(store TodoStore, enc *domcmp.Encoder) domcmp.Config {
	return domcmp.Config{
		Name:     "addtodo",
		Selector: "#add",
		Init:     func(e *domcmp.Engine, c *domcmp.Component) {},
		Remove:   func(e *domcmp.Engine, c *domcmp.Component) {},
		Actions: map[string][]domcmp.ActionFunc{
			"add": {func(el *dom.Element, c *domcmp.Component) {
				var in newTodo
				if err := domcmp.DecodePayload(enc, el, &in); err != nil || in.Title == "" {
					return
				}
				c.Emit(EventChanged, store.Add(in.Title))
			}},
		},
	}
}

// AddAttrs returns the attributes for a button that adds title.
func AddAttrs(enc *domcmp.Encoder, title string) (templ.Attributes, error) {
	b := domcmp.Action("add").Payload(enc, newTodo{Title: title})
	return b.Attrs(), b.Err()
}
