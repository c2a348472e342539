package components

import (
	"log/slog"

	"github.com/a-h/templ"

	"github.com/pthm/domcmp"
	"github.com/pthm/domcmp/lib/dom"
)

// TodoItem handles toggle and delete clicks on .todo rows. It inherits no
// elements from the list; the rows are its own selector.
func TodoItem(store TodoStore, enc *domcmp.Encoder) domcmp.Config {
	withRef := func(fn func(id string) bool) domcmp.ActionFunc {
		return func(el *dom.Element, c *domcmp.Component) {
			var ref todoRef
			if err := domcmp.DecodePayload(enc, el, &ref); err != nil {
				slog.Warn("todo action without valid payload", "element", el.ID(), "error", err)
				return
			}
			if !fn(ref.ID) {
				slog.Warn("todo not found", "todo", ref.ID)
				return
			}
			c.Emit(EventChanged, ref.ID)
		}
	}

	return domcmp.Config{
		Name:     "item",
		Selector: ".todo",
		Init:     func(e *domcmp.Engine, c *domcmp.Component) {},
		Remove:   func(e *domcmp.Engine, c *domcmp.Component) {},
		Actions: map[string][]domcmp.ActionFunc{
			"toggle": {withRef(store.Toggle)},
			"delete": {withRef(store.Delete)},
		},
	}
}

// ToggleAttrs returns the attributes for a todo's toggle button.
func ToggleAttrs(enc *domcmp.Encoder, id string) (templ.Attributes, error) {
	b := domcmp.Action("toggle").Payload(enc, todoRef{ID: id})
	return b.Attrs(), b.Err()
}

// DeleteAttrs returns the attributes for a todo's delete button.
func DeleteAttrs(enc *domcmp.Encoder, id string) (templ.Attributes, error) {
	b := domcmp.Action("delete").SealedPayload(enc, todoRef{ID: id})
	return b.Attrs(), b.Err()
}
