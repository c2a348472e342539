package components

import (
	"github.com/a-h/templ"

	"github.com/pthm/domcmp"
	"github.com/pthm/domcmp/lib/dom"
)

// Sidebar turns changes of the status filter into EventFilter.
func Sidebar() domcmp.Config {
	return domcmp.Config{
		Name:     "sidebar",
		Selector: "#sidebar",
		Init:     func(e *domcmp.Engine, c *domcmp.Component) {},
		Remove:   func(e *domcmp.Engine, c *domcmp.Component) {},
		Actions: map[string][]domcmp.ActionFunc{
			"filter": {func(el *dom.Element, c *domcmp.Component) {
				status, _ := el.Data("status")
				c.Emit(EventFilter, status)
			}},
		},
	}
}

// FilterAttrs returns the attributes for the status filter control.
func FilterAttrs(status Status) templ.Attributes {
	attrs := domcmp.Action("filter").OnChange().Attrs()
	attrs["data-status"] = string(status)
	return attrs
}
