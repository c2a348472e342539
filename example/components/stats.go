package components

import (
	"github.com/pthm/domcmp"
)

// Stats keeps the store summary current. It refreshes on EventReady and
// after every EventChanged.
func Stats(store TodoStore) domcmp.Config {
	return domcmp.Config{
		Name:     "stats",
		Selector: "#stats",
		Init: func(e *domcmp.Engine, c *domcmp.Component) {
			refresh := func(any) { c.Set("stats", store.Stats()) }
			c.On(EventReady, refresh)
			c.On(EventChanged, refresh)
		},
		Remove: func(e *domcmp.Engine, c *domcmp.Component) {},
	}
}

// CurrentStats returns the last summary the component recorded.
func CurrentStats(c *domcmp.Component) TodoStats {
	v, _ := c.Get("stats")
	s, _ := v.(TodoStats)
	return s
}
