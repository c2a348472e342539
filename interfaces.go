package domcmp

import "github.com/pthm/domcmp/lib/dom"

// Document is the element query collaborator an Engine binds components to.
// *dom.Document is the standard implementation.
//
// Query resolves component selectors during activation. On installs the
// delegated click and change handlers of the action dispatcher.
type Document interface {
	Query(selector string) *dom.Selection
	On(eventType, selector string, handler dom.Handler)
}

// Guard decides whether a component may activate. It is evaluated after the
// component's selector (if any) has matched.
type Guard func(e *Engine) bool

// Hook is a lifecycle callback: Init runs on activation, Remove on disable.
type Hook func(e *Engine, c *Component)

// ActionFunc handles a data-action broadcast. el is the element that
// declared the action.
type ActionFunc func(el *dom.Element, c *Component)

// Listener receives the data passed to DispatchEvent.
type Listener func(data any)
