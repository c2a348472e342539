package domcmp

import (
	"slices"

	"github.com/pthm/domcmp/lib/dom"
)

// Delegate selectors for the action dispatcher. Elements without
// data-trigger fire on click; data-trigger="change" moves them to change.
const (
	ClickSelector  = "[data-action]:not([data-trigger])"
	ChangeSelector = `[data-action][data-trigger="change"]`
)

// installDispatcher binds the document-level click and change delegates.
// It runs at most once per engine, after the deferred queue is flushed, so
// DOM actions can never overtake deferred events.
func (e *Engine) installDispatcher() {
	if e.dispatcher || e.doc == nil {
		return
	}
	e.doc.On(dom.EventClick, ClickSelector, e.handleAction)
	e.doc.On(dom.EventChange, ChangeSelector, e.handleAction)
	e.dispatcher = true
	e.log.Debug("action dispatcher installed", "engine", e.id)
}

func (e *Engine) handleAction(el *dom.Element) {
	name, ok := el.Data(AttrAction)
	if !ok || name == "" {
		return
	}
	n := e.ExecuteAction(name, el)
	e.log.Debug("action dispatched", "engine", e.id, "action", name, "element", el.ID(), "callbacks", n)
}

// ExecuteAction broadcasts an action to every root component in
// registration order and, through them, to the whole component tree.
// It returns the number of callbacks invoked.
func (e *Engine) ExecuteAction(name string, el *dom.Element) int {
	n := 0
	for _, id := range slices.Clone(e.roots) {
		if c := e.Lookup(id); c != nil {
			n += e.executeAction(c, name, el)
		}
	}
	return n
}

// executeAction runs c's callbacks for name, then recurses into every child
// whether or not c handled the action.
func (e *Engine) executeAction(c *Component, name string, el *dom.Element) int {
	n := 0
	for _, a := range slices.Clone(c.actions[name]) {
		e.emit(TraceEvent{Kind: TraceAction, Component: c.path, Name: name, Data: elementRef(el)})
		a.fn(el, c)
		n++
	}
	for _, id := range slices.Clone(c.children) {
		if child := e.Lookup(id); child != nil {
			n += e.executeAction(child, name, el)
		}
	}
	return n
}

func elementRef(el *dom.Element) string {
	if el == nil {
		return ""
	}
	if id := el.ID(); id != "" {
		return "#" + id
	}
	return ""
}
