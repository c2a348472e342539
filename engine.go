package domcmp

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/pthm/domcmp/lib/dom"
)

// Engine owns a set of components bound to one document.
//
// An engine is not safe for concurrent use. All callbacks (guards, hooks,
// listeners and actions) run synchronously on the caller's goroutine.
// Independent engines share no state.
type Engine struct {
	id      string
	doc     Document
	log     *slog.Logger
	tracers []func(TraceEvent)
	strict  bool

	nodes []*Component // arena; removed slots are nil
	roots []ID
	names map[string]ID

	bus         *bus
	deferred    []deferredEvent
	initialized bool
	dispatcher  bool
}

// New creates an engine bound to doc. doc may be nil, in which case
// components with a selector never activate and no action dispatcher is
// installed.
func New(doc Document, opts ...Option) *Engine {
	e := &Engine{
		id:    uuid.NewString(),
		doc:   doc,
		log:   slog.Default(),
		names: make(map[string]ID),
		bus:   newBus(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ID returns the engine's instance id, used to correlate log lines.
func (e *Engine) ID() string { return e.id }

// Initialized reports whether Init has completed.
func (e *Engine) Initialized() bool { return e.initialized }

// Init activates every registered component in registration order, marks
// the engine initialized, delivers deferred events and installs the action
// dispatcher.
//
// Components registered by init hooks during the pass are activated in the
// same pass. A guard or selector failure only skips that component. Under
// WithStrictSelectors a root without a selector aborts Init with
// ErrMissingSelector and the engine stays uninitialized.
func (e *Engine) Init() error {
	if e.initialized {
		return ErrAlreadyInitialized
	}

	seen := make(map[ID]bool)
	for {
		var pending []ID
		for _, id := range e.roots {
			if !seen[id] {
				pending = append(pending, id)
			}
		}
		if len(pending) == 0 {
			break
		}
		for _, id := range pending {
			seen[id] = true
			c := e.Lookup(id)
			if c == nil || c.enabled {
				continue
			}
			if _, err := e.activate(c, nil); err != nil {
				e.log.Error("engine init aborted", "engine", e.id, "error", err)
				return err
			}
		}
	}

	e.initialized = true
	e.log.Debug("engine initialized", "engine", e.id, "components", len(e.roots), "deferred", len(e.deferred))
	e.flush()
	e.installDispatcher()
	return nil
}

// activate runs the activation protocol on c and then on its children.
// inherited is the parent's bound elements. It reports whether c was
// enabled.
func (e *Engine) activate(c *Component, inherited *dom.Selection) (bool, error) {
	elems := inherited
	switch {
	case c.selector != "":
		sel := e.query(c.selector)
		if sel.Len() == 0 {
			e.reject(c, "selector")
			return false, nil
		}
		elems = sel
	case e.strict && c.parent == NoID:
		return false, fmt.Errorf("%w: %q", ErrMissingSelector, c.path)
	}

	if c.guard != nil && !c.guard(e) {
		e.reject(c, "guard")
		return false, nil
	}

	if elems == nil {
		elems = &dom.Selection{}
	}
	c.elements = elems
	c.init(e, c)
	c.enabled = true
	e.log.Debug("component enabled", "engine", e.id, "component", c.path, "elements", elems.Len())
	e.emit(TraceEvent{Kind: TraceEnable, Component: c.path})

	for _, id := range slices.Clone(c.children) {
		child := e.Lookup(id)
		if child == nil || child.enabled {
			continue
		}
		if _, err := e.activate(child, elems); err != nil {
			return true, err
		}
	}
	return true, nil
}

func (e *Engine) reject(c *Component, reason string) {
	e.log.Debug("component not activated", "engine", e.id, "component", c.path, "reason", reason)
	e.emit(TraceEvent{Kind: TraceReject, Component: c.path, Name: reason})
}

func (e *Engine) query(selector string) *dom.Selection {
	if e.doc == nil {
		return nil
	}
	return e.doc.Query(selector)
}

// Enable activates a root component by name if it is not already enabled.
func (e *Engine) Enable(name string) error {
	c := e.Get(name)
	if c == nil {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return e.EnableComponent(c)
}

// EnableComponent activates c if it is not already enabled. A child
// inherits its parent's elements when the parent is enabled.
func (e *Engine) EnableComponent(c *Component) error {
	if !e.owns(c) {
		return ErrNotFound
	}
	if c.enabled {
		return nil
	}
	var inherited *dom.Selection
	if p := c.Parent(); p != nil && p.enabled {
		inherited = p.elements
	}
	_, err := e.activate(c, inherited)
	return err
}

// Disable deactivates a root component by name.
func (e *Engine) Disable(name string) error {
	c := e.Get(name)
	if c == nil {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return e.DisableComponent(c)
}

// DisableComponent runs c's remove hook, clears its bound elements and
// drops every event listener it owns. Children keep their state.
func (e *Engine) DisableComponent(c *Component) error {
	if !e.owns(c) {
		return ErrNotFound
	}
	if !c.enabled {
		return nil
	}
	c.remove(e, c)
	c.enabled = false
	c.elements = nil
	n := e.bus.purge(c.id)
	e.log.Debug("component disabled", "engine", e.id, "component", c.path, "listeners", n)
	e.emit(TraceEvent{Kind: TraceDisable, Component: c.path})
	return nil
}

// Remove disables a root component and deletes it from the engine.
func (e *Engine) Remove(name string) error {
	c := e.Get(name)
	if c == nil {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return e.RemoveComponent(c)
}

// RemoveComponent disables c and deletes it, with its descendants, from the
// engine. The name becomes available for registration again.
func (e *Engine) RemoveComponent(c *Component) error {
	if !e.owns(c) {
		return ErrNotFound
	}

	if p := c.Parent(); p != nil {
		p.children = slices.DeleteFunc(p.children, func(id ID) bool { return id == c.id })
		delete(p.childNames, c.name)
	} else {
		e.roots = slices.DeleteFunc(e.roots, func(id ID) bool { return id == c.id })
		delete(e.names, c.name)
	}

	e.drop(c)
	return nil
}

func (e *Engine) drop(c *Component) {
	_ = e.DisableComponent(c)
	for _, id := range c.children {
		if child := e.Lookup(id); child != nil {
			e.drop(child)
		}
	}
	e.bus.purge(c.id)
	e.nodes[c.id] = nil
	c.engine = nil
	e.log.Debug("component removed", "engine", e.id, "component", c.path)
	e.emit(TraceEvent{Kind: TraceRemove, Component: c.path})
}
