package domcmp

import (
	"maps"
	"slices"

	"github.com/pthm/domcmp/lib/dom"
)

// ID addresses a component inside its engine.
type ID int

// NoID is the parent of a root component.
const NoID ID = -1

// ActionID identifies one callback registered with AddAction.
type ActionID uint64

// Config declares a component. Only these fields exist; there is no
// free-form option bag.
//
//	cart := domcmp.Config{
//	    Name:     "cart",
//	    Selector: "#cart",
//	    Init: func(e *domcmp.Engine, c *domcmp.Component) {
//	        c.On("cart:changed", func(data any) { c.Set("dirty", true) })
//	    },
//	    Actions: map[string][]domcmp.ActionFunc{
//	        "save": {saveCart},
//	    },
//	    Children: []domcmp.Config{lineItems},
//	}
type Config struct {
	// Name must be unique among siblings (or among roots).
	Name string

	// Selector, when set, must match at least one element for the
	// component to activate. Without a selector the component inherits
	// its parent's elements.
	Selector string

	// Guard is evaluated after the selector check. Nil always passes.
	Guard Guard

	// Init runs on activation, Remove when the component is disabled.
	// Missing hooks log a warning and do nothing.
	Init   Hook
	Remove Hook

	// Actions maps data-action names to callbacks, run in slice order.
	Actions map[string][]ActionFunc

	// Children activate after this component, in declaration order.
	Children []Config

	// Data seeds the component's state bag.
	Data map[string]any
}

type actionEntry struct {
	id ActionID
	fn ActionFunc
}

// Component is a registered unit of UI behavior.
//
// Components live in an engine arena and refer to their parent and
// children by ID. They are only created by Engine.Register and
// Component.AddChild.
type Component struct {
	id       ID
	parent   ID
	name     string
	path     string
	selector string

	guard  Guard
	init   Hook
	remove Hook

	actions    map[string][]actionEntry
	nextAction ActionID

	children   []ID
	childNames map[string]ID

	engine   *Engine
	enabled  bool
	elements *dom.Selection
	data     map[string]any
}

// ID returns the component's arena id.
func (c *Component) ID() ID { return c.id }

// Name returns the component's name.
func (c *Component) Name() string { return c.name }

// Path returns the slash-joined names from the root to this component.
func (c *Component) Path() string { return c.path }

// Selector returns the declared selector, or "".
func (c *Component) Selector() string { return c.selector }

// Enabled reports whether the component is active.
func (c *Component) Enabled() bool { return c.enabled }

// Elements returns the bound elements. It is non-nil only while enabled.
func (c *Component) Elements() *dom.Selection { return c.elements }

// Engine returns the owning engine, or nil once the component is removed.
func (c *Component) Engine() *Engine { return c.engine }

// Parent returns the parent component, or nil for roots.
func (c *Component) Parent() *Component {
	if c.engine == nil || c.parent == NoID {
		return nil
	}
	return c.engine.Lookup(c.parent)
}

// Children returns the child components in declaration order.
func (c *Component) Children() []*Component {
	if c.engine == nil {
		return nil
	}
	out := make([]*Component, 0, len(c.children))
	for _, id := range c.children {
		if child := c.engine.Lookup(id); child != nil {
			out = append(out, child)
		}
	}
	return out
}

// Child resolves a direct child by name.
func (c *Component) Child(name string) *Component {
	id, ok := c.childNames[name]
	if !ok || c.engine == nil {
		return nil
	}
	return c.engine.Lookup(id)
}

// Get reads a value from the component's state bag.
func (c *Component) Get(key string) (any, bool) {
	v, ok := c.data[key]
	return v, ok
}

// Set stores a value in the component's state bag.
func (c *Component) Set(key string, v any) {
	c.data[key] = v
}

// Data returns a copy of the state bag.
func (c *Component) Data() map[string]any {
	return maps.Clone(c.data)
}

// AddAction registers fn under an action name. Callbacks for one name run
// in registration order.
func (c *Component) AddAction(name string, fn ActionFunc) ActionID {
	c.nextAction++
	c.actions[name] = append(c.actions[name], actionEntry{id: c.nextAction, fn: fn})
	return c.nextAction
}

// RemoveAction unregisters a callback. It reports false when the name has
// no callbacks or the id is unknown.
func (c *Component) RemoveAction(name string, id ActionID) bool {
	list, ok := c.actions[name]
	if !ok {
		return false
	}
	i := slices.IndexFunc(list, func(a actionEntry) bool { return a.id == id })
	if i < 0 {
		return false
	}
	list = slices.Delete(list, i, i+1)
	if len(list) == 0 {
		delete(c.actions, name)
	} else {
		c.actions[name] = list
	}
	return true
}

// HasAction reports whether any callback is registered under name.
func (c *Component) HasAction(name string) bool {
	return len(c.actions[name]) > 0
}

// ExecuteAction runs this component's callbacks for name and then
// broadcasts to every descendant, parents before children. It returns the
// number of callbacks invoked.
func (c *Component) ExecuteAction(name string, el *dom.Element) int {
	if c.engine == nil {
		return 0
	}
	return c.engine.executeAction(c, name, el)
}

// On subscribes fn to an engine event. The listener is owned by the
// component and is dropped when the component is disabled.
func (c *Component) On(event string, fn Listener) ListenerID {
	if c.engine == nil {
		return 0
	}
	return c.engine.bus.add(event, c.id, fn)
}

// Emit dispatches an event through the owning engine.
func (c *Component) Emit(event string, data any) {
	if c.engine != nil {
		c.engine.DispatchEvent(event, data)
	}
}

// AddChild registers a child component at runtime. If this component is
// enabled on an initialized engine the child is activated immediately.
func (c *Component) AddChild(cfg Config) (*Component, error) {
	if c.engine == nil {
		return nil, ErrNotFound
	}
	return c.engine.registerChild(c, cfg)
}
