// Package domcmp provides a small component system for HTML front ends.
//
// Components are named units of behavior bound to the elements of a
// document. Each component declares an optional selector, a guard, init and
// remove hooks, named action callbacks and child components. An Engine
// activates components, runs their hooks, carries events between them and
// routes element actions to them.
//
// # Core Concepts
//
// Components are declared with a Config and registered with an Engine:
//
//	doc, _ := dom.ParseString(page)
//	e := domcmp.New(doc)
//	e.Register(domcmp.Config{
//	    Name:     "cart",
//	    Selector: "#cart",
//	    Init:     func(e *domcmp.Engine, c *domcmp.Component) { ... },
//	    Remove:   func(e *domcmp.Engine, c *domcmp.Component) { ... },
//	})
//	e.Init()
//
// Activation checks the selector (at least one element must match), then
// the guard. When both pass the component's Init hook runs, the component
// is enabled, and its children are activated in declaration order. A child
// without a selector inherits its parent's elements. A failed check leaves
// the component and its subtree inactive without side effects.
//
// Registration order is activation order. Names are unique among siblings;
// a duplicate registration is logged and dropped.
//
// # Events
//
// The engine carries a single event bus. Listeners run synchronously in
// registration order:
//
//	c.On("cart:changed", func(data any) { ... })  // owned by c
//	e.AddEventListener("ready", fn)               // no owner
//	e.DispatchEvent("cart:changed", item)
//
// Events dispatched before Init are queued and delivered, in order and
// exactly once, right after every component has had its activation attempt.
// Disabling a component drops every listener it owns.
//
// # Actions
//
// Elements declare actions with data attributes:
//
//	<button data-action="save">Save</button>              fires on click
//	<select data-action="qty" data-trigger="change">      fires on change
//
// After Init the engine installs one delegated click handler and one
// delegated change handler on the document. A fired action is broadcast to
// the whole component tree: every component with callbacks registered under
// the name runs them, parents before children. The Action builder produces
// these attributes for templ templates, optionally with a signed or sealed
// payload the callback reads back with DecodePayload.
//
// # Concurrency
//
// An Engine is single-threaded by contract. Guards, hooks, listeners and
// actions all complete before the call that triggered them returns.
// Engines are independent values; tests can run many side by side.
package domcmp
