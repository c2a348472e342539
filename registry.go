package domcmp

import "fmt"

// Register adds a root component.
//
// A name collision is reported and the new registration dropped; the
// existing component keeps the name. On an initialized engine the component
// is activated immediately, otherwise it waits for Init.
func (e *Engine) Register(cfg Config) (*Component, error) {
	if cfg.Name == "" {
		e.log.Warn("component registration without name", "engine", e.id)
		return nil, fmt.Errorf("%w: empty name", ErrInvalidConfig)
	}
	if _, exists := e.names[cfg.Name]; exists {
		e.log.Warn("component already registered", "engine", e.id, "component", cfg.Name)
		return nil, fmt.Errorf("%w: %q", ErrDuplicateComponent, cfg.Name)
	}

	c := e.build(cfg, nil)
	e.roots = append(e.roots, c.id)
	e.names[c.name] = c.id

	if e.initialized {
		if _, err := e.activate(c, nil); err != nil {
			return c, err
		}
	}
	return c, nil
}

// MustRegister is like Register but panics on error.
func (e *Engine) MustRegister(cfg Config) *Component {
	c, err := e.Register(cfg)
	if err != nil {
		panic(err)
	}
	return c
}

func (e *Engine) registerChild(parent *Component, cfg Config) (*Component, error) {
	if cfg.Name == "" {
		e.log.Warn("component registration without name", "engine", e.id, "parent", parent.path)
		return nil, fmt.Errorf("%w: empty name", ErrInvalidConfig)
	}
	if parent.hasChild(cfg.Name) {
		e.log.Warn("component already registered", "engine", e.id, "component", parent.path+"/"+cfg.Name)
		return nil, fmt.Errorf("%w: %q under %q", ErrDuplicateComponent, cfg.Name, parent.path)
	}

	c := e.build(cfg, parent)
	parent.children = append(parent.children, c.id)
	parent.childNames[c.name] = c.id

	if e.initialized && parent.enabled {
		if _, err := e.activate(c, parent.elements); err != nil {
			return c, err
		}
	}
	return c, nil
}

// build places a component and its declared children in the arena.
// Children with an empty or repeated name are reported and skipped.
func (e *Engine) build(cfg Config, parent *Component) *Component {
	c := &Component{
		id:         ID(len(e.nodes)),
		parent:     NoID,
		name:       cfg.Name,
		path:       cfg.Name,
		selector:   cfg.Selector,
		guard:      cfg.Guard,
		init:       cfg.Init,
		remove:     cfg.Remove,
		actions:    make(map[string][]actionEntry),
		childNames: make(map[string]ID),
		engine:     e,
		data:       make(map[string]any, len(cfg.Data)),
	}
	if parent != nil {
		c.parent = parent.id
		c.path = parent.path + "/" + cfg.Name
	}
	if c.init == nil {
		c.init = missingHook("init")
	}
	if c.remove == nil {
		c.remove = missingHook("remove")
	}
	for k, v := range cfg.Data {
		c.data[k] = v
	}
	for name, fns := range cfg.Actions {
		for _, fn := range fns {
			c.AddAction(name, fn)
		}
	}
	e.nodes = append(e.nodes, c)

	for _, child := range cfg.Children {
		switch {
		case child.Name == "":
			e.log.Warn("component registration without name", "engine", e.id, "parent", c.path)
			continue
		case c.hasChild(child.Name):
			e.log.Warn("component already registered", "engine", e.id, "component", c.path+"/"+child.Name)
			continue
		}
		cc := e.build(child, c)
		c.children = append(c.children, cc.id)
		c.childNames[cc.name] = cc.id
	}
	return c
}

func (c *Component) hasChild(name string) bool {
	_, ok := c.childNames[name]
	return ok
}

func missingHook(kind string) Hook {
	return func(e *Engine, c *Component) {
		e.log.Warn("component has no "+kind+" callback", "engine", e.id, "component", c.path)
	}
}

// Get resolves a root component by name. It returns nil if absent.
func (e *Engine) Get(name string) *Component {
	id, ok := e.names[name]
	if !ok {
		return nil
	}
	return e.Lookup(id)
}

// Lookup resolves any component by id. It returns nil for unknown or
// removed components.
func (e *Engine) Lookup(id ID) *Component {
	if id < 0 || int(id) >= len(e.nodes) {
		return nil
	}
	return e.nodes[id]
}

// Components returns the root components in registration order.
func (e *Engine) Components() []*Component {
	out := make([]*Component, 0, len(e.roots))
	for _, id := range e.roots {
		if c := e.Lookup(id); c != nil {
			out = append(out, c)
		}
	}
	return out
}

func (e *Engine) owns(c *Component) bool {
	return c != nil && c.engine == e && e.Lookup(c.id) == c
}
