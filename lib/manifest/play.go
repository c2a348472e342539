package manifest

import (
	"fmt"
	"strings"

	"github.com/pthm/domcmp"
	"github.com/pthm/domcmp/lib/dom"
)

// Configs converts the declared components to engine configs.
//
// Listeners and actions do nothing beyond being observable through the
// engine trace, except that an action with an emits entry dispatches the
// named event with the element id as data.
func (m *Manifest) Configs() []domcmp.Config {
	out := make([]domcmp.Config, 0, len(m.Components))
	for _, c := range m.Components {
		out = append(out, c.config())
	}
	return out
}

func (c Component) config() domcmp.Config {
	cfg := domcmp.Config{
		Name:     c.Name,
		Selector: c.Selector,
		Guard:    c.guard(),
		Init:     c.init,
		Remove:   func(*domcmp.Engine, *domcmp.Component) {},
		Data:     c.Data,
	}
	if len(c.Actions) > 0 {
		cfg.Actions = make(map[string][]domcmp.ActionFunc, len(c.Actions))
		for _, name := range c.Actions {
			cfg.Actions[name] = append(cfg.Actions[name], actionFunc(c.Emits[name]))
		}
	}
	for _, child := range c.Children {
		cfg.Children = append(cfg.Children, child.config())
	}
	return cfg
}

func (c Component) init(_ *domcmp.Engine, comp *domcmp.Component) {
	for _, event := range c.Listen {
		comp.On(event, func(any) {})
	}
}

func (c Component) guard() domcmp.Guard {
	if !c.Disabled && len(c.Requires) == 0 {
		return nil
	}
	return func(e *domcmp.Engine) bool {
		if c.Disabled {
			return false
		}
		for _, path := range c.Requires {
			dep := Resolve(e, path)
			if dep == nil || !dep.Enabled() {
				return false
			}
		}
		return true
	}
}

func actionFunc(emit string) domcmp.ActionFunc {
	return func(el *dom.Element, c *domcmp.Component) {
		if emit != "" {
			c.Emit(emit, el.ID())
		}
	}
}

// Resolve finds a component by slash-separated path ("cart/items").
func Resolve(e *domcmp.Engine, path string) *domcmp.Component {
	names := strings.Split(path, "/")
	c := e.Get(names[0])
	for _, name := range names[1:] {
		if c == nil {
			return nil
		}
		c = c.Child(name)
	}
	return c
}

// Play registers the components, dispatches the before events, initializes
// the engine and runs every step in order. Registration conflicts are left
// to the engine's diagnostics; the first failing step aborts the run.
func (m *Manifest) Play(e *domcmp.Engine, doc *dom.Document) error {
	for _, cfg := range m.Configs() {
		_, _ = e.Register(cfg)
	}
	for _, ev := range m.Before {
		e.DispatchEvent(ev.Name, ev.Data)
	}
	if err := e.Init(); err != nil {
		return fmt.Errorf("manifest: init: %w", err)
	}
	for i, s := range m.Steps {
		if err := s.run(e, doc); err != nil {
			return fmt.Errorf("manifest: steps[%d]: %w", i, err)
		}
	}
	return nil
}

func (s Step) run(e *domcmp.Engine, doc *dom.Document) error {
	switch {
	case s.Click != "":
		_, err := doc.Click(s.Click)
		return err
	case s.Change != "":
		_, err := doc.Change(s.Change)
		return err
	case s.Dispatch != nil:
		e.DispatchEvent(s.Dispatch.Name, s.Dispatch.Data)
		return nil
	case s.Enable != "":
		return withComponent(e, s.Enable, e.EnableComponent)
	case s.Disable != "":
		return withComponent(e, s.Disable, e.DisableComponent)
	case s.Remove != "":
		return withComponent(e, s.Remove, e.RemoveComponent)
	}
	return ErrInvalidStep
}

func withComponent(e *domcmp.Engine, path string, fn func(*domcmp.Component) error) error {
	c := Resolve(e, path)
	if c == nil {
		return fmt.Errorf("%w: %q", domcmp.ErrNotFound, path)
	}
	return fn(c)
}
