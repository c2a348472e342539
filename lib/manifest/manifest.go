// Package manifest describes a component tree and a scripted sequence of
// page events in YAML, and plays it against a domcmp engine.
//
//	page: cart.html
//	components:
//	  - name: cart
//	    selector: "#cart"
//	    listen: [ready]
//	    actions: [save]
//	    emits: {save: cart:saved}
//	    children:
//	      - name: badge
//	        requires: [session]
//	before:
//	  - event: ready
//	    data: {user: 7}
//	steps:
//	  - click: "#save"
//	  - disable: cart
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidStep is returned for steps that set zero or several actions.
var ErrInvalidStep = errors.New("manifest: step must set exactly one action")

// Manifest is a parsed manifest file.
type Manifest struct {
	Page       string      `yaml:"page"`
	Components []Component `yaml:"components"`
	Before     []Event     `yaml:"before"`
	Steps      []Step      `yaml:"steps"`

	dir string
}

// Component declares one component and its children.
type Component struct {
	Name     string            `yaml:"name"`
	Selector string            `yaml:"selector"`
	Requires []string          `yaml:"requires"`
	Disabled bool              `yaml:"disabled"`
	Listen   []string          `yaml:"listen"`
	Actions  []string          `yaml:"actions"`
	Emits    map[string]string `yaml:"emits"`
	Data     map[string]any    `yaml:"data"`
	Children []Component       `yaml:"children"`
}

// Event is an engine event with optional data.
type Event struct {
	Name string `yaml:"event"`
	Data any    `yaml:"data"`
}

// Step is one scripted operation after Init. Exactly one field is set.
type Step struct {
	Click    string `yaml:"click"`
	Change   string `yaml:"change"`
	Dispatch *Event `yaml:"dispatch"`
	Enable   string `yaml:"enable"`
	Disable  string `yaml:"disable"`
	Remove   string `yaml:"remove"`
}

// Load reads and parses a manifest file. A relative page path is resolved
// against the manifest's directory.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.dir = filepath.Dir(path)
	return m, nil
}

// Parse decodes a manifest. Unknown keys are rejected.
func Parse(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("manifest: decode: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// PagePath returns the page file path, or "" when the manifest names none.
func (m *Manifest) PagePath() string {
	if m.Page == "" || filepath.IsAbs(m.Page) || m.dir == "" {
		return m.Page
	}
	return filepath.Join(m.dir, m.Page)
}

func (m *Manifest) validate() error {
	for i, ev := range m.Before {
		if ev.Name == "" {
			return fmt.Errorf("manifest: before[%d]: missing event name", i)
		}
	}
	for i, s := range m.Steps {
		if s.count() != 1 {
			return fmt.Errorf("%w: steps[%d]", ErrInvalidStep, i)
		}
		if s.Dispatch != nil && s.Dispatch.Name == "" {
			return fmt.Errorf("manifest: steps[%d]: missing event name", i)
		}
	}
	return nil
}

func (s Step) count() int {
	n := 0
	for _, set := range []bool{
		s.Click != "",
		s.Change != "",
		s.Dispatch != nil,
		s.Enable != "",
		s.Disable != "",
		s.Remove != "",
	} {
		if set {
			n++
		}
	}
	return n
}
