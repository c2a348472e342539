// Package dom is the element query collaborator used by domcmp engines.
//
// It wraps goquery to provide selector queries, data-attribute reads and
// delegated event subscription over a parsed HTML document. Events are
// synthetic: Trigger walks from the target element up through its ancestors
// and calls every delegate whose selector matches, nearest element first,
// the same way a jQuery delegated handler bound on the document behaves.
package dom

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoMatch is returned by Click and Change when the selector matched
// no element.
var ErrNoMatch = errors.New("dom: selector matched no element")

// Event types understood by the action dispatcher.
const (
	EventClick  = "click"
	EventChange = "change"
)

// Handler receives the element a delegate selector matched.
type Handler func(el *Element)

type delegate struct {
	selector string
	handler  Handler
}

// Document is a parsed HTML page that supports delegated event handlers.
type Document struct {
	doc       *goquery.Document
	delegates map[string][]delegate
}

// Parse reads an HTML document from r.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse: %w", err)
	}
	return &Document{
		doc:       doc,
		delegates: make(map[string][]delegate),
	}, nil
}

// ParseString parses an HTML document held in a string.
func ParseString(html string) (*Document, error) {
	return Parse(strings.NewReader(html))
}

// Query returns every element matching selector. An invalid selector
// matches nothing.
func (d *Document) Query(selector string) *Selection {
	return &Selection{sel: d.doc.Find(selector)}
}

// On subscribes handler to eventType for elements matching selector.
// Handlers for the same event type run in subscription order.
func (d *Document) On(eventType, selector string, handler Handler) {
	d.delegates[eventType] = append(d.delegates[eventType], delegate{
		selector: selector,
		handler:  handler,
	})
}

// Delegates reports how many delegated handlers are bound for eventType.
func (d *Document) Delegates(eventType string) int {
	return len(d.delegates[eventType])
}

// Trigger fires eventType at target. The event bubbles from target to the
// document root; at each element every matching delegate is called.
// It returns the number of handler calls made.
func (d *Document) Trigger(eventType string, target *Element) int {
	if target == nil || target.sel == nil {
		return 0
	}
	delegates := d.delegates[eventType]
	if len(delegates) == 0 {
		return 0
	}

	calls := 0
	for cur := target.sel; cur.Length() > 0; cur = cur.Parent() {
		for _, dg := range delegates {
			if cur.Is(dg.selector) {
				dg.handler(&Element{sel: cur})
				calls++
			}
		}
	}
	return calls
}

// Click fires a click at the first element matching selector.
func (d *Document) Click(selector string) (int, error) {
	return d.fire(EventClick, selector)
}

// Change fires a change event at the first element matching selector.
func (d *Document) Change(selector string) (int, error) {
	return d.fire(EventChange, selector)
}

func (d *Document) fire(eventType, selector string) (int, error) {
	el := d.Query(selector).First()
	if el == nil {
		return 0, fmt.Errorf("%w: %s %q", ErrNoMatch, eventType, selector)
	}
	return d.Trigger(eventType, el), nil
}
