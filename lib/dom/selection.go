package dom

import "github.com/PuerkitoBio/goquery"

// Selection is zero or more elements returned by a query.
// A nil Selection behaves as an empty one.
type Selection struct {
	sel *goquery.Selection
}

// Len returns the number of matched elements.
func (s *Selection) Len() int {
	if s == nil || s.sel == nil {
		return 0
	}
	return s.sel.Length()
}

// Elements returns the matched elements in document order.
func (s *Selection) Elements() []*Element {
	n := s.Len()
	if n == 0 {
		return nil
	}
	out := make([]*Element, 0, n)
	s.sel.Each(func(_ int, item *goquery.Selection) {
		out = append(out, &Element{sel: item})
	})
	return out
}

// First returns the first matched element, or nil.
func (s *Selection) First() *Element {
	if s.Len() == 0 {
		return nil
	}
	return &Element{sel: s.sel.First()}
}

// Is reports whether any matched element satisfies selector.
func (s *Selection) Is(selector string) bool {
	if s.Len() == 0 {
		return false
	}
	return s.sel.Is(selector)
}

// Element is a single node of a Document.
type Element struct {
	sel *goquery.Selection
}

// Attr returns the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// Data returns the data-<key> attribute.
func (e *Element) Data(key string) (string, bool) {
	return e.sel.Attr("data-" + key)
}

// ID returns the id attribute, or "".
func (e *Element) ID() string {
	id, _ := e.sel.Attr("id")
	return id
}

// Text returns the combined text content of the element.
func (e *Element) Text() string {
	return e.sel.Text()
}

// Is reports whether the element matches selector.
func (e *Element) Is(selector string) bool {
	return e.sel.Is(selector)
}

// Parent returns the parent element, or nil at the root.
func (e *Element) Parent() *Element {
	p := e.sel.Parent()
	if p.Length() == 0 {
		return nil
	}
	return &Element{sel: p}
}
