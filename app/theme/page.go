package theme

// Page is an in-memory document of a rendered page: root element attributes and elements by id.
// Templates read it to render the <html> attributes and icon classes.
type Page struct {
	attrs    map[string]string
	elements map[string]string // id -> class
}

// NewPage creates a page containing elements with the given ids.
func NewPage(ids ...string) *Page {
	p := &Page{attrs: map[string]string{}, elements: make(map[string]string, len(ids))}
	for _, id := range ids {
		p.elements[id] = ""
	}
	return p
}

// RootAttribute returns the root element attribute, empty if not set.
func (p *Page) RootAttribute(name string) string { return p.attrs[name] }

// SetRootAttribute sets the root element attribute.
func (p *Page) SetRootAttribute(name, value string) { p.attrs[name] = value }

// SetElementClass sets the class of an element; returns false if the page has no such element.
func (p *Page) SetElementClass(id, class string) bool {
	if _, ok := p.elements[id]; !ok {
		return false
	}
	p.elements[id] = class
	return true
}

// HasElement reports whether the page has an element with the id.
func (p *Page) HasElement(id string) bool {
	_, ok := p.elements[id]
	return ok
}

// ElementClass returns the class of the element, empty if absent.
func (p *Page) ElementClass(id string) string { return p.elements[id] }
