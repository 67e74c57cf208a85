package menu

import "github.com/mchmarny/navmenu/pkg/markup"

// RawHTML is an item holding a fragment of markup, e.g. a divider or a
// heading. It has no URL, so it only becomes active when forced.
type RawHTML struct {
	html        string
	active      bool
	exactActive bool

	parentAttributes *markup.Attributes
}

// Raw creates an item rendering html verbatim.
func Raw(html string) *RawHTML {
	return &RawHTML{html: html, parentAttributes: markup.NewAttributes()}
}

// Empty creates an item rendering nothing. Inside a menu it still produces
// an empty parent tag, which is handy for spacers.
func Empty() *RawHTML {
	return Raw("")
}

func (r *RawHTML) HTML() string { return r.html }
func (r *RawHTML) Render() string { return r.html }
func (r *RawHTML) String() string { return r.html }
func (r *RawHTML) IsActive() bool { return r.active }
func (r *RawHTML) IsExactActive() bool { return r.exactActive }
func (r *RawHTML) SetActive(a bool) { r.active = a }
func (r *RawHTML) SetExactActive(e bool) { r.exactActive = e }

// DetermineActiveForURL is a no-op: raw markup has no URL to match.
func (r *RawHTML) DetermineActiveForURL(_, _ string) {}

func (r *RawHTML) ParentAttributes() *markup.Attributes { return r.parentAttributes }

func (r *RawHTML) SetParentAttribute(key, value string) *RawHTML {
	r.parentAttributes.Set(key, value)
	return r
}

func (r *RawHTML) SetParentAttributes(attrs ...markup.Attr) *RawHTML {
	for _, a := range attrs {
		r.parentAttributes.Set(a.Key, a.Value)
	}
	return r
}

func (r *RawHTML) AddParentClass(class string) *RawHTML {
	r.parentAttributes.AddClass(class)
	return r
}
