// Package markup serializes HTML tags and their attributes.
//
// Nothing in this package escapes text: attribute values and contents are
// written as given, so callers must pass markup that is already safe.
package markup

import "strings"

// Tag is an element name with its attributes.
type Tag struct {
	Name  string
	Attrs *Attributes
}

// NewTag creates a tag. A nil attribute bag renders as no attributes.
func NewTag(name string, attrs *Attributes) Tag {
	return Tag{Name: name, Attrs: attrs}
}

// Open renders the opening tag.
func (t Tag) Open() string {
	if t.Attrs.IsEmpty() {
		return "<" + t.Name + ">"
	}
	return "<" + t.Name + " " + t.Attrs.String() + ">"
}

// Close renders the closing tag.
func (t Tag) Close() string {
	return "</" + t.Name + ">"
}

// WithContents renders the element around the concatenated contents.
func (t Tag) WithContents(contents ...string) string {
	var b strings.Builder
	b.WriteString(t.Open())
	for _, c := range contents {
		b.WriteString(c)
	}
	b.WriteString(t.Close())
	return b.String()
}
