package menu

// Node is a plain-data snapshot of a menu item, suitable for JSON or YAML.
type Node struct {
	// Title is the link text, or the plain-text header of a sub-menu.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// URL is set for links and for sub-menus whose header is a link.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// HTML holds the markup of raw items.
	HTML string `json:"html,omitempty" yaml:"html,omitempty"`

	// Active is true on the path to the current page.
	Active bool `json:"active,omitempty" yaml:"active,omitempty"`

	// ExactActive is true for the current page itself.
	ExactActive bool `json:"exactActive,omitempty" yaml:"exactActive,omitempty"`

	// Items are the children of a sub-menu.
	Items []Node `json:"items,omitempty" yaml:"items,omitempty"`
}

// Tree returns a snapshot of the menu. The root node's title comes from the
// header, if any.
func (m *Menu) Tree() Node {
	n := nodeOf(m.prepend)
	n.HTML = ""
	n.Active = m.IsActive()
	n.ExactActive = m.IsExactActive()
	n.Items = make([]Node, 0, len(m.items))
	for _, item := range m.items {
		n.Items = append(n.Items, nodeOf(item))
	}
	return n
}

func nodeOf(item Item) Node {
	switch v := item.(type) {
	case nil:
		return Node{}
	case *Menu:
		return v.Tree()
	case *Link:
		return Node{
			Title:       plainText(v.Text()),
			URL:         v.URL(),
			Active:      v.IsActive(),
			ExactActive: v.IsExactActive(),
		}
	case *RawHTML:
		return Node{HTML: v.HTML(), Title: plainText(v.HTML()), Active: v.IsActive()}
	default:
		c := leafCrumb(item)
		return Node{Title: c.Label, Active: item.IsActive(), ExactActive: isExactActive(item)}
	}
}

// Walk calls fn for every item in the tree, depth first, parents before
// their children. Headers are not visited.
func (m *Menu) Walk(fn func(item Item, depth int)) {
	m.walk(fn, 0)
}

func (m *Menu) walk(fn func(Item, int), depth int) {
	for _, item := range m.items {
		fn(item, depth)
		if sub, ok := item.(*Menu); ok {
			sub.walk(fn, depth+1)
		}
	}
}
