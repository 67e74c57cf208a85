package menu

import "github.com/mchmarny/navmenu/pkg/markup"

// Item is anything that can be added to a Menu: a *Link, a *RawHTML or a
// nested *Menu. Additional behavior is discovered through the optional
// capability interfaces below.
type Item interface {
	// Render returns the item's markup.
	Render() string

	// IsActive reports whether the item is on the path to the current page.
	IsActive() bool
}

// Activatable is implemented by items that track their own active state.
type Activatable interface {
	Item

	// IsExactActive reports whether the item is the current page itself.
	IsExactActive() bool

	// SetActive forces the active flag.
	SetActive(active bool)

	// SetExactActive forces the exact-active flag.
	SetExactActive(exact bool)

	// DetermineActiveForURL sets both flags by comparing the item's URL with
	// the current request URL. Links equal to root are never active.
	DetermineActiveForURL(current, root string)
}

// HasHTMLAttributes is implemented by items with attributes on their own root tag.
type HasHTMLAttributes interface {
	Item
	HTMLAttributes() *markup.Attributes
}

// HasParentAttributes is implemented by items carrying attributes for the
// wrapper tag (li by default) their parent menu renders around them.
type HasParentAttributes interface {
	Item
	ParentAttributes() *markup.Attributes
}

// Prerenderer items are notified right before their parent renders them.
type Prerenderer interface {
	BeforeRender()
}

// ConditionallyRenderable items are skipped by their parent when WillRender
// returns false.
type ConditionallyRenderable interface {
	WillRender() bool
}

// exactActiver covers both Activatable items and menus, which are exact-active
// only through their header.
type exactActiver interface {
	IsExactActive() bool
}

func isExactActive(item Item) bool {
	if e, ok := item.(exactActiver); ok {
		return e.IsExactActive()
	}
	return false
}
