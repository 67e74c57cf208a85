package menu

import (
	"iter"
	"slices"

	"github.com/mchmarny/navmenu/pkg/markup"
)

const (
	// DefaultActiveClass is added to active items.
	DefaultActiveClass = "active"

	// DefaultExactActiveClass is added to the item matching the current page.
	DefaultExactActiveClass = "exact-active"

	// DefaultWrapperTag wraps the menu's children.
	DefaultWrapperTag = "ul"

	// DefaultParentTag wraps each child.
	DefaultParentTag = "li"
)

// Menu is an ordered list of items and is itself an Item, so menus nest to
// form sub-menus. Builder methods mutate the menu and return it for chaining.
//
// A Menu is not safe for concurrent use. Build one per request.
type Menu struct {
	items   []Item
	filters []Filter

	// prepend is the header rendered before the list; strings are kept as *RawHTML.
	prepend Item
	append  Item
	wrap    *markup.Tag

	activeClass         string
	exactActiveClass    string
	wrapperTag          string
	parentTag           string
	activeClassOnParent bool
	activeClassOnLink   bool

	htmlAttributes   *markup.Attributes
	parentAttributes *markup.Attributes
}

// New creates a menu, optionally prefilled with items. Prefilled items do not
// pass through filters, since none are registered yet. Nil items are dropped.
func New(items ...Item) *Menu {
	return &Menu{
		items:               slices.DeleteFunc(slices.Clone(items), isNil),
		activeClass:         DefaultActiveClass,
		exactActiveClass:    DefaultExactActiveClass,
		wrapperTag:          DefaultWrapperTag,
		parentTag:           DefaultParentTag,
		activeClassOnParent: true,
		htmlAttributes:      markup.NewAttributes(),
		parentAttributes:    markup.NewAttributes(),
	}
}

// Build creates a menu from a slice of data. fn receives the accumulator
// menu, the element and its index; returning nil keeps the accumulator.
// A nil initial menu starts from New().
func Build[T any](items []T, fn func(m *Menu, item T, i int) *Menu, initial *Menu) *Menu {
	if initial == nil {
		initial = New()
	}
	return Fill(initial, items, fn)
}

// Fill folds items into m the same way Build does.
func Fill[T any](m *Menu, items []T, fn func(m *Menu, item T, i int) *Menu) *Menu {
	for i, item := range items {
		if next := fn(m, item, i); next != nil {
			m = next
		}
	}
	return m
}

// Add runs every registered filter matching the item, then appends it.
// Nil items, including nil *Link, *RawHTML and *Menu values, are ignored.
func (m *Menu) Add(item Item) *Menu {
	if isNil(item) {
		return m
	}
	for _, f := range m.filters {
		f(item)
	}
	m.items = append(m.items, item)
	return m
}

func (m *Menu) AddIf(cond bool, item Item) *Menu {
	if cond {
		m.Add(item)
	}
	return m
}

// AddWhen evaluates pred and adds item when it returns true. A nil pred adds nothing.
func (m *Menu) AddWhen(pred func() bool, item Item) *Menu {
	return m.AddIf(pred != nil && pred(), item)
}

// Link adds a plain link.
func (m *Menu) Link(url, text string) *Menu {
	return m.Add(LinkTo(url, text))
}

func (m *Menu) LinkIf(cond bool, url, text string) *Menu {
	if cond {
		m.Link(url, text)
	}
	return m
}

// HTML adds a chunk of raw markup, with optional attributes for its parent tag.
func (m *Menu) HTML(html string, parentAttrs ...markup.Attr) *Menu {
	return m.Add(Raw(html).SetParentAttributes(parentAttrs...))
}

func (m *Menu) HTMLIf(cond bool, html string, parentAttrs ...markup.Attr) *Menu {
	if cond {
		m.HTML(html, parentAttrs...)
	}
	return m
}

// Empty adds an item without content.
func (m *Menu) Empty() *Menu {
	return m.Add(Empty())
}

// Submenu adds sub as a child, with header (may be nil) as its prepend.
// A nil sub adds nothing.
func (m *Menu) Submenu(header Item, sub *Menu) *Menu {
	if sub == nil {
		return m
	}
	if header != nil {
		sub.PrependItem(header)
	}
	return m.Add(sub)
}

// SubmenuFunc builds a sub-menu from a Blueprint of m, so the sub-menu shares
// this menu's filters and active class.
func (m *Menu) SubmenuFunc(header Item, build func(sub *Menu)) *Menu {
	sub := m.Blueprint()
	build(sub)
	return m.Submenu(header, sub)
}

func (m *Menu) SubmenuIf(cond bool, header Item, sub *Menu) *Menu {
	if cond {
		m.Submenu(header, sub)
	}
	return m
}

func (m *Menu) SubmenuFuncIf(cond bool, header Item, build func(sub *Menu)) *Menu {
	if cond {
		m.SubmenuFunc(header, build)
	}
	return m
}

// Prepend sets markup rendered before the list.
func (m *Menu) Prepend(html string) *Menu {
	m.prepend = Raw(html)
	return m
}

// PrependItem sets an item rendered before the list. A link used this way
// takes part in active state resolution.
func (m *Menu) PrependItem(item Item) *Menu {
	m.prepend = item
	return m
}

func (m *Menu) PrependIf(cond bool, html string) *Menu {
	if cond {
		m.Prepend(html)
	}
	return m
}

// Append sets markup rendered after the list.
func (m *Menu) Append(html string) *Menu {
	m.append = Raw(html)
	return m
}

func (m *Menu) AppendItem(item Item) *Menu {
	m.append = item
	return m
}

func (m *Menu) AppendIf(cond bool, html string) *Menu {
	if cond {
		m.Append(html)
	}
	return m
}

// Header returns the prepended item, or nil.
func (m *Menu) Header() Item {
	return m.prepend
}

// Wrap wraps the entire rendered menu, prepend and append included, in
// another element.
func (m *Menu) Wrap(tag string, attrs ...markup.Attr) *Menu {
	t := markup.NewTag(tag, markup.NewAttributes(attrs...))
	m.wrap = &t
	return m
}

// If applies fn to the menu when cond holds.
func (m *Menu) If(cond bool, fn func(*Menu)) *Menu {
	if cond {
		fn(m)
	}
	return m
}

func (m *Menu) HTMLAttributes() *markup.Attributes { return m.htmlAttributes }
func (m *Menu) ParentAttributes() *markup.Attributes { return m.parentAttributes }

// AddClass adds a class to the wrapper tag.
func (m *Menu) AddClass(class string) *Menu {
	m.htmlAttributes.AddClass(class)
	return m
}

// SetAttribute sets an attribute on the wrapper tag.
func (m *Menu) SetAttribute(key, value string) *Menu {
	m.htmlAttributes.Set(key, value)
	return m
}

func (m *Menu) AddParentClass(class string) *Menu {
	m.parentAttributes.AddClass(class)
	return m
}

func (m *Menu) SetParentAttribute(key, value string) *Menu {
	m.parentAttributes.Set(key, value)
	return m
}

// AddItemClass adds a class to every current and future item with HTML attributes.
func (m *Menu) AddItemClass(class string) *Menu {
	return ApplyToAll(m, func(item HasHTMLAttributes) {
		item.HTMLAttributes().AddClass(class)
	})
}

// SetItemAttribute sets an attribute on every current and future item with HTML attributes.
func (m *Menu) SetItemAttribute(key, value string) *Menu {
	return ApplyToAll(m, func(item HasHTMLAttributes) {
		item.HTMLAttributes().Set(key, value)
	})
}

// AddItemParentClass adds a class to the parent tag of every current and future item.
func (m *Menu) AddItemParentClass(class string) *Menu {
	return ApplyToAll(m, func(item HasParentAttributes) {
		item.ParentAttributes().AddClass(class)
	})
}

func (m *Menu) SetItemParentAttribute(key, value string) *Menu {
	return ApplyToAll(m, func(item HasParentAttributes) {
		item.ParentAttributes().Set(key, value)
	})
}

func (m *Menu) SetActiveClass(class string) *Menu {
	m.activeClass = class
	return m
}

func (m *Menu) SetExactActiveClass(class string) *Menu {
	m.exactActiveClass = class
	return m
}

func (m *Menu) ActiveClass() string { return m.activeClass }
func (m *Menu) ExactActiveClass() string { return m.exactActiveClass }

// SetWrapperTag sets the tag around the children. An empty name renders
// them without a wrapper.
func (m *Menu) SetWrapperTag(tag string) *Menu {
	m.wrapperTag = tag
	return m
}

func (m *Menu) WithoutWrapperTag() *Menu {
	return m.SetWrapperTag("")
}

// SetParentTag sets the tag around each child. An empty name renders each
// child's markup as-is.
func (m *Menu) SetParentTag(tag string) *Menu {
	m.parentTag = tag
	return m
}

func (m *Menu) WithoutParentTag() *Menu {
	return m.SetParentTag("")
}

// SetActiveClassOnLink sets whether active classes also go on the items themselves.
func (m *Menu) SetActiveClassOnLink(on bool) *Menu {
	m.activeClassOnLink = on
	return m
}

// SetActiveClassOnParent sets whether active classes go on each item's parent tag.
func (m *Menu) SetActiveClassOnParent(on bool) *Menu {
	m.activeClassOnParent = on
	return m
}

// Blueprint returns an empty menu sharing m's filters and active class.
func (m *Menu) Blueprint() *Menu {
	b := New()
	b.filters = slices.Clone(m.filters)
	b.activeClass = m.activeClass
	return b
}

// Count returns the number of direct children.
func (m *Menu) Count() int {
	return len(m.items)
}

// Items returns a copy of the direct children.
func (m *Menu) Items() []Item {
	return slices.Clone(m.items)
}

// All iterates over the direct children.
func (m *Menu) All() iter.Seq[Item] {
	return slices.Values(m.items)
}

func isNil(item Item) bool {
	switch v := item.(type) {
	case nil:
		return true
	case *Link:
		return v == nil
	case *RawHTML:
		return v == nil
	case *Menu:
		return v == nil
	default:
		return false
	}
}
