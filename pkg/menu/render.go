package menu

import (
	"strings"

	"github.com/mchmarny/navmenu/pkg/markup"
)

// Render returns the menu's markup: header, wrapped children, footer, and the
// optional outer wrap.
//
// Rendering an active menu with SetActiveClassOnLink enabled adds the active
// classes to its header link. This is the only way Render changes the tree,
// and repeating it is harmless because classes are a set.
func (m *Menu) Render() string {
	contents := make([]string, 0, len(m.items))
	for _, item := range m.items {
		contents = append(contents, m.renderItem(item))
	}

	var wrapped string
	if m.wrapperTag != "" {
		wrapped = markup.NewTag(m.wrapperTag, m.htmlAttributes).WithContents(contents...)
	} else {
		wrapped = strings.Join(contents, "")
	}

	if m.prepend != nil && m.prepend.IsActive() {
		m.decorateActive(m.prepend)
	}

	out := renderOptional(m.prepend) + wrapped + renderOptional(m.append)

	if m.wrap != nil {
		return m.wrap.WithContents(out)
	}
	return out
}

func (m *Menu) String() string {
	return m.Render()
}

func (m *Menu) renderItem(item Item) string {
	if p, ok := item.(Prerenderer); ok {
		p.BeforeRender()
	}

	if c, ok := item.(ConditionallyRenderable); ok && !c.WillRender() {
		return ""
	}

	attrs := markup.NewAttributes()

	if item.IsActive() {
		if m.activeClassOnParent {
			attrs.AddClass(m.activeClass)
			if isExactActive(item) {
				attrs.AddClass(m.exactActiveClass)
			}
		}
		m.decorateActive(item)
	}

	if p, ok := item.(HasParentAttributes); ok {
		attrs.MergeWith(p.ParentAttributes())
	}

	if m.parentTag == "" {
		return item.Render()
	}
	return markup.NewTag(m.parentTag, attrs).WithContents(item.Render())
}

// decorateActive puts the active classes on the item itself when
// activeClassOnLink is set. Sub-menus are skipped; their parent tag already
// carries the classes.
func (m *Menu) decorateActive(item Item) {
	if !m.activeClassOnLink {
		return
	}
	if _, isMenu := item.(*Menu); isMenu {
		return
	}
	h, ok := item.(HasHTMLAttributes)
	if !ok {
		return
	}
	h.HTMLAttributes().AddClass(m.activeClass)
	if isExactActive(item) {
		h.HTMLAttributes().AddClass(m.exactActiveClass)
	}
}

func renderOptional(item Item) string {
	if item == nil {
		return ""
	}
	return item.Render()
}
