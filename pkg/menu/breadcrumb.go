package menu

import (
	"strings"

	"golang.org/x/net/html"
)

// Crumb is one step of a breadcrumb trail. URL is empty for steps that are
// not links, such as plain sub-menu headers.
type Crumb struct {
	Label string `json:"label"`
	URL   string `json:"url,omitempty"`
}

// Breadcrumb returns the labels of the active trail: the header of each
// active top-level entry, then, inside every active sub-menu, the header of
// each nested sub-menu (active or not) followed by the labels of its active
// children, ending with the deepest active leaf. Call it after SetActive.
func (m *Menu) Breadcrumb() []string {
	crumbs := m.trail(true)
	labels := make([]string, 0, len(crumbs))
	for _, c := range crumbs {
		labels = append(labels, c.Label)
	}
	return labels
}

// Crumbs returns only the steps on the active path, with the URL of every
// step that has one. Unlike Breadcrumb it skips the headers of inactive
// sibling sub-menus, which suits a rendered page trail.
func (m *Menu) Crumbs() []Crumb {
	return m.trail(false)
}

func (m *Menu) trail(siblings bool) []Crumb {
	var out []Crumb
	for _, item := range m.items {
		if !item.IsActive() {
			continue
		}
		out = appendCrumb(out, headerCrumb(item))
		out = collectCrumbs(out, item, siblings)
	}
	return out
}

func collectCrumbs(out []Crumb, item Item, siblings bool) []Crumb {
	sub, ok := item.(*Menu)
	if !ok {
		return appendCrumb(out, leafCrumb(item))
	}
	for _, child := range sub.items {
		active := child.IsActive()
		if childMenu, ok := child.(*Menu); ok && (siblings || active) {
			out = appendCrumb(out, leafCrumb(childMenu.prepend))
		}
		if active {
			out = collectCrumbs(out, child, siblings)
		}
	}
	return out
}

// headerCrumb is the label rendered before an item: a menu's header or the
// markup prepended to a link.
func headerCrumb(item Item) Crumb {
	switch v := item.(type) {
	case *Menu:
		return leafCrumb(v.prepend)
	case *Link:
		return Crumb{Label: plainText(v.PrependText())}
	default:
		return Crumb{}
	}
}

func leafCrumb(item Item) Crumb {
	switch v := item.(type) {
	case nil:
		return Crumb{}
	case *Link:
		return Crumb{Label: plainText(v.Text()), URL: v.URL()}
	case *RawHTML:
		return Crumb{Label: plainText(v.HTML())}
	case interface{ Text() string }:
		return Crumb{Label: plainText(v.Text())}
	default:
		return Crumb{Label: plainText(item.Render())}
	}
}

func appendCrumb(out []Crumb, c Crumb) []Crumb {
	if c.Label == "" {
		return out
	}
	return append(out, c)
}

// plainText strips tags from a fragment and collapses whitespace, so
// "<span>Docs</span> &amp; more" becomes "Docs & more".
func plainText(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return strings.Join(strings.Fields(fragment), " ")
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			// keep words in adjacent elements apart
			b.WriteByte(' ')
		}
	}
}
