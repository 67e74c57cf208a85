package menu

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/navmenu/pkg/markup"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		menu func() *Menu
		want string
	}{
		{
			name: "empty",
			menu: func() *Menu { return New() },
			want: "<ul></ul>",
		},
		{
			name: "links",
			menu: func() *Menu { return New().Link("/", "Home").Link("/about", "About") },
			want: `<ul><li><a href="/">Home</a></li><li><a href="/about">About</a></li></ul>`,
		},
		{
			name: "no wrapper and no parent tag",
			menu: func() *Menu { return New().Link("/x", "X").WithoutWrapperTag().WithoutParentTag() },
			want: `<a href="/x">X</a>`,
		},
		{
			name: "no wrapper tag",
			menu: func() *Menu { return New().Link("/x", "X").Link("/y", "Y").WithoutWrapperTag() },
			want: `<li><a href="/x">X</a></li><li><a href="/y">Y</a></li>`,
		},
		{
			name: "no parent tag",
			menu: func() *Menu { return New().Link("/x", "X").WithoutParentTag() },
			want: `<ul><a href="/x">X</a></ul>`,
		},
		{
			name: "custom tags",
			menu: func() *Menu { return New().Link("/x", "X").SetWrapperTag("div").SetParentTag("span") },
			want: `<div><span><a href="/x">X</a></span></div>`,
		},
		{
			name: "wrapper attributes",
			menu: func() *Menu { return New().Link("/x", "X").AddClass("nav").SetAttribute("role", "menu") },
			want: `<ul class="nav" role="menu"><li><a href="/x">X</a></li></ul>`,
		},
		{
			name: "wrap",
			menu: func() *Menu {
				return New().Link("/a", "A").Wrap("nav", markup.Attr{Key: "class", Value: "main"})
			},
			want: `<nav class="main"><ul><li><a href="/a">A</a></li></ul></nav>`,
		},
		{
			name: "prepend and append",
			menu: func() *Menu { return New().Prepend("<h2>T</h2>").Append("<p>f</p>").Link("/a", "A") },
			want: `<h2>T</h2><ul><li><a href="/a">A</a></li></ul><p>f</p>`,
		},
		{
			name: "prepend if",
			menu: func() *Menu { return New().PrependIf(false, "<h2>T</h2>").AppendIf(true, "<hr>") },
			want: `<ul></ul><hr>`,
		},
		{
			name: "raw html with parent attributes",
			menu: func() *Menu { return New().HTML("<hr>", markup.Attr{Key: "class", Value: "divider"}) },
			want: `<ul><li class="divider"><hr></li></ul>`,
		},
		{
			name: "empty item",
			menu: func() *Menu { return New().Empty() },
			want: `<ul><li></li></ul>`,
		},
		{
			name: "link attributes",
			menu: func() *Menu {
				return New().Add(LinkTo("/a", "A").AddClass("btn").SetAttribute("target", "_blank").AddParentClass("item"))
			},
			want: `<ul><li class="item"><a href="/a" class="btn" target="_blank">A</a></li></ul>`,
		},
		{
			name: "link prepend and append",
			menu: func() *Menu { return New().Add(LinkTo("/a", "A").Prepend("<i></i>").Append("!")) },
			want: `<ul><li><i></i><a href="/a">A</a>!</li></ul>`,
		},
		{
			name: "render if",
			menu: func() *Menu { return New().Add(LinkTo("/a", "A").RenderIf(false)).Link("/b", "B") },
			want: `<ul><li><a href="/b">B</a></li></ul>`,
		},
		{
			name: "submenu",
			menu: func() *Menu {
				return New().Link("/", "Home").SubmenuFunc(Raw("<span>Docs</span>"), func(s *Menu) {
					s.Link("/docs/a", "A")
				})
			},
			want: `<ul><li><a href="/">Home</a></li><li><span>Docs</span><ul><li><a href="/docs/a">A</a></li></ul></li></ul>`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.menu().Render())
		})
	}
}

func TestRenderActive(t *testing.T) {
	build := func() *Menu {
		return New().Link("/", "Home").Link("/about", "About").Link("/contact", "Contact")
	}

	tests := []struct {
		name  string
		style func(*Menu)
		want  string
	}{
		{
			name:  "class on parent",
			style: func(*Menu) {},
			want:  `<ul><li><a href="/">Home</a></li><li class="active exact-active"><a href="/about">About</a></li><li><a href="/contact">Contact</a></li></ul>`,
		},
		{
			name:  "class on parent and link",
			style: func(m *Menu) { m.SetActiveClassOnLink(true) },
			want:  `<ul><li><a href="/">Home</a></li><li class="active exact-active"><a href="/about" class="active exact-active">About</a></li><li><a href="/contact">Contact</a></li></ul>`,
		},
		{
			name:  "class on link only",
			style: func(m *Menu) { m.SetActiveClassOnLink(true).SetActiveClassOnParent(false) },
			want:  `<ul><li><a href="/">Home</a></li><li><a href="/about" class="active exact-active">About</a></li><li><a href="/contact">Contact</a></li></ul>`,
		},
		{
			name:  "custom classes",
			style: func(m *Menu) { m.SetActiveClass("on").SetExactActiveClass("here") },
			want:  `<ul><li><a href="/">Home</a></li><li class="on here"><a href="/about">About</a></li><li><a href="/contact">Contact</a></li></ul>`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := build()
			tc.style(m)
			m.SetActiveFromURL("/about", "/")
			assert.Equal(t, tc.want, m.Render())
		})
	}
}

func TestRenderActiveClassBeforeParentAttributes(t *testing.T) {
	m := New().Add(LinkTo("/a", "A").AddParentClass("item"))
	m.SetActiveFromURL("/a", "/")

	assert.Equal(t, `<ul><li class="active exact-active item"><a href="/a">A</a></li></ul>`, m.Render())
}

func TestRenderActiveSubmenu(t *testing.T) {
	m := New().
		SetActiveClassOnLink(true).
		Link("/", "Home").
		SubmenuFunc(Raw("<span>Section</span>"), func(s *Menu) {
			s.Link("/section/page", "Page").Link("/section/other", "Other")
		})
	m.SetActiveFromURL("/section/page", "/")

	want := `<ul><li><a href="/">Home</a></li>` +
		`<li class="active"><span>Section</span><ul>` +
		`<li class="active exact-active"><a href="/section/page">Page</a></li>` +
		`<li><a href="/section/other">Other</a></li>` +
		`</ul></li></ul>`

	// the sub-menu is not decorated as a link, and the blueprint does not
	// inherit SetActiveClassOnLink
	assert.Equal(t, want, m.Render())
}

func TestRenderDecoratesActiveHeaderOnce(t *testing.T) {
	header := LinkTo("/docs", "Docs")
	m := New().SetActiveClassOnLink(true).PrependItem(header).Link("/docs/a", "A")
	m.SetActiveFromURL("/docs", "/")

	require.True(t, header.IsExactActive())
	assert.Empty(t, header.HTMLAttributes().Classes(), "activation alone does not decorate")

	want := `<a href="/docs" class="active exact-active">Docs</a><ul><li><a href="/docs/a">A</a></li></ul>`
	assert.Equal(t, want, m.Render())
	assert.Equal(t, []string{"active", "exact-active"}, header.HTMLAttributes().Classes())

	// rendering again is stable
	assert.Equal(t, want, m.Render())
}

type hookItem struct {
	*Link
	before int
	render bool
}

func (h *hookItem) BeforeRender()    { h.before++ }
func (h *hookItem) WillRender() bool { return h.render }

func TestRenderHooks(t *testing.T) {
	shown := &hookItem{Link: LinkTo("/a", "A"), render: true}
	hidden := &hookItem{Link: LinkTo("/b", "B"), render: false}

	m := New().Add(shown).Add(hidden)

	assert.Equal(t, `<ul><li><a href="/a">A</a></li></ul>`, m.Render())
	assert.Equal(t, 1, shown.before)
	assert.Equal(t, 1, hidden.before, "BeforeRender runs before the WillRender gate")
}

func TestRenderIsQueryable(t *testing.T) {
	m := New().
		AddClass("nav").
		Link("/", "Home").
		SubmenuFunc(LinkTo("/docs", "Docs"), func(s *Menu) {
			s.Link("/docs/install", "Install").Link("/docs/usage", "Usage")
		}).
		HTML("<hr>")
	m.SetActiveFromURL("/docs/usage", "/")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(m.Render()))
	require.NoError(t, err)

	assert.Equal(t, 1, doc.Find("ul.nav").Length())
	assert.Equal(t, 3, doc.Find("ul.nav > li").Length())
	assert.Equal(t, 2, doc.Find("ul.nav > li > ul > li").Length())

	active := doc.Find("li.active")
	require.Equal(t, 2, active.Length())
	assert.Equal(t, "/docs", active.First().Children().First().AttrOr("href", ""))

	exact := doc.Find("li.exact-active > a")
	require.Equal(t, 1, exact.Length())
	assert.Equal(t, "Usage", exact.Text())
}

func TestStringRenders(t *testing.T) {
	m := New().Link("/a", "A")
	assert.Equal(t, m.Render(), m.String())
	assert.Equal(t, `<a href="/a">A</a>`, LinkTo("/a", "A").String())
	assert.Equal(t, "<hr>", Raw("<hr>").String())
}
