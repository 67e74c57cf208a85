package menu_test

import (
	"fmt"

	"github.com/mchmarny/navmenu/pkg/menu"
)

func Example() {
	m := menu.New().
		AddClass("nav").
		Link("/", "Home").
		SubmenuFunc(menu.LinkTo("/docs", "Docs"), func(s *menu.Menu) {
			s.Link("/docs/install", "Install").Link("/docs/usage", "Usage")
		})

	m.SetActiveFromURL("/docs/usage", "/")

	fmt.Println(m.Render())
	fmt.Println(m.Breadcrumb())
	// Output:
	// <ul class="nav"><li><a href="/">Home</a></li><li class="active"><a href="/docs">Docs</a><ul><li><a href="/docs/install">Install</a></li><li class="active exact-active"><a href="/docs/usage">Usage</a></li></ul></li></ul>
	// [Docs Usage]
}

func ExampleEach() {
	m := menu.New().Link("/a", "A").HTML("<hr>").Link("/b", "B")

	menu.Each(m, func(l *menu.Link) {
		l.SetAttribute("rel", "nofollow")
	})

	fmt.Println(m.WithoutWrapperTag().WithoutParentTag().Render())
	// Output:
	// <a href="/a" rel="nofollow">A</a><hr><a href="/b" rel="nofollow">B</a>
}

func ExampleMenu_SetActive() {
	m := menu.New().Link("/en", "Home").Link("/en/about", "About")

	if _, err := m.SetActive("/en/about/team", "/en"); err != nil {
		fmt.Println(err)
	}
	fmt.Println(m.Render())

	_, err := m.SetActive(42)
	fmt.Println(err)
	// Output:
	// <ul><li><a href="/en">Home</a></li><li class="active"><a href="/en/about">About</a></li></ul>
	// SetActive requires a url or an item predicate, got int: invalid argument
}
