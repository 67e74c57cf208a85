package menu

// Filter decorates an item in place as it is added to a menu. Filters never
// reject items.
type Filter func(Item)

// typed adapts fn so it only runs for items whose dynamic type satisfies T.
// With T = Item every item matches.
func typed[T any](fn func(T)) Filter {
	return func(item Item) {
		if v, ok := item.(T); ok {
			fn(v)
		}
	}
}

// Each calls fn for every direct child of m that satisfies T. It does not
// descend into sub-menus.
//
//	menu.Each(m, func(l *menu.Link) { l.SetAttribute("rel", "nofollow") })
func Each[T any](m *Menu, fn func(T)) *Menu {
	f := typed(fn)
	for _, item := range m.items {
		f(item)
	}
	return m
}

// RegisterFilter registers fn to run on every item satisfying T that is
// added to m from now on. Items already in the menu are left alone.
func RegisterFilter[T any](m *Menu, fn func(T)) *Menu {
	m.filters = append(m.filters, typed(fn))
	return m
}

// ApplyToAll runs fn over the current children (Each) and registers it for
// future ones (RegisterFilter).
func ApplyToAll[T any](m *Menu, fn func(T)) *Menu {
	Each(m, fn)
	return RegisterFilter(m, fn)
}

// Each calls fn for every direct child.
func (m *Menu) Each(fn func(Item)) *Menu {
	return Each(m, fn)
}

// RegisterFilter registers fn to run on every item added from now on.
func (m *Menu) RegisterFilter(fn func(Item)) *Menu {
	return RegisterFilter(m, fn)
}

// ApplyToAll runs fn over all current children and every future one.
func (m *Menu) ApplyToAll(fn func(Item)) *Menu {
	return ApplyToAll(m, fn)
}
