package menu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mchmarny/navmenu/pkg/uri"
)

// ErrInvalidArgument is returned by SetActive for targets that are neither a
// URL nor a predicate.
var ErrInvalidArgument = errors.New("invalid argument")

// DefaultRoot is the request root used when none is given.
const DefaultRoot = "/"

// IsActive reports whether any child, or the header, is active. Children are
// trusted to report their own state.
func (m *Menu) IsActive() bool {
	for _, item := range m.items {
		if item.IsActive() {
			return true
		}
	}
	return m.prepend != nil && m.prepend.IsActive()
}

// IsExactActive is true only through the header: a menu never becomes
// exact-active because of its children.
func (m *Menu) IsExactActive() bool {
	if m.prepend == nil {
		return false
	}
	return isExactActive(m.prepend)
}

// SetActive resolves active state from a URL (string or fmt.Stringer such as
// uri.URL) or from a predicate. root defaults to "/". A predicate typed on an
// item kind or capability, e.g. func(*Link) bool, only sees matching items.
// Any other target returns ErrInvalidArgument.
func (m *Menu) SetActive(target any, root ...string) (*Menu, error) {
	r := DefaultRoot
	if len(root) > 0 {
		r = root[0]
	}

	switch t := target.(type) {
	case string:
		return m.SetActiveFromURL(t, r), nil
	case fmt.Stringer:
		return m.SetActiveFromURL(t.String(), r), nil
	case func(Item) bool:
		return m.SetActiveFromFunc(t), nil
	case func(*Link) bool:
		return SetActiveWhen(m, t), nil
	case func(*RawHTML) bool:
		return SetActiveWhen(m, t), nil
	case func(*Menu) bool:
		return SetActiveWhen(m, t), nil
	case func(Activatable) bool:
		return SetActiveWhen(m, t), nil
	case func(HasHTMLAttributes) bool:
		return SetActiveWhen(m, t), nil
	case func(HasParentAttributes) bool:
		return SetActiveWhen(m, t), nil
	default:
		return m, fmt.Errorf("SetActive requires a url or an item predicate, got %T: %w", target, ErrInvalidArgument)
	}
}

// SetActiveFromURL marks every link matching url active, depth first.
//
// With links /, /about and /contact, a request to /about activates /about
// only. A link equal to root is never active, so a home link does not light
// up on every page: with root /en, the /en link stays inactive on /en/about.
//
// The resolution is registered as a filter too, so items added afterwards are
// resolved against the same url.
func (m *Menu) SetActiveFromURL(url, root string) *Menu {
	ApplyToAll(m, func(sub *Menu) {
		sub.SetActiveFromURL(url, root)
	})

	if a, ok := m.prepend.(Activatable); ok {
		a.DetermineActiveForURL(url, root)
	}

	return ApplyToAll(m, func(item Activatable) {
		item.DetermineActiveForURL(url, root)
	})
}

// SetActiveFromFunc marks items for which pred returns true as both active
// and exact-active. It never clears state.
func (m *Menu) SetActiveFromFunc(pred func(Item) bool) *Menu {
	return SetActiveWhen(m, pred)
}

// SetActiveWhen is SetActiveFromFunc restricted to items satisfying T.
//
//	menu.SetActiveWhen(m, func(l *menu.Link) bool { return strings.HasPrefix(l.URL(), "/docs") })
func SetActiveWhen[T any](m *Menu, pred func(T) bool) *Menu {
	ApplyToAll(m, func(sub *Menu) {
		SetActiveWhen(sub, pred)
	})

	return ApplyToAll(m, func(item Activatable) {
		v, ok := item.(T)
		if !ok || !pred(v) {
			return
		}
		item.SetActive(true)
		item.SetExactActive(true)
	})
}

// matchURL compares a link URL with the current request URL and returns its
// active and exact-active state.
func matchURL(link, current, root string) (active, exact bool) {
	linkURL, err := uri.Parse(link)
	if err != nil {
		return false, false
	}
	currentURL, err := uri.Parse(current)
	if err != nil {
		return false, false
	}
	rootURL, err := uri.Parse(root)
	if err != nil {
		return false, false
	}

	if linkURL.Host() != "" && linkURL.Host() != currentURL.Host() {
		return false, false
	}

	// trailing slashes keep /en from matching /english
	linkPath := withTrailingSlash(linkURL.Path())
	currentPath := withTrailingSlash(currentURL.Path())
	rootPath := withTrailingSlash(rootURL.Path())

	if linkPath == rootPath {
		return false, false
	}
	if linkPath == currentPath {
		return true, true
	}
	if !strings.HasPrefix(currentPath, rootPath) {
		return false, false
	}
	return strings.HasPrefix(currentPath, linkPath), false
}

func withTrailingSlash(p string) string {
	if strings.HasSuffix(p, "/") {
		return p
	}
	return p + "/"
}
