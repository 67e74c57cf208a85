// Package config loads site menu definitions from YAML and turns them into menus.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mchmarny/navmenu/pkg/markup"
	"github.com/mchmarny/navmenu/pkg/menu"
)

// ErrInvalidConfig is returned when a site definition fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Site describes a site's navigation. A Site is read-only once loaded, so
// the same value can back concurrent requests; call Menu for a fresh,
// mutable menu per request.
type Site struct {
	// Title is the site name shown in rendered pages.
	Title string `yaml:"title"`

	// Root is the request root. Links equal to it are never marked active
	// (default "/").
	Root string `yaml:"root"`

	// ActiveClass is the class for active items (default "active").
	ActiveClass string `yaml:"active_class"`

	// ExactActiveClass is the class for the current page (default "exact-active").
	ExactActiveClass string `yaml:"exact_active_class"`

	// ActiveClassOnLink also puts active classes on the anchors.
	ActiveClassOnLink bool `yaml:"active_class_on_link"`

	// ActiveClassOnParent puts active classes on the li tags (default true).
	ActiveClassOnParent *bool `yaml:"active_class_on_parent"`

	// Class is added to the top-level list tag.
	Class string `yaml:"class"`

	// Wrap optionally wraps the whole menu, e.g. in a nav element.
	Wrap *Wrap `yaml:"wrap"`

	// Entries are the top-level menu items.
	Entries []Entry `yaml:"menu"`
}

// Wrap is an outer element around the rendered menu.
type Wrap struct {
	Tag   string `yaml:"tag"`
	Class string `yaml:"class"`
	ID    string `yaml:"id"`
}

// Entry is one menu item. An entry with Items becomes a sub-menu whose
// header is a link (URL set) or a span (title only).
type Entry struct {
	Title       string  `yaml:"title"`
	URL         string  `yaml:"url"`
	HTML        string  `yaml:"html"`
	Class       string  `yaml:"class"`
	ParentClass string  `yaml:"parent_class"`
	Hidden      bool    `yaml:"hidden"`
	Items       []Entry `yaml:"items"`
}

// Load reads and validates a site definition file.
func Load(path string) (*Site, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	s, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	return s, nil
}

// Parse decodes and validates a site definition, filling in defaults.
func Parse(b []byte) (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	s.applyDefaults()

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

func (s *Site) applyDefaults() {
	if s.Root == "" {
		s.Root = menu.DefaultRoot
	}
	if s.ActiveClass == "" {
		s.ActiveClass = menu.DefaultActiveClass
	}
	if s.ExactActiveClass == "" {
		s.ExactActiveClass = menu.DefaultExactActiveClass
	}
	if s.ActiveClassOnParent == nil {
		on := true
		s.ActiveClassOnParent = &on
	}
}

// Validate checks that every entry is either a link, a raw html chunk or a
// sub-menu.
func (s *Site) Validate() error {
	if s.Wrap != nil && s.Wrap.Tag == "" {
		return fmt.Errorf("wrap: tag is required: %w", ErrInvalidConfig)
	}
	return validateEntries(s.Entries, "menu")
}

func validateEntries(entries []Entry, path string) error {
	for i, e := range entries {
		at := fmt.Sprintf("%s[%d]", path, i)

		switch {
		case len(e.Items) > 0:
			if e.HTML != "" {
				return fmt.Errorf("%s: a sub-menu cannot have html: %w", at, ErrInvalidConfig)
			}
			if err := validateEntries(e.Items, at+".items"); err != nil {
				return err
			}
		case e.HTML != "":
			if e.URL != "" {
				return fmt.Errorf("%s: url and html are mutually exclusive: %w", at, ErrInvalidConfig)
			}
		case e.URL == "":
			return fmt.Errorf("%s: one of url, html or items is required: %w", at, ErrInvalidConfig)
		case e.Title == "":
			return fmt.Errorf("%s: title is required for url %s: %w", at, e.URL, ErrInvalidConfig)
		}
	}
	return nil
}

// Menu builds a new menu from the definition. Each call returns an
// independent menu.
func (s *Site) Menu() *menu.Menu {
	m := menu.New().
		SetActiveClass(s.ActiveClass).
		SetExactActiveClass(s.ExactActiveClass).
		SetActiveClassOnLink(s.ActiveClassOnLink).
		SetActiveClassOnParent(s.ActiveClassOnParent == nil || *s.ActiveClassOnParent)

	if s.Class != "" {
		m.AddClass(s.Class)
	}

	if s.Wrap != nil {
		var attrs []markup.Attr
		if s.Wrap.ID != "" {
			attrs = append(attrs, markup.Attr{Key: "id", Value: s.Wrap.ID})
		}
		if s.Wrap.Class != "" {
			attrs = append(attrs, markup.Attr{Key: "class", Value: s.Wrap.Class})
		}
		m.Wrap(s.Wrap.Tag, attrs...)
	}

	return menu.Fill(m, s.Entries, s.addEntry)
}

func (s *Site) addEntry(m *menu.Menu, e Entry, _ int) *menu.Menu {
	if e.Hidden {
		return m
	}

	switch {
	case len(e.Items) > 0:
		return m.SubmenuFunc(e.header(), func(sub *menu.Menu) {
			// blueprints only carry the active class
			sub.SetExactActiveClass(s.ExactActiveClass).
				SetActiveClassOnLink(s.ActiveClassOnLink).
				SetActiveClassOnParent(s.ActiveClassOnParent == nil || *s.ActiveClassOnParent)
			if e.ParentClass != "" {
				sub.AddParentClass(e.ParentClass)
			}
			menu.Fill(sub, e.Items, s.addEntry)
		})
	case e.HTML != "":
		raw := menu.Raw(e.HTML)
		if e.ParentClass != "" {
			raw.AddParentClass(e.ParentClass)
		}
		return m.Add(raw)
	default:
		l := menu.LinkTo(e.URL, e.Title)
		if e.Class != "" {
			l.AddClass(e.Class)
		}
		if e.ParentClass != "" {
			l.AddParentClass(e.ParentClass)
		}
		return m.Add(l)
	}
}

func (e Entry) header() menu.Item {
	if e.URL == "" {
		if e.Title == "" {
			return nil
		}
		return menu.Raw("<span>" + e.Title + "</span>")
	}
	l := menu.LinkTo(e.URL, e.Title)
	if e.Class != "" {
		l.AddClass(e.Class)
	}
	return l
}
