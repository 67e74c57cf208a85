package menu

import "github.com/mchmarny/navmenu/pkg/markup"

// Link is an anchor item.
type Link struct {
	url     string
	text    string
	prepend string
	append  string

	active      bool
	exactActive bool
	renderable  bool

	htmlAttributes   *markup.Attributes
	parentAttributes *markup.Attributes
}

// LinkTo creates a link. Text is written as-is, so escape it beforehand if it
// comes from user input.
func LinkTo(url, text string) *Link {
	return &Link{
		url:              url,
		text:             text,
		renderable:       true,
		htmlAttributes:   markup.NewAttributes(),
		parentAttributes: markup.NewAttributes(),
	}
}

func (l *Link) URL() string { return l.url }
func (l *Link) Text() string { return l.text }
func (l *Link) PrependText() string { return l.prepend }
func (l *Link) AppendText() string { return l.append }
func (l *Link) IsActive() bool { return l.active }
func (l *Link) IsExactActive() bool { return l.exactActive }
func (l *Link) SetActive(a bool) { l.active = a }
func (l *Link) SetExactActive(e bool) { l.exactActive = e }
func (l *Link) WillRender() bool { return l.renderable }

func (l *Link) HTMLAttributes() *markup.Attributes { return l.htmlAttributes }
func (l *Link) ParentAttributes() *markup.Attributes { return l.parentAttributes }

func (l *Link) SetURL(url string) *Link {
	l.url = url
	return l
}

func (l *Link) SetText(text string) *Link {
	l.text = text
	return l
}

// Prepend sets markup rendered right before the anchor.
func (l *Link) Prepend(s string) *Link {
	l.prepend = s
	return l
}

func (l *Link) PrependIf(cond bool, s string) *Link {
	if cond {
		l.prepend = s
	}
	return l
}

// Append sets markup rendered right after the anchor.
func (l *Link) Append(s string) *Link {
	l.append = s
	return l
}

func (l *Link) AppendIf(cond bool, s string) *Link {
	if cond {
		l.append = s
	}
	return l
}

func (l *Link) AddClass(class string) *Link {
	l.htmlAttributes.AddClass(class)
	return l
}

func (l *Link) SetAttribute(key, value string) *Link {
	l.htmlAttributes.Set(key, value)
	return l
}

func (l *Link) AddParentClass(class string) *Link {
	l.parentAttributes.AddClass(class)
	return l
}

func (l *Link) SetParentAttribute(key, value string) *Link {
	l.parentAttributes.Set(key, value)
	return l
}

// RenderIf sets whether a parent menu renders the link at all.
func (l *Link) RenderIf(cond bool) *Link {
	l.renderable = cond
	return l
}

// If applies fn to the link when cond holds.
func (l *Link) If(cond bool, fn func(*Link)) *Link {
	if cond {
		fn(l)
	}
	return l
}

// Render returns prepend + <a href="url" ...>text</a> + append.
func (l *Link) Render() string {
	attrs := markup.NewAttributes(markup.Attr{Key: "href", Value: l.url})
	attrs.MergeWith(l.htmlAttributes)

	return l.prepend + "<a " + attrs.String() + ">" + l.text + "</a>" + l.append
}

func (l *Link) String() string {
	return l.Render()
}

// DetermineActiveForURL implements Activatable using the path rules in matchURL.
func (l *Link) DetermineActiveForURL(current, root string) {
	if l.url == "" {
		return
	}
	l.active, l.exactActive = matchURL(l.url, current, root)
}
