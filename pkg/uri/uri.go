// Package uri provides an immutable URL value used to compare menu links with
// the current request.
//
// Every With* method returns a modified copy; the receiver is never changed.
package uri

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// ErrInvalidArgument is returned for invalid schemes and for segment index 0.
var ErrInvalidArgument = errors.New("invalid argument")

// ValidSchemes lists the schemes accepted by WithScheme and Parse.
var ValidSchemes = []string{"http", "https", "mailto"}

// URL is an immutable URL value. The zero value is an empty relative URL.
type URL struct {
	scheme   string
	host     string
	port     int
	user     string
	password *string
	path     string
	query    query
	fragment string
}

// Parse splits raw into its components. A missing path becomes "/".
func Parse(raw string) (URL, error) {
	pu, err := url.Parse(raw)
	if err != nil {
		return URL{}, fmt.Errorf("failed to parse url %q: %w", raw, err)
	}

	u := URL{
		host:     pu.Hostname(),
		path:     pu.EscapedPath(),
		query:    parseQuery(pu.RawQuery),
		fragment: pu.EscapedFragment(),
	}

	if pu.Scheme != "" {
		if u.scheme, err = sanitizeScheme(pu.Scheme); err != nil {
			return URL{}, err
		}
	}

	// mailto:user@example.com has no authority, keep the address as the path
	if pu.Opaque != "" {
		u.path = pu.Opaque
	}

	if p := pu.Port(); p != "" {
		if u.port, err = strconv.Atoi(p); err != nil {
			return URL{}, fmt.Errorf("invalid port %q: %w", p, ErrInvalidArgument)
		}
	}

	if pu.User != nil {
		u.user = pu.User.Username()
		if pw, ok := pu.User.Password(); ok {
			u.password = &pw
		}
	}

	if u.path == "" {
		u.path = "/"
	}

	return u, nil
}

// MustParse is like Parse but panics on error. Intended for literals.
func MustParse(raw string) URL {
	u, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return u
}

func sanitizeScheme(scheme string) (string, error) {
	s := strings.ToLower(scheme)
	if !slices.Contains(ValidSchemes, s) {
		return "", fmt.Errorf("scheme %q is not one of %v: %w", scheme, ValidSchemes, ErrInvalidArgument)
	}
	return s, nil
}

func (u URL) Scheme() string { return u.scheme }
func (u URL) Host() string   { return u.host }
func (u URL) Path() string   { return u.path }

// Port returns the explicit port, or 0 when none was given.
func (u URL) Port() int { return u.port }

// Fragment returns the fragment without the leading '#'.
func (u URL) Fragment() string { return u.fragment }

// UserInfo returns "user" or "user:password".
func (u URL) UserInfo() string {
	if u.password != nil {
		return u.user + ":" + *u.password
	}
	return u.user
}

// Authority returns "[user-info@]host[:port]". IPv6 hosts are bracketed.
func (u URL) Authority() string {
	authority := u.host
	if strings.Contains(authority, ":") {
		authority = "[" + authority + "]"
	}
	if ui := u.UserInfo(); ui != "" {
		authority = ui + "@" + authority
	}
	if u.port != 0 {
		authority += ":" + strconv.Itoa(u.port)
	}
	return authority
}

// Query returns the encoded query string without the leading '?'.
func (u URL) Query() string { return u.query.String() }

// QueryParameter returns the decoded value of key, or def when absent.
func (u URL) QueryParameter(key, def string) string {
	if v, ok := u.query.get(key); ok {
		return v
	}
	return def
}

func (u URL) HasQueryParameter(key string) bool {
	_, ok := u.query.get(key)
	return ok
}

// QueryParameters returns the decoded parameters in their original order.
func (u URL) QueryParameters() [][2]string {
	out := make([][2]string, 0, len(u.query.keys))
	for _, k := range u.query.keys {
		out = append(out, [2]string{k, u.query.values[k]})
	}
	return out
}

// Segments returns the path split on '/', ignoring leading and trailing slashes.
func (u URL) Segments() []string {
	return strings.Split(strings.Trim(u.path, "/"), "/")
}

// Segment returns a 1-indexed path segment. Negative indexes count from the
// end, -1 being the last segment. Index 0 returns ErrInvalidArgument.
func (u URL) Segment(index int) (string, bool, error) {
	if index == 0 {
		return "", false, fmt.Errorf("segment 0 does not exist, segments are 1-indexed: %w", ErrInvalidArgument)
	}
	segments := u.Segments()
	if index < 0 {
		slices.Reverse(segments)
		index = -index
	}
	if index > len(segments) {
		return "", false, nil
	}
	return segments[index-1], true, nil
}

func (u URL) FirstSegment() string {
	return u.Segments()[0]
}

func (u URL) LastSegment() string {
	s := u.Segments()
	return s[len(s)-1]
}

// Basename is the last path segment.
func (u URL) Basename() string {
	return u.LastSegment()
}

// Dirname is the path without its last segment.
func (u URL) Dirname() string {
	s := u.Segments()
	return "/" + strings.Join(s[:len(s)-1], "/")
}

func (u URL) clone() URL {
	c := u
	c.query = u.query.clone()
	if u.password != nil {
		pw := *u.password
		c.password = &pw
	}
	return c
}

func (u URL) WithScheme(scheme string) (URL, error) {
	s, err := sanitizeScheme(scheme)
	if err != nil {
		return u, err
	}
	c := u.clone()
	c.scheme = s
	return c, nil
}

// WithUserInfo sets the user and optional password.
func (u URL) WithUserInfo(user string, password ...string) URL {
	c := u.clone()
	c.user = user
	c.password = nil
	if len(password) > 0 {
		pw := password[0]
		c.password = &pw
	}
	return c
}

func (u URL) WithHost(host string) URL {
	c := u.clone()
	c.host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
	return c
}

// WithPort sets the port; 0 removes it.
func (u URL) WithPort(port int) URL {
	c := u.clone()
	c.port = port
	return c
}

// WithPath sets the path, adding a leading slash when missing.
func (u URL) WithPath(path string) URL {
	c := u.clone()
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	c.path = path
	return c
}

func (u URL) WithDirname(dirname string) URL {
	dirname = strings.Trim(dirname, "/")
	if u.Basename() == "" {
		return u.WithPath(dirname)
	}
	return u.WithPath(dirname + "/" + u.Basename())
}

func (u URL) WithBasename(basename string) URL {
	basename = strings.Trim(basename, "/")
	if u.Dirname() == "/" {
		return u.WithPath("/" + basename)
	}
	return u.WithPath(u.Dirname() + "/" + basename)
}

// WithQuery replaces the whole query string.
func (u URL) WithQuery(raw string) URL {
	c := u.clone()
	c.query = parseQuery(raw)
	return c
}

// WithQueryParameter sets key, moving it to the end of the query.
func (u URL) WithQueryParameter(key, value string) URL {
	c := u.clone()
	c.query.unset(key)
	c.query.set(key, value)
	return c
}

func (u URL) WithoutQueryParameter(key string) URL {
	c := u.clone()
	c.query.unset(key)
	return c
}

func (u URL) WithFragment(fragment string) URL {
	c := u.clone()
	c.fragment = fragment
	return c
}

// Matches reports whether both URLs render to the same string.
func (u URL) Matches(other URL) bool {
	return u.String() == other.String()
}

// String renders the URL. A bare "/" path is left out, so a parsed "/"
// renders as "".
func (u URL) String() string {
	var b strings.Builder

	switch {
	case u.scheme == "mailto":
		if u.path != "" {
			b.WriteString("mailto:")
		}
	case u.scheme != "":
		b.WriteString(u.scheme + "://")
	case u.Authority() != "":
		b.WriteString("//")
	}

	b.WriteString(u.Authority())

	if u.path != "/" {
		b.WriteString(u.path)
	}
	if q := u.Query(); q != "" {
		b.WriteString("?" + q)
	}
	if u.fragment != "" {
		b.WriteString("#" + u.fragment)
	}

	return b.String()
}
