package uri

import (
	"net/url"
	"slices"
	"strings"
)

// query is an ordered set of query parameters. URL copies it on every
// With* call so values never share a backing map.
type query struct {
	keys   []string
	values map[string]string
}

func parseQuery(raw string) query {
	q := query{values: make(map[string]string)}
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if k, err := url.PathUnescape(key); err == nil {
			key = k
		}
		if v, err := url.PathUnescape(value); err == nil {
			value = v
		}
		q.set(key, value)
	}
	return q
}

func (q query) clone() query {
	c := query{keys: slices.Clone(q.keys), values: make(map[string]string, len(q.values))}
	for k, v := range q.values {
		c.values[k] = v
	}
	return c
}

func (q *query) set(key, value string) {
	if q.values == nil {
		q.values = make(map[string]string)
	}
	if _, ok := q.values[key]; !ok {
		q.keys = append(q.keys, key)
	}
	q.values[key] = value
}

func (q *query) unset(key string) {
	if _, ok := q.values[key]; !ok {
		return
	}
	delete(q.values, key)
	q.keys = slices.DeleteFunc(q.keys, func(k string) bool { return k == key })
}

func (q query) get(key string) (string, bool) {
	v, ok := q.values[key]
	return v, ok
}

func (q query) String() string {
	parts := make([]string, 0, len(q.keys))
	for _, k := range q.keys {
		parts = append(parts, rawEscape(k)+"="+rawEscape(q.values[k]))
	}
	return strings.Join(parts, "&")
}

// rawEscape percent-encodes everything outside the RFC 3986 unreserved set,
// encoding spaces as %20 rather than +.
func rawEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
