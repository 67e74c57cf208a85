package markup

import (
	"slices"
	"strings"
)

// ClassKey is the multi-valued attribute that is union-merged instead of replaced.
const ClassKey = "class"

// Attr is a single attribute literal. Passing a slice of Attr keeps the
// caller's ordering, which a map would not.
type Attr struct {
	Key   string
	Value string
}

// Attributes is an ordered bag of HTML attributes.
//
// Keys render in first insertion order. The class attribute holds a set of
// class names that only ever grows through Set, AddClass and MergeWith;
// every other key is last-write-wins.
type Attributes struct {
	keys   []string
	values map[string][]string
}

// NewAttributes creates a bag pre-filled with the given attributes, in order.
func NewAttributes(attrs ...Attr) *Attributes {
	a := &Attributes{values: make(map[string][]string)}
	for _, attr := range attrs {
		a.Set(attr.Key, attr.Value)
	}
	return a
}

func (a *Attributes) init() {
	if a.values == nil {
		a.values = make(map[string][]string)
	}
}

func (a *Attributes) touch(key string) {
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
}

// Set assigns a value. For the class key the value is split on whitespace
// and each name is added to the class set.
func (a *Attributes) Set(key, value string) *Attributes {
	if key == ClassKey {
		return a.AddClass(value)
	}
	return a.SetValues(key, value)
}

// SetValues assigns a multi-valued attribute, rendered space-joined.
// For the class key this behaves like AddClass.
func (a *Attributes) SetValues(key string, values ...string) *Attributes {
	if key == ClassKey {
		return a.AddClass(values...)
	}
	a.init()
	a.touch(key)
	a.values[key] = slices.Clone(values)
	return a
}

// Unset removes a key. Removing a missing key is a no-op.
func (a *Attributes) Unset(key string) *Attributes {
	if _, ok := a.values[key]; !ok {
		return a
	}
	delete(a.values, key)
	a.keys = slices.DeleteFunc(a.keys, func(k string) bool { return k == key })
	return a
}

// AddClass adds class names to the class set, skipping names already present.
// Each argument may hold several space separated names.
func (a *Attributes) AddClass(names ...string) *Attributes {
	a.init()
	for _, name := range names {
		for _, class := range strings.Fields(name) {
			a.touch(ClassKey)
			if !slices.Contains(a.values[ClassKey], class) {
				a.values[ClassKey] = append(a.values[ClassKey], class)
			}
		}
	}
	return a
}

// Classes returns a copy of the class set in insertion order.
func (a *Attributes) Classes() []string {
	if a == nil {
		return nil
	}
	return slices.Clone(a.values[ClassKey])
}

// Get returns the space-joined value of key, or "" when absent.
func (a *Attributes) Get(key string) string {
	if a == nil {
		return ""
	}
	return strings.Join(a.values[key], " ")
}

// Has reports whether key was set.
func (a *Attributes) Has(key string) bool {
	if a == nil {
		return false
	}
	_, ok := a.values[key]
	return ok
}

// Keys returns the attribute names in render order.
func (a *Attributes) Keys() []string {
	if a == nil {
		return nil
	}
	return slices.Clone(a.keys)
}

// Len is the number of keys in the bag.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// IsEmpty reports whether the bag would render to an empty string.
func (a *Attributes) IsEmpty() bool {
	return a.String() == ""
}

// MergeWith copies other's attributes into a. Other's values win, except for
// class, whose names are unioned into a's set.
func (a *Attributes) MergeWith(other *Attributes) *Attributes {
	if other == nil {
		return a
	}
	// snapshot first so merging a bag into itself is safe
	keys := slices.Clone(other.keys)
	values := make(map[string][]string, len(keys))
	for _, k := range keys {
		values[k] = slices.Clone(other.values[k])
	}
	for _, k := range keys {
		if k == ClassKey {
			a.AddClass(values[k]...)
			continue
		}
		a.SetValues(k, values[k]...)
	}
	return a
}

// Clone returns an independent copy.
func (a *Attributes) Clone() *Attributes {
	return NewAttributes().MergeWith(a)
}

// String renders the bag as `key="value"` pairs separated by single spaces.
// Empty values render as bare names and an empty class set is left out.
func (a *Attributes) String() string {
	if a == nil {
		return ""
	}
	parts := make([]string, 0, len(a.keys))
	for _, k := range a.keys {
		vals := a.values[k]
		if k == ClassKey && len(vals) == 0 {
			continue
		}
		v := strings.Join(vals, " ")
		if v == "" {
			parts = append(parts, k)
			continue
		}
		parts = append(parts, k+`="`+v+`"`)
	}
	return strings.Join(parts, " ")
}
