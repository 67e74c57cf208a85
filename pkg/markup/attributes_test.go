package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributesString(t *testing.T) {
	tests := []struct {
		name  string
		attrs *Attributes
		want  string
	}{
		{"empty", NewAttributes(), ""},
		{"nil", nil, ""},
		{"single", NewAttributes(Attr{"href", "/x"}), `href="/x"`},
		{"insertion order", NewAttributes(Attr{"id", "a"}, Attr{"class", "b"}, Attr{"href", "/"}), `id="a" class="b" href="/"`},
		{"bare attribute", NewAttributes(Attr{"disabled", ""}), `disabled`},
		{"class split", NewAttributes(Attr{"class", "a  b"}, Attr{"class", "b c"}), `class="a b c"`},
		{"empty class omitted", NewAttributes(Attr{"class", ""}, Attr{"id", "x"}), `id="x"`},
		{"multi value", NewAttributes().SetValues("rel", "noopener", "noreferrer"), `rel="noopener noreferrer"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.attrs.String())
		})
	}
}

func TestAttributesSetOverwritesInPlace(t *testing.T) {
	a := NewAttributes(Attr{"id", "one"}, Attr{"title", "t"})
	a.Set("id", "two")
	assert.Equal(t, `id="two" title="t"`, a.String())
}

func TestAttributesUnset(t *testing.T) {
	a := NewAttributes(Attr{"id", "one"}, Attr{"title", "t"})
	a.Unset("id").Unset("missing")
	assert.Equal(t, `title="t"`, a.String())
	assert.False(t, a.Has("id"))
	assert.Equal(t, []string{"title"}, a.Keys())

	// re-adding goes to the end
	a.Set("id", "three")
	assert.Equal(t, `title="t" id="three"`, a.String())
}

func TestAttributesMergeWith(t *testing.T) {
	a := NewAttributes(Attr{"class", "a b"}, Attr{"id", "left"})
	b := NewAttributes(Attr{"id", "right"}, Attr{"class", "b c"}, Attr{"rel", "x"})

	a.MergeWith(b)

	assert.Equal(t, `class="a b c" id="right" rel="x"`, a.String())
	// b untouched
	assert.Equal(t, `id="right" class="b c" rel="x"`, b.String())
}

func TestAttributesMergeEmptyIsIdentity(t *testing.T) {
	a := NewAttributes(Attr{"class", "a"}, Attr{"href", "/"})
	before := a.String()

	a.MergeWith(NewAttributes())
	a.MergeWith(nil)

	assert.Equal(t, before, a.String())
}

func TestAttributesMergeSelf(t *testing.T) {
	a := NewAttributes(Attr{"class", "a b a"}, Attr{"href", "/"})
	a.MergeWith(a)

	assert.Equal(t, `class="a b" href="/"`, a.String())
	assert.Equal(t, []string{"a", "b"}, a.Classes())
}

func TestAttributesClone(t *testing.T) {
	a := NewAttributes(Attr{"class", "a"})
	c := a.Clone()
	c.AddClass("b")

	require.Equal(t, []string{"a"}, a.Classes())
	assert.Equal(t, []string{"a", "b"}, c.Classes())
}

func TestAttributesZeroValue(t *testing.T) {
	var a Attributes
	a.AddClass("x").Set("id", "y")
	assert.Equal(t, `class="x" id="y"`, a.String())
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, "y", a.Get("id"))
}
