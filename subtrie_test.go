package qptrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubtrie_NoMatch(t *testing.T) {
	t.Parallel()

	tr := New[Text, int]()
	tr.Insert("apple", 1)

	sub := tr.Subtrie("banana")
	assert.True(t, sub.IsEmpty())

	_, ok := sub.Get("apple")
	assert.False(t, ok)
}

func TestSubtrie_NestedNarrowing(t *testing.T) {
	t.Parallel()

	tr := New[Text, int]()
	tr.Insert("abc", 1)
	tr.Insert("abd", 2)
	tr.Insert("axy", 3)
	tr.Insert("zzz", 4)

	sub := tr.Subtrie("a")
	assert.False(t, sub.IsEmpty())

	narrower := sub.Subtrie("ab")
	require.False(t, narrower.IsEmpty())

	got := map[Text]int{}
	it := narrower.Iter()
	for {
		k, v, ok := it.Next()
		if !ok {
			break
		}
		got[k] = v
	}
	assert.Equal(t, map[Text]int{"abc": 1, "abd": 2}, got)

	_, ok := narrower.Get("axy")
	assert.False(t, ok)
}

func TestSubtrie_Get(t *testing.T) {
	t.Parallel()

	tr := New[Text, int]()
	tr.Insert("abc", 1)
	tr.Insert("abd", 2)

	sub := tr.Subtrie("ab")

	v, ok := sub.Get("abc")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = sub.Get("nope")
	assert.False(t, ok)
}
