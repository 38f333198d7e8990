package qptrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparse_InsertGetRemove(t *testing.T) {
	t.Parallel()

	var s sparse[string]

	assert.Equal(t, 0, s.len())
	assert.False(t, s.contains(5))

	s.insert(5, "five")
	s.insert(0, "head")
	s.insert(16, "max")

	require.Equal(t, 3, s.len())
	assert.True(t, s.contains(0))
	assert.True(t, s.contains(5))
	assert.True(t, s.contains(16))
	assert.False(t, s.contains(1))

	v, ok := s.get(5)
	require.True(t, ok)
	assert.Equal(t, "five", v)

	// entries stay in ascending slot order regardless of insertion order.
	assert.Equal(t, []string{"head", "five", "max"}, s.entries)

	got := s.remove(5)
	assert.Equal(t, "five", got)
	assert.Equal(t, 2, s.len())
	assert.False(t, s.contains(5))
	assert.Equal(t, []string{"head", "max"}, s.entries)
}

func TestSparse_GetOrAny(t *testing.T) {
	t.Parallel()

	var s sparse[int]
	s.insert(3, 30)
	s.insert(9, 90)

	got := s.getOrAny(3)
	assert.Equal(t, 30, *got)

	// absent slot falls back to an arbitrary present entry.
	got = s.getOrAny(1)
	assert.Equal(t, 30, *got)
}

func TestSparse_ClearLast(t *testing.T) {
	t.Parallel()

	var s sparse[int]
	s.insert(7, 42)

	assert.Equal(t, 42, s.clearLast())
	assert.Equal(t, 0, s.len())
	assert.False(t, s.contains(7))
}

func TestSparse_GetPtrMutates(t *testing.T) {
	t.Parallel()

	var s sparse[int]
	s.insert(2, 1)

	p := s.getPtr(2)
	require.NotNil(t, p)
	*p = 99

	v, ok := s.get(2)
	require.True(t, ok)
	assert.Equal(t, 99, v)

	assert.Nil(t, s.getPtr(3))
}
