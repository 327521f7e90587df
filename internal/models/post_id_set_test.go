package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostIDSetMembership(t *testing.T) {
	var s PostIDSet

	assert.False(t, s.Contains(7))

	s.Add(7)
	s.Add(3)
	assert.True(t, s.Contains(7))
	assert.True(t, s.Contains(3))

	// Adding an existing member must not duplicate it
	s.Add(7)
	assert.Len(t, s, 2)

	s.Remove(7)
	assert.False(t, s.Contains(7))
	assert.True(t, s.Contains(3))

	// Removing a non-member is a no-op
	s.Remove(99)
	assert.Len(t, s, 1)
}

func TestPostIDSetClone(t *testing.T) {
	s := PostIDSet{1, 2, 3}
	c := s.Clone()

	c.Add(4)
	c.Remove(1)

	assert.Equal(t, PostIDSet{1, 2, 3}, s)
	assert.Equal(t, PostIDSet{2, 3, 4}, c)

	// Cloning nil yields a usable empty set
	var empty PostIDSet
	clone := empty.Clone()
	clone.Add(5)
	assert.True(t, clone.Contains(5))
}

func TestPostIDSetValue(t *testing.T) {
	s := PostIDSet{4, 8}
	v, err := s.Value()
	require.NoError(t, err)
	assert.Equal(t, "[4,8]", v)

	var empty PostIDSet
	v, err = empty.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestPostIDSetScan(t *testing.T) {
	var s PostIDSet
	require.NoError(t, s.Scan([]byte(`[1,2,3]`)))
	assert.Equal(t, PostIDSet{1, 2, 3}, s)

	require.NoError(t, s.Scan("[9]"))
	assert.Equal(t, PostIDSet{9}, s)

	// NULL columns scan to an empty set
	require.NoError(t, s.Scan(nil))
	assert.Empty(t, s)

	assert.Error(t, s.Scan([]byte(`not json`)))
	assert.Error(t, s.Scan(42))
}
