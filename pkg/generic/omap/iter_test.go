package omap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterVisitsInOrder(t *testing.T) {
	m, err := FromPairs[string, int]("a", 1, "b", 2, "c", 3)
	require.NoError(t, err)

	it := m.Iter()
	var keys []string
	var vals []int
	for it.Next() {
		v, ok := it.Value()
		require.True(t, ok)
		keys = append(keys, it.Key())
		vals = append(vals, v)
	}
	assert.Equal(t, []string{"a", "b", "c"}, keys)
	assert.Equal(t, []int{1, 2, 3}, vals)
	// exhausted cursor stays exhausted
	assert.False(t, it.Next())
}

func TestIterSnapshotIgnoresLaterAdds(t *testing.T) {
	m, err := FromPairs[string, int]("a", 1, "b", 2)
	require.NoError(t, err)

	it := m.Iter()
	m.Set("c", 3)

	var keys []string
	for it.Next() {
		keys = append(keys, it.Key())
	}
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestIterYieldsDeletedKeyAsAbsent(t *testing.T) {
	m, err := FromPairs[string, int]("a", 1, "b", 2, "c", 3)
	require.NoError(t, err)

	it := m.Iter()
	_, ok := m.Del("b")
	require.True(t, ok)

	require.True(t, it.Next())
	assert.Equal(t, "a", it.Key())

	// deleted key is still visited, with an absent value
	require.True(t, it.Next())
	assert.Equal(t, "b", it.Key())
	v, ok := it.Value()
	assert.False(t, ok)
	assert.Zero(t, v)

	require.True(t, it.Next())
	assert.Equal(t, "c", it.Key())
	v, ok = it.Value()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	assert.False(t, it.Next())
}

func TestIterValueTracksLiveUpdates(t *testing.T) {
	m, err := FromPairs[string, int]("a", 1, "b", 2)
	require.NoError(t, err)

	it := m.Iter()
	m.Set("b", 20)

	require.True(t, it.Next())
	require.True(t, it.Next())
	k, v, ok := it.Entry()
	assert.Equal(t, "b", k)
	assert.Equal(t, 20, v)
	assert.True(t, ok)
}

func TestIterOnEmptyMap(t *testing.T) {
	it := New[string, int]().Iter()
	assert.False(t, it.Next())
}

func TestIterIndependentCursors(t *testing.T) {
	m, err := FromPairs[string, int]("a", 1, "b", 2)
	require.NoError(t, err)

	a, b := m.Iter(), m.Iter()
	require.True(t, a.Next())
	require.True(t, a.Next())
	require.True(t, b.Next())
	assert.Equal(t, "b", a.Key())
	assert.Equal(t, "a", b.Key())
}
