package openset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func less(a, b int) bool { return a < b }

func TestPushOrDecreaseInsertsThenImproves(t *testing.T) {
	s := New[string, int](less)

	result, idx := s.PushOrDecrease("A", 5, 5, 0)
	assert.Equal(t, Inserted, result)
	assert.Equal(t, 0, idx)

	result, idx2 := s.PushOrDecrease("A", 3, 3, 0)
	assert.Equal(t, Decreased, result)
	assert.Equal(t, idx, idx2)

	result, _ = s.PushOrDecrease("A", 9, 9, 0)
	assert.Equal(t, Unchanged, result)

	entry, ok := s.Get("A")
	require.True(t, ok)
	assert.Equal(t, 3, entry.G)
}

func TestPopMinSkipsStaleAndSettled(t *testing.T) {
	s := New[string, int](less)
	s.PushOrDecrease("A", 10, 10, 0)
	s.PushOrDecrease("A", 4, 4, 0) // stale heap entry for priority 10 left behind

	idx, node, g, ok := s.PopMin()
	require.True(t, ok)
	assert.Equal(t, "A", node)
	assert.Equal(t, 4, g)
	assert.True(t, s.IsSettled(idx))

	result, _ := s.PushOrDecrease("A", 1, 1, 0) // improves an already-settled node
	assert.Equal(t, Decreased, result)

	_, _, _, ok = s.PopMin()
	assert.False(t, ok, "the stale entry is discarded and the settled node is not popped again")
}

func TestPathToWalksToRoot(t *testing.T) {
	s := New[string, int](less)
	_, rootIdx := s.PushOrDecrease("A", 0, 0, 0)
	_, bIdx := s.PushOrDecrease("B", 1, 1, rootIdx)
	_, cIdx := s.PushOrDecrease("C", 2, 2, bIdx)

	assert.Equal(t, []string{"A", "B", "C"}, s.PathTo(cIdx))
}

func TestPeekMinPriorityMatchesPopMin(t *testing.T) {
	s := New[string, int](less)
	s.PushOrDecrease("A", 5, 5, 0)
	s.PushOrDecrease("B", 2, 2, 0)

	peeked, ok := s.PeekMinPriority()
	require.True(t, ok)

	_, _, g, ok := s.PopMin()
	require.True(t, ok)
	assert.Equal(t, peeked, g)
}
