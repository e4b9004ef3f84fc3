package disjointset_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mstbench/disjointset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_InvalidSize rejects empty and negative sizes.
func TestNew_InvalidSize(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		s, err := disjointset.New(n)
		assert.Nil(t, s)
		assert.ErrorIs(t, err, disjointset.ErrInvalidSize, "n=%d", n)
	}
}

// TestNew_Singletons starts with every element as its own representative.
func TestNew_Singletons(t *testing.T) {
	s, err := disjointset.New(5)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, 5, s.Components())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, s.Find(i))
	}
	assert.False(t, s.Same(0, 4))
}

// TestUnite_SameAfterUnite checks unite(a,b) ⇒ same(a,b), and that a second
// unite of the same pair reports no change.
func TestUnite_SameAfterUnite(t *testing.T) {
	s, err := disjointset.New(4)
	require.NoError(t, err)

	assert.True(t, s.Unite(0, 1))
	assert.True(t, s.Same(0, 1))
	assert.True(t, s.Same(1, 0))
	assert.False(t, s.Unite(1, 0), "already in one component")
	assert.Equal(t, 3, s.Components())

	assert.True(t, s.Unite(2, 3))
	assert.False(t, s.Same(1, 2))
	assert.True(t, s.Unite(3, 0))
	assert.True(t, s.Same(1, 2))
	assert.Equal(t, 1, s.Components())
}

// TestUnite_Commutative checks that the call order of the arguments does not
// change the resulting partition.
func TestUnite_Commutative(t *testing.T) {
	a, err := disjointset.New(6)
	require.NoError(t, err)
	b, err := disjointset.New(6)
	require.NoError(t, err)

	pairs := [][2]int{{0, 1}, {2, 3}, {1, 3}, {4, 5}}
	for _, p := range pairs {
		a.Unite(p[0], p[1])
		b.Unite(p[1], p[0])
	}
	for x := 0; x < 6; x++ {
		for y := 0; y < 6; y++ {
			assert.Equal(t, a.Same(x, y), b.Same(x, y), "x=%d y=%d", x, y)
		}
		assert.Equal(t, a.Find(x) == a.Find(0), b.Find(x) == b.Find(0))
	}
}

// TestFind_AgainstNaiveLabels cross-checks random unions against a naive
// label-propagation partition.
func TestFind_AgainstNaiveLabels(t *testing.T) {
	const n = 200
	r := rand.New(rand.NewSource(7))
	s, err := disjointset.New(n)
	require.NoError(t, err)

	label := make([]int, n)
	for i := range label {
		label[i] = i
	}
	relabel := func(from, to int) {
		for i := range label {
			if label[i] == from {
				label[i] = to
			}
		}
	}

	for step := 0; step < 300; step++ {
		x, y := r.Intn(n), r.Intn(n)
		merged := s.Unite(x, y)
		assert.Equal(t, label[x] != label[y], merged)
		if label[x] != label[y] {
			relabel(label[x], label[y])
		}
	}

	distinct := map[int]bool{}
	for i := 0; i < n; i++ {
		distinct[label[i]] = true
		for j := i + 1; j < n; j += 17 {
			assert.Equal(t, label[i] == label[j], s.Same(i, j))
		}
	}
	assert.Equal(t, len(distinct), s.Components())
}
