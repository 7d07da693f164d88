package matching_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eyesclosed/matching"
	"github.com/katalvlaran/eyesclosed/oracle"
)

func TestFromPairs(t *testing.T) {
	m, err := matching.FromPairs(4, []matching.Pair{{U: 3, V: 2}, {U: 0, V: 1}})
	require.NoError(t, err)
	require.Equal(t, 2, m.Len())
	require.True(t, m.Contains(2, 3))
	require.True(t, m.Contains(1, 0))
	require.False(t, m.Contains(0, 2))
	require.False(t, m.Contains(-1, 7))
	require.Equal(t, []oracle.Edge{{U: 0, V: 1}, {U: 2, V: 3}}, m.Edges())

	empty, err := matching.FromPairs(0, nil)
	require.NoError(t, err)
	require.Zero(t, empty.Len())

	bad := [][]matching.Pair{
		{{U: 0, V: 0}},
		{{U: 0, V: 4}},
		{{U: -1, V: 1}},
		{{U: 0, V: 1}, {U: 1, V: 2}},
		{{U: 0, V: 1}, {U: 1, V: 0}},
	}
	for _, pairs := range bad {
		_, err := matching.FromPairs(4, pairs)
		require.ErrorIs(t, err, matching.ErrInvalidMatching, "pairs %v", pairs)
	}
	_, err = matching.FromPairs(-1, nil)
	require.ErrorIs(t, err, matching.ErrInvalidMatching)
}

func TestValidate(t *testing.T) {
	g := graphOf(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})

	ok, err := matching.FromPairs(4, []matching.Pair{{U: 0, V: 1}, {U: 2, V: 3}})
	require.NoError(t, err)
	require.NoError(t, matching.Validate(g, ok))

	notEdge, err := matching.FromPairs(4, []matching.Pair{{U: 0, V: 2}})
	require.NoError(t, err)
	require.ErrorIs(t, matching.Validate(g, notEdge), matching.ErrInvalidMatching)

	wrongSize, err := matching.FromPairs(3, []matching.Pair{{U: 0, V: 1}})
	require.NoError(t, err)
	require.ErrorIs(t, matching.Validate(g, wrongSize), matching.ErrInvalidMatching)

	require.ErrorIs(t, matching.Validate(g, nil), matching.ErrInvalidMatching)
	require.ErrorIs(t, matching.Validate(nil, ok), matching.ErrNilGraph)
}

func TestIsMaximal(t *testing.T) {
	g := graphOf(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})

	// {1,2} blocks both 0-1 and 2-3
	m, err := matching.FromPairs(4, []matching.Pair{{U: 1, V: 2}})
	require.NoError(t, err)
	maximal, err := matching.IsMaximal(g, m)
	require.NoError(t, err)
	require.True(t, maximal)

	// {0,1} leaves 2-3 open
	m, err = matching.FromPairs(4, []matching.Pair{{U: 0, V: 1}})
	require.NoError(t, err)
	maximal, err = matching.IsMaximal(g, m)
	require.NoError(t, err)
	require.False(t, maximal)

	_, err = matching.IsMaximal(g, nil)
	require.ErrorIs(t, err, matching.ErrInvalidMatching)
	_, err = matching.IsMaximal(nil, m)
	require.ErrorIs(t, err, matching.ErrNilGraph)
}
