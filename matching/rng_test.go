package matching

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPermutation(t *testing.T) {
	for _, n := range []int{0, 1, 2, 17} {
		p := permutation(n, rand.New(rand.NewSource(int64(n)+1)))
		require.Len(t, p, n)
		sorted := append([]int(nil), p...)
		sort.Ints(sorted)
		for i, v := range sorted {
			require.Equal(t, i, v)
		}
	}
	require.Equal(t, permutation(10, nil), permutation(10, rngFromSeed(0)))
}

func TestDeriveSeed_Streams(t *testing.T) {
	seen := make(map[int64]bool)
	for s := uint64(0); s < 1000; s++ {
		x := deriveSeed(defaultRNGSeed, s)
		require.False(t, seen[x], "stream %d collides", s)
		seen[x] = true
	}
	require.Equal(t, deriveSeed(7, 3), deriveSeed(7, 3))
	require.NotEqual(t, deriveSeed(7, 3), deriveSeed(8, 3))
}
