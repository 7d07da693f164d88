package generate_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eyesclosed/generate"
	"github.com/katalvlaran/eyesclosed/oracle"
)

func edgesOf(t *testing.T, g *oracle.Graph) []oracle.Edge {
	t.Helper()
	es, err := oracle.Edges(g)
	require.NoError(t, err)
	return es
}

func TestPathCycleStarComplete(t *testing.T) {
	g, err := generate.Build(4, nil, generate.Path())
	require.NoError(t, err)
	require.Equal(t, []oracle.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}}, edgesOf(t, g))

	g, err = generate.Build(4, nil, generate.Cycle())
	require.NoError(t, err)
	require.Equal(t, 4, g.EdgeCount())
	ok, _ := g.Adjacent(3, 0)
	require.True(t, ok, "cycle closes 3-0")

	g, err = generate.Build(5, nil, generate.Star())
	require.NoError(t, err)
	d, _ := g.Degree(0)
	require.Equal(t, 4, d)
	require.Equal(t, 4, g.EdgeCount())

	g, err = generate.Build(6, nil, generate.Complete())
	require.NoError(t, err)
	require.Equal(t, 15, g.EdgeCount())
	require.NoError(t, g.Validate())
}

func TestBuild_Errors(t *testing.T) {
	_, err := generate.Build(-1, nil)
	require.ErrorIs(t, err, generate.ErrTooFewVertices)

	_, err = generate.Build(2, nil, generate.Cycle())
	require.ErrorIs(t, err, generate.ErrTooFewVertices)

	_, err = generate.Build(0, nil, generate.Star())
	require.ErrorIs(t, err, generate.ErrTooFewVertices)

	_, err = generate.Build(3, nil, generate.RandomSparse(1.5))
	require.ErrorIs(t, err, generate.ErrInvalidProbability)

	_, err = generate.Build(3, nil, generate.RandomSparse(-0.1))
	require.ErrorIs(t, err, generate.ErrInvalidProbability)

	_, err = generate.Build(3, nil, generate.RandomSparse(0.5))
	require.ErrorIs(t, err, generate.ErrNeedRandSource)
}

func TestBuild_Layered(t *testing.T) {
	g, err := generate.Build(5, nil, generate.Path(), generate.Cycle())
	require.NoError(t, err)
	require.Equal(t, 5, g.EdgeCount(), "overlapping edges are idempotent")
}

func TestRandomSparse_Extremes(t *testing.T) {
	g, err := generate.Build(6, nil, generate.RandomSparse(0))
	require.NoError(t, err, "p=0 needs no rng")
	require.Zero(t, g.EdgeCount())

	g, err = generate.Build(6, nil, generate.RandomSparse(1))
	require.NoError(t, err, "p=1 needs no rng")
	require.Equal(t, 15, g.EdgeCount())
}

func TestRandomSparse_SeedDeterminism(t *testing.T) {
	a, err := generate.Build(30, []generate.Option{generate.WithSeed(42)}, generate.RandomSparse(0.2))
	require.NoError(t, err)
	b, err := generate.Random(30, 0.2, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	require.Equal(t, edgesOf(t, a), edgesOf(t, b))
	require.NoError(t, a.Validate())
	require.Positive(t, a.EdgeCount())
	require.Less(t, a.EdgeCount(), 30*29/2)
}

func TestWithRand_NilKeepsSource(t *testing.T) {
	opts := []generate.Option{generate.WithSeed(3), generate.WithRand(nil)}
	_, err := generate.Build(10, opts, generate.RandomSparse(0.5))
	require.NoError(t, err)
}
