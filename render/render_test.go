package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eyesclosed/generate"
	"github.com/katalvlaran/eyesclosed/matching"
	"github.com/katalvlaran/eyesclosed/render"
)

func TestGraph(t *testing.T) {
	g, err := generate.Build(3, nil, generate.Path())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Graph(&buf, g, "path"))
	want := `graph "path" {
	label="path";
	layout=circo;
	node [shape=circle];
	0;
	1;
	2;
	0 -- 1;
	1 -- 2;
}
`
	require.Equal(t, want, buf.String())
}

func TestMatching(t *testing.T) {
	g, err := generate.Build(4, nil, generate.Path())
	require.NoError(t, err)
	m, err := matching.ComputeWithOrder(g, []int{2, 0, 1, 3})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Matching(&buf, g, m, "m"))
	out := buf.String()

	require.Contains(t, out, "\t1 -- 2 [color=red, penwidth=8];\n")
	require.Contains(t, out, "\t0 -- 1 [color=grey, penwidth=1];\n")
	require.Contains(t, out, "\t2 -- 3 [color=grey, penwidth=1];\n")
	require.Contains(t, out, "\t1 [style=filled, fillcolor=\"#ff0000cc\"];\n")
	require.Contains(t, out, "\t0 [style=filled, fillcolor=\"#0000ff4d\"];\n")
	require.Equal(t, 1, strings.Count(out, "penwidth=8"))
	require.True(t, strings.HasSuffix(out, "}\n"))
}

func TestMatching_SizeMismatch(t *testing.T) {
	g, err := generate.Build(4, nil, generate.Path())
	require.NoError(t, err)
	m, err := matching.FromPairs(3, []matching.Pair{{U: 0, V: 1}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.ErrorIs(t, render.Matching(&buf, g, m, "x"), render.ErrSizeMismatch)
	require.ErrorIs(t, render.Matching(&buf, g, nil, "x"), render.ErrSizeMismatch)
	require.Zero(t, buf.Len(), "nothing is written on error")
}

func TestRandom(t *testing.T) {
	g, err := generate.Build(6, nil, generate.Complete())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Random(&buf, g, nil, "k6"))
	require.Equal(t, 3, strings.Count(buf.String(), "penwidth=8"), "K6 always matches perfectly")
	require.Equal(t, 6, strings.Count(buf.String(), "#ff0000cc"))
}
