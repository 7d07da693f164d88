package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eyesclosed/generate"
	"github.com/katalvlaran/eyesclosed/matching"
	"github.com/katalvlaran/eyesclosed/metrics"
	"github.com/katalvlaran/eyesclosed/oracle"
)

func TestCollector_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	g, err := generate.Build(8, nil, generate.Complete())
	require.NoError(t, err)
	counting := oracle.NewCounting(g)
	for i := 0; i < 3; i++ {
		counting.Reset()
		start := time.Now()
		m, err := matching.Compute(counting, nil)
		require.NoError(t, err)
		c.Observe(m, counting.Queries(), time.Since(start))
	}
	c.Observe(nil, 5, time.Millisecond)

	require.InDelta(t, 3, testutil.ToFloat64(c.Matchings), 0)
	require.InDelta(t, 12, testutil.ToFloat64(c.MatchedPairs), 0, "K8 gives 4 pairs per draw")
	require.Positive(t, testutil.ToFloat64(c.OracleQueries))
	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	require.Equal(t, 5, n)

	expected := `
# HELP eyesclosed_matchings_total Total number of matchings computed
# TYPE eyesclosed_matchings_total counter
eyesclosed_matchings_total 3
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "eyesclosed_matchings_total"))
}

func TestNewCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewCollector(reg)
	require.NoError(t, err)
	_, err = metrics.NewCollector(reg)
	require.Error(t, err)
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.NewCollector(reg)
	require.NoError(t, err)
	c.Observe(nil, 7, time.Microsecond)

	rec := httptest.NewRecorder()
	metrics.Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "eyesclosed_oracle_queries_total 7")
}
