package metrics_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepstar/astar"
	"github.com/katalvlaran/stepstar/gridgraph"
	"github.com/katalvlaran/stepstar/heuristic"
	"github.com/katalvlaran/stepstar/metrics"
)

func TestObserve_Events(t *testing.T) {
	r := metrics.NewRegistry()

	r.Observe(astar.Event{Kind: astar.EventInitialized, FrontierLen: 1})
	r.Observe(astar.Event{Kind: astar.EventExpanded, Expansions: 1, FrontierLen: 3, Pushed: 3})
	r.Observe(astar.Event{Kind: astar.EventStale, Expansions: 1, FrontierLen: 2})
	r.Observe(astar.Event{Kind: astar.EventExpanded, Expansions: 2, FrontierLen: 2, Pushed: 1, Deduped: 2})
	r.Observe(astar.Event{Kind: astar.EventLimit, Expansions: 2})

	assert.Equal(t, 2.0, testutil.ToFloat64(r.StepsTotal.WithLabelValues("expanded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.StepsTotal.WithLabelValues("stale")))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.SuccessorsPushed))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.SuccessorsDedup))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.SearchesTotal.WithLabelValues("limit")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.FrontierSize))
	assert.Equal(t, 1, testutil.CollectAndCount(r.PathCost))

	// Registries are private: a second one starts from zero.
	n, err := testutil.GatherAndCount(metrics.NewRegistry().GetPrometheusRegistry(), "stepstar_successors_pushed_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.NewRegistry().SuccessorsPushed))
}

func TestRegistry_WithSearch(t *testing.T) {
	gg, m, err := gridgraph.Parse([]string{
		"S..",
		"...",
		"..G",
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	h, err := heuristic.ForGrid(heuristic.Manhattan, gg)
	require.NoError(t, err)

	r := metrics.NewRegistry()
	s, err := astar.New[gridgraph.Point](gg, m.Start, m.Goal, h, astar.WithObserver(r))
	require.NoError(t, err)
	res, err := s.Run(context.Background())
	require.NoError(t, err)
	require.True(t, res.Found)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.SearchesTotal.WithLabelValues("completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.StepsTotal.WithLabelValues("initialized")))
	assert.Equal(t, float64(res.Expansions), testutil.ToFloat64(r.Expansions))

	samples, err := r.Summary()
	require.NoError(t, err)
	found := map[string]float64{}
	for _, sm := range samples {
		found[sm.Name+"{"+sm.Labels+"}"] = sm.Value
	}
	assert.Equal(t, 1.0, found["stepstar_path_cost_count{}"])
	assert.Equal(t, 4.0, found["stepstar_path_cost_sum{}"])
	assert.Equal(t, 5.0, found["stepstar_path_length_sum{}"])
	assert.Equal(t, 1.0, found["stepstar_searches_total{outcome=completed}"])
}
