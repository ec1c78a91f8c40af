package metrics_test

import (
	"context"
	"testing"

	"careerguide/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestSetup_ExportsToRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.Setup(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	counter, err := mp.Meter("test").Int64Counter("careerguide.test.calls")
	require.NoError(t, err)
	counter.Add(context.Background(), 2)

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if f.GetName() == "careerguide_test_calls_total" {
			found = true
			require.InDelta(t, 2, f.GetMetric()[0].GetCounter().GetValue(), 0)
		}
	}
	require.True(t, found, "otel counter should be exported through the prometheus registry")
}
