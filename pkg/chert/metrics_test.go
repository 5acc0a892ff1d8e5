package chert

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsRecordNothing(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.observe("getBalance", "success", time.Millisecond)
	})
}

func TestMetricsCountOutcomes(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetricsWithRegistry(registry)

	client, _ := newTestClient(t, rpcHandler(t, map[string]func([]any) (any, *rpcError){
		"getNetworkStatus": func([]any) (any, *rpcError) {
			return NetworkStatus{}, nil
		},
	}))
	client.metrics = metrics

	_, err := client.NetworkStatus(context.Background())
	require.NoError(t, err)
	_, err = client.Call(context.Background(), "getNetworkStatus", nil)
	require.NoError(t, err)

	success := metrics.RPCRequests.WithLabelValues("getNetworkStatus", "success")
	assert.Equal(t, float64(2), testutil.ToFloat64(success))
}

func TestMetricsLabelErrorKind(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetricsWithRegistry(registry)

	client, _ := newTestClient(t, rpcHandler(t, nil))
	client.metrics = metrics

	_, err := client.Call(context.Background(), "unknownMethod", nil)
	require.Error(t, err)

	failed := metrics.RPCRequests.WithLabelValues("unknownMethod", "api")
	assert.Equal(t, float64(1), testutil.ToFloat64(failed))
}

func TestOutcomeLabel(t *testing.T) {
	assert.Equal(t, "success", outcomeLabel(nil))
	assert.Equal(t, "network", outcomeLabel(NewNetworkError("down", nil)))
	assert.Equal(t, "validation", outcomeLabel(NewValidationError("field", "bad")))
	assert.Equal(t, "unknown", outcomeLabel(assert.AnError))
}
