package observability

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestCountersAccumulate(t *testing.T) {
	beforeRows := testutil.ToFloat64(rowsGeneratedCounter)
	beforeSteps := testutil.ToFloat64(missingCellsCounter.WithLabelValues("steps"))
	beforeOutliers := testutil.ToFloat64(outliersCounter)

	RecordRowsGenerated(36000)
	RecordMissingInjected("steps", 1800)
	RecordOutliersInjected(360)

	require.InDelta(t, beforeRows+36000, testutil.ToFloat64(rowsGeneratedCounter), 0.0001)
	require.InDelta(t, beforeSteps+1800, testutil.ToFloat64(missingCellsCounter.WithLabelValues("steps")), 0.0001)
	require.InDelta(t, beforeOutliers+360, testutil.ToFloat64(outliersCounter), 0.0001)
}

func TestObserveStage(t *testing.T) {
	before := stageSampleCount(t, "synthesize")
	ObserveStage("synthesize", 25*time.Millisecond)
	require.Equal(t, before+1, stageSampleCount(t, "synthesize"))
}

func TestRecordRunCompletedIgnoresZero(t *testing.T) {
	ts := time.Unix(1_700_000_000, 0)
	RecordRunCompleted(ts)
	RecordRunCompleted(time.Time{})
	require.Equal(t, float64(ts.Unix()), testutil.ToFloat64(lastRunGauge))
}

func TestPushFromSendsToGateway(t *testing.T) {
	var (
		mu   sync.Mutex
		path string
		body []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		path = r.URL.Path
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	reg := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_rows_total", Help: "rows"})
	c.Add(3)
	reg.MustRegister(c)

	require.NoError(t, PushFrom(context.Background(), srv.URL, "run-1", reg))

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, "/metrics/job/cohort_generator/run_id/run-1", path)
	require.NotEmpty(t, body)
}

func TestPushSkipsWithoutGateway(t *testing.T) {
	require.NoError(t, Push(context.Background(), "", "run-1"))
}

func stageSampleCount(t *testing.T, stage string) uint64 {
	t.Helper()
	observer, err := stageDuration.GetMetricWithLabelValues(stage)
	require.NoError(t, err)
	var metric dto.Metric
	require.NoError(t, observer.(prometheus.Metric).Write(&metric))
	return metric.GetHistogram().GetSampleCount()
}
