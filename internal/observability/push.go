package observability

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// JobName is the Pushgateway job under which generator runs are grouped.
const JobName = "cohort_generator"

// Push sends the default registry to a Pushgateway, grouped by run ID.
// The generator exits after one run, so metrics are pushed instead of scraped.
func Push(ctx context.Context, gatewayURL, runID string) error {
	return PushFrom(ctx, gatewayURL, runID, prometheus.DefaultGatherer)
}

// PushFrom is Push with an explicit gatherer.
func PushFrom(ctx context.Context, gatewayURL, runID string, gatherer prometheus.Gatherer) error {
	if gatewayURL == "" {
		return nil
	}
	pusher := push.New(gatewayURL, JobName).
		Gatherer(gatherer).
		Grouping("run_id", runID)
	if err := pusher.PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics: %w", err)
	}
	return nil
}
