package observability

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/event"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MongoMonitor records the duration and outcome of every driver command.
// The meter is resolved lazily so the monitor can be built before
// InitTelemetry installs the global provider.
func MongoMonitor() *event.CommandMonitor {
	var (
		once     sync.Once
		duration metric.Float64Histogram
	)
	histogram := func() metric.Float64Histogram {
		once.Do(func() {
			duration, _ = otel.Meter(tracerName).Float64Histogram(
				"db_client_operation_duration_ms",
				metric.WithDescription("MongoDB command duration in milliseconds"),
				metric.WithUnit("ms"),
			)
		})
		return duration
	}

	record := func(ctx context.Context, name, db string, d time.Duration, outcome string) {
		h := histogram()
		if h == nil {
			return
		}
		h.Record(ctx, float64(d.Microseconds())/1000, metric.WithAttributes(
			attribute.String("db.system", "mongodb"),
			attribute.String("db.namespace", db),
			attribute.String("db.operation.name", name),
			attribute.String("outcome", outcome),
		))
	}

	return &event.CommandMonitor{
		Succeeded: func(ctx context.Context, e *event.CommandSucceededEvent) {
			record(ctx, e.CommandName, e.DatabaseName, e.Duration, "success")
		},
		Failed: func(ctx context.Context, e *event.CommandFailedEvent) {
			record(ctx, e.CommandName, e.DatabaseName, e.Duration, "failure")
		},
	}
}
