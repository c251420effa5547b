package observability

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

var errTeapot = errors.New("teapot")

func TestFiberMiddlewarePassesThrough(t *testing.T) {
	var seen []error
	statusOf := func(err error) int {
		seen = append(seen, err)
		return fiber.StatusTeapot
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c fiber.Ctx, err error) error {
			return c.SendStatus(fiber.StatusTeapot)
		},
	})
	app.Use(FiberMiddleware("dochouse_backend", true, statusOf))
	app.Get("/ok", func(c fiber.Ctx) error { return c.SendString("fine") })
	app.Get("/fail", func(c fiber.Ctx) error { return errTeapot })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ok", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("GET /ok status = %d", resp.StatusCode)
	}
	if len(seen) != 0 {
		t.Errorf("statusOf called for successful request")
	}

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/fail", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusTeapot {
		t.Errorf("GET /fail status = %d", resp.StatusCode)
	}
	if len(seen) != 1 || !errors.Is(seen[0], errTeapot) {
		t.Errorf("statusOf saw %v", seen)
	}
}

// requestCount sums the http_server_request_count points collected by reader.
func requestCount(t *testing.T, reader *sdkmetric.ManualReader) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatal(err)
	}
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http_server_request_count" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("request count data = %T", m.Data)
			}
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

func TestFiberMiddlewareMetricsWithoutTracing(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	tests := []struct {
		name      string
		tracing   bool
		wantTrace bool
	}{
		{"tracing off", false, false},
		{"tracing on", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := requestCount(t, reader)

			app := fiber.New()
			app.Use(FiberMiddleware("dochouse_backend", tt.tracing, nil))
			app.Get("/doctors", func(c fiber.Ctx) error { return c.SendString("[]") })

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/doctors", nil))
			if err != nil {
				t.Fatal(err)
			}
			if got := resp.Header.Get("X-Trace-Id") != ""; got != tt.wantTrace {
				t.Errorf("X-Trace-Id present = %v, want %v", got, tt.wantTrace)
			}
			if got := requestCount(t, reader) - before; got != 1 {
				t.Errorf("request count grew by %d, want 1", got)
			}
		})
	}
}
