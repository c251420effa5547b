package observability

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "github.com/Alijeyrad/dochouse_backend/pkg/observability"
)

// FiberMiddleware records request count and latency and, when tracing is
// set, opens a server span per request. Routes are labelled by pattern, never
// by raw path, so emails in /users/admin/:email stay out of metric labels.
// statusOf maps a handler error to the status the error handler will render.
func FiberMiddleware(serviceName string, tracing bool, statusOf func(error) int) fiber.Handler {
	tracer := otel.Tracer(tracerName)
	meter := otel.Meter(tracerName)

	requestCounter, _ := meter.Int64Counter(
		"http_server_request_count",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)

	requestDuration, _ := meter.Float64Histogram(
		"http_server_request_duration_ms",
		metric.WithDescription("HTTP request duration in milliseconds"),
		metric.WithUnit("ms"),
	)

	return func(c fiber.Ctx) error {
		ctx := c.Context()

		var span trace.Span
		if tracing {
			ctx = otel.GetTextMapPropagator().Extract(ctx, propagation.HeaderCarrier(c.GetReqHeaders()))

			spanName := c.Method() + " " + c.Route().Path
			ctx, span = tracer.Start(ctx, spanName,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", c.Method()),
					attribute.String("http.route", c.Route().Path),
					attribute.String("service.name", serviceName),
					attribute.String("http.scheme", c.Protocol()),
					attribute.String("net.host.name", c.Hostname()),
					attribute.String("http.user_agent", c.Get("User-Agent")),
					attribute.String("http.client_ip", c.IP()),
				),
			)
			defer span.End()

			c.SetContext(ctx)

			// Add trace ID to response headers for client correlation
			if span.SpanContext().HasTraceID() {
				c.Set("X-Trace-Id", span.SpanContext().TraceID().String())
			}
		}

		start := time.Now()
		err := c.Next()
		duration := time.Since(start).Seconds() * 1000

		// handler errors are rendered after this middleware returns
		statusCode := c.Response().StatusCode()
		if err != nil {
			statusCode = fiber.StatusInternalServerError
			if statusOf != nil {
				statusCode = statusOf(err)
			}
		}

		attrs := metric.WithAttributes(
			attribute.String("http.method", c.Method()),
			attribute.String("http.route", c.Route().Path),
			attribute.Int("http.status_code", statusCode),
		)

		requestCounter.Add(ctx, 1, attrs)
		requestDuration.Record(ctx, duration, attrs)

		if span == nil {
			return err
		}

		span.SetAttributes(
			attribute.Int("http.status_code", statusCode),
			attribute.Float64("http.duration_ms", duration),
		)
		if statusCode >= 500 {
			span.SetStatus(codes.Error, "HTTP "+strconv.Itoa(statusCode))
			if err != nil {
				span.RecordError(err)
			}
		} else {
			span.SetStatus(codes.Ok, "")
		}

		return err
	}
}
