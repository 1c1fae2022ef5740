package showroom

import (
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/imtaco/showroom-live/internal/otel"
)

var (
	requestsTotal   metric.Int64Counter
	requestsFailed  metric.Int64Counter
	requestDuration metric.Float64Histogram
	rateLimited     metric.Int64Counter
)

func init() {
	f := intotel.NewFactory("lives.showroom", intotel.PrefixShowroom)

	f.Int64Counter(&requestsTotal, "requests",
		metric.WithDescription("Requests sent to the platform API"))

	f.Int64Counter(&requestsFailed, "requests.failed",
		metric.WithDescription("Platform requests that errored or returned non-2xx"))

	f.Float64Histogram(&requestDuration, "request.duration",
		metric.WithDescription("Platform request latency"),
		metric.WithUnit("s"))

	f.Int64Counter(&rateLimited, "requests.rate_limited",
		metric.WithDescription("Requests abandoned while waiting for the rate limiter"))
}
