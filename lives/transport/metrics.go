package transport

import (
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/imtaco/showroom-live/internal/otel"
)

var (
	requestsServed metric.Int64Counter
	requestsFailed metric.Int64Counter
	unknownGroups  metric.Int64Counter
	inflight       metric.Int64UpDownCounter
)

func init() {
	f := intotel.NewFactory("lives.transport", intotel.PrefixLives)

	f.Int64Counter(&requestsServed, "http.served",
		metric.WithDescription("now_live requests answered"))

	f.Int64Counter(&requestsFailed, "http.failed",
		metric.WithDescription("now_live requests that returned an error"))

	f.Int64Counter(&unknownGroups, "http.unknown_group",
		metric.WithDescription("Requests whose group fell back to the full roster"))

	f.Int64UpDownCounter(&inflight, "http.inflight",
		metric.WithDescription("now_live requests being aggregated"))
}
