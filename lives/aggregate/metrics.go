package aggregate

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/imtaco/showroom-live/internal/otel"
)

const (
	strategyDirect   = "direct"
	strategyFollowed = "followed"
	strategyGlobal   = "global"
)

var tracer = otel.Tracer("lives.aggregate")

var (
	strategyRuns     metric.Int64Counter
	strategyDuration metric.Float64Histogram
	roomsLive        metric.Int64Counter
	roomsDiscarded   metric.Int64Counter
	feedFailures     metric.Int64Counter
	premiumRooms     metric.Int64Counter
)

func init() {
	f := intotel.NewFactory("lives.aggregate", intotel.PrefixLives)

	f.Int64Counter(&strategyRuns, "strategy.runs",
		metric.WithDescription("Strategy executions"))

	f.Float64Histogram(&strategyDuration, "strategy.duration",
		metric.WithDescription("Strategy execution time"),
		metric.WithUnit("s"))

	f.Int64Counter(&roomsLive, "rooms.live",
		metric.WithDescription("Live rooms emitted by strategies"))

	f.Int64Counter(&roomsDiscarded, "rooms.discarded",
		metric.WithDescription("Members dropped because a per-room call failed"))

	f.Int64Counter(&feedFailures, "feed.failures",
		metric.WithDescription("Followed feed failures recovered as an empty feed"))

	f.Int64Counter(&premiumRooms, "rooms.premium",
		metric.WithDescription("Followed rooms whose status redirected to a paywall"))
}
