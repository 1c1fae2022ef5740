package ttlcache

import (
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/imtaco/showroom-live/internal/otel"
)

var (
	cacheHits        metric.Int64Counter
	cacheMisses      metric.Int64Counter
	producerFailures metric.Int64Counter
)

func init() {
	f := intotel.NewFactory("ttlcache", intotel.PrefixCache)

	f.Int64Counter(&cacheHits, "hits",
		metric.WithDescription("Lookups served from a live entry"))

	f.Int64Counter(&cacheMisses, "misses",
		metric.WithDescription("Lookups that had to wait for a producer"))

	f.Int64Counter(&producerFailures, "producer.failures",
		metric.WithDescription("Producer invocations that returned an error"))
}
