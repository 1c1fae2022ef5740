package directory

import (
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/imtaco/showroom-live/internal/otel"
)

var (
	rosterLoads    metric.Int64Counter
	rosterFailures metric.Int64Counter
	invalidMembers metric.Int64Counter
)

func init() {
	f := intotel.NewFactory("lives.directory", intotel.PrefixDirectory)

	f.Int64Counter(&rosterLoads, "loads",
		metric.WithDescription("Roster reads from redis"))

	f.Int64Counter(&rosterFailures, "loads.failed",
		metric.WithDescription("Roster reads that failed after retries"))

	f.Int64Counter(&invalidMembers, "members.invalid",
		metric.WithDescription("Stored members that could not be decoded"))
}
