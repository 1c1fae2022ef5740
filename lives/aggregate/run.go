package aggregate

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"

	intotel "github.com/imtaco/showroom-live/internal/otel"
	"github.com/imtaco/showroom-live/lives"
)

// observe wraps one strategy run in a span and records its metrics.
func observe(
	ctx context.Context,
	strategy string,
	members int,
	fn func(ctx context.Context) ([]lives.LiveRoom, error),
) ([]lives.LiveRoom, error) {
	ctx, span := intotel.StartSpan(ctx, tracer, "aggregate."+strategy,
		attribute.String("strategy", strategy),
		attribute.Int("members", members))
	defer span.End()

	attrs := metric.WithAttributes(attribute.String("strategy", strategy))
	start := time.Now()
	strategyRuns.Add(ctx, 1, attrs)

	rooms, err := fn(ctx)
	strategyDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	if err != nil {
		intotel.RecordError(span, err)
		return nil, err
	}

	roomsLive.Add(ctx, int64(len(rooms)), attrs)
	intotel.SetSpanAttributes(span, attribute.Int("rooms", len(rooms)))
	return rooms, nil
}

func newGroup(limit int) *errgroup.Group {
	g := &errgroup.Group{}
	if limit > 0 {
		g.SetLimit(limit)
	}
	return g
}

func discarded(ctx context.Context, strategy string) {
	roomsDiscarded.Add(ctx, 1, metric.WithAttributes(attribute.String("strategy", strategy)))
}

// compact keeps the non-nil results in slot order. The result is never nil.
func compact(results []*lives.LiveRoom) []lives.LiveRoom {
	rooms := make([]lives.LiveRoom, 0, len(results))
	for _, r := range results {
		if r != nil {
			rooms = append(rooms, *r)
		}
	}
	return rooms
}

func orEmpty(urls []lives.StreamingURL) []lives.StreamingURL {
	if urls == nil {
		return []lives.StreamingURL{}
	}
	return urls
}
