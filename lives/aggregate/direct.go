package aggregate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/imtaco/showroom-live/internal/log"
	"github.com/imtaco/showroom-live/lives"
)

// Direct asks the platform about every member individually.
type Direct struct {
	platform lives.Platform
	limit    int
	logger   *log.Logger
}

func NewDirect(platform lives.Platform, maxConcurrency int, logger *log.Logger) *Direct {
	if platform == nil {
		panic("platform is required")
	}
	if logger == nil {
		panic("logger is required")
	}
	return &Direct{
		platform: platform,
		limit:    maxConcurrency,
		logger:   logger,
	}
}

// Run returns the live members in roster order. A member whose calls fail is left out.
func (d *Direct) Run(ctx context.Context, members []lives.Member) []lives.LiveRoom {
	results := make([]*lives.LiveRoom, len(members))
	g := newGroup(d.limit)

	for i := range members {
		m := &members[i]
		g.Go(func() error {
			room, err := d.probe(ctx, m)
			if err != nil {
				discarded(ctx, strategyDirect)
				d.logger.Warn("direct probe failed",
					log.Int64("roomId", m.RoomID),
					log.String("name", m.Name),
					log.Error(err))
				return nil
			}
			results[i] = room
			return nil
		})
	}
	_ = g.Wait()

	return compact(results)
}

func (d *Direct) probe(ctx context.Context, m *lives.Member) (*lives.LiveRoom, error) {
	live, err := d.platform.CheckLive(ctx, m.RoomID)
	if err != nil {
		return nil, err
	}
	if !live {
		return nil, nil
	}

	var (
		status *lives.RoomStatus
		urls   []lives.StreamingURL
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		status, err = d.platform.GetRoomStatus(gctx, m.RoomURLKey())
		return err
	})
	g.Go(func() error {
		var err error
		urls, err = d.platform.GetStreamingURLs(gctx, m.RoomID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	room := &lives.LiveRoom{
		Name:             m.Name,
		Img:              m.Img,
		ImgAlt:           m.ImgAlt,
		URL:              m.URL,
		RoomID:           m.RoomID,
		IsGraduate:       m.IsGraduate,
		IsGroup:          m.IsGroup,
		RoomExists:       m.RoomExists,
		StreamingURLList: orEmpty(urls),
	}
	if status != nil {
		room.StartedAt = status.StartedAt * 1000
	}
	return room, nil
}
