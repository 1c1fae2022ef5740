package aggregate

import (
	"context"

	"github.com/imtaco/showroom-live/internal/errors"
	"github.com/imtaco/showroom-live/internal/log"
	"github.com/imtaco/showroom-live/lives"
)

// Global filters the platform-wide on-air feed down to tracked members.
type Global struct {
	platform lives.Platform
	logger   *log.Logger
}

func NewGlobal(platform lives.Platform, logger *log.Logger) *Global {
	if platform == nil {
		panic("platform is required")
	}
	if logger == nil {
		panic("logger is required")
	}
	return &Global{
		platform: platform,
		logger:   logger,
	}
}

// Run keeps feed order. A room listed under several genres is emitted once.
func (g *Global) Run(ctx context.Context, members []lives.Member) ([]lives.LiveRoom, error) {
	feed, err := g.platform.GetOnlives(ctx)
	if err != nil {
		if !errors.Is(err, lives.ErrFeed) {
			err = errors.Wrap(lives.ErrFeed, err, "onlives")
		}
		return nil, err
	}

	tracked := make(map[int64]*lives.Member, len(members))
	for i := range members {
		tracked[members[i].RoomID] = &members[i]
	}

	onair := feed.Rooms()
	seen := make(map[int64]struct{})
	rooms := make([]lives.LiveRoom, 0)
	for i := range onair {
		r := &onair[i]
		m, ok := tracked[r.RoomID]
		if !ok {
			continue
		}
		if _, dup := seen[r.RoomID]; dup {
			continue
		}
		seen[r.RoomID] = struct{}{}

		rooms = append(rooms, lives.LiveRoom{
			Name:             r.MainName,
			Img:              r.Image,
			ImgAlt:           m.ImgAlt,
			URL:              r.RoomURLKey,
			RoomID:           r.RoomID,
			StartedAt:        r.StartedAt * 1000,
			IsGraduate:       m.IsGraduate,
			IsGroup:          m.IsGroup,
			RoomExists:       m.RoomExists,
			StreamingURLList: orEmpty(r.StreamingURLList),
		})
	}

	g.logger.Debug("on-air feed filtered",
		log.Int("onair", len(onair)),
		log.Int("tracked", len(rooms)))
	return rooms, nil
}
