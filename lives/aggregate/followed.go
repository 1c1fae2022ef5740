package aggregate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/imtaco/showroom-live/internal/log"
	"github.com/imtaco/showroom-live/lives"
)

type statusKind int

const (
	statusOK statusKind = iota
	statusGated
	statusFailed
)

type statusResult struct {
	kind      statusKind
	startedAt int64
}

// Followed reads the session's followed-rooms feed in one call and probes only the
// tracked members missing from it.
type Followed struct {
	platform lives.Platform
	direct   *Direct
	limit    int
	logger   *log.Logger
}

func NewFollowed(platform lives.Platform, direct *Direct, maxConcurrency int, logger *log.Logger) *Followed {
	if platform == nil {
		panic("platform is required")
	}
	if direct == nil {
		panic("direct strategy is required")
	}
	if logger == nil {
		panic("logger is required")
	}
	return &Followed{
		platform: platform,
		direct:   direct,
		limit:    maxConcurrency,
		logger:   logger,
	}
}

// Run emits online followed members in roster order, then whatever the direct probe
// finds among members that exist but are not followed. A feed failure degrades to an
// empty feed.
func (f *Followed) Run(ctx context.Context, members []lives.Member) []lives.LiveRoom {
	feed, err := f.platform.GetFollowedRooms(ctx)
	if err != nil {
		feedFailures.Add(ctx, 1)
		f.logger.Warn("followed feed unavailable, probing every member", log.Error(err))
		feed = nil
	}
	lookup := f.index(feed)

	results := make([]*lives.LiveRoom, len(members))
	var missing []lives.Member
	g := newGroup(f.limit)

	for i := range members {
		m := &members[i]
		rf, followed := lookup[m.RoomID]
		switch {
		case followed && rf.IsOnline:
			g.Go(func() error {
				results[i] = f.fetch(ctx, m, rf)
				return nil
			})
		case followed:
			// offline
		case m.RoomExists:
			missing = append(missing, *m)
		}
	}
	_ = g.Wait()

	rooms := compact(results)
	if len(missing) > 0 {
		f.logger.Debug("probing members missing from feed", log.Int("count", len(missing)))
		rooms = append(rooms, f.direct.Run(ctx, missing)...)
	}
	return rooms
}

func (f *Followed) index(feed []lives.RoomFollow) map[int64]lives.RoomFollow {
	lookup := make(map[int64]lives.RoomFollow, len(feed))
	for _, rf := range feed {
		if _, dup := lookup[rf.RoomID]; dup {
			f.logger.Warn("duplicate room in followed feed", log.Int64("roomId", rf.RoomID))
		}
		lookup[rf.RoomID] = rf
	}
	return lookup
}

func (f *Followed) fetch(ctx context.Context, m *lives.Member, rf lives.RoomFollow) *lives.LiveRoom {
	var (
		status statusResult
		urls   []lives.StreamingURL
		g      errgroup.Group
	)
	g.Go(func() error {
		status = f.status(ctx, rf.RoomURLKey)
		return nil
	})
	g.Go(func() error {
		u, err := f.platform.GetStreamingURLs(ctx, rf.RoomID)
		if err != nil {
			f.logger.Debug("streaming urls unavailable",
				log.Int64("roomId", rf.RoomID),
				log.Error(err))
			return nil
		}
		urls = u
		return nil
	})
	_ = g.Wait()

	room := &lives.LiveRoom{
		Name:             rf.RoomName,
		Img:              rf.ImageL,
		ImgAlt:           m.ImgAlt,
		URL:              rf.RoomURLKey,
		RoomID:           rf.RoomID,
		IsGraduate:       m.IsGraduate,
		IsGroup:          m.IsGroup,
		RoomExists:       m.RoomExists,
		StreamingURLList: orEmpty(urls),
	}
	switch status.kind {
	case statusOK:
		room.StartedAt = status.startedAt * 1000
	case statusGated:
		room.IsPremium = true
		premiumRooms.Add(ctx, 1)
	case statusFailed:
	}
	return room
}

func (f *Followed) status(ctx context.Context, roomURLKey string) statusResult {
	st, err := f.platform.GetRoomStatus(ctx, roomURLKey)
	switch {
	case err == nil && st != nil:
		return statusResult{kind: statusOK, startedAt: st.StartedAt}
	case err == nil:
		return statusResult{kind: statusOK}
	case lives.IsPremiumGated(err):
		return statusResult{kind: statusGated}
	default:
		f.logger.Debug("room status unavailable",
			log.String("roomUrlKey", roomURLKey),
			log.Error(err))
		return statusResult{kind: statusFailed}
	}
}
