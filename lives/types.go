package lives

import (
	"context"
	"strings"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/imtaco/showroom-live/lives Platform,Directory,Service

const (
	CacheKeyNowLive = "now_live"
)

// Platform is the upstream streaming platform.
type Platform interface {
	CheckLive(ctx context.Context, roomID int64) (bool, error)
	// GetRoomStatus fails with an *UpstreamError carrying a redirect URL for premium rooms.
	GetRoomStatus(ctx context.Context, roomURLKey string) (*RoomStatus, error)
	GetStreamingURLs(ctx context.Context, roomID int64) ([]StreamingURL, error)
	GetFollowedRooms(ctx context.Context) ([]RoomFollow, error)
	GetOnlives(ctx context.Context) (*OnliveFeed, error)
}

// Directory supplies the tracked roster. An empty group means every member.
type Directory interface {
	ListMembers(ctx context.Context, group string) ([]Member, error)
}

// Service aggregates which tracked members are live right now.
// A nil members slice means "load the roster from the Directory".
type Service interface {
	GetNowLive(ctx context.Context, group string) ([]LiveRoom, error)
	GetNowLiveDirect(ctx context.Context, members []Member, group string) ([]LiveRoom, error)
	GetNowLiveFollowed(ctx context.Context, members []Member, group string) ([]LiveRoom, error)
	GetNowLiveGlobal(ctx context.Context, members []Member) ([]LiveRoom, error)
}

type Member struct {
	RoomID     int64  `json:"room_id"`
	Name       string `json:"name"`
	Img        string `json:"img"`
	ImgAlt     string `json:"img_alt,omitempty"`
	URL        string `json:"url"`
	Group      string `json:"group,omitempty"`
	IsGraduate bool   `json:"is_graduate"`
	IsGroup    bool   `json:"is_group"`
	RoomExists bool   `json:"room_exists"`
}

// RoomURLKey is the platform room key derived from the profile URL.
func (m *Member) RoomURLKey() string {
	return strings.TrimPrefix(m.URL, "/")
}

type RoomFollow struct {
	RoomID     int64
	RoomName   string
	ImageL     string
	IsOnline   bool
	RoomURLKey string
}

type RoomStatus struct {
	// StartedAt is in seconds since epoch; 0 when unknown.
	StartedAt int64
}

type StreamingURL struct {
	ID        int64  `json:"id"`
	Label     string `json:"label"`
	URL       string `json:"url"`
	Type      string `json:"type"`
	Quality   int64  `json:"quality,omitempty"`
	IsDefault bool   `json:"is_default"`
}

type OnliveRoom struct {
	RoomID           int64
	MainName         string
	Image            string
	RoomURLKey       string
	StartedAt        int64
	StreamingURLList []StreamingURL
}

type OnliveGenre struct {
	GenreID   int64
	GenreName string
	Lives     []OnliveRoom
}

type OnliveFeed struct {
	Onlives []OnliveGenre
}

// Rooms flattens every genre into one list, in feed order.
func (f *OnliveFeed) Rooms() []OnliveRoom {
	if f == nil {
		return nil
	}
	var rooms []OnliveRoom
	for _, g := range f.Onlives {
		rooms = append(rooms, g.Lives...)
	}
	return rooms
}

// LiveRoom is one live member. Values handed out by a Service are shared and must
// be treated as read-only.
type LiveRoom struct {
	Name             string         `json:"name"`
	Img              string         `json:"img"`
	ImgAlt           string         `json:"img_alt"`
	URL              string         `json:"url"`
	RoomID           int64          `json:"room_id"`
	StartedAt        int64          `json:"started_at"` // ms since epoch
	IsGraduate       bool           `json:"is_graduate"`
	IsGroup          bool           `json:"is_group"`
	RoomExists       bool           `json:"room_exists"`
	StreamingURLList []StreamingURL `json:"streaming_url_list"`
	IsPremium        bool           `json:"is_premium"`
}

// CacheKey is the now-live cache key for group.
func CacheKey(group string) string {
	if group == "" {
		return CacheKeyNowLive
	}
	return group + "-" + CacheKeyNowLive
}
