package showroom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/imtaco/showroom-live/lives"
)

// flexInt64 accepts 123, "123" and 1.7e9.
type flexInt64 int64

func (f *flexInt64) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		fl, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		n = int64(fl)
	}
	*f = flexInt64(n)
	return nil
}

// flexBool accepts true/false, 1/0 and their quoted forms.
type flexBool bool

func (f *flexBool) UnmarshalJSON(b []byte) error {
	switch strings.ToLower(strings.Trim(string(b), `"`)) {
	case "true", "1":
		*f = true
	case "false", "0", "", "null":
		*f = false
	default:
		return fmt.Errorf("invalid bool %s", b)
	}
	return nil
}

type isLiveResp struct {
	OK flexBool `json:"ok"`
}

type roomStatusResp struct {
	RoomID     flexInt64 `json:"room_id"`
	RoomURLKey string    `json:"room_url_key"`
	IsLive     flexBool  `json:"is_live"`
	StartedAt  flexInt64 `json:"started_at"`
}

type streamingURL struct {
	ID        flexInt64 `json:"id"`
	Label     string    `json:"label"`
	URL       string    `json:"url"`
	Type      string    `json:"type"`
	Quality   flexInt64 `json:"quality"`
	IsDefault flexBool  `json:"is_default"`
}

type streamingURLResp struct {
	StreamingURLList []streamingURL `json:"streaming_url_list"`
}

type followRoom struct {
	RoomID     flexInt64 `json:"room_id"`
	RoomName   string    `json:"room_name"`
	ImageL     string    `json:"image_l"`
	IsOnline   flexBool  `json:"is_online"`
	RoomURLKey string    `json:"room_url_key"`
}

type followRoomsResp struct {
	Rooms       []followRoom `json:"rooms"`
	CurrentPage flexInt64    `json:"current_page"`
	NextPage    flexInt64    `json:"next_page"`
	LastPage    flexInt64    `json:"last_page"`
}

type onliveRoom struct {
	RoomID           flexInt64      `json:"room_id"`
	MainName         string         `json:"main_name"`
	Image            string         `json:"image"`
	RoomURLKey       string         `json:"room_url_key"`
	StartedAt        flexInt64      `json:"started_at"`
	StreamingURLList []streamingURL `json:"streaming_url_list"`
}

type onliveGenre struct {
	GenreID   flexInt64    `json:"genre_id"`
	GenreName string       `json:"genre_name"`
	Lives     []onliveRoom `json:"lives"`
}

type onlivesResp struct {
	Onlives []onliveGenre `json:"onlives"`
}

type errorResp struct {
	Errors []lives.UpstreamErrorItem `json:"errors"`
}

func toStreamingURLs(in []streamingURL) []lives.StreamingURL {
	out := make([]lives.StreamingURL, 0, len(in))
	for _, u := range in {
		out = append(out, lives.StreamingURL{
			ID:        int64(u.ID),
			Label:     u.Label,
			URL:       u.URL,
			Type:      u.Type,
			Quality:   int64(u.Quality),
			IsDefault: bool(u.IsDefault),
		})
	}
	return out
}

func (r *followRoom) toRoomFollow() lives.RoomFollow {
	return lives.RoomFollow{
		RoomID:     int64(r.RoomID),
		RoomName:   r.RoomName,
		ImageL:     r.ImageL,
		IsOnline:   bool(r.IsOnline),
		RoomURLKey: r.RoomURLKey,
	}
}

func (r *onlivesResp) toFeed() *lives.OnliveFeed {
	feed := &lives.OnliveFeed{Onlives: make([]lives.OnliveGenre, 0, len(r.Onlives))}
	for _, g := range r.Onlives {
		genre := lives.OnliveGenre{
			GenreID:   int64(g.GenreID),
			GenreName: g.GenreName,
			Lives:     make([]lives.OnliveRoom, 0, len(g.Lives)),
		}
		for _, l := range g.Lives {
			genre.Lives = append(genre.Lives, lives.OnliveRoom{
				RoomID:           int64(l.RoomID),
				MainName:         l.MainName,
				Image:            l.Image,
				RoomURLKey:       l.RoomURLKey,
				StartedAt:        int64(l.StartedAt),
				StreamingURLList: toStreamingURLs(l.StreamingURLList),
			})
		}
		feed.Onlives = append(feed.Onlives, genre)
	}
	return feed
}
