package showroom

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/time/rate"

	"github.com/imtaco/showroom-live/internal/errors"
	"github.com/imtaco/showroom-live/internal/log"
	"github.com/imtaco/showroom-live/lives"
)

const (
	pathIsLive       = "/api/room/is_live"
	pathRoomStatus   = "/api/room/status"
	pathStreamingURL = "/api/live/streaming_url"
	pathFollowRooms  = "/api/follow/rooms"
	pathOnlives      = "/api/live/onlives"
)

type clientImpl struct {
	client         *resty.Client
	limiter        *rate.Limiter
	cookie         string
	maxFollowPages int
	logger         *log.Logger
}

// New creates the SHOWROOM API client backed by go-resty.
func New(cfg *Config, logger *log.Logger) lives.Platform {
	if logger == nil {
		panic("logger is required")
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", cfg.UserAgent)

	maxPages := cfg.MaxFollowPages
	if maxPages <= 0 {
		maxPages = 1
	}

	return &clientImpl{
		client:         client,
		limiter:        newLimiter(cfg.RateLimit, cfg.RateBurst),
		cookie:         cfg.Cookie,
		maxFollowPages: maxPages,
		logger:         logger,
	}
}

func newLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(perSecond), max(burst, 1))
}

func (c *clientImpl) CheckLive(ctx context.Context, roomID int64) (bool, error) {
	var resp isLiveResp
	err := c.get(ctx, pathIsLive, map[string]string{
		"room_id": strconv.FormatInt(roomID, 10),
	}, nil, &resp)
	if err != nil {
		return false, errors.Wrapf(lives.ErrRoom, err, "is_live room %d", roomID)
	}
	return bool(resp.OK), nil
}

func (c *clientImpl) GetRoomStatus(ctx context.Context, roomURLKey string) (*lives.RoomStatus, error) {
	var resp roomStatusResp
	err := c.get(ctx, pathRoomStatus, map[string]string{
		"room_url_key": roomURLKey,
	}, nil, &resp)
	if err != nil {
		if lives.IsPremiumGated(err) {
			return nil, errors.Wrapf(lives.ErrPremiumGated, err, "status room %s", roomURLKey)
		}
		return nil, errors.Wrapf(lives.ErrRoom, err, "status room %s", roomURLKey)
	}
	return &lives.RoomStatus{StartedAt: int64(resp.StartedAt)}, nil
}

func (c *clientImpl) GetStreamingURLs(ctx context.Context, roomID int64) ([]lives.StreamingURL, error) {
	var resp streamingURLResp
	err := c.get(ctx, pathStreamingURL, map[string]string{
		"room_id":       strconv.FormatInt(roomID, 10),
		"abr_available": "1",
	}, nil, &resp)
	if err != nil {
		return nil, errors.Wrapf(lives.ErrRoom, err, "streaming_url room %d", roomID)
	}
	return toStreamingURLs(resp.StreamingURLList), nil
}

// GetFollowedRooms walks every page of the session's followed rooms.
func (c *clientImpl) GetFollowedRooms(ctx context.Context) ([]lives.RoomFollow, error) {
	if c.cookie == "" {
		return nil, errors.New(lives.ErrFeed, "session cookie not configured")
	}
	headers := map[string]string{"Cookie": c.cookie}

	var rooms []lives.RoomFollow
	for page := 1; page <= c.maxFollowPages; page++ {
		var resp followRoomsResp
		err := c.get(ctx, pathFollowRooms, map[string]string{
			"page": strconv.Itoa(page),
		}, headers, &resp)
		if err != nil {
			return nil, errors.Wrapf(lives.ErrFeed, err, "follow rooms page %d", page)
		}
		for i := range resp.Rooms {
			rooms = append(rooms, resp.Rooms[i].toRoomFollow())
		}

		next := int(resp.NextPage)
		if next <= page || len(resp.Rooms) == 0 {
			break
		}
		if page == c.maxFollowPages {
			c.logger.Warn("follow rooms truncated",
				log.Int("maxPages", c.maxFollowPages),
				log.Int64("lastPage", int64(resp.LastPage)))
		}
	}

	c.logger.Debug("follow rooms fetched", log.Int("count", len(rooms)))
	return rooms, nil
}

func (c *clientImpl) GetOnlives(ctx context.Context) (*lives.OnliveFeed, error) {
	var resp onlivesResp
	if err := c.get(ctx, pathOnlives, nil, nil, &resp); err != nil {
		return nil, errors.Wrap(lives.ErrFeed, err, "onlives")
	}
	return resp.toFeed(), nil
}

func (c *clientImpl) get(
	ctx context.Context,
	path string,
	query map[string]string,
	headers map[string]string,
	result any,
) error {
	var errBody errorResp
	attrs := metric.WithAttributes(attribute.String("path", path))
	if err := c.limiter.Wait(ctx); err != nil {
		rateLimited.Add(ctx, 1, attrs)
		return errors.Wrap(lives.ErrRequest, err, "showroom rate limit")
	}

	start := time.Now()
	requestsTotal.Add(ctx, 1, attrs)
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetHeaders(headers).
		ForceContentType("application/json").
		SetResult(result).
		SetError(&errBody).
		Get(path)
	requestDuration.Record(ctx, time.Since(start).Seconds(), attrs)

	if err != nil {
		requestsFailed.Add(ctx, 1, attrs)
		c.logger.Debug("showroom request failed", log.String("path", path), log.Error(err))
		return errors.Wrap(lives.ErrRequest, err, "showroom request")
	}
	if resp.IsError() {
		requestsFailed.Add(ctx, 1, attrs)
		c.logger.Debug("showroom error response",
			log.String("path", path),
			log.Int("status", resp.StatusCode()),
			log.Any("errors", errBody.Errors))
		return &lives.UpstreamError{
			StatusCode: resp.StatusCode(),
			Errors:     errBody.Errors,
		}
	}

	c.logger.Debug("showroom resp", log.String("path", path), log.Int("status", resp.StatusCode()))
	return nil
}
