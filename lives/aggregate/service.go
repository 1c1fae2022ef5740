package aggregate

import (
	"context"
	"slices"
	"time"

	"github.com/imtaco/showroom-live/internal/errors"
	"github.com/imtaco/showroom-live/internal/log"
	"github.com/imtaco/showroom-live/internal/ttlcache"
	"github.com/imtaco/showroom-live/lives"
)

// Service is the lives.Service facade over the three strategies.
type Service struct {
	directory lives.Directory
	direct    *Direct
	followed  *Followed
	global    *Global
	cache     *ttlcache.Cache[[]lives.LiveRoom]
	ttl       time.Duration
	logger    *log.Logger
}

var _ lives.Service = (*Service)(nil)

func NewService(
	platform lives.Platform,
	directory lives.Directory,
	cache *ttlcache.Cache[[]lives.LiveRoom],
	ttl time.Duration,
	cfg *Config,
	logger *log.Logger,
) *Service {
	if directory == nil {
		panic("directory is required")
	}
	if cache == nil {
		panic("cache is required")
	}
	if logger == nil {
		panic("logger is required")
	}

	direct := NewDirect(platform, cfg.MaxConcurrency, logger.Module("Direct"))
	return &Service{
		directory: directory,
		direct:    direct,
		followed:  NewFollowed(platform, direct, cfg.MaxConcurrency, logger.Module("Followed")),
		global:    NewGlobal(platform, logger.Module("Global")),
		cache:     cache,
		ttl:       ttl,
		logger:    logger,
	}
}

// GetNowLive runs the followed-feed strategy for group's roster, cached per group.
func (s *Service) GetNowLive(ctx context.Context, group string) ([]lives.LiveRoom, error) {
	key := lives.CacheKey(group)
	rooms, err := s.cache.Fetch(ctx, key, func(ctx context.Context) ([]lives.LiveRoom, error) {
		s.logger.Debug("now live cache miss", log.String("key", key))
		return s.GetNowLiveFollowed(ctx, nil, group)
	}, s.ttl)
	if err != nil {
		return nil, err
	}
	return slices.Clone(rooms), nil
}

func (s *Service) GetNowLiveDirect(ctx context.Context, members []lives.Member, group string) ([]lives.LiveRoom, error) {
	members, err := s.roster(ctx, members, group)
	if err != nil {
		return nil, err
	}
	return observe(ctx, strategyDirect, len(members), func(ctx context.Context) ([]lives.LiveRoom, error) {
		return s.direct.Run(ctx, members), nil
	})
}

func (s *Service) GetNowLiveFollowed(ctx context.Context, members []lives.Member, group string) ([]lives.LiveRoom, error) {
	members, err := s.roster(ctx, members, group)
	if err != nil {
		return nil, err
	}
	return observe(ctx, strategyFollowed, len(members), func(ctx context.Context) ([]lives.LiveRoom, error) {
		return s.followed.Run(ctx, members), nil
	})
}

func (s *Service) GetNowLiveGlobal(ctx context.Context, members []lives.Member) ([]lives.LiveRoom, error) {
	members, err := s.roster(ctx, members, "")
	if err != nil {
		return nil, err
	}
	return observe(ctx, strategyGlobal, len(members), func(ctx context.Context) ([]lives.LiveRoom, error) {
		return s.global.Run(ctx, members)
	})
}

// roster returns members as given, or loads group's roster when members is nil.
func (s *Service) roster(ctx context.Context, members []lives.Member, group string) ([]lives.Member, error) {
	if members != nil {
		return members, nil
	}
	members, err := s.directory.ListMembers(ctx, group)
	if err != nil {
		if !errors.Is(err, lives.ErrDirectory) {
			err = errors.Wrapf(lives.ErrDirectory, err, "list members group=%q", group)
		}
		s.logger.Error("roster unavailable", log.String("group", group), log.Error(err))
		return nil, err
	}
	return members, nil
}
