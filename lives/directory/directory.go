package directory

import (
	"context"
	"encoding/json"
	"os"
	"slices"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/imtaco/showroom-live/internal/errors"
	"github.com/imtaco/showroom-live/internal/log"
	"github.com/imtaco/showroom-live/internal/retry"
	"github.com/imtaco/showroom-live/lives"
)

// Directory keeps the tracked roster in a redis hash: field room_id, value member JSON.
type Directory struct {
	client redis.UniversalClient
	key    string
	retry  retry.Retry
	logger *log.Logger
}

var _ lives.Directory = (*Directory)(nil)

func New(client redis.UniversalClient, cfg *Config, logger *log.Logger) *Directory {
	if client == nil {
		panic("redis client is required")
	}
	if logger == nil {
		panic("logger is required")
	}
	return &Directory{
		client: client,
		key:    cfg.Key,
		retry:  retry.New(logger, cfg.Retry),
		logger: logger,
	}
}

// ListMembers returns the roster ordered by room id. An empty group returns everyone.
func (d *Directory) ListMembers(ctx context.Context, group string) ([]lives.Member, error) {
	rosterLoads.Add(ctx, 1)

	var raw map[string]string
	err := d.retry.Do(ctx, func() error {
		var err error
		raw, err = d.client.HGetAll(ctx, d.key).Result()
		return err
	})
	if err != nil {
		rosterFailures.Add(ctx, 1)
		return nil, errors.Wrapf(lives.ErrDirectory, err, "load roster %s", d.key)
	}

	members := make([]lives.Member, 0, len(raw))
	for field, val := range raw {
		var m lives.Member
		if err := json.Unmarshal([]byte(val), &m); err != nil {
			invalidMembers.Add(ctx, 1)
			d.logger.Warn("skip invalid member", log.String("field", field), log.Error(err))
			continue
		}
		if group != "" && m.Group != group {
			continue
		}
		members = append(members, m)
	}
	slices.SortFunc(members, func(a, b lives.Member) int {
		switch {
		case a.RoomID < b.RoomID:
			return -1
		case a.RoomID > b.RoomID:
			return 1
		}
		return 0
	})

	d.logger.Debug("roster loaded",
		log.String("group", group),
		log.Int("count", len(members)))
	return members, nil
}

// ReplaceMembers atomically swaps the whole roster.
func (d *Directory) ReplaceMembers(ctx context.Context, members []lives.Member) error {
	values := make([]any, 0, len(members)*2)
	for i := range members {
		b, err := json.Marshal(&members[i])
		if err != nil {
			return errors.Wrapf(lives.ErrDirectory, err, "encode member %d", members[i].RoomID)
		}
		values = append(values, strconv.FormatInt(members[i].RoomID, 10), string(b))
	}

	_, err := d.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, d.key)
		if len(values) > 0 {
			pipe.HSet(ctx, d.key, values...)
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(lives.ErrDirectory, err, "replace roster")
	}

	d.logger.Info("roster replaced", log.Int("count", len(members)))
	return nil
}

// SeedFromFile loads a JSON array of members and replaces the roster with it.
func (d *Directory) SeedFromFile(ctx context.Context, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(lives.ErrDirectory, err, "read seed %s", path)
	}
	var members []lives.Member
	if err := json.Unmarshal(b, &members); err != nil {
		return errors.Wrapf(lives.ErrDirectory, err, "decode seed %s", path)
	}
	return d.ReplaceMembers(ctx, members)
}
