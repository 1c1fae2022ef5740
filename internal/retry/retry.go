package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/viper"

	"github.com/imtaco/showroom-live/internal/log"
)

type Config struct {
	InitialInterval time.Duration `mapstructure:"initial_interval"`
	MaxInterval     time.Duration `mapstructure:"max_interval"`
	// MaxElapsedTime bounds the whole retry loop; 0 retries until ctx is done.
	MaxElapsedTime time.Duration `mapstructure:"max_elapsed_time"`
}

func Setup(v *viper.Viper, prefix string) {
	p := func(key string) string { return prefix + "." + key }

	v.SetDefault(p("initial_interval"), "50ms")
	v.SetDefault(p("max_interval"), "500ms")
	v.SetDefault(p("max_elapsed_time"), "2s")
}

type Retry interface {
	Do(ctx context.Context, operation func() error) error
}

func New(logger *log.Logger, cfg Config) Retry {
	return &retryImpl{
		logger:          logger,
		initialInterval: cfg.InitialInterval,
		maxInterval:     cfg.MaxInterval,
		maxElapsedTime:  cfg.MaxElapsedTime,
	}
}

type retryImpl struct {
	logger          *log.Logger
	initialInterval time.Duration
	maxInterval     time.Duration
	maxElapsedTime  time.Duration
}

// Permanent stops the retry loop and makes Do return err unwrapped.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

func (r *retryImpl) Do(ctx context.Context, operation func() error) error {
	b := backoff.NewExponentialBackOff()
	if r.initialInterval > 0 {
		b.InitialInterval = r.initialInterval
	}
	if r.maxInterval > 0 {
		b.MaxInterval = r.maxInterval
	}
	b.MaxElapsedTime = r.maxElapsedTime

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := operation()
		if err != nil {
			r.logger.Warn("retry attempt failed",
				log.Int("attempt", attempt),
				log.Error(err))
		}
		return err
	}, backoff.WithContext(b, ctx))
}
