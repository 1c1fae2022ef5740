package ttlcache

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	TTL time.Duration `mapstructure:"ttl"`
	// MaxEntries bounds the cache with LRU eviction; 0 keeps it unbounded.
	MaxEntries int `mapstructure:"max_entries"`
	// PurgeInterval drops expired entries in the background; 0 disables it.
	PurgeInterval time.Duration `mapstructure:"purge_interval"`
}

func Setup(v *viper.Viper, prefix string) {
	p := func(key string) string { return prefix + "." + key }

	v.SetDefault(p("ttl"), "5s")
	v.SetDefault(p("max_entries"), 0)
	v.SetDefault(p("purge_interval"), "1m")
}
