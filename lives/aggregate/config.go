package aggregate

import (
	"github.com/spf13/viper"
)

type Config struct {
	// MaxConcurrency caps in-flight per-member probes of one strategy run; 0 is unbounded.
	MaxConcurrency int `mapstructure:"max_concurrency"`
}

func Setup(v *viper.Viper, prefix string) {
	p := func(key string) string { return prefix + "." + key }

	v.SetDefault(p("max_concurrency"), 0)
}
