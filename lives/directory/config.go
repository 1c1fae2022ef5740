package directory

import (
	"github.com/spf13/viper"

	"github.com/imtaco/showroom-live/internal/retry"
)

type Config struct {
	// Key is the redis hash holding one JSON member per room id field.
	Key string `mapstructure:"key"`
	// SeedFile, when set, replaces the roster from a JSON array of members at startup.
	SeedFile string       `mapstructure:"seed_file"`
	Retry    retry.Config `mapstructure:"retry"`
}

func Setup(v *viper.Viper, prefix string) {
	p := func(key string) string { return prefix + "." + key }

	v.SetDefault(p("key"), "showroom:members")
	v.SetDefault(p("seed_file"), "")
	retry.Setup(v, p("retry"))
}
