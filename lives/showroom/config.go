package showroom

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
	// Cookie is the logged-in session cookie; the followed feed is unavailable without it.
	Cookie string `mapstructure:"cookie"`
	// MaxFollowPages caps pagination of the followed feed.
	MaxFollowPages int `mapstructure:"max_follow_pages"`
	// RateLimit is upstream requests per second; 0 disables limiting.
	RateLimit float64 `mapstructure:"rate_limit"`
	RateBurst int     `mapstructure:"rate_burst"`
}

func Setup(v *viper.Viper, prefix string) {
	p := func(key string) string { return prefix + "." + key }

	v.SetDefault(p("base_url"), "https://www.showroom-live.com")
	v.SetDefault(p("timeout"), "10s")
	v.SetDefault(p("user_agent"), "showroom-live/1.0")
	v.SetDefault(p("cookie"), "")
	v.SetDefault(p("max_follow_pages"), 20)
	v.SetDefault(p("rate_limit"), 0)
	v.SetDefault(p("rate_burst"), 10)
}
