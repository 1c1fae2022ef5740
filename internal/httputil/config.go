package httputil

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type TLSConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	CertFile string `mapstructure:"cert_file"`
	KeyFile  string `mapstructure:"key_file"`
}

type Config struct {
	Addr              string        `mapstructure:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	// WriteTimeout must outlast a cold now_live aggregation.
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	TLS          TLSConfig     `mapstructure:"tls"`
}

type Server struct {
	*http.Server
	cfg *Config
}

func Setup(v *viper.Viper, prefix string) {
	p := func(key string) string { return prefix + "." + key }

	v.SetDefault(p("addr"), ":8080")
	v.SetDefault(p("read_header_timeout"), "5s")
	v.SetDefault(p("write_timeout"), "60s")
	v.SetDefault(p("idle_timeout"), "120s")
	v.SetDefault(p("tls.enabled"), false)
	v.SetDefault(p("tls.cert_file"), "")
	v.SetDefault(p("tls.key_file"), "")
}

func NewServer(cfg *Config, handler http.Handler) *Server {
	return &Server{
		Server: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
		},
		cfg: cfg,
	}
}

func (s *Server) Listen() error {
	cfg := s.cfg
	if !cfg.TLS.Enabled {
		return s.ListenAndServe()
	}

	if cfg.TLS.CertFile == "" || cfg.TLS.KeyFile == "" {
		return errors.New("TLS is enabled but cert_file or key_file is not set")
	}
	return s.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
}
