package config

import (
	"fmt"
	"time"
)

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100" validate:"gt=0"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m" validate:"gt=0"`
}

// Converter selects how cross-currency transfers are priced.
// Rates are only read by the "fixed" strategy, e.g.
// CONVERTER_RATES=EUR/USD:1.08,USD/EUR:0.93
type Converter struct {
	Strategy string            `envconfig:"STRATEGY" default:"identity" validate:"oneof=identity fixed"`
	Rates    map[string]string `envconfig:"RATES"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text" validate:"oneof=text json logfmt"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[accounts]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http" validate:"oneof=http https"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000" validate:"gt=0,lte=65535"`
}

// API holds the versioning contract of the HTTP surface.
type API struct {
	Version string `envconfig:"VERSION" default:"1" validate:"required"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER" validate:"required"`
	Log       *Log       `envconfig:"LOG" validate:"required"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT" validate:"required"`
	Converter *Converter `envconfig:"CONVERTER" validate:"required"`
	API       *API       `envconfig:"API" validate:"required"`
}

// Addr returns the host:port pair the HTTP server listens on.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// URL returns the base URL of the server.
func (s *Server) URL() string {
	return fmt.Sprintf("%s://%s", s.Scheme, s.Addr())
}
