package middleware

import (
	"taskboard/pkg/log"
)

// Config carries the knobs for the shared gin middlewares.
type Config struct {
	AllowedOrigins  []string
	RateLimitPerMin int
}

type Middleware struct {
	l           log.Logger
	cfg         Config
	rateLimiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:   l,
		cfg: cfg,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.rateLimiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
