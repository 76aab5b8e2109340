package middleware

import (
	"issue-tracker/pkg/log"
)

// Config holds the knobs for the HTTP middlewares.
type Config struct {
	AllowedOrigins   []string
	RateLimitEnabled bool
	RequestsPerMin   int
}

type Middleware struct {
	l       log.Logger
	cfg     Config
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:   l,
		cfg: cfg,
	}
	if cfg.RateLimitEnabled && cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
