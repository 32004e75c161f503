package server

import (
	"net"
	"net/http"
	"sync"
	"time"
)

const (
	limiterWindow      = 10 * time.Second
	limiterMaxRequests = 30
)

// rateLimiter is a fixed-window counter per client IP and action.
type rateLimiter struct {
	mu      sync.Mutex
	windows map[string]*limiterWindowState
}

type limiterWindowState struct {
	start time.Time
	count int
}

func newRateLimiter() *rateLimiter {
	return &rateLimiter{
		windows: make(map[string]*limiterWindowState),
	}
}

func (l *rateLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	window, ok := l.windows[key]
	if !ok || now.Sub(window.start) > limiterWindow {
		l.windows[key] = &limiterWindowState{start: now, count: 1}
		return true
	}
	window.count++
	return window.count <= limiterMaxRequests
}

func (s *Server) enforceRateLimit(w http.ResponseWriter, r *http.Request, action string) bool {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if s.limiter.allow(host + ":" + action) {
		return true
	}
	writeError(w, http.StatusTooManyRequests, "too many requests")
	return false
}
