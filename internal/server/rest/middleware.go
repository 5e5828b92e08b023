package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/dmitrijs2005/usersvc/internal/common"
	"github.com/dmitrijs2005/usersvc/internal/logging"
	"github.com/dmitrijs2005/usersvc/internal/server/models"
)

type ctxKey int

const userKey ctxKey = iota

// UserFromContext returns the account attached by the auth guard.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userKey).(*models.User)
	return u, ok && u != nil
}

func withUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// bearerToken extracts the token from "Authorization: Bearer <t>", a bare
// Authorization value, or the legacy "jwt" header. A Bearer scheme with
// nothing after it yields "".
func bearerToken(r *http.Request) string {
	if h := strings.TrimSpace(r.Header.Get(common.AuthHeaderName)); h != "" {
		scheme := strings.TrimSpace(common.BearerPrefix)
		if len(h) >= len(scheme) && strings.EqualFold(h[:len(scheme)], scheme) {
			rest := h[len(scheme):]
			if rest == "" || rest[0] == ' ' || rest[0] == '\t' {
				return strings.TrimSpace(rest)
			}
		}
		return h
	}
	return strings.TrimSpace(r.Header.Get(common.LegacyAuthHeaderName))
}

// authGuard rejects requests without a valid token with 401 and stores the
// resolved account in the request context otherwise.
func authGuard(auth Authenticator, log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			user, err := auth.Authenticate(ctx, bearerToken(r))
			if err != nil {
				if errors.Is(err, common.ErrorInternal) {
					log.Error(ctx, "token verification failed", "error", err)
					writeInternal(w, err)
					return
				}
				log.Warn(ctx, "unauthorized request", "path", r.URL.Path, "reason", err.Error())
				writeUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(withUser(ctx, user)))
		})
	}
}

// accessLog writes one line per request.
func accessLog(log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Info(r.Context(), "request",
				"request_id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		})
	}
}

// ipLimiter keeps one token bucket per client address.
type ipLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	idle     time.Duration
	clients  map[string]*client
	lastScan time.Time
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newIPLimiter(rps float64, burst int) *ipLimiter {
	if burst < 1 {
		burst = 1
	}
	return &ipLimiter{
		limit:   rate.Limit(rps),
		burst:   burst,
		idle:    3 * time.Minute,
		clients: make(map[string]*client),
	}
}

func (l *ipLimiter) allow(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastScan) > l.idle {
		for k, c := range l.clients {
			if now.Sub(c.lastSeen) > l.idle {
				delete(l.clients, k)
			}
		}
		l.lastScan = now
	}

	c, ok := l.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// rateLimit throttles per client IP. A non-positive rps disables it.
func rateLimit(rps float64, burst int, log logging.Logger) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	l := newIPLimiter(rps, burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)
			if !l.allow(key, time.Now()) {
				log.Warn(r.Context(), "rate limit exceeded", "client", key, "path", r.URL.Path)
				writeError(w, http.StatusTooManyRequests, codeTooManyRequests, http.StatusText(http.StatusTooManyRequests))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
