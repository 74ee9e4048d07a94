package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/golang-jwt/jwt/v4/request"
	"golang.org/x/time/rate"

	"github.com/samandr77/microservices/checkout/internal/entity"
	"github.com/samandr77/microservices/checkout/pkg/logger"
)

var skipLogging = map[string]struct{}{
	"/api/health": {},
}

// Bodies of these requests carry credentials.
var skipBody = map[string]struct{}{
	"/api/dashboard/login":    {},
	"/api/dashboard/password": {},
}

const limiterIdleTTL = 10 * time.Minute

type Middleware struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*clientLimiter
	now      func() time.Time
}

type clientLimiter struct {
	l        *rate.Limiter
	lastSeen time.Time
}

// NewMiddleware builds the middleware set. limit and burst apply per client
// address to payment creation.
func NewMiddleware(limit float64, burst int) *Middleware {
	return &Middleware{
		limit:    rate.Limit(limit),
		burst:    burst,
		limiters: make(map[string]*clientLimiter),
		now:      time.Now,
	}
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		ctx = logger.WithRequestID(ctx, requestID)
		w.Header().Set("X-Request-Id", requestID)

		if _, ok := skipLogging[r.URL.Path]; !ok {
			reqBody, err := io.ReadAll(r.Body)
			if err != nil {
				SendJSONErr(ctx, w, http.StatusInternalServerError, err, "read request body")
				return
			}

			r.Body.Close()
			r.Body = io.NopCloser(bytes.NewBuffer(reqBody))

			if _, ok := skipBody[r.URL.Path]; ok {
				reqBody = nil
			}

			var headers strings.Builder

			for k, v := range r.Header {
				if k == "Authorization" || k == "Cookie" {
					continue
				}

				headers.WriteString(fmt.Sprintf("%s: %s,\n", k, v))
			}

			slog.InfoContext(ctx, "incoming request",
				"request", fmt.Sprintf("%s %s\n%s", r.Method, r.URL.Redacted(), reqBody),
				"headers", headers.String(),
			)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "recovered from panic", "error", err, "stack", string(debug.Stack()))
				SendJSONErr(ctx, w, http.StatusInternalServerError, fmt.Errorf("panic: %v", err), "Internal error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Origin, Accept, User-Agent, Cache-Control")

		if r.Method == http.MethodOptions {
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Merchant adds the merchant of the checkout route to the log context.
func (m *Middleware) Merchant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithMerchant(r.Context(), chi.URLParam(r, "merchant"))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// BearerAuth passes the dashboard token through to the backend, which is the one
// that verifies it. The subject claim identifies the owner of download jobs.
func (m *Middleware) BearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, err := request.BearerExtractor{}.ExtractToken(r)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Token is missing")
			return
		}

		var claims jwt.RegisteredClaims

		_, _, err = jwt.NewParser().ParseUnverified(token, &claims)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Token is malformed")
			return
		}

		if claims.Subject == "" {
			SendJSONErr(ctx, w, http.StatusUnauthorized, errors.New("token has no subject"), "Token is malformed")
			return
		}

		ctx = entity.CtxWithJWT(ctx, token)
		ctx = entity.CtxWithOwner(ctx, claims.Subject)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RateLimit rejects requests of a client address that exceed its token bucket.
func (m *Middleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}

		if !m.limiter(host).Allow() {
			w.Header().Set("Retry-After", "1")
			SendJSONErr(ctx, w, http.StatusTooManyRequests, fmt.Errorf("rate limit exceeded for %s", host), "Too many requests")

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) limiter(host string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()

	for k, v := range m.limiters {
		if now.Sub(v.lastSeen) > limiterIdleTTL {
			delete(m.limiters, k)
		}
	}

	c, ok := m.limiters[host]
	if !ok {
		c = &clientLimiter{l: rate.NewLimiter(m.limit, m.burst)}
		m.limiters[host] = c
	}

	c.lastSeen = now

	return c.l
}
