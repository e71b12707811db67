package middlewares

import (
	"net/http"
	"sync"
	"time"

	"emoease-service/internal/pkg/exceptions"
	"emoease-service/internal/pkg/utils"

	"golang.org/x/time/rate"
)

// ChatSendLimiter throttles message sends per session with a token bucket.
// Anonymous senders share a bucket keyed by remote address.
func (m *Middlewares) ChatSendLimiter() func(http.Handler) http.Handler {
	limit := rate.Every(time.Minute / time.Duration(m.InternalConfig.Chat.SendsPerMinute))
	burst := m.InternalConfig.Chat.SendsPerMinute

	var mu sync.Mutex
	limiters := make(map[string]*rate.Limiter)

	limiterFor := func(key string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		if limiter, ok := limiters[key]; ok {
			return limiter
		}
		limiter := rate.NewLimiter(limit, burst)
		limiters[key] = limiter
		return limiter
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.RemoteAddr
			if sessionID := utils.SessionIDFromContext(r.Context()); sessionID != "" {
				key = sessionID
			}

			if !limiterFor(key).Allow() {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyMessages(nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
