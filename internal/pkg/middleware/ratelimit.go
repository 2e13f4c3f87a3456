package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/cache"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
)

// RateLimiter limita requisições por IP numa janela fixa usando um contador no Redis.
// Contagem e TTL são gravados juntos, então nenhuma chave fica sem expiração.
// Se o Redis estiver indisponível a requisição segue (fail open) e o erro é registrado.
func RateLimiter(client cache.Client, limit int, window time.Duration, prefix string, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := "rate-limit:" + prefix + ":" + clientIP(r)
			ctx := r.Context()

			count, err := client.IncrWindow(ctx, key, window)
			if err != nil {
				log.Warn("Rate limiter indisponível, seguindo sem limite.", map[string]interface{}{"error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}

			remaining := limit - int(count)
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if int(count) > limit {
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"error":"Muitas tentativas. Tente novamente mais tarde."}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
