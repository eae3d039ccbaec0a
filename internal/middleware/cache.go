package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/warungpos/pos-service/pkg/logger"
)

// CacheConfig holds response cache configuration
type CacheConfig struct {
	TTL       time.Duration
	KeyPrefix string
}

// DefaultCacheConfig returns the default report cache configuration
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		TTL:       60 * time.Second,
		KeyPrefix: "cache",
	}
}

// cacheRecorder captures the response so it can be stored in Redis
type cacheRecorder struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (rec *cacheRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *cacheRecorder) Write(b []byte) (int, error) {
	rec.body.Write(b)
	return rec.ResponseWriter.Write(b)
}

// CacheMiddleware caches successful GET responses in Redis. Aggregation
// endpoints hit the database hard for identical ranges; a short TTL keeps
// dashboards cheap without serving stale numbers for long.
func CacheMiddleware(redisClient *redis.Client, config CacheConfig) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			// Skip caching if Redis is not available
			if redisClient == nil || r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			cacheKey := generateCacheKey(r, config.KeyPrefix)

			ctx := r.Context()
			cached, err := redisClient.Get(ctx, cacheKey).Bytes()
			if err == nil && len(cached) > 0 {
				logger.Logger.Debug().
					Str("path", r.URL.Path).
					Str("cache_key", cacheKey).
					Msg("Cache hit")

				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Cache", "HIT")
				w.Write(cached)
				return
			}

			rec := &cacheRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			rec.Header().Set("X-Cache", "MISS")
			next.ServeHTTP(rec, r)

			if rec.statusCode != http.StatusOK {
				return
			}

			if err := redisClient.Set(context.Background(), cacheKey, rec.body.Bytes(), config.TTL).Err(); err != nil {
				logger.Logger.Warn().
					Err(err).
					Str("cache_key", cacheKey).
					Msg("Failed to cache response")
				return
			}

			logger.Logger.Debug().
				Str("path", r.URL.Path).
				Str("cache_key", cacheKey).
				Dur("ttl", config.TTL).
				Int("size", rec.body.Len()).
				Msg("Response cached")
		}
	}
}

// generateCacheKey generates a unique cache key for the request.
// The auth header is part of the key: dashboards are scoped per user.
func generateCacheKey(r *http.Request, prefix string) string {
	keyComponents := fmt.Sprintf("%s:%s:%s:%s",
		r.Method,
		r.URL.Path,
		r.URL.RawQuery,
		r.Header.Get("Authorization"),
	)

	hash := sha256.Sum256([]byte(keyComponents))
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// InvalidateCache removes all cached responses matching a pattern
func InvalidateCache(redisClient *redis.Client, pattern string) error {
	if redisClient == nil {
		return nil
	}

	ctx := context.Background()
	iter := redisClient.Scan(ctx, 0, pattern, 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) > 0 {
		if err := redisClient.Del(ctx, keys...).Err(); err != nil {
			return err
		}

		logger.Logger.Info().
			Int("count", len(keys)).
			Str("pattern", pattern).
			Msg("Cache invalidated")
	}

	return nil
}
