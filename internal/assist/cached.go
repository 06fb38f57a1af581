package assist

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/peerpath/internal/model"
	"github.com/d60-Lab/peerpath/pkg/logger"
)

// CachedAssistant caches successful results of another Assistant in Redis.
// Failures are never cached, and a broken cache falls through to the inner
// Assistant.
type CachedAssistant struct {
	inner Assistant
	cache redis.Cmdable
	ttl   time.Duration
}

func NewCachedAssistant(inner Assistant, cache redis.Cmdable, ttl time.Duration) *CachedAssistant {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &CachedAssistant{inner: inner, cache: cache, ttl: ttl}
}

func (c *CachedAssistant) Enabled() bool { return c.inner.Enabled() }

func (c *CachedAssistant) Clarify(ctx context.Context, questionText string) *model.Clarification {
	key := cacheKey("clarify", questionText)
	var out model.Clarification
	if c.get(ctx, key, &out) {
		return &out
	}
	res := c.inner.Clarify(ctx, questionText)
	if res != nil {
		c.set(ctx, key, res)
	}
	return res
}

func (c *CachedAssistant) FindSimilar(ctx context.Context, candidate string, existingTitles []string) []int {
	parts := append([]string{candidate}, existingTitles...)
	key := cacheKey("similar", parts...)
	var out []int
	if c.get(ctx, key, &out) {
		return out
	}
	res := c.inner.FindSimilar(ctx, candidate, existingTitles)
	// an empty result is indistinguishable from a failure
	if len(res) > 0 {
		c.set(ctx, key, res)
	}
	return res
}

func (c *CachedAssistant) SummarizeThread(ctx context.Context, questionText string, answers []model.StructuredAnswer) *model.ThreadSummary {
	parts := []string{questionText}
	for _, a := range answers {
		parts = append(parts, a.ID, a.ShortAnswer)
	}
	key := cacheKey("summary", parts...)
	var out model.ThreadSummary
	if c.get(ctx, key, &out) {
		return &out
	}
	res := c.inner.SummarizeThread(ctx, questionText, answers)
	if res != nil {
		c.set(ctx, key, res)
	}
	return res
}

func (c *CachedAssistant) get(ctx context.Context, key string, out any) bool {
	data, err := c.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("assist cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false
	}
	return true
}

func (c *CachedAssistant) set(ctx context.Context, key string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		logger.Warn("assist cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func cacheKey(op string, parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return "assist:" + op + ":" + hex.EncodeToString(h.Sum(nil))
}
