// Package assist is the AI clarification gateway. Every operation degrades
// to an absent result (nil or empty) on any failure; callers treat that as
// "skip AI enrichment" and carry on.
package assist

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"google.golang.org/genai"

	"github.com/d60-Lab/peerpath/config"
	"github.com/d60-Lab/peerpath/internal/model"
	"github.com/d60-Lab/peerpath/pkg/logger"
)

// Assistant is the AI collaborator consumed by the forum service.
type Assistant interface {
	// Clarify rewrites a question neutrally, drafts a baseline answer and
	// suggests tags. Returns nil on failure.
	Clarify(ctx context.Context, questionText string) *model.Clarification
	// FindSimilar returns indices into existingTitles of semantically similar
	// questions. Indices are not range-checked. Returns an empty slice on
	// failure.
	FindSimilar(ctx context.Context, candidate string, existingTitles []string) []int
	// SummarizeThread condenses a thread's answers. Returns nil on failure.
	SummarizeThread(ctx context.Context, questionText string, answers []model.StructuredAnswer) *model.ThreadSummary
	// Enabled reports whether calls can reach the AI backend at all.
	Enabled() bool
}

// Disabled is the Assistant used when no credential is configured. It never
// touches the network.
type Disabled struct{}

func (Disabled) Clarify(context.Context, string) *model.Clarification { return nil }

func (Disabled) FindSimilar(context.Context, string, []string) []int { return []int{} }

func (Disabled) SummarizeThread(context.Context, string, []model.StructuredAnswer) *model.ThreadSummary {
	return nil
}

func (Disabled) Enabled() bool { return false }

// New builds the Assistant for cfg. Without an API key it returns Disabled.
// When rdb is non-nil successful results are cached in Redis.
func New(ctx context.Context, cfg config.AIConfig, rdb redis.Cmdable) (Assistant, error) {
	if cfg.APIKey == "" {
		logger.Warn("ai api key not configured, assist features disabled")
		return Disabled{}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	var a Assistant = NewGeminiAssistant(client.Models, cfg.Model, cfg.Timeout)
	if rdb != nil {
		a = NewCachedAssistant(a, rdb, cfg.CacheTTL)
	}
	return a, nil
}
