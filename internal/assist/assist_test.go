package assist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/d60-Lab/peerpath/config"
	"github.com/d60-Lab/peerpath/internal/model"
)

type fakeGenerator struct {
	body    string
	err     error
	calls   int
	lastCfg *genai.GenerateContentConfig
	prompt  string
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, m string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.lastCfg = cfg
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: f.body}}},
		}},
	}, nil
}

const clarifyBody = `{"neutralQuestion":"How should a second-year student prepare for GSoC?",
"baselineAnswer":{"summary":"Start early","paths":["Pick orgs","Fix issues"]},
"suggestedTags":["gsoc","git"]}`

func TestGeminiClarify(t *testing.T) {
	gen := &fakeGenerator{body: clarifyBody}
	g := NewGeminiAssistant(gen, "", time.Second)

	c := g.Clarify(context.Background(), "gsoc how??")
	require.NotNil(t, c)
	assert.Equal(t, "How should a second-year student prepare for GSoC?", c.NeutralQuestion)
	assert.Equal(t, "Start early", c.BaselineAnswer.Summary)
	assert.Equal(t, []string{"Pick orgs", "Fix issues"}, c.BaselineAnswer.Paths)
	assert.Equal(t, []string{"gsoc", "git"}, c.SuggestedTags)

	require.NotNil(t, gen.lastCfg)
	assert.Equal(t, "application/json", gen.lastCfg.ResponseMIMEType)
	assert.Equal(t, clarificationSchema, gen.lastCfg.ResponseSchema)
	assert.Contains(t, gen.prompt, "gsoc how??")
}

func TestGeminiClarifyFailures(t *testing.T) {
	cases := map[string]*fakeGenerator{
		"transport":        {err: errors.New("boom")},
		"not json":         {body: "sorry, I can't"},
		"missing field":    {body: `{"neutralQuestion":"x","suggestedTags":[]}`},
		"missing nested":   {body: `{"neutralQuestion":"x","baselineAnswer":{"summary":"s"},"suggestedTags":[]}`},
		"empty candidates": {body: ""},
	}
	for name, gen := range cases {
		t.Run(name, func(t *testing.T) {
			g := NewGeminiAssistant(gen, "m", time.Second)
			assert.Nil(t, g.Clarify(context.Background(), "q"))
		})
	}
}

func TestGeminiFindSimilar(t *testing.T) {
	gen := &fakeGenerator{body: `[0, 2, 7]`}
	g := NewGeminiAssistant(gen, "m", time.Second)

	idx := g.FindSimilar(context.Background(), "gsoc prep", []string{"GSoC?", "Clubs", "GSoC 2025"})
	assert.Equal(t, []int{0, 2, 7}, idx, "indices are passed through unchecked")
	assert.Equal(t, similarSchema, gen.lastCfg.ResponseSchema)

	gen.err = errors.New("down")
	assert.Equal(t, []int{}, g.FindSimilar(context.Background(), "x", []string{"a"}))

	calls := gen.calls
	assert.Equal(t, []int{}, g.FindSimilar(context.Background(), "x", nil))
	assert.Equal(t, calls, gen.calls, "no call without titles")
}

func TestGeminiSummarize(t *testing.T) {
	gen := &fakeGenerator{body: `{"tldr":"t","consensus":"c","differences":"d"}`}
	g := NewGeminiAssistant(gen, "m", time.Second)
	answers := []model.StructuredAnswer{{ShortAnswer: "first"}, {ShortAnswer: "second"}}

	s := g.SummarizeThread(context.Background(), "q?", answers)
	require.NotNil(t, s)
	assert.Equal(t, model.ThreadSummary{TLDR: "t", Consensus: "c", Differences: "d"}, *s)
	assert.Contains(t, gen.prompt, "Answer 1: first")
	assert.Contains(t, gen.prompt, "Answer 2: second")

	gen.body = `{"tldr":"t"}`
	assert.Nil(t, g.SummarizeThread(context.Background(), "q?", answers))
}

func TestDisabled(t *testing.T) {
	a, err := New(context.Background(), config.AIConfig{}, nil)
	require.NoError(t, err)
	assert.False(t, a.Enabled())
	assert.Nil(t, a.Clarify(context.Background(), "q"))
	assert.Equal(t, []int{}, a.FindSimilar(context.Background(), "q", []string{"a"}))
	assert.Nil(t, a.SummarizeThread(context.Background(), "q", nil))
}

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestCachedAssistantCachesSuccess(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	gen := &fakeGenerator{body: clarifyBody}
	c := NewCachedAssistant(NewGeminiAssistant(gen, "m", time.Second), rdb, time.Minute)
	ctx := context.Background()

	first := c.Clarify(ctx, "same question")
	second := c.Clarify(ctx, "same question")
	require.NotNil(t, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, gen.calls)

	key := cacheKey("clarify", "same question")
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Minute, mr.TTL(key))
}

func TestCachedAssistantSkipsFailures(t *testing.T) {
	_, rdb := newMiniRedis(t)
	gen := &fakeGenerator{err: errors.New("quota")}
	c := NewCachedAssistant(NewGeminiAssistant(gen, "m", time.Second), rdb, time.Minute)
	ctx := context.Background()

	assert.Nil(t, c.Clarify(ctx, "q"))
	assert.Nil(t, c.Clarify(ctx, "q"))
	assert.Equal(t, 2, gen.calls)

	assert.Empty(t, c.FindSimilar(ctx, "q", []string{"a"}))
	assert.Empty(t, c.FindSimilar(ctx, "q", []string{"a"}))
	assert.Equal(t, 4, gen.calls)
}

func TestCachedAssistantSimilarAndSummary(t *testing.T) {
	_, rdb := newMiniRedis(t)
	gen := &fakeGenerator{body: `[1]`}
	c := NewCachedAssistant(NewGeminiAssistant(gen, "m", time.Second), rdb, time.Minute)
	ctx := context.Background()

	assert.Equal(t, []int{1}, c.FindSimilar(ctx, "q", []string{"a", "b"}))
	assert.Equal(t, []int{1}, c.FindSimilar(ctx, "q", []string{"a", "b"}))
	assert.Equal(t, 1, gen.calls)

	gen.body = `{"tldr":"t","consensus":"c","differences":"d"}`
	answers := []model.StructuredAnswer{{ID: "a1", ShortAnswer: "x"}, {ID: "a2", ShortAnswer: "y"}}
	s1 := c.SummarizeThread(ctx, "q", answers)
	s2 := c.SummarizeThread(ctx, "q", answers)
	require.NotNil(t, s1)
	assert.Equal(t, s1, s2)
	assert.Equal(t, 2, gen.calls)
}

func TestCachedAssistantBrokenCacheFallsThrough(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	mr.Close()
	gen := &fakeGenerator{body: clarifyBody}
	c := NewCachedAssistant(NewGeminiAssistant(gen, "m", time.Second), rdb, time.Minute)

	assert.NotNil(t, c.Clarify(context.Background(), "q"))
	assert.Equal(t, 1, gen.calls)
}
