package assist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/d60-Lab/peerpath/internal/model"
	"github.com/d60-Lab/peerpath/pkg/logger"
)

const DefaultModel = "gemini-2.0-flash"

var (
	errEmptyResponse  = errors.New("empty model response")
	errSchemaMismatch = errors.New("response does not match schema")
)

// ContentGenerator is the slice of the genai client used here. *genai.Models
// satisfies it.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiAssistant calls Gemini with a fixed prompt and response schema per
// operation.
type GeminiAssistant struct {
	gen     ContentGenerator
	model   string
	timeout time.Duration
}

func NewGeminiAssistant(gen ContentGenerator, model string, timeout time.Duration) *GeminiAssistant {
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &GeminiAssistant{gen: gen, model: model, timeout: timeout}
}

func (g *GeminiAssistant) Enabled() bool { return true }

var clarificationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"neutralQuestion": {Type: genai.TypeString},
		"baselineAnswer": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"summary": {Type: genai.TypeString},
				"paths":   {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			},
			Required: []string{"summary", "paths"},
		},
		"suggestedTags": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
	},
	Required: []string{"neutralQuestion", "baselineAnswer", "suggestedTags"},
}

var similarSchema = &genai.Schema{
	Type:  genai.TypeArray,
	Items: &genai.Schema{Type: genai.TypeInteger},
}

var summarySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"tldr":        {Type: genai.TypeString},
		"consensus":   {Type: genai.TypeString},
		"differences": {Type: genai.TypeString},
	},
	Required: []string{"tldr", "consensus", "differences"},
}

func (g *GeminiAssistant) Clarify(ctx context.Context, questionText string) *model.Clarification {
	prompt := fmt.Sprintf(`Analyze the following college student's career or academic question and provide:
1. A neutral, clearer version of the question.
2. A baseline answer with 2-3 possible paths.
3. 3-5 relevant short tags.

Question: %s`, questionText)

	var raw struct {
		NeutralQuestion *string `json:"neutralQuestion"`
		BaselineAnswer  *struct {
			Summary *string  `json:"summary"`
			Paths   []string `json:"paths"`
		} `json:"baselineAnswer"`
		SuggestedTags []string `json:"suggestedTags"`
	}
	if err := g.generate(ctx, "clarify", prompt, clarificationSchema, &raw); err != nil {
		return nil
	}
	if raw.NeutralQuestion == nil || raw.BaselineAnswer == nil || raw.BaselineAnswer.Summary == nil ||
		raw.BaselineAnswer.Paths == nil || raw.SuggestedTags == nil {
		g.fail(ctx, "clarify", errSchemaMismatch)
		return nil
	}
	return &model.Clarification{
		NeutralQuestion: *raw.NeutralQuestion,
		BaselineAnswer: model.BaselineAnswer{
			Summary: *raw.BaselineAnswer.Summary,
			Paths:   raw.BaselineAnswer.Paths,
		},
		SuggestedTags: raw.SuggestedTags,
	}
}

func (g *GeminiAssistant) FindSimilar(ctx context.Context, candidate string, existingTitles []string) []int {
	if len(existingTitles) == 0 {
		return []int{}
	}
	titles, err := json.Marshal(existingTitles)
	if err != nil {
		return []int{}
	}
	prompt := fmt.Sprintf(`Compare this question: %q
to these existing questions: %s.
Return the indices of the questions that are semantically very similar.`, candidate, titles)

	var idx []int
	if err := g.generate(ctx, "find_similar", prompt, similarSchema, &idx); err != nil || idx == nil {
		return []int{}
	}
	return idx
}

func (g *GeminiAssistant) SummarizeThread(ctx context.Context, questionText string, answers []model.StructuredAnswer) *model.ThreadSummary {
	var b strings.Builder
	for i, a := range answers {
		fmt.Fprintf(&b, "Answer %d: %s\n", i+1, a.ShortAnswer)
	}
	prompt := fmt.Sprintf(`Provide a TL;DR summary for this career decision thread.
Question: %s
Answers:
%s`, questionText, b.String())

	var raw struct {
		TLDR        *string `json:"tldr"`
		Consensus   *string `json:"consensus"`
		Differences *string `json:"differences"`
	}
	if err := g.generate(ctx, "summarize_thread", prompt, summarySchema, &raw); err != nil {
		return nil
	}
	if raw.TLDR == nil || raw.Consensus == nil || raw.Differences == nil {
		g.fail(ctx, "summarize_thread", errSchemaMismatch)
		return nil
	}
	return &model.ThreadSummary{TLDR: *raw.TLDR, Consensus: *raw.Consensus, Differences: *raw.Differences}
}

// generate runs one structured-output request and decodes the JSON body
// into out. Errors are already logged and reported when returned.
func (g *GeminiAssistant) generate(ctx context.Context, op, prompt string, schema *genai.Schema, out any) error {
	ctx, span := otel.Tracer("peerpath/assist").Start(ctx, "assist."+op)
	defer span.End()
	span.SetAttributes(attribute.String("ai.model", g.model))

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	resp, err := g.gen.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err == nil {
		err = decodeResponse(resp, out)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		g.fail(ctx, op, err)
		return err
	}
	logger.Debug("assist call ok", zap.String("op", op), zap.Duration("took", time.Since(start)))
	return nil
}

func (g *GeminiAssistant) fail(ctx context.Context, op string, err error) {
	logger.Warn("assist call failed", zap.String("op", op), zap.String("model", g.model), zap.Error(err))
	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.CaptureException(err)
		return
	}
	sentry.CaptureException(err)
}

func decodeResponse(resp *genai.GenerateContentResponse, out any) error {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return errEmptyResponse
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil {
			b.WriteString(p.Text)
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return errEmptyResponse
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("%w: %v", errSchemaMismatch, err)
	}
	return nil
}
