package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"tripideas/metrics"
)

var (
	ErrAIUnavailable   = errors.New("AI is not configured")
	ErrEmptyCompletion = errors.New("empty response from AI")
)

// PlanCompleter returns raw model text for a structured plan prompt.
type PlanCompleter interface {
	CompletePlan(ctx context.Context, prompt string) (string, error)
}

// SearchCompleter returns a search-grounded model response.
type SearchCompleter interface {
	CompleteWithSearch(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error)
}

// contentGenerator is the subset of genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type GeminiClient struct {
	models  contentGenerator
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewGeminiClient connects to the Gemini API. Callers only construct it when
// an API key is configured.
func NewGeminiClient(ctx context.Context, apiKey, model string, timeout time.Duration, logger *zap.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, ErrAIUnavailable
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return newGeminiClient(client.Models, model, timeout, logger), nil
}

func newGeminiClient(models contentGenerator, model string, timeout time.Duration, logger *zap.Logger) *GeminiClient {
	return &GeminiClient{
		models:  models,
		model:   model,
		timeout: timeout,
		logger:  logger.Named("gemini"),
	}
}

func (c *GeminiClient) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
}

func (c *GeminiClient) CompletePlan(ctx context.Context, prompt string) (string, error) {
	resp, err := c.generate(ctx, prompt, &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0.7),
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrEmptyCompletion
	}
	cand := resp.Candidates[0]
	if cand.Content == nil || len(cand.Content.Parts) == 0 || cand.Content.Parts[0] == nil {
		return "", ErrEmptyCompletion
	}
	text := cand.Content.Parts[0].Text
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}

// CompleteWithSearch asks with the Google Search tool enabled. If that call
// fails it is retried exactly once without the tool.
func (c *GeminiClient) CompleteWithSearch(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error) {
	resp, err := c.generate(ctx, prompt, &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	})
	if err == nil {
		return resp, nil
	}
	if ctx.Err() != nil {
		return nil, fmt.Errorf("gemini generate: %w", ctx.Err())
	}

	c.logger.Warn("search-grounded completion failed, retrying without search", zap.Error(err))
	metrics.SearchDegraded.Inc()

	resp, err = c.generate(ctx, prompt, nil)
	if err != nil {
		return nil, fmt.Errorf("gemini generate without search: %w", err)
	}
	return resp, nil
}

// ExtractAnswer prefers the response's own text accessor and falls back to
// joining every text part of the first candidate.
func ExtractAnswer(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	if text := strings.TrimSpace(resp.Text()); text != "" {
		return text
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			b.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(b.String())
}

// ExtractReferences lists the web sources in the first candidate's grounding
// metadata. The result is never nil.
func ExtractReferences(resp *genai.GenerateContentResponse) []Reference {
	refs := []Reference{}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return refs
	}
	meta := resp.Candidates[0].GroundingMetadata
	if meta == nil {
		return refs
	}

	snippets := make(map[int]string)
	for _, support := range meta.GroundingSupports {
		if support == nil || support.Segment == nil || support.Segment.Text == "" {
			continue
		}
		for _, idx := range support.GroundingChunkIndices {
			if _, ok := snippets[int(idx)]; !ok {
				snippets[int(idx)] = support.Segment.Text
			}
		}
	}

	for i, chunk := range meta.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		if chunk.Web.Title == "" && chunk.Web.URI == "" {
			continue
		}
		refs = append(refs, Reference{
			Title:   chunk.Web.Title,
			URL:     chunk.Web.URI,
			Snippet: snippets[i],
		})
	}

	return lo.UniqBy(refs, func(r Reference) string {
		return r.Title + "\x00" + r.URL
	})
}
