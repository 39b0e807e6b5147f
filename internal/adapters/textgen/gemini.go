// Package textgen adapts hosted text-generation models to the gateways.TextGenerator port.
package textgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/salesmaster_cloud/internal/apperrors"
	"github.com/SscSPs/salesmaster_cloud/internal/core/ports/gateways"
	"github.com/SscSPs/salesmaster_cloud/internal/middleware"
	"google.golang.org/genai"
)

// GeminiGenerator calls the Gemini API generateContent method.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

var _ gateways.TextGenerator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a generator for model. An empty endpoint uses the public API.
func NewGeminiGenerator(ctx context.Context, apiKey, model, endpoint string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", apperrors.ErrConfiguration)
	}
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if endpoint != "" {
		cc.HTTPOptions.BaseURL = endpoint
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

// Generate sends prompt as a single user turn and returns the first candidate's text.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		logger.Error("Text generation request failed", slog.String("model", g.model), slog.String("error", err.Error()))
		return "", classifyError(err)
	}

	text := firstCandidateText(resp)
	if text == "" {
		logger.Warn("Text generation returned no content", slog.String("model", g.model))
		return "", fmt.Errorf("%w: text generation returned no content", apperrors.ErrUnavailable)
	}
	return text, nil
}

// classifyError reports a rejected API key as a configuration problem and
// everything else as an upstream outage.
func classifyError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && (apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden) {
		return fmt.Errorf("%w: GEMINI_API_KEY was rejected: %s", apperrors.ErrConfiguration, apiErr.Message)
	}
	return fmt.Errorf("%w: text generation failed: %v", apperrors.ErrUnavailable, err)
}

func firstCandidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && !part.Thought {
			b.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(b.String())
}
