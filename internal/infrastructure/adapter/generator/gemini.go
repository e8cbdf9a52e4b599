package generator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"google.golang.org/genai"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	errs "github.com/amirhossein-jamali/adspark/internal/domain/error"
	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/gateway"
)

const (
	ProviderGemini = "gemini"

	DefaultGeminiModel = "gemini-1.5-flash"

	// maxHookLength is the longest line accepted as a hook
	maxHookLength = 150
)

var listMarker = regexp.MustCompile(`^(\d+[.)]|[-*•])\s*`)

// GeminiGenerator prompts the Gemini API for hooks through the genai SDK
type GeminiGenerator struct {
	models   *genai.Models
	model    string
	variants int
	logger   coreport.Logger
}

// NewGeminiGenerator creates a generator for model. An empty endpoint keeps the SDK's default
// base URL; client carries the transport and no timeout, deadlines come from the request context.
func NewGeminiGenerator(ctx context.Context, endpoint, model, apiKey string, variants int, client *http.Client, logger coreport.Logger) (*GeminiGenerator, error) {
	if model == "" {
		model = DefaultGeminiModel
	}
	if variants <= 0 {
		variants = 3
	}

	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: client,
	}
	if endpoint != "" {
		cfg.HTTPOptions.BaseURL = strings.TrimRight(endpoint, "/") + "/"
	}

	c, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiGenerator{
		models:   c.Models,
		model:    model,
		variants: variants,
		logger:   logger,
	}, nil
}

var _ gateway.HookGenerator = (*GeminiGenerator)(nil)

func (g *GeminiGenerator) Name() string { return ProviderGemini }

func (g *GeminiGenerator) Generate(ctx context.Context, p entity.HookParams) ([]string, error) {
	prompt := fmt.Sprintf(`Write %d distinct marketing hooks.

Product: %s
Target audience: %s
Tone: %s
Platform: %s

Rules:
- One hook per line, no numbering
- At most %d characters each
- Creative, engaging language suited to the platform`,
		g.variants, p.Product, p.Audience, p.Tone, p.Platform, maxHookLength)

	text, err := g.complete(ctx, prompt, 0.8, 300)
	if err != nil {
		return nil, err
	}

	hooks := parseHookLines(text, g.variants)
	g.logger.Debug("Gemini hooks parsed", map[string]any{
		"model": g.model,
		"count": len(hooks),
	})
	return hooks, nil
}

func (g *GeminiGenerator) Continue(ctx context.Context, req entity.ContinuationRequest) (string, error) {
	instruction := "Extend it with one or two sentences that keep its voice."
	if req.UserPrompt != "" {
		instruction = "Extend it following this request: " + req.UserPrompt
	}
	prompt := fmt.Sprintf(`Here is a marketing hook for %s aimed at %s on %s, written in a %s tone:

"%s"

%s Reply with the full continued hook only.`,
		req.Context.Product, req.Context.Audience, req.Context.Platform, req.Context.Tone,
		req.PreviousHook, instruction)

	text, err := g.complete(ctx, prompt, 0.7, 200)
	if err != nil {
		return "", err
	}
	return strings.Trim(strings.TrimSpace(text), `"`), nil
}

func (g *GeminiGenerator) complete(ctx context.Context, prompt string, temperature float32, maxTokens int32) (string, error) {
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(temperature),
		MaxOutputTokens: maxTokens,
	})
	if err != nil {
		return "", geminiError(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errs.NewGenerationError(ProviderGemini, 0, "no candidates returned", nil)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), nil
}

// geminiError keeps the API status and message; deadline expiry keeps ErrGenerationTimeout as
// its cause
func geminiError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errs.NewGenerationError(ProviderGemini, 0, "", errs.ErrGenerationTimeout)
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return errs.NewGenerationError(ProviderGemini, apiErr.Code, apiErr.Message, nil)
	}
	return errs.NewGenerationError(ProviderGemini, 0, "request failed", err)
}

// parseHookLines splits model output into at most limit hooks, dropping list markers,
// surrounding quotes and lines that are too long
func parseHookLines(text string, limit int) []string {
	var hooks []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(listMarker.ReplaceAllString(strings.TrimSpace(line), ""))
		line = strings.Trim(line, `"`)
		if line == "" || len([]rune(line)) > maxHookLength {
			continue
		}
		hooks = append(hooks, line)
		if len(hooks) == limit {
			break
		}
	}
	return hooks
}
