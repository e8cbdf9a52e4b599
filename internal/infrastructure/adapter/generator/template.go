package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/gateway"
)

// ProviderTemplate is the offline generator used in development and tests
const ProviderTemplate = "template"

// TemplateGenerator fills fixed hook templates with the request parameters
type TemplateGenerator struct{}

func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

var _ gateway.HookGenerator = (*TemplateGenerator)(nil)

func (g *TemplateGenerator) Name() string { return ProviderTemplate }

func (g *TemplateGenerator) Generate(ctx context.Context, p entity.HookParams) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []string{
		fmt.Sprintf("Unlock your %s potential with %s-focused strategies!", p.Product, p.Audience),
		fmt.Sprintf("Transform your %s game: %s insights that matter", p.Platform, p.Product),
		fmt.Sprintf("%s approach to %s: Breakthrough strategies for %s", p.Tone, p.Product, p.Audience),
		fmt.Sprintf("Elevate your %s presence with smart %s tactics", p.Platform, p.Product),
	}, nil
}

// Continue appends the user prompt to the previous hook
func (g *TemplateGenerator) Continue(ctx context.Context, req entity.ContinuationRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if req.UserPrompt == "" {
		return strings.TrimSpace(req.PreviousHook), nil
	}
	return fmt.Sprintf("%s Enhanced with: %s", strings.TrimSpace(req.PreviousHook), req.UserPrompt), nil
}
