package generator

import (
	"context"
	"fmt"
	"net/http"

	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/config"
)

// New builds the generator named by cfg.Provider
func New(cfg config.GeneratorConfig, logger coreport.Logger) (gateway.HookGenerator, error) {
	client := &http.Client{Transport: http.DefaultTransport}

	switch cfg.Provider {
	case "", ProviderTemplate:
		return NewTemplateGenerator(), nil
	case ProviderHTTP:
		if cfg.Endpoint == "" {
			return nil, fmt.Errorf("generator endpoint is required for provider %q", cfg.Provider)
		}
		return NewHTTPGenerator(cfg.Endpoint, client, logger), nil
	case ProviderGemini:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("generator apiKey is required for provider %q", cfg.Provider)
		}
		return NewGeminiGenerator(context.Background(), cfg.Endpoint, cfg.Model, cfg.APIKey, cfg.Variants, client, logger)
	default:
		return nil, fmt.Errorf("unsupported generator provider: %s", cfg.Provider)
	}
}
