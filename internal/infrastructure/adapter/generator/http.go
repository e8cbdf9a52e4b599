package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	errs "github.com/amirhossein-jamali/adspark/internal/domain/error"
	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/gateway"
)

// ProviderHTTP is a remote hook service speaking the generate-hook/continue-hook protocol
const ProviderHTTP = "http"

// maxErrorBody caps how much of an error response is kept for the log
const maxErrorBody = 4 << 10

type hookRequest struct {
	Product  string `json:"product"`
	Audience string `json:"audience"`
	Tone     string `json:"tone"`
	Platform string `json:"platform"`
}

type hookResponse struct {
	Hooks []string `json:"hooks"`
}

type continueContext struct {
	hookRequest
	UserPrompt string `json:"userPrompt,omitempty"`
}

type continueRequest struct {
	PreviousHook string          `json:"previousHook"`
	Context      continueContext `json:"context"`
}

type continueResponse struct {
	ContinuedHook string `json:"continuedHook"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
	Message string `json:"message"`
}

// HTTPGenerator calls a remote hook service
type HTTPGenerator struct {
	endpoint string
	client   *http.Client
	logger   coreport.Logger
}

// NewHTTPGenerator creates a client for the service at endpoint. Deadlines come from the
// request context.
func NewHTTPGenerator(endpoint string, client *http.Client, logger coreport.Logger) *HTTPGenerator {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPGenerator{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   client,
		logger:   logger,
	}
}

var _ gateway.HookGenerator = (*HTTPGenerator)(nil)

func (g *HTTPGenerator) Name() string { return ProviderHTTP }

func (g *HTTPGenerator) Generate(ctx context.Context, p entity.HookParams) ([]string, error) {
	var resp hookResponse
	body := hookRequest{Product: p.Product, Audience: p.Audience, Tone: p.Tone, Platform: p.Platform}
	if err := postJSON(ctx, g.client, ProviderHTTP, g.endpoint+"/generate-hook", nil, body, &resp); err != nil {
		return nil, err
	}
	if resp.Hooks == nil {
		return nil, errs.NewGenerationError(ProviderHTTP, 0, "response carries no hooks array", nil)
	}

	g.logger.Debug("Hooks received", map[string]any{"count": len(resp.Hooks)})
	return resp.Hooks, nil
}

func (g *HTTPGenerator) Continue(ctx context.Context, req entity.ContinuationRequest) (string, error) {
	var resp continueResponse
	body := continueRequest{
		PreviousHook: req.PreviousHook,
		Context: continueContext{
			hookRequest: hookRequest{
				Product:  req.Context.Product,
				Audience: req.Context.Audience,
				Tone:     req.Context.Tone,
				Platform: req.Context.Platform,
			},
			UserPrompt: req.UserPrompt,
		},
	}
	if err := postJSON(ctx, g.client, ProviderHTTP, g.endpoint+"/continue-hook", nil, body, &resp); err != nil {
		return "", err
	}
	if strings.TrimSpace(resp.ContinuedHook) == "" {
		return "", errs.NewGenerationError(ProviderHTTP, 0, "response carries no continued hook", nil)
	}
	return resp.ContinuedHook, nil
}

// postJSON sends body and decodes a 2xx answer into out. Every failure comes back as a
// GenerationError; deadline expiry keeps ErrGenerationTimeout as its cause.
func postJSON(ctx context.Context, client *http.Client, provider, url string, header http.Header, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errs.NewGenerationError(provider, 0, "encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errs.NewGenerationError(provider, 0, "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return errs.NewGenerationError(provider, 0, "", errs.ErrGenerationTimeout)
		}
		return errs.NewGenerationError(provider, 0, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return errs.NewGenerationError(provider, resp.StatusCode, errorDetail(raw), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.NewGenerationError(provider, resp.StatusCode, "malformed response", err)
	}
	return nil
}

// errorDetail pulls the most specific message out of an error body
func errorDetail(raw []byte) string {
	var e errorResponse
	if json.Unmarshal(raw, &e) == nil {
		for _, s := range []string{e.Details, e.Message, e.Error} {
			if s != "" {
				return s
			}
		}
	}
	return strings.TrimSpace(string(raw))
}
