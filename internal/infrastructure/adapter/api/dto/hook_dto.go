package dto

import (
	"time"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
)

// HookParams carries the four generation inputs
type HookParams struct {
	Product  string `json:"product"`
	Audience string `json:"audience"`
	Tone     string `json:"tone"`
	Platform string `json:"platform"`
}

// ToEntity converts the request body into domain params
func (p HookParams) ToEntity() entity.HookParams {
	return entity.HookParams{Product: p.Product, Audience: p.Audience, Tone: p.Tone, Platform: p.Platform}
}

// HookParamsFrom echoes domain params back as response metadata
func HookParamsFrom(p entity.HookParams) HookParams {
	return HookParams{Product: p.Product, Audience: p.Audience, Tone: p.Tone, Platform: p.Platform}
}

// GenerateHookResponse is the proxy route answer
type GenerateHookResponse struct {
	Hooks    []string   `json:"hooks"`
	Metadata HookParams `json:"metadata"`
}

// ContinueContext is the context object of a continuation
type ContinueContext struct {
	HookParams
	UserPrompt string `json:"userPrompt,omitempty"`
}

// ContinueHookRequest is the proxy continuation body; Context is required
type ContinueHookRequest struct {
	PreviousHook string           `json:"previousHook"`
	Context      *ContinueContext `json:"context"`
}

type ContinueHookResponse struct {
	ContinuedHook string           `json:"continuedHook"`
	Metadata      *ContinueContext `json:"metadata"`
}

// ContinueRequest is the metered continuation body. OriginalHookID may replace PreviousHook
// and Context, which are then loaded from the stored hook.
type ContinueRequest struct {
	PreviousHook   string     `json:"previousHook"`
	OriginalHookID string     `json:"originalHookId"`
	Context        HookParams `json:"context"`
	UserPrompt     string     `json:"userPrompt"`
}

// ToEntity converts the request body into a continuation request
func (r ContinueRequest) ToEntity() entity.ContinuationRequest {
	return entity.ContinuationRequest{
		PreviousHook:   r.PreviousHook,
		OriginalHookID: r.OriginalHookID,
		Context:        r.Context.ToEntity(),
		UserPrompt:     r.UserPrompt,
	}
}

type HookVariant struct {
	ID       string   `json:"id"`
	Content  string   `json:"content"`
	Hashtags []string `json:"hashtags"`
}

// GenerationResponse answers a metered generation or continuation
type GenerationResponse struct {
	Hooks    []HookVariant `json:"hooks"`
	Metadata HookParams    `json:"metadata"`
	Tokens   int64         `json:"tokens"`
	Charged  bool          `json:"charged"`
}

// GenerationResponseFrom converts a generation result into its response body
func GenerationResponseFrom(r *entity.GenerationResult) GenerationResponse {
	hooks := make([]HookVariant, 0, len(r.Variants))
	for _, v := range r.Variants {
		hooks = append(hooks, HookVariant{ID: v.ID, Content: v.Content, Hashtags: v.Hashtags})
	}
	return GenerationResponse{
		Hooks:    hooks,
		Metadata: HookParamsFrom(r.Params),
		Tokens:   r.Balance,
		Charged:  r.Charged,
	}
}

// HookRecord is a generated hook in the history view
type HookRecord struct {
	ID             string    `json:"id"`
	Content        string    `json:"content"`
	Product        string    `json:"product"`
	Audience       string    `json:"audience"`
	Tone           string    `json:"tone"`
	Platform       string    `json:"platform"`
	OriginalHookID string    `json:"originalHookId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// HookRecordsFrom converts stored hooks for the history endpoint
func HookRecordsFrom(hooks []*entity.GeneratedHook) []HookRecord {
	out := make([]HookRecord, 0, len(hooks))
	for _, h := range hooks {
		out = append(out, HookRecord{
			ID:             h.ID,
			Content:        h.Content,
			Product:        h.Product,
			Audience:       h.Audience,
			Tone:           h.Tone,
			Platform:       h.Platform,
			OriginalHookID: h.OriginalHookID,
			CreatedAt:      h.CreatedAt,
		})
	}
	return out
}

type SearchRecord struct {
	ID        string    `json:"id"`
	Product   string    `json:"product"`
	Audience  string    `json:"audience"`
	Tone      string    `json:"tone"`
	Platform  string    `json:"platform"`
	CreatedAt time.Time `json:"createdAt"`
}

// SearchRecordsFrom converts stored searches for the history endpoint
func SearchRecordsFrom(searches []*entity.SearchRecord) []SearchRecord {
	out := make([]SearchRecord, 0, len(searches))
	for _, s := range searches {
		out = append(out, SearchRecord{
			ID:        s.ID,
			Product:   s.Product,
			Audience:  s.Audience,
			Tone:      s.Tone,
			Platform:  s.Platform,
			CreatedAt: s.CreatedAt,
		})
	}
	return out
}
