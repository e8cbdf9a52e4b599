package entity

import (
	"strings"
	"time"
	"unicode"
)

// HookParams are the four inputs every generation needs
type HookParams struct {
	Product  string
	Audience string
	Tone     string
	Platform string
}

// Normalize trims surrounding whitespace from every field
func (p HookParams) Normalize() HookParams {
	return HookParams{
		Product:  strings.TrimSpace(p.Product),
		Audience: strings.TrimSpace(p.Audience),
		Tone:     strings.TrimSpace(p.Tone),
		Platform: strings.TrimSpace(p.Platform),
	}
}

// MissingFields returns the JSON names of empty fields in request order
func (p HookParams) MissingFields() []string {
	var missing []string
	n := p.Normalize()
	if n.Product == "" {
		missing = append(missing, "product")
	}
	if n.Audience == "" {
		missing = append(missing, "audience")
	}
	if n.Tone == "" {
		missing = append(missing, "tone")
	}
	if n.Platform == "" {
		missing = append(missing, "platform")
	}
	return missing
}

// Hashtags derives the tag set shown with every variant. Tokens are bare; clients add the '#'.
func (p HookParams) Hashtags() []string {
	return []string{
		hashtagToken(p.Product),
		hashtagToken(p.Platform),
		hashtagToken(p.Tone),
	}
}

func hashtagToken(s string) string {
	return strings.ToLower(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s))
}

// HookVariant is one generated piece of copy as returned to the caller
type HookVariant struct {
	ID       string
	Content  string
	Hashtags []string
}

// GeneratedHook is the immutable log record of one variant
type GeneratedHook struct {
	ID             string
	UserID         string
	Product        string
	Audience       string
	Tone           string
	Platform       string
	Content        string
	OriginalHookID string // empty unless the hook continues another one
	CreatedAt      time.Time
}

// Params returns the generation parameters the hook was created with
func (h *GeneratedHook) Params() HookParams {
	return HookParams{Product: h.Product, Audience: h.Audience, Tone: h.Tone, Platform: h.Platform}
}

// IsContinuation reports whether the hook was produced by continuing another hook
func (h *GeneratedHook) IsContinuation() bool {
	return h.OriginalHookID != ""
}

// ContinuationRequest asks the generator to extend an existing hook
type ContinuationRequest struct {
	PreviousHook   string
	OriginalHookID string
	Context        HookParams
	UserPrompt     string
}

// GenerationResult is what a metered generation hands back
type GenerationResult struct {
	Params   HookParams
	Variants []HookVariant
	Balance  int64
	// Charged is false when the variants were delivered but the spend could not be applied
	Charged bool
}
