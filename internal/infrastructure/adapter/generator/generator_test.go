package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	errs "github.com/amirhossein-jamali/adspark/internal/domain/error"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/config"
)

var params = entity.HookParams{Product: "Coffee", Audience: "students", Tone: "playful", Platform: "Instagram"}

func TestTemplateGenerator(t *testing.T) {
	g := NewTemplateGenerator()

	hooks, err := g.Generate(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, hooks, 4)
	assert.Equal(t, "Unlock your Coffee potential with students-focused strategies!", hooks[0])
	assert.Equal(t, "playful approach to Coffee: Breakthrough strategies for students", hooks[2])

	continued, err := g.Continue(context.Background(), entity.ContinuationRequest{PreviousHook: "Wake up.", UserPrompt: "mention finals"})
	require.NoError(t, err)
	assert.Equal(t, "Wake up. Enhanced with: mention finals", continued)

	plain, err := g.Continue(context.Background(), entity.ContinuationRequest{PreviousHook: "Wake up. "})
	require.NoError(t, err)
	assert.Equal(t, "Wake up.", plain)
}

func TestHTTPGenerator_Generate(t *testing.T) {
	t.Run("returns the hooks array", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/generate-hook", r.URL.Path)
			var body hookRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Coffee", body.Product)
			_, _ = w.Write([]byte(`{"hooks":["one","two"]}`))
		}))
		defer srv.Close()

		hooks, err := NewHTTPGenerator(srv.URL+"/", srv.Client(), logger.NewNoopLogger()).Generate(context.Background(), params)

		require.NoError(t, err)
		assert.Equal(t, []string{"one", "two"}, hooks)
	})

	t.Run("maps upstream errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":"Hook Generation Failed","details":"model overloaded"}`))
		}))
		defer srv.Close()

		_, err := NewHTTPGenerator(srv.URL, srv.Client(), logger.NewNoopLogger()).Generate(context.Background(), params)

		var genErr *errs.GenerationError
		require.ErrorAs(t, err, &genErr)
		assert.Equal(t, http.StatusServiceUnavailable, genErr.StatusCode)
		assert.Equal(t, "model overloaded", genErr.Detail)
	})

	t.Run("rejects bodies without hooks", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"metadata":{}}`))
		}))
		defer srv.Close()

		_, err := NewHTTPGenerator(srv.URL, srv.Client(), logger.NewNoopLogger()).Generate(context.Background(), params)

		assert.ErrorIs(t, err, errs.ErrGeneration)
	})

	t.Run("reports deadline expiry as a timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer srv.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		_, err := NewHTTPGenerator(srv.URL, srv.Client(), logger.NewNoopLogger()).Generate(ctx, params)

		assert.ErrorIs(t, err, errs.ErrGenerationTimeout)
		assert.ErrorIs(t, err, errs.ErrGeneration)
	})
}

func TestHTTPGenerator_Continue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/continue-hook", r.URL.Path)
		var body continueRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Wake up.", body.PreviousHook)
		assert.Equal(t, "mention finals", body.Context.UserPrompt)
		assert.Equal(t, "Instagram", body.Context.Platform)
		_, _ = w.Write([]byte(`{"continuedHook":"Wake up. Finals are coming."}`))
	}))
	defer srv.Close()

	out, err := NewHTTPGenerator(srv.URL, srv.Client(), logger.NewNoopLogger()).Continue(context.Background(), entity.ContinuationRequest{
		PreviousHook: "Wake up.",
		Context:      params,
		UserPrompt:   "mention finals",
	})

	require.NoError(t, err)
	assert.Equal(t, "Wake up. Finals are coming.", out)
}

type geminiRequestBody struct {
	Contents []struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	GenerationConfig struct {
		Temperature     float64 `json:"temperature"`
		MaxOutputTokens int     `json:"maxOutputTokens"`
	} `json:"generationConfig"`
}

func newGeminiServer(t *testing.T, handler http.HandlerFunc) (*GeminiGenerator, func()) {
	t.Helper()
	srv := httptest.NewServer(handler)
	g, err := NewGeminiGenerator(context.Background(), srv.URL, "gemini-test", "secret", 3, srv.Client(), logger.NewNoopLogger())
	require.NoError(t, err)
	return g, srv.Close
}

func TestGeminiGenerator(t *testing.T) {
	g, closeFn := newGeminiServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-Goog-Api-Key"))
		var body geminiRequestBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.NotEmpty(t, body.Contents)
		assert.Contains(t, body.Contents[0].Parts[0].Text, "Product: Coffee")
		assert.InDelta(t, 0.8, body.GenerationConfig.Temperature, 0.001)
		assert.Equal(t, 300, body.GenerationConfig.MaxOutputTokens)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"1. Brew better days\n\n2. \"Sip, study, succeed\"\n3. Coffee that keeps up\n4. One too many"}]}}]}`))
	})
	defer closeFn()

	hooks, err := g.Generate(context.Background(), params)

	require.NoError(t, err)
	assert.Equal(t, []string{"Brew better days", "Sip, study, succeed", "Coffee that keeps up"}, hooks)
}

func TestGeminiGenerator_NoCandidates(t *testing.T) {
	g, closeFn := newGeminiServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})
	defer closeFn()

	_, err := g.Continue(context.Background(), entity.ContinuationRequest{PreviousHook: "x", Context: params})

	assert.ErrorIs(t, err, errs.ErrGeneration)
}

func TestGeminiGenerator_APIError(t *testing.T) {
	g, closeFn := newGeminiServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	})
	defer closeFn()

	_, err := g.Generate(context.Background(), params)

	var genErr *errs.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, http.StatusBadRequest, genErr.StatusCode)
	assert.Equal(t, "API key not valid", genErr.Detail)
}

func TestParseHookLines(t *testing.T) {
	long := make([]byte, maxHookLength+1)
	for i := range long {
		long[i] = 'a'
	}
	text := "- first\n* second\n" + string(long) + "\n3) third"

	assert.Equal(t, []string{"first", "second", "third"}, parseHookLines(text, 5))
	assert.Equal(t, []string{"first"}, parseHookLines(text, 1))
}

func TestNew(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      config.GeneratorConfig
		provider string
		wantErr  bool
	}{
		{"default", config.GeneratorConfig{}, ProviderTemplate, false},
		{"http", config.GeneratorConfig{Provider: "http", Endpoint: "http://hooks"}, ProviderHTTP, false},
		{"http without endpoint", config.GeneratorConfig{Provider: "http"}, "", true},
		{"gemini", config.GeneratorConfig{Provider: "gemini", APIKey: "k"}, ProviderGemini, false},
		{"gemini without key", config.GeneratorConfig{Provider: "gemini"}, "", true},
		{"unknown", config.GeneratorConfig{Provider: "gpt"}, "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := New(tc.cfg, logger.NewNoopLogger())
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.provider, g.Name())
		})
	}
}
