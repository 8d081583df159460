package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/akolanti/PdfSummaryAPI/internal/config"
	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
)

type MockProvider struct {
	OnComplete func(ctx context.Context, req commonModels.LLMRequest) (string, error)
	calls      int
}

func (m *MockProvider) Complete(ctx context.Context, req commonModels.LLMRequest) (string, error) {
	m.calls++
	if m.OnComplete != nil {
		return m.OnComplete(ctx, req)
	}
	return "mocked llm response", nil
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"fenced json", "```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"only leading fence", "```json\n{\"a\":1}", "{\"a\":1}"},
		{"only trailing fence", "{\"a\":1}\n```", "{\"a\":1}"},
		{"unfenced keeps whitespace", "  plain answer \n", "  plain answer \n"},
		{"plain fence is not a json fence", "```\ncode\n```", "```\ncode"},
		{"only one fence removed each side", "```json```json x``````", "```json x```"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFence(tt.in); got != tt.want {
				t.Errorf("StripCodeFence(%q) = %q; want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestClassifyProviderError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want commonModels.ErrorKind
	}{
		{"rate limit", errors.New("429: rate_limit_exceeded on tokens"), commonModels.RateLimited},
		{"auth", errors.New("authentication_error: invalid key"), commonModels.AuthFailed},
		{"unknown model", errors.New("model_not_found"), commonModels.UnknownModel},
		{"rate limit wins over auth", errors.New("authentication_error rate_limit_exceeded"), commonModels.RateLimited},
		{"auth wins over model", errors.New("model_not_found authentication_error"), commonModels.AuthFailed},
		{"anything else", errors.New("502 bad gateway"), commonModels.ProviderError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyProviderError(commonModels.ProviderOpenAI, "gpt-4o", tt.err)
			if got.Kind != tt.want {
				t.Errorf("kind got %v, want %v", got.Kind, tt.want)
			}
			if !errors.Is(got, tt.err) {
				t.Error("classified error should wrap the provider error")
			}
		})
	}

	unknown := ClassifyProviderError(commonModels.ProviderOpenAI, "gpt-9", errors.New("model_not_found"))
	if !strings.Contains(unknown.Message, "gpt-9") {
		t.Errorf("unknown model message should name the model, got %q", unknown.Message)
	}
}

func TestMarkerFor(t *testing.T) {
	tests := []struct {
		status int
		code   string
		want   string
	}{
		{http.StatusTooManyRequests, "", MarkerRateLimit},
		{http.StatusBadRequest, "rate_limit_exceeded", MarkerRateLimit},
		{http.StatusUnauthorized, "", MarkerAuth},
		{http.StatusUnauthorized, "invalid_api_key", MarkerAuth},
		{http.StatusNotFound, "model_not_found", MarkerModelNotFound},
		{http.StatusInternalServerError, "server_error", ""},
	}
	for _, tt := range tests {
		if got := MarkerFor(tt.status, tt.code); got != tt.want {
			t.Errorf("MarkerFor(%d, %q) = %q; want %q", tt.status, tt.code, got, tt.want)
		}
	}
}

func TestGateway_Complete(t *testing.T) {
	settings := &config.Settings{OpenAIAPIKey: "sk-test", GroqAPIKey: ""}

	tests := []struct {
		name      string
		provider  commonModels.ProviderName
		reply     string
		err       error
		want      string
		wantKind  commonModels.ErrorKind
		wantCalls int
	}{
		{
			name:      "success strips fence",
			provider:  commonModels.ProviderOpenAI,
			reply:     "```json\n{\"ok\":true}\n```",
			want:      "{\"ok\":true}",
			wantCalls: 1,
		},
		{
			name:      "missing key never calls the provider",
			provider:  commonModels.ProviderGroq,
			wantKind:  commonModels.MissingCredentials,
			wantCalls: 0,
		},
		{
			name:      "provider failure is classified",
			provider:  commonModels.ProviderOpenAI,
			err:       errors.New("rate_limit_exceeded"),
			wantKind:  commonModels.RateLimited,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockProvider{OnComplete: func(ctx context.Context, req commonModels.LLMRequest) (string, error) {
				if ctx.Value(config.TRACE_ID_KEY) != "trace-1" {
					t.Error("provider call should run on the request context")
				}
				return tt.reply, tt.err
			}}
			g := NewGateway(settings, map[commonModels.ProviderName]Provider{
				commonModels.ProviderOpenAI: mock,
				commonModels.ProviderGroq:   mock,
			})

			ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "trace-1")
			got, err := g.Complete(ctx, tt.provider, commonModels.LLMRequest{ModelID: "m"})
			if tt.wantKind != "" {
				if k := commonModels.KindOf(err); k != tt.wantKind {
					t.Errorf("kind got %v, want %v (err=%v)", k, tt.wantKind, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if got != tt.want {
				t.Errorf("text got %q, want %q", got, tt.want)
			}
			if mock.calls != tt.wantCalls {
				t.Errorf("provider calls got %d, want %d", mock.calls, tt.wantCalls)
			}
		})
	}
}
