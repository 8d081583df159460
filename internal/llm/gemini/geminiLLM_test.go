package gemini

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/akolanti/PdfSummaryAPI/internal/llm"
	"google.golang.org/genai"
)

func TestNormalizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"quota", genai.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED", Message: "quota"}, llm.MarkerRateLimit},
		{"bad key", genai.APIError{Code: 400, Status: "UNAUTHENTICATED", Message: "API key not valid"}, llm.MarkerAuth},
		{"denied", genai.APIError{Code: 403, Status: "PERMISSION_DENIED"}, llm.MarkerAuth},
		{"model", genai.APIError{Code: 404, Status: "NOT_FOUND", Message: "models/x is not found"}, llm.MarkerModelNotFound},
		{"wrapped", fmt.Errorf("call: %w", genai.APIError{Code: 429}), llm.MarkerRateLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeError(tt.err)
			if !strings.HasPrefix(got.Error(), tt.want) {
				t.Errorf("got %q, want prefix %q", got.Error(), tt.want)
			}
			var apiErr genai.APIError
			if !errors.As(got, &apiErr) {
				t.Error("normalized error should wrap the original")
			}
		})
	}
}

func TestNormalizeError_Passthrough(t *testing.T) {
	plain := errors.New("connection reset")
	if got := normalizeError(plain); got != plain {
		t.Errorf("non API errors should pass through, got %v", got)
	}

	internal := genai.APIError{Code: 500, Status: "INTERNAL"}
	if got := normalizeError(internal); strings.HasPrefix(got.Error(), llm.MarkerRateLimit) {
		t.Errorf("internal errors should not get a marker, got %v", got)
	}
}
