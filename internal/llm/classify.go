package llm

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
)

// Markers every provider error is normalized to before classification.
const (
	MarkerRateLimit     = "rate_limit_exceeded"
	MarkerAuth          = "authentication_error"
	MarkerModelNotFound = "model_not_found"
)

// ClassifyProviderError maps a provider failure onto the error taxonomy by looking for the markers in its text.
// Rate limiting wins over authentication, which wins over unknown models.
func ClassifyProviderError(provider commonModels.ProviderName, model string, err error) *commonModels.PipelineError {
	text := err.Error()
	switch {
	case strings.Contains(text, MarkerRateLimit):
		return commonModels.WrapError(commonModels.RateLimited,
			"the request exceeded the provider's tokens per minute limit; reduce the message size and try again", err)
	case strings.Contains(text, MarkerAuth):
		return commonModels.WrapError(commonModels.AuthFailed,
			fmt.Sprintf("authentication with the %s API failed; check the API key", provider), err)
	case strings.Contains(text, MarkerModelNotFound):
		return commonModels.WrapError(commonModels.UnknownModel,
			fmt.Sprintf("the model '%s' was not found or you do not have access to it", model), err)
	default:
		return commonModels.WrapError(commonModels.ProviderError,
			fmt.Sprintf("error calling the %s API", provider), err)
	}
}

// MarkerFor translates an HTTP status and provider error code into one of the markers, or "" when none applies.
func MarkerFor(status int, code string) string {
	switch {
	case status == http.StatusTooManyRequests || code == MarkerRateLimit:
		return MarkerRateLimit
	case status == http.StatusUnauthorized || code == MarkerAuth || code == "invalid_api_key":
		return MarkerAuth
	case code == MarkerModelNotFound:
		return MarkerModelNotFound
	}
	return ""
}

// StripCodeFence removes at most one leading "```json" and one trailing "```".
// Content is trimmed only when a fence was actually removed.
func StripCodeFence(s string) string {
	out, stripped := s, false
	if strings.HasPrefix(out, "```json") {
		out = out[len("```json"):]
		stripped = true
	}
	if strings.HasSuffix(out, "```") {
		out = out[:len(out)-len("```")]
		stripped = true
	}
	if !stripped {
		return s
	}
	return strings.TrimSpace(out)
}
