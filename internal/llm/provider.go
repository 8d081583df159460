package llm

import (
	"context"

	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
)

// Provider sends one system + user exchange to a chat completion API and returns the raw reply.
// Errors come back unclassified; providers only normalize their own signals to the shared markers.
type Provider interface {
	Complete(ctx context.Context, req commonModels.LLMRequest) (string, error)
}
