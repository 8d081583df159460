package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
	"github.com/akolanti/PdfSummaryAPI/internal/llm"
	"github.com/akolanti/PdfSummaryAPI/pkg/logger_i"
	"google.golang.org/genai"
)

// llmClient builds the genai client on first use, so a missing key only fails the gemini endpoints.
type llmClient struct {
	apiKey     string
	httpClient *http.Client

	once    sync.Once
	client  *genai.Client
	initErr error
	logger  *logger_i.Logger
}

func NewProvider(apiKey string, httpClient *http.Client) llm.Provider {
	return &llmClient{
		apiKey:     apiKey,
		httpClient: httpClient,
		logger:     logger_i.NewLogger("llm_gemini"),
	}
}

func (c *llmClient) getClient(ctx context.Context) (*genai.Client, error) {
	c.once.Do(func() {
		cfg := &genai.ClientConfig{
			APIKey:     c.apiKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: c.httpClient,
		}
		c.client, c.initErr = genai.NewClient(ctx, cfg)
		if c.initErr != nil {
			c.logger.Error("Error creating Gemini client:", "error", c.initErr)
			return
		}
		c.logger.Info("Gemini client created")
	})
	return c.client, c.initErr
}

func (c *llmClient) Complete(ctx context.Context, req commonModels.LLMRequest) (string, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return "", fmt.Errorf("gemini client: %w", err)
	}

	contentConfig := &genai.GenerateContentConfig{}
	if req.SystemMessage != "" {
		contentConfig.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemMessage}},
		}
	}

	result, err := client.Models.GenerateContent(ctx, req.ModelID, genai.Text(req.UserMessage), contentConfig)
	if err != nil {
		return "", normalizeError(err)
	}
	if result == nil {
		return "", errors.New("gemini returned an empty response")
	}
	return result.Text(), nil
}

// normalizeError maps gRPC style statuses onto the shared markers.
func normalizeError(err error) error {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		var apiErrPtr *genai.APIError
		if !errors.As(err, &apiErrPtr) || apiErrPtr == nil {
			return err
		}
		apiErr = *apiErrPtr
	}

	if marker := markerForStatus(apiErr.Code, apiErr.Status); marker != "" {
		return fmt.Errorf("%s: %w", marker, err)
	}
	return err
}

func markerForStatus(code int, status string) string {
	switch status {
	case "RESOURCE_EXHAUSTED":
		return llm.MarkerRateLimit
	case "UNAUTHENTICATED", "PERMISSION_DENIED":
		return llm.MarkerAuth
	case "NOT_FOUND":
		return llm.MarkerModelNotFound
	}
	return llm.MarkerFor(code, "")
}
