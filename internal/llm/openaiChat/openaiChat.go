package openaiChat

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
	"github.com/akolanti/PdfSummaryAPI/internal/llm"
	"github.com/akolanti/PdfSummaryAPI/pkg/logger_i"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// chatClient talks to any OpenAI compatible chat completion endpoint. Groq is the same client with another base URL.
type chatClient struct {
	client openai.Client
	name   commonModels.ProviderName
	logger *logger_i.Logger
}

func NewOpenAI(apiKey string, httpClient *http.Client) llm.Provider {
	return newChatClient(commonModels.ProviderOpenAI, apiKey, "", httpClient)
}

func NewGroq(apiKey string, baseURL string, httpClient *http.Client) llm.Provider {
	return newChatClient(commonModels.ProviderGroq, apiKey, baseURL, httpClient)
}

func newChatClient(name commonModels.ProviderName, apiKey string, baseURL string, httpClient *http.Client) *chatClient {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	return &chatClient{
		client: openai.NewClient(opts...),
		name:   name,
		logger: logger_i.NewLogger("llm_" + string(name)),
	}
}

func (c *chatClient) Complete(ctx context.Context, req commonModels.LLMRequest) (string, error) {
	log := c.logger.FromContext(ctx)

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.SystemMessage != "" {
		messages = append(messages, openai.SystemMessage(req.SystemMessage))
	}
	messages = append(messages, openai.UserMessage(req.UserMessage))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.ModelID),
		Messages: messages,
	})
	if err != nil {
		return "", normalizeError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s returned no choices", c.name)
	}

	log.Debug("chat completion", "model", resp.Model,
		"prompt_tokens", resp.Usage.PromptTokens, "completion_tokens", resp.Usage.CompletionTokens)
	return resp.Choices[0].Message.Content, nil
}

// normalizeError prefixes the shared marker when the status or error code identifies one.
func normalizeError(err error) error {
	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return err
	}
	if marker := llm.MarkerFor(apiErr.StatusCode, apiErr.Code); marker != "" {
		return fmt.Errorf("%s: %w", marker, err)
	}
	return err
}
