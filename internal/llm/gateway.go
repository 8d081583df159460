package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/akolanti/PdfSummaryAPI/internal/config"
	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
	"github.com/akolanti/PdfSummaryAPI/internal/metrics"
	"github.com/akolanti/PdfSummaryAPI/pkg/logger_i"
)

type Gateway interface {
	Complete(ctx context.Context, provider commonModels.ProviderName, req commonModels.LLMRequest) (string, error)
}

type gateway struct {
	settings  *config.Settings
	providers map[commonModels.ProviderName]Provider
	logger    *logger_i.Logger
}

func NewGateway(settings *config.Settings, providers map[commonModels.ProviderName]Provider) Gateway {
	return &gateway{
		settings:  settings,
		providers: providers,
		logger:    logger_i.NewLogger("llm_gateway"),
	}
}

func (g *gateway) Complete(ctx context.Context, provider commonModels.ProviderName, req commonModels.LLMRequest) (string, error) {
	log := g.logger.FromContext(ctx).With("provider", provider, "model", req.ModelID)

	if key, envName := g.credential(provider); key == "" {
		log.Error("missing provider credential", "env", envName)
		return "", commonModels.NewError(commonModels.MissingCredentials,
			fmt.Sprintf("the API key '%s' was not found; check the environment", envName))
	}

	p, ok := g.providers[provider]
	if !ok || p == nil {
		return "", fmt.Errorf("no client registered for provider %s", provider)
	}

	// the deadline lives on the pooled http.Client each provider SDK is built with
	start := time.Now()
	text, err := p.Complete(ctx, req)
	metrics.CaptureExecutionMetrics("llm_"+string(provider), time.Since(start))
	if err != nil {
		classified := ClassifyProviderError(provider, req.ModelID, err)
		metrics.IncrementLLMFailure(string(provider), string(classified.Kind))
		log.Error("provider call failed", "kind", classified.Kind, "error", err)
		return "", classified
	}

	log.Debug("provider call ok", "duration", time.Since(start), "chars", len(text))
	return StripCodeFence(text), nil
}

func (g *gateway) credential(provider commonModels.ProviderName) (key string, envName string) {
	switch provider {
	case commonModels.ProviderOpenAI:
		return g.settings.OpenAIAPIKey, "OPENAI_API_KEY"
	case commonModels.ProviderGroq:
		return g.settings.GroqAPIKey, "GROQ_API_KEY"
	case commonModels.ProviderGemini:
		return g.settings.GeminiAPIKey, "GEMINI_API_KEY"
	}
	return "", string(provider)
}
