package pipeline_test

import (
	"context"

	"github.com/akolanti/PdfSummaryAPI/internal/config"
	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
	"github.com/akolanti/PdfSummaryAPI/internal/domain/pipelineModel"
)

// MockExtractor implements extraction.Extractor
type MockExtractor struct {
	OnExtract func(ctx context.Context, path string) (commonModels.ExtractedText, error)
	strategy  pipelineModel.Strategy
	Calls     int
}

func (m *MockExtractor) Extract(ctx context.Context, path string) (commonModels.ExtractedText, error) {
	m.Calls++
	if m.OnExtract != nil {
		return m.OnExtract(ctx, path)
	}
	return commonModels.NewExtractedText("default extracted text"), nil
}

func (m *MockExtractor) Strategy() pipelineModel.Strategy {
	if m.strategy == "" {
		return pipelineModel.StrategyTextLayer
	}
	return m.strategy
}

func (m *MockExtractor) Extensions() []string { return []string{config.PdfExtension} }

// MockGateway implements llm.Gateway
type MockGateway struct {
	OnComplete func(ctx context.Context, provider commonModels.ProviderName, req commonModels.LLMRequest) (string, error)
	Calls      int
	LastReq    commonModels.LLMRequest
}

func (m *MockGateway) Complete(ctx context.Context, provider commonModels.ProviderName, req commonModels.LLMRequest) (string, error) {
	m.Calls++
	m.LastReq = req
	if m.OnComplete != nil {
		return m.OnComplete(ctx, provider, req)
	}
	return "mocked llm response", nil
}
