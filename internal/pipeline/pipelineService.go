package pipeline

import (
	"context"
	"time"

	"github.com/akolanti/PdfSummaryAPI/internal/config"
	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
	"github.com/akolanti/PdfSummaryAPI/internal/domain/pipelineModel"
	"github.com/akolanti/PdfSummaryAPI/internal/extraction"
	"github.com/akolanti/PdfSummaryAPI/internal/llm"
	"github.com/akolanti/PdfSummaryAPI/pkg/logger_i"
)

// Service is all the handlers and MCP tools see. Each call is one strictly sequential request:
// validate path, extract, and for summaries build the prompt and call the gateway.
type Service interface {
	ConvertText(ctx context.Context, strategy pipelineModel.Strategy, path string) (string, error)
	Summarize(ctx context.Context, summary pipelineModel.Summarization, path string) (string, error)
}

type service struct {
	extractors *extraction.Registry
	gateway    llm.Gateway
	logger     *logger_i.Logger
}

func NewService(extractors *extraction.Registry, gateway llm.Gateway) Service {
	return &service{
		extractors: extractors,
		gateway:    gateway,
		logger:     logger_i.NewLogger("pipeline"),
	}
}

func (s *service) ConvertText(ctx context.Context, strategy pipelineModel.Strategy, path string) (string, error) {
	run := newRun(ctx, path, strategy)
	log := s.logger.FromContext(ctx).With("strategy", strategy)
	defer func() { capturePipelineMetrics("convert_"+string(strategy), run) }()

	extractor, err := s.executeValidateStep(log, &run)
	if err != nil {
		return "", s.runError(log, &run, err)
	}

	text, err := s.executeExtractStep(ctx, log, &run, extractor)
	if err != nil {
		return "", s.runError(log, &run, err)
	}

	logState(&run, pipelineModel.Responded, log)
	return text.Content, nil
}

func (s *service) Summarize(ctx context.Context, summary pipelineModel.Summarization, path string) (string, error) {
	run := newRun(ctx, path, summary.Strategy)
	run.Provider = summary.Provider
	run.Model = summary.Model
	log := s.logger.FromContext(ctx).With("strategy", summary.Strategy, "provider", summary.Provider, "model", summary.Model)
	defer func() { capturePipelineMetrics("summarize_"+string(summary.Provider), run) }()

	extractor, err := s.executeValidateStep(log, &run)
	if err != nil {
		return "", s.runError(log, &run, err)
	}

	text, err := s.executeExtractStep(ctx, log, &run, extractor)
	if err != nil {
		return "", s.runError(log, &run, err)
	}
	if text.IsEmpty {
		return "", s.runError(log, &run, commonModels.NewError(commonModels.EmptyExtraction,
			"no text was extracted from the PDF; the file may be corrupt or image based"))
	}

	req := s.executePromptStep(log, &run, summary, text)

	answer, err := s.executeLLMStep(ctx, log, &run, req)
	if err != nil {
		return "", s.runError(log, &run, err)
	}

	logState(&run, pipelineModel.Responded, log)
	return answer, nil
}

func newRun(ctx context.Context, path string, strategy pipelineModel.Strategy) pipelineModel.Run {
	traceId, _ := ctx.Value(config.TRACE_ID_KEY).(string)
	return pipelineModel.Run{
		TraceId:   traceId,
		FilePath:  path,
		Strategy:  strategy,
		State:     pipelineModel.Received,
		StartTime: time.Now(),
	}
}
