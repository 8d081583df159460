package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
	"github.com/akolanti/PdfSummaryAPI/internal/domain/pipelineModel"
	"github.com/akolanti/PdfSummaryAPI/internal/extraction"
	"github.com/akolanti/PdfSummaryAPI/internal/metrics"
	"github.com/akolanti/PdfSummaryAPI/internal/prompt"
	"github.com/akolanti/PdfSummaryAPI/pkg/logger_i"
)

func logState(run *pipelineModel.Run, state pipelineModel.State, log *logger_i.Logger) {
	run.State = state
	log.Debug("pipeline", "Current State", run.State)
}

func (s *service) runError(log *logger_i.Logger, run *pipelineModel.Run, err error) error {
	failedIn := run.State
	run.ErrorKind = commonModels.KindOf(err)
	run.State = pipelineModel.Failed

	metrics.IncrementPipelineFailure(string(failedIn), string(run.ErrorKind))
	if commonModels.HTTPStatus(run.ErrorKind) >= 500 {
		log.Error("pipeline failed", "state", failedIn, "kind", run.ErrorKind, "error", err)
	} else {
		log.Warn("pipeline failed", "state", failedIn, "kind", run.ErrorKind, "error", err)
	}
	return err
}

func capturePipelineMetrics(endpoint string, run pipelineModel.Run) {
	status := string(run.State)
	if run.State == pipelineModel.Failed {
		status = string(run.ErrorKind)
	}
	metrics.CapturePipelineMetrics(endpoint, status, time.Since(run.StartTime))
}

// executeValidateStep resolves the extractor and checks the path before anything reads the file.
func (s *service) executeValidateStep(log *logger_i.Logger, run *pipelineModel.Run) (extraction.Extractor, error) {
	extractor, ok := s.extractors.Get(run.Strategy)
	if !ok {
		return nil, fmt.Errorf("no extractor registered for strategy %s", run.Strategy)
	}
	if err := extraction.ValidatePath(run.FilePath, extractor.Extensions()...); err != nil {
		return nil, err
	}
	logState(run, pipelineModel.PathValidated, log)
	return extractor, nil
}

func (s *service) executeExtractStep(ctx context.Context, log *logger_i.Logger, run *pipelineModel.Run, extractor extraction.Extractor) (commonModels.ExtractedText, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("extract_"+string(run.Strategy), time.Since(start)) }()

	text, err := extractor.Extract(ctx, run.FilePath)
	if err != nil {
		return commonModels.ExtractedText{}, err
	}
	logState(run, pipelineModel.TextExtracted, log)
	return text, nil
}

func (s *service) executePromptStep(log *logger_i.Logger, run *pipelineModel.Run, summary pipelineModel.Summarization, text commonModels.ExtractedText) commonModels.LLMRequest {
	req := prompt.Request(summary.Model, commonModels.PromptSpec{
		Persona:      summary.Persona,
		Instruction:  summary.Instruction,
		DocumentText: text.Content,
	})
	logState(run, pipelineModel.PromptBuilt, log)
	return req
}

func (s *service) executeLLMStep(ctx context.Context, log *logger_i.Logger, run *pipelineModel.Run, req commonModels.LLMRequest) (string, error) {
	logState(run, pipelineModel.LLMInvoked, log)
	return s.gateway.Complete(ctx, run.Provider, req)
}
