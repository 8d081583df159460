package pipelineModel

import (
	"time"

	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
)

type State string

const (
	Received      State = "Received"
	PathValidated State = "PathValidated"
	TextExtracted State = "TextExtracted"
	PromptBuilt   State = "PromptBuilt"
	LLMInvoked    State = "LLMInvoked"
	Responded     State = "Responded"
	Failed        State = "Failed"
)

// Strategy names one of the extraction backends. The set is closed and bound to routes at startup.
type Strategy string

const (
	StrategyTextLayer  Strategy = "text_layer"
	StrategyLayoutText Strategy = "layout_text"
	StrategyPdfcpu     Strategy = "pdfcpu"
	StrategyOCR        Strategy = "ocr"
	StrategyOfficeDoc  Strategy = "office_document"
)

func Strategies() []Strategy {
	return []Strategy{StrategyTextLayer, StrategyLayoutText, StrategyPdfcpu, StrategyOCR, StrategyOfficeDoc}
}

func ParseStrategy(raw string) (Strategy, bool) {
	if raw == "" {
		return StrategyTextLayer, true
	}
	for _, s := range Strategies() {
		if string(s) == raw {
			return s, true
		}
	}
	return "", false
}

// Run tracks a single request through the pipeline. It never outlives the request.
type Run struct {
	TraceId   string
	FilePath  string
	Strategy  Strategy
	Provider  commonModels.ProviderName
	Model     string
	State     State
	ErrorKind commonModels.ErrorKind
	StartTime time.Time
}

// Summarization binds an LLM endpoint to its extractor, provider, model and prompt pieces.
type Summarization struct {
	Strategy    Strategy
	Provider    commonModels.ProviderName
	Model       string
	Persona     string
	Instruction string
}
