package pipeline

import (
	"strings"

	"github.com/akolanti/PdfSummaryAPI/internal/config"
	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
	"github.com/akolanti/PdfSummaryAPI/internal/domain/pipelineModel"
	"github.com/akolanti/PdfSummaryAPI/internal/prompt"
)

var summaryModels = map[commonModels.ProviderName]string{
	commonModels.ProviderGroq:   config.GroqModelName,
	commonModels.ProviderOpenAI: config.OpenAIModelName,
	commonModels.ProviderGemini: config.GeminiModelName,
}

// SummaryFor is the fixed summary binding of each provider endpoint.
func SummaryFor(provider commonModels.ProviderName) (pipelineModel.Summarization, bool) {
	model, ok := summaryModels[provider]
	if !ok {
		return pipelineModel.Summarization{}, false
	}
	return pipelineModel.Summarization{
		Strategy:    pipelineModel.StrategyTextLayer,
		Provider:    provider,
		Model:       model,
		Persona:     prompt.SummaryPersona,
		Instruction: prompt.SummaryInstruction,
	}, true
}

// Manipulation runs a caller supplied task with OpenAI. Blank persona and task fall back to the defaults.
func Manipulation(model commonModels.OpenAIModel, persona string, task string) pipelineModel.Summarization {
	if strings.TrimSpace(persona) == "" {
		persona = prompt.DefaultManipulationPersona
	}
	return pipelineModel.Summarization{
		Strategy:    pipelineModel.StrategyTextLayer,
		Provider:    commonModels.ProviderOpenAI,
		Model:       string(model),
		Persona:     persona,
		Instruction: prompt.ManipulationInstruction(task),
	}
}
