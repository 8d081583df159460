package prompt

import (
	"strings"

	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
)

const preamble = "From the text content extracted from the PDF, "

const (
	SummaryPersona = "You are an assistant that summarizes long PDF documents."

	SummaryInstruction = "write a schematic summary that is as didactic as possible. " +
		"The summary must be written in Portuguese, be clear and objective and make the content easy to understand for the end user. " +
		"Put line breaks in the summary. Do not write the word summary in the body of the answer."

	DefaultManipulationPersona = "You are a renowned teacher with plenty of experience building outlines " +
		"and extremely engaging summaries for your students."

	DefaultManipulationInstruction = "Write an FAQ in a question and answer format based on the content of the text in the file."
)

// Build is pure string composition. Empty document text is passed through untouched.
func Build(ps commonModels.PromptSpec) string {
	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString(strings.TrimSpace(ps.Instruction))
	b.WriteString("\n\nExtracted text:\n")
	b.WriteString(ps.DocumentText)
	return b.String()
}

// Request pairs the composed prompt with the persona as the system message.
func Request(modelID string, ps commonModels.PromptSpec) commonModels.LLMRequest {
	return commonModels.LLMRequest{
		ModelID:       modelID,
		SystemMessage: ps.Persona,
		UserMessage:   Build(ps),
	}
}

// ManipulationInstruction wraps a caller task the same way the manipulation endpoint always has.
func ManipulationInstruction(task string) string {
	if strings.TrimSpace(task) == "" {
		task = DefaultManipulationInstruction
	}
	return "carry out the requested task: " + task
}
