package commonModels

import "strings"

type DocType string

var PDF DocType = "PDF"
var DOCX DocType = "DOCX"
var TXT DocType = "TXT"
var ERR DocType = "ERROR"

type ExtractionRequest struct {
	FilePath string `json:"caminho_pdf"`
}

type ExtractedText struct {
	Content string
	IsEmpty bool
}

func NewExtractedText(content string) ExtractedText {
	return ExtractedText{
		Content: content,
		IsEmpty: strings.TrimSpace(content) == "",
	}
}

type PromptSpec struct {
	Persona      string
	Instruction  string
	DocumentText string
}

type LLMRequest struct {
	ModelID       string
	SystemMessage string
	UserMessage   string
}

type ProviderName string

const (
	ProviderOpenAI ProviderName = "openai"
	ProviderGroq   ProviderName = "groq"
	ProviderGemini ProviderName = "gemini"
)

// OpenAIModel is the closed set of models the manipulation endpoint accepts.
type OpenAIModel string

const (
	GPT4o       OpenAIModel = "gpt-4o"
	GPT4oMini   OpenAIModel = "gpt-4o-mini"
	GPT4oTurbo  OpenAIModel = "gpt-4o-turbo"
	GPT35Turbo  OpenAIModel = "gpt-3.5-turbo"
	DefaultGPT4 OpenAIModel = GPT4oMini
)

var openAIModels = []OpenAIModel{GPT4o, GPT4oMini, GPT4oTurbo, GPT35Turbo}

func OpenAIModels() []OpenAIModel {
	out := make([]OpenAIModel, len(openAIModels))
	copy(out, openAIModels)
	return out
}

func ParseOpenAIModel(raw string) (OpenAIModel, bool) {
	if raw == "" {
		return DefaultGPT4, true
	}
	for _, m := range openAIModels {
		if string(m) == raw {
			return m, true
		}
	}
	return "", false
}
