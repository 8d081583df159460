package api

// responses---------------------

type TextResponse struct {
	Texto string `json:"texto" example:"Contrato de prestação de serviços..."`
}

type SummaryResponse struct {
	Resumo string `json:"resumo" example:"Partes envolvidas:\n- ..."`
}

type ManipulationResponse struct {
	Resultado string `json:"resultado" example:"1. Qual é o objeto do contrato?\n..."`
}

type ErrorResponse struct {
	Detail string `json:"detail" example:"file '/tmp/x.pdf' was not found"`
	Kind   string `json:"kind" example:"InvalidInput"`
	Code   int    `json:"code" example:"400"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// requests---------------------

type DocumentRequest struct {
	FilePath string `json:"caminho_pdf" validate:"required" example:"/data/contrato.pdf"`
}

type ManipulationRequest struct {
	FilePath string `json:"caminho_pdf" validate:"required" example:"/data/contrato.pdf"`
	Persona  string `json:"persona,omitempty"`
	Prompt   string `json:"prompt,omitempty"`
	Modelo   string `json:"modelo,omitempty" enums:"gpt-4o,gpt-4o-mini,gpt-4o-turbo,gpt-3.5-turbo" example:"gpt-4o-mini"`
}
