package adapter

import (
	"github.com/akolanti/PdfSummaryAPI/internal/api"
	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
)

func ToTextResponse(text string) api.TextResponse {
	return api.TextResponse{Texto: text}
}

func ToSummaryResponse(summary string) api.SummaryResponse {
	return api.SummaryResponse{Resumo: summary}
}

func ToManipulationResponse(result string) api.ManipulationResponse {
	return api.ManipulationResponse{Resultado: result}
}

// ToErrorResponse returns the status code and body for any error coming out of the pipeline.
func ToErrorResponse(err error) (int, api.ErrorResponse) {
	kind := commonModels.KindOf(err)
	code := commonModels.HTTPStatus(kind)
	return code, api.ErrorResponse{
		Detail: commonModels.PublicMessage(err),
		Kind:   string(kind),
		Code:   code,
	}
}

// BadRequest is used by the middleware, before any pipeline runs.
func BadRequest(message string, kind commonModels.ErrorKind, code int) api.ErrorResponse {
	return api.ErrorResponse{
		Detail: message,
		Kind:   string(kind),
		Code:   code,
	}
}

func ToDocumentRequest(filePath string) commonModels.ExtractionRequest {
	return commonModels.ExtractionRequest{FilePath: filePath}
}
