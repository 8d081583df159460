package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/akolanti/PdfSummaryAPI/internal/adapter"
	"github.com/akolanti/PdfSummaryAPI/internal/api"
	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
	"github.com/akolanti/PdfSummaryAPI/internal/domain/pipelineModel"
	"github.com/akolanti/PdfSummaryAPI/internal/pipeline"
)

type RequestHandler struct {
	service pipeline.Service
}

func NewRequestHandler(service pipeline.Service) *RequestHandler {
	return &RequestHandler{service: service}
}

// HealthHandler godoc
// @Summary      Liveness probe
// @Tags         Operations
// @Produce      json
// @Success      200  {object}  api.HealthResponse
// @Router       /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, api.HealthResponse{Status: "ok"})
}

// ConvertPdfText godoc
// @Summary      Convert a PDF to text using its text layer
// @Description  Extracts the text layer of every page. Pages without text count as empty.
// @Tags         Conversion
// @Produce      json
// @Security     AccessToken
// @Param        caminho_pdf  query     string  true  "Path to the PDF file"
// @Success      200          {object}  api.TextResponse
// @Failure      400          {object}  api.ErrorResponse  "File not found, not a PDF, empty or corrupt"
// @Failure      401          {object}  api.ErrorResponse
// @Failure      500          {object}  api.ErrorResponse
// @Router       /v1/convert_pdf_text [post]
func (h *RequestHandler) ConvertPdfText(w http.ResponseWriter, r *http.Request) {
	h.convert(w, r, pipelineModel.StrategyTextLayer)
}

// ConvertPdfTextLayout godoc
// @Summary      Convert a PDF to text following the page layout
// @Description  Rebuilds reading order from glyph positions, top to bottom and left to right.
// @Tags         Conversion
// @Produce      json
// @Security     AccessToken
// @Param        caminho_pdf  query     string  true  "Path to the PDF file"
// @Success      200          {object}  api.TextResponse
// @Failure      400          {object}  api.ErrorResponse  "File not found, not a PDF, corrupt or no text extracted"
// @Failure      401          {object}  api.ErrorResponse
// @Failure      500          {object}  api.ErrorResponse
// @Router       /v1/convert_pdf_text_layout [post]
func (h *RequestHandler) ConvertPdfTextLayout(w http.ResponseWriter, r *http.Request) {
	h.convert(w, r, pipelineModel.StrategyLayoutText)
}

// ConvertPdfTextPdfcpu godoc
// @Summary      Convert a PDF to text using pdfcpu
// @Description  Validates the document with pdfcpu and reads the text operators of each page content stream.
// @Tags         Conversion
// @Produce      json
// @Security     AccessToken
// @Param        caminho_pdf  query     string  true  "Path to the PDF file"
// @Success      200          {object}  api.TextResponse
// @Failure      400          {object}  api.ErrorResponse  "File not found, not a PDF, corrupt or no text extracted"
// @Failure      401          {object}  api.ErrorResponse
// @Failure      500          {object}  api.ErrorResponse
// @Router       /v1/convert_pdf_text_pdfcpu [post]
func (h *RequestHandler) ConvertPdfTextPdfcpu(w http.ResponseWriter, r *http.Request) {
	h.convert(w, r, pipelineModel.StrategyPdfcpu)
}

// ConvertPdfOcrText godoc
// @Summary      Convert a scanned PDF to text with OCR
// @Description  Rasterizes every page with pdftoppm and recognizes it with Tesseract. Both must be installed.
// @Tags         Conversion
// @Produce      json
// @Security     AccessToken
// @Param        caminho_pdf  query     string  true  "Path to the PDF file"
// @Success      200          {object}  api.TextResponse
// @Failure      400          {object}  api.ErrorResponse  "File not found, not a PDF, no pages rendered or no text recognized"
// @Failure      401          {object}  api.ErrorResponse
// @Failure      500          {object}  api.ErrorResponse  "Tesseract or pdftoppm missing"
// @Router       /v1/convert_pdf_ocr_text [post]
func (h *RequestHandler) ConvertPdfOcrText(w http.ResponseWriter, r *http.Request) {
	h.convert(w, r, pipelineModel.StrategyOCR)
}

// ConvertDocumentText godoc
// @Summary      Convert an office document to text
// @Description  Reads .docx, .odt, .rtf and .txt files.
// @Tags         Conversion
// @Produce      json
// @Security     AccessToken
// @Param        caminho_pdf  query     string  true  "Path to the document"
// @Success      200          {object}  api.TextResponse
// @Failure      400          {object}  api.ErrorResponse
// @Failure      401          {object}  api.ErrorResponse
// @Failure      500          {object}  api.ErrorResponse
// @Router       /v1/convert_document_text [post]
func (h *RequestHandler) ConvertDocumentText(w http.ResponseWriter, r *http.Request) {
	h.convert(w, r, pipelineModel.StrategyOfficeDoc)
}

// SummarizeGroq godoc
// @Summary      Summarize a PDF with Groq (llama-3.1-8b-instant)
// @Tags         LLM
// @Produce      json
// @Security     AccessToken
// @Param        caminho_pdf  query     string  true  "Path to the PDF file"
// @Success      200          {object}  api.SummaryResponse
// @Failure      400          {object}  api.ErrorResponse
// @Failure      401          {object}  api.ErrorResponse
// @Failure      429          {object}  api.ErrorResponse  "Provider rate limit"
// @Failure      500          {object}  api.ErrorResponse
// @Router       /v1/pdf_resumo_groq [post]
func (h *RequestHandler) SummarizeGroq(w http.ResponseWriter, r *http.Request) {
	h.summarize(w, r, commonModels.ProviderGroq)
}

// SummarizeOpenAI godoc
// @Summary      Summarize a PDF with OpenAI (gpt-4o-mini)
// @Tags         LLM
// @Produce      json
// @Security     AccessToken
// @Param        caminho_pdf  query     string  true  "Path to the PDF file"
// @Success      200          {object}  api.SummaryResponse
// @Failure      400          {object}  api.ErrorResponse
// @Failure      401          {object}  api.ErrorResponse
// @Failure      429          {object}  api.ErrorResponse  "Provider rate limit"
// @Failure      500          {object}  api.ErrorResponse
// @Router       /v1/pdf_resumo_openai [post]
func (h *RequestHandler) SummarizeOpenAI(w http.ResponseWriter, r *http.Request) {
	h.summarize(w, r, commonModels.ProviderOpenAI)
}

// SummarizeGemini godoc
// @Summary      Summarize a PDF with Gemini
// @Tags         LLM
// @Produce      json
// @Security     AccessToken
// @Param        caminho_pdf  query     string  true  "Path to the PDF file"
// @Success      200          {object}  api.SummaryResponse
// @Failure      400          {object}  api.ErrorResponse
// @Failure      401          {object}  api.ErrorResponse
// @Failure      429          {object}  api.ErrorResponse  "Provider rate limit"
// @Failure      500          {object}  api.ErrorResponse
// @Router       /v1/pdf_resumo_gemini [post]
func (h *RequestHandler) SummarizeGemini(w http.ResponseWriter, r *http.Request) {
	h.summarize(w, r, commonModels.ProviderGemini)
}

// ManipulateOpenAI godoc
// @Summary      Run any task over a PDF with OpenAI
// @Description  The persona becomes the system message and the prompt the task run over the extracted text.
// @Tags         LLM
// @Accept       json
// @Produce      json
// @Security     AccessToken
// @Param        caminho_pdf  query     string  true   "Path to the PDF file"
// @Param        persona      query     string  false  "Persona the model takes on"
// @Param        prompt       query     string  false  "Task to run over the text"
// @Param        modelo       query     string  false  "OpenAI model"  Enums(gpt-4o, gpt-4o-mini, gpt-4o-turbo, gpt-3.5-turbo)
// @Success      200          {object}  api.ManipulationResponse
// @Failure      400          {object}  api.ErrorResponse  "Invalid input or unknown model"
// @Failure      401          {object}  api.ErrorResponse
// @Failure      429          {object}  api.ErrorResponse  "Provider rate limit"
// @Failure      500          {object}  api.ErrorResponse
// @Router       /v1/pdf_manipulacao_openai [post]
func (h *RequestHandler) ManipulateOpenAI(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	req, err := readManipulationRequest(r)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}

	model, ok := commonModels.ParseOpenAIModel(req.Modelo)
	if !ok {
		WriteErrorResponse(w, commonModels.NewError(commonModels.InvalidInput,
			fmt.Sprintf("modelo '%s' is not one of %s", req.Modelo, joinModels())))
		return
	}

	result, err := h.service.Summarize(r.Context(), pipeline.Manipulation(model, req.Persona, req.Prompt), req.FilePath)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToManipulationResponse(result))
}

func (h *RequestHandler) convert(w http.ResponseWriter, r *http.Request, strategy pipelineModel.Strategy) {
	if !validateContext(r.Context()) {
		return
	}
	req, err := readDocumentRequest(r)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}

	text, err := h.service.ConvertText(r.Context(), strategy, req.FilePath)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToTextResponse(text))
}

func (h *RequestHandler) summarize(w http.ResponseWriter, r *http.Request, provider commonModels.ProviderName) {
	if !validateContext(r.Context()) {
		return
	}
	req, err := readDocumentRequest(r)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}

	summary, ok := pipeline.SummaryFor(provider)
	if !ok {
		WriteErrorResponse(w, fmt.Errorf("no summary binding for provider %s", provider))
		return
	}

	result, err := h.service.Summarize(r.Context(), summary, req.FilePath)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToSummaryResponse(result))
}

func joinModels() string {
	models := commonModels.OpenAIModels()
	names := make([]string, len(models))
	for i, m := range models {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}
