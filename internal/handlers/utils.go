package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/akolanti/PdfSummaryAPI/internal/adapter"
	"github.com/akolanti/PdfSummaryAPI/internal/api"
	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
	"github.com/akolanti/PdfSummaryAPI/pkg/logger_i"
)

const maxRequestBody = 1 << 20

var (
	logRH   *logger_i.Logger
	logOnce sync.Once
)

// requestLogger is created on first use so it picks up the handler installed by logger_i.Init.
func requestLogger() *logger_i.Logger {
	logOnce.Do(func() { logRH = logger_i.NewLogger("RequestHandler") })
	return logRH
}

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		requestLogger().Error("Error encoding response", "error", err)
	}
}

// WriteErrorResponse maps any pipeline error to its status and the {"detail","kind","code"} body.
func WriteErrorResponse(w http.ResponseWriter, err error) {
	code, body := adapter.ToErrorResponse(err)
	writeJsonResponse(w, code, body)
}

// WriteBadRequest is for failures detected before a pipeline runs (auth, rate limit, malformed input).
func WriteBadRequest(w http.ResponseWriter, httpCode int, kind commonModels.ErrorKind, message string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(message, kind, httpCode))
}

func validateContext(ctx context.Context) bool {
	if ctx.Err() != nil {
		requestLogger().FromContext(ctx).Warn("context error", "error", ctx.Err())
		return false
	}
	return true
}

// decodeBody fills dst from a JSON body when there is one. An empty body is not an error.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			requestLogger().Error("Couldn't close the request body", "error", err)
		}
	}(r.Body)

	err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return commonModels.WrapError(commonModels.InvalidInput, "the request body is not valid JSON", err)
}

// readDocumentRequest takes caminho_pdf from the query string first, then from the JSON body.
func readDocumentRequest(r *http.Request) (commonModels.ExtractionRequest, error) {
	if path := strings.TrimSpace(r.URL.Query().Get("caminho_pdf")); path != "" {
		return adapter.ToDocumentRequest(path), nil
	}

	var body api.DocumentRequest
	if err := decodeBody(r, &body); err != nil {
		return commonModels.ExtractionRequest{}, err
	}
	return adapter.ToDocumentRequest(strings.TrimSpace(body.FilePath)), nil
}

// readManipulationRequest lets query parameters override the body field by field.
func readManipulationRequest(r *http.Request) (api.ManipulationRequest, error) {
	var req api.ManipulationRequest
	if err := decodeBody(r, &req); err != nil {
		return req, err
	}

	q := r.URL.Query()
	override := func(dst *string, key string) {
		if v := q.Get(key); v != "" {
			*dst = v
		}
	}
	override(&req.FilePath, "caminho_pdf")
	override(&req.Persona, "persona")
	override(&req.Prompt, "prompt")
	override(&req.Modelo, "modelo")
	req.FilePath = strings.TrimSpace(req.FilePath)
	return req, nil
}
