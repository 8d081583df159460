package server

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/akolanti/PdfSummaryAPI/internal/adapter/utils"
	"github.com/akolanti/PdfSummaryAPI/internal/config"
	"github.com/akolanti/PdfSummaryAPI/internal/handlers"
	"github.com/akolanti/PdfSummaryAPI/internal/middleware"
	"github.com/akolanti/PdfSummaryAPI/pkg/logger_i"
	"github.com/go-chi/chi/v5"
)

var (
	server  *http.Server
	_logger *logger_i.Logger
)

// Routes is everything the router needs to expose the API.
type Routes struct {
	Handler    *handlers.RequestHandler
	Middleware *middleware.Middleware
	Mcp        http.Handler
}

type ShutdownParams struct {
	GracefulShutdown chan os.Signal
	StopExecution    chan bool
	CloseServices    context.CancelFunc
}

// RegisterRoutes mounts the protected v1 routes and /mcp behind the middleware, /health stays open.
func RegisterRoutes(r *chi.Mux, routes Routes) {
	h, mw := routes.Handler, routes.Middleware

	r.Get("/health", handlers.HealthHandler)

	r.Route("/v1", func(v1 chi.Router) {
		v1.Post("/convert_pdf_text", mw.Wrap(h.ConvertPdfText))
		v1.Post("/convert_pdf_text_layout", mw.Wrap(h.ConvertPdfTextLayout))
		v1.Post("/convert_pdf_text_pdfcpu", mw.Wrap(h.ConvertPdfTextPdfcpu))
		v1.Post("/convert_pdf_ocr_text", mw.Wrap(h.ConvertPdfOcrText))
		v1.Post("/convert_document_text", mw.Wrap(h.ConvertDocumentText))

		v1.Post("/pdf_resumo_groq", mw.Wrap(h.SummarizeGroq))
		v1.Post("/pdf_resumo_openai", mw.Wrap(h.SummarizeOpenAI))
		v1.Post("/pdf_resumo_gemini", mw.Wrap(h.SummarizeGemini))
		v1.Post("/pdf_manipulacao_openai", mw.Wrap(h.ManipulateOpenAI))
	})

	if routes.Mcp != nil {
		r.Handle("/mcp", mw.Handler(routes.Mcp))
	}
}

// CreateServer blocks serving the API. It returns nil once the server was shut down on purpose.
func CreateServer(listenAddr string, routes Routes) error {
	_logger = logger_i.NewLogger("Server")

	r := utils.GetRouter()
	RegisterRoutes(r.Router, routes)

	server = &http.Server{
		Addr:         listenAddr,
		Handler:      r.Router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	_logger.Info("Server is listening at", "address", listenAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		_logger.Error("Server crashed", "error", err.Error(), "addr", listenAddr)
		return err
	}
	return nil
}

func ShutDownHandler(shutdownParams ShutdownParams) {
	state := <-shutdownParams.GracefulShutdown
	logger := logger_i.NewLogger("Server")
	logger.Info("Server is shutting down", "signal", state.String())

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownContextTimeout)
	defer cancel()

	done := make(chan struct{})

	go func() {
		if server != nil {
			server.SetKeepAlivesEnabled(false)
			if err := server.Shutdown(ctx); err != nil {
				logger.Error("Could not shutdown gracefully", "error", err)
			}
		}

		//redis clients and any other service bound to the service context
		shutdownParams.CloseServices()
		close(shutdownParams.StopExecution)
		close(done)
	}()

	select {
	case <-done:
		logger.Info("Gracefully shut down")
	case <-ctx.Done():
		logger.Info("Force Shut down")
		os.Exit(1)
	}
}
