package middleware

import (
	"net/http"
	"strconv"

	"github.com/akolanti/PdfSummaryAPI/internal/config"
	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
	"github.com/akolanti/PdfSummaryAPI/internal/metrics"
	"github.com/akolanti/PdfSummaryAPI/pkg/logger_i"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logger_i.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	kind         commonModels.ErrorKind
	errorMessage string
}

// Middleware runs trace injection, access control and rate limiting in front of every protected route.
type Middleware struct {
	settings *config.Settings
	limiter  Limiter
}

// NewMiddleware builds the chain. A nil limiter disables rate limiting.
func NewMiddleware(settings *config.Settings, limiter Limiter) *Middleware {
	if !settings.RateLimitEnabled {
		limiter = nil
	}
	return &Middleware{settings: settings, limiter: limiter}
}

func (m *Middleware) Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := metrics.NewHttpStatusRecorder(w) //metrics
		defer func() {
			metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.Status)).Inc()
		}()

		re := m.processRequest(requestResponseStruct{req: r, writer: rec})
		if !handleBadRequest(re) {
			return
		}
		next(rec, re.req)
	}
}

// Handler adapts Wrap for http.Handler values such as the MCP endpoint.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return m.Wrap(next.ServeHTTP)
}

func (m *Middleware) processRequest(re requestResponseStruct) requestResponseStruct {
	re.logger = logger_i.NewLogger("middleware")
	re.logger.Debug("New request received")

	re = injectTrace(re)
	if re.badRequest.isBadRequest {
		return re
	}
	re = m.authenticate(re)
	if re.badRequest.isBadRequest {
		return re //stop if auth fails
	}
	re = m.rateLimiter(re)
	return re
}
