package middleware

import (
	"context"
	"crypto/subtle"
	"net"
	"net/http"

	"github.com/akolanti/PdfSummaryAPI/internal/adapter/utils"
	"github.com/akolanti/PdfSummaryAPI/internal/config"
	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
	"github.com/akolanti/PdfSummaryAPI/internal/handlers"
	"github.com/akolanti/PdfSummaryAPI/internal/metrics"
	"github.com/akolanti/PdfSummaryAPI/pkg/logger_i"
)

func injectTrace(re requestResponseStruct) requestResponseStruct {
	req := re.req
	if req == nil {
		//this is a bad request
		re.badRequest = failureStruct{
			isBadRequest: true,
			httpCode:     http.StatusBadRequest,
			kind:         commonModels.InvalidInput,
			errorMessage: "request is empty",
		}
		return re
	}
	trace := req.Header.Get(config.TRACE_ID_HEADER)
	if trace == "" {
		trace = utils.GetNewUUID()
	}
	re.logger = re.logger.With("traceId", trace)
	ctx := context.WithValue(req.Context(), config.TRACE_ID_KEY, trace)
	req.Header.Set(config.TRACE_ID_HEADER, trace)
	re.writer.Header().Set(config.TRACE_ID_HEADER, trace)
	re.req = req.WithContext(ctx)

	re.logger.Debug("trace middleware injected")
	return re
}

func (m *Middleware) authenticate(re requestResponseStruct) requestResponseStruct {
	if !IsValidAccessToken(re.req.Header.Get(m.settings.AccessHeader), m.settings, re.logger) {
		re.badRequest = failureStruct{
			isBadRequest: true,
			httpCode:     http.StatusUnauthorized,
			kind:         commonModels.AuthFailed,
			errorMessage: "invalid or missing access token",
		}
		return re
	}
	re.logger.Debug("Authorized")
	return re
}

// IsValidAccessToken compares the presented token with the configured one in constant time.
// With no configured token every request is refused unless the bypass is on.
func IsValidAccessToken(presented string, settings *config.Settings, log *logger_i.Logger) bool {
	if settings.NoAuthBypass {
		log.Error("--------------------------------------- auth bypass----------------------------------------------")
		return true
	}
	if settings.AccessToken == "" {
		log.Error("ACCESS_TOKEN is not configured, refusing request")
		return false
	}
	if presented == "" {
		log.Warn("Empty access header", "header", settings.AccessHeader)
		return false
	}
	if subtle.ConstantTimeCompare([]byte(presented), []byte(settings.AccessToken)) != 1 {
		log.Warn("Invalid access token")
		return false
	}
	return true
}

func (m *Middleware) rateLimiter(re requestResponseStruct) requestResponseStruct {
	if m.limiter == nil {
		return re
	}
	ip := clientIP(re.req)

	allowed, err := m.limiter.Allow(re.req.Context(), ip)
	if err != nil {
		//the shared store is down, serve the request rather than lock every client out
		re.logger.Error("Rate limiter unavailable", "limiter", m.limiter.Name(), "error", err)
		return re
	}
	if !allowed {
		metrics.IncrementRateLimited(m.limiter.Name())
		re.logger.Warn("Too many requests", "limiter", m.limiter.Name(), "ip", ip)
		re.badRequest = failureStruct{
			isBadRequest: true,
			httpCode:     http.StatusTooManyRequests,
			kind:         commonModels.RateLimited,
			errorMessage: "rate limit exceeded, slow down",
		}
		return re
	}
	return re
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// handleBadRequest writes the failure, if any, and reports whether the request may continue.
func handleBadRequest(re requestResponseStruct) bool {
	if !re.badRequest.isBadRequest {
		return true
	}
	remote := ""
	if re.req != nil {
		remote = re.req.RemoteAddr
	}
	re.logger.Warn("Bad request", "httpCode", re.badRequest.httpCode, "errorMessage", re.badRequest.errorMessage, "IP", remote)
	handlers.WriteBadRequest(re.writer, re.badRequest.httpCode, re.badRequest.kind, re.badRequest.errorMessage)
	return false
}
