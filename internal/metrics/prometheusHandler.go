package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var rateLimitedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "rate_limited_requests_total",
	Help: "Requests rejected by the local or shared rate limiter",
}, []string{"limiter"})

var llmFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "llm_failures_total",
	Help: "Provider calls that failed, labelled by provider and error kind",
}, []string{"provider", "kind"})

var pipelineFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pipeline_failures_total",
	Help: "Pipelines that ended in Failed, labelled by the state they failed in and error kind",
}, []string{"state", "kind"})

type HttpStatusRecorder struct {
	http.ResponseWriter
	Status int
}

func NewHttpStatusRecorder(w http.ResponseWriter) *HttpStatusRecorder {
	return &HttpStatusRecorder{ResponseWriter: w, Status: http.StatusOK}
}

func (r *HttpStatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

// Unwrap lets http.ResponseController reach the underlying writer, the MCP streamable handler needs Flush.
func (r *HttpStatusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func (r *HttpStatusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func IncrementRateLimited(limiter string) {
	rateLimitedTotal.WithLabelValues(limiter).Inc()
}

func IncrementLLMFailure(provider string, kind string) {
	llmFailuresTotal.WithLabelValues(provider, kind).Inc()
}

func IncrementPipelineFailure(state string, kind string) {
	pipelineFailuresTotal.WithLabelValues(state, kind).Inc()
}

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "pipeline_duration_seconds",
	Help:    "Total time spent in one extraction or summarization pipeline.",
	Buckets: []float64{.1, .5, 1, 2, 5, 10, 30, 60},
}, []string{"endpoint", "status"})

var dependencyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dependency_latency_seconds",
	Help:    "Latency of extractors and external service calls.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10, 30},
}, []string{"service"})

func CaptureExecutionMetrics(label string, timeElapsed time.Duration) {
	dependencyLatency.WithLabelValues(label).Observe(timeElapsed.Seconds())
}

func CapturePipelineMetrics(endpoint string, status string, timeElapsed time.Duration) {
	requestDuration.WithLabelValues(endpoint, status).Observe(timeElapsed.Seconds())
}
