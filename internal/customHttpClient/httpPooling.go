package customHttpClient

import (
	"net/http"
	"sync"

	"github.com/akolanti/PdfSummaryAPI/internal/config"
)

var (
	sharedClient *http.Client
	once         sync.Once
)

// NewPooledClient hands every LLM SDK the same keep-alive pool so provider calls reuse connections.
// Timeout bounds every provider call, SDK retries are off so one call is one request.
func NewPooledClient() *http.Client {
	once.Do(func() {
		sharedClient = &http.Client{Transport: newTransport(), Timeout: config.LLMCallTimeout}
	})
	return sharedClient
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = config.MaxIdleConns
	t.MaxIdleConnsPerHost = config.MaxIdleConnsPerHost
	t.IdleConnTimeout = config.IdleConnTimeout
	return t
}
