package customHttpClient

import (
	"net/http"
	"testing"

	"github.com/akolanti/PdfSummaryAPI/internal/config"
)

func TestNewPooledClient(t *testing.T) {
	c := NewPooledClient()
	if c != NewPooledClient() {
		t.Error("expected one shared client")
	}
	if c.Timeout != config.LLMCallTimeout {
		t.Errorf("client timeout got %v, want %v", c.Timeout, config.LLMCallTimeout)
	}
	tr, ok := c.Transport.(*http.Transport)
	if !ok {
		t.Fatal("expected an *http.Transport")
	}
	if tr.MaxIdleConns != config.MaxIdleConns || tr.MaxIdleConnsPerHost != config.MaxIdleConnsPerHost {
		t.Errorf("pool sizes got %d/%d", tr.MaxIdleConns, tr.MaxIdleConnsPerHost)
	}
	if tr == http.DefaultTransport {
		t.Error("the default transport must not be mutated")
	}
}
