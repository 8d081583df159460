package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHttpStatusRecorder(t *testing.T) {
	rec := httptest.NewRecorder()
	w := NewHttpStatusRecorder(rec)

	if w.Status != http.StatusOK {
		t.Errorf("default status got %d, want %d", w.Status, http.StatusOK)
	}
	w.WriteHeader(http.StatusTooManyRequests)
	if w.Status != http.StatusTooManyRequests || rec.Code != http.StatusTooManyRequests {
		t.Errorf("status got %d/%d, want %d", w.Status, rec.Code, http.StatusTooManyRequests)
	}
	if w.Unwrap() != rec {
		t.Error("Unwrap should return the wrapped writer")
	}
}
