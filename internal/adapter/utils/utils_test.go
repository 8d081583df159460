package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestGetNewUUID(t *testing.T) {
	a, b := GetNewUUID(), GetNewUUID()
	if a == b {
		t.Error("expected distinct ids")
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("not a uuid: %v", err)
	}
}

func TestGetRouter_Shared(t *testing.T) {
	if GetRouter().Router != GetRouter().Router {
		t.Error("expected the same router on every call")
	}
}

func TestNewRouter_OperationalRoutes(t *testing.T) {
	r := NewRouter().Router

	tests := []struct {
		path string
		want int
	}{
		{"/metrics", http.StatusOK},
		{"/swagger", http.StatusMovedPermanently},
		{"/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))
		if rr.Code != tt.want {
			t.Errorf("%s: status got %d, want %d", tt.path, rr.Code, tt.want)
		}
	}
}
