package utils

import (
	"net/http"
	"sync"

	_ "github.com/akolanti/PdfSummaryAPI/cmd/api/docs"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/http-swagger"
)

var once sync.Once
var router *chi.Mux

func GetNewUUID() string {
	return uuid.New().String()
}

type RouterClient struct {
	Router *chi.Mux
}

// GetRouter returns the process wide router, created on first call.
func GetRouter() RouterClient {
	once.Do(func() {
		router = NewRouter().Router
	})

	return RouterClient{Router: router}
}

// NewRouter builds a router with the unauthenticated operational routes: swagger and /metrics.
func NewRouter() RouterClient {
	r := chi.NewRouter()
	InitSwagger(r)
	//register prometheus
	r.Handle("/metrics", promhttp.Handler())
	return RouterClient{Router: r}
}

func InitSwagger(r *chi.Mux) {
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)
}
