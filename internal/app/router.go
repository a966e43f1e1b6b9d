package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/printdesk/printdesk/internal/clients"
	"github.com/printdesk/printdesk/internal/products"
	"github.com/printdesk/printdesk/internal/quotes"
	"github.com/printdesk/printdesk/internal/reports"
	"github.com/printdesk/printdesk/internal/settings"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger          *slog.Logger
	Config          *Config
	ClientsHandler  *clients.Handler
	ProductsHandler *products.Handler
	QuotesHandler   *quotes.Handler
	ReportsHandler  *reports.Handler
	SettingsHandler *settings.Handler
}

// NewRouter constructs the chi.Router with PrintDesk defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/clients", params.ClientsHandler.MountRoutes)
	r.Route("/products", params.ProductsHandler.MountRoutes)
	r.Route("/quotes", params.QuotesHandler.MountRoutes)
	if params.ReportsHandler != nil {
		params.ReportsHandler.MountRoutes(r)
	}
	if params.SettingsHandler != nil {
		r.Route("/settings", params.SettingsHandler.MountRoutes)
	}

	return r
}
