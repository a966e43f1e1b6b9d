package reports

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/printdesk/printdesk/internal/platform/httpx"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	period := Period(r.URL.Query().Get("period"))
	switch period {
	case PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear:
	default:
		// Unknown or missing periods fall back to the month window.
		period = PeriodMonth
	}

	report, err := h.service.Build(r.Context(), period)
	if err != nil {
		h.logger.Error("build report failed", slog.String("period", string(period)), slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusOK, report)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.logger.Error("build dashboard failed", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusOK, summary)
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/reports", h.Report)
	r.Get("/dashboard", h.Dashboard)
}
