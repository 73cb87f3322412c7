package statshandlers

import (
	"log/slog"
	"net/http"
	"strconv"

	statsservice "github.com/edenhub/eden-web/app/modules/stats/application"
	"go.opentelemetry.io/otel/trace"
)

// ChartPath serves the stats chart image.
const ChartPath = "/admin/stats/chart.png"

// Handlers are the stats routes.
type Handlers interface {
	HandleChart(w http.ResponseWriter, r *http.Request)
}

// StatsHandlers implements the Handlers interface.
type StatsHandlers struct {
	service statsservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewStatsHandlers creates a new StatsHandlers.
func NewStatsHandlers(service statsservice.Service, logger *slog.Logger, tracer trace.Tracer) *StatsHandlers {
	return &StatsHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// HandleChart writes the chart PNG. A failed load still answers with an image
// so the page keeps its layout.
func (h *StatsHandlers) HandleChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "StatsHandlers.HandleChart")
	defer span.End()

	status := http.StatusOK
	img, err := h.service.Chart(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "Failed to build stats chart", slog.String("error", err.Error()))
		status = http.StatusBadGateway
		img, err = statsservice.RenderPlaceholder("Stats unavailable", statsservice.DefaultPalette)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Length", strconv.Itoa(len(img)))
	w.WriteHeader(status)
	_, _ = w.Write(img)
}
