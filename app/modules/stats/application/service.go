package statsservice

import (
	"context"
	"fmt"
	"log/slog"

	statsdomain "github.com/edenhub/eden-web/app/modules/stats/domain"
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"go.opentelemetry.io/otel/trace"
)

// service implements the Service interface.
type service struct {
	api      API
	serverID string
	palette  ChartPalette
	logger   *slog.Logger
	tracer   trace.Tracer
}

// NewService creates a new stats service for the runs of serverID.
func NewService(api API, serverID string, logger *slog.Logger, tracer trace.Tracer) Service {
	return &service{
		api:      api,
		serverID: serverID,
		palette:  DefaultPalette,
		logger:   logger,
		tracer:   tracer,
	}
}

// Breakdown counts runs by status. A failed global stats call leaves those counters at zero.
func (s *service) Breakdown(ctx context.Context) (statsdomain.Breakdown, error) {
	ctx, span := s.tracer.Start(ctx, "StatsService.Breakdown")
	defer span.End()

	runs, err := s.api.ListRuns(ctx, s.serverID)
	if err != nil {
		return statsdomain.Breakdown{}, fmt.Errorf("failed to list runs: %w", err)
	}

	global, err := s.api.Stats(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to load global stats", slog.String("error", err.Error()))
		global = edenapi.Stats{}
	}
	return statsdomain.Count(runs, global), nil
}

func (s *service) Chart(ctx context.Context) ([]byte, error) {
	ctx, span := s.tracer.Start(ctx, "StatsService.Chart")
	defer span.End()

	b, err := s.Breakdown(ctx)
	if err != nil {
		return nil, err
	}
	png, err := RenderChart(b, s.palette)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return png, nil
}
