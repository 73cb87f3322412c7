package runservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	rundomain "github.com/edenhub/eden-web/app/modules/run/domain"
	"github.com/edenhub/eden-web/app/shared/clock"
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/shared/paging"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// service implements the Service interface.
type service struct {
	api      API
	serverID string
	clock    clock.Clock
	loc      *time.Location
	logger   *slog.Logger
	tracer   trace.Tracer
}

// NewService creates a new run service for serverID. Schedules are read in loc.
func NewService(api API, serverID string, clk clock.Clock, loc *time.Location, logger *slog.Logger, tracer trace.Tracer) Service {
	if clk == nil {
		clk = clock.Real{}
	}
	if loc == nil {
		loc = time.Local
	}
	return &service{
		api:      api,
		serverID: serverID,
		clock:    clk,
		loc:      loc,
		logger:   logger,
		tracer:   tracer,
	}
}

func (s *service) List(ctx context.Context, filter rundomain.Filter, page int) (*Listing, error) {
	ctx, span := s.tracer.Start(ctx, "RunService.List")
	defer span.End()

	runs, err := s.api.ListRuns(ctx, s.serverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	// The counters are decoration; the list renders without them.
	global, err := s.api.Stats(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to load stats", slog.String("error", err.Error()))
	}

	filtered := filter.Apply(runs)
	span.SetAttributes(
		attribute.Int("runs", len(runs)),
		attribute.Int("filtered", len(filtered)),
	)

	return &Listing{
		Runs:   paging.Slice(filtered, page, paging.DefaultSize),
		Stats:  rundomain.ComputeStats(runs, global),
		Filter: filter,
	}, nil
}

func (s *service) Get(ctx context.Context, runID string) (*edenapi.Run, error) {
	ctx, span := s.tracer.Start(ctx, "RunService.Get", trace.WithAttributes(
		attribute.String("run_id", runID),
	))
	defer span.End()

	run, err := s.api.GetRun(ctx, s.serverID, runID)
	if err != nil {
		if edenapi.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, fmt.Errorf("failed to load run: %w", err)
	}
	if run.ID == "" {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return &run, nil
}

func (s *service) Create(ctx context.Context, form rundomain.Form) (*edenapi.Run, error) {
	ctx, span := s.tracer.Start(ctx, "RunService.Create")
	defer span.End()

	v, err := form.Validate(s.clock.Now(), s.loc, true)
	if err != nil {
		return nil, err
	}

	created, err := s.api.CreateRun(ctx, v.Input(s.serverID))
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to create run",
			slog.String("title", v.Title),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to create run: %w", err)
	}

	s.logger.InfoContext(ctx, "Run created",
		slog.String("run_id", created.ID),
		slog.String("difficulty", string(v.Difficulty)),
		slog.Time("scheduled_at", v.ScheduledAt),
	)
	return &created, nil
}

func (s *service) Update(ctx context.Context, runID string, form rundomain.Form) (*edenapi.Run, error) {
	ctx, span := s.tracer.Start(ctx, "RunService.Update", trace.WithAttributes(
		attribute.String("run_id", runID),
	))
	defer span.End()

	v, err := form.Validate(s.clock.Now(), s.loc, false)
	if err != nil {
		return nil, err
	}

	updated, err := s.api.UpdateRun(ctx, runID, v.Update())
	if err != nil {
		if edenapi.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, fmt.Errorf("failed to update run: %w", err)
	}
	return &updated, nil
}

func (s *service) Delete(ctx context.Context, runID string) error {
	ctx, span := s.tracer.Start(ctx, "RunService.Delete", trace.WithAttributes(
		attribute.String("run_id", runID),
	))
	defer span.End()

	if err := s.api.DeleteRun(ctx, runID); err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	s.logger.InfoContext(ctx, "Run deleted", slog.String("run_id", runID))
	return nil
}
