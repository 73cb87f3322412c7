package signupservice

import (
	"context"
	"fmt"
	"log/slog"

	signupdomain "github.com/edenhub/eden-web/app/modules/signup/domain"
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/types"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// signupFetchLimit bounds concurrent signup lookups per dashboard load.
const signupFetchLimit = 4

// service implements the Service interface.
type service struct {
	api      API
	serverID string
	logger   *slog.Logger
	tracer   trace.Tracer
}

// NewService creates a new signup service for the runs of serverID.
func NewService(api API, serverID string, logger *slog.Logger, tracer trace.Tracer) Service {
	return &service{
		api:      api,
		serverID: serverID,
		logger:   logger,
		tracer:   tracer,
	}
}

func (s *service) MyRuns(ctx context.Context, userID string) (*signupdomain.MyRuns, error) {
	ctx, span := s.tracer.Start(ctx, "SignupService.MyRuns")
	defer span.End()

	runs, err := s.api.ListRuns(ctx, s.serverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	span.SetAttributes(attribute.Int("runs", len(runs)))

	entries := make([]signupdomain.Entry, len(runs))
	var g errgroup.Group
	g.SetLimit(signupFetchLimit)
	for i, run := range runs {
		entries[i].Run = run
		g.Go(func() error {
			signups, err := s.api.ListSignups(ctx, run.ID)
			if err != nil {
				s.logger.WarnContext(ctx, "Failed to load signups",
					slog.String("run_id", run.ID),
					slog.String("error", err.Error()),
				)
				entries[i].SignupErr = err.Error()
				return nil
			}
			entries[i].Signup = signupdomain.FindSignup(signups, userID)
			return nil
		})
	}
	_ = g.Wait()

	return &signupdomain.MyRuns{
		Entries: entries,
		Counts:  signupdomain.Count(runs),
	}, nil
}

func (s *service) SignUp(ctx context.Context, runID string, signupType types.SignupType) error {
	ctx, span := s.tracer.Start(ctx, "SignupService.SignUp")
	defer span.End()

	if runID == "" {
		return ErrMissingRun
	}
	st, ok := types.ParseSignupType(string(signupType))
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidSignupType, signupType)
	}

	if _, err := s.api.CreateSignup(ctx, runID, edenapi.SignupInput{Type: st}); err != nil {
		return fmt.Errorf("failed to sign up for run %s: %w", runID, err)
	}

	s.logger.InfoContext(ctx, "Signed up for run",
		slog.String("run_id", runID),
		slog.String("signup_type", string(st)),
	)
	return nil
}

func (s *service) Cancel(ctx context.Context, runID string) error {
	ctx, span := s.tracer.Start(ctx, "SignupService.Cancel")
	defer span.End()

	if runID == "" {
		return ErrMissingRun
	}
	if err := s.api.CancelSignup(ctx, runID); err != nil {
		return fmt.Errorf("failed to cancel signup for run %s: %w", runID, err)
	}
	return nil
}
