package rosterservice

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"

	activitydomain "github.com/edenhub/eden-web/app/modules/activity/domain"
	rosterdomain "github.com/edenhub/eden-web/app/modules/roster/domain"
	rosterstore "github.com/edenhub/eden-web/app/modules/roster/infrastructure/store"
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/types"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// service implements the Service interface.
type service struct {
	api      API
	runs     Runs
	activity Activity
	store    *rosterstore.Store
	logger   *slog.Logger
	tracer   trace.Tracer
}

// NewService creates a new roster service.
func NewService(api API, runs Runs, activity Activity, store *rosterstore.Store, logger *slog.Logger, tracer trace.Tracer) Service {
	return &service{
		api:      api,
		runs:     runs,
		activity: activity,
		store:    store,
		logger:   logger,
		tracer:   tracer,
	}
}

// keyFor scopes boards to the caller's session without keeping the raw cookie.
func keyFor(ctx context.Context, runID string) rosterstore.Key {
	session, _ := edenapi.SessionFrom(ctx)
	sum := sha256.Sum256([]byte(session))
	return rosterstore.Key{Session: hex.EncodeToString(sum[:]), RunID: runID}
}

func (s *service) Load(ctx context.Context, runID string, difficulty types.Difficulty) (*rosterdomain.Board, error) {
	ctx, span := s.tracer.Start(ctx, "RosterService.Load", trace.WithAttributes(
		attribute.String("run_id", runID),
	))
	defer span.End()

	var (
		run     *edenapi.Run
		roster  []edenapi.RosterSlot
		signups []edenapi.Signup
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		run, err = s.runs.Get(gctx, runID)
		if err != nil {
			return fmt.Errorf("failed to load run: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		roster, err = s.api.GetRoster(gctx, runID)
		if err != nil {
			return fmt.Errorf("failed to load roster: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		signups, err = s.api.ListSignups(gctx, runID)
		if err != nil {
			return fmt.Errorf("failed to load signups: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	board := rosterdomain.NewBoard(*run, difficulty, roster, signups)
	key := keyFor(ctx, runID)
	if previous, ok := s.store.Get(key); ok && previous.Completed {
		board.KeepCompletion(previous)
	}
	span.SetAttributes(
		attribute.String("difficulty", board.Difficulty.Key()),
		attribute.Int("signups", len(signups)),
	)
	s.store.Put(key, board)
	return board, nil
}

func (s *service) Current(ctx context.Context, runID string) (*rosterdomain.Board, error) {
	if board, ok := s.store.Get(keyFor(ctx, runID)); ok {
		return board, nil
	}
	return s.Load(ctx, runID, "")
}

func (s *service) Drop(ctx context.Context, runID, actor string, drop Drop) (*rosterdomain.Board, error) {
	ctx, span := s.tracer.Start(ctx, "RosterService.Drop", trace.WithAttributes(
		attribute.String("run_id", runID),
		attribute.String("role", string(drop.Role)),
		attribute.Int("slot", drop.Slot),
	))
	defer span.End()

	board, err := s.Current(ctx, runID)
	if err != nil {
		return nil, err
	}

	payload, err := rosterdomain.ParsePayload(drop.Payload)
	if err != nil {
		return board, err
	}

	previous := board.Clone()
	if _, err := board.Assign(drop.Role, drop.Slot, payload); err != nil {
		return previous, err
	}

	key := keyFor(ctx, runID)
	s.store.Put(key, board)

	_, err = s.api.AddRoster(ctx, runID, edenapi.RosterInput{
		UserID:       payload.PlayerID,
		CharacterID:  payload.CharacterID,
		AssignedRole: drop.Role,
	})
	if err != nil {
		s.store.Put(key, previous)
		s.logger.WarnContext(ctx, "Roster add failed, board reverted",
			slog.String("run_id", runID),
			slog.String("character_id", payload.CharacterID),
			slog.String("error", err.Error()),
		)
		return previous, fmt.Errorf("failed to add to roster: %w", err)
	}

	s.record(ctx, runID, actor, activitydomain.KindRosterAssigned,
		fmt.Sprintf("%s (%s) as %s", payload.CharName, payload.PlayerName, drop.Role))
	return board, nil
}

func (s *service) Unassign(ctx context.Context, runID, actor, characterID string) (*rosterdomain.Board, error) {
	ctx, span := s.tracer.Start(ctx, "RosterService.Unassign", trace.WithAttributes(
		attribute.String("run_id", runID),
		attribute.String("character_id", characterID),
	))
	defer span.End()

	board, err := s.Current(ctx, runID)
	if err != nil {
		return nil, err
	}

	previous := board.Clone()
	removed, role, err := board.Unassign(characterID)
	if err != nil {
		return previous, err
	}

	key := keyFor(ctx, runID)
	s.store.Put(key, board)

	if err := s.api.RemoveRoster(ctx, runID, characterID); err != nil {
		s.store.Put(key, previous)
		s.logger.WarnContext(ctx, "Roster remove failed, board reverted",
			slog.String("run_id", runID),
			slog.String("character_id", characterID),
			slog.String("error", err.Error()),
		)
		return previous, fmt.Errorf("failed to remove from roster: %w", err)
	}

	s.record(ctx, runID, actor, activitydomain.KindRosterRemoved,
		fmt.Sprintf("%s (%s) from %s", removed.CharName, removed.PlayerName, role))
	return board, nil
}

func (s *service) Complete(ctx context.Context, runID, actor string) (*rosterdomain.Board, error) {
	ctx, span := s.tracer.Start(ctx, "RosterService.Complete", trace.WithAttributes(
		attribute.String("run_id", runID),
	))
	defer span.End()

	board, err := s.Current(ctx, runID)
	if err != nil {
		return nil, err
	}
	if board.Completed {
		return board, rosterdomain.ErrRunCompleted
	}

	if _, err := s.api.UpdateRunStatus(ctx, runID, types.RunCompleted); err != nil {
		return board, fmt.Errorf("failed to complete run: %w", err)
	}

	board.MarkCompleted()
	s.store.Put(keyFor(ctx, runID), board)

	counts := board.Counts()
	s.record(ctx, runID, actor, activitydomain.KindRunCompleted,
		fmt.Sprintf("%d of %d slots filled", counts.Assigned, counts.Total))
	return board, nil
}

func (s *service) Announce(ctx context.Context, runID, actor string, mention bool) error {
	ctx, span := s.tracer.Start(ctx, "RosterService.Announce", trace.WithAttributes(
		attribute.String("run_id", runID),
		attribute.Bool("mention", mention),
	))
	defer span.End()

	if err := s.api.AnnounceRun(ctx, runID, mention); err != nil {
		return fmt.Errorf("failed to announce run: %w", err)
	}

	detail := "without mention"
	if mention {
		detail = "with mention"
	}
	s.record(ctx, runID, actor, activitydomain.KindRunAnnounced, detail)
	return nil
}

// record publishes an activity event. Failures never fail the action.
func (s *service) record(ctx context.Context, runID, actor string, kind activitydomain.Kind, detail string) {
	if s.activity == nil {
		return
	}
	if err := s.activity.Record(ctx, runID, actor, kind, detail); err != nil {
		s.logger.WarnContext(ctx, "Failed to record activity",
			slog.String("run_id", runID),
			slog.String("kind", string(kind)),
			slog.String("error", err.Error()),
		)
	}
}
