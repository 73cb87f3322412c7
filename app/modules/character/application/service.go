package characterservice

import (
	"context"
	"fmt"
	"log/slog"

	characterdomain "github.com/edenhub/eden-web/app/modules/character/domain"
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/types"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// service implements the Service interface.
type service struct {
	api    API
	logger *slog.Logger
	tracer trace.Tracer
}

// NewService creates a new character service.
func NewService(api API, logger *slog.Logger, tracer trace.Tracer) Service {
	return &service{
		api:    api,
		logger: logger,
		tracer: tracer,
	}
}

func (s *service) List(ctx context.Context) ([]edenapi.Character, error) {
	ctx, span := s.tracer.Start(ctx, "CharacterService.List")
	defer span.End()

	chars, err := s.api.ListCharacters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	span.SetAttributes(attribute.Int("characters", len(chars)))
	return chars, nil
}

// Get finds a character in the user's list; the API has no single-character read.
func (s *service) Get(ctx context.Context, id string) (*edenapi.Character, error) {
	ctx, span := s.tracer.Start(ctx, "CharacterService.Get", trace.WithAttributes(
		attribute.String("character_id", id),
	))
	defer span.End()

	chars, err := s.api.ListCharacters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	for i := range chars {
		if chars[i].ID == id {
			return &chars[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrCharacterNotFound, id)
}

func (s *service) Create(ctx context.Context, form characterdomain.Form) (*edenapi.Character, error) {
	ctx, span := s.tracer.Start(ctx, "CharacterService.Create")
	defer span.End()

	v, err := form.Validate()
	if err != nil {
		return nil, err
	}

	created, err := s.api.CreateCharacter(ctx, v.Input())
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to create character",
			slog.String("class", v.Class),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to create character: %w", err)
	}

	s.logger.InfoContext(ctx, "Character created",
		slog.String("character_id", created.ID),
		slog.String("class", v.Class),
	)
	return &created, nil
}

func (s *service) Update(ctx context.Context, id string, form characterdomain.Form) (*edenapi.Character, error) {
	ctx, span := s.tracer.Start(ctx, "CharacterService.Update", trace.WithAttributes(
		attribute.String("character_id", id),
	))
	defer span.End()

	v, err := form.Validate()
	if err != nil {
		return nil, err
	}

	updated, err := s.api.UpdateCharacter(ctx, id, v.Update())
	if err != nil {
		if edenapi.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrCharacterNotFound, id)
		}
		return nil, fmt.Errorf("failed to update character: %w", err)
	}
	return &updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "CharacterService.Delete", trace.WithAttributes(
		attribute.String("character_id", id),
	))
	defer span.End()

	if err := s.api.DeleteCharacter(ctx, id); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	s.logger.InfoContext(ctx, "Character deleted", slog.String("character_id", id))
	return nil
}

func (s *service) ToggleLock(ctx context.Context, id string, difficulty types.Difficulty) (types.LockStatus, error) {
	ctx, span := s.tracer.Start(ctx, "CharacterService.ToggleLock", trace.WithAttributes(
		attribute.String("character_id", id),
		attribute.String("difficulty", string(difficulty)),
	))
	defer span.End()

	if !difficulty.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, difficulty)
	}

	char, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}

	current := char.Lock(difficulty)
	next, ok := characterdomain.NextLock(current)
	if !ok {
		return current.Status, fmt.Errorf("%w: %s is %s", ErrLockNotToggleable, difficulty, current.Status)
	}

	_, err = s.api.UpdateCharacterStatus(ctx, id, edenapi.CharacterStatusUpdate{
		Status:     next,
		Difficulty: difficulty.Key(),
	})
	if err != nil {
		return current.Status, fmt.Errorf("failed to update lock: %w", err)
	}
	return next, nil
}
