package authservice

import (
	"context"
	"fmt"
	"log/slog"

	authdomain "github.com/edenhub/eden-web/app/modules/auth/domain"
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// service implements the Service interface.
type service struct {
	api    API
	logger *slog.Logger
	tracer trace.Tracer
}

// NewService creates a new auth service.
func NewService(api API, logger *slog.Logger, tracer trace.Tracer) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		api:    api,
		logger: logger,
		tracer: tracer,
	}
}

// CurrentUser returns the user bound to the session in ctx.
// A 401 from the API becomes ErrNotSignedIn; other failures are returned as is.
func (s *service) CurrentUser(ctx context.Context) (*authdomain.User, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.CurrentUser")
	defer span.End()

	me, err := s.api.Me(ctx)
	if err != nil {
		if edenapi.IsUnauthorized(err) {
			return nil, ErrNotSignedIn
		}
		s.logger.WarnContext(ctx, "Failed to resolve current user",
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	if me.UserID == "" {
		return nil, ErrMalformedUser
	}

	span.SetAttributes(attribute.String("user_id", me.UserID))

	avatarOwner := me.ID
	if avatarOwner == "" {
		avatarOwner = me.UserID
	}

	return &authdomain.User{
		ID:        me.UserID,
		Username:  me.Username,
		AvatarURL: authdomain.AvatarURL(avatarOwner, me.Avatar),
		IsAdmin:   me.IsAdmin,
	}, nil
}

// LoginURL is the external OAuth start.
func (s *service) LoginURL() string {
	return s.api.LoginURL()
}

// Logout ends the session on the API side.
func (s *service) Logout(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "AuthService.Logout")
	defer span.End()

	if err := s.api.Logout(ctx); err != nil {
		s.logger.WarnContext(ctx, "Logout failed", slog.String("error", err.Error()))
		return fmt.Errorf("logout failed: %w", err)
	}
	return nil
}

// Profile returns the account summary and the user's characters.
// The character list is best effort; the account summary is required.
func (s *service) Profile(ctx context.Context) (*Profile, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.Profile")
	defer span.End()

	account, err := s.api.Profile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	profile := &Profile{Account: account}
	chars, err := s.api.ListCharacters(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to load characters for profile", slog.String("error", err.Error()))
		profile.CharactersErr = err.Error()
	} else {
		profile.Characters = chars
	}
	return profile, nil
}
