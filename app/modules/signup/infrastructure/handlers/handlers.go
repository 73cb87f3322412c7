package signuphandlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	signupservice "github.com/edenhub/eden-web/app/modules/signup/application"
	"github.com/edenhub/eden-web/app/shared/flash"
	"github.com/edenhub/eden-web/app/types"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// RunsTabPath is where signup actions return to.
const RunsTabPath = "/dashboard?tab=runs"

// Handlers are the player signup routes.
type Handlers interface {
	HandleSignUp(w http.ResponseWriter, r *http.Request)
	HandleCancel(w http.ResponseWriter, r *http.Request)
}

// SignupHandlers implements the Handlers interface.
type SignupHandlers struct {
	service signupservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewSignupHandlers creates a new SignupHandlers.
func NewSignupHandlers(service signupservice.Service, logger *slog.Logger, tracer trace.Tracer) *SignupHandlers {
	return &SignupHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// HandleSignUp registers the user for the run with the posted signup type.
func (h *SignupHandlers) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "SignupHandlers.HandleSignUp")
	defer span.End()

	runID := chi.URLParam(r, "runID")
	signupType := types.SignupType(r.PostFormValue("type"))

	err := h.service.SignUp(ctx, runID, signupType)
	switch {
	case err == nil:
		label := strings.ToLower(string(signupType))
		flash.Write(w, r, flash.Success("Signed up as "+label+"."))
	case errors.Is(err, signupservice.ErrInvalidSignupType):
		flash.Write(w, r, flash.Error("Pick main, bench, alt or decline."))
	default:
		h.logger.WarnContext(ctx, "Signup failed",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
		flash.Write(w, r, flash.Error("Failed to sign up"))
	}

	http.Redirect(w, r, RunsTabPath, http.StatusSeeOther)
}

// HandleCancel withdraws the user's signup.
func (h *SignupHandlers) HandleCancel(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "SignupHandlers.HandleCancel")
	defer span.End()

	runID := chi.URLParam(r, "runID")
	if err := h.service.Cancel(ctx, runID); err != nil {
		h.logger.WarnContext(ctx, "Cancel signup failed",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
		flash.Write(w, r, flash.Error("Failed to cancel signup"))
	} else {
		flash.Write(w, r, flash.Success("Signup cancelled."))
	}

	http.Redirect(w, r, RunsTabPath, http.StatusSeeOther)
}
