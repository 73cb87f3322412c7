package characterhandlers

import (
	"errors"
	"log/slog"
	"net/http"

	characterservice "github.com/edenhub/eden-web/app/modules/character/application"
	characterdomain "github.com/edenhub/eden-web/app/modules/character/domain"
	signupdomain "github.com/edenhub/eden-web/app/modules/signup/domain"
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/shared/flash"
	"github.com/edenhub/eden-web/app/shared/httpx"
	"github.com/edenhub/eden-web/app/shared/paging"
	"github.com/edenhub/eden-web/app/types"
	"github.com/edenhub/eden-web/app/web"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// DashboardPath is the player dashboard.
const DashboardPath = "/dashboard"

// CharacterHandlers implements the Handlers interface.
type CharacterHandlers struct {
	service  characterservice.Service
	runs     RunsSource
	renderer Renderer
	logger   *slog.Logger
	tracer   trace.Tracer
}

// NewCharacterHandlers creates a new CharacterHandlers.
func NewCharacterHandlers(
	service characterservice.Service,
	runs RunsSource,
	renderer Renderer,
	logger *slog.Logger,
	tracer trace.Tracer,
) *CharacterHandlers {
	return &CharacterHandlers{
		service:  service,
		runs:     runs,
		renderer: renderer,
		logger:   logger,
		tracer:   tracer,
	}
}

// Dashboard is the data of the dashboard page.
type Dashboard struct {
	Tab        string
	Characters paging.Page[edenapi.Character]
	Summary    characterdomain.Summary
	Runs       paging.Page[signupdomain.Entry]
	RunCounts  signupdomain.Counts
}

// HandleDashboard renders the characters tab, or the runs tab for ?tab=runs.
// A failed load renders the tab empty with an error toast.
func (h *CharacterHandlers) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CharacterHandlers.HandleDashboard")
	defer span.End()

	q := r.URL.Query()
	page := paging.ParseNumber(q.Get("page"))
	data := Dashboard{Tab: "characters"}
	view := web.View{Title: "Dashboard", Nav: "dashboard"}

	if q.Get("tab") == "runs" {
		data.Tab = "runs"
		userID := ""
		if v := web.ViewerFrom(ctx); v != nil {
			userID = v.ID
		}
		mine, err := h.runs.MyRuns(ctx, userID)
		if err != nil {
			h.logger.WarnContext(ctx, "Failed to load runs", slog.String("error", err.Error()))
			view.Notice = notice(flash.Error("Failed to load runs"))
			mine = &signupdomain.MyRuns{}
		}
		data.Runs = paging.Slice(mine.Entries, page, paging.DefaultSize)
		data.RunCounts = mine.Counts
	} else {
		chars, err := h.service.List(ctx)
		if err != nil {
			h.logger.WarnContext(ctx, "Failed to load characters", slog.String("error", err.Error()))
			view.Notice = notice(flash.Error("Failed to load characters"))
		}
		data.Characters = paging.Slice(chars, page, paging.DefaultSize)
		data.Summary = characterdomain.Summarize(chars)
	}

	view.Data = data
	h.renderer.Page(w, r, http.StatusOK, "dashboard", view)
}

// FormPage is the data of the create/edit form page.
type FormPage struct {
	ID     string
	Action string
	Form   characterdomain.Form
}

func (h *CharacterHandlers) renderForm(w http.ResponseWriter, r *http.Request, status int, page FormPage, n *flash.Notice) {
	title := "New character"
	if page.ID != "" {
		title = "Edit character"
	}
	h.renderer.Page(w, r, status, "character_form", web.View{
		Title:  title,
		Nav:    "dashboard",
		Data:   page,
		Notice: n,
	})
}

// HandleNew renders an empty create form.
func (h *CharacterHandlers) HandleNew(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, FormPage{Action: "/dashboard/characters"}, nil)
}

// HandleCreate validates the form and registers the character.
func (h *CharacterHandlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CharacterHandlers.HandleCreate")
	defer span.End()

	form := parseForm(r)
	page := FormPage{Action: "/dashboard/characters", Form: form}

	if _, err := h.service.Create(ctx, form); err != nil {
		if msg := characterdomain.FormMessage(err); msg != "" {
			h.renderForm(w, r, http.StatusUnprocessableEntity, page, notice(flash.Error(msg)))
			return
		}
		h.logger.WarnContext(ctx, "Create character failed", slog.String("error", err.Error()))
		h.renderForm(w, r, http.StatusBadGateway, page, notice(flash.Error("Failed to add character")))
		return
	}

	flash.Write(w, r, flash.Success("Character added."))
	http.Redirect(w, r, DashboardPath, http.StatusSeeOther)
}

// HandleEdit renders the edit form prefilled from the character.
func (h *CharacterHandlers) HandleEdit(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CharacterHandlers.HandleEdit")
	defer span.End()

	id := chi.URLParam(r, "characterID")
	char, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, characterservice.ErrCharacterNotFound) {
			flash.Write(w, r, flash.Error("Character not found"))
		} else {
			h.logger.WarnContext(ctx, "Failed to load character", slog.String("error", err.Error()))
			flash.Write(w, r, flash.Error("Failed to load character"))
		}
		http.Redirect(w, r, DashboardPath, http.StatusSeeOther)
		return
	}

	h.renderForm(w, r, http.StatusOK, FormPage{
		ID:     id,
		Action: "/dashboard/characters/" + id,
		Form:   characterdomain.FormFromCharacter(*char),
	}, nil)
}

// HandleUpdate validates the form and saves the character.
func (h *CharacterHandlers) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CharacterHandlers.HandleUpdate")
	defer span.End()

	id := chi.URLParam(r, "characterID")
	form := parseForm(r)
	page := FormPage{ID: id, Action: "/dashboard/characters/" + id, Form: form}

	if _, err := h.service.Update(ctx, id, form); err != nil {
		if msg := characterdomain.FormMessage(err); msg != "" {
			h.renderForm(w, r, http.StatusUnprocessableEntity, page, notice(flash.Error(msg)))
			return
		}
		h.logger.WarnContext(ctx, "Update character failed",
			slog.String("character_id", id),
			slog.String("error", err.Error()),
		)
		h.renderForm(w, r, http.StatusBadGateway, page, notice(flash.Error("Failed to update character")))
		return
	}

	flash.Write(w, r, flash.Success("Character updated."))
	http.Redirect(w, r, DashboardPath, http.StatusSeeOther)
}

// HandleDelete removes the character.
func (h *CharacterHandlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CharacterHandlers.HandleDelete")
	defer span.End()

	id := chi.URLParam(r, "characterID")
	if err := h.service.Delete(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "Delete character failed",
			slog.String("character_id", id),
			slog.String("error", err.Error()),
		)
		flash.Write(w, r, flash.Error("Failed to delete character"))
	} else {
		flash.Write(w, r, flash.Success("Character deleted."))
	}
	http.Redirect(w, r, DashboardPath, http.StatusSeeOther)
}

// LockBadge is the data of the lock badge fragment.
type LockBadge struct {
	CharacterID string
	Difficulty  types.Difficulty
	Status      types.LockStatus
}

// HandleToggleLock flips the lock for the posted difficulty. Script fetches get the
// re-rendered badge with a toast header; plain posts redirect back to the dashboard.
func (h *CharacterHandlers) HandleToggleLock(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CharacterHandlers.HandleToggleLock")
	defer span.End()

	id := chi.URLParam(r, "characterID")
	difficulty, _ := types.ParseDifficulty(r.PostFormValue("difficulty"))

	status, err := h.service.ToggleLock(ctx, id, difficulty)

	code := http.StatusOK
	var n flash.Notice
	switch {
	case err == nil:
		n = flash.Success(string(difficulty) + " lock set to " + string(status) + ".")
	case errors.Is(err, characterservice.ErrLockNotToggleable):
		code = http.StatusConflict
		n = flash.Error("This lock is managed by the raid schedule.")
	case errors.Is(err, characterservice.ErrInvalidDifficulty), errors.Is(err, characterservice.ErrCharacterNotFound):
		code = http.StatusUnprocessableEntity
		n = flash.Error("Unknown character or difficulty")
	default:
		code = http.StatusBadGateway
		h.logger.WarnContext(ctx, "Toggle lock failed",
			slog.String("character_id", id),
			slog.String("error", err.Error()),
		)
		n = flash.Error("Failed to update lock")
	}

	if httpx.IsFetch(r) {
		flash.SetHeader(w, n)
		h.renderer.Fragment(w, r, code, "lock_badge", LockBadge{
			CharacterID: id,
			Difficulty:  difficulty,
			Status:      status,
		})
		return
	}

	flash.Write(w, r, n)
	http.Redirect(w, r, DashboardPath, http.StatusSeeOther)
}

func parseForm(r *http.Request) characterdomain.Form {
	_ = r.ParseForm()
	form := characterdomain.Form{
		Name:      r.PostForm.Get("name"),
		Class:     r.PostForm.Get("class"),
		ItemLevel: r.PostForm.Get("ilevel"),
		Roles:     r.PostForm["roles"],
		Specs:     make(map[string]string, len(types.Roles)),
	}
	for _, role := range types.Roles {
		if spec := r.PostForm.Get("spec_" + string(role)); spec != "" {
			form.Specs[string(role)] = spec
		}
	}
	return form
}

func notice(n flash.Notice) *flash.Notice {
	return &n
}
