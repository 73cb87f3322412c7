package runhandlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	runservice "github.com/edenhub/eden-web/app/modules/run/application"
	rundomain "github.com/edenhub/eden-web/app/modules/run/domain"
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/shared/flash"
	"github.com/edenhub/eden-web/app/shared/paging"
	"github.com/edenhub/eden-web/app/web"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// ListPath is the admin run list.
const ListPath = "/admin/runs"

// RunHandlers implements the Handlers interface.
type RunHandlers struct {
	service  runservice.Service
	renderer Renderer
	loc      *time.Location
	logger   *slog.Logger
	tracer   trace.Tracer
}

// NewRunHandlers creates a new RunHandlers. Edit forms show schedules in loc.
func NewRunHandlers(service runservice.Service, renderer Renderer, loc *time.Location, logger *slog.Logger, tracer trace.Tracer) *RunHandlers {
	if loc == nil {
		loc = time.Local
	}
	return &RunHandlers{
		service:  service,
		renderer: renderer,
		loc:      loc,
		logger:   logger,
		tracer:   tracer,
	}
}

// HandleList renders the filtered, paginated run list. A failed load renders it empty.
func (h *RunHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RunHandlers.HandleList")
	defer span.End()

	q := r.URL.Query()
	filter := rundomain.ParseFilter(q)
	view := web.View{Title: "Runs", Nav: "admin"}

	listing, err := h.service.List(ctx, filter, paging.ParseNumber(q.Get("page")))
	if err != nil {
		h.logger.WarnContext(ctx, "Failed to load runs", slog.String("error", err.Error()))
		n := flash.Error("Failed to load data")
		view.Notice = &n
		listing = &runservice.Listing{Filter: filter, Runs: paging.Slice[edenapi.Run](nil, 1, paging.DefaultSize)}
	}
	view.Data = listing

	h.renderer.Page(w, r, http.StatusOK, "admin_runs", view)
}

// FormPage is the data of the run form page.
type FormPage struct {
	RunID   string
	Action  string
	Form    rundomain.Form
	Hours   []string
	Minutes []string
}

func (h *RunHandlers) renderForm(w http.ResponseWriter, r *http.Request, status int, page FormPage, msg string) {
	page.Hours = rundomain.Hours
	page.Minutes = rundomain.Minutes

	title := "New run"
	if page.RunID != "" {
		title = "Edit run"
	}
	view := web.View{Title: title, Nav: "admin", Data: page}
	if msg != "" {
		n := flash.Error(msg)
		view.Notice = &n
	}
	h.renderer.Page(w, r, status, "run_form", view)
}

// HandleNew renders the create form with default capacities.
func (h *RunHandlers) HandleNew(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, FormPage{Action: ListPath, Form: rundomain.NewForm()}, "")
}

// HandleCreate validates and schedules a run.
func (h *RunHandlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RunHandlers.HandleCreate")
	defer span.End()

	form := parseForm(r)
	run, err := h.service.Create(ctx, form)
	if err != nil {
		page := FormPage{Action: ListPath, Form: form}
		if msg := rundomain.FormMessage(err); msg != "" {
			h.renderForm(w, r, http.StatusUnprocessableEntity, page, msg)
			return
		}
		h.logger.WarnContext(ctx, "Create run failed", slog.String("error", err.Error()))
		h.renderForm(w, r, http.StatusBadGateway, page, "Failed to create run")
		return
	}

	flash.Write(w, r, flash.Success("Run created."))
	target := ListPath
	if run.ID != "" {
		target = ListPath + "/" + run.ID
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// HandleEdit renders the edit form prefilled from the run.
func (h *RunHandlers) HandleEdit(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RunHandlers.HandleEdit")
	defer span.End()

	runID := chi.URLParam(r, "runID")
	run, err := h.service.Get(ctx, runID)
	if err != nil {
		h.redirectMissing(w, r, err)
		return
	}

	h.renderForm(w, r, http.StatusOK, FormPage{
		RunID:  runID,
		Action: ListPath + "/" + runID + "/edit",
		Form:   rundomain.FormFromRun(*run, h.loc),
	}, "")
}

// HandleUpdate validates and saves the run.
func (h *RunHandlers) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RunHandlers.HandleUpdate")
	defer span.End()

	runID := chi.URLParam(r, "runID")
	form := parseForm(r)
	if _, err := h.service.Update(ctx, runID, form); err != nil {
		page := FormPage{RunID: runID, Action: ListPath + "/" + runID + "/edit", Form: form}
		if msg := rundomain.FormMessage(err); msg != "" {
			h.renderForm(w, r, http.StatusUnprocessableEntity, page, msg)
			return
		}
		if errors.Is(err, runservice.ErrRunNotFound) {
			h.redirectMissing(w, r, err)
			return
		}
		h.logger.WarnContext(ctx, "Update run failed",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
		h.renderForm(w, r, http.StatusBadGateway, page, "Failed to update run")
		return
	}

	flash.Write(w, r, flash.Success("Run updated."))
	http.Redirect(w, r, ListPath+"/"+runID, http.StatusSeeOther)
}

// HandleDelete removes the run.
func (h *RunHandlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RunHandlers.HandleDelete")
	defer span.End()

	runID := chi.URLParam(r, "runID")
	if err := h.service.Delete(ctx, runID); err != nil {
		h.logger.WarnContext(ctx, "Delete run failed",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
		flash.Write(w, r, flash.Error("Failed to delete run"))
	} else {
		flash.Write(w, r, flash.Success("Run deleted."))
	}
	http.Redirect(w, r, ListPath, http.StatusSeeOther)
}

func (h *RunHandlers) redirectMissing(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, runservice.ErrRunNotFound) {
		flash.Write(w, r, flash.Error("Run not found"))
	} else {
		h.logger.WarnContext(r.Context(), "Failed to load run", slog.String("error", err.Error()))
		flash.Write(w, r, flash.Error("Failed to load run data"))
	}
	http.Redirect(w, r, ListPath, http.StatusSeeOther)
}

func parseForm(r *http.Request) rundomain.Form {
	_ = r.ParseForm()
	f := r.PostForm
	return rundomain.Form{
		Title:      f.Get("title"),
		Difficulty: f.Get("difficulty"),
		Schedule: rundomain.Schedule{
			Date:    f.Get("date"),
			Hour:    f.Get("hour"),
			Minute:  f.Get("minute"),
			Natural: f.Get("when"),
		},
		RosterChannelID:  f.Get("roster_channel_id"),
		DiscordChannelID: f.Get("discord_channel_id"),
		EmbedText:        f.Get("embed_text"),
		TankCapacity:     f.Get("tank_capacity"),
		HealerCapacity:   f.Get("healer_capacity"),
		DPSCapacity:      f.Get("dps_capacity"),
	}
}
