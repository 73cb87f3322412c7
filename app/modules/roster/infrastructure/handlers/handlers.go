package rosterhandlers

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"

	activitydomain "github.com/edenhub/eden-web/app/modules/activity/domain"
	rosterservice "github.com/edenhub/eden-web/app/modules/roster/application"
	rosterdomain "github.com/edenhub/eden-web/app/modules/roster/domain"
	rosterexport "github.com/edenhub/eden-web/app/modules/roster/infrastructure/export"
	runservice "github.com/edenhub/eden-web/app/modules/run/application"
	"github.com/edenhub/eden-web/app/shared/csrf"
	"github.com/edenhub/eden-web/app/shared/flash"
	"github.com/edenhub/eden-web/app/shared/httpx"
	"github.com/edenhub/eden-web/app/types"
	"github.com/edenhub/eden-web/app/web"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

const runsPath = "/admin/runs"

// DetailPath is the run detail page of runID.
func DetailPath(runID string) string {
	return runsPath + "/" + url.PathEscape(runID)
}

// RosterHandlers implements the Handlers interface.
type RosterHandlers struct {
	service  rosterservice.Service
	feed     Feed
	renderer Renderer
	logger   *slog.Logger
	tracer   trace.Tracer
}

// NewRosterHandlers creates a new RosterHandlers.
func NewRosterHandlers(service rosterservice.Service, feed Feed, renderer Renderer, logger *slog.Logger, tracer trace.Tracer) *RosterHandlers {
	return &RosterHandlers{
		service:  service,
		feed:     feed,
		renderer: renderer,
		logger:   logger,
		tracer:   tracer,
	}
}

// BoardView is the data of the roster_board fragment.
type BoardView struct {
	Board     *rosterdomain.Board
	Counts    rosterdomain.Counts
	Browser   rosterdomain.Browser
	Filter    rosterdomain.BrowserFilter
	Query     string
	CSRFToken string
	CSRFField string
}

// Detail is the data of the run detail page. Board is nil when the load failed.
type Detail struct {
	RunID    string
	Board    *BoardView
	Activity []activitydomain.Event
}

func (h *RosterHandlers) boardView(r *http.Request, board *rosterdomain.Board, filter rosterdomain.BrowserFilter) *BoardView {
	return &BoardView{
		Board:     board,
		Counts:    board.Counts(),
		Browser:   board.Browse(filter),
		Filter:    filter,
		Query:     detailQuery(board, filter),
		CSRFToken: h.renderer.CSRFToken(r),
		CSRFField: csrf.FormField,
	}
}

// detailQuery keeps the browser filter and the active difficulty across redirects.
func detailQuery(board *rosterdomain.Board, filter rosterdomain.BrowserFilter) string {
	q := filter.Query()
	if board != nil && board.Difficulty.IsValid() {
		q.Set("difficulty", board.Difficulty.Key())
	}
	return q.Encode()
}

func detailURL(runID string, board *rosterdomain.Board, filter rosterdomain.BrowserFilter) string {
	target := DetailPath(runID)
	if q := detailQuery(board, filter); q != "" {
		target += "?" + q
	}
	return target
}

// actor names the signed-in admin in activity events.
func actor(r *http.Request) string {
	if v := web.ViewerFrom(r.Context()); v != nil && v.Name != "" {
		return v.Name
	}
	return "admin"
}

// HandleDetail renders the roster grid, signup browser and activity feed.
// A failed load renders the page without a board and an error toast.
func (h *RosterHandlers) HandleDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RosterHandlers.HandleDetail")
	defer span.End()

	runID := chi.URLParam(r, "runID")
	q := r.URL.Query()
	difficulty, _ := types.ParseDifficulty(q.Get("difficulty"))
	filter := rosterdomain.ParseBrowserFilter(q)

	detail := Detail{RunID: runID}
	view := web.View{Title: "Run", Nav: "admin", Data: &detail}

	board, err := h.service.Load(ctx, runID, difficulty)
	switch {
	case errors.Is(err, runservice.ErrRunNotFound):
		flash.Write(w, r, flash.Error("Run not found"))
		http.Redirect(w, r, runsPath, http.StatusSeeOther)
		return
	case err != nil:
		h.logger.WarnContext(ctx, "Failed to load run detail",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
		n := flash.Error("Failed to load run data")
		view.Notice = &n
	default:
		detail.Board = h.boardView(r, board, filter)
		view.Title = board.Run.Title
	}

	if h.feed != nil {
		events, err := h.feed.Recent(ctx, runID, activitydomain.RecentLimit)
		if err != nil {
			h.logger.WarnContext(ctx, "Failed to load activity",
				slog.String("run_id", runID),
				slog.String("error", err.Error()),
			)
		}
		detail.Activity = events
	}

	h.renderer.Page(w, r, http.StatusOK, "run_detail", view)
}

// HandleDrop assigns the dragged character to the posted role and slot.
func (h *RosterHandlers) HandleDrop(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RosterHandlers.HandleDrop")
	defer span.End()

	runID := chi.URLParam(r, "runID")
	role, _ := types.ParseRole(r.PostFormValue("role"))
	slot := -1
	if raw := r.PostFormValue("slot"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			n = math.MaxInt
		}
		slot = n
	}

	board, err := h.service.Drop(ctx, runID, actor(r), rosterservice.Drop{
		Role:    role,
		Slot:    slot,
		Payload: r.PostFormValue("payload"),
	})

	code, n := http.StatusOK, flash.Success("Picked for roster.")
	if err != nil {
		code, n = h.failure(r, runID, "Failed to assign character", err, role, board)
	}
	h.respond(w, r, runID, board, code, n)
}

// HandleUnassign frees the slot of the posted character.
func (h *RosterHandlers) HandleUnassign(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RosterHandlers.HandleUnassign")
	defer span.End()

	runID := chi.URLParam(r, "runID")
	board, err := h.service.Unassign(ctx, runID, actor(r), r.PostFormValue("character_id"))

	code, n := http.StatusOK, flash.Success("Removed from roster.")
	if err != nil {
		code, n = h.failure(r, runID, "Failed to remove character", err, "", board)
	}
	h.respond(w, r, runID, board, code, n)
}

// HandleComplete marks the run completed.
func (h *RosterHandlers) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RosterHandlers.HandleComplete")
	defer span.End()

	runID := chi.URLParam(r, "runID")
	board, err := h.service.Complete(ctx, runID, actor(r))

	code, n := http.StatusOK, flash.Success("Run completed!")
	if err != nil {
		code, n = h.failure(r, runID, "Failed to complete run", err, "", board)
	}
	h.respond(w, r, runID, board, code, n)
}

// HandleAnnounce posts the roster to Discord. The outcome is only a toast.
func (h *RosterHandlers) HandleAnnounce(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RosterHandlers.HandleAnnounce")
	defer span.End()

	runID := chi.URLParam(r, "runID")
	mention, _ := strconv.ParseBool(r.PostFormValue("mention"))
	if r.PostFormValue("mention") == "on" {
		mention = true
	}

	code, n := http.StatusNoContent, flash.Success("Roster announced.")
	if err := h.service.Announce(ctx, runID, actor(r), mention); err != nil {
		h.logger.WarnContext(ctx, "Announce failed",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
		code, n = http.StatusBadGateway, flash.Error("Failed to announce roster")
	}

	if httpx.IsFetch(r) {
		flash.SetHeader(w, n)
		w.WriteHeader(code)
		return
	}
	flash.Write(w, r, n)
	http.Redirect(w, r, DetailPath(runID)+queryOf(r), http.StatusSeeOther)
}

// HandleExport downloads the session's board as a spreadsheet.
func (h *RosterHandlers) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RosterHandlers.HandleExport")
	defer span.End()

	runID := chi.URLParam(r, "runID")
	board, err := h.service.Current(ctx, runID)
	if err != nil {
		h.logger.WarnContext(ctx, "Export failed to load board",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
		flash.Write(w, r, flash.Error("Failed to load run data"))
		http.Redirect(w, r, DetailPath(runID), http.StatusSeeOther)
		return
	}

	var buf bytes.Buffer
	if err := rosterexport.Write(&buf, board); err != nil {
		h.logger.ErrorContext(ctx, "Failed to write roster export",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", rosterexport.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+rosterexport.Filename(board)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// failure maps a roster error to a status and toast. Board rule violations
// are 422, a missing run 404, everything else an upstream failure.
func (h *RosterHandlers) failure(r *http.Request, runID, fallback string, err error, role types.Role, board *rosterdomain.Board) (int, flash.Notice) {
	difficulty := ""
	if board != nil {
		difficulty = string(board.Difficulty)
	}

	switch {
	case errors.Is(err, rosterdomain.ErrRoleNotAllowed):
		if role == "" {
			return http.StatusUnprocessableEntity, flash.Error("Pick a role slot.")
		}
		return http.StatusUnprocessableEntity, flash.Error("Character cannot fill " + string(role) + ".")
	case errors.Is(err, rosterdomain.ErrAlreadyAssigned):
		return http.StatusUnprocessableEntity, flash.Error("Character is already on the roster.")
	case errors.Is(err, rosterdomain.ErrSlotOutOfRange):
		return http.StatusUnprocessableEntity, flash.Error("That slot does not exist.")
	case errors.Is(err, rosterdomain.ErrSlotOccupied):
		return http.StatusUnprocessableEntity, flash.Error("That slot is already taken.")
	case errors.Is(err, rosterdomain.ErrRoleFull):
		return http.StatusUnprocessableEntity, flash.Error("No free " + string(role) + " slot.")
	case errors.Is(err, rosterdomain.ErrCharacterLocked):
		return http.StatusUnprocessableEntity, flash.Error("Character is locked for " + difficulty + ".")
	case errors.Is(err, rosterdomain.ErrRunCompleted):
		return http.StatusConflict, flash.Error("Run is already completed.")
	case errors.Is(err, rosterdomain.ErrNotAssigned):
		return http.StatusUnprocessableEntity, flash.Error("Character is not on the roster.")
	case errors.Is(err, rosterdomain.ErrInvalidPayload):
		return http.StatusUnprocessableEntity, flash.Error("Could not read the dragged character.")
	case errors.Is(err, runservice.ErrRunNotFound):
		return http.StatusNotFound, flash.Error("Run not found")
	}

	h.logger.WarnContext(r.Context(), "Roster action failed",
		slog.String("run_id", runID),
		slog.String("error", err.Error()),
	)
	if board == nil {
		return http.StatusBadGateway, flash.Error("Failed to load run data")
	}
	return http.StatusBadGateway, flash.Error(fallback)
}

// respond re-renders the board for script fetches, or flashes and redirects form posts.
func (h *RosterHandlers) respond(w http.ResponseWriter, r *http.Request, runID string, board *rosterdomain.Board, code int, n flash.Notice) {
	filter := rosterdomain.ParseBrowserFilter(r.URL.Query())

	if httpx.IsFetch(r) {
		flash.SetHeader(w, n)
		if board == nil {
			w.WriteHeader(code)
			return
		}
		h.renderer.Fragment(w, r, code, "roster_board", h.boardView(r, board, filter))
		return
	}

	flash.Write(w, r, n)
	http.Redirect(w, r, detailURL(runID, board, filter), http.StatusSeeOther)
}

func queryOf(r *http.Request) string {
	if r.URL.RawQuery == "" {
		return ""
	}
	return "?" + r.URL.RawQuery
}
