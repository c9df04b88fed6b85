package goal

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/finla-app/finla/internal/date"
	"github.com/finla-app/finla/internal/http/respond"
	"github.com/finla-app/finla/internal/ledger"
	"github.com/finla-app/finla/internal/session"
)

type Handler struct {
	svc *session.Service
}

func NewHandler(svc *session.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Delete("/{id}", h.abandon)
}

type createRequest struct {
	Name         string `json:"name"`
	TargetAmount int64  `json:"targetAmount"`
	TargetDate   string `json:"targetDate"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	target, err := date.Parse(req.TargetDate)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g, err := h.svc.CreateGoal(r.Context(), ledger.GoalParams{
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		TargetDate:   target,
	})
	if err != nil {
		if g != nil && respond.Pending(err) {
			respond.JSON(w, http.StatusAccepted, g)
			return
		}

		respond.Error(w, err)

		return
	}

	respond.JSON(w, http.StatusCreated, g)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ov, err := h.svc.Overview(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, ov.Goals)
}

func (h *Handler) abandon(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.AbandonGoal(r.Context(), id); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
