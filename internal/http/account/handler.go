package account

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

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
	r.Delete("/{id}", h.remove)
}

type createRequest struct {
	Name           string   `json:"name"`
	BankName       string   `json:"bankName,omitempty"`
	UPIApps        []string `json:"upiApps,omitempty"`
	MinBalance     int64    `json:"minBalance,omitempty"`
	OpeningBalance int64    `json:"openingBalance,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	acct, err := h.svc.RegisterAccount(r.Context(), ledger.AccountParams{
		Name:           req.Name,
		BankName:       req.BankName,
		UPIApps:        req.UPIApps,
		MinBalance:     req.MinBalance,
		OpeningBalance: req.OpeningBalance,
	})
	if err != nil {
		if acct != nil && respond.Pending(err) {
			respond.JSON(w, http.StatusAccepted, acct)
			return
		}

		respond.Error(w, err)

		return
	}

	respond.JSON(w, http.StatusCreated, acct)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ov, err := h.svc.Overview(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, ov.Accounts)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.RemoveAccount(r.Context(), id); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
