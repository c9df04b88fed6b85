package transaction

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/finla-app/finla/internal/category"
	"github.com/finla-app/finla/internal/date"
	"github.com/finla-app/finla/internal/http/respond"
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
	r.Post("/{id}/correct", h.correct)
}

type createRequest struct {
	AccountID     uuid.UUID  `json:"accountId"`
	Amount        int64      `json:"amount"`
	Category      string     `json:"category,omitempty"`
	Description   string     `json:"description"`
	Date          string     `json:"date,omitempty"`
	PaymentMethod string     `json:"paymentMethod,omitempty"`
	GoalID        *uuid.UUID `json:"goalId,omitempty"`
}

func (r createRequest) params() (session.TransactionParams, error) {
	p := session.TransactionParams{
		AccountID:     r.AccountID,
		Amount:        r.Amount,
		Category:      category.Category(r.Category),
		Description:   r.Description,
		PaymentMethod: r.PaymentMethod,
		GoalID:        r.GoalID,
	}

	if r.Date != "" {
		day, err := date.Parse(r.Date)
		if err != nil {
			return p, err
		}

		p.Date = day
	}

	return p, nil
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := req.params()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.svc.AddTransaction(r.Context(), p)
	if err != nil {
		// An accepted transaction with a failed write is reported as
		// accepted: the session holds it for retry.
		if res != nil && respond.Pending(err) {
			respond.JSON(w, http.StatusAccepted, res)
			return
		}

		respond.Error(w, err)

		return
	}

	respond.JSON(w, http.StatusCreated, res)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.Transactions(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, txs)
}

func (h *Handler) correct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := req.params()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.svc.CorrectTransaction(r.Context(), id, p)
	if err != nil {
		if res != nil && respond.Pending(err) {
			respond.JSON(w, http.StatusAccepted, res)
			return
		}

		respond.Error(w, err)

		return
	}

	respond.JSON(w, http.StatusCreated, res)
}
