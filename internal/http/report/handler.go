package report

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

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
	r.Get("/overview", h.overview)
	r.Get("/budget", h.budget)
	r.Get("/daily", h.daily)
	r.Get("/categories", h.categories)
	r.Get("/insights", h.insights)
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.svc.Overview(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, ov)
}

func (h *Handler) budget(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.Budget(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, sum)
}

func (h *Handler) daily(w http.ResponseWriter, r *http.Request) {
	from, err := date.Parse(r.URL.Query().Get("from"))
	if err != nil {
		http.Error(w, "from: "+err.Error(), http.StatusBadRequest)
		return
	}

	to, err := date.Parse(r.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, "to: "+err.Error(), http.StatusBadRequest)
		return
	}

	totals, err := h.svc.DailyTotals(r.Context(), from, to)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, totals)
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	totals, err := h.svc.CategoryTotals(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, totals)
}

func (h *Handler) insights(w http.ResponseWriter, r *http.Request) {
	days := 0
	if s := r.URL.Query().Get("days"); s != "" {
		days, _ = strconv.Atoi(s)
	}

	ins, err := h.svc.Insights(r.Context(), days)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, ins)
}
