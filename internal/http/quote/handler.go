package quote

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finla-app/finla/internal/date"
	"github.com/finla-app/finla/internal/http/respond"
	"github.com/finla-app/finla/internal/quotes"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.daily)
	r.Get("/week", h.week)
	r.Get("/categories", h.categories)
	r.Get("/search", h.search)
}

func (h *Handler) daily(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, quotes.ForDay(date.Today()))
}

func (h *Handler) week(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, quotes.Week(date.Today()))
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, quotes.Categories())
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		http.Error(w, "q parameter is required", http.StatusBadRequest)
		return
	}

	respond.JSON(w, http.StatusOK, quotes.Search(q))
}
