package export

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/finla-app/finla/internal/http/respond"
	"github.com/finla-app/finla/internal/money"
	"github.com/finla-app/finla/internal/session"
)

type Handler struct {
	svc *session.Service
}

func NewHandler(svc *session.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/transactions.csv", h.transactionsCSV)
}

// transactionsCSV streams the full log as a CSV download, newest first,
// with amounts both in raw paise and formatted rupees.
func (h *Handler) transactionsCSV(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.Transactions(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"", time.Now().Format("20060102")))

	cw := csv.NewWriter(w)

	header := []string{"id", "date", "amount_paise", "amount", "category", "description", "payment_method"}
	if err := cw.Write(header); err != nil {
		slog.Error("failed to write export header", "error", err)
		return
	}

	for _, tx := range txs {
		rec := []string{
			tx.ID.String(),
			tx.Date.String(),
			strconv.FormatInt(tx.Amount, 10),
			money.FormatRupees(tx.Amount),
			string(tx.Category),
			tx.Description,
			tx.PaymentMethod,
		}

		if err := cw.Write(rec); err != nil {
			slog.Error("failed to write export row", "error", err)
			return
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		slog.Error("failed to flush export", "error", err)
	}
}
