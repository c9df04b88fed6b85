package importcsv

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/finla-app/finla/internal/http/respond"
	"github.com/finla-app/finla/internal/importer"
	"github.com/finla-app/finla/internal/session"
)

const maxUploadBytes = 10 << 20

type Handler struct {
	parser *importer.Parser
	svc    *session.Service
}

func NewHandler(parser *importer.Parser, svc *session.Service) *Handler {
	return &Handler{parser: parser, svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

// importCSV takes a multipart upload with a statement file and the
// account the rows belong to. Rows are applied independently: the
// response carries a per-row verdict and the accepted rows stay
// committed regardless of how many were rejected.
func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	accountID, err := uuid.Parse(r.FormValue("account_id"))
	if err != nil {
		http.Error(w, "account_id field is required", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := h.parser.Parse(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := make([]session.TransactionParams, 0, len(rows))
	for _, row := range rows {
		params = append(params, session.TransactionParams{
			AccountID:     accountID,
			Amount:        row.Amount,
			Description:   row.Description,
			Date:          row.Date,
			PaymentMethod: row.PaymentMethod,
		})
	}

	res, err := h.svc.ImportBatch(r.Context(), params)
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
