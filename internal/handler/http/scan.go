package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/antonsh/stockscan/internal/logger"
	"github.com/antonsh/stockscan/internal/service"
	"github.com/antonsh/stockscan/internal/utils"
	"github.com/antonsh/stockscan/models"
)

// scan classifies a scanned barcode: local inventory first, then the
// external catalog, and finally a structured not_in_catalog result that
// suggests toggling the workflow mode.
func (h *Handler) scan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	result, err := h.services.ScanService.Resolve(ctx, req)
	if err != nil {
		var notInCatalog *service.NotInCatalogError
		if errors.As(err, &notInCatalog) {
			utils.WriteJSON(w, models.ScanNotFoundResponse{
				Error:      "not_in_catalog",
				Barcode:    notInCatalog.Barcode,
				Mode:       notInCatalog.Mode,
				Suggestion: notInCatalog.Suggestion(),
			}, http.StatusNotFound)
			return
		}

		status, message := mapError(err)
		log.Err(err).Msg("scan resolution failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
