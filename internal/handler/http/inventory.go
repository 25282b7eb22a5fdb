package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/antonsh/stockscan/internal/logger"
	"github.com/antonsh/stockscan/internal/store"
	"github.com/antonsh/stockscan/internal/utils"
	"github.com/antonsh/stockscan/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	companyID, err := parseOptionalInt64(r.URL.Query().Get("company_id"))
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid company_id"}, http.StatusBadRequest)
		return
	}

	limit, err := parseInt64Default(r.URL.Query().Get("limit"), 0)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid limit"}, http.StatusBadRequest)
		return
	}
	offset, err := parseInt64Default(r.URL.Query().Get("offset"), 0)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid offset"}, http.StatusBadRequest)
		return
	}

	items, err := h.services.InventoryService.List(ctx, companyID, r.URL.Query().Get("q"), limit, offset)
	if err != nil {
		status, message := mapError(err)
		log.Err(err).Msg("inventory list failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
		return
	}

	utils.WriteJSON(w, models.InventoryListResponse{Items: items}, http.StatusOK)
}

func (h *Handler) getInventoryItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	companyID, err := parseOptionalInt64(r.URL.Query().Get("company_id"))
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid company_id"}, http.StatusBadRequest)
		return
	}

	barcode := chi.URLParam(r, "barcode")

	item, err := h.services.InventoryService.Get(ctx, companyID, barcode)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			utils.WriteJSON(w, models.InventoryGetResponse{Found: false}, http.StatusNotFound)
			return
		}
		status, message := mapError(err)
		log.Err(err).Msg("inventory get failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
		return
	}

	utils.WriteJSON(w, models.InventoryGetResponse{Found: true, Item: &item}, http.StatusOK)
}

func (h *Handler) upsertInventoryItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if err := h.services.InventoryService.Upsert(ctx, req); err != nil {
		status, message := mapError(err)
		log.Err(err).Msg("inventory upsert failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
		return
	}

	utils.WriteJSON(w, models.UpsertResponse{OK: true}, http.StatusOK)
}

func (h *Handler) adjustInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.AdjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	item, err := h.services.InventoryService.Adjust(ctx, req)
	if err != nil {
		status, message := mapError(err)
		log.Err(err).Msg("inventory adjust failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
		return
	}

	utils.WriteJSON(w, models.AdjustResponse{OK: true, Item: item}, http.StatusOK)
}

// parseOptionalInt64 distinguishes an absent parameter (nil, nil) from a
// malformed one. Service-level validation decides whether absence is an error.
func parseOptionalInt64(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func parseInt64Default(raw string, fallback int64) (int64, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}
