package http

import (
	"net/http"

	"github.com/antonsh/stockscan/internal/utils"
)

type healthResponse struct {
	OK bool `json:"ok"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, healthResponse{OK: true}, http.StatusOK)
}
