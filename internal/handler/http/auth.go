package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/antonsh/stockscan/internal/logger"
	"github.com/antonsh/stockscan/internal/utils"
	"github.com/antonsh/stockscan/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		status, message := mapError(err)
		log.Err(err).Msg("user registration failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
		return
	}

	utils.WriteJSON(w, models.RegisterResponse{
		Message: "registered",
		User: models.RegisteredUser{
			ID:       registeredUser.ID,
			Username: registeredUser.Username,
			Email:    registeredUser.Email,
		},
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		status, message := mapError(err)
		log.Err(err).Msg("user login failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", foundUser.ID).Str("username", foundUser.Username).Msg("token issued")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{
		Token: token.SignedString,
		User: models.SessionUser{
			ID:        foundUser.ID,
			Username:  foundUser.Username,
			CompanyID: foundUser.CompanyID,
		},
	}, http.StatusOK)
}

// me reports the identity embedded in the presented token. It never touches
// the store: a username or company change becomes visible only after the
// user logs in again and receives a fresh token.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, okID := utils.GetUserIDFromContext(ctx)
	username, okName := utils.GetUsernameFromContext(ctx)
	if !okID || !okName {
		log.Error().Msg("authenticated identity missing from context")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.IdentityResponse{
		ID:       userID,
		Username: username,
	}, http.StatusOK)
}
