package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"avoska-api/internal/models"
	"avoska-api/internal/services"
	"avoska-api/internal/session"

	"github.com/rs/zerolog"
)

type AuthHandler struct {
	userService *services.UserService
	sessions    session.Store
	secret      []byte
	cookieName  string
	logger      zerolog.Logger
}

func NewAuthHandler(userService *services.UserService, sessions session.Store, secret []byte, cookieName string, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		sessions:    sessions,
		secret:      secret,
		cookieName:  cookieName,
		logger:      logger,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.Authenticate(r.Context(), req.Login, req.Password)
	if err == services.ErrInvalidCredentials {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = establishSession(r.Context(), w, h.sessions, h.secret, h.cookieName, strconv.Itoa(user.ID))
	if err != nil {
		h.logger.Error().Err(err).Int("user_id", user.ID).Msg("Failed to establish session")
		respondError(w, http.StatusInternalServerError, "Failed to establish session")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Login successful"})
}
