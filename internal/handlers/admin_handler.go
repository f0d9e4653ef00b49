package handlers

import (
	"encoding/json"
	"net/http"

	"avoska-api/internal/models"
	"avoska-api/internal/services"
	"avoska-api/internal/session"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type AdminHandler struct {
	orderService *services.OrderService
	sessions     session.Store
	secret       []byte
	cookieName   string
	username     string
	password     string
	logger       zerolog.Logger
}

func NewAdminHandler(orderService *services.OrderService, sessions session.Store, secret []byte, cookieName, username, password string, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		orderService: orderService,
		sessions:     sessions,
		secret:       secret,
		cookieName:   cookieName,
		username:     username,
		password:     password,
		logger:       logger,
	}
}

// Login checks the single configured credential pair and writes the
// admin sentinel into the session.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Username != h.username || req.Password != h.password {
		h.logger.Warn().Str("username", req.Username).Msg("Failed admin login attempt")
		respondError(w, http.StatusForbidden, "Неверный логин или пароль")
		return
	}

	err := establishSession(r.Context(), w, h.sessions, h.secret, h.cookieName, session.AdminSentinel)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to establish admin session")
		respondError(w, http.StatusInternalServerError, "Failed to establish session")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Успешная аутентификация"})
}

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListAll(r.Context())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	var req models.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.orderService.UpdateStatus(r.Context(), orderID, req.Status); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Статус заказа обновлен"})
}
