package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"avoska-api/internal/middleware"
	"avoska-api/internal/models"
	"avoska-api/internal/services"

	"github.com/rs/zerolog"
)

type OrderHandler struct {
	orderService *services.OrderService
	logger       zerolog.Logger
}

func NewOrderHandler(orderService *services.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// List returns the caller's orders with their enriched items. An admin
// session passes the guard but owns no orders, so it gets an empty
// list.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetSessionUser(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orders, err := h.orderService.ListForUser(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	sessionUser, ok := middleware.GetSessionUser(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	userID, err := strconv.Atoi(sessionUser)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.orderService.Create(r.Context(), userID, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"message": "Order placed successfully"})
}
