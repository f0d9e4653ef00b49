package handlers

import (
	"net/http"

	"avoska-api/internal/services"

	"github.com/rs/zerolog"
)

type ProductHandler struct {
	productService *services.ProductService
	logger         zerolog.Logger
}

func NewProductHandler(productService *services.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// List is public: the catalog is readable without a session.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Ошибка сервера при получении списка продуктов")
		return
	}

	respondJSON(w, http.StatusOK, products)
}
