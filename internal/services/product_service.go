package services

import (
	"context"

	"avoska-api/internal/models"
	"avoska-api/internal/store"

	"github.com/rs/zerolog"
)

type ProductService struct {
	products store.ProductStore
	logger   zerolog.Logger
}

func NewProductService(products store.ProductStore, logger zerolog.Logger) *ProductService {
	return &ProductService{
		products: products,
		logger:   logger,
	}
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error listing products")
		return nil, err
	}
	return products, nil
}
