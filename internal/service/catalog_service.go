package service

import (
	"context"
	"fmt"

	"tradesouq/internal/model"
	"tradesouq/internal/repository"
	"tradesouq/internal/stock"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	productRepo repository.ProductRepository
	reserver    stock.Reserver
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalogue service.
func NewCatalogService(productRepo repository.ProductRepository, reserver stock.Reserver, logger zerolog.Logger) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		reserver:    reserver,
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

// GetAll retrieves products matching the filter.
func (s *catalogService) GetAll(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *catalogService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// SyncStock seeds the stock reserver with current catalogue levels.
func (s *catalogService) SyncStock(ctx context.Context) error {
	levels, err := s.productRepo.StockLevels(ctx)
	if err != nil {
		return fmt.Errorf("failed to load stock levels: %w", err)
	}

	for id, level := range levels {
		if err := s.reserver.SetLevel(ctx, id, level); err != nil {
			return fmt.Errorf("failed to seed stock level for %s: %w", id, err)
		}
	}

	s.logger.Info().Int("products", len(levels)).Msg("stock levels synced to reserver")
	return nil
}
