package service

import (
	"context"
	"errors"
	"testing"

	"tradesouq/internal/model"
	"tradesouq/internal/repository"
	"tradesouq/internal/stock"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_GetAll(t *testing.T) {
	productRepo := new(MockProductRepository)
	svc := NewCatalogService(productRepo, stock.NewMemoryReserver(), zerolog.Nop())
	ctx := context.Background()

	filter := repository.ProductFilter{Category: "machinery", Limit: 20}
	expected := []model.Product{
		{ID: "p1", Name: model.LocalizedText{"en": "Industrial Pump"}, Price: 25, MOQ: 10, Stock: 500},
	}
	productRepo.On("GetAll", ctx, filter).Return(expected, nil)

	products, err := svc.GetAll(ctx, filter)

	require.NoError(t, err)
	assert.Equal(t, expected, products)
	productRepo.AssertExpectations(t)
}

func TestCatalogService_GetAll_RepositoryError(t *testing.T) {
	productRepo := new(MockProductRepository)
	svc := NewCatalogService(productRepo, stock.NewMemoryReserver(), zerolog.Nop())
	ctx := context.Background()

	productRepo.On("GetAll", ctx, repository.ProductFilter{}).Return(nil, errors.New("connection lost"))

	products, err := svc.GetAll(ctx, repository.ProductFilter{})
	require.Error(t, err)
	assert.Nil(t, products)
	assert.Contains(t, err.Error(), "failed to list products")
}

func TestCatalogService_GetByID(t *testing.T) {
	productRepo := new(MockProductRepository)
	svc := NewCatalogService(productRepo, stock.NewMemoryReserver(), zerolog.Nop())
	ctx := context.Background()

	expected := &model.Product{ID: "p1", Name: model.LocalizedText{"en": "Industrial Pump"}, Price: 25, MOQ: 10, Stock: 500}
	productRepo.On("GetByID", ctx, "p1").Return(expected, nil)

	product, err := svc.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, expected, product)
}

func TestCatalogService_SyncStock(t *testing.T) {
	productRepo := new(MockProductRepository)
	reserver := stock.NewMemoryReserver()
	svc := NewCatalogService(productRepo, reserver, zerolog.Nop())
	ctx := context.Background()

	productRepo.On("StockLevels", ctx).Return(map[string]int{"p1": 500, "p2": 3}, nil)

	err := svc.SyncStock(ctx)
	require.NoError(t, err)

	ok, err := reserver.Reserve(ctx, "p1", 500)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = reserver.Reserve(ctx, "p2", 4)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCatalogService_SyncStock_RepositoryError(t *testing.T) {
	productRepo := new(MockProductRepository)
	svc := NewCatalogService(productRepo, stock.NewMemoryReserver(), zerolog.Nop())
	ctx := context.Background()

	productRepo.On("StockLevels", ctx).Return(nil, errors.New("connection lost"))

	err := svc.SyncStock(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load stock levels")
}
