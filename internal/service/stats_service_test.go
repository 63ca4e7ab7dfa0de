package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"villavet/internal/model"
	"villavet/internal/repository"
)

func TestStatsService_Dashboard(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockRepo.On("List", mock.Anything, repository.ProductFilter{}).Return([]model.Product{
		{Name: "Royal Canin Adult", Category: "alimento", Price: decimal.RequireFromString("45.50"), Stock: 10},
		{Name: "Pelota", Category: "juguete", Price: decimal.RequireFromString("5.00"), Stock: 3},
		{Name: "Collar", Category: "juguete", Price: decimal.RequireFromString("12.25"), Stock: 8},
	}, nil)

	service := NewStatsService(mockRepo)
	stats, err := service.Dashboard(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 21, stats.TotalStock)
	// 45.50*10 + 5.00*3 + 12.25*8 = 568.00
	assert.True(t, stats.InventoryValue.Equal(decimal.RequireFromString("568.00")))
	assert.Equal(t, 1, stats.LowStock)
	assert.Equal(t, map[string]int{"alimento": 1, "juguete": 2}, stats.ByCategory)
	assert.Len(t, stats.MonthlySales, 6)
	for _, m := range stats.MonthlySales {
		assert.True(t, m.Total.IsPositive())
		assert.Regexp(t, `^\d{4}-\d{2}$`, m.Month)
	}
}

func TestStatsService_Dashboard_EmptyCatalog(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockRepo.On("List", mock.Anything, repository.ProductFilter{}).Return([]model.Product{}, nil)

	service := NewStatsService(mockRepo)
	stats, err := service.Dashboard(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, stats.TotalProducts)
	assert.True(t, stats.InventoryValue.IsZero())
	assert.Empty(t, stats.ByCategory)
}
