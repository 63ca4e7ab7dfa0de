package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"villavet/internal/repository"
)

const lowStockThreshold = 5

// MonthlySales is a single bar of the dashboard sales chart. Figures are
// mock values derived from the current inventory; there is no order
// subsystem feeding real sales yet.
type MonthlySales struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// DashboardStats aggregates the numbers shown on the admin dashboard.
type DashboardStats struct {
	TotalProducts  int             `json:"totalProducts"`
	TotalStock     int             `json:"totalStock"`
	InventoryValue decimal.Decimal `json:"inventoryValue"`
	LowStock       int             `json:"lowStock"`
	ByCategory     map[string]int  `json:"byCategory"`
	MonthlySales   []MonthlySales  `json:"monthlySales"`
}

// StatsService computes admin dashboard statistics.
type StatsService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type statsService struct {
	repo repository.ProductRepository
}

// NewStatsService creates a new stats service.
func NewStatsService(repo repository.ProductRepository) StatsService {
	return &statsService{repo: repo}
}

// Dashboard aggregates over the full catalog in a single pass.
func (s *statsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	products, err := s.repo.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		ByCategory: make(map[string]int),
	}
	for _, p := range products {
		stats.TotalProducts++
		stats.TotalStock += p.Stock
		stats.InventoryValue = stats.InventoryValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
		stats.ByCategory[p.Category]++
		if p.Stock < lowStockThreshold {
			stats.LowStock++
		}
	}
	stats.MonthlySales = mockMonthlySales(time.Now(), stats.InventoryValue)

	return stats, nil
}

// mockMonthlySales fabricates a deterministic six-month sales series scaled
// from the inventory value, oldest month first.
func mockMonthlySales(now time.Time, inventoryValue decimal.Decimal) []MonthlySales {
	factors := []int64{12, 15, 11, 18, 16, 20}
	sales := make([]MonthlySales, 0, len(factors))
	for i, f := range factors {
		month := now.AddDate(0, i-len(factors)+1, 0)
		sales = append(sales, MonthlySales{
			Month: month.Format("2006-01"),
			Total: inventoryValue.Mul(decimal.New(f, -2)).Round(2),
		})
	}
	return sales
}
