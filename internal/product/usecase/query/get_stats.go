package query

import (
	"fmt"

	"github.com/warungpos/pos-service/internal/product/domain"
)

// GetStatsQuery represents the query to get product statistics
type GetStatsQuery struct{}

// ProductStats represents product statistics
type ProductStats struct {
	TotalProducts    int64 `json:"total_products"`
	ActiveProducts   int64 `json:"active_products"`
	LowStockProducts int64 `json:"low_stock_products"`
}

// GetStatsHandler handles get stats query
type GetStatsHandler struct {
	repo domain.ProductRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.ProductRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the get stats query
func (h *GetStatsHandler) Handle(query GetStatsQuery) (*ProductStats, error) {
	totalProducts, err := h.repo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to get product count: %w", err)
	}

	activeProducts, err := h.repo.CountActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get active product count: %w", err)
	}

	lowStockProducts, err := h.repo.CountLowStock()
	if err != nil {
		return nil, fmt.Errorf("failed to get low stock count: %w", err)
	}

	return &ProductStats{
		TotalProducts:    totalProducts,
		ActiveProducts:   activeProducts,
		LowStockProducts: lowStockProducts,
	}, nil
}
