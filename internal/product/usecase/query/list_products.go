package query

import (
	"fmt"

	"github.com/warungpos/pos-service/internal/product/domain"
)

// ListProductsQuery represents the query to list products
type ListProductsQuery struct {
	Limit      int
	Offset     int
	Category   string // Optional: filter by category
	ActiveOnly bool   // Only products available for sale
	LowStock   bool   // Only products at or below their minimum stock
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(query ListProductsQuery) ([]domain.Product, error) {
	var products []domain.Product
	var err error

	// Set defaults
	if query.Limit <= 0 {
		query.Limit = 50
	}

	switch {
	case query.LowStock:
		products, err = h.repo.FindLowStock(query.Limit)
	case query.Category != "":
		products, err = h.repo.FindByCategory(query.Category, query.Limit, query.Offset)
	case query.ActiveOnly:
		products, err = h.repo.FindActive(query.Limit, query.Offset)
	default:
		products, err = h.repo.FindAll(query.Limit, query.Offset)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}
