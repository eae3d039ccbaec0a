package command

import (
	"fmt"
	"time"

	"github.com/warungpos/pos-service/internal/product/domain"
)

// UpdateProductCommand represents the command to update a product
type UpdateProductCommand struct {
	ID            uint
	Name          string
	SKU           string
	Description   string
	CostPrice     float64
	SellingPrice  float64
	StockQuantity int
	MinStock      int
	Category      string
	IsActive      bool
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	// Validation
	if cmd.ID == 0 {
		return nil, fmt.Errorf("invalid product id")
	}

	// Check if product exists
	product, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("product not found")
	}

	// Update fields if provided
	if cmd.Name != "" {
		product.Name = cmd.Name
	}

	if cmd.Description != "" {
		product.Description = cmd.Description
	}

	if cmd.CostPrice >= 0 {
		product.CostPrice = cmd.CostPrice
	}

	if cmd.SellingPrice >= 0 {
		product.SellingPrice = cmd.SellingPrice
	}

	if cmd.StockQuantity >= 0 {
		product.StockQuantity = cmd.StockQuantity
	}

	if cmd.MinStock >= 0 {
		product.MinStock = cmd.MinStock
	}

	if cmd.Category != "" {
		product.Category = cmd.Category
	}

	if cmd.SKU != "" {
		// Check if SKU is already taken by another product
		if existingProduct, _ := h.repo.FindBySKU(cmd.SKU); existingProduct != nil && existingProduct.ID != cmd.ID {
			return nil, fmt.Errorf("SKU already exists")
		}
		product.SKU = cmd.SKU
	}

	product.IsActive = cmd.IsActive
	product.UpdatedAt = time.Now()

	if err := h.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
