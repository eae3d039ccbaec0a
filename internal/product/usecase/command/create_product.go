package command

import (
	"fmt"
	"time"

	"github.com/warungpos/pos-service/internal/product/domain"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
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

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
	// Validation
	if cmd.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if cmd.SKU == "" {
		return nil, fmt.Errorf("SKU is required")
	}
	if cmd.CostPrice < 0 {
		return nil, fmt.Errorf("cost price cannot be negative")
	}
	if cmd.SellingPrice < 0 {
		return nil, fmt.Errorf("selling price cannot be negative")
	}
	if cmd.StockQuantity < 0 {
		return nil, fmt.Errorf("stock cannot be negative")
	}
	if cmd.MinStock < 0 {
		return nil, fmt.Errorf("minimum stock cannot be negative")
	}

	// Check if SKU already exists
	if existingProduct, _ := h.repo.FindBySKU(cmd.SKU); existingProduct != nil {
		return nil, fmt.Errorf("SKU already exists")
	}

	product := &domain.Product{
		Name:          cmd.Name,
		SKU:           cmd.SKU,
		Description:   cmd.Description,
		CostPrice:     cmd.CostPrice,
		SellingPrice:  cmd.SellingPrice,
		StockQuantity: cmd.StockQuantity,
		MinStock:      cmd.MinStock,
		Category:      cmd.Category,
		IsActive:      cmd.IsActive,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := h.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
