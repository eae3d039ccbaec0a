package query

import (
	"context"

	"github.com/warungpos/pos-service/internal/sale/domain"
)

// GetSaleQuery represents a query to get a sale by ID
type GetSaleQuery struct {
	ID uint
}

// GetSaleHandler handles get sale queries
type GetSaleHandler struct {
	repo domain.SaleRepository
}

// NewGetSaleHandler creates a new handler
func NewGetSaleHandler(repo domain.SaleRepository) *GetSaleHandler {
	return &GetSaleHandler{repo: repo}
}

// Handle executes the query
func (h *GetSaleHandler) Handle(ctx context.Context, q GetSaleQuery) (*domain.Sale, error) {
	return h.repo.FindByID(ctx, q.ID)
}

// GetSaleByInvoiceQuery looks a sale up by its invoice number
type GetSaleByInvoiceQuery struct {
	InvoiceNumber string
}

// GetSaleByInvoiceHandler handles invoice lookups
type GetSaleByInvoiceHandler struct {
	repo domain.SaleRepository
}

// NewGetSaleByInvoiceHandler creates a new handler
func NewGetSaleByInvoiceHandler(repo domain.SaleRepository) *GetSaleByInvoiceHandler {
	return &GetSaleByInvoiceHandler{repo: repo}
}

// Handle executes the query
func (h *GetSaleByInvoiceHandler) Handle(ctx context.Context, q GetSaleByInvoiceQuery) (*domain.Sale, error) {
	return h.repo.FindByInvoiceNumber(ctx, q.InvoiceNumber)
}
