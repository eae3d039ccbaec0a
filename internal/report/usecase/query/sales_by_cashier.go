package query

import (
	"time"

	"github.com/warungpos/pos-service/internal/report/domain"
)

// SalesByCashierQuery represents a per-cashier report request
type SalesByCashierQuery struct {
	From time.Time
	To   time.Time
}

// SalesByCashierHandler handles per-cashier report queries
type SalesByCashierHandler struct {
	repo domain.ReportRepository
}

// NewSalesByCashierHandler creates a new handler
func NewSalesByCashierHandler(repo domain.ReportRepository) *SalesByCashierHandler {
	return &SalesByCashierHandler{repo: repo}
}

// Handle executes the query
func (h *SalesByCashierHandler) Handle(q SalesByCashierQuery) ([]domain.CashierSales, error) {
	if q.From.After(q.To) {
		return nil, domain.ErrInvalidDateRange
	}
	return h.repo.SalesByCashier(q.From, q.To)
}
