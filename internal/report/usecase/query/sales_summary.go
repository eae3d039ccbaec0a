package query

import (
	"time"

	"github.com/warungpos/pos-service/internal/report/domain"
)

// SalesSummaryQuery represents a sales summary report request
type SalesSummaryQuery struct {
	From time.Time
	To   time.Time
}

// SalesSummaryHandler handles sales summary queries
type SalesSummaryHandler struct {
	repo domain.ReportRepository
}

// NewSalesSummaryHandler creates a new handler
func NewSalesSummaryHandler(repo domain.ReportRepository) *SalesSummaryHandler {
	return &SalesSummaryHandler{repo: repo}
}

// Handle executes the query
func (h *SalesSummaryHandler) Handle(q SalesSummaryQuery) (*domain.SalesSummary, error) {
	if q.From.After(q.To) {
		return nil, domain.ErrInvalidDateRange
	}
	return h.repo.SalesSummary(q.From, q.To)
}
