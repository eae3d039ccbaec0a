package query

import (
	"time"

	"github.com/warungpos/pos-service/internal/report/domain"
)

// TopProductsQuery represents a best-sellers report request
type TopProductsQuery struct {
	From  time.Time
	To    time.Time
	Limit int
}

// TopProductsHandler handles top products queries
type TopProductsHandler struct {
	repo domain.ReportRepository
}

// NewTopProductsHandler creates a new handler
func NewTopProductsHandler(repo domain.ReportRepository) *TopProductsHandler {
	return &TopProductsHandler{repo: repo}
}

// Handle executes the query
func (h *TopProductsHandler) Handle(q TopProductsQuery) ([]domain.TopProduct, error) {
	if q.From.After(q.To) {
		return nil, domain.ErrInvalidDateRange
	}
	if q.Limit <= 0 || q.Limit > 50 {
		q.Limit = 10
	}
	return h.repo.TopProducts(q.From, q.To, q.Limit)
}
