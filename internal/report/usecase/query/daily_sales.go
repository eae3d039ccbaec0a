package query

import (
	"time"

	"github.com/warungpos/pos-service/internal/report/domain"
)

// DailySalesQuery represents a revenue trend report request
type DailySalesQuery struct {
	From time.Time
	To   time.Time
}

// DailySalesHandler handles daily sales trend queries
type DailySalesHandler struct {
	repo domain.ReportRepository
}

// NewDailySalesHandler creates a new handler
func NewDailySalesHandler(repo domain.ReportRepository) *DailySalesHandler {
	return &DailySalesHandler{repo: repo}
}

// Handle executes the query. The trend report is storewide, so no
// cashier scoping is applied.
func (h *DailySalesHandler) Handle(q DailySalesQuery) ([]domain.DailySales, error) {
	if q.From.After(q.To) {
		return nil, domain.ErrInvalidDateRange
	}
	return h.repo.DailySales(q.From, q.To, 0)
}
