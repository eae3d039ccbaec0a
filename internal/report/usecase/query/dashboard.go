package query

import (
	"time"

	"github.com/warungpos/pos-service/internal/report/domain"
)

// DashboardQuery represents a dashboard request. UserID zero means
// storewide figures, non-zero scopes sales to that cashier.
type DashboardQuery struct {
	UserID uint
}

// DashboardHandler handles dashboard queries
type DashboardHandler struct {
	repo domain.ReportRepository
}

// NewDashboardHandler creates a new handler
func NewDashboardHandler(repo domain.ReportRepository) *DashboardHandler {
	return &DashboardHandler{repo: repo}
}

// Handle executes the query
func (h *DashboardHandler) Handle(q DashboardQuery) (*domain.DashboardStats, error) {
	stats, err := h.repo.DashboardStats(q.UserID)
	if err != nil {
		return nil, err
	}

	// The weekly trend carries the same cashier scoping as the headline
	// figures above it.
	now := time.Now()
	stats.WeeklySales, err = h.repo.DailySales(now.AddDate(0, 0, -6), now, q.UserID)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
