package query

import (
	"fmt"

	"github.com/warungpos/pos-service/internal/user/domain"
)

// GetStatsQuery represents the query to get user statistics (admin only)
type GetStatsQuery struct{}

// UserStats represents user statistics
type UserStats struct {
	TotalUsers   int64 `json:"total_users"`
	AdminCount   int64 `json:"admin_count"`
	CashierCount int64 `json:"cashier_count"`
	ActiveUsers  int64 `json:"active_users"`
}

// GetStatsHandler handles get stats query
type GetStatsHandler struct {
	repo domain.UserRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.UserRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the get stats query
func (h *GetStatsHandler) Handle(query GetStatsQuery) (*UserStats, error) {
	totalUsers, err := h.repo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	adminCount, err := h.repo.CountByRole(domain.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to count admins: %w", err)
	}

	cashierCount, err := h.repo.CountByRole(domain.RoleCashier)
	if err != nil {
		return nil, fmt.Errorf("failed to count cashiers: %w", err)
	}

	activeUsers, err := h.repo.CountActive()
	if err != nil {
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}

	return &UserStats{
		TotalUsers:   totalUsers,
		AdminCount:   adminCount,
		CashierCount: cashierCount,
		ActiveUsers:  activeUsers,
	}, nil
}
