package query

import (
	"context"
	"time"

	"github.com/warungpos/pos-service/internal/sale/domain"
)

// ListSalesQuery represents a query to list sales with filters
type ListSalesQuery struct {
	UserID        uint
	PaymentMethod string
	Status        string
	DateFrom      time.Time
	DateTo        time.Time
	Limit         int
	Offset        int
}

// ListSalesResult carries a page of sales plus the total match count
type ListSalesResult struct {
	Sales []domain.Sale `json:"sales"`
	Total int64         `json:"total"`
}

// ListSalesHandler handles sale listing queries
type ListSalesHandler struct {
	repo domain.SaleRepository
}

// NewListSalesHandler creates a new handler
func NewListSalesHandler(repo domain.SaleRepository) *ListSalesHandler {
	return &ListSalesHandler{repo: repo}
}

// Handle executes the query
func (h *ListSalesHandler) Handle(ctx context.Context, q ListSalesQuery) (*ListSalesResult, error) {
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 20
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	filter := domain.SaleFilter{
		UserID:        q.UserID,
		PaymentMethod: q.PaymentMethod,
		Status:        q.Status,
		DateFrom:      q.DateFrom,
		DateTo:        q.DateTo,
		Limit:         q.Limit,
		Offset:        q.Offset,
	}

	sales, err := h.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := h.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ListSalesResult{Sales: sales, Total: total}, nil
}
