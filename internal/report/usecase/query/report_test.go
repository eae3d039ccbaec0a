package query

import (
	"errors"
	"testing"
	"time"

	"github.com/warungpos/pos-service/internal/report/domain"
)

// fakeReportRepo records the arguments of the last call so tests can
// assert what reaches the repository.
type fakeReportRepo struct {
	lastFrom    time.Time
	lastTo      time.Time
	lastLimit   int
	lastUserID  uint
	dailyUserID uint
}

func (f *fakeReportRepo) SalesSummary(from, to time.Time) (*domain.SalesSummary, error) {
	f.lastFrom, f.lastTo = from, to
	return &domain.SalesSummary{TotalTransactions: 3, TotalRevenue: 90000, AverageSale: 30000}, nil
}

func (f *fakeReportRepo) TopProducts(from, to time.Time, limit int) ([]domain.TopProduct, error) {
	f.lastFrom, f.lastTo, f.lastLimit = from, to, limit
	return []domain.TopProduct{{ProductID: 1, ProductName: "Kopi Susu", QuantitySold: 12}}, nil
}

func (f *fakeReportRepo) SalesByCashier(from, to time.Time) ([]domain.CashierSales, error) {
	f.lastFrom, f.lastTo = from, to
	return nil, nil
}

func (f *fakeReportRepo) DailySales(from, to time.Time, userID uint) ([]domain.DailySales, error) {
	f.lastFrom, f.lastTo, f.dailyUserID = from, to, userID
	return []domain.DailySales{{Date: "2025-03-01", Transactions: 1, Revenue: 15000}}, nil
}

func (f *fakeReportRepo) DashboardStats(userID uint) (*domain.DashboardStats, error) {
	f.lastUserID = userID
	return &domain.DashboardStats{TodayTransactions: 2, TodayRevenue: 50000}, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestSalesSummary(t *testing.T) {
	repo := &fakeReportRepo{}
	handler := NewSalesSummaryHandler(repo)

	summary, err := handler.Handle(SalesSummaryQuery{From: date(2025, 3, 1), To: date(2025, 3, 31)})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if summary.TotalTransactions != 3 {
		t.Errorf("TotalTransactions = %d, want 3", summary.TotalTransactions)
	}
	if !repo.lastFrom.Equal(date(2025, 3, 1)) || !repo.lastTo.Equal(date(2025, 3, 31)) {
		t.Errorf("range passed through = [%v, %v]", repo.lastFrom, repo.lastTo)
	}
}

func TestSalesSummaryInvalidRange(t *testing.T) {
	handler := NewSalesSummaryHandler(&fakeReportRepo{})

	_, err := handler.Handle(SalesSummaryQuery{From: date(2025, 3, 31), To: date(2025, 3, 1)})
	if !errors.Is(err, domain.ErrInvalidDateRange) {
		t.Errorf("Handle() error = %v, want ErrInvalidDateRange", err)
	}
}

func TestTopProductsDefaultLimit(t *testing.T) {
	repo := &fakeReportRepo{}
	handler := NewTopProductsHandler(repo)

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero defaults", 0, 10},
		{"negative defaults", -5, 10},
		{"over cap defaults", 500, 10},
		{"explicit kept", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler.Handle(TopProductsQuery{From: date(2025, 3, 1), To: date(2025, 3, 31), Limit: tt.limit})
			if err != nil {
				t.Fatalf("Handle() error = %v", err)
			}
			if repo.lastLimit != tt.want {
				t.Errorf("limit = %d, want %d", repo.lastLimit, tt.want)
			}
		})
	}
}

func TestDailySalesInvalidRange(t *testing.T) {
	handler := NewDailySalesHandler(&fakeReportRepo{})

	_, err := handler.Handle(DailySalesQuery{From: date(2025, 3, 2), To: date(2025, 3, 1)})
	if !errors.Is(err, domain.ErrInvalidDateRange) {
		t.Errorf("Handle() error = %v, want ErrInvalidDateRange", err)
	}
}

func TestDashboardScoping(t *testing.T) {
	repo := &fakeReportRepo{}
	handler := NewDashboardHandler(repo)

	if _, err := handler.Handle(DashboardQuery{}); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if repo.lastUserID != 0 {
		t.Errorf("storewide query passed userID %d, want 0", repo.lastUserID)
	}

	if _, err := handler.Handle(DashboardQuery{UserID: 7}); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if repo.lastUserID != 7 {
		t.Errorf("scoped query passed userID %d, want 7", repo.lastUserID)
	}
}

func TestDashboardWeeklySalesScoping(t *testing.T) {
	repo := &fakeReportRepo{}
	handler := NewDashboardHandler(repo)

	// A cashier's dashboard must not leak the storewide weekly trend
	stats, err := handler.Handle(DashboardQuery{UserID: 7})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if repo.dailyUserID != 7 {
		t.Errorf("weekly trend queried with userID %d, want 7", repo.dailyUserID)
	}
	if len(stats.WeeklySales) != 1 {
		t.Fatalf("WeeklySales has %d rows, want 1", len(stats.WeeklySales))
	}
	if want := repo.lastTo.AddDate(0, 0, -6); !repo.lastFrom.Equal(want) {
		t.Errorf("weekly window starts %v, want six days back from %v", repo.lastFrom, repo.lastTo)
	}

	if _, err := handler.Handle(DashboardQuery{}); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if repo.dailyUserID != 0 {
		t.Errorf("storewide weekly trend queried with userID %d, want 0", repo.dailyUserID)
	}
}
