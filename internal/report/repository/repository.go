package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/warungpos/pos-service/internal/report/domain"
	saledomain "github.com/warungpos/pos-service/internal/sale/domain"
)

// GormReportRepository implements ReportRepository with aggregate queries
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GORM report repository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// dayRange converts an inclusive [from, to] date pair into a half-open
// [start, end) timestamp window covering whole days.
func dayRange(from, to time.Time) (time.Time, time.Time) {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location()).AddDate(0, 0, 1)
	return start, end
}

// completedSales scopes a query to committed sales inside the window
func (r *GormReportRepository) completedSales(start, end time.Time) *gorm.DB {
	return r.db.Model(&saledomain.Sale{}).
		Where("status = ?", saledomain.StatusCompleted).
		Where("created_at >= ? AND created_at < ?", start, end)
}

// SalesSummary aggregates completed sales over the date range
func (r *GormReportRepository) SalesSummary(from, to time.Time) (*domain.SalesSummary, error) {
	start, end := dayRange(from, to)

	var summary domain.SalesSummary
	err := r.completedSales(start, end).
		Select(`COUNT(*) AS total_transactions,
			COALESCE(SUM(total_amount), 0) AS total_revenue,
			COALESCE(SUM(discount_amount), 0) AS total_discount,
			COALESCE(SUM(CASE WHEN payment_method = 'cash' THEN total_amount ELSE 0 END), 0) AS cash_revenue,
			COALESCE(SUM(CASE WHEN payment_method = 'transfer' THEN total_amount ELSE 0 END), 0) AS transfer_revenue`).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}

	if summary.TotalTransactions > 0 {
		summary.AverageSale = summary.TotalRevenue / float64(summary.TotalTransactions)
	}
	return &summary, nil
}

// TopProducts returns the best-selling products by quantity
func (r *GormReportRepository) TopProducts(from, to time.Time, limit int) ([]domain.TopProduct, error) {
	start, end := dayRange(from, to)
	if limit <= 0 {
		limit = 10
	}

	var rows []domain.TopProduct
	err := r.db.Model(&saledomain.SaleItem{}).
		Select(`sale_items.product_id,
			sale_items.product_name,
			SUM(sale_items.quantity) AS quantity_sold,
			SUM(sale_items.total_price) AS revenue`).
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Where("sales.status = ?", saledomain.StatusCompleted).
		Where("sales.created_at >= ? AND sales.created_at < ?", start, end).
		Where("sales.deleted_at IS NULL").
		Group("sale_items.product_id, sale_items.product_name").
		Order("quantity_sold DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// SalesByCashier returns per-cashier totals over the date range
func (r *GormReportRepository) SalesByCashier(from, to time.Time) ([]domain.CashierSales, error) {
	start, end := dayRange(from, to)

	var rows []domain.CashierSales
	err := r.db.Model(&saledomain.Sale{}).
		Select(`sales.user_id,
			users.username,
			users.full_name,
			COUNT(*) AS transactions,
			COALESCE(SUM(sales.total_amount), 0) AS revenue`).
		Joins("JOIN users ON users.id = sales.user_id").
		Where("sales.status = ?", saledomain.StatusCompleted).
		Where("sales.created_at >= ? AND sales.created_at < ?", start, end).
		Group("sales.user_id, users.username, users.full_name").
		Order("revenue DESC").
		Scan(&rows).Error
	return rows, err
}

// DailySales returns the day-by-day revenue trend over the date range,
// optionally scoped to one cashier
func (r *GormReportRepository) DailySales(from, to time.Time, userID uint) ([]domain.DailySales, error) {
	start, end := dayRange(from, to)

	q := r.completedSales(start, end)
	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}

	var rows []domain.DailySales
	err := q.
		Select(`DATE(created_at) AS date,
			COUNT(*) AS transactions,
			COALESCE(SUM(total_amount), 0) AS revenue`).
		Group("DATE(created_at)").
		Order("date ASC").
		Scan(&rows).Error
	return rows, err
}

// DashboardStats aggregates today's figures, optionally scoped to one
// cashier. Storewide views (userID zero) additionally carry the active
// user count and the current month's revenue.
func (r *GormReportRepository) DashboardStats(userID uint) (*domain.DashboardStats, error) {
	now := time.Now()
	start, end := dayRange(now, now)

	stats := &domain.DashboardStats{}

	sales := r.completedSales(start, end)
	if userID != 0 {
		sales = sales.Where("user_id = ?", userID)
	}
	err := sales.
		Select(`COUNT(*) AS today_transactions,
			COALESCE(SUM(total_amount), 0) AS today_revenue`).
		Scan(stats).Error
	if err != nil {
		return nil, err
	}

	items := r.db.Model(&saledomain.SaleItem{}).
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Where("sales.status = ?", saledomain.StatusCompleted).
		Where("sales.created_at >= ? AND sales.created_at < ?", start, end).
		Where("sales.deleted_at IS NULL")
	if userID != 0 {
		items = items.Where("sales.user_id = ?", userID)
	}
	err = items.
		Select("COALESCE(SUM(sale_items.quantity), 0)").
		Scan(&stats.TodayItemsSold).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Table("products").
		Where("is_active = ? AND deleted_at IS NULL", true).
		Count(&stats.ActiveProducts).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Table("products").
		Where("is_active = ? AND stock_quantity <= min_stock AND deleted_at IS NULL", true).
		Count(&stats.LowStockCount).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Table("products").
		Select("id, name, sku, stock_quantity, min_stock").
		Where("is_active = ? AND stock_quantity <= min_stock AND deleted_at IS NULL", true).
		Order("stock_quantity ASC").
		Limit(5).
		Scan(&stats.LowStockProducts).Error
	if err != nil {
		return nil, err
	}

	recent := r.db.Model(&saledomain.Sale{}).
		Select("id, invoice_number, user_id, total_amount, payment_method, created_at").
		Where("status = ?", saledomain.StatusCompleted)
	if userID != 0 {
		recent = recent.Where("user_id = ?", userID)
	}
	err = recent.
		Order("created_at DESC").
		Limit(5).
		Scan(&stats.RecentSales).Error
	if err != nil {
		return nil, err
	}

	if userID == 0 {
		err = r.db.Table("users").
			Where("is_active = ? AND deleted_at IS NULL", true).
			Count(&stats.ActiveUsers).Error
		if err != nil {
			return nil, err
		}

		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		err = r.completedSales(monthStart, monthStart.AddDate(0, 1, 0)).
			Select("COALESCE(SUM(total_amount), 0)").
			Scan(&stats.MonthRevenue).Error
		if err != nil {
			return nil, err
		}
	}

	return stats, nil
}
