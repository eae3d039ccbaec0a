package domain

import "time"

// SalesSummary aggregates completed sales over a date range
type SalesSummary struct {
	TotalTransactions int64   `json:"total_transactions"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalDiscount     float64 `json:"total_discount"`
	CashRevenue       float64 `json:"cash_revenue"`
	TransferRevenue   float64 `json:"transfer_revenue"`
	AverageSale       float64 `json:"average_sale"`
}

// TopProduct is one row of the best-sellers report
type TopProduct struct {
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	QuantitySold int64   `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// CashierSales is one row of the per-cashier report
type CashierSales struct {
	UserID       uint    `json:"user_id"`
	Username     string  `json:"username"`
	FullName     string  `json:"full_name"`
	Transactions int64   `json:"transactions"`
	Revenue      float64 `json:"revenue"`
}

// DailySales is one day of the revenue trend
type DailySales struct {
	Date         string  `json:"date"`
	Transactions int64   `json:"transactions"`
	Revenue      float64 `json:"revenue"`
}

// RecentSale is a compact sale row shown on the dashboard
type RecentSale struct {
	ID            uint      `json:"id"`
	InvoiceNumber string    `json:"invoice_number"`
	UserID        uint      `json:"user_id"`
	TotalAmount   float64   `json:"total_amount"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}

// LowStockProduct is a catalog row at or below its minimum stock
type LowStockProduct struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	SKU           string `json:"sku"`
	StockQuantity int    `json:"stock_quantity"`
	MinStock      int    `json:"min_stock"`
}

// DashboardStats is the at-a-glance view for the current day.
// For cashiers the sales figures cover only their own sales; the admin
// extras (ActiveUsers, MonthRevenue) are filled only for storewide views.
type DashboardStats struct {
	TodayTransactions int64             `json:"today_transactions"`
	TodayRevenue      float64           `json:"today_revenue"`
	TodayItemsSold    int64             `json:"today_items_sold"`
	ActiveProducts    int64             `json:"active_products"`
	LowStockCount     int64             `json:"low_stock_count"`
	RecentSales       []RecentSale      `json:"recent_sales"`
	LowStockProducts  []LowStockProduct `json:"low_stock_products"`
	WeeklySales       []DailySales      `json:"weekly_sales"`
	ActiveUsers       int64             `json:"active_users,omitempty"`
	MonthRevenue      float64           `json:"month_revenue,omitempty"`
}

// ReportRepository defines the interface for report aggregation queries.
// Date ranges are inclusive of both endpoints, at day granularity.
type ReportRepository interface {
	SalesSummary(from, to time.Time) (*SalesSummary, error)
	TopProducts(from, to time.Time, limit int) ([]TopProduct, error)
	SalesByCashier(from, to time.Time) ([]CashierSales, error)
	// DailySales returns the day-by-day trend. userID zero means all
	// cashiers, non-zero scopes sales to that cashier.
	DailySales(from, to time.Time, userID uint) ([]DailySales, error)
	// DashboardStats aggregates today's figures. userID zero means all
	// cashiers, non-zero scopes sales to that cashier. The weekly trend
	// is assembled by the caller so it carries the same scoping.
	DashboardStats(userID uint) (*DashboardStats, error)
}
