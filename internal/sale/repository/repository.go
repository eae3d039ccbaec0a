package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	productdomain "github.com/warungpos/pos-service/internal/product/domain"
	"github.com/warungpos/pos-service/internal/sale/domain"
)

// maxInvoiceRetries bounds how often a commit is replayed when two sales
// race for the same invoice number. The unique index on invoice_number
// rejects the loser, which retries with a fresh sequence.
const maxInvoiceRetries = 3

// GormSaleRepository implements SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GORM sale repository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// Create commits a sale atomically. Inside one database transaction it
// locks each product row, validates stock, snapshots product names into
// the items, assigns the next invoice number for the day, persists the
// header with its items, and decrements stock. Any failure rolls the
// whole transaction back.
func (r *GormSaleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	var err error
	for attempt := 0; attempt < maxInvoiceRetries; attempt++ {
		err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return r.commit(tx, sale)
		})
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		// Invoice collision with a concurrent sale. Reset and replay.
		sale.ID = 0
		sale.InvoiceNumber = ""
		for i := range sale.Items {
			sale.Items[i].ID = 0
			sale.Items[i].SaleID = 0
		}
	}
	return fmt.Errorf("failed to allocate invoice number after %d attempts: %w", maxInvoiceRetries, err)
}

func (r *GormSaleRepository) commit(tx *gorm.DB, sale *domain.Sale) error {
	now := time.Now()

	for i := range sale.Items {
		item := &sale.Items[i]

		var product productdomain.Product
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND is_active = ?", item.ProductID, true).
			First(&product).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &domain.ProductNotFoundError{ProductID: item.ProductID}
			}
			return err
		}

		if product.StockQuantity < item.Quantity {
			return &domain.InsufficientStockError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Requested:   item.Quantity,
				Available:   product.StockQuantity,
			}
		}

		// The caller's unit price is the price charged, so only the
		// product name is snapshotted from the locked row.
		item.ProductName = product.Name
	}

	lastInvoice, err := r.lastInvoiceOfDay(tx, now)
	if err != nil {
		return err
	}
	sale.InvoiceNumber = domain.NextInvoiceNumber(now, lastInvoice)

	if err := tx.Create(sale).Error; err != nil {
		return err
	}

	for i := range sale.Items {
		item := &sale.Items[i]
		res := tx.Model(&productdomain.Product{}).
			Where("id = ? AND stock_quantity >= ?", item.ProductID, item.Quantity).
			UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// The row is locked, so this only fires if the same product
			// appears on multiple lines and the combined quantity overruns.
			return &domain.InsufficientStockError{
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				Requested:   item.Quantity,
				Available:   0,
			}
		}
	}

	return nil
}

// lastInvoiceOfDay returns the invoice number of the day's most recent
// sale, or empty when the sale is the day's first. Only a missing row
// means "first of the day"; any other failure aborts the transaction so
// the sequence cannot silently restart.
func (r *GormSaleRepository) lastInvoiceOfDay(tx *gorm.DB, at time.Time) (string, error) {
	dayStart := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())

	var last domain.Sale
	err := tx.Unscoped().
		Where("created_at >= ? AND created_at < ?", dayStart, dayStart.AddDate(0, 0, 1)).
		Order("id DESC").
		First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return last.InvoiceNumber, nil
}

// FindByID retrieves a sale with its items
func (r *GormSaleRepository) FindByID(ctx context.Context, id uint) (*domain.Sale, error) {
	var sale domain.Sale
	err := r.db.WithContext(ctx).Preload("Items").First(&sale, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSaleNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// FindByInvoiceNumber retrieves a sale by its invoice number
func (r *GormSaleRepository) FindByInvoiceNumber(ctx context.Context, invoiceNumber string) (*domain.Sale, error) {
	var sale domain.Sale
	err := r.db.WithContext(ctx).Preload("Items").Where("invoice_number = ?", invoiceNumber).First(&sale).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSaleNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// FindAll retrieves sales matching the filter, most recent first
func (r *GormSaleRepository) FindAll(ctx context.Context, filter domain.SaleFilter) ([]domain.Sale, error) {
	var sales []domain.Sale
	err := r.applyFilter(ctx, filter).
		Preload("Items").
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&sales).Error
	return sales, err
}

// Count returns the number of sales matching the filter
func (r *GormSaleRepository) Count(ctx context.Context, filter domain.SaleFilter) (int64, error) {
	var count int64
	err := r.applyFilter(ctx, filter).Model(&domain.Sale{}).Count(&count).Error
	return count, err
}

func (r *GormSaleRepository) applyFilter(ctx context.Context, filter domain.SaleFilter) *gorm.DB {
	q := r.db.WithContext(ctx)
	if filter.UserID != 0 {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.PaymentMethod != "" {
		q = q.Where("payment_method = ?", filter.PaymentMethod)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if !filter.DateFrom.IsZero() {
		q = q.Where("created_at >= ?", filter.DateFrom)
	}
	if !filter.DateTo.IsZero() {
		// Inclusive end date: extend to the end of the day
		q = q.Where("created_at < ?", filter.DateTo.AddDate(0, 0, 1))
	}
	return q
}

// AutoMigrate creates the sales tables
func (r *GormSaleRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Sale{}, &domain.SaleItem{})
}
