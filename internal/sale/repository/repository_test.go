package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/warungpos/pos-service/internal/sale/domain"
)

// unreachableDB opens a GORM handle against an address nothing listens
// on, so any query fails with a connection error instead of a result.
func unreachableDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, err := sql.Open("postgres", "host=127.0.0.1 port=1 user=pos dbname=pos sslmode=disable connect_timeout=1")
	if err != nil {
		t.Fatalf("sql.Open() error = %v", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		TranslateError:       true,
		DisableAutomaticPing: true,
		Logger:               gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open() error = %v", err)
	}
	return db
}

func TestLastInvoiceOfDayStorageError(t *testing.T) {
	repo := NewGormSaleRepository(unreachableDB(t))

	// A failed lookup must surface, not pass for an empty day. An empty
	// string with a nil error would restart the invoice sequence.
	invoice, err := repo.lastInvoiceOfDay(repo.db, time.Now())
	if err == nil {
		t.Fatal("lastInvoiceOfDay() error = nil, want a storage error")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("lastInvoiceOfDay() error = %v, want a non not-found error", err)
	}
	if invoice != "" {
		t.Errorf("invoice = %q, want empty on error", invoice)
	}
}

func TestCreateStorageError(t *testing.T) {
	repo := NewGormSaleRepository(unreachableDB(t))

	sale := &domain.Sale{
		UserID:        1,
		PaymentMethod: domain.PaymentCash,
		Status:        domain.StatusCompleted,
		Items: []domain.SaleItem{
			{ProductID: 1, Quantity: 1, UnitPrice: 15000, TotalPrice: 15000},
		},
	}

	err := repo.Create(context.Background(), sale)
	if err == nil {
		t.Fatal("Create() error = nil, want a storage error")
	}

	var stockErr *domain.InsufficientStockError
	var notFound *domain.ProductNotFoundError
	if errors.As(err, &stockErr) || errors.As(err, &notFound) {
		t.Fatalf("Create() error = %v, want the raw storage error", err)
	}
}
