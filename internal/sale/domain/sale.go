package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Payment methods accepted at the register
const (
	PaymentCash     = "cash"
	PaymentTransfer = "transfer"
)

// Sale statuses
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Sale is the transaction header. Items carry the per-product lines and
// are persisted in the same database transaction as the header.
type Sale struct {
	ID                uint           `json:"id" gorm:"primaryKey"`
	InvoiceNumber     string         `json:"invoice_number" gorm:"uniqueIndex;not null"`
	UserID            uint           `json:"user_id" gorm:"not null;index"`
	Subtotal          float64        `json:"subtotal" gorm:"not null"`
	DiscountAmount    float64        `json:"discount_amount" gorm:"default:0"`
	TotalAmount       float64        `json:"total_amount" gorm:"not null"`
	PaymentMethod     string         `json:"payment_method" gorm:"not null"`
	TransferReference string         `json:"transfer_reference,omitempty"`
	Notes             string         `json:"notes,omitempty"`
	Status            string         `json:"status" gorm:"default:completed;index"`
	Items             []SaleItem     `json:"items" gorm:"foreignKey:SaleID"`
	CreatedAt         time.Time      `json:"created_at" gorm:"index"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `json:"-" gorm:"index"`
}

// SaleItem is one line of a sale. UnitPrice is the price charged at the
// register, which may differ from the catalog price. ProductName is
// copied from the product at commit time so later catalog edits do not
// rewrite historical receipts.
type SaleItem struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	SaleID          uint      `json:"sale_id" gorm:"not null;index"`
	ProductID       uint      `json:"product_id" gorm:"not null;index"`
	ProductName     string    `json:"product_name" gorm:"not null"`
	Quantity        int       `json:"quantity" gorm:"not null"`
	UnitPrice       float64   `json:"unit_price" gorm:"not null"`
	DiscountPerItem float64   `json:"discount_per_item" gorm:"default:0"`
	TotalPrice      float64   `json:"total_price" gorm:"not null"`
	CreatedAt       time.Time `json:"created_at"`
}

// LineTotal computes the price of one line: the discounted unit price
// times the quantity.
func (i *SaleItem) LineTotal() float64 {
	return (i.UnitPrice - i.DiscountPerItem) * float64(i.Quantity)
}

// SaleFilter narrows a sale listing. Zero values mean "no filter".
type SaleFilter struct {
	UserID        uint
	PaymentMethod string
	Status        string
	DateFrom      time.Time
	DateTo        time.Time
	Limit         int
	Offset        int
}

// SaleRepository defines the interface for sale data access
type SaleRepository interface {
	// Create commits the sale atomically: it validates and locks stock,
	// assigns the invoice number, persists the header and items, and
	// decrements stock. On any failure nothing is persisted.
	Create(ctx context.Context, sale *Sale) error
	FindByID(ctx context.Context, id uint) (*Sale, error)
	FindByInvoiceNumber(ctx context.Context, invoiceNumber string) (*Sale, error)
	FindAll(ctx context.Context, filter SaleFilter) ([]Sale, error)
	Count(ctx context.Context, filter SaleFilter) (int64, error)
}
