package domain

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a catalog item
type Product struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"not null;index"`
	SKU           string         `json:"sku" gorm:"uniqueIndex;not null"`
	Description   string         `json:"description"`
	CostPrice     float64        `json:"cost_price" gorm:"not null"`
	SellingPrice  float64        `json:"selling_price" gorm:"not null"`
	StockQuantity int            `json:"stock_quantity" gorm:"not null;default:0"`
	MinStock      int            `json:"min_stock" gorm:"not null;default:5"`
	Category      string         `json:"category" gorm:"index"`
	IsActive      bool           `json:"is_active" gorm:"default:true;index"`
	IsLowStock    bool           `json:"is_low_stock" gorm:"-"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// AfterFind computes the derived low-stock flag at read time
func (p *Product) AfterFind(tx *gorm.DB) error {
	p.IsLowStock = p.StockQuantity <= p.MinStock
	return nil
}

// HasStock checks whether the requested quantity is available
func (p *Product) HasStock(quantity int) bool {
	return p.StockQuantity >= quantity
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id uint) (*Product, error)
	FindBySKU(sku string) (*Product, error)
	FindAll(limit, offset int) ([]Product, error)
	FindByCategory(category string, limit, offset int) ([]Product, error)
	FindActive(limit, offset int) ([]Product, error)
	FindLowStock(limit int) ([]Product, error)
	Update(product *Product) error
	Delete(id uint) error
	Count() (int64, error)
	CountActive() (int64, error)
	CountLowStock() (int64, error)
	UpdateStock(id uint, stock int) error
}
