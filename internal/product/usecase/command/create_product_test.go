package command

import (
	"fmt"
	"testing"

	"github.com/warungpos/pos-service/internal/product/domain"
)

// fakeProductRepo is an in-memory ProductRepository for tests
type fakeProductRepo struct {
	products map[uint]*domain.Product
	nextID   uint
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uint]*domain.Product), nextID: 1}
}

func (f *fakeProductRepo) Create(product *domain.Product) error {
	product.ID = f.nextID
	f.nextID++
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) FindByID(id uint) (*domain.Product, error) {
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("product not found")
}

func (f *fakeProductRepo) FindBySKU(sku string) (*domain.Product, error) {
	for _, p := range f.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, fmt.Errorf("product not found")
}

func (f *fakeProductRepo) FindAll(limit, offset int) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductRepo) FindByCategory(category string, limit, offset int) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		if p.Category == category {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) FindActive(limit, offset int) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) FindLowStock(limit int) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		if p.IsActive && p.StockQuantity <= p.MinStock {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(product *domain.Product) error {
	if _, ok := f.products[product.ID]; !ok {
		return fmt.Errorf("product not found")
	}
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) Delete(id uint) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) Count() (int64, error) {
	return int64(len(f.products)), nil
}

func (f *fakeProductRepo) CountActive() (int64, error) {
	var n int64
	for _, p := range f.products {
		if p.IsActive {
			n++
		}
	}
	return n, nil
}

func (f *fakeProductRepo) CountLowStock() (int64, error) {
	var n int64
	for _, p := range f.products {
		if p.IsActive && p.StockQuantity <= p.MinStock {
			n++
		}
	}
	return n, nil
}

func (f *fakeProductRepo) UpdateStock(id uint, stock int) error {
	p, ok := f.products[id]
	if !ok {
		return fmt.Errorf("product not found")
	}
	p.StockQuantity = stock
	return nil
}

func TestCreateProduct(t *testing.T) {
	repo := newFakeProductRepo()
	handler := NewCreateProductHandler(repo)

	product, err := handler.Handle(CreateProductCommand{
		Name:          "Kopi Susu",
		SKU:           "KOPI-001",
		CostPrice:     8000,
		SellingPrice:  15000,
		StockQuantity: 50,
		MinStock:      10,
		Category:      "beverage",
		IsActive:      true,
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if product.ID == 0 {
		t.Error("expected an assigned ID")
	}
	if product.SellingPrice != 15000 {
		t.Errorf("SellingPrice = %v, want 15000", product.SellingPrice)
	}
}

func TestCreateProductValidation(t *testing.T) {
	tests := []struct {
		name string
		cmd  CreateProductCommand
	}{
		{"missing name", CreateProductCommand{SKU: "X-1", SellingPrice: 1}},
		{"missing sku", CreateProductCommand{Name: "X", SellingPrice: 1}},
		{"negative cost price", CreateProductCommand{Name: "X", SKU: "X-1", CostPrice: -1}},
		{"negative selling price", CreateProductCommand{Name: "X", SKU: "X-1", SellingPrice: -1}},
		{"negative stock", CreateProductCommand{Name: "X", SKU: "X-1", StockQuantity: -1}},
		{"negative min stock", CreateProductCommand{Name: "X", SKU: "X-1", MinStock: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewCreateProductHandler(newFakeProductRepo())
			if _, err := handler.Handle(tt.cmd); err == nil {
				t.Error("Handle() expected error, got nil")
			}
		})
	}
}

func TestCreateProductDuplicateSKU(t *testing.T) {
	repo := newFakeProductRepo()
	handler := NewCreateProductHandler(repo)

	cmd := CreateProductCommand{Name: "Kopi Susu", SKU: "KOPI-001", SellingPrice: 15000, IsActive: true}
	if _, err := handler.Handle(cmd); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	cmd.Name = "Kopi Hitam"
	if _, err := handler.Handle(cmd); err == nil {
		t.Error("expected error for duplicate SKU")
	}
}

func TestUpdateStock(t *testing.T) {
	repo := newFakeProductRepo()
	product := &domain.Product{Name: "Kopi Susu", SKU: "KOPI-001", StockQuantity: 2, IsActive: true}
	if err := repo.Create(product); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	handler := NewUpdateStockHandler(repo)
	if err := handler.Handle(UpdateStockCommand{ProductID: product.ID, Stock: 40}); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if got := repo.products[product.ID].StockQuantity; got != 40 {
		t.Errorf("stock = %d, want 40", got)
	}
}

func TestUpdateStockRejectsNegative(t *testing.T) {
	repo := newFakeProductRepo()
	product := &domain.Product{Name: "Kopi Susu", SKU: "KOPI-001", IsActive: true}
	if err := repo.Create(product); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	handler := NewUpdateStockHandler(repo)
	if err := handler.Handle(UpdateStockCommand{ProductID: product.ID, Stock: -5}); err == nil {
		t.Error("expected error for negative stock")
	}
}

func TestUpdateStockUnknownProduct(t *testing.T) {
	handler := NewUpdateStockHandler(newFakeProductRepo())
	if err := handler.Handle(UpdateStockCommand{ProductID: 99, Stock: 10}); err == nil {
		t.Error("expected error for unknown product")
	}
}
