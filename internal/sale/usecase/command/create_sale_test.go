package command

import (
	"context"
	"errors"
	"testing"
	"time"

	productdomain "github.com/warungpos/pos-service/internal/product/domain"
	"github.com/warungpos/pos-service/internal/sale/domain"
)

// fakeSaleRepo mirrors the transactional commit against an in-memory
// product catalog: name snapshots, stock checks, invoice numbering, and
// all-or-nothing semantics.
type fakeSaleRepo struct {
	products map[uint]*productdomain.Product
	sales    []*domain.Sale
	nextID   uint
}

func newFakeSaleRepo(products ...*productdomain.Product) *fakeSaleRepo {
	repo := &fakeSaleRepo{products: make(map[uint]*productdomain.Product), nextID: 1}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (f *fakeSaleRepo) Create(ctx context.Context, sale *domain.Sale) error {
	// Validate every line before touching stock
	for i := range sale.Items {
		item := &sale.Items[i]
		product, ok := f.products[item.ProductID]
		if !ok || !product.IsActive {
			return &domain.ProductNotFoundError{ProductID: item.ProductID}
		}
		if product.StockQuantity < item.Quantity {
			return &domain.InsufficientStockError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Requested:   item.Quantity,
				Available:   product.StockQuantity,
			}
		}
		item.ProductName = product.Name
	}

	sale.InvoiceNumber = domain.NextInvoiceNumber(time.Now(), f.lastInvoiceToday())
	sale.ID = f.nextID
	f.nextID++

	for _, item := range sale.Items {
		f.products[item.ProductID].StockQuantity -= item.Quantity
	}
	f.sales = append(f.sales, sale)
	return nil
}

func (f *fakeSaleRepo) lastInvoiceToday() string {
	if len(f.sales) == 0 {
		return ""
	}
	return f.sales[len(f.sales)-1].InvoiceNumber
}

func (f *fakeSaleRepo) FindByID(ctx context.Context, id uint) (*domain.Sale, error) {
	for _, s := range f.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domain.ErrSaleNotFound
}

func (f *fakeSaleRepo) FindByInvoiceNumber(ctx context.Context, invoiceNumber string) (*domain.Sale, error) {
	for _, s := range f.sales {
		if s.InvoiceNumber == invoiceNumber {
			return s, nil
		}
	}
	return nil, domain.ErrSaleNotFound
}

func (f *fakeSaleRepo) FindAll(ctx context.Context, filter domain.SaleFilter) ([]domain.Sale, error) {
	var out []domain.Sale
	for _, s := range f.sales {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSaleRepo) Count(ctx context.Context, filter domain.SaleFilter) (int64, error) {
	return int64(len(f.sales)), nil
}

func testProduct(id uint, name string, price float64, stock int) *productdomain.Product {
	return &productdomain.Product{
		ID:            id,
		Name:          name,
		SKU:           name,
		SellingPrice:  price,
		StockQuantity: stock,
		IsActive:      true,
	}
}

func TestCreateSale(t *testing.T) {
	repo := newFakeSaleRepo(
		testProduct(1, "Kopi Susu", 15000, 10),
		testProduct(2, "Roti Bakar", 12000, 5),
	)
	handler := NewCreateSaleHandler(repo)

	sale, err := handler.Handle(context.Background(), CreateSaleCommand{
		UserID: 7,
		Items: []SaleItemInput{
			{ProductID: 1, Quantity: 2, UnitPrice: 15000, DiscountPerItem: 1000},
			{ProductID: 2, Quantity: 1, UnitPrice: 12000},
		},
		DiscountAmount: 3000,
		PaymentMethod:  domain.PaymentCash,
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	// (15000-1000)*2 + 12000*1 = 40000
	if sale.Subtotal != 40000 {
		t.Errorf("Subtotal = %v, want 40000", sale.Subtotal)
	}
	if sale.TotalAmount != 37000 {
		t.Errorf("TotalAmount = %v, want 37000", sale.TotalAmount)
	}
	if sale.Status != domain.StatusCompleted {
		t.Errorf("Status = %q, want %q", sale.Status, domain.StatusCompleted)
	}
	if sale.InvoiceNumber == "" {
		t.Error("expected an invoice number")
	}
	if sale.Items[0].ProductName != "Kopi Susu" {
		t.Errorf("ProductName = %q, want the catalog name", sale.Items[0].ProductName)
	}

	if got := repo.products[1].StockQuantity; got != 8 {
		t.Errorf("stock of product 1 = %d, want 8", got)
	}
	if got := repo.products[2].StockQuantity; got != 4 {
		t.Errorf("stock of product 2 = %d, want 4", got)
	}
}

func TestCreateSaleHonorsRequestPrice(t *testing.T) {
	// The register may charge a different price than the catalog holds,
	// so the request's unit price drives the totals.
	repo := newFakeSaleRepo(testProduct(1, "Teh Manis", 5000, 10))
	handler := NewCreateSaleHandler(repo)

	sale, err := handler.Handle(context.Background(), CreateSaleCommand{
		UserID:        1,
		Items:         []SaleItemInput{{ProductID: 1, Quantity: 2, UnitPrice: 3500}},
		PaymentMethod: domain.PaymentCash,
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if sale.Items[0].UnitPrice != 3500 {
		t.Errorf("UnitPrice = %v, want the request price 3500", sale.Items[0].UnitPrice)
	}
	if sale.Subtotal != 7000 {
		t.Errorf("Subtotal = %v, want 7000", sale.Subtotal)
	}
	if sale.TotalAmount != 7000 {
		t.Errorf("TotalAmount = %v, want 7000", sale.TotalAmount)
	}
}

func TestCreateSaleValidation(t *testing.T) {
	validItems := []SaleItemInput{{ProductID: 1, Quantity: 1, UnitPrice: 15000}}

	tests := []struct {
		name    string
		cmd     CreateSaleCommand
		wantErr error
	}{
		{
			"no items",
			CreateSaleCommand{UserID: 1, PaymentMethod: domain.PaymentCash},
			domain.ErrNoItems,
		},
		{
			"zero quantity",
			CreateSaleCommand{UserID: 1, Items: []SaleItemInput{{ProductID: 1}}, PaymentMethod: domain.PaymentCash},
			domain.ErrInvalidQuantity,
		},
		{
			"negative unit price",
			CreateSaleCommand{UserID: 1, Items: []SaleItemInput{{ProductID: 1, Quantity: 1, UnitPrice: -100}}, PaymentMethod: domain.PaymentCash},
			domain.ErrNegativeUnitPrice,
		},
		{
			"negative item discount",
			CreateSaleCommand{UserID: 1, Items: []SaleItemInput{{ProductID: 1, Quantity: 1, DiscountPerItem: -1}}, PaymentMethod: domain.PaymentCash},
			domain.ErrNegativeDiscount,
		},
		{
			"negative order discount",
			CreateSaleCommand{UserID: 1, Items: validItems, DiscountAmount: -1, PaymentMethod: domain.PaymentCash},
			domain.ErrNegativeDiscount,
		},
		{
			"unknown payment method",
			CreateSaleCommand{UserID: 1, Items: validItems, PaymentMethod: "cheque"},
			domain.ErrInvalidPaymentMethod,
		},
		{
			"transfer without reference",
			CreateSaleCommand{UserID: 1, Items: validItems, PaymentMethod: domain.PaymentTransfer},
			domain.ErrTransferReferenceRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeSaleRepo(testProduct(1, "Kopi Susu", 15000, 10))
			handler := NewCreateSaleHandler(repo)

			_, err := handler.Handle(context.Background(), tt.cmd)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Handle() error = %v, want %v", err, tt.wantErr)
			}
			if len(repo.sales) != 0 {
				t.Error("no sale should be persisted on validation failure")
			}
		})
	}
}

func TestCreateSaleTransferWithReference(t *testing.T) {
	repo := newFakeSaleRepo(testProduct(1, "Kopi Susu", 15000, 10))
	handler := NewCreateSaleHandler(repo)

	sale, err := handler.Handle(context.Background(), CreateSaleCommand{
		UserID:            1,
		Items:             []SaleItemInput{{ProductID: 1, Quantity: 1, UnitPrice: 15000}},
		PaymentMethod:     domain.PaymentTransfer,
		TransferReference: "TRX-889123",
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if sale.TransferReference != "TRX-889123" {
		t.Errorf("TransferReference = %q, want %q", sale.TransferReference, "TRX-889123")
	}
}

func TestCreateSaleInsufficientStock(t *testing.T) {
	repo := newFakeSaleRepo(
		testProduct(1, "Kopi Susu", 15000, 10),
		testProduct(2, "Roti Bakar", 12000, 1),
	)
	handler := NewCreateSaleHandler(repo)

	_, err := handler.Handle(context.Background(), CreateSaleCommand{
		UserID: 1,
		Items: []SaleItemInput{
			{ProductID: 1, Quantity: 2, UnitPrice: 15000},
			{ProductID: 2, Quantity: 5, UnitPrice: 12000},
		},
		PaymentMethod: domain.PaymentCash,
	})

	var stockErr *domain.InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("Handle() error = %v, want InsufficientStockError", err)
	}
	if stockErr.Requested != 5 || stockErr.Available != 1 {
		t.Errorf("error = %+v, want Requested=5 Available=1", stockErr)
	}

	// The first line must not be decremented when a later line fails
	if got := repo.products[1].StockQuantity; got != 10 {
		t.Errorf("stock of product 1 = %d, want untouched 10", got)
	}
	if len(repo.sales) != 0 {
		t.Error("no sale should be persisted on stock failure")
	}
}

func TestCreateSaleUnknownProduct(t *testing.T) {
	repo := newFakeSaleRepo(testProduct(1, "Kopi Susu", 15000, 10))
	handler := NewCreateSaleHandler(repo)

	_, err := handler.Handle(context.Background(), CreateSaleCommand{
		UserID:        1,
		Items:         []SaleItemInput{{ProductID: 99, Quantity: 1, UnitPrice: 1000}},
		PaymentMethod: domain.PaymentCash,
	})

	var notFound *domain.ProductNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Handle() error = %v, want ProductNotFoundError", err)
	}
	if notFound.ProductID != 99 {
		t.Errorf("ProductID = %d, want 99", notFound.ProductID)
	}
}

func TestCreateSaleSequentialInvoices(t *testing.T) {
	repo := newFakeSaleRepo(testProduct(1, "Kopi Susu", 15000, 100))
	handler := NewCreateSaleHandler(repo)

	cmd := CreateSaleCommand{
		UserID:        1,
		Items:         []SaleItemInput{{ProductID: 1, Quantity: 1, UnitPrice: 15000}},
		PaymentMethod: domain.PaymentCash,
	}

	first, err := handler.Handle(context.Background(), cmd)
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	second, err := handler.Handle(context.Background(), cmd)
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if first.InvoiceNumber == second.InvoiceNumber {
		t.Errorf("invoice numbers must be unique, both are %q", first.InvoiceNumber)
	}
	if want := domain.NextInvoiceNumber(time.Now(), first.InvoiceNumber); second.InvoiceNumber != want {
		t.Errorf("second invoice = %q, want %q", second.InvoiceNumber, want)
	}
}
