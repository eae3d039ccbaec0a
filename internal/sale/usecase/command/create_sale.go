package command

import (
	"context"

	"github.com/warungpos/pos-service/internal/sale/domain"
)

// SaleItemInput is one requested line of a sale. UnitPrice is the price
// charged at the register and may differ from the catalog price.
type SaleItemInput struct {
	ProductID       uint    `json:"product_id"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	DiscountPerItem float64 `json:"discount_per_item"`
}

// CreateSaleCommand represents the intent to commit a sale
type CreateSaleCommand struct {
	UserID            uint            `json:"user_id"`
	Items             []SaleItemInput `json:"items"`
	DiscountAmount    float64         `json:"discount_amount"`
	PaymentMethod     string          `json:"payment_method"`
	TransferReference string          `json:"transfer_reference"`
	Notes             string          `json:"notes"`
}

// CreateSaleHandler handles sale creation
type CreateSaleHandler struct {
	repo domain.SaleRepository
}

// NewCreateSaleHandler creates a new handler
func NewCreateSaleHandler(repo domain.SaleRepository) *CreateSaleHandler {
	return &CreateSaleHandler{repo: repo}
}

// Handle validates the command, prices the lines from the request, and
// commits the sale. Stock validation and invoice numbering happen inside
// the repository's transaction so that concurrent sales cannot interleave.
func (h *CreateSaleHandler) Handle(ctx context.Context, cmd CreateSaleCommand) (*domain.Sale, error) {
	if len(cmd.Items) == 0 {
		return nil, domain.ErrNoItems
	}
	for _, item := range cmd.Items {
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
		if item.UnitPrice < 0 {
			return nil, domain.ErrNegativeUnitPrice
		}
		if item.DiscountPerItem < 0 {
			return nil, domain.ErrNegativeDiscount
		}
	}
	if cmd.PaymentMethod != domain.PaymentCash && cmd.PaymentMethod != domain.PaymentTransfer {
		return nil, domain.ErrInvalidPaymentMethod
	}
	if cmd.PaymentMethod == domain.PaymentTransfer && cmd.TransferReference == "" {
		return nil, domain.ErrTransferReferenceRequired
	}
	if cmd.DiscountAmount < 0 {
		return nil, domain.ErrNegativeDiscount
	}

	subtotal := 0.0
	items := make([]domain.SaleItem, len(cmd.Items))
	for i, in := range cmd.Items {
		items[i] = domain.SaleItem{
			ProductID:       in.ProductID,
			Quantity:        in.Quantity,
			UnitPrice:       in.UnitPrice,
			DiscountPerItem: in.DiscountPerItem,
		}
		items[i].TotalPrice = items[i].LineTotal()
		subtotal += items[i].TotalPrice
	}

	sale := &domain.Sale{
		UserID:            cmd.UserID,
		Subtotal:          subtotal,
		DiscountAmount:    cmd.DiscountAmount,
		TotalAmount:       subtotal - cmd.DiscountAmount,
		PaymentMethod:     cmd.PaymentMethod,
		TransferReference: cmd.TransferReference,
		Notes:             cmd.Notes,
		Status:            domain.StatusCompleted,
		Items:             items,
	}

	if err := h.repo.Create(ctx, sale); err != nil {
		return nil, err
	}

	return sale, nil
}
