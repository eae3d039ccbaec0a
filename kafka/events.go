package kafka

import (
	"time"

	"github.com/google/uuid"
)

// Topics
const (
	TopicSaleCompleted = "pos.sale.completed"
)

// SaleCompletedEventItem is one receipt line inside the event payload
type SaleCompletedEventItem struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

// SaleCompletedEvent is published after a sale commits
type SaleCompletedEvent struct {
	EventID       string                   `json:"event_id"`
	SaleID        uint                     `json:"sale_id"`
	InvoiceNumber string                   `json:"invoice_number"`
	UserID        uint                     `json:"user_id"`
	TotalAmount   float64                  `json:"total_amount"`
	PaymentMethod string                   `json:"payment_method"`
	Items         []SaleCompletedEventItem `json:"items"`
	Timestamp     time.Time                `json:"timestamp"`
}

// NewSaleCompletedEvent creates an event with a unique ID
func NewSaleCompletedEvent(saleID uint, invoiceNumber string, userID uint, totalAmount float64, paymentMethod string, items []SaleCompletedEventItem) SaleCompletedEvent {
	return SaleCompletedEvent{
		EventID:       uuid.New().String(),
		SaleID:        saleID,
		InvoiceNumber: invoiceNumber,
		UserID:        userID,
		TotalAmount:   totalAmount,
		PaymentMethod: paymentMethod,
		Items:         items,
		Timestamp:     time.Now(),
	}
}
