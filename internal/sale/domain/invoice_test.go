package domain

import (
	"testing"
	"time"
)

func TestNextInvoiceNumberFirstOfDay(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 30, 0, 0, time.Local)

	got := NextInvoiceNumber(at, "")
	want := "INV-20250314-0001"
	if got != want {
		t.Errorf("NextInvoiceNumber() = %q, want %q", got, want)
	}
}

func TestNextInvoiceNumberIncrements(t *testing.T) {
	at := time.Date(2025, 3, 14, 15, 0, 0, 0, time.Local)

	got := NextInvoiceNumber(at, "INV-20250314-0041")
	want := "INV-20250314-0042"
	if got != want {
		t.Errorf("NextInvoiceNumber() = %q, want %q", got, want)
	}
}

func TestNextInvoiceNumberDayRollover(t *testing.T) {
	// The previous invoice belongs to yesterday; callers only pass
	// same-day invoices, so a new day always starts from scratch.
	at := time.Date(2025, 3, 15, 0, 0, 1, 0, time.Local)

	got := NextInvoiceNumber(at, "")
	want := "INV-20250315-0001"
	if got != want {
		t.Errorf("NextInvoiceNumber() = %q, want %q", got, want)
	}
}

func TestNextInvoiceNumberMalformedLast(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local)

	got := NextInvoiceNumber(at, "garbage")
	want := "INV-20250314-0001"
	if got != want {
		t.Errorf("NextInvoiceNumber() = %q, want %q", got, want)
	}
}

func TestNextInvoiceNumberPadding(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local)

	got := NextInvoiceNumber(at, "INV-20250314-0009")
	want := "INV-20250314-0010"
	if got != want {
		t.Errorf("NextInvoiceNumber() = %q, want %q", got, want)
	}
}

func TestLineTotal(t *testing.T) {
	item := SaleItem{Quantity: 3, UnitPrice: 15000, DiscountPerItem: 1000}

	if got, want := item.LineTotal(), 42000.0; got != want {
		t.Errorf("LineTotal() = %v, want %v", got, want)
	}
}
