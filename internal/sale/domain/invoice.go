package domain

import (
	"fmt"
	"strconv"
	"time"
)

// NextInvoiceNumber derives the next invoice number for a sale committed
// at the given time. Numbers take the form INV-YYYYMMDD-NNNN where NNNN
// is a zero-padded sequence that restarts at 0001 each day.
//
// lastInvoice is the invoice number of the most recent sale committed on
// the same day, or empty if this is the day's first sale. A malformed
// last invoice restarts the sequence rather than failing the sale.
func NextInvoiceNumber(at time.Time, lastInvoice string) string {
	seq := 1
	if len(lastInvoice) >= 4 {
		if n, err := strconv.Atoi(lastInvoice[len(lastInvoice)-4:]); err == nil {
			seq = n + 1
		}
	}
	return fmt.Sprintf("INV-%s-%04d", at.Format("20060102"), seq)
}
