package service

import (
	"math"

	"github.com/sangkips/pos-terminal/internal/domain/entity"
)

// ComputeSummary derives subtotal, tax, total and item count for the given
// lines. Tax is rate percent of the subtotal, rounded to the nearest cent,
// and zero when tax is disabled.
func ComputeSummary(items []entity.CartItem, tax entity.TaxSettings) entity.CartSummary {
	var summary entity.CartSummary
	for _, item := range items {
		summary.Subtotal += item.LineTotal()
		summary.ItemCount += item.Quantity
	}
	summary.Tax = computeTax(summary.Subtotal, tax)
	summary.Total = summary.Subtotal + summary.Tax
	return summary
}

func computeTax(subtotal entity.Cents, tax entity.TaxSettings) entity.Cents {
	if !tax.Enabled || tax.Rate == 0 {
		return 0
	}
	return entity.Cents(math.Round(float64(subtotal) * tax.Rate / 100))
}
