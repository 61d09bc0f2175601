package entity

import (
	"time"

	"github.com/sangkips/pos-terminal/internal/domain/enum"
)

// Sale is the immutable record of a completed checkout
type Sale struct {
	ID            string             `json:"id"`
	Items         []CartItem         `json:"items"`
	Subtotal      Cents              `json:"subtotal"`
	Tax           Cents              `json:"tax"`
	Total         Cents              `json:"total"`
	PaymentMethod enum.PaymentMethod `json:"paymentMethod"`
	Timestamp     time.Time          `json:"timestamp"`
	ReceiptNumber string             `json:"receiptNumber"`

	// Tax settings in force at commit time
	TaxName string  `json:"taxName,omitempty"`
	TaxRate float64 `json:"taxRate,omitempty"`
}

// ItemCount returns the total quantity across all lines
func (s Sale) ItemCount() int {
	n := 0
	for _, item := range s.Items {
		n += item.Quantity
	}
	return n
}
