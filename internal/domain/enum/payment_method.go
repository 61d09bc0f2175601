package enum

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PaymentMethod represents how a sale was paid
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodMobile PaymentMethod = "mobile"
)

// PaymentMethods lists every accepted payment method
var PaymentMethods = []PaymentMethod{PaymentMethodCash, PaymentMethodCard, PaymentMethodMobile}

func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid reports whether m is one of the accepted methods
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodMobile:
		return true
	}
	return false
}

// Label returns the human readable name printed on receipts
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentMethodCash:
		return "Cash"
	case PaymentMethodCard:
		return "Card Payment"
	case PaymentMethodMobile:
		return "Mobile Payment"
	}
	return string(m)
}

// ParsePaymentMethod parses a method name case-insensitively
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", fmt.Errorf("invalid payment method %q", s)
	}
	return m, nil
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	// Unknown values are kept as-is so callers can reject them with a proper error
	*m = PaymentMethod(strings.ToLower(strings.TrimSpace(str)))
	return nil
}
