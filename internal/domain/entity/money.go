package entity

import (
	"encoding/json"
	"math"
	"strconv"
)

// Cents is a monetary amount in the smallest currency unit.
// It marshals to JSON as a decimal number with two fraction digits.
type Cents int64

// CentsFromDecimal converts a decimal amount (12.34) to cents, rounding half away from zero.
func CentsFromDecimal(v float64) Cents {
	return Cents(math.Round(v * 100))
}

// Decimal returns the amount as a decimal value
func (c Cents) Decimal() float64 {
	return float64(c) / 100
}

func (c Cents) String() string {
	return strconv.FormatFloat(c.Decimal(), 'f', 2, 64)
}

// Mul returns c multiplied by a quantity
func (c Cents) Mul(qty int) Cents {
	return c * Cents(qty)
}

func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Cents) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = CentsFromDecimal(v)
	return nil
}
