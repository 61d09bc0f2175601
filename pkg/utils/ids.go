package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// ReceiptPrefix is prepended to every human-facing receipt number.
const ReceiptPrefix = "RCP"

// NewUUID generates a new UUID string
func NewUUID() string {
	return uuid.New().String()
}

// NewSaleID returns a ULID for the given instant. IDs created within the
// same millisecond in this process sort in creation order.
func NewSaleID(at time.Time) string {
	id, err := ulid.New(ulid.Timestamp(at), ulid.DefaultEntropy())
	if err != nil {
		return ulid.Make().String()
	}
	return id.String()
}

// GenerateReceiptNo builds a receipt number from the last 8 digits of the
// Unix millisecond timestamp. It is meant for display, not as a key.
func GenerateReceiptNo(at time.Time) string {
	return fmt.Sprintf("%s%08d", ReceiptPrefix, at.UnixMilli()%100_000_000)
}
