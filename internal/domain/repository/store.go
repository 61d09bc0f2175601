package repository

import "context"

// Document keys in the key-value store
const (
	KeyProducts        = "products"
	KeyCategories      = "categories"
	KeySales           = "sales"
	KeyTaxSettings     = "tax_settings"
	KeyBusinessInfo    = "business_info"
	KeyReceiptSettings = "receipt_settings"
)

// KVStore is the persistence engine underneath every repository.
// Values are serialized documents; a Set either stores the whole value or fails.
type KVStore interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
