package repository

import (
	"context"

	"github.com/sangkips/pos-terminal/internal/domain/entity"
)

// SettingsRepository defines the interface for settings data access.
// Getters return defaults when nothing has been saved yet.
type SettingsRepository interface {
	GetTax(ctx context.Context) (*entity.TaxSettings, error)
	SaveTax(ctx context.Context, settings *entity.TaxSettings) error
	GetBusinessInfo(ctx context.Context) (*entity.BusinessInfo, error)
	SaveBusinessInfo(ctx context.Context, info *entity.BusinessInfo) error
	GetReceiptSettings(ctx context.Context) (*entity.ReceiptSettings, error)
	SaveReceiptSettings(ctx context.Context, settings *entity.ReceiptSettings) error
}
