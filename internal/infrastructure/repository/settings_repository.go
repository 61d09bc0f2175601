package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/sangkips/pos-terminal/internal/domain/entity"
	domainRepo "github.com/sangkips/pos-terminal/internal/domain/repository"
)

type settingsRepository struct {
	tax      *document[entity.TaxSettings]
	business *document[entity.BusinessInfo]
	receipt  *document[entity.ReceiptSettings]
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(store domainRepo.KVStore, log *zap.Logger) domainRepo.SettingsRepository {
	return &settingsRepository{
		tax:      newDocument(store, domainRepo.KeyTaxSettings, entity.DefaultTaxSettings, cloneValue[entity.TaxSettings], log),
		business: newDocument(store, domainRepo.KeyBusinessInfo, entity.DefaultBusinessInfo, cloneValue[entity.BusinessInfo], log),
		receipt:  newDocument(store, domainRepo.KeyReceiptSettings, entity.DefaultReceiptSettings, cloneValue[entity.ReceiptSettings], log),
	}
}

func (r *settingsRepository) GetTax(ctx context.Context) (*entity.TaxSettings, error) {
	v, err := r.tax.Read(ctx)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *settingsRepository) SaveTax(ctx context.Context, settings *entity.TaxSettings) error {
	return r.tax.Mutate(ctx, func(entity.TaxSettings) (entity.TaxSettings, error) {
		return *settings, nil
	})
}

func (r *settingsRepository) GetBusinessInfo(ctx context.Context) (*entity.BusinessInfo, error) {
	v, err := r.business.Read(ctx)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *settingsRepository) SaveBusinessInfo(ctx context.Context, info *entity.BusinessInfo) error {
	return r.business.Mutate(ctx, func(entity.BusinessInfo) (entity.BusinessInfo, error) {
		return *info, nil
	})
}

func (r *settingsRepository) GetReceiptSettings(ctx context.Context) (*entity.ReceiptSettings, error) {
	v, err := r.receipt.Read(ctx)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *settingsRepository) SaveReceiptSettings(ctx context.Context, settings *entity.ReceiptSettings) error {
	return r.receipt.Mutate(ctx, func(entity.ReceiptSettings) (entity.ReceiptSettings, error) {
		return *settings, nil
	})
}
