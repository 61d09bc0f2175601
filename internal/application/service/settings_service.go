package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/sangkips/pos-terminal/internal/domain/entity"
	"github.com/sangkips/pos-terminal/internal/domain/repository"
	"github.com/sangkips/pos-terminal/pkg/utils"
)

// SettingsService handles settings-related business logic
type SettingsService struct {
	settingsRepo repository.SettingsRepository
	log          *zap.Logger
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository, log *zap.Logger) *SettingsService {
	if log == nil {
		log = zap.NewNop()
	}
	return &SettingsService{
		settingsRepo: settingsRepo,
		log:          log.Named("settings"),
	}
}

// GetTaxSettings returns the saved tax settings or the defaults
func (s *SettingsService) GetTaxSettings(ctx context.Context) (*entity.TaxSettings, error) {
	return s.settingsRepo.GetTax(ctx)
}

// UpdateTaxSettingsInput represents the input for updating tax settings
type UpdateTaxSettingsInput struct {
	Enabled   bool    `json:"enabled"`
	Rate      float64 `json:"rate" validate:"gte=0,lte=100"`
	Name      string  `json:"name" validate:"required_if=Enabled true,max=40"`
	TaxNumber string  `json:"taxNumber" validate:"max=64"`
}

// UpdateTaxSettings replaces the tax settings
func (s *SettingsService) UpdateTaxSettings(ctx context.Context, input *UpdateTaxSettingsInput) (*entity.TaxSettings, error) {
	in := *input
	in.Name = utils.CleanText(in.Name)
	in.TaxNumber = utils.CleanText(in.TaxNumber)
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	settings := &entity.TaxSettings{
		Enabled:   in.Enabled,
		Rate:      in.Rate,
		Name:      in.Name,
		TaxNumber: in.TaxNumber,
	}
	if err := s.settingsRepo.SaveTax(ctx, settings); err != nil {
		return nil, err
	}
	s.log.Info("tax settings updated", zap.Bool("enabled", settings.Enabled), zap.Float64("rate", settings.Rate))
	return settings, nil
}

// GetBusinessInfo returns the saved business details or the defaults
func (s *SettingsService) GetBusinessInfo(ctx context.Context) (*entity.BusinessInfo, error) {
	return s.settingsRepo.GetBusinessInfo(ctx)
}

// UpdateBusinessInfoInput represents the input for updating business details
type UpdateBusinessInfoInput struct {
	Name      string `json:"name" validate:"required,max=120"`
	Address   string `json:"address" validate:"max=255"`
	Phone     string `json:"phone" validate:"max=40"`
	Email     string `json:"email" validate:"omitempty,email,max=255"`
	Website   string `json:"website" validate:"max=255"`
	TaxNumber string `json:"taxNumber" validate:"max=64"`
}

// UpdateBusinessInfo replaces the business details
func (s *SettingsService) UpdateBusinessInfo(ctx context.Context, input *UpdateBusinessInfoInput) (*entity.BusinessInfo, error) {
	in := UpdateBusinessInfoInput{
		Name:      utils.CleanText(input.Name),
		Address:   utils.CleanText(input.Address),
		Phone:     utils.CleanText(input.Phone),
		Email:     strings.TrimSpace(input.Email),
		Website:   utils.CleanText(input.Website),
		TaxNumber: utils.CleanText(input.TaxNumber),
	}
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	info := &entity.BusinessInfo{
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Website:   in.Website,
		TaxNumber: in.TaxNumber,
	}
	if err := s.settingsRepo.SaveBusinessInfo(ctx, info); err != nil {
		return nil, err
	}
	s.log.Info("business info updated")
	return info, nil
}

// GetReceiptSettings returns the saved receipt layout or the defaults
func (s *SettingsService) GetReceiptSettings(ctx context.Context) (*entity.ReceiptSettings, error) {
	return s.settingsRepo.GetReceiptSettings(ctx)
}

// UpdateReceiptSettingsInput represents the input for updating receipt layout
type UpdateReceiptSettingsInput struct {
	ShowLogo      bool   `json:"showLogo"`
	ShowTaxNumber bool   `json:"showTaxNumber"`
	ShowWebsite   bool   `json:"showWebsite"`
	ShowBarcode   bool   `json:"showBarcode"`
	Header        string `json:"header" validate:"max=500"`
	Footer        string `json:"footer" validate:"max=500"`
}

// UpdateReceiptSettings replaces the receipt layout
func (s *SettingsService) UpdateReceiptSettings(ctx context.Context, input *UpdateReceiptSettingsInput) (*entity.ReceiptSettings, error) {
	in := *input
	in.Header = utils.CleanText(in.Header)
	in.Footer = utils.CleanText(in.Footer)
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	settings := &entity.ReceiptSettings{
		ShowLogo:      in.ShowLogo,
		ShowTaxNumber: in.ShowTaxNumber,
		ShowWebsite:   in.ShowWebsite,
		ShowBarcode:   in.ShowBarcode,
		Header:        in.Header,
		Footer:        in.Footer,
	}
	if err := s.settingsRepo.SaveReceiptSettings(ctx, settings); err != nil {
		return nil, err
	}
	s.log.Info("receipt settings updated")
	return settings, nil
}
