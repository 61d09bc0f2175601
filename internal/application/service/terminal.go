package service

import (
	"go.uber.org/zap"

	"github.com/sangkips/pos-terminal/internal/domain/repository"
	infraRepo "github.com/sangkips/pos-terminal/internal/infrastructure/repository"
	"github.com/sangkips/pos-terminal/pkg/printer"
)

// Terminal is the application state of one running point-of-sale instance.
// It is built once at startup and handed to the transport layer.
type Terminal struct {
	Catalog  *CatalogService
	Cart     *CartService
	Sales    *SaleService
	Reports  *ReportService
	Settings *SettingsService
	Printer  *PrinterService
	Export   *ExportService
}

// TerminalOptions configures the non-storage collaborators of a Terminal
type TerminalOptions struct {
	Printer           printer.Printer
	PrinterType       string
	PrinterWidth      int
	LowStockThreshold int
	Logger            *zap.Logger
}

// NewTerminal wires every service on top of a single key-value store
func NewTerminal(store repository.KVStore, opts TerminalOptions) *Terminal {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	productRepo := infraRepo.NewProductRepository(store, log)
	categoryRepo := infraRepo.NewCategoryRepository(store, log)
	saleRepo := infraRepo.NewSaleRepository(store, log)
	settingsRepo := infraRepo.NewSettingsRepository(store, log)

	catalog := NewCatalogService(productRepo, categoryRepo, log)
	cart := NewCartService(catalog, settingsRepo, log)
	reports := NewReportService(saleRepo, productRepo, opts.LowStockThreshold)

	return &Terminal{
		Catalog:  catalog,
		Cart:     cart,
		Sales:    NewSaleService(productRepo, saleRepo, settingsRepo, cart, log),
		Reports:  reports,
		Settings: NewSettingsService(settingsRepo, log),
		Printer:  NewPrinterService(opts.Printer, saleRepo, settingsRepo, opts.PrinterType, opts.PrinterWidth, log),
		Export:   NewExportService(reports),
	}
}
