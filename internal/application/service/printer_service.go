package service

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/sangkips/pos-terminal/internal/domain/entity"
	"github.com/sangkips/pos-terminal/internal/domain/repository"
	"github.com/sangkips/pos-terminal/pkg/apperror"
	"github.com/sangkips/pos-terminal/pkg/printer"
)

const receiptDateLayout = "January 2, 2006, 03:04 PM"

// PrinterService composes receipts from sales and sends them to the thermal printer.
type PrinterService struct {
	printer      printer.Printer
	saleRepo     repository.SaleRepository
	settingsRepo repository.SettingsRepository
	printerType  string
	width        int
	log          *zap.Logger
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	saleRepo repository.SaleRepository,
	settingsRepo repository.SettingsRepository,
	printerType string,
	width int,
	log *zap.Logger,
) *PrinterService {
	if p == nil {
		p = printer.NewNullPrinter()
	}
	if width <= 0 {
		width = printer.Width58mm
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &PrinterService{
		printer:      p,
		saleRepo:     saleRepo,
		settingsRepo: settingsRepo,
		printerType:  printerType,
		width:        width,
		log:          log.Named("printer"),
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
	Width      int    `json:"width"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != printer.TypeNone && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
		Width:      s.width,
	}
}

// RenderReceipt composes the receipt for a sale using the current business
// details and receipt layout.
func (s *PrinterService) RenderReceipt(ctx context.Context, saleID string) (*entity.Receipt, error) {
	sale, err := s.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	info, err := s.settingsRepo.GetBusinessInfo(ctx)
	if err != nil {
		return nil, err
	}
	layout, err := s.settingsRepo.GetReceiptSettings(ctx)
	if err != nil {
		return nil, err
	}
	tax, err := s.settingsRepo.GetTax(ctx)
	if err != nil {
		return nil, err
	}
	return BuildReceipt(sale, info, layout, tax), nil
}

// BuildReceipt converts a sale into a Receipt value object.
func BuildReceipt(sale *entity.Sale, info *entity.BusinessInfo, layout *entity.ReceiptSettings, tax *entity.TaxSettings) *entity.Receipt {
	header := entity.ReceiptHeader{StoreName: info.Name, Message: layout.Header}
	for _, line := range []string{info.Address, info.Phone, info.Email} {
		if line != "" {
			header.Lines = append(header.Lines, line)
		}
	}
	if layout.ShowWebsite && info.Website != "" {
		header.Lines = append(header.Lines, info.Website)
	}
	if layout.ShowTaxNumber {
		header.TaxNumber = info.TaxNumber
		if header.TaxNumber == "" && tax != nil {
			header.TaxNumber = tax.TaxNumber
		}
	}

	receipt := &entity.Receipt{
		Header:        header,
		ReceiptNumber: sale.ReceiptNumber,
		Date:          sale.Timestamp.Local().Format(receiptDateLayout),
		PaymentType:   sale.PaymentMethod.Label(),
		SubTotal:      sale.Subtotal,
		TaxLabel:      taxLabel(sale),
		Tax:           sale.Tax,
		Total:         sale.Total,
		Footer:        layout.Footer,
	}
	if layout.ShowBarcode {
		receipt.Barcode = sale.ReceiptNumber
	}
	for _, item := range sale.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Product.Price,
			Total:     item.LineTotal(),
		})
	}
	return receipt
}

func taxLabel(sale *entity.Sale) string {
	if sale.TaxName == "" {
		return "Tax"
	}
	return fmt.Sprintf("%s (%s%%)", sale.TaxName, strconv.FormatFloat(sale.TaxRate, 'f', -1, 64))
}

func money(c entity.Cents) string {
	return "$" + c.String()
}

// writeReceipt lays the receipt out on doc. The same layout serves the
// thermal printer and the plain text export.
func writeReceipt(doc *printer.Document, r *entity.Receipt, large bool) {
	doc.SetAlign(printer.AlignCenter).SetBold(true)
	if large {
		doc.SetFontSize(printer.FontDouble)
	}
	doc.Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	for _, line := range r.Header.Lines {
		doc.Text(line)
	}
	if r.Header.TaxNumber != "" {
		doc.TextF("Tax No: %s", r.Header.TaxNumber)
	}
	if r.Header.Message != "" {
		doc.LineFeed().Text(r.Header.Message)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Receipt #:", r.ReceiptNumber).
		KeyValue("Date:", r.Date).
		KeyValue("Payment:", r.PaymentType).
		Separator('-')

	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, money(item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %s each", money(item.UnitPrice))
		}
	}

	doc.Separator('-')

	doc.KeyValue("Subtotal:", money(r.SubTotal)).
		KeyValue(r.TaxLabel+":", money(r.Tax)).
		SetBold(true).
		KeyValue("TOTAL:", money(r.Total)).
		SetBold(false).
		Separator('-')

	doc.SetAlign(printer.AlignCenter)
	if r.Barcode != "" {
		doc.Barcode(r.Barcode)
	}
	if r.Footer != "" {
		doc.LineFeed().Text(r.Footer)
	}
	doc.SetAlign(printer.AlignLeft)
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt, width int) []byte {
	doc := printer.NewDocument(width)
	writeReceipt(doc, r, true)
	doc.FeedLines(3).
		PartialCut()
	return doc.Bytes()
}

// ReceiptText renders the receipt as plain text for sharing.
func (s *PrinterService) ReceiptText(r *entity.Receipt) string {
	doc := printer.NewTextDocument(s.width)
	writeReceipt(doc, r, false)
	return doc.String()
}

// PrintReceipt renders the sale's receipt and sends it to the printer.
// The composed receipt is returned even when printing fails.
func (s *PrinterService) PrintReceipt(ctx context.Context, saleID string) (*entity.Receipt, error) {
	receipt, err := s.RenderReceipt(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if err := s.printer.Print(ctx, FormatReceipt(receipt, s.width)); err != nil {
		s.log.Error("printer error", zap.String("sale_id", saleID), zap.Error(err))
		return receipt, printerError(err)
	}
	s.log.Info("receipt printed", zap.String("sale_id", saleID), zap.String("receipt_number", receipt.ReceiptNumber))
	return receipt, nil
}

// TestPrint sends a test page to the printer.
// Returns the receipt data so the handler can return it as JSON when printer is disabled.
func (s *PrinterService) TestPrint(ctx context.Context) (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: "PRINTER TEST",
			Lines:     []string{"Test Address", "+1 000 000 0000"},
		},
		ReceiptNumber: "TEST-001",
		Date:          time.Now().Format(receiptDateLayout),
		PaymentType:   "Cash",
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: 1000, Total: 1000},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: 500, Total: 1000},
		},
		SubTotal: 2000,
		TaxLabel: "Tax",
		Tax:      0,
		Total:    2000,
		Footer:   "Printer OK",
	}

	if err := s.printer.Print(ctx, FormatReceipt(receipt, s.width)); err != nil {
		s.log.Warn("test print failed", zap.Error(err))
		return receipt, printerError(err)
	}
	return receipt, nil
}

func printerError(err error) error {
	appErr := apperror.NewAppError(http.StatusServiceUnavailable, "Printer unavailable")
	appErr.Err = err
	return appErr
}
