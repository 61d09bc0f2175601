package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/sangkips/pos-terminal/internal/domain/enum"
)

const (
	sheetSummary     = "Summary"
	sheetTopProducts = "Top Products"
	sheetSales       = "Sales"
)

// ExportService turns report statistics into shareable documents
type ExportService struct {
	reports *ReportService
}

// NewExportService creates a new export service
func NewExportService(reports *ReportService) *ExportService {
	return &ExportService{reports: reports}
}

// ExportText returns the business report as plain text
func (s *ExportService) ExportText(ctx context.Context, period enum.Period) (string, error) {
	stats, err := s.reports.Report(ctx, period)
	if err != nil {
		return "", err
	}
	return reportText(stats), nil
}

func reportText(stats *ReportStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Business Report - %s\n\n", strings.ToUpper(stats.Period.String()))
	fmt.Fprintf(&b, "Revenue: %s\n", money(stats.TotalRevenue))
	fmt.Fprintf(&b, "Transactions: %d\n", stats.TotalTransactions)
	fmt.Fprintf(&b, "Average Transaction: %s\n", money(stats.AverageTransaction))
	fmt.Fprintf(&b, "Items Sold: %d\n", stats.TotalItemsSold)
	fmt.Fprintf(&b, "Inventory Value: %s\n", money(stats.InventoryValue))
	fmt.Fprintf(&b, "Low Stock Items: %d\n", stats.LowStockCount)
	b.WriteString("\nTop Products:\n")
	for i, p := range stats.TopProducts {
		fmt.Fprintf(&b, "%d. %s - %s (%d sold)\n", i+1, p.Name, money(p.Revenue), p.Quantity)
	}
	return b.String()
}

// ExportWorkbook writes the report as an xlsx workbook with summary, top
// products and per-sale sheets.
func (s *ExportService) ExportWorkbook(ctx context.Context, period enum.Period, w io.Writer) error {
	stats, err := s.reports.Report(ctx, period)
	if err != nil {
		return err
	}

	f, err := buildWorkbook(stats)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func buildWorkbook(stats *ReportStats) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{sheetTopProducts, sheetSales} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}

	summary := [][]interface{}{
		{"Period", strings.ToUpper(stats.Period.String())},
		{"Generated", stats.GeneratedAt.Format("2006-01-02 15:04")},
		{"Revenue", stats.TotalRevenue.Decimal()},
		{"Transactions", stats.TotalTransactions},
		{"Average Transaction", stats.AverageTransaction.Decimal()},
		{"Items Sold", stats.TotalItemsSold},
		{"Inventory Value", stats.InventoryValue.Decimal()},
		{"Low Stock Items", stats.LowStockCount},
	}
	if err := writeRows(f, sheetSummary, summary); err != nil {
		f.Close()
		return nil, err
	}
	_ = f.SetCellStyle(sheetSummary, "A1", fmt.Sprintf("A%d", len(summary)), bold)
	_ = f.SetColWidth(sheetSummary, "A", "A", 22)

	top := [][]interface{}{{"#", "Product", "Quantity", "Revenue"}}
	for i, p := range stats.TopProducts {
		top = append(top, []interface{}{i + 1, p.Name, p.Quantity, p.Revenue.Decimal()})
	}
	if err := writeRows(f, sheetTopProducts, top); err != nil {
		f.Close()
		return nil, err
	}
	_ = f.SetCellStyle(sheetTopProducts, "A1", "D1", bold)
	_ = f.SetColWidth(sheetTopProducts, "B", "B", 30)

	sales := [][]interface{}{{"Receipt", "Date", "Payment", "Items", "Subtotal", "Tax", "Total"}}
	for _, sale := range stats.Sales {
		sales = append(sales, []interface{}{
			sale.ReceiptNumber,
			sale.Timestamp.Local().Format("2006-01-02 15:04:05"),
			sale.PaymentMethod.Label(),
			sale.ItemCount(),
			sale.Subtotal.Decimal(),
			sale.Tax.Decimal(),
			sale.Total.Decimal(),
		})
	}
	if err := writeRows(f, sheetSales, sales); err != nil {
		f.Close()
		return nil, err
	}
	_ = f.SetCellStyle(sheetSales, "A1", "G1", bold)
	_ = f.SetColWidth(sheetSales, "A", "B", 20)

	f.SetActiveSheet(0)
	return f, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
