package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sangkips/pos-terminal/internal/application/service"
	"github.com/sangkips/pos-terminal/internal/presentation/http/dto/request"
	"github.com/sangkips/pos-terminal/internal/presentation/http/dto/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler handles business report requests
type ReportHandler struct {
	reports *service.ReportService
	export  *service.ExportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports *service.ReportService, export *service.ExportService) *ReportHandler {
	return &ReportHandler{reports: reports, export: export}
}

// GetStats returns statistics for ?period=today|week|month|all (default today)
func (h *ReportHandler) GetStats(c *gin.Context) {
	var req request.ReportRequest
	if !bindQuery(c, &req) {
		return
	}
	period, ok := parsePeriod(c, req.Period)
	if !ok {
		return
	}

	stats, err := h.reports.Report(c.Request.Context(), period)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Report generated successfully", stats)
}

// Export downloads the report as text (default) or an xlsx workbook
func (h *ReportHandler) Export(c *gin.Context) {
	var req request.ReportRequest
	if !bindQuery(c, &req) {
		return
	}
	period, ok := parsePeriod(c, req.Period)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	switch req.Format {
	case "", "text":
		text, err := h.export.ExportText(ctx, period)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="report-%s.txt"`, period))
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))

	case "xlsx":
		var buf bytes.Buffer
		if err := h.export.ExportWorkbook(ctx, period, &buf); err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="report-%s.xlsx"`, period))
		c.Data(http.StatusOK, xlsxContentType, buf.Bytes())

	default:
		response.BadRequest(c, "Invalid format. Use 'text' or 'xlsx'")
	}
}
