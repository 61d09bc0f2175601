package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sangkips/pos-terminal/internal/application/service"
	"github.com/sangkips/pos-terminal/internal/domain/enum"
	"github.com/sangkips/pos-terminal/internal/presentation/http/dto/request"
	"github.com/sangkips/pos-terminal/internal/presentation/http/dto/response"
	"github.com/sangkips/pos-terminal/pkg/apperror"
	"github.com/sangkips/pos-terminal/pkg/pagination"
)

// SaleHandler handles checkout and sale history requests
type SaleHandler struct {
	sales   *service.SaleService
	printer *service.PrinterService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(sales *service.SaleService, printer *service.PrinterService) *SaleHandler {
	return &SaleHandler{sales: sales, printer: printer}
}

// Complete commits the cart as a sale. An empty cart answers 200 with no data.
func (h *SaleHandler) Complete(c *gin.Context) {
	var req request.CompleteSaleRequest
	if !bindJSON(c, &req) {
		return
	}
	method, err := enum.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		response.Error(c, apperror.NewFieldError("paymentMethod", "paymentMethod must be one of: cash card mobile"))
		return
	}

	sale, err := h.sales.CompleteSale(c.Request.Context(), method)
	if err != nil {
		response.Error(c, err)
		return
	}
	if sale == nil {
		response.OK(c, "Cart is empty, nothing to complete", nil)
		return
	}
	response.Created(c, "Sale completed successfully", sale)
}

// List returns the sale history newest first, one page at a time
func (h *SaleHandler) List(c *gin.Context) {
	var req request.SaleListRequest
	if !bindQuery(c, &req) {
		return
	}
	result, err := h.sales.ListSalesPage(c.Request.Context(), &pagination.PaginationParams{
		Page:    req.Page,
		PerPage: req.PerPage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, http.StatusOK, "Sales retrieved successfully", result)
}

// Today returns sales since local midnight with their combined total
func (h *SaleHandler) Today(c *gin.Context) {
	ctx := c.Request.Context()
	sales, err := h.sales.TodaySales(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}
	total, err := h.sales.TodayTotal(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Today's sales retrieved successfully", gin.H{
		"sales": sales,
		"total": total,
		"count": len(sales),
	})
}

// Get returns a single sale
func (h *SaleHandler) Get(c *gin.Context) {
	sale, err := h.sales.GetSale(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sale retrieved successfully", sale)
}

// Receipt returns the composed receipt and its plain text rendering
func (h *SaleHandler) Receipt(c *gin.Context) {
	receipt, err := h.printer.RenderReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt generated successfully", gin.H{
		"receipt": receipt,
		"text":    h.printer.ReceiptText(receipt),
	})
}

// Print sends the sale's receipt to the printer. When the printer fails the
// receipt is still returned with a warning.
func (h *SaleHandler) Print(c *gin.Context) {
	receipt, err := h.printer.PrintReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		if receipt != nil {
			response.OK(c, "Receipt generated but printing failed", gin.H{
				"receipt": receipt,
				"warning": err.Error(),
			})
			return
		}
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt printed successfully", gin.H{
		"receipt": receipt,
	})
}
