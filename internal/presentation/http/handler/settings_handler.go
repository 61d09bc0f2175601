package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sangkips/pos-terminal/internal/application/service"
	"github.com/sangkips/pos-terminal/internal/presentation/http/dto/response"
)

// SettingsHandler handles tax, business and receipt settings requests
type SettingsHandler struct {
	settings *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settings *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GetTax retrieves the tax settings
func (h *SettingsHandler) GetTax(c *gin.Context) {
	tax, err := h.settings.GetTaxSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Tax settings retrieved successfully", tax)
}

// UpdateTax replaces the tax settings
func (h *SettingsHandler) UpdateTax(c *gin.Context) {
	var req service.UpdateTaxSettingsInput
	if !bindJSON(c, &req) {
		return
	}
	tax, err := h.settings.UpdateTaxSettings(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Tax settings updated successfully", tax)
}

// GetBusiness retrieves the business details
func (h *SettingsHandler) GetBusiness(c *gin.Context) {
	info, err := h.settings.GetBusinessInfo(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Business info retrieved successfully", info)
}

// UpdateBusiness replaces the business details
func (h *SettingsHandler) UpdateBusiness(c *gin.Context) {
	var req service.UpdateBusinessInfoInput
	if !bindJSON(c, &req) {
		return
	}
	info, err := h.settings.UpdateBusinessInfo(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Business info updated successfully", info)
}

// GetReceipt retrieves the receipt layout
func (h *SettingsHandler) GetReceipt(c *gin.Context) {
	layout, err := h.settings.GetReceiptSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt settings retrieved successfully", layout)
}

// UpdateReceipt replaces the receipt layout
func (h *SettingsHandler) UpdateReceipt(c *gin.Context) {
	var req service.UpdateReceiptSettingsInput
	if !bindJSON(c, &req) {
		return
	}
	layout, err := h.settings.UpdateReceiptSettings(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt settings updated successfully", layout)
}
