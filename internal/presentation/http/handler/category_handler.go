package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sangkips/pos-terminal/internal/application/service"
	"github.com/sangkips/pos-terminal/internal/domain/entity"
	"github.com/sangkips/pos-terminal/internal/presentation/http/dto/request"
	"github.com/sangkips/pos-terminal/internal/presentation/http/dto/response"
	"github.com/sangkips/pos-terminal/pkg/apperror"
)

// CategoryHandler handles category and filter selection requests
type CategoryHandler struct {
	catalog *service.CatalogService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(catalog *service.CatalogService) *CategoryHandler {
	return &CategoryHandler{catalog: catalog}
}

// List handles listing categories, "all" first
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Categories retrieved successfully", categories)
}

// Create handles category creation
func (h *CategoryHandler) Create(c *gin.Context) {
	var req request.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	category, err := h.catalog.AddCategory(c.Request.Context(), &service.CategoryInput{Name: req.Name, Icon: req.Icon})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Category created successfully", category)
}

// Update handles category updates. The reserved "all" category cannot change.
func (h *CategoryHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == entity.AllCategoryID {
		response.Error(c, apperror.ErrReservedID)
		return
	}

	var req request.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	category, err := h.catalog.UpdateCategory(c.Request.Context(), id, &service.CategoryInput{Name: req.Name, Icon: req.Icon})
	if err != nil {
		response.Error(c, err)
		return
	}
	if category == nil {
		response.NotFound(c, "Category not found")
		return
	}
	response.OK(c, "Category updated successfully", category)
}

// Delete handles category deletion
func (h *CategoryHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == entity.AllCategoryID {
		response.Error(c, apperror.ErrReservedID)
		return
	}
	if err := h.catalog.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// GetSelection returns the active category filter
func (h *CategoryHandler) GetSelection(c *gin.Context) {
	response.OK(c, "Selection retrieved successfully", gin.H{"categoryId": h.catalog.SelectedCategory()})
}

// Select sets the active category filter
func (h *CategoryHandler) Select(c *gin.Context) {
	var req request.SelectCategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.catalog.SelectCategory(c.Request.Context(), req.CategoryID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Category selected", gin.H{"categoryId": h.catalog.SelectedCategory()})
}
