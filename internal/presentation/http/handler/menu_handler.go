package handler

import (
	"github.com/arjunmenon/restobill/internal/application/service"
	"github.com/arjunmenon/restobill/internal/domain/repository"
	"github.com/arjunmenon/restobill/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// MenuHandler handles menu catalog HTTP requests
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

type menuItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	GSTRate  float64 `json:"gst_rate"`
	IsActive *bool   `json:"is_active"`
}

// List handles listing menu items
func (h *MenuHandler) List(c *gin.Context) {
	params := &repository.MenuFilterParams{
		Category:   c.Query("category"),
		Search:     c.Query("search"),
		ActiveOnly: c.DefaultQuery("active_only", "true") == "true",
	}

	items, err := h.menuService.ListItems(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu retrieved successfully", items)
}

// Get handles getting a single menu item
func (h *MenuHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	item, err := h.menuService.GetItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item retrieved successfully", item)
}

// Create handles adding a menu item
func (h *MenuHandler) Create(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.menuService.CreateItem(c.Request.Context(), &service.MenuItemInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		GSTRate:  req.GSTRate,
		IsActive: req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Menu item created successfully", item)
}

// Update handles editing a menu item
func (h *MenuHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.menuService.UpdateItem(c.Request.Context(), id, &service.MenuItemInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		GSTRate:  req.GSTRate,
		IsActive: req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item updated successfully", item)
}

// Deactivate handles hiding a menu item from new carts
func (h *MenuHandler) Deactivate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	item, err := h.menuService.DeactivateItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item deactivated successfully", item)
}
