package handler

import (
	"net/http"

	"bistro_boss/internal/model"
	"bistro_boss/internal/service"

	"github.com/gin-gonic/gin"
)

// MenuHandler serves menu and review routes
type MenuHandler struct {
	service service.MenuService
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(s service.MenuService) *MenuHandler {
	return &MenuHandler{service: s}
}

func (h *MenuHandler) ListMenu(c *gin.Context) {
	items, err := h.service.ListMenu(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "to retrieve menu")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *MenuHandler) CreateMenuItem(c *gin.Context) {
	var item model.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	res, err := h.service.CreateMenuItem(c.Request.Context(), item)
	if err != nil {
		respondStoreError(c, err, "to create menu item")
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *MenuHandler) DeleteMenuItem(c *gin.Context) {
	res, err := h.service.DeleteMenuItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "to delete menu item")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *MenuHandler) ListReviews(c *gin.Context) {
	reviews, err := h.service.ListReviews(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "to retrieve reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// RegisterMenuRoutes registers menu and review routes
func (h *MenuHandler) RegisterMenuRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, adminMW gin.HandlerFunc) {
	rg.GET("/menu", h.ListMenu)
	rg.GET("/reviews", h.ListReviews)

	adminRoutes := rg.Group("/menu", authMW, adminMW)
	{
		adminRoutes.POST("", h.CreateMenuItem)
		adminRoutes.DELETE("/:id", h.DeleteMenuItem)
	}
}
