package handler

import (
	"errors"
	"net/http"

	"bistro_boss/internal/model"
	"bistro_boss/internal/service"

	"github.com/gin-gonic/gin"
)

// CartHandler serves cart routes
type CartHandler struct {
	service service.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(s service.CartService) *CartHandler {
	return &CartHandler{service: s}
}

func (h *CartHandler) ListCart(c *gin.Context) {
	authEmail, err := getAuthEmail(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	items, err := h.service.ListCart(c.Request.Context(), c.Query("email"), authEmail)
	if err != nil {
		if errors.Is(err, service.ErrEmailMismatch) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}
		respondStoreError(c, err, "to retrieve cart")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var item model.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	res, err := h.service.AddItem(c.Request.Context(), item)
	if err != nil {
		respondStoreError(c, err, "to add cart item")
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	res, err := h.service.RemoveItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "to remove cart item")
		return
	}
	c.JSON(http.StatusOK, res)
}

// RegisterCartRoutes registers cart routes. Only listing requires a token.
func (h *CartHandler) RegisterCartRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/cart", authMW, h.ListCart)
	rg.POST("/cart", h.AddItem)
	rg.DELETE("/cart/:id", h.RemoveItem)
}
