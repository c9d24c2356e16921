package handler

import (
	"errors"
	"net/http"

	"bistro_boss/internal/model"
	"bistro_boss/internal/payment"
	"bistro_boss/internal/repository"
	"bistro_boss/internal/service"

	"github.com/gin-gonic/gin"
)

// PaymentHandler serves checkout and dashboard routes
type PaymentHandler struct {
	payments service.PaymentService
	stats    service.StatsService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(payments service.PaymentService, stats service.StatsService) *PaymentHandler {
	return &PaymentHandler{payments: payments, stats: stats}
}

func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req model.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	intent, err := h.payments.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Errorf("Error creating payment intent: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": intent.ClientSecret})
}

func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	authEmail, err := getAuthEmail(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var p model.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	res, err := h.payments.RecordPayment(c.Request.Context(), authEmail, p)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotCleared) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":         repository.ErrCartNotCleared.Error(),
				"paymentResult": res.PaymentResult,
			})
			return
		}
		respondStoreError(c, err, "to record payment")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *PaymentHandler) AdminStats(c *gin.Context) {
	stats, err := h.stats.AdminStats(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "to retrieve statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// RegisterPaymentRoutes registers payment and statistics routes
func (h *PaymentHandler) RegisterPaymentRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, adminMW gin.HandlerFunc) {
	authRoutes := rg.Group("", authMW)
	{
		authRoutes.POST("/create-payment-intent", h.CreatePaymentIntent)
		authRoutes.POST("/payment", h.RecordPayment)
		authRoutes.GET("/admin-stats", adminMW, h.AdminStats)
	}
}
