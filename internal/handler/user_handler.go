package handler

import (
	"errors"
	"net/http"

	"bistro_boss/internal/model"
	"bistro_boss/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler serves user and role routes
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "to retrieve users")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			c.JSON(http.StatusOK, gin.H{"message": err.Error(), "insertedId": nil})
			return
		}
		respondStoreError(c, err, "to register user")
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *UserHandler) PromoteToAdmin(c *gin.Context) {
	res, err := h.service.PromoteToAdmin(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "to promote user")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *UserHandler) CheckAdmin(c *gin.Context) {
	authEmail, err := getAuthEmail(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	admin, err := h.service.IsAdmin(c.Request.Context(), c.Param("email"), authEmail)
	if err != nil {
		respondStoreError(c, err, "to check admin role")
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

// RegisterUserRoutes registers user routes
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, adminMW gin.HandlerFunc) {
	rg.GET("/users", authMW, adminMW, h.ListUsers)
	rg.POST("/users", h.Register)
	rg.PATCH("/users/admin/:id", h.PromoteToAdmin)
	rg.GET("/users/admin/:email", authMW, h.CheckAdmin)
}
