// Package handler maps HTTP routes onto the services.
package handler

import (
	"errors"
	"net/http"

	"bistro_boss/internal/middleware"
	"bistro_boss/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("handler")

// Helper to get the authenticated email from context
func getAuthEmail(c *gin.Context) (string, error) {
	email, ok := middleware.AuthEmail(c)
	if !ok {
		return "", errors.New("authenticated email not found in context")
	}
	return email, nil
}

// respondStoreError answers 400 for malformed ids and 500 for everything else
func respondStoreError(c *gin.Context, err error, action string) {
	if errors.Is(err, repository.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.Errorf("Error %s: %v", action, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed " + action})
}
