package handler

import (
	"net/http"

	"bistro_boss/internal/middleware"
	"bistro_boss/internal/repository"
	"bistro_boss/internal/service"
	"bistro_boss/internal/utils"

	"github.com/gin-gonic/gin"
)

// Services groups everything the router dispatches to
type Services struct {
	Auth     service.AuthService
	Users    service.UserService
	Menu     service.MenuService
	Cart     service.CartService
	Payments service.PaymentService
	Stats    service.StatsService
}

// NewRouter builds the gin engine with every route of the API.
// users backs the admin check; pinger backs the health endpoint.
func NewRouter(svcs Services, jwtUtil *utils.JWTUtil, users middleware.UserLookup, pinger repository.Pinger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(), middleware.CORS())

	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)
	adminRoleMW := middleware.AdminMiddleware(users)

	root := router.Group("/")
	NewAuthHandler(svcs.Auth).RegisterAuthRoutes(root)
	NewMenuHandler(svcs.Menu).RegisterMenuRoutes(root, jwtAuthMW, adminRoleMW)
	NewCartHandler(svcs.Cart).RegisterCartRoutes(root, jwtAuthMW)
	NewUserHandler(svcs.Users).RegisterUserRoutes(root, jwtAuthMW, adminRoleMW)
	NewPaymentHandler(svcs.Payments, svcs.Stats).RegisterPaymentRoutes(root, jwtAuthMW, adminRoleMW)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Bistro Boss Running")
	})

	router.GET("/health", func(c *gin.Context) {
		if err := pinger.Ping(c.Request.Context()); err != nil {
			log.Warningf("health check failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	return router
}
