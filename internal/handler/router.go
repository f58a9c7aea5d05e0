package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shareit-go/service-shareit/internal/middleware"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers served by the router.
type Handlers struct {
	Bookings *BookingHandler
	Items    *ItemHandler
	Requests *RequestHandler
	Users    *UserHandler
	Health   *HealthHandler
	// Auth is optional; token issuing is off without a JWT secret.
	Auth *AuthHandler
}

// NewRouter builds the gin engine with global middleware and all routes. The requester
// middleware chain (identity, rate limiting) applies to every route that acts on behalf of a user.
func NewRouter(log *zap.Logger, h Handlers, requester ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())

	if h.Health != nil {
		h.Health.RegisterRoutes(router)
	}

	api := &router.RouterGroup
	h.Users.RegisterRoutes(api)
	h.Items.RegisterRoutes(api, requester...)
	h.Bookings.RegisterRoutes(api, requester...)
	h.Requests.RegisterRoutes(api, requester...)
	if h.Auth != nil {
		h.Auth.RegisterRoutes(api, requester...)
	}

	return router
}
