package routes

import (
	"net/http"

	"alertnet_backend/internal/handlers"
	"alertnet_backend/internal/services"
	"alertnet_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// SetupRoutes mounts the API under /api/v1.
func SetupRoutes(r *gin.Engine, sc *services.ServiceContainer, v *validator.Validator) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	base := handlers.NewBaseHandler(v)

	api := r.Group("/api/v1")

	handlers.NewAuthHandler(base, sc.Auth).RegisterRoutes(api)
	handlers.NewUserHandler(base, sc.Users).RegisterRoutes(api)
	handlers.NewAlertHandler(base, sc.Alerts, sc.Comments).RegisterRoutes(api)
	handlers.NewCommunityHandler(base, sc.Communities).RegisterRoutes(api)
	handlers.NewCategoryHandler(base, sc.Categories).RegisterRoutes(api)
	handlers.NewDeviceHandler(base, sc.Devices).RegisterRoutes(api)
	handlers.NewNotificationHandler(base, sc.Notifications, sc.Dispatch).RegisterRoutes(api)
}
