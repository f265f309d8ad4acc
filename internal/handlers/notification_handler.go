package handlers

import (
	"net/http"

	"alertnet_backend/internal/dto"
	"alertnet_backend/internal/middleware"
	"alertnet_backend/internal/models"
	"alertnet_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	BaseHandler
	notifications services.NotificationService
	dispatch      services.DispatchService
}

func NewNotificationHandler(base BaseHandler, notifications services.NotificationService, dispatch services.DispatchService) *NotificationHandler {
	return &NotificationHandler{BaseHandler: base, notifications: notifications, dispatch: dispatch}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	authed := r.Group("/notifications", middleware.AuthMiddleware())
	authed.GET("", h.History)
	authed.POST("/:id/delivered", h.MarkDelivered)
	authed.POST("/test", h.SendTest)
	authed.GET("/stats", middleware.RequireRoles(models.UserRoleAdmin), h.Stats)
}

func (h *NotificationHandler) History(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	page, pageSize := h.ParsePagination(c)
	items, total, err := h.notifications.History(userID, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(items, total, page, pageSize))
}

func (h *NotificationHandler) MarkDelivered(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.notifications.MarkDelivered(c.Param("id"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) SendTest(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	records, err := h.dispatch.SendTest(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": records})
}

func (h *NotificationHandler) Stats(c *gin.Context) {
	stats, err := h.notifications.Stats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
