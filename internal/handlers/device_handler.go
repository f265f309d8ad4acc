package handlers

import (
	"net/http"

	"alertnet_backend/internal/dto"
	"alertnet_backend/internal/middleware"
	"alertnet_backend/internal/models"
	"alertnet_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type DeviceHandler struct {
	BaseHandler
	devices services.DeviceService
}

func NewDeviceHandler(base BaseHandler, devices services.DeviceService) *DeviceHandler {
	return &DeviceHandler{BaseHandler: base, devices: devices}
}

func (h *DeviceHandler) RegisterRoutes(r *gin.RouterGroup) {
	authed := r.Group("/devices", middleware.AuthMiddleware())
	authed.POST("", h.Register)
	authed.DELETE("", h.Unregister)
	authed.GET("", h.List)
}

func (h *DeviceHandler) Register(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.RegisterDeviceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	device, err := h.devices.Register(userID, req.Token, models.DeviceKind(req.Kind), req.Name)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, device)
}

func (h *DeviceHandler) Unregister(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UnregisterDeviceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.devices.Unregister(userID, req.Token); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DeviceHandler) List(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	devices, err := h.devices.ListActive(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": devices, "count": len(devices)})
}
