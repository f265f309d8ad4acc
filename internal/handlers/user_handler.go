package handlers

import (
	"net/http"

	"alertnet_backend/internal/dto"
	"alertnet_backend/internal/middleware"
	"alertnet_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	BaseHandler
	users services.UserService
}

func NewUserHandler(base BaseHandler, users services.UserService) *UserHandler {
	return &UserHandler{BaseHandler: base, users: users}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	authed := r.Group("/users/me", middleware.AuthMiddleware())
	authed.PATCH("/profile", h.UpdateProfile)
	authed.PATCH("/preferences", h.UpdatePreferences)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.users.UpdateProfile(userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdatePreferences(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePreferencesRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.users.UpdatePreferences(userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
