package handlers

import (
	"net/http"

	"alertnet_backend/internal/dto"
	"alertnet_backend/internal/middleware"
	"alertnet_backend/internal/models"
	"alertnet_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	BaseHandler
	communities services.CommunityService
}

func NewCommunityHandler(base BaseHandler, communities services.CommunityService) *CommunityHandler {
	return &CommunityHandler{BaseHandler: base, communities: communities}
}

func (h *CommunityHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/communities", h.List)
	r.GET("/communities/:id", h.Get)

	authed := r.Group("/communities", middleware.AuthMiddleware())
	authed.POST("/:id/join", h.Join)
	authed.POST("/:id/leave", h.Leave)

	admin := authed.Group("", middleware.RequireRoles(models.UserRoleAdmin))
	admin.POST("", h.Create)
	admin.PATCH("/:id", h.Update)
	admin.DELETE("/:id", h.Deactivate)
}

func (h *CommunityHandler) List(c *gin.Context) {
	activeOnly := c.DefaultQuery("active", "true") == "true"
	communities, err := h.communities.List(activeOnly)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": communities, "count": len(communities)})
}

func (h *CommunityHandler) Get(c *gin.Context) {
	community, err := h.communities.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	members, err := h.communities.MemberCount(community.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"community": community, "member_count": members})
}

func (h *CommunityHandler) Create(c *gin.Context) {
	var req dto.CreateCommunityRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	community, err := h.communities.Create(req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, community)
}

func (h *CommunityHandler) Update(c *gin.Context) {
	var req dto.UpdateCommunityRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	community, err := h.communities.Update(c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, community)
}

func (h *CommunityHandler) Deactivate(c *gin.Context) {
	if err := h.communities.Deactivate(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CommunityHandler) Join(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.communities.Join(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CommunityHandler) Leave(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.communities.Leave(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
