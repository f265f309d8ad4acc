package handlers

import (
	"net/http"

	"alertnet_backend/internal/dto"
	"alertnet_backend/internal/middleware"
	"alertnet_backend/internal/models"
	"alertnet_backend/internal/repositories"
	"alertnet_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AlertHandler struct {
	BaseHandler
	alerts   services.AlertService
	comments services.CommentService
}

func NewAlertHandler(base BaseHandler, alerts services.AlertService, comments services.CommentService) *AlertHandler {
	return &AlertHandler{BaseHandler: base, alerts: alerts, comments: comments}
}

func (h *AlertHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/alerts", h.List)
	r.GET("/alerts/nearby", h.Nearby)
	r.GET("/alerts/:id", middleware.OptionalAuth(), h.Get)
	r.GET("/alerts/:id/comments", h.ListComments)

	authed := r.Group("", middleware.AuthMiddleware())
	authed.POST("/alerts", h.Create)
	authed.PATCH("/alerts/:id/status", h.UpdateStatus)
	authed.DELETE("/alerts/:id", h.Delete)
	authed.POST("/alerts/:id/vote", h.Vote)
	authed.POST("/alerts/:id/comments", h.CreateComment)
	authed.DELETE("/comments/:id", h.DeleteComment)
}

func (h *AlertHandler) Create(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAlertRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	alert, notified, err := h.alerts.CreateAlert(userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.AlertCreatedResponse{Alert: alert, NotifiedCount: notified})
}

func (h *AlertHandler) Get(c *gin.Context) {
	// Anonymous views still load the alert, they just aren't counted.
	viewerID, _ := c.Get("userID")
	viewer, _ := viewerID.(string)

	alert, err := h.alerts.GetAlert(c.Request.Context(), c.Param("id"), viewer)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

func (h *AlertHandler) List(c *gin.Context) {
	var criteria repositories.AlertCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	criteria.Page, criteria.PageSize = h.ParsePagination(c)
	criteria.PublicOnly = true

	alerts, total, err := h.alerts.ListAlerts(criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(alerts, total, criteria.Page, criteria.PageSize))
}

func (h *AlertHandler) Nearby(c *gin.Context) {
	var q dto.NearbyQuery
	if !h.BindAndValidateQuery(c, &q) {
		return
	}

	hits, err := h.alerts.NearbyAlerts(q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": hits, "count": len(hits)})
}

func (h *AlertHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateAlertStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	alert, err := h.alerts.UpdateStatus(c.Param("id"), userID, models.AlertStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

func (h *AlertHandler) Delete(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.alerts.DeleteAlert(c.Param("id"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AlertHandler) Vote(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.VoteRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	alert, err := h.alerts.Vote(c.Param("id"), userID, models.VoteType(req.VoteType))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

func (h *AlertHandler) CreateComment(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	comment, err := h.comments.Create(c.Param("id"), userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *AlertHandler) ListComments(c *gin.Context) {
	comments, err := h.comments.ListByAlert(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": comments, "count": len(comments)})
}

func (h *AlertHandler) DeleteComment(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.comments.Delete(c.Param("id"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
