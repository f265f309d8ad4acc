package handlers

import (
	"net/http"

	"alertnet_backend/internal/dto"
	"alertnet_backend/internal/middleware"
	"alertnet_backend/internal/models"
	"alertnet_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	BaseHandler
	categories services.CategoryService
}

func NewCategoryHandler(base BaseHandler, categories services.CategoryService) *CategoryHandler {
	return &CategoryHandler{BaseHandler: base, categories: categories}
}

func (h *CategoryHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/categories", h.List)
	r.GET("/categories/:id", h.Get)

	admin := r.Group("/categories", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	admin.POST("", h.Create)
	admin.DELETE("/:id", h.Deactivate)
}

func (h *CategoryHandler) List(c *gin.Context) {
	activeOnly := c.DefaultQuery("active", "true") == "true"
	categories, err := h.categories.List(activeOnly)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": categories, "count": len(categories)})
}

func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.categories.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	category, err := h.categories.Create(req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Deactivate(c *gin.Context) {
	if err := h.categories.Deactivate(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
