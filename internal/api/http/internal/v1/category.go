package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initCategoriesRoutes(api *gin.RouterGroup) {
	categories := api.Group("/categories")
	{
		categories.GET("", h.getCategories)
		categories.POST("", h.createCategory)
	}
}

type createCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// @Summary Get Categories
// @Tags Categories
// @Description Get all user categories
// @ModuleID getCategories
// @Accept  json
// @Produce  json
// @Success 200 {array} domain.Category
// @Failure 500 {object} ErrorStruct
// @Router /categories [get]
func (h *Handler) getCategories(c *gin.Context) {
	categories, err := h.services.Categories.GetAll(c.Request.Context())
	if err != nil {
		errorResponse(c, "get categories failed", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// @Summary Create Category
// @Tags Categories
// @Description Create a user category
// @ModuleID createCategory
// @Accept  json
// @Produce  json
// @Param input body createCategoryRequest true "Category"
// @Success 201 {object} CreatedStruct
// @Failure 400 {object} ValidationErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /categories [post]
func (h *Handler) createCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	id, err := h.services.Categories.Create(c.Request.Context(), strings.TrimSpace(req.Name))
	if err != nil {
		errorResponse(c, "create category failed", err)
		return
	}
	createdResponse(c, "Category created successfully", id)
}
