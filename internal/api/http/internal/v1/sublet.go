package v1

import (
	"net/http"

	"github.com/coopconnect/backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initSubletsRoutes(api *gin.RouterGroup) {
	sublets := api.Group("/sublets")
	{
		sublets.GET("", h.getSublets)
		sublets.GET("/dates", h.getSubletsWithin)
		sublets.PUT("/:id", h.updateSublet)
		sublets.DELETE("/:id", h.deleteSublet)
	}
}

type subletDatesQuery struct {
	StartDate string `form:"start_date" json:"start_date" binding:"required,date"`
	EndDate   string `form:"end_date" json:"end_date" binding:"required,date"`
}

type updateSubletRequest struct {
	HousingID *int64  `json:"housing_id" binding:"omitempty,gt=0"`
	StartDate *string `json:"start_date" binding:"omitempty,date"`
	EndDate   *string `json:"end_date" binding:"omitempty,date"`
}

// @Summary Get Sublets
// @Tags Sublets
// @ModuleID getSublets
// @Accept  json
// @Produce  json
// @Success 200 {array} domain.Sublet
// @Failure 500 {object} ErrorStruct
// @Router /sublets [get]
func (h *Handler) getSublets(c *gin.Context) {
	sublets, err := h.services.Sublets.GetAll(c.Request.Context())
	if err != nil {
		errorResponse(c, "get sublets failed", err)
		return
	}
	c.JSON(http.StatusOK, sublets)
}

// @Summary Get Sublets Within Dates
// @Tags Sublets
// @Description Sublets that start and end inside the given range
// @ModuleID getSubletsWithin
// @Accept  json
// @Produce  json
// @Param start_date query string true "Start date YYYY-MM-DD"
// @Param end_date query string true "End date YYYY-MM-DD"
// @Success 200 {array} domain.Sublet
// @Failure 400 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /sublets/dates [get]
func (h *Handler) getSubletsWithin(c *gin.Context) {
	var query subletDatesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	start, _ := domain.ParseDate(query.StartDate)
	end, _ := domain.ParseDate(query.EndDate)

	sublets, err := h.services.Sublets.GetWithin(c.Request.Context(), start, end)
	if err != nil {
		errorResponse(c, "get sublets within dates failed", err)
		return
	}
	c.JSON(http.StatusOK, sublets)
}

// @Summary Update Sublet
// @Tags Sublets
// @ModuleID updateSublet
// @Accept  json
// @Produce  json
// @Param id path int true "Sublet ID"
// @Param input body updateSubletRequest true "Fields to update"
// @Success 200 {object} MessageStruct
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /sublets/{id} [put]
func (h *Handler) updateSublet(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req updateSubletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	err := h.services.Sublets.Update(c.Request.Context(), id, domain.SubletUpdate{
		HousingID: req.HousingID,
		StartDate: parseOptionalDate(req.StartDate),
		EndDate:   parseOptionalDate(req.EndDate),
	})
	if err != nil {
		errorResponse(c, "update sublet failed", err)
		return
	}
	messageResponse(c, "Sublet updated successfully")
}

// @Summary Delete Sublet
// @Tags Sublets
// @ModuleID deleteSublet
// @Accept  json
// @Produce  json
// @Param id path int true "Sublet ID"
// @Success 200 {object} MessageStruct
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /sublets/{id} [delete]
func (h *Handler) deleteSublet(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Sublets.Delete(c.Request.Context(), id); err != nil {
		errorResponse(c, "delete sublet failed", err)
		return
	}
	messageResponse(c, "Sublet deleted successfully")
}
