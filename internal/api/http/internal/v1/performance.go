package v1

import (
	"net/http"

	"github.com/coopconnect/backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initPerformanceRoutes(api *gin.RouterGroup) {
	performance := api.Group("/performance")
	{
		performance.GET("/dates", h.getPerformanceDates)
		performance.GET("/:date", h.getPerformanceByDate)
		performance.POST("/add", h.createPerformance)
		performance.PUT("/update/:date", h.updatePerformance)
		performance.DELETE("/delete/:date", h.deletePerformance)
	}
}

type createPerformanceRequest struct {
	Date         string   `json:"date" binding:"required,date"`
	CPUUsage     *float64 `json:"cpu_usage" binding:"required,gte=0"`
	MemoryUsage  *float64 `json:"memory_usage" binding:"required,gte=0"`
	NetworkUsage *float64 `json:"network_usage" binding:"required,gte=0"`
	DiskUsage    *float64 `json:"disk_usage" binding:"required,gte=0"`
}

type updatePerformanceRequest struct {
	CPUUsage     *float64 `json:"cpu_usage" binding:"omitempty,gte=0"`
	MemoryUsage  *float64 `json:"memory_usage" binding:"omitempty,gte=0"`
	NetworkUsage *float64 `json:"network_usage" binding:"omitempty,gte=0"`
	DiskUsage    *float64 `json:"disk_usage" binding:"omitempty,gte=0"`
}

// @Summary Get Performance Dates
// @Tags Performance
// @Description Dates with recorded telemetry, newest first
// @ModuleID getPerformanceDates
// @Produce  json
// @Success 200 {array} string
// @Failure 500 {object} ErrorStruct
// @Router /performance/dates [get]
func (h *Handler) getPerformanceDates(c *gin.Context) {
	dates, err := h.services.Performance.GetDates(c.Request.Context())
	if err != nil {
		errorResponse(c, "get performance dates failed", err)
		return
	}
	c.JSON(http.StatusOK, dates)
}

// @Summary Get Performance By Date
// @Tags Performance
// @ModuleID getPerformanceByDate
// @Produce  json
// @Param date path string true "Date YYYY-MM-DD"
// @Success 200 {object} domain.Performance
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /performance/{date} [get]
func (h *Handler) getPerformanceByDate(c *gin.Context) {
	date, ok := dateParam(c, "date")
	if !ok {
		return
	}

	perf, err := h.services.Performance.GetByDate(c.Request.Context(), date)
	if err != nil {
		errorResponse(c, "get performance failed", err)
		return
	}
	c.JSON(http.StatusOK, perf)
}

// @Summary Add Performance
// @Tags Performance
// @ModuleID createPerformance
// @Accept  json
// @Produce  json
// @Param input body createPerformanceRequest true "Telemetry"
// @Success 201 {object} CreatedStruct
// @Failure 400 {object} ValidationErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /performance/add [post]
func (h *Handler) createPerformance(c *gin.Context) {
	var req createPerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	date, _ := domain.ParseDate(req.Date)
	id, err := h.services.Performance.Create(c.Request.Context(), &domain.Performance{
		RecordedOn:   date,
		CPUUsage:     *req.CPUUsage,
		MemoryUsage:  *req.MemoryUsage,
		NetworkUsage: *req.NetworkUsage,
		DiskUsage:    *req.DiskUsage,
	})
	if err != nil {
		errorResponse(c, "create performance failed", err)
		return
	}
	createdResponse(c, "Performance data added successfully", id)
}

// @Summary Update Performance
// @Tags Performance
// @ModuleID updatePerformance
// @Accept  json
// @Produce  json
// @Param date path string true "Date YYYY-MM-DD"
// @Param input body updatePerformanceRequest true "Fields to update"
// @Success 200 {object} MessageStruct
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /performance/update/{date} [put]
func (h *Handler) updatePerformance(c *gin.Context) {
	date, ok := dateParam(c, "date")
	if !ok {
		return
	}

	var req updatePerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	err := h.services.Performance.Update(c.Request.Context(), date, domain.PerformanceUpdate{
		CPUUsage:     req.CPUUsage,
		MemoryUsage:  req.MemoryUsage,
		NetworkUsage: req.NetworkUsage,
		DiskUsage:    req.DiskUsage,
	})
	if err != nil {
		errorResponse(c, "update performance failed", err)
		return
	}
	messageResponse(c, "Performance data updated successfully")
}

// @Summary Delete Performance
// @Tags Performance
// @ModuleID deletePerformance
// @Produce  json
// @Param date path string true "Date YYYY-MM-DD"
// @Success 200 {object} MessageStruct
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /performance/delete/{date} [delete]
func (h *Handler) deletePerformance(c *gin.Context) {
	date, ok := dateParam(c, "date")
	if !ok {
		return
	}

	if err := h.services.Performance.Delete(c.Request.Context(), date); err != nil {
		errorResponse(c, "delete performance failed", err)
		return
	}
	messageResponse(c, "Performance data deleted successfully")
}
