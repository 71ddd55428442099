package v1

import (
	"net/http"

	"github.com/coopconnect/backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initJobPostingsRoutes(api *gin.RouterGroup) {
	postings := api.Group("/job_postings")
	{
		postings.GET("", h.getJobPostings)
		postings.POST("", h.createJobPosting)
		postings.GET("/:id", h.getJobPostingByID)
		postings.PUT("/:id", h.updateJobPosting)
		postings.DELETE("/:id", h.deleteJobPosting)
		postings.GET("/location/:zip", h.getJobPostingsByLocation)
	}
}

type createJobPostingRequest struct {
	Title        string   `json:"title" binding:"required,max=255"`
	Bio          string   `json:"bio" binding:"required"`
	Compensation *float64 `json:"compensation" binding:"required,gte=0"`
	LocationID   string   `json:"location_id" binding:"required,zipcode"`
	UserEmail    string   `json:"user_email" binding:"required,email"`
}

type updateJobPostingRequest struct {
	Title        *string  `json:"title" binding:"omitempty,min=1,max=255"`
	Bio          *string  `json:"bio" binding:"omitempty,min=1"`
	Compensation *float64 `json:"compensation" binding:"omitempty,gte=0"`
	LocationID   *string  `json:"location_id" binding:"omitempty,zipcode"`
}

// @Summary Get Job Postings
// @Tags Job Postings
// @ModuleID getJobPostings
// @Accept  json
// @Produce  json
// @Success 200 {array} domain.JobPosting
// @Failure 500 {object} ErrorStruct
// @Router /job_postings [get]
func (h *Handler) getJobPostings(c *gin.Context) {
	postings, err := h.services.JobPostings.GetAll(c.Request.Context())
	if err != nil {
		errorResponse(c, "get job postings failed", err)
		return
	}
	c.JSON(http.StatusOK, postings)
}

// @Summary Create Job Posting
// @Tags Job Postings
// @Description Create a posting owned by the user with the given email
// @ModuleID createJobPosting
// @Accept  json
// @Produce  json
// @Param input body createJobPostingRequest true "Job posting"
// @Success 201 {object} CreatedStruct
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /job_postings [post]
func (h *Handler) createJobPosting(c *gin.Context) {
	var req createJobPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	posting := &domain.JobPosting{
		Title:        req.Title,
		Bio:          req.Bio,
		Compensation: *req.Compensation,
		LocationID:   req.LocationID,
	}
	id, err := h.services.JobPostings.Create(c.Request.Context(), posting, req.UserEmail)
	if err != nil {
		errorResponse(c, "create job posting failed", err)
		return
	}
	createdResponse(c, "Job posting created successfully", id)
}

// @Summary Get Job Posting By ID
// @Tags Job Postings
// @ModuleID getJobPostingByID
// @Accept  json
// @Produce  json
// @Param id path int true "Job posting ID"
// @Success 200 {object} domain.JobPosting
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /job_postings/{id} [get]
func (h *Handler) getJobPostingByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	posting, err := h.services.JobPostings.GetOneByID(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, "get job posting failed", err)
		return
	}
	c.JSON(http.StatusOK, posting)
}

// @Summary Update Job Posting
// @Tags Job Postings
// @ModuleID updateJobPosting
// @Accept  json
// @Produce  json
// @Param id path int true "Job posting ID"
// @Param input body updateJobPostingRequest true "Fields to update"
// @Success 200 {object} MessageStruct
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /job_postings/{id} [put]
func (h *Handler) updateJobPosting(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req updateJobPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	err := h.services.JobPostings.Update(c.Request.Context(), id, domain.JobPostingUpdate{
		Title:        req.Title,
		Bio:          req.Bio,
		Compensation: req.Compensation,
		LocationID:   req.LocationID,
	})
	if err != nil {
		errorResponse(c, "update job posting failed", err)
		return
	}
	messageResponse(c, "Job posting updated successfully")
}

// @Summary Delete Job Posting
// @Tags Job Postings
// @ModuleID deleteJobPosting
// @Accept  json
// @Produce  json
// @Param id path int true "Job posting ID"
// @Success 200 {object} MessageStruct
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /job_postings/{id} [delete]
func (h *Handler) deleteJobPosting(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.JobPostings.Delete(c.Request.Context(), id); err != nil {
		errorResponse(c, "delete job posting failed", err)
		return
	}
	messageResponse(c, "Job posting deleted successfully")
}

// @Summary Get Job Postings By Location
// @Tags Job Postings
// @ModuleID getJobPostingsByLocation
// @Accept  json
// @Produce  json
// @Param zip path string true "Zip code"
// @Success 200 {array} domain.JobPosting
// @Failure 500 {object} ErrorStruct
// @Router /job_postings/location/{zip} [get]
func (h *Handler) getJobPostingsByLocation(c *gin.Context) {
	postings, err := h.services.JobPostings.GetByLocation(c.Request.Context(), c.Param("zip"))
	if err != nil {
		errorResponse(c, "get job postings by location failed", err)
		return
	}
	c.JSON(http.StatusOK, postings)
}
