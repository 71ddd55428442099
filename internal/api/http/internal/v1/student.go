package v1

import (
	"net/http"

	"github.com/coopconnect/backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initStudentsRoutes(api *gin.RouterGroup) {
	students := api.Group("/students/:id")
	{
		students.GET("/jobs", h.getOpenJobs)
		students.POST("/apply", h.applyToJob)
		students.GET("/applications", h.getStudentApplications)
		students.DELETE("/applications/:applicationId", h.withdrawApplication)
		students.GET("/sublets", h.getStudentSublets)
		students.POST("/sublet", h.createSublet)
	}
}

type applyRequest struct {
	JobPostingID int64 `json:"job_posting_id" binding:"required,gt=0"`
}

type createSubletRequest struct {
	HousingID int64  `json:"housing_id" binding:"required,gt=0"`
	StartDate string `json:"start_date" binding:"required,date"`
	EndDate   string `json:"end_date" binding:"required,date"`
}

// @Summary Get Open Jobs
// @Tags Students
// @Description Job postings the student has not applied to yet
// @ModuleID getOpenJobs
// @Accept  json
// @Produce  json
// @Param id path int true "Student ID"
// @Success 200 {array} domain.JobPosting
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /students/{id}/jobs [get]
func (h *Handler) getOpenJobs(c *gin.Context) {
	studentID, ok := idParam(c, "id")
	if !ok {
		return
	}

	postings, err := h.services.Applications.GetOpenJobs(c.Request.Context(), studentID)
	if err != nil {
		errorResponse(c, "get open jobs failed", err)
		return
	}
	c.JSON(http.StatusOK, postings)
}

// @Summary Apply To Job
// @Tags Students
// @Description Create a pending application for a job posting
// @ModuleID applyToJob
// @Accept  json
// @Produce  json
// @Param id path int true "Student ID"
// @Param input body applyRequest true "Job posting"
// @Success 201 {object} CreatedStruct
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /students/{id}/apply [post]
func (h *Handler) applyToJob(c *gin.Context) {
	studentID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	id, err := h.services.Applications.Apply(c.Request.Context(), studentID, req.JobPostingID)
	if err != nil {
		errorResponse(c, "apply to job failed", err)
		return
	}
	createdResponse(c, "Application submitted successfully", id)
}

// @Summary Get Student Applications
// @Tags Students
// @Description Applications of a student with the title of each posting
// @ModuleID getStudentApplications
// @Accept  json
// @Produce  json
// @Param id path int true "Student ID"
// @Success 200 {array} domain.ApplicationWithTitle
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /students/{id}/applications [get]
func (h *Handler) getStudentApplications(c *gin.Context) {
	studentID, ok := idParam(c, "id")
	if !ok {
		return
	}

	applications, err := h.services.Applications.GetByStudent(c.Request.Context(), studentID)
	if err != nil {
		errorResponse(c, "get student applications failed", err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// @Summary Withdraw Application
// @Tags Students
// @ModuleID withdrawApplication
// @Accept  json
// @Produce  json
// @Param id path int true "Student ID"
// @Param applicationId path int true "Application ID"
// @Success 200 {object} MessageStruct
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /students/{id}/applications/{applicationId} [delete]
func (h *Handler) withdrawApplication(c *gin.Context) {
	studentID, ok := idParam(c, "id")
	if !ok {
		return
	}
	applicationID, ok := idParam(c, "applicationId")
	if !ok {
		return
	}

	if err := h.services.Applications.Withdraw(c.Request.Context(), studentID, applicationID); err != nil {
		errorResponse(c, "withdraw application failed", err)
		return
	}
	messageResponse(c, "Application withdrawn successfully")
}

// @Summary Get Student Sublets
// @Tags Students
// @ModuleID getStudentSublets
// @Accept  json
// @Produce  json
// @Param id path int true "Student ID"
// @Success 200 {array} domain.Sublet
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /students/{id}/sublets [get]
func (h *Handler) getStudentSublets(c *gin.Context) {
	studentID, ok := idParam(c, "id")
	if !ok {
		return
	}

	sublets, err := h.services.Sublets.GetBySubletter(c.Request.Context(), studentID)
	if err != nil {
		errorResponse(c, "get student sublets failed", err)
		return
	}
	c.JSON(http.StatusOK, sublets)
}

// @Summary Create Sublet
// @Tags Students
// @Description Offer a housing unit for sublet between two dates
// @ModuleID createSublet
// @Accept  json
// @Produce  json
// @Param id path int true "Student ID"
// @Param input body createSubletRequest true "Sublet"
// @Success 201 {object} CreatedStruct
// @Failure 400 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /students/{id}/sublet [post]
func (h *Handler) createSublet(c *gin.Context) {
	studentID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req createSubletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	// both dates already passed the date rule
	start, _ := domain.ParseDate(req.StartDate)
	end, _ := domain.ParseDate(req.EndDate)

	sublet := &domain.Sublet{
		HousingID:   req.HousingID,
		SubletterID: studentID,
		StartDate:   start,
		EndDate:     end,
	}
	id, err := h.services.Sublets.Create(c.Request.Context(), sublet)
	if err != nil {
		errorResponse(c, "create sublet failed", err)
		return
	}
	createdResponse(c, "Sublet created successfully", id)
}
