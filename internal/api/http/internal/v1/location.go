package v1

import (
	"net/http"

	"github.com/coopconnect/backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initLocationsRoutes(api *gin.RouterGroup) {
	location := api.Group("/location")
	{
		location.GET("", h.getLocations)
		location.POST("", h.createLocation)
		location.GET("/:zip", h.getLocationByZip)
		location.PUT("/:zip", h.updateLocation)
		location.DELETE("/:zip", h.deleteLocation)
	}

	api.GET("/zipcodes", h.getZipCodes)
}

type createLocationRequest struct {
	Zip               string   `json:"zip" binding:"required,zipcode"`
	CityID            int64    `json:"city_id" binding:"required,gt=0"`
	StudentPopulation int64    `json:"student_population" binding:"gte=0"`
	SafetyRating      *float64 `json:"safety_rating" binding:"required,gte=0"`
}

type updateLocationRequest struct {
	CityID            *int64   `json:"city_id" binding:"omitempty,gt=0"`
	StudentPopulation *int64   `json:"student_population" binding:"omitempty,gte=0"`
	SafetyRating      *float64 `json:"safety_rating" binding:"omitempty,gte=0"`
}

type locationCreatedStruct struct {
	Message string `json:"message"`
	Zip     string `json:"zip"`
}

// @Summary Get Locations
// @Tags Locations
// @Description Get all zip code locations
// @ModuleID getLocations
// @Accept  json
// @Produce  json
// @Success 200 {array} domain.Location
// @Failure 500 {object} ErrorStruct
// @Router /location [get]
func (h *Handler) getLocations(c *gin.Context) {
	locations, err := h.services.Locations.GetAll(c.Request.Context())
	if err != nil {
		errorResponse(c, "get locations failed", err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

// @Summary Get Zip Codes
// @Tags Locations
// @ModuleID getZipCodes
// @Accept  json
// @Produce  json
// @Success 200 {array} string
// @Failure 500 {object} ErrorStruct
// @Router /zipcodes [get]
func (h *Handler) getZipCodes(c *gin.Context) {
	zips, err := h.services.Locations.GetZipCodes(c.Request.Context())
	if err != nil {
		errorResponse(c, "get zip codes failed", err)
		return
	}
	c.JSON(http.StatusOK, zips)
}

// @Summary Create Location
// @Tags Locations
// @ModuleID createLocation
// @Accept  json
// @Produce  json
// @Param input body createLocationRequest true "Location"
// @Success 201 {object} locationCreatedStruct
// @Failure 400 {object} ValidationErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /location [post]
func (h *Handler) createLocation(c *gin.Context) {
	var req createLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	err := h.services.Locations.Create(c.Request.Context(), &domain.Location{
		Zip:               req.Zip,
		CityID:            req.CityID,
		StudentPopulation: req.StudentPopulation,
		SafetyRating:      *req.SafetyRating,
	})
	if err != nil {
		errorResponse(c, "create location failed", err)
		return
	}
	c.JSON(http.StatusCreated, locationCreatedStruct{Message: "Location created successfully", Zip: req.Zip})
}

// @Summary Get Location By Zip
// @Tags Locations
// @ModuleID getLocationByZip
// @Accept  json
// @Produce  json
// @Param zip path string true "Zip code"
// @Success 200 {object} domain.Location
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /location/{zip} [get]
func (h *Handler) getLocationByZip(c *gin.Context) {
	location, err := h.services.Locations.GetOneByZip(c.Request.Context(), c.Param("zip"))
	if err != nil {
		errorResponse(c, "get location failed", err)
		return
	}
	c.JSON(http.StatusOK, location)
}

// @Summary Update Location
// @Tags Locations
// @ModuleID updateLocation
// @Accept  json
// @Produce  json
// @Param zip path string true "Zip code"
// @Param input body updateLocationRequest true "Fields to update"
// @Success 200 {object} MessageStruct
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /location/{zip} [put]
func (h *Handler) updateLocation(c *gin.Context) {
	var req updateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	err := h.services.Locations.Update(c.Request.Context(), c.Param("zip"), domain.LocationUpdate{
		CityID:            req.CityID,
		StudentPopulation: req.StudentPopulation,
		SafetyRating:      req.SafetyRating,
	})
	if err != nil {
		errorResponse(c, "update location failed", err)
		return
	}
	messageResponse(c, "Location updated successfully")
}

// @Summary Delete Location
// @Tags Locations
// @ModuleID deleteLocation
// @Accept  json
// @Produce  json
// @Param zip path string true "Zip code"
// @Success 200 {object} MessageStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /location/{zip} [delete]
func (h *Handler) deleteLocation(c *gin.Context) {
	if err := h.services.Locations.Delete(c.Request.Context(), c.Param("zip")); err != nil {
		errorResponse(c, "delete location failed", err)
		return
	}
	messageResponse(c, "Location deleted successfully")
}
