package v1

import (
	"net/http"

	"github.com/coopconnect/backend/internal/domain"
	"github.com/coopconnect/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Hospitals and airports share one shape, so both route groups are served by
// the facility helpers below with a different service behind them.
func (h *Handler) initFacilitiesRoutes(api *gin.RouterGroup) {
	hospitals := api.Group("/hospitals")
	{
		hospitals.GET("", h.getHospitals)
		hospitals.GET("/:city", h.getHospitalsByCity)
		hospitals.POST("", h.createHospital)
		hospitals.PUT("/:id", h.updateHospital)
		hospitals.DELETE("/:id", h.deleteHospital)
	}

	airports := api.Group("/airports")
	{
		airports.GET("", h.getAirports)
		airports.GET("/:city", h.getAirportsByCity)
		airports.POST("", h.createAirport)
		airports.PUT("/:id", h.updateAirport)
		airports.DELETE("/:id", h.deleteAirport)
	}
}

type createFacilityRequest struct {
	Name   string `json:"name" binding:"required,max=255"`
	CityID int64  `json:"city_id" binding:"required,gt=0"`
	Zip    string `json:"zip" binding:"required,zipcode"`
}

type updateFacilityRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=1,max=255"`
	CityID *int64  `json:"city_id" binding:"omitempty,gt=0"`
	Zip    *string `json:"zip" binding:"omitempty,zipcode"`
}

func (h *Handler) listFacilities(c *gin.Context, facilities service.Facilities, kind string) {
	list, err := facilities.GetAll(c.Request.Context())
	if err != nil {
		errorResponse(c, "get "+kind+" failed", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) listFacilitiesByCity(c *gin.Context, facilities service.Facilities, kind string) {
	list, err := facilities.GetByCity(c.Request.Context(), c.Param("city"))
	if err != nil {
		errorResponse(c, "get "+kind+" by city failed", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) createFacility(c *gin.Context, facilities service.Facilities, created string) {
	var req createFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	id, err := facilities.Create(c.Request.Context(), &domain.Facility{
		Name:   req.Name,
		CityID: req.CityID,
		Zip:    req.Zip,
	})
	if err != nil {
		errorResponse(c, "create facility failed", err)
		return
	}
	createdResponse(c, created, id)
}

func (h *Handler) updateFacility(c *gin.Context, facilities service.Facilities, updated string) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req updateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	err := facilities.Update(c.Request.Context(), id, domain.FacilityUpdate{
		Name:   req.Name,
		CityID: req.CityID,
		Zip:    req.Zip,
	})
	if err != nil {
		errorResponse(c, "update facility failed", err)
		return
	}
	messageResponse(c, updated)
}

func (h *Handler) deleteFacility(c *gin.Context, facilities service.Facilities, deleted string) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := facilities.Delete(c.Request.Context(), id); err != nil {
		errorResponse(c, "delete facility failed", err)
		return
	}
	messageResponse(c, deleted)
}

// @Summary Get Hospitals
// @Tags Hospitals
// @ModuleID getHospitals
// @Produce  json
// @Success 200 {array} domain.Facility
// @Failure 500 {object} ErrorStruct
// @Router /hospitals [get]
func (h *Handler) getHospitals(c *gin.Context) {
	h.listFacilities(c, h.services.Hospitals, "hospitals")
}

// @Summary Get Hospitals By City
// @Tags Hospitals
// @Description Hospitals in a city given by numeric id or by name
// @ModuleID getHospitalsByCity
// @Produce  json
// @Param city path string true "City ID or name"
// @Success 200 {array} domain.Facility
// @Failure 500 {object} ErrorStruct
// @Router /hospitals/{city} [get]
func (h *Handler) getHospitalsByCity(c *gin.Context) {
	h.listFacilitiesByCity(c, h.services.Hospitals, "hospitals")
}

// @Summary Create Hospital
// @Tags Hospitals
// @ModuleID createHospital
// @Accept  json
// @Produce  json
// @Param input body createFacilityRequest true "Hospital"
// @Success 201 {object} CreatedStruct
// @Failure 400 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /hospitals [post]
func (h *Handler) createHospital(c *gin.Context) {
	h.createFacility(c, h.services.Hospitals, "Hospital created successfully")
}

// @Summary Update Hospital
// @Tags Hospitals
// @ModuleID updateHospital
// @Accept  json
// @Produce  json
// @Param id path int true "Hospital ID"
// @Param input body updateFacilityRequest true "Fields to update"
// @Success 200 {object} MessageStruct
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /hospitals/{id} [put]
func (h *Handler) updateHospital(c *gin.Context) {
	h.updateFacility(c, h.services.Hospitals, "Hospital updated successfully")
}

// @Summary Delete Hospital
// @Tags Hospitals
// @ModuleID deleteHospital
// @Produce  json
// @Param id path int true "Hospital ID"
// @Success 200 {object} MessageStruct
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /hospitals/{id} [delete]
func (h *Handler) deleteHospital(c *gin.Context) {
	h.deleteFacility(c, h.services.Hospitals, "Hospital deleted successfully")
}

// @Summary Get Airports
// @Tags Airports
// @ModuleID getAirports
// @Produce  json
// @Success 200 {array} domain.Facility
// @Failure 500 {object} ErrorStruct
// @Router /airports [get]
func (h *Handler) getAirports(c *gin.Context) {
	h.listFacilities(c, h.services.Airports, "airports")
}

// @Summary Get Airports By City
// @Tags Airports
// @Description Airports in a city given by numeric id or by name
// @ModuleID getAirportsByCity
// @Produce  json
// @Param city path string true "City ID or name"
// @Success 200 {array} domain.Facility
// @Failure 500 {object} ErrorStruct
// @Router /airports/{city} [get]
func (h *Handler) getAirportsByCity(c *gin.Context) {
	h.listFacilitiesByCity(c, h.services.Airports, "airports")
}

// @Summary Create Airport
// @Tags Airports
// @ModuleID createAirport
// @Accept  json
// @Produce  json
// @Param input body createFacilityRequest true "Airport"
// @Success 201 {object} CreatedStruct
// @Failure 400 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /airports [post]
func (h *Handler) createAirport(c *gin.Context) {
	h.createFacility(c, h.services.Airports, "Airport created successfully")
}

// @Summary Update Airport
// @Tags Airports
// @ModuleID updateAirport
// @Accept  json
// @Produce  json
// @Param id path int true "Airport ID"
// @Param input body updateFacilityRequest true "Fields to update"
// @Success 200 {object} MessageStruct
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /airports/{id} [put]
func (h *Handler) updateAirport(c *gin.Context) {
	h.updateFacility(c, h.services.Airports, "Airport updated successfully")
}

// @Summary Delete Airport
// @Tags Airports
// @ModuleID deleteAirport
// @Produce  json
// @Param id path int true "Airport ID"
// @Success 200 {object} MessageStruct
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /airports/{id} [delete]
func (h *Handler) deleteAirport(c *gin.Context) {
	h.deleteFacility(c, h.services.Airports, "Airport deleted successfully")
}
