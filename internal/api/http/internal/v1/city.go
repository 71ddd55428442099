package v1

import (
	"math"
	"net/http"
	"strconv"

	"github.com/coopconnect/backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initCitiesRoutes(api *gin.RouterGroup) {
	city := api.Group("/city")
	{
		city.GET("", h.getCities)
		city.POST("", h.createCity)
		city.GET("/:id", h.getCityByID)
		city.PUT("/:id", h.updateCity)
		city.DELETE("/:id", h.deleteCity)
		city.GET("/:id/:targetCost", h.searchCitiesByCost)
	}

	cities := api.Group("/cities")
	{
		cities.GET("/hybrid", h.searchCitiesByHybridProportion)
		cities.GET("/:name/student_population", h.getCityStudentPopulation)
		cities.GET("/:name/safety_rating", h.getCitySafetyRatings)
		cities.GET("/:name/zipcodes", h.getCityZipCodes)
	}
}

type createCityRequest struct {
	Name              string   `json:"name" binding:"required,max=255"`
	AvgCostOfLiving   *float64 `json:"avg_cost_of_living" binding:"required,gte=0"`
	AvgRent           *float64 `json:"avg_rent" binding:"required,gte=0"`
	AvgWage           *float64 `json:"avg_wage" binding:"required,gt=0"`
	Population        int64    `json:"population" binding:"gte=0"`
	PropHybridWorkers *float64 `json:"prop_hybrid_workers" binding:"omitempty,gte=0,lte=1"`
}

type updateCityRequest struct {
	Name              *string  `json:"name" binding:"omitempty,min=1,max=255"`
	AvgCostOfLiving   *float64 `json:"avg_cost_of_living" binding:"omitempty,gte=0"`
	AvgRent           *float64 `json:"avg_rent" binding:"omitempty,gte=0"`
	AvgWage           *float64 `json:"avg_wage" binding:"omitempty,gt=0"`
	Population        *int64   `json:"population" binding:"omitempty,gte=0"`
	PropHybridWorkers *float64 `json:"prop_hybrid_workers" binding:"omitempty,gte=0,lte=1"`
}

type hybridSearchResponse struct {
	TargetProportion float64                  `json:"target_proportion"`
	Cities           []domain.CityHybridMatch `json:"cities"`
	Message          string                   `json:"message,omitempty"`
}

// @Summary Get Cities
// @Tags Cities
// @Description Get all cities
// @ModuleID getCities
// @Accept  json
// @Produce  json
// @Success 200 {array} domain.City
// @Failure 500 {object} ErrorStruct
// @Router /city [get]
func (h *Handler) getCities(c *gin.Context) {
	cities, err := h.services.Cities.GetAll(c.Request.Context())
	if err != nil {
		errorResponse(c, "get cities failed", err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

// @Summary Create City
// @Tags Cities
// @Description Create a city
// @ModuleID createCity
// @Accept  json
// @Produce  json
// @Param input body createCityRequest true "City"
// @Success 201 {object} CreatedStruct
// @Failure 400 {object} ValidationErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /city [post]
func (h *Handler) createCity(c *gin.Context) {
	var req createCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	city := &domain.City{
		Name:              req.Name,
		AvgCostOfLiving:   *req.AvgCostOfLiving,
		AvgRent:           *req.AvgRent,
		AvgWage:           *req.AvgWage,
		Population:        req.Population,
		PropHybridWorkers: req.PropHybridWorkers,
	}
	id, err := h.services.Cities.Create(c.Request.Context(), city)
	if err != nil {
		errorResponse(c, "create city failed", err)
		return
	}
	createdResponse(c, "City created successfully", id)
}

// @Summary Get City By ID
// @Tags Cities
// @Description Get one city
// @ModuleID getCityByID
// @Accept  json
// @Produce  json
// @Param id path int true "City ID"
// @Success 200 {object} domain.City
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /city/{id} [get]
func (h *Handler) getCityByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	city, err := h.services.Cities.GetOneByID(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, "get city failed", err)
		return
	}
	c.JSON(http.StatusOK, city)
}

// @Summary Update City
// @Tags Cities
// @Description Update the supplied fields of a city
// @ModuleID updateCity
// @Accept  json
// @Produce  json
// @Param id path int true "City ID"
// @Param input body updateCityRequest true "Fields to update"
// @Success 200 {object} MessageStruct
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /city/{id} [put]
func (h *Handler) updateCity(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req updateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	err := h.services.Cities.Update(c.Request.Context(), id, domain.CityUpdate{
		Name:              req.Name,
		AvgCostOfLiving:   req.AvgCostOfLiving,
		AvgRent:           req.AvgRent,
		AvgWage:           req.AvgWage,
		Population:        req.Population,
		PropHybridWorkers: req.PropHybridWorkers,
	})
	if err != nil {
		errorResponse(c, "update city failed", err)
		return
	}
	messageResponse(c, "City updated successfully")
}

// @Summary Delete City
// @Tags Cities
// @Description Delete a city
// @ModuleID deleteCity
// @Accept  json
// @Produce  json
// @Param id path int true "City ID"
// @Success 200 {object} MessageStruct
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /city/{id} [delete]
func (h *Handler) deleteCity(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Cities.Delete(c.Request.Context(), id); err != nil {
		errorResponse(c, "delete city failed", err)
		return
	}
	messageResponse(c, "City deleted successfully")
}

// @Summary Search Cities By Cost Of Living
// @Tags Cities
// @Description Up to 5 cities whose cost of living is within 20% of the target, closest first,
// @Description with cost and rent to wage ratios and deviations from the national average.
// @ModuleID searchCitiesByCost
// @Accept  json
// @Produce  json
// @Param id path int true "Kept for compatibility, does not filter"
// @Param targetCost path number true "Target monthly cost of living"
// @Success 200 {array} domain.CityCostMatch
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /city/{id}/{targetCost} [get]
func (h *Handler) searchCitiesByCost(c *gin.Context) {
	if _, ok := idParam(c, "id"); !ok {
		return
	}

	target, err := strconv.ParseFloat(c.Param("targetCost"), 64)
	if err != nil || !finite(target) {
		c.JSON(http.StatusBadRequest, ErrorStruct{Error: "must be a non-negative number", Field: "target_cost"})
		return
	}

	matches, err := h.services.Cities.SearchByCost(c.Request.Context(), target)
	if err != nil {
		errorResponse(c, "search cities by cost failed", err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// @Summary Search Cities By Hybrid Work Proportion
// @Tags Cities
// @Description Cities whose proportion of hybrid workers is within 0.1 of the target, closest first
// @ModuleID searchCitiesByHybridProportion
// @Accept  json
// @Produce  json
// @Param proportion query number true "Target proportion between 0 and 1"
// @Success 200 {object} hybridSearchResponse
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /cities/hybrid [get]
func (h *Handler) searchCitiesByHybridProportion(c *gin.Context) {
	raw, present := c.GetQuery("proportion")
	if !present {
		c.JSON(http.StatusBadRequest, ErrorStruct{Error: "is required", Field: "proportion"})
		return
	}
	proportion, err := strconv.ParseFloat(raw, 64)
	if err != nil || !finite(proportion) {
		c.JSON(http.StatusBadRequest, ErrorStruct{Error: "must be a number between 0 and 1", Field: "proportion"})
		return
	}

	matches, err := h.services.Cities.SearchByHybridProportion(c.Request.Context(), proportion)
	if err != nil {
		errorResponse(c, "search cities by hybrid proportion failed", err)
		return
	}

	resp := hybridSearchResponse{TargetProportion: proportion, Cities: matches}
	if len(matches) == 0 {
		resp.Cities = []domain.CityHybridMatch{}
		resp.Message = "No cities found with a similar proportion of hybrid workers"
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get City Student Population
// @Tags Cities
// @Description Total student population over the zip codes of a city
// @ModuleID getCityStudentPopulation
// @Accept  json
// @Produce  json
// @Param name path string true "City name"
// @Success 200 {object} domain.CityStudentPopulation
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /cities/{name}/student_population [get]
func (h *Handler) getCityStudentPopulation(c *gin.Context) {
	population, err := h.services.Locations.GetCityStudentPopulation(c.Request.Context(), c.Param("name"))
	if err != nil {
		errorResponse(c, "get city student population failed", err)
		return
	}
	c.JSON(http.StatusOK, population)
}

// @Summary Get City Safety Ratings
// @Tags Cities
// @Description Safety rating of every zip code in a city
// @ModuleID getCitySafetyRatings
// @Accept  json
// @Produce  json
// @Param name path string true "City name"
// @Success 200 {array} domain.ZipSafetyRating
// @Failure 500 {object} ErrorStruct
// @Router /cities/{name}/safety_rating [get]
func (h *Handler) getCitySafetyRatings(c *gin.Context) {
	ratings, err := h.services.Locations.GetCitySafetyRatings(c.Request.Context(), c.Param("name"))
	if err != nil {
		errorResponse(c, "get city safety ratings failed", err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// @Summary Get City Zip Codes
// @Tags Cities
// @Description Zip codes of a city with their student population
// @ModuleID getCityZipCodes
// @Accept  json
// @Produce  json
// @Param name path string true "City name"
// @Success 200 {array} domain.ZipStudentPopulation
// @Failure 500 {object} ErrorStruct
// @Router /cities/{name}/zipcodes [get]
func (h *Handler) getCityZipCodes(c *gin.Context) {
	zips, err := h.services.Locations.GetCityZipCodes(c.Request.Context(), c.Param("name"))
	if err != nil {
		errorResponse(c, "get city zip codes failed", err)
		return
	}
	c.JSON(http.StatusOK, zips)
}

// finite rejects the NaN and Inf spellings strconv.ParseFloat accepts.
func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
