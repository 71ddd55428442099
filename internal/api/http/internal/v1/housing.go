package v1

import (
	"net/http"

	"github.com/coopconnect/backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initHousingRoutes(api *gin.RouterGroup) {
	housing := api.Group("/housing")
	{
		housing.GET("", h.getHousing)
		housing.POST("", h.createHousing)
		housing.GET("/:id", h.getHousingByID)
		housing.PUT("/:id", h.updateHousing)
		housing.DELETE("/:id", h.deleteHousing)
	}
}

type createHousingRequest struct {
	CityName string   `json:"city_name" binding:"required,max=255"`
	Zip      string   `json:"zip" binding:"required,zipcode"`
	Address  string   `json:"address" binding:"required,max=255"`
	Rent     *float64 `json:"rent" binding:"required,gte=0"`
	SqFt     int64    `json:"sq_ft" binding:"required,gt=0"`
}

type updateHousingRequest struct {
	CityName *string  `json:"city_name" binding:"omitempty,min=1,max=255"`
	Zip      *string  `json:"zip" binding:"omitempty,zipcode"`
	Address  *string  `json:"address" binding:"omitempty,min=1,max=255"`
	Rent     *float64 `json:"rent" binding:"omitempty,gte=0"`
	SqFt     *int64   `json:"sq_ft" binding:"omitempty,gt=0"`
}

// @Summary Get Housing
// @Tags Housing
// @Description Get all housing units
// @ModuleID getHousing
// @Accept  json
// @Produce  json
// @Success 200 {array} domain.Housing
// @Failure 500 {object} ErrorStruct
// @Router /housing [get]
func (h *Handler) getHousing(c *gin.Context) {
	housing, err := h.services.Housing.GetAll(c.Request.Context())
	if err != nil {
		errorResponse(c, "get housing failed", err)
		return
	}
	c.JSON(http.StatusOK, housing)
}

// @Summary Create Housing
// @Tags Housing
// @Description Create a housing unit in the city with the given name
// @ModuleID createHousing
// @Accept  json
// @Produce  json
// @Param input body createHousingRequest true "Housing"
// @Success 201 {object} CreatedStruct
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /housing [post]
func (h *Handler) createHousing(c *gin.Context) {
	var req createHousingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	housing := &domain.Housing{
		Zip:     req.Zip,
		Address: req.Address,
		Rent:    *req.Rent,
		SqFt:    req.SqFt,
	}
	id, err := h.services.Housing.Create(c.Request.Context(), housing, req.CityName)
	if err != nil {
		errorResponse(c, "create housing failed", err)
		return
	}
	createdResponse(c, "Housing created successfully", id)
}

// @Summary Get Housing By ID
// @Tags Housing
// @ModuleID getHousingByID
// @Accept  json
// @Produce  json
// @Param id path int true "Housing ID"
// @Success 200 {object} domain.Housing
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /housing/{id} [get]
func (h *Handler) getHousingByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	housing, err := h.services.Housing.GetOneByID(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, "get housing failed", err)
		return
	}
	c.JSON(http.StatusOK, housing)
}

// @Summary Update Housing
// @Tags Housing
// @ModuleID updateHousing
// @Accept  json
// @Produce  json
// @Param id path int true "Housing ID"
// @Param input body updateHousingRequest true "Fields to update"
// @Success 200 {object} MessageStruct
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /housing/{id} [put]
func (h *Handler) updateHousing(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req updateHousingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	err := h.services.Housing.Update(c.Request.Context(), id, domain.HousingUpdate{
		CityName: req.CityName,
		Zip:      req.Zip,
		Address:  req.Address,
		Rent:     req.Rent,
		SqFt:     req.SqFt,
	})
	if err != nil {
		errorResponse(c, "update housing failed", err)
		return
	}
	messageResponse(c, "Housing updated successfully")
}

// @Summary Delete Housing
// @Tags Housing
// @ModuleID deleteHousing
// @Accept  json
// @Produce  json
// @Param id path int true "Housing ID"
// @Success 200 {object} MessageStruct
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /housing/{id} [delete]
func (h *Handler) deleteHousing(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Housing.Delete(c.Request.Context(), id); err != nil {
		errorResponse(c, "delete housing failed", err)
		return
	}
	messageResponse(c, "Housing deleted successfully")
}
