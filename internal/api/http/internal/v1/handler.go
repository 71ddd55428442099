package v1

import (
	"github.com/coopconnect/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// @title CoopConnect API
// @version 1.0
// @description Co-op housing, job postings and city data for students, employers and parents.

// @BasePath /

type Handler struct {
	services *service.Services
}

func NewHandler(services *service.Services) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	h.initCitiesRoutes(api)
	h.initCategoriesRoutes(api)
	h.initUsersRoutes(api)
	h.initLocationsRoutes(api)
	h.initHousingRoutes(api)
	h.initJobPostingsRoutes(api)
	h.initStudentsRoutes(api)
	h.initSubletsRoutes(api)
	h.initFacilitiesRoutes(api)
	h.initPerformanceRoutes(api)
}
