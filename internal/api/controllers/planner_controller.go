package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderlust/internal/models/request_models"
	"wanderlust/internal/models/response_models"
	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
	routeService   services.RouteServiceInterface
}

func NewPlannerController(
	plannerService services.PlannerServiceInterface,
	routeService services.RouteServiceInterface,
) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
		routeService:   routeService,
	}
}

func (p *PlannerController) CreateTripHandler(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	itinerary, err := p.plannerService.CreateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	waypoints := p.routeService.BuildRoute(c.Request.Context(), itinerary, req.Origin)

	utils.RespondSuccess(c, response_models.TripPlanResponse{
		Itinerary: itinerary,
		Waypoints: waypoints,
	}, "Itinerary generated successfully")
}
