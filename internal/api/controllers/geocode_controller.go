package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

type GeocodeController struct {
	resolver services.GeocodeResolverInterface
}

func NewGeocodeController(resolver services.GeocodeResolverInterface) *GeocodeController {
	return &GeocodeController{resolver: resolver}
}

func (g *GeocodeController) ResolveHandler(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter 'q' is required")
		return
	}

	point := g.resolver.Resolve(c.Request.Context(), query)
	utils.RespondSuccess(c, point, "Location resolved")
}
