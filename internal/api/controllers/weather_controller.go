package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

type WeatherController struct {
	weatherService services.WeatherServiceInterface
}

func NewWeatherController(weatherService services.WeatherServiceInterface) *WeatherController {
	return &WeatherController{weatherService: weatherService}
}

func (w *WeatherController) CurrentWeatherHandler(c *gin.Context) {
	place := c.Query("place")
	if place == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter 'place' is required")
		return
	}

	report, err := w.weatherService.CurrentWeather(c.Request.Context(), place)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Weather fetched successfully")
}
