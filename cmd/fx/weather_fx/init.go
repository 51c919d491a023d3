package weatherfx

import (
	"go.uber.org/fx"

	"wanderlust/internal/api/controllers"
	"wanderlust/internal/services"
)

var Module = fx.Provide(
	provideWeatherService,
	provideWeatherController,
)

func provideWeatherService(resolver services.GeocodeResolverInterface) services.WeatherServiceInterface {
	return services.NewWeatherService(resolver)
}

func provideWeatherController(weatherService services.WeatherServiceInterface) *controllers.WeatherController {
	return controllers.NewWeatherController(weatherService)
}
