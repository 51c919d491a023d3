package geocodefx

import (
	"go.uber.org/fx"

	"wanderlust/internal/api/controllers"
	"wanderlust/internal/services"
	mem "wanderlust/pkg/memcache"
)

var Module = fx.Provide(
	provideCoordinateCache,
	provideGeocodeResolver,
	provideGeocodeController,
)

func provideCoordinateCache() mem.CoordinateStore {
	return mem.NewCoordinateCache()
}

func provideGeocodeResolver(cache mem.CoordinateStore) services.GeocodeResolverInterface {
	return services.NewGeocodeResolver(cache, services.RegionIndia)
}

func provideGeocodeController(resolver services.GeocodeResolverInterface) *controllers.GeocodeController {
	return controllers.NewGeocodeController(resolver)
}
