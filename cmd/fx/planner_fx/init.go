// cmd/fx/planner_fx/module.go
package planner_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"wanderlust/internal/api/controllers"
	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

var Module = fx.Provide(
	ProvideItineraryClient,
	ProvideRequestBuilder,
	ProvidePlannerService,
	ProvideRouteService,
	ProvidePlannerController,
)

// GenerationConfig holds configuration for itinerary generation clients.
type GenerationConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideItineraryClient creates a generation client based on environment
// variables. A missing key is tolerated here: it surfaces as a config error
// on the first generation attempt, not as a startup crash.
func ProvideItineraryClient() (utils.ItineraryClientInterface, error) {
	config := getGenerationConfig()

	log.Printf("Initializing %s generation client with model: %s", config.Provider, config.Model)
	if config.APIKey == "" {
		log.Printf("Warning: no API key set for provider %s; generation requests will fail", config.Provider)
	}

	client, err := utils.NewItineraryClient(config.Provider, config.APIKey, config.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation client: %w", err)
	}
	return client, nil
}

func ProvideRequestBuilder() *services.ItineraryRequestBuilder {
	return services.NewItineraryRequestBuilder()
}

func ProvidePlannerService(
	builder *services.ItineraryRequestBuilder,
	aiClient utils.ItineraryClientInterface,
) services.PlannerServiceInterface {
	return services.NewPlannerService(builder, aiClient)
}

func ProvideRouteService(resolver services.GeocodeResolverInterface) services.RouteServiceInterface {
	return services.NewRouteService(resolver)
}

func ProvidePlannerController(
	plannerService services.PlannerServiceInterface,
	routeService services.RouteServiceInterface,
) *controllers.PlannerController {
	return controllers.NewPlannerController(plannerService, routeService)
}

// getGenerationConfig reads configuration from environment variables.
func getGenerationConfig() GenerationConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-2.5-flash")
	}

	return GenerationConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value.
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
