package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	geocodefx "wanderlust/cmd/fx/geocode_fx"
	"wanderlust/cmd/fx/planner_fx"
	weatherfx "wanderlust/cmd/fx/weather_fx"
	"wanderlust/internal/api/controllers"
	"wanderlust/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	app := fx.New(
		geocodefx.Module,
		planner_fx.Module,
		weatherfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	plannerController *controllers.PlannerController,
	geocodeController *controllers.GeocodeController,
	weatherController *controllers.WeatherController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, plannerController, geocodeController, weatherController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	plannerController *controllers.PlannerController,
	geocodeController *controllers.GeocodeController,
	weatherController *controllers.WeatherController) {

	api := r.Group("/api")
	api.POST("/trips", plannerController.CreateTripHandler)
	api.GET("/geocode", geocodeController.ResolveHandler)
	api.GET("/weather", weatherController.CurrentWeatherHandler)
}
