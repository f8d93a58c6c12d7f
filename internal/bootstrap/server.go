package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avdku/airport-service/api"
	"github.com/avdku/airport-service/config"
	"github.com/avdku/airport-service/internal/service/catalog"
	"github.com/avdku/airport-service/internal/service/flights"
	"github.com/avdku/airport-service/internal/service/orders"
	"github.com/avdku/airport-service/internal/service/users"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Services struct {
	Airports catalog.AirportUseCase
	Routes   catalog.RouteUseCase
	Crew     catalog.CrewUseCase
	Fleet    catalog.FleetUseCase
	Flights  flights.FlightUseCase
	Orders   orders.OrderUseCase
	Users    users.UserUseCase
}

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, svc Services) error {
	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: newRouter(cfg, svc),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(cfg *config.Config, svc Services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(api.Authenticate(cfg.Auth.JWTSecret))

	v1 := router.Group("/api/v1")
	staffOnly := api.RequireStaff()
	authOnly := api.RequireAuth()

	api.NewAirportHandler(svc.Airports).Register(v1, staffOnly)
	api.NewRouteHandler(svc.Routes).Register(v1, staffOnly)
	api.NewCrewHandler(svc.Crew).Register(v1, staffOnly)
	api.NewAirplaneTypeHandler(svc.Fleet).Register(v1, staffOnly)
	api.NewAirplaneHandler(svc.Fleet).Register(v1, staffOnly)
	api.NewFlightHandler(svc.Flights).Register(v1, staffOnly)
	api.NewOrderHandler(svc.Orders).Register(v1, authOnly)
	api.NewAuthHandler(svc.Users).Register(v1, authOnly)

	if cfg.Media.Dir != "" {
		router.Static("/media", cfg.Media.Dir)
	}

	if cfg.HTTP.SwaggerFile != "" {
		router.StaticFile("/docs/openapi.json", cfg.HTTP.SwaggerFile)
		router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/docs/openapi.json"),
		)))
	}

	return router
}
