package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avdku/airport-service/config"
	"github.com/avdku/airport-service/internal/bootstrap"
	"github.com/avdku/airport-service/internal/cache"
	"github.com/avdku/airport-service/internal/kafka"
	"github.com/avdku/airport-service/internal/repository"
	"github.com/avdku/airport-service/internal/service/catalog"
	"github.com/avdku/airport-service/internal/service/flights"
	"github.com/avdku/airport-service/internal/service/orders"
	"github.com/avdku/airport-service/internal/service/users"
	"github.com/avdku/airport-service/internal/storage"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Flights.CacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	airportRepo := repository.NewAirportRepository(pool)
	routeRepo := repository.NewRouteRepository(pool)
	crewRepo := repository.NewCrewRepository(pool)
	typeRepo := repository.NewAirplaneTypeRepository(pool)
	airplaneRepo := repository.NewAirplaneRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	tokenRepo := repository.NewTokenRepository(pool)

	catalogService := catalog.NewCatalogService(
		airportRepo,
		routeRepo,
		crewRepo,
		typeRepo,
		airplaneRepo,
		storage.NewImageStore(cfg.Media.Dir),
	)
	flightService := flights.NewFlightService(flightRepo, redisCache)
	orderService := orders.NewOrderService(
		orderRepo,
		flightRepo,
		redisCache,
		producer,
		cfg.Kafka.OrdersTopic,
		orders.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	userService := users.NewUserService(
		userRepo,
		tokenRepo,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.AccessTTLMinutes)*time.Minute,
		time.Duration(cfg.Auth.RefreshTTLDays)*24*time.Hour,
		cfg.Auth.BcryptCost,
	)

	services := bootstrap.Services{
		Airports: catalogService,
		Routes:   catalogService,
		Crew:     catalogService,
		Fleet:    catalogService,
		Flights:  flightService,
		Orders:   orderService,
		Users:    userService,
	}

	if err := bootstrap.Run(ctx, cfg, services); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
