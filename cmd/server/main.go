package main

import (
	"context"
	"log"
	"time"

	"go-airport-booking/config"
	"go-airport-booking/internal/cache"
	"go-airport-booking/internal/database"
	"go-airport-booking/internal/handler"
	"go-airport-booking/internal/middleware"
	"go-airport-booking/internal/repository"
	"go-airport-booking/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	if err := database.InitSchema(context.Background(), pool); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	refCache := cache.NewReferenceCache(rdb, time.Duration(cfg.Cache.ReferenceTTLSec)*time.Second)

	userRepo := repository.NewUserRepository(pool)
	airportRepo := repository.NewAirportRepository(pool)
	routeRepo := repository.NewRouteRepository(pool)
	typeRepo := repository.NewAirplaneTypeRepository(pool)
	airplaneRepo := repository.NewAirplaneRepository(pool)
	crewRepo := repository.NewCrewRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)

	authService := service.NewAuthService(userRepo, cfg.JWT)
	airportService := service.NewAirportService(airportRepo, refCache)
	routeService := service.NewRouteService(routeRepo)
	typeService := service.NewAirplaneTypeService(typeRepo, refCache)
	airplaneService := service.NewAirplaneService(airplaneRepo)
	crewService := service.NewCrewService(crewRepo, refCache)
	flightService := service.NewFlightService(flightRepo)
	orderService := service.NewOrderService(pool, orderRepo, ticketRepo, flightRepo)

	router := gin.Default()

	v1 := router.Group("/api/v1")
	authed := v1.Group("", middleware.JWTAuth(cfg.JWT.Secret))
	admin := authed.Group("", middleware.RequireAdmin())

	handler.NewAuthHandler(authService).RegisterRoutes(v1)
	handler.NewAirportHandler(airportService).RegisterRoutes(authed, admin)
	handler.NewRouteHandler(routeService).RegisterRoutes(authed, admin)
	handler.NewAirplaneTypeHandler(typeService).RegisterRoutes(authed, admin)
	handler.NewAirplaneHandler(airplaneService).RegisterRoutes(authed, admin)
	handler.NewCrewHandler(crewService).RegisterRoutes(authed, admin)
	handler.NewFlightHandler(flightService).RegisterRoutes(authed, admin)
	handler.NewOrderHandler(orderService).RegisterRoutes(authed)

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
