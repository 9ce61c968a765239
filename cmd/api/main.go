package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/hotel-service/internal/api/http"
	"github.com/spec-kit/hotel-service/internal/api/http/handlers"
	"github.com/spec-kit/hotel-service/internal/auth"
	"github.com/spec-kit/hotel-service/internal/config"
	"github.com/spec-kit/hotel-service/internal/events"
	"github.com/spec-kit/hotel-service/internal/observability"
	"github.com/spec-kit/hotel-service/internal/persistence"
	"github.com/spec-kit/hotel-service/internal/repository"
	"github.com/spec-kit/hotel-service/internal/service"
	"github.com/spec-kit/hotel-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	employeeRepo := repository.NewEmployeeRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	roomRepo := repository.NewRoomRepository(pool)
	reservationRepo := repository.NewReservationRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	signingKey := auth.LoadSigningKey(cfg.Auth, logger)
	tokenManager := auth.NewTokenManager(signingKey, employeeRepo, cfg.Auth.StoreTimeout())

	authService := service.NewAuthService(tokenManager, cfg.Auth.TokenTTL(), employeeRepo, dispatcher, logger)
	customerService := service.NewCustomerService(customerRepo)
	roomService := service.NewRoomService(roomRepo, redis, cfg.Cache.AvailabilityTTL(), logger)
	reservationService := service.NewReservationService(reservationRepo, roomRepo, dispatcher)
	paymentService := service.NewPaymentService(paymentRepo, reservationRepo, dispatcher)

	authMiddleware := auth.NewAuthMiddleware(tokenManager, employeeRepo, logger)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Customers:      handlers.NewCustomersHandler(customerService),
		Rooms:          handlers.NewRoomsHandler(roomService),
		Reservations:   handlers.NewReservationsHandler(reservationService),
		Payments:       handlers.NewPaymentsHandler(paymentService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
