package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/carpool/internal/pkg/circuitbreaker"
	"github.com/piresc/carpool/internal/pkg/config"
	"github.com/piresc/carpool/internal/pkg/database"
	"github.com/piresc/carpool/internal/pkg/health"
	"github.com/piresc/carpool/internal/pkg/logger"
	"github.com/piresc/carpool/internal/pkg/middleware"
	"github.com/piresc/carpool/internal/pkg/nats"
	nrpkg "github.com/piresc/carpool/internal/pkg/newrelic"
	"github.com/piresc/carpool/internal/pkg/observability"
	"github.com/piresc/carpool/internal/pkg/retry"
	"github.com/piresc/carpool/internal/pkg/server"
	"github.com/piresc/carpool/internal/pkg/validation"
	couponhandler "github.com/piresc/carpool/services/coupons/handler"
	couponrepo "github.com/piresc/carpool/services/coupons/repository"
	couponuc "github.com/piresc/carpool/services/coupons/usecase"
	reviewhandler "github.com/piresc/carpool/services/reviews/handler"
	reviewrepo "github.com/piresc/carpool/services/reviews/repository"
	reviewuc "github.com/piresc/carpool/services/reviews/usecase"
	ridegw "github.com/piresc/carpool/services/rides/gateway"
	ridehandler "github.com/piresc/carpool/services/rides/handler"
	riderepo "github.com/piresc/carpool/services/rides/repository"
	rideuc "github.com/piresc/carpool/services/rides/usecase"
	tripgw "github.com/piresc/carpool/services/trips/gateway"
	triphandler "github.com/piresc/carpool/services/trips/handler"
	triprepo "github.com/piresc/carpool/services/trips/repository"
	tripuc "github.com/piresc/carpool/services/trips/usecase"
)

func main() {
	appName := "carpool-service"
	configPath := "config/carpool.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	natsClient, err := nats.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	logger.Info("NATS client initialized",
		logger.String("url", configs.NATS.URL),
		logger.Bool("connected", natsClient.IsConnected()))

	// Concurrency control shared by the ledger and the matcher
	db := postgresClient.GetDB()
	metrics := observability.NewMetrics()
	transactor := database.NewTransactor(db, configs.Matching.LockTimeout)
	locker := database.NewRedisLocker(redisClient, configs.Matching.LockTTL)
	retrier := retry.New(retry.ConflictConfig(configs.Matching), zapLogger)

	// Repositories
	rideRepo := riderepo.NewRideRepository(configs, db)
	tripRepo := triprepo.NewTripRepository(configs, db)
	couponRepo := couponrepo.NewCouponRepository(configs, db)
	reviewRepo := reviewrepo.NewReviewRepository(configs, db)

	// Gateways share one breaker on the event bus
	eventBus := circuitbreaker.NewPublisher(natsClient, circuitbreaker.New(circuitbreaker.DefaultConfig("nats-events"), zapLogger))
	rideGW := ridegw.NewRideGW(eventBus)
	tripGW := tripgw.NewTripGW(eventBus)

	// Use cases
	rideUC := rideuc.NewRideUC(configs, rideRepo, rideGW, transactor, locker, retrier, metrics)
	couponUC := couponuc.NewCouponUC(couponRepo, transactor, metrics)
	issuer := tripuc.NewOrderIssuer(tripRepo, tripGW, metrics)
	tripUC := tripuc.NewTripUC(configs, tripRepo, tripGW, issuer, rideUC, couponUC, transactor, locker, retrier, metrics)
	reviewUC := reviewuc.NewReviewUC(reviewRepo)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	// Panic recovery should be first
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.NewRelicMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.MetricsMiddleware(metrics))

	healthService := health.NewService(zapLogger)
	healthService.AddChecker("postgres", health.PostgresChecker(postgresClient))
	healthService.AddChecker("redis", health.RedisChecker(redisClient))
	healthService.AddChecker("nats", health.NATSChecker(natsClient))
	health.RegisterEndpoints(e, appName, configs.App.Version, healthService)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	ridehandler.NewHandler(rideUC, configs).RegisterRoutes(e)
	triphandler.NewHandler(tripUC, configs, middleware.RateLimiter(redisClient, configs.RateLimit)).RegisterRoutes(e)
	couponhandler.NewHandler(couponUC, configs).RegisterRoutes(e)
	reviewhandler.NewHandler(reviewUC, configs).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)

	// Cleanups run in reverse order
	srv.OnShutdown(func(ctx context.Context) error {
		if nrApp != nil {
			nrApp.Shutdown(10 * time.Second)
		}
		return zapLogger.Close()
	})
	srv.OnShutdown(func(ctx context.Context) error { return postgresClient.Close() })
	srv.OnShutdown(func(ctx context.Context) error { return redisClient.Close() })
	srv.OnShutdown(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})

	if err := srv.Run(context.Background()); err != nil {
		zapLogger.Error("Server exited with error", logger.Err(err))
	}
}
