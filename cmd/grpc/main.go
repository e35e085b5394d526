package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-ledger-service/config"
	"github.com/fekuna/omnipos-ledger-service/internal/apperror"
	"github.com/fekuna/omnipos-ledger-service/internal/listener"
	materialUC "github.com/fekuna/omnipos-ledger-service/internal/material/usecase"
	"github.com/fekuna/omnipos-ledger-service/internal/report/scheduler"
	"github.com/fekuna/omnipos-ledger-service/internal/server"
	"github.com/fekuna/omnipos-ledger-service/internal/server/handlers"
	"github.com/fekuna/omnipos-ledger-service/internal/server/router"
	stockUC "github.com/fekuna/omnipos-ledger-service/internal/stock/usecase"
	"github.com/fekuna/omnipos-ledger-service/pkg/broker"
	"github.com/fekuna/omnipos-ledger-service/pkg/cache"
	"github.com/fekuna/omnipos-ledger-service/pkg/clock"
	"github.com/fekuna/omnipos-ledger-service/pkg/database"
	"github.com/fekuna/omnipos-ledger-service/pkg/i18n"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"github.com/fekuna/omnipos-ledger-service/pkg/notifier"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	envFile := pflag.String("env-file", ".env", "optional dotenv file loaded before reading the environment")
	pflag.Parse()

	// 1. Load Configuration
	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Failed to load %s: %v", *envFile, err)
	}
	cfg := config.LoadEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Initialize i18n
	translator, err := i18n.New(cfg.I18n.DefaultLang)
	if err != nil {
		appLogger.Fatal("Could not load locales", zap.Error(err))
	}

	// 4. Connect to Database
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg := cfg.Database.Postgres
	db, err := database.Open(ctx, &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            pg.Host,
		Port:            pg.Port,
		User:            pg.User,
		Password:        pg.Password,
		DBName:          pg.DBName,
		SSLMode:         pg.SSLMode,
		MaxOpenConns:    pg.MaxOpenConns,
		MaxIdleConns:    pg.MaxIdleConns,
		ConnMaxLifetime: time.Duration(pg.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(pg.ConnMaxIdleTime) * time.Second,
		SQLitePath:      cfg.Database.SQLitePath,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

	if err := database.Migrate(ctx, db); err != nil {
		appLogger.Fatal("Could not apply schema", zap.Error(err))
	}

	// 5. Initialize Redis
	deps := server.Deps{
		DB:      db,
		Clock:   clock.Real(),
		Logger:  appLogger,
		LockTTL: cfg.Ledger.LockTTL,
	}
	if cfg.Redis.Addr != "" {
		redisClient, err := cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

		var materialCache materialUC.Cache = redisClient
		deps.Cache = materialCache
		if cfg.Ledger.LockEnabled {
			var locker stockUC.Locker = redisClient
			deps.Locker = locker
		}
	}

	// 6. Initialize UseCases
	services := server.NewServices(deps)
	errMapper := apperror.NewMapper(translator)

	// 7. Start Kafka Listener
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaConsumer := broker.NewConsumer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
			GroupID: cfg.Kafka.GroupID,
		})
		defer kafkaConsumer.Close()
		appLogger.Info("Connected to Kafka Consumer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

		reqListener := listener.NewRequisitionListener(
			kafkaConsumer,
			services.Materials,
			services.Lines,
			services.Attributions,
			appLogger.Named("listener"),
		)
		go reqListener.Start(ctx)
	}

	// 8. Start Alert Scheduler
	var alertNotifier scheduler.Notifier
	if cfg.Scheduler.AlertWebhookURL != "" {
		alertNotifier = notifier.NewWebhookNotifier(cfg.Scheduler.AlertWebhookURL, cfg.Scheduler.WebhookTimeout)
	}
	alerts := scheduler.NewScheduler(cfg.Scheduler.AlertSchedule, services.Reports, alertNotifier, appLogger.Named("scheduler"))
	if err := alerts.Start(); err != nil {
		appLogger.Fatal("Invalid alert schedule", zap.String("schedule", cfg.Scheduler.AlertSchedule), zap.Error(err))
	}

	// 9. Start gRPC Server
	grpcAddr := config.Addr(cfg.Server.GRPCPort)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		appLogger.Fatal("failed to listen", zap.String("addr", grpcAddr), zap.Error(err))
	}

	grpcServer := server.NewGRPCServer(services, errMapper, appLogger)

	go func() {
		appLogger.Info("Starting gRPC server", zap.String("addr", grpcAddr))
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve gRPC", zap.Error(err))
		}
	}()

	// 10. Start HTTP Server
	httpAddr := config.Addr(cfg.Server.HTTPPort)
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           router.New(handlers.NewLedgerHandler(services, errMapper, appLogger.Named("http")), appLogger.Named("http")),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("addr", httpAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve HTTP", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("HTTP shutdown failed", zap.Error(err))
	}
	grpcServer.GracefulStop()
	alerts.Stop()
	appLogger.Info("Server stopped")
}
