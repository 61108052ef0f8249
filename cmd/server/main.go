package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/transferflow-backend/internal/adapter/grpc"
	transferflowv1 "github.com/simaogato/transferflow-backend/internal/adapter/grpc/transferflow/v1"
	"github.com/simaogato/transferflow-backend/internal/adapter/rabbitmq"
	"github.com/simaogato/transferflow-backend/internal/adapter/repository/memory"
	"github.com/simaogato/transferflow-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/transferflow-backend/internal/config"
	"github.com/simaogato/transferflow-backend/internal/domain"
	"github.com/simaogato/transferflow-backend/internal/usecase/overview"
	"github.com/simaogato/transferflow-backend/internal/usecase/seeder"
	"github.com/simaogato/transferflow-backend/internal/usecase/submission"
	"github.com/simaogato/transferflow-backend/internal/usecase/transfer"
)

func main() {
	// .env is optional; real environment variables win
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// 1. Initialize Repositories (Postgres when configured, memory otherwise)
	var (
		accountRepo  domain.AccountRepository
		transferRepo domain.TransferRecordRepository
	)
	if cfg.DatabaseURL != "" {
		db, err := postgres.NewDB(cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := db.EnsureSchema(ctx); err != nil {
			logger.Error("failed to prepare database schema", "error", err)
			os.Exit(1)
		}
		accountRepo = postgres.NewAccountRepository(db)
		transferRepo = postgres.NewTransferRecordRepository(db)
		logger.Info("using postgres repositories")
	} else {
		accountRepo = memory.NewAccountRepository()
		transferRepo = memory.NewTransferRecordRepository()
		logger.Info("DATABASE_URL not set, using in-memory repositories")
	}

	// 2. Seed demo data
	if err := seeder.NewDemoSeeder(accountRepo, transferRepo).Seed(ctx); err != nil {
		logger.Error("failed to seed demo data", "error", err)
		os.Exit(1)
	}
	logger.Info("demo data seeded successfully")

	// 3. Event publishing (RabbitMQ when configured)
	var publisher rabbitmq.Publisher = &rabbitmq.EventProducerFallback{}
	if cfg.AMQPURL != "" {
		producer, err := rabbitmq.NewEventProducer(cfg.AMQPURL)
		if err != nil {
			logger.Warn("failed to connect to RabbitMQ, events will not be published", "error", err)
		} else {
			publisher = producer
		}
	}
	defer publisher.Close()
	events := rabbitmq.NewTransitionPublisher(publisher, cfg.EventsExchange, logger)

	// 4. Initialize Services (Use Cases)
	registry := transfer.NewRegistry(
		accountRepo,
		submission.NewSimulator(cfg.SubmitDelay),
		transferRepo,
		transfer.Config{
			AutoResetDelay: cfg.AutoResetDelay,
			SubmitTimeout:  cfg.SubmitTimeout,
			Logger:         logger,
		},
		events.Listen,
	)
	defer registry.CloseAll()
	overviewService := overview.NewOverviewService(accountRepo, transferRepo)

	// 5. Start gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.UnaryInterceptor(grpcadapter.AuthInterceptor(cfg.APIToken)),
	)
	transferflowv1.RegisterTransferServiceServer(grpcServer, grpcadapter.NewServer(registry, overviewService, cfg.RecentTransfersLimit))
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.GRPCAddr, "error", err)
		os.Exit(1)
	}

	go func() {
		logger.Info("gRPC server listening", "addr", cfg.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("failed to serve gRPC server", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	waitForShutdown(logger, grpcServer)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(logger *slog.Logger, grpcServer *grpclib.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logger.Info("shutting down gracefully", "signal", sig.String())

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(10 * time.Second):
		logger.Warn("graceful stop timed out, forcing shutdown")
		grpcServer.Stop()
	}
	logger.Info("gRPC server stopped")
}
