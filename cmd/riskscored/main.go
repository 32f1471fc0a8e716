package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/seyi-adeleke/riskscore/constants"
	"github.com/seyi-adeleke/riskscore/gen/ent"
	"github.com/seyi-adeleke/riskscore/internal/bulk"
	"github.com/seyi-adeleke/riskscore/internal/common"
	"github.com/seyi-adeleke/riskscore/internal/entity"
	"github.com/seyi-adeleke/riskscore/internal/ingest"
	"github.com/seyi-adeleke/riskscore/internal/repository"
	"github.com/seyi-adeleke/riskscore/internal/scoring"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database
	var (
		entc *ent.Client
		pool *pgxpool.Pool
		err  error
	)
	if strings.HasPrefix(cfg.Database.DSN, "postgres") {
		entc, pool, err = repository.Open(ctx, repository.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
	} else {
		entc, err = repository.OpenSQLite(cfg.Database.DSN, logger)
	}
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if pool != nil {
		if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
			logger.Error("database health check failed", "error", err)
			os.Exit(1)
		}
	}
	if err := repository.Migrate(ctx, entc, logger); err != nil {
		logger.Error("running migrations", "error", err)
		os.Exit(1)
	}

	// Scoring models
	annual, err := scoring.LoadAnnualModel(cfg.Models.AnnualPath)
	if err != nil {
		logger.Error("loading annual model", "error", err)
		os.Exit(1)
	}
	quarterly, err := scoring.LoadQuarterlyModel(cfg.Models.QuarterlyPath)
	if err != nil {
		logger.Error("loading quarterly model", "error", err)
		os.Exit(1)
	}
	logger.Info("scoring models loaded",
		"annual_version", annual.Version, "quarterly_version", quarterly.Version)
	engine := scoring.NewEngine(annual, quarterly)

	// Repositories and pipeline
	jobsRepo := repository.NewJobRepository(entc, logger)
	companiesRepo := repository.NewCompanyRepository(entc, logger)
	predictionsRepo := repository.NewPredictionRepository(entc, logger)

	aggregator := bulk.NewAggregator(jobsRepo, logger)
	executor := bulk.NewChunkExecutor(logger, engine, companiesRepo, predictionsRepo, aggregator, cfg.Jobs.SubBatchSize)
	queue := bulk.NewExecutorQueue(executor, logger,
		bulk.WithWorkers(cfg.Jobs.Workers),
		bulk.WithQueueSize(cfg.Jobs.QueueSize),
		bulk.WithChunkTimeout(cfg.Jobs.ChunkTimeout),
	)
	service := bulk.NewService(logger, jobsRepo, queue, cfg.Jobs.ChunkSize, cfg.Jobs.MaxRows)

	// Workbook drop directory
	if cfg.Ingest.WatchDir != "" {
		events, watchErrs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:       []string{cfg.Ingest.WatchDir},
			InitialScan: true,
			Debounce:    2 * time.Second,
		})
		if err != nil {
			logger.Error("starting workbook watcher", "dir", cfg.Ingest.WatchDir, "error", err)
			os.Exit(1)
		}
		scope := entity.OwnerScope{Type: constants.ScopeSystem, ScopeID: uuid.Nil}
		submitter := ingest.NewSubmitter(service, scope, logger)
		go submitter.Run(ctx, events)
		go func() {
			for err := range watchErrs {
				logger.Error("workbook watcher error", "error", err)
			}
		}()
		logger.Info("watching for workbooks", "dir", cfg.Ingest.WatchDir)
	}

	// gRPC health endpoint
	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	go func() {
		logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	grpcServer.GracefulStop()

	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(drainCtx)

	logger.Info("stopped")
}
