package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/simaogato/carteira-backend/internal/adapter/benchmark/bcb"
	"github.com/simaogato/carteira-backend/internal/adapter/benchmark/yahoo"
	grpcadapter "github.com/simaogato/carteira-backend/internal/adapter/grpc"
	carteirav1 "github.com/simaogato/carteira-backend/internal/adapter/grpc/carteira/v1"
	"github.com/simaogato/carteira-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/carteira-backend/internal/adapter/repository/sqlite"
	"github.com/simaogato/carteira-backend/internal/config"
	"github.com/simaogato/carteira-backend/internal/domain"
	"github.com/simaogato/carteira-backend/internal/logger"
	"github.com/simaogato/carteira-backend/internal/scheduler"
	"github.com/simaogato/carteira-backend/internal/usecase/benchmark"
	"github.com/simaogato/carteira-backend/internal/usecase/ledger"
	"github.com/simaogato/carteira-backend/internal/usecase/portfolio"
	"github.com/simaogato/carteira-backend/internal/usecase/seeder"
	"github.com/simaogato/carteira-backend/internal/usecase/series"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

// repositories groups the storage adapters of the selected driver
type repositories struct {
	assets        domain.AssetRepository
	operations    domain.OperationRepository
	monthlyValues domain.MonthlyValueRepository
	close         func() error
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	// 1. Load configuration
	var paths []string
	if *configPath != "" {
		paths = append(paths, *configPath)
	}
	cfg, err := config.Load(paths...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Pretty: cfg.Logging.Format == "console",
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// 2. Setup Database
	repos, err := openRepositories(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("Failed to open storage")
	}
	defer repos.close()

	// 3. Initialize Services (Use Cases)
	store := series.NewStore(repos.assets, repos.operations, repos.monthlyValues, log)
	ledgerService := ledger.NewLedgerService(repos.assets, repos.operations, store, log)

	var benchmarks portfolio.BenchmarkSource
	sched := scheduler.New(log)
	if cfg.Benchmarks.Enabled {
		benchmarkService, err := newBenchmarkService(cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create benchmark providers")
		}
		benchmarks = benchmarkService

		if cfg.Benchmarks.WarmSchedule != "" {
			job := benchmark.NewWarmJob(benchmarkService, cfg.Benchmarks.WarmLookback)
			if err := sched.AddJob(cfg.Benchmarks.WarmSchedule, job); err != nil {
				log.Fatal().Err(err).Msg("Failed to schedule benchmark warm-up")
			}
		}
	}
	portfolioService := portfolio.NewPortfolioService(repos.assets, repos.operations, store, benchmarks, log)

	// 4. Seed demo data
	if cfg.Seed.Demo {
		var owner uuid.UUID
		if cfg.Seed.OwnerID != "" {
			if owner, err = uuid.Parse(cfg.Seed.OwnerID); err != nil {
				log.Fatal().Err(err).Str("owner_id", cfg.Seed.OwnerID).Msg("Invalid demo owner")
			}
		}
		if _, err := seeder.NewDemoSeeder(ledgerService, owner, log).Seed(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed demo portfolio")
		}
	}

	sched.Start()
	defer sched.Stop()

	// 5. Start gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(log),
			grpcadapter.AuthInterceptor(cfg.Server.APIToken),
		),
	)
	carteirav1.RegisterPortfolioServiceServer(grpcServer, grpcadapter.NewServer(ledgerService, portfolioService))
	reflection.Register(grpcServer)

	addr := cfg.Server.Address()
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal().Err(err).Str("address", addr).Msg("Failed to listen")
	}

	go func() {
		log.Info().Str("address", addr).Str("storage", cfg.Storage.Driver).Msg("gRPC server listening")
		if err := grpcServer.Serve(lis); err != nil {
			log.Error().Err(err).Msg("gRPC server stopped serving")
			stop()
		}
	}()

	// Graceful shutdown
	waitForShutdown(ctx, grpcServer, log)
}

// openRepositories connects to the configured storage and applies its schema
func openRepositories(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*repositories, error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		db, err := sqlite.NewDB(cfg.Storage.SQLite.Path)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
		log.Info().Str("path", db.Path()).Msg("SQLite storage ready")
		return &repositories{
			assets:        sqlite.NewAssetRepository(db),
			operations:    sqlite.NewOperationRepository(db),
			monthlyValues: sqlite.NewMonthlyValueRepository(db),
			close:         db.Close,
		}, nil

	default:
		// Postgres may still be starting when the server comes up in docker compose
		connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		db, err := postgres.Connect(connectCtx, cfg.Storage.Postgres.DSN(), 2*time.Second)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
		log.Info().Str("host", cfg.Storage.Postgres.Host).Str("database", cfg.Storage.Postgres.Name).Msg("PostgreSQL storage ready")
		return &repositories{
			assets:        postgres.NewAssetRepository(db),
			operations:    postgres.NewOperationRepository(db),
			monthlyValues: postgres.NewMonthlyValueRepository(db),
			close:         db.Close,
		}, nil
	}
}

// newBenchmarkService builds the CDI and IBOVESPA providers behind the day cache
func newBenchmarkService(cfg *config.Config, log zerolog.Logger) (*benchmark.Service, error) {
	cdi := bcb.NewClient(
		bcb.WithBaseURL(cfg.Benchmarks.BCB.BaseURL),
		bcb.WithTimeout(cfg.Benchmarks.BCB.GetTimeout()),
		bcb.WithRateLimit(cfg.Benchmarks.BCB.RateLimit),
		bcb.WithLogger(log),
	)

	ibovespa, err := yahoo.NewClient(
		yahoo.WithBaseURL(cfg.Benchmarks.Yahoo.BaseURL),
		yahoo.WithTimeout(cfg.Benchmarks.Yahoo.GetTimeout()),
		yahoo.WithRateLimit(cfg.Benchmarks.Yahoo.RateLimit),
		yahoo.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	return benchmark.NewService(
		[]domain.BenchmarkProvider{cdi, ibovespa},
		log,
		benchmark.WithTimeout(cfg.Benchmarks.GetTimeout()),
	), nil
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(ctx context.Context, grpcServer *grpclib.Server, log zerolog.Logger) {
	<-ctx.Done()
	log.Info().Msg("Shutting down gracefully...")

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(10 * time.Second):
		log.Warn().Msg("Graceful stop timed out, forcing")
		grpcServer.Stop()
	}
	log.Info().Msg("gRPC server stopped")
}
