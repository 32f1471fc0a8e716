package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

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
	"github.com/seyi-adeleke/riskscore/internal/upload"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem    = flag.Bool("inmem", false, "use in-memory SQLite database")
		file     = flag.String("file", "", "XLSX workbook to score (required)")
		jobType  = flag.String("type", "", "job type: ANNUAL or QUARTERLY (default: inferred from filename)")
		poll     = flag.Duration("poll", 500*time.Millisecond, "status poll interval")
		showErrs = flag.Int("show-errors", 10, "max row errors to print")
	)
	flag.Parse()

	if *file == "" {
		printError("Error: --file is required\n")
		os.Exit(1)
	}

	jt := constants.JobType(*jobType)
	if *jobType == "" {
		inferred, ok := ingest.JobTypeForPath(*file)
		if !ok {
			printError("Error: cannot infer job type from %q, pass --type\n", *file)
			os.Exit(1)
		}
		jt = inferred
	}
	if !constants.ValidJobType(jt) {
		printError("Error: unknown job type %q\n", *jobType)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	var (
		entc *ent.Client
		pool *pgxpool.Pool
		err  error
	)
	if *inmem {
		entc, err = repository.OpenSQLite("file:riskscore?mode=memory&cache=shared&_pragma=foreign_keys(1)", logger)
	} else {
		if cfg.Database.DSN == "" {
			printError("Error: DB_URL is required unless --inmem is set\n")
			os.Exit(1)
		}
		entc, pool, err = repository.Open(ctx, repository.Config{
			DSN:             cfg.Database.DSN,
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
			DialTimeout:     cfg.Database.DialTimeout,
		}, logger)
	}
	if err != nil {
		printError("Error: opening database: %v\n", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.Migrate(ctx, entc, logger); err != nil {
		printError("Error: running migrations: %v\n", err)
		os.Exit(1)
	}

	annual, err := scoring.LoadAnnualModel(cfg.Models.AnnualPath)
	if err != nil {
		printError("Error: loading annual model: %v\n", err)
		os.Exit(1)
	}
	quarterly, err := scoring.LoadQuarterlyModel(cfg.Models.QuarterlyPath)
	if err != nil {
		printError("Error: loading quarterly model: %v\n", err)
		os.Exit(1)
	}
	engine := scoring.NewEngine(annual, quarterly)

	jobsRepo := repository.NewJobRepository(entc, logger)
	companiesRepo := repository.NewCompanyRepository(entc, logger)
	predictionsRepo := repository.NewPredictionRepository(entc, logger)

	aggregator := bulk.NewAggregator(jobsRepo, logger)
	executor := bulk.NewChunkExecutor(logger, engine, companiesRepo, predictionsRepo, aggregator, cfg.Jobs.SubBatchSize)
	queue := bulk.NewExecutorQueue(executor, logger,
		bulk.WithWorkers(cfg.Jobs.Workers),
		bulk.WithChunkTimeout(cfg.Jobs.ChunkTimeout),
	)
	service := bulk.NewService(logger, jobsRepo, queue, cfg.Jobs.ChunkSize, cfg.Jobs.MaxRows)

	rows, err := upload.ParseFile(*file)
	if err != nil {
		printError("Error: parsing workbook: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Parsed %d rows from %s\n", len(rows), *file)

	scope := entity.OwnerScope{Type: constants.ScopeSystem, ScopeID: uuid.Nil}
	job, err := service.SubmitJob(ctx, jt, scope, rows)
	if err != nil {
		printError("Error: submitting job: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Job %s submitted (%s, %d chunks)\n", job.ID, jt, job.TotalChunks)

	view := pollUntilTerminal(ctx, service, job.ID, *poll)

	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	queue.Shutdown(drainCtx)
	cancel()

	fmt.Printf("Job finished: %s\n", view.Status)
	fmt.Printf("- Rows processed:  %d/%d\n", view.ProcessedRows, view.TotalRows)
	fmt.Printf("- Rows successful: %d\n", view.SuccessfulRows)
	fmt.Printf("- Rows failed:     %d\n", view.FailedRows)
	if view.ErrorMessage != nil {
		fmt.Printf("- Error: %s\n", *view.ErrorMessage)
	}
	for i, e := range view.ErrorDetails {
		if i >= *showErrs {
			fmt.Printf("- ... %d more row errors\n", len(view.ErrorDetails)-i)
			break
		}
		fmt.Printf("- row %d (%s): %s\n", e.RowIndex, e.Symbol, e.Reason)
	}
	if view.Status != constants.JobStatusCompleted {
		os.Exit(1)
	}
}

func pollUntilTerminal(ctx context.Context, svc *bulk.Service, jobID uuid.UUID, interval time.Duration) *entity.JobStatusView {
	for {
		view, err := svc.GetJobStatus(ctx, jobID)
		if err != nil {
			printError("Error: reading job status: %v\n", err)
			os.Exit(1)
		}
		if view.Status.IsTerminal() {
			return view
		}
		fmt.Printf("... %s %.2f%% (%d/%d chunks)\n",
			view.Status, view.ProgressPercentage, view.CompletedChunks, view.TotalChunks)
		time.Sleep(interval)
	}
}
