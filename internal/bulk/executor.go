package bulk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/seyi-adeleke/riskscore/constants"
	"github.com/seyi-adeleke/riskscore/internal/async"
	"github.com/seyi-adeleke/riskscore/internal/common"
	"github.com/seyi-adeleke/riskscore/internal/entity"
	"github.com/seyi-adeleke/riskscore/internal/repository"
	"github.com/seyi-adeleke/riskscore/internal/scoring"
)

// ChunkExecutor runs one chunk task end to end: validate each row,
// resolve its company, check for an existing prediction, score, and
// persist in bounded sub-batches. A bad row is recorded and skipped; it
// never aborts the chunk. Whatever happens - success, partial failure or
// timeout - the executor reports exactly once to the aggregator so the
// job can reach a terminal state.
type ChunkExecutor struct {
	logger      *slog.Logger
	engine      *scoring.Engine
	companies   repository.CompanyRepository
	predictions repository.PredictionRepository
	guard       *PredictionGuard
	aggregator  *Aggregator
	subBatch    int
}

func NewChunkExecutor(
	logger *slog.Logger,
	engine *scoring.Engine,
	companies repository.CompanyRepository,
	predictions repository.PredictionRepository,
	aggregator *Aggregator,
	subBatch int,
) *ChunkExecutor {
	if logger == nil {
		logger = slog.Default()
	}
	if subBatch <= 0 {
		subBatch = constants.DefaultSubBatch
	}
	return &ChunkExecutor{
		logger:      logger,
		engine:      engine,
		companies:   companies,
		predictions: predictions,
		guard:       NewPredictionGuard(predictions),
		aggregator:  aggregator,
		subBatch:    subBatch,
	}
}

// pendingRow is a scored row buffered until its sub-batch flushes.
type pendingRow struct {
	input  *entity.PredictionInput
	symbol string
}

// Execute processes the chunk under the task context's deadline. The
// returned error reports delivery problems (corrupt payload, lost merge);
// row-level failures are not errors here.
func (e *ChunkExecutor) Execute(ctx context.Context, task async.ChunkTask) error {
	payload, err := DecodeChunkPayload(task.Payload)
	if err != nil {
		e.logger.Error("chunk payload corrupt",
			"job_id", task.JobID, "chunk_index", task.ChunkIndex, "error", err)
		e.aggregator.FailJob(context.WithoutCancel(ctx), task.JobID,
			fmt.Sprintf("chunk %d payload corrupt: %v", task.ChunkIndex, err))
		return err
	}

	resolver := NewCompanyResolver(e.companies, payload.Scope)

	var (
		successful int
		failures   []entity.RowError
		pending    []pendingRow
		reached    int
	)
	fail := func(row *entity.UploadRow, reason string) {
		failures = append(failures, entity.RowError{
			ChunkIndex: task.ChunkIndex,
			RowIndex:   row.RowIndex,
			Symbol:     row.Symbol,
			Reason:     reason,
		})
	}
	flush := func() {
		s, f := e.flushBatch(ctx, task, pending)
		successful += s
		failures = append(failures, f...)
		pending = pending[:0]
	}

	for i := range payload.Rows {
		if ctx.Err() != nil {
			break
		}
		row := &payload.Rows[i]
		reached++

		input, reason := e.processRow(ctx, payload, task, resolver, row)
		if reason != "" {
			fail(row, reason)
			continue
		}
		pending = append(pending, pendingRow{input: input, symbol: row.Symbol})
		if len(pending) >= e.subBatch {
			flush()
		}
	}

	if ctx.Err() == nil {
		flush()
	} else {
		// deadline hit: buffered rows never committed, count them failed
		for _, p := range pending {
			failures = append(failures, entity.RowError{
				ChunkIndex: task.ChunkIndex,
				RowIndex:   p.input.RowIndex,
				Symbol:     p.symbol,
				Reason:     "chunk timed out before sub-batch commit",
			})
		}
		pending = nil
		for i := reached; i < len(payload.Rows); i++ {
			fail(&payload.Rows[i], "chunk timed out before row was processed")
		}
		e.logger.Warn("chunk timed out",
			"job_id", task.JobID, "chunk_index", task.ChunkIndex,
			"reached", reached, "rows", len(payload.Rows))
	}

	failed := len(payload.Rows) - successful
	delta := entity.ProgressDelta{
		ChunkIndex:     task.ChunkIndex,
		Processed:      len(payload.Rows),
		Successful:     successful,
		Failed:         failed,
		ChunkCompleted: true,
		Errors:         boundErrors(failures),
	}

	// report must survive the chunk deadline or the job hangs
	reportCtx := context.WithoutCancel(ctx)
	if _, err := e.aggregator.Merge(reportCtx, task.JobID, delta); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			e.logger.Error("job record missing, chunk outcome dropped",
				"job_id", task.JobID, "chunk_index", task.ChunkIndex)
			return err
		}
		return fmt.Errorf("report chunk %d of job %s: %w", task.ChunkIndex, task.JobID, err)
	}

	e.logger.Info("chunk complete",
		"job_id", task.JobID, "chunk_index", task.ChunkIndex,
		"successful", successful, "failed", failed)
	return nil
}

// processRow walks one row through the row state machine. A non-empty
// reason means the row failed; the reason goes into error_details.
func (e *ChunkExecutor) processRow(
	ctx context.Context,
	payload *ChunkPayload,
	task async.ChunkTask,
	resolver *CompanyResolver,
	row *entity.UploadRow,
) (*entity.PredictionInput, string) {
	if strings.TrimSpace(row.Symbol) == "" {
		return nil, "invalid row: symbol is required"
	}
	if row.Year <= 0 {
		return nil, fmt.Sprintf("invalid row: bad reporting year %d", row.Year)
	}
	if payload.JobType == constants.JobTypeQuarterly && (row.Quarter < 1 || row.Quarter > 4) {
		return nil, fmt.Sprintf("invalid row: bad reporting quarter %d", row.Quarter)
	}

	company, err := resolver.Resolve(ctx, row)
	if err != nil {
		return nil, fmt.Sprintf("resolve company: %v", err)
	}

	exists, err := e.guard.Exists(ctx, payload.JobType, company.ID, row.Year, row.Quarter)
	if err != nil {
		return nil, fmt.Sprintf("duplicate check: %v", err)
	}
	if exists {
		return nil, "prediction already exists for this period"
	}

	values := parseRatioValues(row.Ratios)
	input := &entity.PredictionInput{
		JobType:    payload.JobType,
		CompanyID:  company.ID,
		Year:       row.Year,
		Quarter:    row.Quarter,
		Ratios:     row.Ratios,
		JobID:      task.JobID,
		ChunkIndex: task.ChunkIndex,
		RowIndex:   row.RowIndex,
	}

	if payload.JobType == constants.JobTypeQuarterly {
		res, err := e.engine.ScoreQuarterly(values)
		if err != nil {
			return nil, fmt.Sprintf("scoring: %v", err)
		}
		input.Probability = res.EnsembleProbability
		input.LogitProbability = &res.LogitProbability
		input.GBMProbability = &res.GBMProbability
		input.EnsembleProbability = &res.EnsembleProbability
		input.RiskLevel = res.RiskLevel
		input.Confidence = res.Confidence
		return input, ""
	}

	res, err := e.engine.ScoreAnnual(values)
	if err != nil {
		return nil, fmt.Sprintf("scoring: %v", err)
	}
	input.Probability = res.Probability
	input.RiskLevel = res.RiskLevel
	input.Confidence = res.Confidence
	return input, ""
}

// flushBatch commits one sub-batch. If the batch transaction fails, each
// row is retried individually so one conflicting row only takes itself
// down: a uniqueness conflict records the row as "already exists" (a
// sibling chunk or a redelivered task won the insert), anything else is a
// plain persistence failure.
func (e *ChunkExecutor) flushBatch(ctx context.Context, task async.ChunkTask, pending []pendingRow) (int, []entity.RowError) {
	if len(pending) == 0 {
		return 0, nil
	}
	inputs := make([]*entity.PredictionInput, len(pending))
	for i, p := range pending {
		inputs[i] = p.input
	}
	if err := e.predictions.CreateBatch(ctx, inputs); err == nil {
		return len(pending), nil
	} else {
		e.logger.Warn("sub-batch insert failed, retrying rows individually",
			"job_id", task.JobID, "chunk_index", task.ChunkIndex,
			"rows", len(pending), "error", err)
	}

	var (
		successful int
		failures   []entity.RowError
	)
	for _, p := range pending {
		err := e.predictions.Create(ctx, p.input)
		switch {
		case err == nil:
			successful++
		case errors.Is(err, common.ErrConflict):
			failures = append(failures, entity.RowError{
				ChunkIndex: task.ChunkIndex,
				RowIndex:   p.input.RowIndex,
				Symbol:     p.symbol,
				Reason:     "prediction already exists for this period",
			})
		default:
			failures = append(failures, entity.RowError{
				ChunkIndex: task.ChunkIndex,
				RowIndex:   p.input.RowIndex,
				Symbol:     p.symbol,
				Reason:     fmt.Sprintf("persist prediction: %v", err),
			})
		}
	}
	return successful, failures
}

// parseRatioValues converts raw cell text to scoring inputs. Empty cells
// stay absent (the engine fails the row for missing features); present
// but non-numeric text such as "NM" becomes NaN, which bins to the
// Missing bucket.
func parseRatioValues(raw map[string]string) map[string]float64 {
	values := make(map[string]float64, len(raw))
	for name, cell := range raw {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			values[name] = math.NaN()
			continue
		}
		values[name] = v
	}
	return values
}

// boundErrors caps the per-chunk error list shipped to the aggregator;
// the job-level cap is enforced again at merge time.
func boundErrors(errs []entity.RowError) []entity.RowError {
	if len(errs) > constants.MaxErrorDetails {
		return errs[:constants.MaxErrorDetails]
	}
	return errs
}
