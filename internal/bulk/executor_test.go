package bulk

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyi-adeleke/riskscore/constants"
	"github.com/seyi-adeleke/riskscore/internal/async"
	"github.com/seyi-adeleke/riskscore/internal/entity"
)

type executorFixture struct {
	jobs        *memJobs
	companies   *memCompanies
	predictions *memPredictions
	exec        *ChunkExecutor
}

func newExecutorFixture(t *testing.T, subBatch int) *executorFixture {
	t.Helper()
	jobs := newMemJobs()
	companies := newMemCompanies()
	predictions := newMemPredictions()
	agg := NewAggregator(jobs, testLogger())
	exec := NewChunkExecutor(testLogger(), testEngine(), companies, predictions, agg, subBatch)
	return &executorFixture{jobs: jobs, companies: companies, predictions: predictions, exec: exec}
}

func (f *executorFixture) createJob(t *testing.T, jobType constants.JobType, totalRows, totalChunks int) *entity.UploadJob {
	t.Helper()
	job, err := f.jobs.Create(context.Background(), &entity.UploadJob{
		ID:          uuid.New(),
		JobType:     jobType,
		Status:      constants.JobStatusPending,
		TotalRows:   totalRows,
		TotalChunks: totalChunks,
		Scope:       systemScope(),
	})
	require.NoError(t, err)
	return job
}

func chunkTask(t *testing.T, job *entity.UploadJob, chunkIndex int, rows []entity.UploadRow) async.ChunkTask {
	t.Helper()
	payload, err := EncodeChunkPayload(&ChunkPayload{
		JobType: job.JobType,
		Scope:   systemScope(),
		Rows:    rows,
	})
	require.NoError(t, err)
	return async.ChunkTask{
		JobID:       job.ID,
		ChunkIndex:  chunkIndex,
		TotalChunks: job.TotalChunks,
		Payload:     payload,
		SubmittedAt: time.Now().UTC(),
	}
}

func TestExecuteScoresEveryRow(t *testing.T) {
	f := newExecutorFixture(t, 0)
	rows := makeAnnualRows(5)
	job := f.createJob(t, constants.JobTypeAnnual, len(rows), 1)

	err := f.exec.Execute(context.Background(), chunkTask(t, job, 0, rows))
	require.NoError(t, err)

	got, err := f.jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusCompleted, got.Status)
	assert.Equal(t, 5, got.ProcessedRows)
	assert.Equal(t, 5, got.SuccessfulRows)
	assert.Equal(t, 0, got.FailedRows)
	assert.Equal(t, 1, got.CompletedChunks)
	assert.NotNil(t, got.StartedAt)
	assert.NotNil(t, got.CompletedAt)
	assert.Equal(t, 5, f.predictions.count())
}

func TestExecuteBadRowsDoNotAbortChunk(t *testing.T) {
	f := newExecutorFixture(t, 0)
	rows := makeAnnualRows(4)
	rows[1].Symbol = "   " // missing symbol
	rows[2].Year = 0       // bad reporting year
	job := f.createJob(t, constants.JobTypeAnnual, len(rows), 1)

	err := f.exec.Execute(context.Background(), chunkTask(t, job, 0, rows))
	require.NoError(t, err)

	got, err := f.jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusCompleted, got.Status)
	assert.Equal(t, 4, got.ProcessedRows)
	assert.Equal(t, 2, got.SuccessfulRows)
	assert.Equal(t, 2, got.FailedRows)
	require.Len(t, got.ErrorDetails, 2)
	assert.Equal(t, 1, got.ErrorDetails[0].RowIndex)
	assert.Contains(t, got.ErrorDetails[0].Reason, "symbol")
	assert.Equal(t, 2, got.ErrorDetails[1].RowIndex)
	assert.Contains(t, got.ErrorDetails[1].Reason, "year")
}

func TestExecuteSkipsExistingPredictions(t *testing.T) {
	f := newExecutorFixture(t, 0)
	rows := makeAnnualRows(3)
	job := f.createJob(t, constants.JobTypeAnnual, len(rows), 1)

	// score the same rows once so the guard sees them on the second run
	require.NoError(t, f.exec.Execute(context.Background(), chunkTask(t, job, 0, rows)))

	rerun := f.createJob(t, constants.JobTypeAnnual, len(rows), 1)
	require.NoError(t, f.exec.Execute(context.Background(), chunkTask(t, rerun, 0, rows)))

	got, err := f.jobs.GetByID(context.Background(), rerun.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.SuccessfulRows)
	assert.Equal(t, 3, got.FailedRows)
	for _, e := range got.ErrorDetails {
		assert.Contains(t, e.Reason, "already exists")
	}
	assert.Equal(t, 3, f.predictions.count())
}

func TestExecuteMissingRatioFailsRow(t *testing.T) {
	f := newExecutorFixture(t, 0)
	rows := makeAnnualRows(2)
	delete(rows[0].Ratios, constants.RatioDebtRatio)
	job := f.createJob(t, constants.JobTypeAnnual, len(rows), 1)

	require.NoError(t, f.exec.Execute(context.Background(), chunkTask(t, job, 0, rows)))

	got, err := f.jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.SuccessfulRows)
	assert.Equal(t, 1, got.FailedRows)
	require.Len(t, got.ErrorDetails, 1)
	assert.Contains(t, got.ErrorDetails[0].Reason, constants.RatioDebtRatio)
}

func TestExecuteNotMeaningfulRatioScoresWithMissingRate(t *testing.T) {
	f := newExecutorFixture(t, 0)
	rows := []entity.UploadRow{annualRow(0, "NMCO", 2019, "NM")}
	job := f.createJob(t, constants.JobTypeAnnual, 1, 1)

	require.NoError(t, f.exec.Execute(context.Background(), chunkTask(t, job, 0, rows)))

	got, err := f.jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.SuccessfulRows)

	company, err := f.companies.GetOrCreate(context.Background(), &entity.CompanyInput{
		Symbol: "NMCO", Name: "NMCO Corp", Scope: systemScope(),
	})
	require.NoError(t, err)
	p, err := f.predictions.FindAnnual(context.Background(), company.ID, 2019)
	require.NoError(t, err)
	require.NotNil(t, p)
	// roa "NM" bins to the roa missing rate of 0.10
	assert.InDelta(t, 0.10, p.Probability, 1e-12)
	assert.Equal(t, constants.RiskHigh, p.RiskLevel)
}

func TestExecuteQuarterlyStoresAllThreeProbabilities(t *testing.T) {
	f := newExecutorFixture(t, 0)
	rows := []entity.UploadRow{quarterlyRow(0, "QCO", 2020, 2)}
	job := f.createJob(t, constants.JobTypeQuarterly, 1, 1)

	require.NoError(t, f.exec.Execute(context.Background(), chunkTask(t, job, 0, rows)))

	company, err := f.companies.GetOrCreate(context.Background(), &entity.CompanyInput{
		Symbol: "QCO", Name: "QCO Inc", Scope: systemScope(),
	})
	require.NoError(t, err)
	p, err := f.predictions.FindQuarterly(context.Background(), company.ID, 2020, 2)
	require.NoError(t, err)
	require.NotNil(t, p)
	require.NotNil(t, p.LogitProbability)
	require.NotNil(t, p.GBMProbability)
	require.NotNil(t, p.EnsembleProbability)
	assert.InDelta(t, (*p.LogitProbability+*p.GBMProbability)/2, *p.EnsembleProbability, 1e-12)
	assert.Equal(t, p.Probability, *p.EnsembleProbability)
}

func TestExecuteQuarterlyRejectsBadQuarter(t *testing.T) {
	f := newExecutorFixture(t, 0)
	rows := []entity.UploadRow{quarterlyRow(0, "QCO", 2020, 0)}
	rows[0].Quarter = 5
	job := f.createJob(t, constants.JobTypeQuarterly, 1, 1)

	require.NoError(t, f.exec.Execute(context.Background(), chunkTask(t, job, 0, rows)))

	got, err := f.jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.FailedRows)
	assert.Contains(t, got.ErrorDetails[0].Reason, "quarter")
}

func TestExecuteBatchFailureFallsBackPerRow(t *testing.T) {
	f := newExecutorFixture(t, 2)
	f.predictions.failBatch = true
	rows := makeAnnualRows(5)
	job := f.createJob(t, constants.JobTypeAnnual, len(rows), 1)

	require.NoError(t, f.exec.Execute(context.Background(), chunkTask(t, job, 0, rows)))

	got, err := f.jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.SuccessfulRows)
	assert.Equal(t, 0, got.FailedRows)
	assert.Equal(t, 5, f.predictions.count())
}

func TestExecutePersistErrorRecordedPerRow(t *testing.T) {
	f := newExecutorFixture(t, 0)
	f.predictions.failBatch = true
	f.predictions.createErr = assert.AnError
	rows := makeAnnualRows(2)
	job := f.createJob(t, constants.JobTypeAnnual, len(rows), 1)

	require.NoError(t, f.exec.Execute(context.Background(), chunkTask(t, job, 0, rows)))

	got, err := f.jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ProcessedRows)
	assert.Equal(t, 0, got.SuccessfulRows)
	assert.Equal(t, 2, got.FailedRows)
	assert.Equal(t, constants.JobStatusCompleted, got.Status)
	for _, e := range got.ErrorDetails {
		assert.Contains(t, e.Reason, "persist prediction")
	}
}

func TestExecuteCorruptPayloadFailsJob(t *testing.T) {
	f := newExecutorFixture(t, 0)
	job := f.createJob(t, constants.JobTypeAnnual, 10, 1)

	task := async.ChunkTask{
		JobID:      job.ID,
		ChunkIndex: 0,
		Payload:    []byte(`{"job_type":"ANNUAL"`),
	}
	err := f.exec.Execute(context.Background(), task)
	require.Error(t, err)

	got, err := f.jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "payload corrupt")
}

func TestExecuteTimeoutCountsUnreachedRowsFailed(t *testing.T) {
	f := newExecutorFixture(t, 0)
	rows := makeAnnualRows(10)
	job := f.createJob(t, constants.JobTypeAnnual, len(rows), 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // expired before any row runs

	require.NoError(t, f.exec.Execute(ctx, chunkTask(t, job, 0, rows)))

	got, err := f.jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	// the report still lands and completes the chunk
	assert.Equal(t, constants.JobStatusCompleted, got.Status)
	assert.Equal(t, 10, got.ProcessedRows)
	assert.Equal(t, 0, got.SuccessfulRows)
	assert.Equal(t, 10, got.FailedRows)
	assert.Equal(t, 1, got.CompletedChunks)
	for _, e := range got.ErrorDetails {
		assert.Contains(t, e.Reason, "timed out")
	}
}

func TestExecuteRedeliveredChunkIsNoOp(t *testing.T) {
	f := newExecutorFixture(t, 0)
	rows := makeAnnualRows(3)
	job := f.createJob(t, constants.JobTypeAnnual, len(rows), 1)
	task := chunkTask(t, job, 0, rows)

	require.NoError(t, f.exec.Execute(context.Background(), task))
	require.NoError(t, f.exec.Execute(context.Background(), task))

	got, err := f.jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	// second delivery hits the chunk ledger: counters unchanged
	assert.Equal(t, 3, got.ProcessedRows)
	assert.Equal(t, 3, got.SuccessfulRows)
	assert.Equal(t, 1, got.CompletedChunks)
	assert.Equal(t, 3, f.predictions.count())
}
