package bulk

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/seyi-adeleke/riskscore/constants"
	"github.com/seyi-adeleke/riskscore/internal/common"
	"github.com/seyi-adeleke/riskscore/internal/entity"
	"github.com/seyi-adeleke/riskscore/internal/scoring"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// memJobs is an in-memory JobRepository that mirrors the transactional
// merge semantics of the database implementation, including the
// (job_id, chunk_index) ledger that makes redelivered chunks no-ops.
type memJobs struct {
	mu     sync.Mutex
	jobs   map[uuid.UUID]*entity.UploadJob
	ledger map[string]bool

	// mergeErrs is a script of errors returned by successive
	// MergeProgress calls before the real merge runs; nil entries
	// let the call through.
	mergeErrs   []error
	mergeCalls  int
	failedCalls []string
}

func newMemJobs() *memJobs {
	return &memJobs{
		jobs:   map[uuid.UUID]*entity.UploadJob{},
		ledger: map[string]bool{},
	}
}

func (m *memJobs) Create(_ context.Context, job *entity.UploadJob) (*entity.UploadJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *job
	if cp.ID == uuid.Nil {
		cp.ID = uuid.New()
	}
	cp.CreatedAt = time.Now().UTC()
	m.jobs[cp.ID] = &cp
	return cloneJob(&cp), nil
}

func (m *memJobs) GetByID(_ context.Context, id uuid.UUID) (*entity.UploadJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return cloneJob(job), nil
}

func (m *memJobs) MergeProgress(_ context.Context, jobID uuid.UUID, delta entity.ProgressDelta) (*entity.UploadJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.mergeCalls < len(m.mergeErrs) {
		err := m.mergeErrs[m.mergeCalls]
		m.mergeCalls++
		if err != nil {
			return nil, err
		}
	} else {
		m.mergeCalls++
	}

	job, ok := m.jobs[jobID]
	if !ok {
		return nil, common.ErrNotFound
	}

	key := fmt.Sprintf("%s/%d", jobID, delta.ChunkIndex)
	if m.ledger[key] {
		return cloneJob(job), nil
	}
	m.ledger[key] = true

	// the ledger entry is recorded, but a FAILED job keeps its counters
	if job.Status == constants.JobStatusFailed {
		return cloneJob(job), nil
	}

	job.ProcessedRows += delta.Processed
	job.SuccessfulRows += delta.Successful
	job.FailedRows += delta.Failed
	if delta.ChunkCompleted {
		job.CompletedChunks++
	}
	if job.Status == constants.JobStatusPending {
		job.Status = constants.JobStatusProcessing
		now := time.Now().UTC()
		job.StartedAt = &now
	}
	for _, e := range delta.Errors {
		if len(job.ErrorDetails) >= constants.MaxErrorDetails {
			break
		}
		job.ErrorDetails = append(job.ErrorDetails, e)
	}
	if job.CompletedChunks >= job.TotalChunks && !job.Status.IsTerminal() {
		job.Status = constants.JobStatusCompleted
		now := time.Now().UTC()
		job.CompletedAt = &now
	}
	return cloneJob(job), nil
}

func (m *memJobs) MarkFailed(_ context.Context, jobID uuid.UUID, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failedCalls = append(m.failedCalls, message)
	job, ok := m.jobs[jobID]
	if !ok {
		return common.ErrNotFound
	}
	if job.Status.IsTerminal() {
		return nil
	}
	job.Status = constants.JobStatusFailed
	job.ErrorMessage = &message
	now := time.Now().UTC()
	job.CompletedAt = &now
	return nil
}

func cloneJob(job *entity.UploadJob) *entity.UploadJob {
	cp := *job
	cp.ErrorDetails = append([]entity.RowError(nil), job.ErrorDetails...)
	return &cp
}

// memCompanies fakes the company upsert keyed on (symbol, scope).
type memCompanies struct {
	mu        sync.Mutex
	companies map[string]*entity.Company
	calls     int
	err       error
}

func newMemCompanies() *memCompanies {
	return &memCompanies{companies: map[string]*entity.Company{}}
}

func (m *memCompanies) GetOrCreate(_ context.Context, in *entity.CompanyInput) (*entity.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	key := fmt.Sprintf("%s/%s/%s", in.Symbol, in.Scope.Type, in.Scope.ScopeID)
	if c, ok := m.companies[key]; ok {
		c.Name = in.Name
		c.Sector = in.Sector
		c.MarketCap = in.MarketCap
		cp := *c
		return &cp, nil
	}
	c := &entity.Company{
		ID:        uuid.New(),
		Symbol:    in.Symbol,
		Name:      in.Name,
		Sector:    in.Sector,
		MarketCap: in.MarketCap,
		Scope:     in.Scope,
		CreatedAt: time.Now().UTC(),
	}
	m.companies[key] = c
	cp := *c
	return &cp, nil
}

// memPredictions fakes the prediction store with the same uniqueness
// contract as the database layer: one prediction per company per period.
type memPredictions struct {
	mu     sync.Mutex
	annual map[string]*entity.Prediction
	qtr    map[string]*entity.Prediction

	failBatch bool // force CreateBatch to fail so flushes fall back to per-row
	createErr error
}

func newMemPredictions() *memPredictions {
	return &memPredictions{
		annual: map[string]*entity.Prediction{},
		qtr:    map[string]*entity.Prediction{},
	}
}

func annualKey(companyID uuid.UUID, year int) string {
	return fmt.Sprintf("%s/%d", companyID, year)
}

func quarterlyKey(companyID uuid.UUID, year, quarter int) string {
	return fmt.Sprintf("%s/%d/%d", companyID, year, quarter)
}

func (m *memPredictions) FindAnnual(_ context.Context, companyID uuid.UUID, year int) (*entity.Prediction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.annual[annualKey(companyID, year)]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (m *memPredictions) FindQuarterly(_ context.Context, companyID uuid.UUID, year, quarter int) (*entity.Prediction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.qtr[quarterlyKey(companyID, year, quarter)]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (m *memPredictions) CreateBatch(_ context.Context, inputs []*entity.PredictionInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failBatch {
		return fmt.Errorf("%w: batch insert failed", common.ErrDatabase)
	}
	for _, in := range inputs {
		if m.exists(in) {
			return fmt.Errorf("%w: duplicate prediction in batch", common.ErrConflict)
		}
	}
	for _, in := range inputs {
		m.store(in)
	}
	return nil
}

func (m *memPredictions) Create(_ context.Context, in *entity.PredictionInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	if m.exists(in) {
		return fmt.Errorf("%w: prediction exists", common.ErrConflict)
	}
	m.store(in)
	return nil
}

func (m *memPredictions) exists(in *entity.PredictionInput) bool {
	if in.JobType == constants.JobTypeQuarterly {
		_, ok := m.qtr[quarterlyKey(in.CompanyID, in.Year, in.Quarter)]
		return ok
	}
	_, ok := m.annual[annualKey(in.CompanyID, in.Year)]
	return ok
}

func (m *memPredictions) store(in *entity.PredictionInput) {
	p := &entity.Prediction{
		ID:                  uuid.New(),
		CompanyID:           in.CompanyID,
		Year:                in.Year,
		Quarter:             in.Quarter,
		Probability:         in.Probability,
		LogitProbability:    in.LogitProbability,
		GBMProbability:      in.GBMProbability,
		EnsembleProbability: in.EnsembleProbability,
		RiskLevel:           in.RiskLevel,
		Confidence:          in.Confidence,
		JobID:               in.JobID,
		ChunkIndex:          in.ChunkIndex,
		RowIndex:            in.RowIndex,
		CreatedAt:           time.Now().UTC(),
	}
	if in.JobType == constants.JobTypeQuarterly {
		m.qtr[quarterlyKey(in.CompanyID, in.Year, in.Quarter)] = p
	} else {
		m.annual[annualKey(in.CompanyID, in.Year)] = p
	}
}

func (m *memPredictions) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.annual) + len(m.qtr)
}

// Model builders small enough to reason about by hand. The annual model
// weights only roa, so a row's probability equals that ratio's binned
// rate plus the intercept.

func fp(v float64) *float64 { return &v }

func flatTable(rate float64) scoring.Table {
	return scoring.Table{
		Intervals:   []scoring.Interval{{Low: nil, High: nil, Rate: rate}},
		MissingRate: rate,
	}
}

func testEngine() *scoring.Engine {
	annualTables := map[string]scoring.Table{}
	annualWeights := map[string]float64{}
	for _, name := range constants.AnnualRatios {
		annualTables[name] = flatTable(0.02)
		annualWeights[name] = 0
	}
	annualTables[constants.RatioROA] = scoring.Table{
		Intervals: []scoring.Interval{
			{Low: nil, High: fp(0), Rate: 0.30},
			{Low: fp(0), High: nil, Rate: 0.01},
		},
		MissingRate: 0.10,
	}
	annualWeights[constants.RatioROA] = 1

	quarterlyTables := map[string]scoring.Table{}
	quarterlyWeights := map[string]float64{}
	for _, name := range constants.QuarterlyRatios {
		quarterlyTables[name] = flatTable(0.02)
		quarterlyWeights[name] = 0
	}

	annual := &scoring.AnnualModel{
		Version: "test-annual",
		Tables:  annualTables,
		Scorer:  scoring.LinearScorer{Intercept: 0, Weights: annualWeights},
	}
	quarterly := &scoring.QuarterlyModel{
		Version: "test-quarterly",
		Tables:  quarterlyTables,
		Logit:   scoring.LogisticScorer{Intercept: -3, Weights: quarterlyWeights},
		GBM: scoring.GBM{
			BaseScore: -3,
			Trees:     []scoring.Tree{{Nodes: []scoring.TreeNode{{Leaf: fp(0)}}}},
		},
	}
	return scoring.NewEngine(annual, quarterly)
}

func systemScope() entity.OwnerScope {
	return entity.OwnerScope{Type: constants.ScopeSystem, ScopeID: uuid.Nil}
}

// annualRow supplies every required annual ratio; roa controls the score.
func annualRow(index int, symbol string, year int, roa string) entity.UploadRow {
	ratios := map[string]string{}
	for _, name := range constants.AnnualRatios {
		ratios[name] = "1.0"
	}
	ratios[constants.RatioROA] = roa
	return entity.UploadRow{
		RowIndex: index,
		Symbol:   symbol,
		Name:     symbol + " Corp",
		Year:     year,
		Ratios:   ratios,
	}
}

func quarterlyRow(index int, symbol string, year, quarter int) entity.UploadRow {
	ratios := map[string]string{}
	for _, name := range constants.QuarterlyRatios {
		ratios[name] = "1.0"
	}
	return entity.UploadRow{
		RowIndex: index,
		Symbol:   symbol,
		Name:     symbol + " Inc",
		Year:     year,
		Quarter:  quarter,
		Ratios:   ratios,
	}
}

func makeAnnualRows(n int) []entity.UploadRow {
	rows := make([]entity.UploadRow, n)
	for i := range rows {
		rows[i] = annualRow(i, fmt.Sprintf("SYM%03d", i), 2019, "0.05")
	}
	return rows
}
