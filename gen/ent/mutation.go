// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/seyi-adeleke/riskscore/gen/ent/annualprediction"
	"github.com/seyi-adeleke/riskscore/gen/ent/chunkreport"
	"github.com/seyi-adeleke/riskscore/gen/ent/company"
	"github.com/seyi-adeleke/riskscore/gen/ent/predicate"
	"github.com/seyi-adeleke/riskscore/gen/ent/quarterlyprediction"
	"github.com/seyi-adeleke/riskscore/gen/ent/uploadjob"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnnualPrediction    = "AnnualPrediction"
	TypeChunkReport         = "ChunkReport"
	TypeCompany             = "Company"
	TypeQuarterlyPrediction = "QuarterlyPrediction"
	TypeUploadJob           = "UploadJob"
)

// AnnualPredictionMutation represents an operation that mutates the AnnualPrediction nodes in the graph.
type AnnualPredictionMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	reporting_year    *int
	addreporting_year *int
	ratios            *map[string]string
	probability       *float64
	addprobability    *float64
	risk_level        *string
	confidence        *float64
	addconfidence     *float64
	job_id            *uuid.UUID
	chunk_index       *int
	addchunk_index    *int
	row_index         *int
	addrow_index      *int
	created_at        *time.Time
	clearedFields     map[string]struct{}
	company           *uuid.UUID
	clearedcompany    bool
	done              bool
	oldValue          func(context.Context) (*AnnualPrediction, error)
	predicates        []predicate.AnnualPrediction
}

var _ ent.Mutation = (*AnnualPredictionMutation)(nil)

// annualpredictionOption allows management of the mutation configuration using functional options.
type annualpredictionOption func(*AnnualPredictionMutation)

// newAnnualPredictionMutation creates new mutation for the AnnualPrediction entity.
func newAnnualPredictionMutation(c config, op Op, opts ...annualpredictionOption) *AnnualPredictionMutation {
	m := &AnnualPredictionMutation{
		config:        c,
		op:            op,
		typ:           TypeAnnualPrediction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnnualPredictionID sets the ID field of the mutation.
func withAnnualPredictionID(id uuid.UUID) annualpredictionOption {
	return func(m *AnnualPredictionMutation) {
		var (
			err   error
			once  sync.Once
			value *AnnualPrediction
		)
		m.oldValue = func(ctx context.Context) (*AnnualPrediction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnnualPrediction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnnualPrediction sets the old AnnualPrediction of the mutation.
func withAnnualPrediction(node *AnnualPrediction) annualpredictionOption {
	return func(m *AnnualPredictionMutation) {
		m.oldValue = func(context.Context) (*AnnualPrediction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnnualPredictionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnnualPredictionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AnnualPrediction entities.
func (m *AnnualPredictionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnnualPredictionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnnualPredictionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnnualPrediction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *AnnualPredictionMutation) SetCompanyID(u uuid.UUID) {
	m.company = &u
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *AnnualPredictionMutation) CompanyID() (r uuid.UUID, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the AnnualPrediction entity.
// If the AnnualPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnualPredictionMutation) OldCompanyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *AnnualPredictionMutation) ResetCompanyID() {
	m.company = nil
}

// SetReportingYear sets the "reporting_year" field.
func (m *AnnualPredictionMutation) SetReportingYear(i int) {
	m.reporting_year = &i
	m.addreporting_year = nil
}

// ReportingYear returns the value of the "reporting_year" field in the mutation.
func (m *AnnualPredictionMutation) ReportingYear() (r int, exists bool) {
	v := m.reporting_year
	if v == nil {
		return
	}
	return *v, true
}

// OldReportingYear returns the old "reporting_year" field's value of the AnnualPrediction entity.
// If the AnnualPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnualPredictionMutation) OldReportingYear(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportingYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportingYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportingYear: %w", err)
	}
	return oldValue.ReportingYear, nil
}

// AddReportingYear adds i to the "reporting_year" field.
func (m *AnnualPredictionMutation) AddReportingYear(i int) {
	if m.addreporting_year != nil {
		*m.addreporting_year += i
	} else {
		m.addreporting_year = &i
	}
}

// AddedReportingYear returns the value that was added to the "reporting_year" field in this mutation.
func (m *AnnualPredictionMutation) AddedReportingYear() (r int, exists bool) {
	v := m.addreporting_year
	if v == nil {
		return
	}
	return *v, true
}

// ResetReportingYear resets all changes to the "reporting_year" field.
func (m *AnnualPredictionMutation) ResetReportingYear() {
	m.reporting_year = nil
	m.addreporting_year = nil
}

// SetRatios sets the "ratios" field.
func (m *AnnualPredictionMutation) SetRatios(value map[string]string) {
	m.ratios = &value
}

// Ratios returns the value of the "ratios" field in the mutation.
func (m *AnnualPredictionMutation) Ratios() (r map[string]string, exists bool) {
	v := m.ratios
	if v == nil {
		return
	}
	return *v, true
}

// OldRatios returns the old "ratios" field's value of the AnnualPrediction entity.
// If the AnnualPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnualPredictionMutation) OldRatios(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRatios is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRatios requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRatios: %w", err)
	}
	return oldValue.Ratios, nil
}

// ResetRatios resets all changes to the "ratios" field.
func (m *AnnualPredictionMutation) ResetRatios() {
	m.ratios = nil
}

// SetProbability sets the "probability" field.
func (m *AnnualPredictionMutation) SetProbability(f float64) {
	m.probability = &f
	m.addprobability = nil
}

// Probability returns the value of the "probability" field in the mutation.
func (m *AnnualPredictionMutation) Probability() (r float64, exists bool) {
	v := m.probability
	if v == nil {
		return
	}
	return *v, true
}

// OldProbability returns the old "probability" field's value of the AnnualPrediction entity.
// If the AnnualPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnualPredictionMutation) OldProbability(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProbability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProbability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProbability: %w", err)
	}
	return oldValue.Probability, nil
}

// AddProbability adds f to the "probability" field.
func (m *AnnualPredictionMutation) AddProbability(f float64) {
	if m.addprobability != nil {
		*m.addprobability += f
	} else {
		m.addprobability = &f
	}
}

// AddedProbability returns the value that was added to the "probability" field in this mutation.
func (m *AnnualPredictionMutation) AddedProbability() (r float64, exists bool) {
	v := m.addprobability
	if v == nil {
		return
	}
	return *v, true
}

// ResetProbability resets all changes to the "probability" field.
func (m *AnnualPredictionMutation) ResetProbability() {
	m.probability = nil
	m.addprobability = nil
}

// SetRiskLevel sets the "risk_level" field.
func (m *AnnualPredictionMutation) SetRiskLevel(s string) {
	m.risk_level = &s
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *AnnualPredictionMutation) RiskLevel() (r string, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the AnnualPrediction entity.
// If the AnnualPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnualPredictionMutation) OldRiskLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *AnnualPredictionMutation) ResetRiskLevel() {
	m.risk_level = nil
}

// SetConfidence sets the "confidence" field.
func (m *AnnualPredictionMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *AnnualPredictionMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the AnnualPrediction entity.
// If the AnnualPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnualPredictionMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *AnnualPredictionMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *AnnualPredictionMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *AnnualPredictionMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetJobID sets the "job_id" field.
func (m *AnnualPredictionMutation) SetJobID(u uuid.UUID) {
	m.job_id = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *AnnualPredictionMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the AnnualPrediction entity.
// If the AnnualPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnualPredictionMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *AnnualPredictionMutation) ResetJobID() {
	m.job_id = nil
}

// SetChunkIndex sets the "chunk_index" field.
func (m *AnnualPredictionMutation) SetChunkIndex(i int) {
	m.chunk_index = &i
	m.addchunk_index = nil
}

// ChunkIndex returns the value of the "chunk_index" field in the mutation.
func (m *AnnualPredictionMutation) ChunkIndex() (r int, exists bool) {
	v := m.chunk_index
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkIndex returns the old "chunk_index" field's value of the AnnualPrediction entity.
// If the AnnualPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnualPredictionMutation) OldChunkIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkIndex: %w", err)
	}
	return oldValue.ChunkIndex, nil
}

// AddChunkIndex adds i to the "chunk_index" field.
func (m *AnnualPredictionMutation) AddChunkIndex(i int) {
	if m.addchunk_index != nil {
		*m.addchunk_index += i
	} else {
		m.addchunk_index = &i
	}
}

// AddedChunkIndex returns the value that was added to the "chunk_index" field in this mutation.
func (m *AnnualPredictionMutation) AddedChunkIndex() (r int, exists bool) {
	v := m.addchunk_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetChunkIndex resets all changes to the "chunk_index" field.
func (m *AnnualPredictionMutation) ResetChunkIndex() {
	m.chunk_index = nil
	m.addchunk_index = nil
}

// SetRowIndex sets the "row_index" field.
func (m *AnnualPredictionMutation) SetRowIndex(i int) {
	m.row_index = &i
	m.addrow_index = nil
}

// RowIndex returns the value of the "row_index" field in the mutation.
func (m *AnnualPredictionMutation) RowIndex() (r int, exists bool) {
	v := m.row_index
	if v == nil {
		return
	}
	return *v, true
}

// OldRowIndex returns the old "row_index" field's value of the AnnualPrediction entity.
// If the AnnualPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnualPredictionMutation) OldRowIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowIndex: %w", err)
	}
	return oldValue.RowIndex, nil
}

// AddRowIndex adds i to the "row_index" field.
func (m *AnnualPredictionMutation) AddRowIndex(i int) {
	if m.addrow_index != nil {
		*m.addrow_index += i
	} else {
		m.addrow_index = &i
	}
}

// AddedRowIndex returns the value that was added to the "row_index" field in this mutation.
func (m *AnnualPredictionMutation) AddedRowIndex() (r int, exists bool) {
	v := m.addrow_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetRowIndex resets all changes to the "row_index" field.
func (m *AnnualPredictionMutation) ResetRowIndex() {
	m.row_index = nil
	m.addrow_index = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AnnualPredictionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnnualPredictionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnnualPrediction entity.
// If the AnnualPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnualPredictionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnnualPredictionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *AnnualPredictionMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[annualprediction.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *AnnualPredictionMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *AnnualPredictionMutation) CompanyIDs() (ids []uuid.UUID) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *AnnualPredictionMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// Where appends a list predicates to the AnnualPredictionMutation builder.
func (m *AnnualPredictionMutation) Where(ps ...predicate.AnnualPrediction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnnualPredictionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnnualPredictionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnnualPrediction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnnualPredictionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnnualPredictionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnnualPrediction).
func (m *AnnualPredictionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnnualPredictionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.company != nil {
		fields = append(fields, annualprediction.FieldCompanyID)
	}
	if m.reporting_year != nil {
		fields = append(fields, annualprediction.FieldReportingYear)
	}
	if m.ratios != nil {
		fields = append(fields, annualprediction.FieldRatios)
	}
	if m.probability != nil {
		fields = append(fields, annualprediction.FieldProbability)
	}
	if m.risk_level != nil {
		fields = append(fields, annualprediction.FieldRiskLevel)
	}
	if m.confidence != nil {
		fields = append(fields, annualprediction.FieldConfidence)
	}
	if m.job_id != nil {
		fields = append(fields, annualprediction.FieldJobID)
	}
	if m.chunk_index != nil {
		fields = append(fields, annualprediction.FieldChunkIndex)
	}
	if m.row_index != nil {
		fields = append(fields, annualprediction.FieldRowIndex)
	}
	if m.created_at != nil {
		fields = append(fields, annualprediction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnnualPredictionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case annualprediction.FieldCompanyID:
		return m.CompanyID()
	case annualprediction.FieldReportingYear:
		return m.ReportingYear()
	case annualprediction.FieldRatios:
		return m.Ratios()
	case annualprediction.FieldProbability:
		return m.Probability()
	case annualprediction.FieldRiskLevel:
		return m.RiskLevel()
	case annualprediction.FieldConfidence:
		return m.Confidence()
	case annualprediction.FieldJobID:
		return m.JobID()
	case annualprediction.FieldChunkIndex:
		return m.ChunkIndex()
	case annualprediction.FieldRowIndex:
		return m.RowIndex()
	case annualprediction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnnualPredictionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case annualprediction.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case annualprediction.FieldReportingYear:
		return m.OldReportingYear(ctx)
	case annualprediction.FieldRatios:
		return m.OldRatios(ctx)
	case annualprediction.FieldProbability:
		return m.OldProbability(ctx)
	case annualprediction.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case annualprediction.FieldConfidence:
		return m.OldConfidence(ctx)
	case annualprediction.FieldJobID:
		return m.OldJobID(ctx)
	case annualprediction.FieldChunkIndex:
		return m.OldChunkIndex(ctx)
	case annualprediction.FieldRowIndex:
		return m.OldRowIndex(ctx)
	case annualprediction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnnualPrediction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnnualPredictionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case annualprediction.FieldCompanyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case annualprediction.FieldReportingYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportingYear(v)
		return nil
	case annualprediction.FieldRatios:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRatios(v)
		return nil
	case annualprediction.FieldProbability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProbability(v)
		return nil
	case annualprediction.FieldRiskLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case annualprediction.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case annualprediction.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case annualprediction.FieldChunkIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkIndex(v)
		return nil
	case annualprediction.FieldRowIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowIndex(v)
		return nil
	case annualprediction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnnualPrediction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnnualPredictionMutation) AddedFields() []string {
	var fields []string
	if m.addreporting_year != nil {
		fields = append(fields, annualprediction.FieldReportingYear)
	}
	if m.addprobability != nil {
		fields = append(fields, annualprediction.FieldProbability)
	}
	if m.addconfidence != nil {
		fields = append(fields, annualprediction.FieldConfidence)
	}
	if m.addchunk_index != nil {
		fields = append(fields, annualprediction.FieldChunkIndex)
	}
	if m.addrow_index != nil {
		fields = append(fields, annualprediction.FieldRowIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnnualPredictionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case annualprediction.FieldReportingYear:
		return m.AddedReportingYear()
	case annualprediction.FieldProbability:
		return m.AddedProbability()
	case annualprediction.FieldConfidence:
		return m.AddedConfidence()
	case annualprediction.FieldChunkIndex:
		return m.AddedChunkIndex()
	case annualprediction.FieldRowIndex:
		return m.AddedRowIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnnualPredictionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case annualprediction.FieldReportingYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReportingYear(v)
		return nil
	case annualprediction.FieldProbability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProbability(v)
		return nil
	case annualprediction.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case annualprediction.FieldChunkIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChunkIndex(v)
		return nil
	case annualprediction.FieldRowIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRowIndex(v)
		return nil
	}
	return fmt.Errorf("unknown AnnualPrediction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnnualPredictionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnnualPredictionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnnualPredictionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AnnualPrediction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnnualPredictionMutation) ResetField(name string) error {
	switch name {
	case annualprediction.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case annualprediction.FieldReportingYear:
		m.ResetReportingYear()
		return nil
	case annualprediction.FieldRatios:
		m.ResetRatios()
		return nil
	case annualprediction.FieldProbability:
		m.ResetProbability()
		return nil
	case annualprediction.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case annualprediction.FieldConfidence:
		m.ResetConfidence()
		return nil
	case annualprediction.FieldJobID:
		m.ResetJobID()
		return nil
	case annualprediction.FieldChunkIndex:
		m.ResetChunkIndex()
		return nil
	case annualprediction.FieldRowIndex:
		m.ResetRowIndex()
		return nil
	case annualprediction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AnnualPrediction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnnualPredictionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.company != nil {
		edges = append(edges, annualprediction.EdgeCompany)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnnualPredictionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case annualprediction.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnnualPredictionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnnualPredictionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnnualPredictionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcompany {
		edges = append(edges, annualprediction.EdgeCompany)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnnualPredictionMutation) EdgeCleared(name string) bool {
	switch name {
	case annualprediction.EdgeCompany:
		return m.clearedcompany
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnnualPredictionMutation) ClearEdge(name string) error {
	switch name {
	case annualprediction.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown AnnualPrediction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnnualPredictionMutation) ResetEdge(name string) error {
	switch name {
	case annualprediction.EdgeCompany:
		m.ResetCompany()
		return nil
	}
	return fmt.Errorf("unknown AnnualPrediction edge %s", name)
}

// ChunkReportMutation represents an operation that mutates the ChunkReport nodes in the graph.
type ChunkReportMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	chunk_index        *int
	addchunk_index     *int
	rows_processed     *int
	addrows_processed  *int
	rows_successful    *int
	addrows_successful *int
	rows_failed        *int
	addrows_failed     *int
	reported_at        *time.Time
	clearedFields      map[string]struct{}
	job                *uuid.UUID
	clearedjob         bool
	done               bool
	oldValue           func(context.Context) (*ChunkReport, error)
	predicates         []predicate.ChunkReport
}

var _ ent.Mutation = (*ChunkReportMutation)(nil)

// chunkreportOption allows management of the mutation configuration using functional options.
type chunkreportOption func(*ChunkReportMutation)

// newChunkReportMutation creates new mutation for the ChunkReport entity.
func newChunkReportMutation(c config, op Op, opts ...chunkreportOption) *ChunkReportMutation {
	m := &ChunkReportMutation{
		config:        c,
		op:            op,
		typ:           TypeChunkReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChunkReportID sets the ID field of the mutation.
func withChunkReportID(id uuid.UUID) chunkreportOption {
	return func(m *ChunkReportMutation) {
		var (
			err   error
			once  sync.Once
			value *ChunkReport
		)
		m.oldValue = func(ctx context.Context) (*ChunkReport, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChunkReport.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChunkReport sets the old ChunkReport of the mutation.
func withChunkReport(node *ChunkReport) chunkreportOption {
	return func(m *ChunkReportMutation) {
		m.oldValue = func(context.Context) (*ChunkReport, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChunkReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChunkReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChunkReport entities.
func (m *ChunkReportMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChunkReportMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChunkReportMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChunkReport.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *ChunkReportMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *ChunkReportMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the ChunkReport entity.
// If the ChunkReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkReportMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *ChunkReportMutation) ResetJobID() {
	m.job = nil
}

// SetChunkIndex sets the "chunk_index" field.
func (m *ChunkReportMutation) SetChunkIndex(i int) {
	m.chunk_index = &i
	m.addchunk_index = nil
}

// ChunkIndex returns the value of the "chunk_index" field in the mutation.
func (m *ChunkReportMutation) ChunkIndex() (r int, exists bool) {
	v := m.chunk_index
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkIndex returns the old "chunk_index" field's value of the ChunkReport entity.
// If the ChunkReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkReportMutation) OldChunkIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkIndex: %w", err)
	}
	return oldValue.ChunkIndex, nil
}

// AddChunkIndex adds i to the "chunk_index" field.
func (m *ChunkReportMutation) AddChunkIndex(i int) {
	if m.addchunk_index != nil {
		*m.addchunk_index += i
	} else {
		m.addchunk_index = &i
	}
}

// AddedChunkIndex returns the value that was added to the "chunk_index" field in this mutation.
func (m *ChunkReportMutation) AddedChunkIndex() (r int, exists bool) {
	v := m.addchunk_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetChunkIndex resets all changes to the "chunk_index" field.
func (m *ChunkReportMutation) ResetChunkIndex() {
	m.chunk_index = nil
	m.addchunk_index = nil
}

// SetRowsProcessed sets the "rows_processed" field.
func (m *ChunkReportMutation) SetRowsProcessed(i int) {
	m.rows_processed = &i
	m.addrows_processed = nil
}

// RowsProcessed returns the value of the "rows_processed" field in the mutation.
func (m *ChunkReportMutation) RowsProcessed() (r int, exists bool) {
	v := m.rows_processed
	if v == nil {
		return
	}
	return *v, true
}

// OldRowsProcessed returns the old "rows_processed" field's value of the ChunkReport entity.
// If the ChunkReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkReportMutation) OldRowsProcessed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowsProcessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowsProcessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowsProcessed: %w", err)
	}
	return oldValue.RowsProcessed, nil
}

// AddRowsProcessed adds i to the "rows_processed" field.
func (m *ChunkReportMutation) AddRowsProcessed(i int) {
	if m.addrows_processed != nil {
		*m.addrows_processed += i
	} else {
		m.addrows_processed = &i
	}
}

// AddedRowsProcessed returns the value that was added to the "rows_processed" field in this mutation.
func (m *ChunkReportMutation) AddedRowsProcessed() (r int, exists bool) {
	v := m.addrows_processed
	if v == nil {
		return
	}
	return *v, true
}

// ResetRowsProcessed resets all changes to the "rows_processed" field.
func (m *ChunkReportMutation) ResetRowsProcessed() {
	m.rows_processed = nil
	m.addrows_processed = nil
}

// SetRowsSuccessful sets the "rows_successful" field.
func (m *ChunkReportMutation) SetRowsSuccessful(i int) {
	m.rows_successful = &i
	m.addrows_successful = nil
}

// RowsSuccessful returns the value of the "rows_successful" field in the mutation.
func (m *ChunkReportMutation) RowsSuccessful() (r int, exists bool) {
	v := m.rows_successful
	if v == nil {
		return
	}
	return *v, true
}

// OldRowsSuccessful returns the old "rows_successful" field's value of the ChunkReport entity.
// If the ChunkReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkReportMutation) OldRowsSuccessful(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowsSuccessful is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowsSuccessful requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowsSuccessful: %w", err)
	}
	return oldValue.RowsSuccessful, nil
}

// AddRowsSuccessful adds i to the "rows_successful" field.
func (m *ChunkReportMutation) AddRowsSuccessful(i int) {
	if m.addrows_successful != nil {
		*m.addrows_successful += i
	} else {
		m.addrows_successful = &i
	}
}

// AddedRowsSuccessful returns the value that was added to the "rows_successful" field in this mutation.
func (m *ChunkReportMutation) AddedRowsSuccessful() (r int, exists bool) {
	v := m.addrows_successful
	if v == nil {
		return
	}
	return *v, true
}

// ResetRowsSuccessful resets all changes to the "rows_successful" field.
func (m *ChunkReportMutation) ResetRowsSuccessful() {
	m.rows_successful = nil
	m.addrows_successful = nil
}

// SetRowsFailed sets the "rows_failed" field.
func (m *ChunkReportMutation) SetRowsFailed(i int) {
	m.rows_failed = &i
	m.addrows_failed = nil
}

// RowsFailed returns the value of the "rows_failed" field in the mutation.
func (m *ChunkReportMutation) RowsFailed() (r int, exists bool) {
	v := m.rows_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldRowsFailed returns the old "rows_failed" field's value of the ChunkReport entity.
// If the ChunkReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkReportMutation) OldRowsFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowsFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowsFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowsFailed: %w", err)
	}
	return oldValue.RowsFailed, nil
}

// AddRowsFailed adds i to the "rows_failed" field.
func (m *ChunkReportMutation) AddRowsFailed(i int) {
	if m.addrows_failed != nil {
		*m.addrows_failed += i
	} else {
		m.addrows_failed = &i
	}
}

// AddedRowsFailed returns the value that was added to the "rows_failed" field in this mutation.
func (m *ChunkReportMutation) AddedRowsFailed() (r int, exists bool) {
	v := m.addrows_failed
	if v == nil {
		return
	}
	return *v, true
}

// ResetRowsFailed resets all changes to the "rows_failed" field.
func (m *ChunkReportMutation) ResetRowsFailed() {
	m.rows_failed = nil
	m.addrows_failed = nil
}

// SetReportedAt sets the "reported_at" field.
func (m *ChunkReportMutation) SetReportedAt(t time.Time) {
	m.reported_at = &t
}

// ReportedAt returns the value of the "reported_at" field in the mutation.
func (m *ChunkReportMutation) ReportedAt() (r time.Time, exists bool) {
	v := m.reported_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReportedAt returns the old "reported_at" field's value of the ChunkReport entity.
// If the ChunkReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkReportMutation) OldReportedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportedAt: %w", err)
	}
	return oldValue.ReportedAt, nil
}

// ResetReportedAt resets all changes to the "reported_at" field.
func (m *ChunkReportMutation) ResetReportedAt() {
	m.reported_at = nil
}

// ClearJob clears the "job" edge to the UploadJob entity.
func (m *ChunkReportMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[chunkreport.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the UploadJob entity was cleared.
func (m *ChunkReportMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *ChunkReportMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *ChunkReportMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the ChunkReportMutation builder.
func (m *ChunkReportMutation) Where(ps ...predicate.ChunkReport) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChunkReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChunkReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChunkReport, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChunkReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChunkReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChunkReport).
func (m *ChunkReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChunkReportMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.job != nil {
		fields = append(fields, chunkreport.FieldJobID)
	}
	if m.chunk_index != nil {
		fields = append(fields, chunkreport.FieldChunkIndex)
	}
	if m.rows_processed != nil {
		fields = append(fields, chunkreport.FieldRowsProcessed)
	}
	if m.rows_successful != nil {
		fields = append(fields, chunkreport.FieldRowsSuccessful)
	}
	if m.rows_failed != nil {
		fields = append(fields, chunkreport.FieldRowsFailed)
	}
	if m.reported_at != nil {
		fields = append(fields, chunkreport.FieldReportedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChunkReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chunkreport.FieldJobID:
		return m.JobID()
	case chunkreport.FieldChunkIndex:
		return m.ChunkIndex()
	case chunkreport.FieldRowsProcessed:
		return m.RowsProcessed()
	case chunkreport.FieldRowsSuccessful:
		return m.RowsSuccessful()
	case chunkreport.FieldRowsFailed:
		return m.RowsFailed()
	case chunkreport.FieldReportedAt:
		return m.ReportedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChunkReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chunkreport.FieldJobID:
		return m.OldJobID(ctx)
	case chunkreport.FieldChunkIndex:
		return m.OldChunkIndex(ctx)
	case chunkreport.FieldRowsProcessed:
		return m.OldRowsProcessed(ctx)
	case chunkreport.FieldRowsSuccessful:
		return m.OldRowsSuccessful(ctx)
	case chunkreport.FieldRowsFailed:
		return m.OldRowsFailed(ctx)
	case chunkreport.FieldReportedAt:
		return m.OldReportedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChunkReport field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChunkReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chunkreport.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case chunkreport.FieldChunkIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkIndex(v)
		return nil
	case chunkreport.FieldRowsProcessed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowsProcessed(v)
		return nil
	case chunkreport.FieldRowsSuccessful:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowsSuccessful(v)
		return nil
	case chunkreport.FieldRowsFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowsFailed(v)
		return nil
	case chunkreport.FieldReportedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChunkReport field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChunkReportMutation) AddedFields() []string {
	var fields []string
	if m.addchunk_index != nil {
		fields = append(fields, chunkreport.FieldChunkIndex)
	}
	if m.addrows_processed != nil {
		fields = append(fields, chunkreport.FieldRowsProcessed)
	}
	if m.addrows_successful != nil {
		fields = append(fields, chunkreport.FieldRowsSuccessful)
	}
	if m.addrows_failed != nil {
		fields = append(fields, chunkreport.FieldRowsFailed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChunkReportMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chunkreport.FieldChunkIndex:
		return m.AddedChunkIndex()
	case chunkreport.FieldRowsProcessed:
		return m.AddedRowsProcessed()
	case chunkreport.FieldRowsSuccessful:
		return m.AddedRowsSuccessful()
	case chunkreport.FieldRowsFailed:
		return m.AddedRowsFailed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChunkReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chunkreport.FieldChunkIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChunkIndex(v)
		return nil
	case chunkreport.FieldRowsProcessed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRowsProcessed(v)
		return nil
	case chunkreport.FieldRowsSuccessful:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRowsSuccessful(v)
		return nil
	case chunkreport.FieldRowsFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRowsFailed(v)
		return nil
	}
	return fmt.Errorf("unknown ChunkReport numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChunkReportMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChunkReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChunkReportMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ChunkReport nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChunkReportMutation) ResetField(name string) error {
	switch name {
	case chunkreport.FieldJobID:
		m.ResetJobID()
		return nil
	case chunkreport.FieldChunkIndex:
		m.ResetChunkIndex()
		return nil
	case chunkreport.FieldRowsProcessed:
		m.ResetRowsProcessed()
		return nil
	case chunkreport.FieldRowsSuccessful:
		m.ResetRowsSuccessful()
		return nil
	case chunkreport.FieldRowsFailed:
		m.ResetRowsFailed()
		return nil
	case chunkreport.FieldReportedAt:
		m.ResetReportedAt()
		return nil
	}
	return fmt.Errorf("unknown ChunkReport field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChunkReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, chunkreport.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChunkReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chunkreport.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChunkReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChunkReportMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChunkReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, chunkreport.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChunkReportMutation) EdgeCleared(name string) bool {
	switch name {
	case chunkreport.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChunkReportMutation) ClearEdge(name string) error {
	switch name {
	case chunkreport.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown ChunkReport unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChunkReportMutation) ResetEdge(name string) error {
	switch name {
	case chunkreport.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown ChunkReport edge %s", name)
}

// CompanyMutation represents an operation that mutates the Company nodes in the graph.
type CompanyMutation struct {
	config
	op                           Op
	typ                          string
	id                           *uuid.UUID
	symbol                       *string
	name                         *string
	sector                       *string
	market_cap                   *float64
	addmarket_cap                *float64
	scope_type                   *string
	scope_id                     *uuid.UUID
	created_at                   *time.Time
	updated_at                   *time.Time
	clearedFields                map[string]struct{}
	annual_predictions           map[uuid.UUID]struct{}
	removedannual_predictions    map[uuid.UUID]struct{}
	clearedannual_predictions    bool
	quarterly_predictions        map[uuid.UUID]struct{}
	removedquarterly_predictions map[uuid.UUID]struct{}
	clearedquarterly_predictions bool
	done                         bool
	oldValue                     func(context.Context) (*Company, error)
	predicates                   []predicate.Company
}

var _ ent.Mutation = (*CompanyMutation)(nil)

// companyOption allows management of the mutation configuration using functional options.
type companyOption func(*CompanyMutation)

// newCompanyMutation creates new mutation for the Company entity.
func newCompanyMutation(c config, op Op, opts ...companyOption) *CompanyMutation {
	m := &CompanyMutation{
		config:        c,
		op:            op,
		typ:           TypeCompany,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompanyID sets the ID field of the mutation.
func withCompanyID(id uuid.UUID) companyOption {
	return func(m *CompanyMutation) {
		var (
			err   error
			once  sync.Once
			value *Company
		)
		m.oldValue = func(ctx context.Context) (*Company, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Company.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompany sets the old Company of the mutation.
func withCompany(node *Company) companyOption {
	return func(m *CompanyMutation) {
		m.oldValue = func(context.Context) (*Company, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompanyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompanyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Company entities.
func (m *CompanyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompanyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompanyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Company.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSymbol sets the "symbol" field.
func (m *CompanyMutation) SetSymbol(s string) {
	m.symbol = &s
}

// Symbol returns the value of the "symbol" field in the mutation.
func (m *CompanyMutation) Symbol() (r string, exists bool) {
	v := m.symbol
	if v == nil {
		return
	}
	return *v, true
}

// OldSymbol returns the old "symbol" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldSymbol(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSymbol is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSymbol requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSymbol: %w", err)
	}
	return oldValue.Symbol, nil
}

// ResetSymbol resets all changes to the "symbol" field.
func (m *CompanyMutation) ResetSymbol() {
	m.symbol = nil
}

// SetName sets the "name" field.
func (m *CompanyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CompanyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CompanyMutation) ResetName() {
	m.name = nil
}

// SetSector sets the "sector" field.
func (m *CompanyMutation) SetSector(s string) {
	m.sector = &s
}

// Sector returns the value of the "sector" field in the mutation.
func (m *CompanyMutation) Sector() (r string, exists bool) {
	v := m.sector
	if v == nil {
		return
	}
	return *v, true
}

// OldSector returns the old "sector" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldSector(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSector is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSector requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSector: %w", err)
	}
	return oldValue.Sector, nil
}

// ClearSector clears the value of the "sector" field.
func (m *CompanyMutation) ClearSector() {
	m.sector = nil
	m.clearedFields[company.FieldSector] = struct{}{}
}

// SectorCleared returns if the "sector" field was cleared in this mutation.
func (m *CompanyMutation) SectorCleared() bool {
	_, ok := m.clearedFields[company.FieldSector]
	return ok
}

// ResetSector resets all changes to the "sector" field.
func (m *CompanyMutation) ResetSector() {
	m.sector = nil
	delete(m.clearedFields, company.FieldSector)
}

// SetMarketCap sets the "market_cap" field.
func (m *CompanyMutation) SetMarketCap(f float64) {
	m.market_cap = &f
	m.addmarket_cap = nil
}

// MarketCap returns the value of the "market_cap" field in the mutation.
func (m *CompanyMutation) MarketCap() (r float64, exists bool) {
	v := m.market_cap
	if v == nil {
		return
	}
	return *v, true
}

// OldMarketCap returns the old "market_cap" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldMarketCap(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarketCap is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarketCap requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarketCap: %w", err)
	}
	return oldValue.MarketCap, nil
}

// AddMarketCap adds f to the "market_cap" field.
func (m *CompanyMutation) AddMarketCap(f float64) {
	if m.addmarket_cap != nil {
		*m.addmarket_cap += f
	} else {
		m.addmarket_cap = &f
	}
}

// AddedMarketCap returns the value that was added to the "market_cap" field in this mutation.
func (m *CompanyMutation) AddedMarketCap() (r float64, exists bool) {
	v := m.addmarket_cap
	if v == nil {
		return
	}
	return *v, true
}

// ClearMarketCap clears the value of the "market_cap" field.
func (m *CompanyMutation) ClearMarketCap() {
	m.market_cap = nil
	m.addmarket_cap = nil
	m.clearedFields[company.FieldMarketCap] = struct{}{}
}

// MarketCapCleared returns if the "market_cap" field was cleared in this mutation.
func (m *CompanyMutation) MarketCapCleared() bool {
	_, ok := m.clearedFields[company.FieldMarketCap]
	return ok
}

// ResetMarketCap resets all changes to the "market_cap" field.
func (m *CompanyMutation) ResetMarketCap() {
	m.market_cap = nil
	m.addmarket_cap = nil
	delete(m.clearedFields, company.FieldMarketCap)
}

// SetScopeType sets the "scope_type" field.
func (m *CompanyMutation) SetScopeType(s string) {
	m.scope_type = &s
}

// ScopeType returns the value of the "scope_type" field in the mutation.
func (m *CompanyMutation) ScopeType() (r string, exists bool) {
	v := m.scope_type
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeType returns the old "scope_type" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldScopeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeType: %w", err)
	}
	return oldValue.ScopeType, nil
}

// ResetScopeType resets all changes to the "scope_type" field.
func (m *CompanyMutation) ResetScopeType() {
	m.scope_type = nil
}

// SetScopeID sets the "scope_id" field.
func (m *CompanyMutation) SetScopeID(u uuid.UUID) {
	m.scope_id = &u
}

// ScopeID returns the value of the "scope_id" field in the mutation.
func (m *CompanyMutation) ScopeID() (r uuid.UUID, exists bool) {
	v := m.scope_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeID returns the old "scope_id" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldScopeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeID: %w", err)
	}
	return oldValue.ScopeID, nil
}

// ResetScopeID resets all changes to the "scope_id" field.
func (m *CompanyMutation) ResetScopeID() {
	m.scope_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CompanyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompanyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CompanyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CompanyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CompanyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CompanyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddAnnualPredictionIDs adds the "annual_predictions" edge to the AnnualPrediction entity by ids.
func (m *CompanyMutation) AddAnnualPredictionIDs(ids ...uuid.UUID) {
	if m.annual_predictions == nil {
		m.annual_predictions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.annual_predictions[ids[i]] = struct{}{}
	}
}

// ClearAnnualPredictions clears the "annual_predictions" edge to the AnnualPrediction entity.
func (m *CompanyMutation) ClearAnnualPredictions() {
	m.clearedannual_predictions = true
}

// AnnualPredictionsCleared reports if the "annual_predictions" edge to the AnnualPrediction entity was cleared.
func (m *CompanyMutation) AnnualPredictionsCleared() bool {
	return m.clearedannual_predictions
}

// RemoveAnnualPredictionIDs removes the "annual_predictions" edge to the AnnualPrediction entity by IDs.
func (m *CompanyMutation) RemoveAnnualPredictionIDs(ids ...uuid.UUID) {
	if m.removedannual_predictions == nil {
		m.removedannual_predictions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.annual_predictions, ids[i])
		m.removedannual_predictions[ids[i]] = struct{}{}
	}
}

// RemovedAnnualPredictions returns the removed IDs of the "annual_predictions" edge to the AnnualPrediction entity.
func (m *CompanyMutation) RemovedAnnualPredictionsIDs() (ids []uuid.UUID) {
	for id := range m.removedannual_predictions {
		ids = append(ids, id)
	}
	return
}

// AnnualPredictionsIDs returns the "annual_predictions" edge IDs in the mutation.
func (m *CompanyMutation) AnnualPredictionsIDs() (ids []uuid.UUID) {
	for id := range m.annual_predictions {
		ids = append(ids, id)
	}
	return
}

// ResetAnnualPredictions resets all changes to the "annual_predictions" edge.
func (m *CompanyMutation) ResetAnnualPredictions() {
	m.annual_predictions = nil
	m.clearedannual_predictions = false
	m.removedannual_predictions = nil
}

// AddQuarterlyPredictionIDs adds the "quarterly_predictions" edge to the QuarterlyPrediction entity by ids.
func (m *CompanyMutation) AddQuarterlyPredictionIDs(ids ...uuid.UUID) {
	if m.quarterly_predictions == nil {
		m.quarterly_predictions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.quarterly_predictions[ids[i]] = struct{}{}
	}
}

// ClearQuarterlyPredictions clears the "quarterly_predictions" edge to the QuarterlyPrediction entity.
func (m *CompanyMutation) ClearQuarterlyPredictions() {
	m.clearedquarterly_predictions = true
}

// QuarterlyPredictionsCleared reports if the "quarterly_predictions" edge to the QuarterlyPrediction entity was cleared.
func (m *CompanyMutation) QuarterlyPredictionsCleared() bool {
	return m.clearedquarterly_predictions
}

// RemoveQuarterlyPredictionIDs removes the "quarterly_predictions" edge to the QuarterlyPrediction entity by IDs.
func (m *CompanyMutation) RemoveQuarterlyPredictionIDs(ids ...uuid.UUID) {
	if m.removedquarterly_predictions == nil {
		m.removedquarterly_predictions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.quarterly_predictions, ids[i])
		m.removedquarterly_predictions[ids[i]] = struct{}{}
	}
}

// RemovedQuarterlyPredictions returns the removed IDs of the "quarterly_predictions" edge to the QuarterlyPrediction entity.
func (m *CompanyMutation) RemovedQuarterlyPredictionsIDs() (ids []uuid.UUID) {
	for id := range m.removedquarterly_predictions {
		ids = append(ids, id)
	}
	return
}

// QuarterlyPredictionsIDs returns the "quarterly_predictions" edge IDs in the mutation.
func (m *CompanyMutation) QuarterlyPredictionsIDs() (ids []uuid.UUID) {
	for id := range m.quarterly_predictions {
		ids = append(ids, id)
	}
	return
}

// ResetQuarterlyPredictions resets all changes to the "quarterly_predictions" edge.
func (m *CompanyMutation) ResetQuarterlyPredictions() {
	m.quarterly_predictions = nil
	m.clearedquarterly_predictions = false
	m.removedquarterly_predictions = nil
}

// Where appends a list predicates to the CompanyMutation builder.
func (m *CompanyMutation) Where(ps ...predicate.Company) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompanyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompanyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Company, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompanyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompanyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Company).
func (m *CompanyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompanyMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.symbol != nil {
		fields = append(fields, company.FieldSymbol)
	}
	if m.name != nil {
		fields = append(fields, company.FieldName)
	}
	if m.sector != nil {
		fields = append(fields, company.FieldSector)
	}
	if m.market_cap != nil {
		fields = append(fields, company.FieldMarketCap)
	}
	if m.scope_type != nil {
		fields = append(fields, company.FieldScopeType)
	}
	if m.scope_id != nil {
		fields = append(fields, company.FieldScopeID)
	}
	if m.created_at != nil {
		fields = append(fields, company.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, company.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompanyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case company.FieldSymbol:
		return m.Symbol()
	case company.FieldName:
		return m.Name()
	case company.FieldSector:
		return m.Sector()
	case company.FieldMarketCap:
		return m.MarketCap()
	case company.FieldScopeType:
		return m.ScopeType()
	case company.FieldScopeID:
		return m.ScopeID()
	case company.FieldCreatedAt:
		return m.CreatedAt()
	case company.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompanyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case company.FieldSymbol:
		return m.OldSymbol(ctx)
	case company.FieldName:
		return m.OldName(ctx)
	case company.FieldSector:
		return m.OldSector(ctx)
	case company.FieldMarketCap:
		return m.OldMarketCap(ctx)
	case company.FieldScopeType:
		return m.OldScopeType(ctx)
	case company.FieldScopeID:
		return m.OldScopeID(ctx)
	case company.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case company.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Company field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case company.FieldSymbol:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSymbol(v)
		return nil
	case company.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case company.FieldSector:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSector(v)
		return nil
	case company.FieldMarketCap:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarketCap(v)
		return nil
	case company.FieldScopeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeType(v)
		return nil
	case company.FieldScopeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeID(v)
		return nil
	case company.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case company.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompanyMutation) AddedFields() []string {
	var fields []string
	if m.addmarket_cap != nil {
		fields = append(fields, company.FieldMarketCap)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompanyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case company.FieldMarketCap:
		return m.AddedMarketCap()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case company.FieldMarketCap:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMarketCap(v)
		return nil
	}
	return fmt.Errorf("unknown Company numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompanyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(company.FieldSector) {
		fields = append(fields, company.FieldSector)
	}
	if m.FieldCleared(company.FieldMarketCap) {
		fields = append(fields, company.FieldMarketCap)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompanyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompanyMutation) ClearField(name string) error {
	switch name {
	case company.FieldSector:
		m.ClearSector()
		return nil
	case company.FieldMarketCap:
		m.ClearMarketCap()
		return nil
	}
	return fmt.Errorf("unknown Company nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompanyMutation) ResetField(name string) error {
	switch name {
	case company.FieldSymbol:
		m.ResetSymbol()
		return nil
	case company.FieldName:
		m.ResetName()
		return nil
	case company.FieldSector:
		m.ResetSector()
		return nil
	case company.FieldMarketCap:
		m.ResetMarketCap()
		return nil
	case company.FieldScopeType:
		m.ResetScopeType()
		return nil
	case company.FieldScopeID:
		m.ResetScopeID()
		return nil
	case company.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case company.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompanyMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.annual_predictions != nil {
		edges = append(edges, company.EdgeAnnualPredictions)
	}
	if m.quarterly_predictions != nil {
		edges = append(edges, company.EdgeQuarterlyPredictions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompanyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeAnnualPredictions:
		ids := make([]ent.Value, 0, len(m.annual_predictions))
		for id := range m.annual_predictions {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeQuarterlyPredictions:
		ids := make([]ent.Value, 0, len(m.quarterly_predictions))
		for id := range m.quarterly_predictions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompanyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedannual_predictions != nil {
		edges = append(edges, company.EdgeAnnualPredictions)
	}
	if m.removedquarterly_predictions != nil {
		edges = append(edges, company.EdgeQuarterlyPredictions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompanyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeAnnualPredictions:
		ids := make([]ent.Value, 0, len(m.removedannual_predictions))
		for id := range m.removedannual_predictions {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeQuarterlyPredictions:
		ids := make([]ent.Value, 0, len(m.removedquarterly_predictions))
		for id := range m.removedquarterly_predictions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompanyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedannual_predictions {
		edges = append(edges, company.EdgeAnnualPredictions)
	}
	if m.clearedquarterly_predictions {
		edges = append(edges, company.EdgeQuarterlyPredictions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompanyMutation) EdgeCleared(name string) bool {
	switch name {
	case company.EdgeAnnualPredictions:
		return m.clearedannual_predictions
	case company.EdgeQuarterlyPredictions:
		return m.clearedquarterly_predictions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompanyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Company unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompanyMutation) ResetEdge(name string) error {
	switch name {
	case company.EdgeAnnualPredictions:
		m.ResetAnnualPredictions()
		return nil
	case company.EdgeQuarterlyPredictions:
		m.ResetQuarterlyPredictions()
		return nil
	}
	return fmt.Errorf("unknown Company edge %s", name)
}

// QuarterlyPredictionMutation represents an operation that mutates the QuarterlyPrediction nodes in the graph.
type QuarterlyPredictionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	reporting_year          *int
	addreporting_year       *int
	reporting_quarter       *int
	addreporting_quarter    *int
	ratios                  *map[string]string
	logit_probability       *float64
	addlogit_probability    *float64
	gbm_probability         *float64
	addgbm_probability      *float64
	ensemble_probability    *float64
	addensemble_probability *float64
	risk_level              *string
	confidence              *float64
	addconfidence           *float64
	job_id                  *uuid.UUID
	chunk_index             *int
	addchunk_index          *int
	row_index               *int
	addrow_index            *int
	created_at              *time.Time
	clearedFields           map[string]struct{}
	company                 *uuid.UUID
	clearedcompany          bool
	done                    bool
	oldValue                func(context.Context) (*QuarterlyPrediction, error)
	predicates              []predicate.QuarterlyPrediction
}

var _ ent.Mutation = (*QuarterlyPredictionMutation)(nil)

// quarterlypredictionOption allows management of the mutation configuration using functional options.
type quarterlypredictionOption func(*QuarterlyPredictionMutation)

// newQuarterlyPredictionMutation creates new mutation for the QuarterlyPrediction entity.
func newQuarterlyPredictionMutation(c config, op Op, opts ...quarterlypredictionOption) *QuarterlyPredictionMutation {
	m := &QuarterlyPredictionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuarterlyPrediction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuarterlyPredictionID sets the ID field of the mutation.
func withQuarterlyPredictionID(id uuid.UUID) quarterlypredictionOption {
	return func(m *QuarterlyPredictionMutation) {
		var (
			err   error
			once  sync.Once
			value *QuarterlyPrediction
		)
		m.oldValue = func(ctx context.Context) (*QuarterlyPrediction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuarterlyPrediction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuarterlyPrediction sets the old QuarterlyPrediction of the mutation.
func withQuarterlyPrediction(node *QuarterlyPrediction) quarterlypredictionOption {
	return func(m *QuarterlyPredictionMutation) {
		m.oldValue = func(context.Context) (*QuarterlyPrediction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuarterlyPredictionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuarterlyPredictionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QuarterlyPrediction entities.
func (m *QuarterlyPredictionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuarterlyPredictionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuarterlyPredictionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuarterlyPrediction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *QuarterlyPredictionMutation) SetCompanyID(u uuid.UUID) {
	m.company = &u
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *QuarterlyPredictionMutation) CompanyID() (r uuid.UUID, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the QuarterlyPrediction entity.
// If the QuarterlyPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuarterlyPredictionMutation) OldCompanyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *QuarterlyPredictionMutation) ResetCompanyID() {
	m.company = nil
}

// SetReportingYear sets the "reporting_year" field.
func (m *QuarterlyPredictionMutation) SetReportingYear(i int) {
	m.reporting_year = &i
	m.addreporting_year = nil
}

// ReportingYear returns the value of the "reporting_year" field in the mutation.
func (m *QuarterlyPredictionMutation) ReportingYear() (r int, exists bool) {
	v := m.reporting_year
	if v == nil {
		return
	}
	return *v, true
}

// OldReportingYear returns the old "reporting_year" field's value of the QuarterlyPrediction entity.
// If the QuarterlyPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuarterlyPredictionMutation) OldReportingYear(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportingYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportingYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportingYear: %w", err)
	}
	return oldValue.ReportingYear, nil
}

// AddReportingYear adds i to the "reporting_year" field.
func (m *QuarterlyPredictionMutation) AddReportingYear(i int) {
	if m.addreporting_year != nil {
		*m.addreporting_year += i
	} else {
		m.addreporting_year = &i
	}
}

// AddedReportingYear returns the value that was added to the "reporting_year" field in this mutation.
func (m *QuarterlyPredictionMutation) AddedReportingYear() (r int, exists bool) {
	v := m.addreporting_year
	if v == nil {
		return
	}
	return *v, true
}

// ResetReportingYear resets all changes to the "reporting_year" field.
func (m *QuarterlyPredictionMutation) ResetReportingYear() {
	m.reporting_year = nil
	m.addreporting_year = nil
}

// SetReportingQuarter sets the "reporting_quarter" field.
func (m *QuarterlyPredictionMutation) SetReportingQuarter(i int) {
	m.reporting_quarter = &i
	m.addreporting_quarter = nil
}

// ReportingQuarter returns the value of the "reporting_quarter" field in the mutation.
func (m *QuarterlyPredictionMutation) ReportingQuarter() (r int, exists bool) {
	v := m.reporting_quarter
	if v == nil {
		return
	}
	return *v, true
}

// OldReportingQuarter returns the old "reporting_quarter" field's value of the QuarterlyPrediction entity.
// If the QuarterlyPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuarterlyPredictionMutation) OldReportingQuarter(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportingQuarter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportingQuarter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportingQuarter: %w", err)
	}
	return oldValue.ReportingQuarter, nil
}

// AddReportingQuarter adds i to the "reporting_quarter" field.
func (m *QuarterlyPredictionMutation) AddReportingQuarter(i int) {
	if m.addreporting_quarter != nil {
		*m.addreporting_quarter += i
	} else {
		m.addreporting_quarter = &i
	}
}

// AddedReportingQuarter returns the value that was added to the "reporting_quarter" field in this mutation.
func (m *QuarterlyPredictionMutation) AddedReportingQuarter() (r int, exists bool) {
	v := m.addreporting_quarter
	if v == nil {
		return
	}
	return *v, true
}

// ResetReportingQuarter resets all changes to the "reporting_quarter" field.
func (m *QuarterlyPredictionMutation) ResetReportingQuarter() {
	m.reporting_quarter = nil
	m.addreporting_quarter = nil
}

// SetRatios sets the "ratios" field.
func (m *QuarterlyPredictionMutation) SetRatios(value map[string]string) {
	m.ratios = &value
}

// Ratios returns the value of the "ratios" field in the mutation.
func (m *QuarterlyPredictionMutation) Ratios() (r map[string]string, exists bool) {
	v := m.ratios
	if v == nil {
		return
	}
	return *v, true
}

// OldRatios returns the old "ratios" field's value of the QuarterlyPrediction entity.
// If the QuarterlyPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuarterlyPredictionMutation) OldRatios(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRatios is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRatios requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRatios: %w", err)
	}
	return oldValue.Ratios, nil
}

// ResetRatios resets all changes to the "ratios" field.
func (m *QuarterlyPredictionMutation) ResetRatios() {
	m.ratios = nil
}

// SetLogitProbability sets the "logit_probability" field.
func (m *QuarterlyPredictionMutation) SetLogitProbability(f float64) {
	m.logit_probability = &f
	m.addlogit_probability = nil
}

// LogitProbability returns the value of the "logit_probability" field in the mutation.
func (m *QuarterlyPredictionMutation) LogitProbability() (r float64, exists bool) {
	v := m.logit_probability
	if v == nil {
		return
	}
	return *v, true
}

// OldLogitProbability returns the old "logit_probability" field's value of the QuarterlyPrediction entity.
// If the QuarterlyPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuarterlyPredictionMutation) OldLogitProbability(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogitProbability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogitProbability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogitProbability: %w", err)
	}
	return oldValue.LogitProbability, nil
}

// AddLogitProbability adds f to the "logit_probability" field.
func (m *QuarterlyPredictionMutation) AddLogitProbability(f float64) {
	if m.addlogit_probability != nil {
		*m.addlogit_probability += f
	} else {
		m.addlogit_probability = &f
	}
}

// AddedLogitProbability returns the value that was added to the "logit_probability" field in this mutation.
func (m *QuarterlyPredictionMutation) AddedLogitProbability() (r float64, exists bool) {
	v := m.addlogit_probability
	if v == nil {
		return
	}
	return *v, true
}

// ResetLogitProbability resets all changes to the "logit_probability" field.
func (m *QuarterlyPredictionMutation) ResetLogitProbability() {
	m.logit_probability = nil
	m.addlogit_probability = nil
}

// SetGbmProbability sets the "gbm_probability" field.
func (m *QuarterlyPredictionMutation) SetGbmProbability(f float64) {
	m.gbm_probability = &f
	m.addgbm_probability = nil
}

// GbmProbability returns the value of the "gbm_probability" field in the mutation.
func (m *QuarterlyPredictionMutation) GbmProbability() (r float64, exists bool) {
	v := m.gbm_probability
	if v == nil {
		return
	}
	return *v, true
}

// OldGbmProbability returns the old "gbm_probability" field's value of the QuarterlyPrediction entity.
// If the QuarterlyPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuarterlyPredictionMutation) OldGbmProbability(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGbmProbability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGbmProbability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGbmProbability: %w", err)
	}
	return oldValue.GbmProbability, nil
}

// AddGbmProbability adds f to the "gbm_probability" field.
func (m *QuarterlyPredictionMutation) AddGbmProbability(f float64) {
	if m.addgbm_probability != nil {
		*m.addgbm_probability += f
	} else {
		m.addgbm_probability = &f
	}
}

// AddedGbmProbability returns the value that was added to the "gbm_probability" field in this mutation.
func (m *QuarterlyPredictionMutation) AddedGbmProbability() (r float64, exists bool) {
	v := m.addgbm_probability
	if v == nil {
		return
	}
	return *v, true
}

// ResetGbmProbability resets all changes to the "gbm_probability" field.
func (m *QuarterlyPredictionMutation) ResetGbmProbability() {
	m.gbm_probability = nil
	m.addgbm_probability = nil
}

// SetEnsembleProbability sets the "ensemble_probability" field.
func (m *QuarterlyPredictionMutation) SetEnsembleProbability(f float64) {
	m.ensemble_probability = &f
	m.addensemble_probability = nil
}

// EnsembleProbability returns the value of the "ensemble_probability" field in the mutation.
func (m *QuarterlyPredictionMutation) EnsembleProbability() (r float64, exists bool) {
	v := m.ensemble_probability
	if v == nil {
		return
	}
	return *v, true
}

// OldEnsembleProbability returns the old "ensemble_probability" field's value of the QuarterlyPrediction entity.
// If the QuarterlyPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuarterlyPredictionMutation) OldEnsembleProbability(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnsembleProbability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnsembleProbability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnsembleProbability: %w", err)
	}
	return oldValue.EnsembleProbability, nil
}

// AddEnsembleProbability adds f to the "ensemble_probability" field.
func (m *QuarterlyPredictionMutation) AddEnsembleProbability(f float64) {
	if m.addensemble_probability != nil {
		*m.addensemble_probability += f
	} else {
		m.addensemble_probability = &f
	}
}

// AddedEnsembleProbability returns the value that was added to the "ensemble_probability" field in this mutation.
func (m *QuarterlyPredictionMutation) AddedEnsembleProbability() (r float64, exists bool) {
	v := m.addensemble_probability
	if v == nil {
		return
	}
	return *v, true
}

// ResetEnsembleProbability resets all changes to the "ensemble_probability" field.
func (m *QuarterlyPredictionMutation) ResetEnsembleProbability() {
	m.ensemble_probability = nil
	m.addensemble_probability = nil
}

// SetRiskLevel sets the "risk_level" field.
func (m *QuarterlyPredictionMutation) SetRiskLevel(s string) {
	m.risk_level = &s
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *QuarterlyPredictionMutation) RiskLevel() (r string, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the QuarterlyPrediction entity.
// If the QuarterlyPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuarterlyPredictionMutation) OldRiskLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *QuarterlyPredictionMutation) ResetRiskLevel() {
	m.risk_level = nil
}

// SetConfidence sets the "confidence" field.
func (m *QuarterlyPredictionMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *QuarterlyPredictionMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the QuarterlyPrediction entity.
// If the QuarterlyPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuarterlyPredictionMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *QuarterlyPredictionMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *QuarterlyPredictionMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *QuarterlyPredictionMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetJobID sets the "job_id" field.
func (m *QuarterlyPredictionMutation) SetJobID(u uuid.UUID) {
	m.job_id = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *QuarterlyPredictionMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the QuarterlyPrediction entity.
// If the QuarterlyPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuarterlyPredictionMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *QuarterlyPredictionMutation) ResetJobID() {
	m.job_id = nil
}

// SetChunkIndex sets the "chunk_index" field.
func (m *QuarterlyPredictionMutation) SetChunkIndex(i int) {
	m.chunk_index = &i
	m.addchunk_index = nil
}

// ChunkIndex returns the value of the "chunk_index" field in the mutation.
func (m *QuarterlyPredictionMutation) ChunkIndex() (r int, exists bool) {
	v := m.chunk_index
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkIndex returns the old "chunk_index" field's value of the QuarterlyPrediction entity.
// If the QuarterlyPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuarterlyPredictionMutation) OldChunkIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkIndex: %w", err)
	}
	return oldValue.ChunkIndex, nil
}

// AddChunkIndex adds i to the "chunk_index" field.
func (m *QuarterlyPredictionMutation) AddChunkIndex(i int) {
	if m.addchunk_index != nil {
		*m.addchunk_index += i
	} else {
		m.addchunk_index = &i
	}
}

// AddedChunkIndex returns the value that was added to the "chunk_index" field in this mutation.
func (m *QuarterlyPredictionMutation) AddedChunkIndex() (r int, exists bool) {
	v := m.addchunk_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetChunkIndex resets all changes to the "chunk_index" field.
func (m *QuarterlyPredictionMutation) ResetChunkIndex() {
	m.chunk_index = nil
	m.addchunk_index = nil
}

// SetRowIndex sets the "row_index" field.
func (m *QuarterlyPredictionMutation) SetRowIndex(i int) {
	m.row_index = &i
	m.addrow_index = nil
}

// RowIndex returns the value of the "row_index" field in the mutation.
func (m *QuarterlyPredictionMutation) RowIndex() (r int, exists bool) {
	v := m.row_index
	if v == nil {
		return
	}
	return *v, true
}

// OldRowIndex returns the old "row_index" field's value of the QuarterlyPrediction entity.
// If the QuarterlyPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuarterlyPredictionMutation) OldRowIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowIndex: %w", err)
	}
	return oldValue.RowIndex, nil
}

// AddRowIndex adds i to the "row_index" field.
func (m *QuarterlyPredictionMutation) AddRowIndex(i int) {
	if m.addrow_index != nil {
		*m.addrow_index += i
	} else {
		m.addrow_index = &i
	}
}

// AddedRowIndex returns the value that was added to the "row_index" field in this mutation.
func (m *QuarterlyPredictionMutation) AddedRowIndex() (r int, exists bool) {
	v := m.addrow_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetRowIndex resets all changes to the "row_index" field.
func (m *QuarterlyPredictionMutation) ResetRowIndex() {
	m.row_index = nil
	m.addrow_index = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *QuarterlyPredictionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuarterlyPredictionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QuarterlyPrediction entity.
// If the QuarterlyPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuarterlyPredictionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuarterlyPredictionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *QuarterlyPredictionMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[quarterlyprediction.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *QuarterlyPredictionMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *QuarterlyPredictionMutation) CompanyIDs() (ids []uuid.UUID) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *QuarterlyPredictionMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// Where appends a list predicates to the QuarterlyPredictionMutation builder.
func (m *QuarterlyPredictionMutation) Where(ps ...predicate.QuarterlyPrediction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuarterlyPredictionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuarterlyPredictionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuarterlyPrediction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuarterlyPredictionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuarterlyPredictionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuarterlyPrediction).
func (m *QuarterlyPredictionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuarterlyPredictionMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.company != nil {
		fields = append(fields, quarterlyprediction.FieldCompanyID)
	}
	if m.reporting_year != nil {
		fields = append(fields, quarterlyprediction.FieldReportingYear)
	}
	if m.reporting_quarter != nil {
		fields = append(fields, quarterlyprediction.FieldReportingQuarter)
	}
	if m.ratios != nil {
		fields = append(fields, quarterlyprediction.FieldRatios)
	}
	if m.logit_probability != nil {
		fields = append(fields, quarterlyprediction.FieldLogitProbability)
	}
	if m.gbm_probability != nil {
		fields = append(fields, quarterlyprediction.FieldGbmProbability)
	}
	if m.ensemble_probability != nil {
		fields = append(fields, quarterlyprediction.FieldEnsembleProbability)
	}
	if m.risk_level != nil {
		fields = append(fields, quarterlyprediction.FieldRiskLevel)
	}
	if m.confidence != nil {
		fields = append(fields, quarterlyprediction.FieldConfidence)
	}
	if m.job_id != nil {
		fields = append(fields, quarterlyprediction.FieldJobID)
	}
	if m.chunk_index != nil {
		fields = append(fields, quarterlyprediction.FieldChunkIndex)
	}
	if m.row_index != nil {
		fields = append(fields, quarterlyprediction.FieldRowIndex)
	}
	if m.created_at != nil {
		fields = append(fields, quarterlyprediction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuarterlyPredictionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quarterlyprediction.FieldCompanyID:
		return m.CompanyID()
	case quarterlyprediction.FieldReportingYear:
		return m.ReportingYear()
	case quarterlyprediction.FieldReportingQuarter:
		return m.ReportingQuarter()
	case quarterlyprediction.FieldRatios:
		return m.Ratios()
	case quarterlyprediction.FieldLogitProbability:
		return m.LogitProbability()
	case quarterlyprediction.FieldGbmProbability:
		return m.GbmProbability()
	case quarterlyprediction.FieldEnsembleProbability:
		return m.EnsembleProbability()
	case quarterlyprediction.FieldRiskLevel:
		return m.RiskLevel()
	case quarterlyprediction.FieldConfidence:
		return m.Confidence()
	case quarterlyprediction.FieldJobID:
		return m.JobID()
	case quarterlyprediction.FieldChunkIndex:
		return m.ChunkIndex()
	case quarterlyprediction.FieldRowIndex:
		return m.RowIndex()
	case quarterlyprediction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuarterlyPredictionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quarterlyprediction.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case quarterlyprediction.FieldReportingYear:
		return m.OldReportingYear(ctx)
	case quarterlyprediction.FieldReportingQuarter:
		return m.OldReportingQuarter(ctx)
	case quarterlyprediction.FieldRatios:
		return m.OldRatios(ctx)
	case quarterlyprediction.FieldLogitProbability:
		return m.OldLogitProbability(ctx)
	case quarterlyprediction.FieldGbmProbability:
		return m.OldGbmProbability(ctx)
	case quarterlyprediction.FieldEnsembleProbability:
		return m.OldEnsembleProbability(ctx)
	case quarterlyprediction.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case quarterlyprediction.FieldConfidence:
		return m.OldConfidence(ctx)
	case quarterlyprediction.FieldJobID:
		return m.OldJobID(ctx)
	case quarterlyprediction.FieldChunkIndex:
		return m.OldChunkIndex(ctx)
	case quarterlyprediction.FieldRowIndex:
		return m.OldRowIndex(ctx)
	case quarterlyprediction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QuarterlyPrediction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuarterlyPredictionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quarterlyprediction.FieldCompanyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case quarterlyprediction.FieldReportingYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportingYear(v)
		return nil
	case quarterlyprediction.FieldReportingQuarter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportingQuarter(v)
		return nil
	case quarterlyprediction.FieldRatios:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRatios(v)
		return nil
	case quarterlyprediction.FieldLogitProbability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogitProbability(v)
		return nil
	case quarterlyprediction.FieldGbmProbability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGbmProbability(v)
		return nil
	case quarterlyprediction.FieldEnsembleProbability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnsembleProbability(v)
		return nil
	case quarterlyprediction.FieldRiskLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case quarterlyprediction.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case quarterlyprediction.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case quarterlyprediction.FieldChunkIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkIndex(v)
		return nil
	case quarterlyprediction.FieldRowIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowIndex(v)
		return nil
	case quarterlyprediction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QuarterlyPrediction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuarterlyPredictionMutation) AddedFields() []string {
	var fields []string
	if m.addreporting_year != nil {
		fields = append(fields, quarterlyprediction.FieldReportingYear)
	}
	if m.addreporting_quarter != nil {
		fields = append(fields, quarterlyprediction.FieldReportingQuarter)
	}
	if m.addlogit_probability != nil {
		fields = append(fields, quarterlyprediction.FieldLogitProbability)
	}
	if m.addgbm_probability != nil {
		fields = append(fields, quarterlyprediction.FieldGbmProbability)
	}
	if m.addensemble_probability != nil {
		fields = append(fields, quarterlyprediction.FieldEnsembleProbability)
	}
	if m.addconfidence != nil {
		fields = append(fields, quarterlyprediction.FieldConfidence)
	}
	if m.addchunk_index != nil {
		fields = append(fields, quarterlyprediction.FieldChunkIndex)
	}
	if m.addrow_index != nil {
		fields = append(fields, quarterlyprediction.FieldRowIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuarterlyPredictionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quarterlyprediction.FieldReportingYear:
		return m.AddedReportingYear()
	case quarterlyprediction.FieldReportingQuarter:
		return m.AddedReportingQuarter()
	case quarterlyprediction.FieldLogitProbability:
		return m.AddedLogitProbability()
	case quarterlyprediction.FieldGbmProbability:
		return m.AddedGbmProbability()
	case quarterlyprediction.FieldEnsembleProbability:
		return m.AddedEnsembleProbability()
	case quarterlyprediction.FieldConfidence:
		return m.AddedConfidence()
	case quarterlyprediction.FieldChunkIndex:
		return m.AddedChunkIndex()
	case quarterlyprediction.FieldRowIndex:
		return m.AddedRowIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuarterlyPredictionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quarterlyprediction.FieldReportingYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReportingYear(v)
		return nil
	case quarterlyprediction.FieldReportingQuarter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReportingQuarter(v)
		return nil
	case quarterlyprediction.FieldLogitProbability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLogitProbability(v)
		return nil
	case quarterlyprediction.FieldGbmProbability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGbmProbability(v)
		return nil
	case quarterlyprediction.FieldEnsembleProbability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEnsembleProbability(v)
		return nil
	case quarterlyprediction.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case quarterlyprediction.FieldChunkIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChunkIndex(v)
		return nil
	case quarterlyprediction.FieldRowIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRowIndex(v)
		return nil
	}
	return fmt.Errorf("unknown QuarterlyPrediction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuarterlyPredictionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuarterlyPredictionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuarterlyPredictionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown QuarterlyPrediction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuarterlyPredictionMutation) ResetField(name string) error {
	switch name {
	case quarterlyprediction.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case quarterlyprediction.FieldReportingYear:
		m.ResetReportingYear()
		return nil
	case quarterlyprediction.FieldReportingQuarter:
		m.ResetReportingQuarter()
		return nil
	case quarterlyprediction.FieldRatios:
		m.ResetRatios()
		return nil
	case quarterlyprediction.FieldLogitProbability:
		m.ResetLogitProbability()
		return nil
	case quarterlyprediction.FieldGbmProbability:
		m.ResetGbmProbability()
		return nil
	case quarterlyprediction.FieldEnsembleProbability:
		m.ResetEnsembleProbability()
		return nil
	case quarterlyprediction.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case quarterlyprediction.FieldConfidence:
		m.ResetConfidence()
		return nil
	case quarterlyprediction.FieldJobID:
		m.ResetJobID()
		return nil
	case quarterlyprediction.FieldChunkIndex:
		m.ResetChunkIndex()
		return nil
	case quarterlyprediction.FieldRowIndex:
		m.ResetRowIndex()
		return nil
	case quarterlyprediction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown QuarterlyPrediction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuarterlyPredictionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.company != nil {
		edges = append(edges, quarterlyprediction.EdgeCompany)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuarterlyPredictionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case quarterlyprediction.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuarterlyPredictionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuarterlyPredictionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuarterlyPredictionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcompany {
		edges = append(edges, quarterlyprediction.EdgeCompany)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuarterlyPredictionMutation) EdgeCleared(name string) bool {
	switch name {
	case quarterlyprediction.EdgeCompany:
		return m.clearedcompany
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuarterlyPredictionMutation) ClearEdge(name string) error {
	switch name {
	case quarterlyprediction.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown QuarterlyPrediction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuarterlyPredictionMutation) ResetEdge(name string) error {
	switch name {
	case quarterlyprediction.EdgeCompany:
		m.ResetCompany()
		return nil
	}
	return fmt.Errorf("unknown QuarterlyPrediction edge %s", name)
}

// UploadJobMutation represents an operation that mutates the UploadJob nodes in the graph.
type UploadJobMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	job_type             *string
	status               *string
	total_rows           *int
	addtotal_rows        *int
	total_chunks         *int
	addtotal_chunks      *int
	completed_chunks     *int
	addcompleted_chunks  *int
	processed_rows       *int
	addprocessed_rows    *int
	successful_rows      *int
	addsuccessful_rows   *int
	failed_rows          *int
	addfailed_rows       *int
	error_message        *string
	error_details        *json.RawMessage
	appenderror_details  json.RawMessage
	scope_type           *string
	scope_id             *uuid.UUID
	started_at           *time.Time
	completed_at         *time.Time
	created_at           *time.Time
	clearedFields        map[string]struct{}
	chunk_reports        map[uuid.UUID]struct{}
	removedchunk_reports map[uuid.UUID]struct{}
	clearedchunk_reports bool
	done                 bool
	oldValue             func(context.Context) (*UploadJob, error)
	predicates           []predicate.UploadJob
}

var _ ent.Mutation = (*UploadJobMutation)(nil)

// uploadjobOption allows management of the mutation configuration using functional options.
type uploadjobOption func(*UploadJobMutation)

// newUploadJobMutation creates new mutation for the UploadJob entity.
func newUploadJobMutation(c config, op Op, opts ...uploadjobOption) *UploadJobMutation {
	m := &UploadJobMutation{
		config:        c,
		op:            op,
		typ:           TypeUploadJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUploadJobID sets the ID field of the mutation.
func withUploadJobID(id uuid.UUID) uploadjobOption {
	return func(m *UploadJobMutation) {
		var (
			err   error
			once  sync.Once
			value *UploadJob
		)
		m.oldValue = func(ctx context.Context) (*UploadJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UploadJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUploadJob sets the old UploadJob of the mutation.
func withUploadJob(node *UploadJob) uploadjobOption {
	return func(m *UploadJobMutation) {
		m.oldValue = func(context.Context) (*UploadJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UploadJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UploadJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UploadJob entities.
func (m *UploadJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UploadJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UploadJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UploadJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobType sets the "job_type" field.
func (m *UploadJobMutation) SetJobType(s string) {
	m.job_type = &s
}

// JobType returns the value of the "job_type" field in the mutation.
func (m *UploadJobMutation) JobType() (r string, exists bool) {
	v := m.job_type
	if v == nil {
		return
	}
	return *v, true
}

// OldJobType returns the old "job_type" field's value of the UploadJob entity.
// If the UploadJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadJobMutation) OldJobType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobType: %w", err)
	}
	return oldValue.JobType, nil
}

// ResetJobType resets all changes to the "job_type" field.
func (m *UploadJobMutation) ResetJobType() {
	m.job_type = nil
}

// SetStatus sets the "status" field.
func (m *UploadJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *UploadJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the UploadJob entity.
// If the UploadJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UploadJobMutation) ResetStatus() {
	m.status = nil
}

// SetTotalRows sets the "total_rows" field.
func (m *UploadJobMutation) SetTotalRows(i int) {
	m.total_rows = &i
	m.addtotal_rows = nil
}

// TotalRows returns the value of the "total_rows" field in the mutation.
func (m *UploadJobMutation) TotalRows() (r int, exists bool) {
	v := m.total_rows
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalRows returns the old "total_rows" field's value of the UploadJob entity.
// If the UploadJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadJobMutation) OldTotalRows(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalRows is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalRows requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalRows: %w", err)
	}
	return oldValue.TotalRows, nil
}

// AddTotalRows adds i to the "total_rows" field.
func (m *UploadJobMutation) AddTotalRows(i int) {
	if m.addtotal_rows != nil {
		*m.addtotal_rows += i
	} else {
		m.addtotal_rows = &i
	}
}

// AddedTotalRows returns the value that was added to the "total_rows" field in this mutation.
func (m *UploadJobMutation) AddedTotalRows() (r int, exists bool) {
	v := m.addtotal_rows
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalRows resets all changes to the "total_rows" field.
func (m *UploadJobMutation) ResetTotalRows() {
	m.total_rows = nil
	m.addtotal_rows = nil
}

// SetTotalChunks sets the "total_chunks" field.
func (m *UploadJobMutation) SetTotalChunks(i int) {
	m.total_chunks = &i
	m.addtotal_chunks = nil
}

// TotalChunks returns the value of the "total_chunks" field in the mutation.
func (m *UploadJobMutation) TotalChunks() (r int, exists bool) {
	v := m.total_chunks
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalChunks returns the old "total_chunks" field's value of the UploadJob entity.
// If the UploadJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadJobMutation) OldTotalChunks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalChunks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalChunks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalChunks: %w", err)
	}
	return oldValue.TotalChunks, nil
}

// AddTotalChunks adds i to the "total_chunks" field.
func (m *UploadJobMutation) AddTotalChunks(i int) {
	if m.addtotal_chunks != nil {
		*m.addtotal_chunks += i
	} else {
		m.addtotal_chunks = &i
	}
}

// AddedTotalChunks returns the value that was added to the "total_chunks" field in this mutation.
func (m *UploadJobMutation) AddedTotalChunks() (r int, exists bool) {
	v := m.addtotal_chunks
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalChunks resets all changes to the "total_chunks" field.
func (m *UploadJobMutation) ResetTotalChunks() {
	m.total_chunks = nil
	m.addtotal_chunks = nil
}

// SetCompletedChunks sets the "completed_chunks" field.
func (m *UploadJobMutation) SetCompletedChunks(i int) {
	m.completed_chunks = &i
	m.addcompleted_chunks = nil
}

// CompletedChunks returns the value of the "completed_chunks" field in the mutation.
func (m *UploadJobMutation) CompletedChunks() (r int, exists bool) {
	v := m.completed_chunks
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedChunks returns the old "completed_chunks" field's value of the UploadJob entity.
// If the UploadJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadJobMutation) OldCompletedChunks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedChunks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedChunks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedChunks: %w", err)
	}
	return oldValue.CompletedChunks, nil
}

// AddCompletedChunks adds i to the "completed_chunks" field.
func (m *UploadJobMutation) AddCompletedChunks(i int) {
	if m.addcompleted_chunks != nil {
		*m.addcompleted_chunks += i
	} else {
		m.addcompleted_chunks = &i
	}
}

// AddedCompletedChunks returns the value that was added to the "completed_chunks" field in this mutation.
func (m *UploadJobMutation) AddedCompletedChunks() (r int, exists bool) {
	v := m.addcompleted_chunks
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletedChunks resets all changes to the "completed_chunks" field.
func (m *UploadJobMutation) ResetCompletedChunks() {
	m.completed_chunks = nil
	m.addcompleted_chunks = nil
}

// SetProcessedRows sets the "processed_rows" field.
func (m *UploadJobMutation) SetProcessedRows(i int) {
	m.processed_rows = &i
	m.addprocessed_rows = nil
}

// ProcessedRows returns the value of the "processed_rows" field in the mutation.
func (m *UploadJobMutation) ProcessedRows() (r int, exists bool) {
	v := m.processed_rows
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedRows returns the old "processed_rows" field's value of the UploadJob entity.
// If the UploadJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadJobMutation) OldProcessedRows(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedRows is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedRows requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedRows: %w", err)
	}
	return oldValue.ProcessedRows, nil
}

// AddProcessedRows adds i to the "processed_rows" field.
func (m *UploadJobMutation) AddProcessedRows(i int) {
	if m.addprocessed_rows != nil {
		*m.addprocessed_rows += i
	} else {
		m.addprocessed_rows = &i
	}
}

// AddedProcessedRows returns the value that was added to the "processed_rows" field in this mutation.
func (m *UploadJobMutation) AddedProcessedRows() (r int, exists bool) {
	v := m.addprocessed_rows
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessedRows resets all changes to the "processed_rows" field.
func (m *UploadJobMutation) ResetProcessedRows() {
	m.processed_rows = nil
	m.addprocessed_rows = nil
}

// SetSuccessfulRows sets the "successful_rows" field.
func (m *UploadJobMutation) SetSuccessfulRows(i int) {
	m.successful_rows = &i
	m.addsuccessful_rows = nil
}

// SuccessfulRows returns the value of the "successful_rows" field in the mutation.
func (m *UploadJobMutation) SuccessfulRows() (r int, exists bool) {
	v := m.successful_rows
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessfulRows returns the old "successful_rows" field's value of the UploadJob entity.
// If the UploadJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadJobMutation) OldSuccessfulRows(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessfulRows is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessfulRows requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessfulRows: %w", err)
	}
	return oldValue.SuccessfulRows, nil
}

// AddSuccessfulRows adds i to the "successful_rows" field.
func (m *UploadJobMutation) AddSuccessfulRows(i int) {
	if m.addsuccessful_rows != nil {
		*m.addsuccessful_rows += i
	} else {
		m.addsuccessful_rows = &i
	}
}

// AddedSuccessfulRows returns the value that was added to the "successful_rows" field in this mutation.
func (m *UploadJobMutation) AddedSuccessfulRows() (r int, exists bool) {
	v := m.addsuccessful_rows
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccessfulRows resets all changes to the "successful_rows" field.
func (m *UploadJobMutation) ResetSuccessfulRows() {
	m.successful_rows = nil
	m.addsuccessful_rows = nil
}

// SetFailedRows sets the "failed_rows" field.
func (m *UploadJobMutation) SetFailedRows(i int) {
	m.failed_rows = &i
	m.addfailed_rows = nil
}

// FailedRows returns the value of the "failed_rows" field in the mutation.
func (m *UploadJobMutation) FailedRows() (r int, exists bool) {
	v := m.failed_rows
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedRows returns the old "failed_rows" field's value of the UploadJob entity.
// If the UploadJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadJobMutation) OldFailedRows(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedRows is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedRows requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedRows: %w", err)
	}
	return oldValue.FailedRows, nil
}

// AddFailedRows adds i to the "failed_rows" field.
func (m *UploadJobMutation) AddFailedRows(i int) {
	if m.addfailed_rows != nil {
		*m.addfailed_rows += i
	} else {
		m.addfailed_rows = &i
	}
}

// AddedFailedRows returns the value that was added to the "failed_rows" field in this mutation.
func (m *UploadJobMutation) AddedFailedRows() (r int, exists bool) {
	v := m.addfailed_rows
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedRows resets all changes to the "failed_rows" field.
func (m *UploadJobMutation) ResetFailedRows() {
	m.failed_rows = nil
	m.addfailed_rows = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *UploadJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *UploadJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the UploadJob entity.
// If the UploadJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *UploadJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[uploadjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *UploadJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[uploadjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *UploadJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, uploadjob.FieldErrorMessage)
}

// SetErrorDetails sets the "error_details" field.
func (m *UploadJobMutation) SetErrorDetails(jm json.RawMessage) {
	m.error_details = &jm
	m.appenderror_details = nil
}

// ErrorDetails returns the value of the "error_details" field in the mutation.
func (m *UploadJobMutation) ErrorDetails() (r json.RawMessage, exists bool) {
	v := m.error_details
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorDetails returns the old "error_details" field's value of the UploadJob entity.
// If the UploadJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadJobMutation) OldErrorDetails(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorDetails: %w", err)
	}
	return oldValue.ErrorDetails, nil
}

// AppendErrorDetails adds jm to the "error_details" field.
func (m *UploadJobMutation) AppendErrorDetails(jm json.RawMessage) {
	m.appenderror_details = append(m.appenderror_details, jm...)
}

// AppendedErrorDetails returns the list of values that were appended to the "error_details" field in this mutation.
func (m *UploadJobMutation) AppendedErrorDetails() (json.RawMessage, bool) {
	if len(m.appenderror_details) == 0 {
		return nil, false
	}
	return m.appenderror_details, true
}

// ClearErrorDetails clears the value of the "error_details" field.
func (m *UploadJobMutation) ClearErrorDetails() {
	m.error_details = nil
	m.appenderror_details = nil
	m.clearedFields[uploadjob.FieldErrorDetails] = struct{}{}
}

// ErrorDetailsCleared returns if the "error_details" field was cleared in this mutation.
func (m *UploadJobMutation) ErrorDetailsCleared() bool {
	_, ok := m.clearedFields[uploadjob.FieldErrorDetails]
	return ok
}

// ResetErrorDetails resets all changes to the "error_details" field.
func (m *UploadJobMutation) ResetErrorDetails() {
	m.error_details = nil
	m.appenderror_details = nil
	delete(m.clearedFields, uploadjob.FieldErrorDetails)
}

// SetScopeType sets the "scope_type" field.
func (m *UploadJobMutation) SetScopeType(s string) {
	m.scope_type = &s
}

// ScopeType returns the value of the "scope_type" field in the mutation.
func (m *UploadJobMutation) ScopeType() (r string, exists bool) {
	v := m.scope_type
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeType returns the old "scope_type" field's value of the UploadJob entity.
// If the UploadJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadJobMutation) OldScopeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeType: %w", err)
	}
	return oldValue.ScopeType, nil
}

// ResetScopeType resets all changes to the "scope_type" field.
func (m *UploadJobMutation) ResetScopeType() {
	m.scope_type = nil
}

// SetScopeID sets the "scope_id" field.
func (m *UploadJobMutation) SetScopeID(u uuid.UUID) {
	m.scope_id = &u
}

// ScopeID returns the value of the "scope_id" field in the mutation.
func (m *UploadJobMutation) ScopeID() (r uuid.UUID, exists bool) {
	v := m.scope_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeID returns the old "scope_id" field's value of the UploadJob entity.
// If the UploadJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadJobMutation) OldScopeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeID: %w", err)
	}
	return oldValue.ScopeID, nil
}

// ResetScopeID resets all changes to the "scope_id" field.
func (m *UploadJobMutation) ResetScopeID() {
	m.scope_id = nil
}

// SetStartedAt sets the "started_at" field.
func (m *UploadJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *UploadJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the UploadJob entity.
// If the UploadJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *UploadJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[uploadjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *UploadJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[uploadjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *UploadJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, uploadjob.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *UploadJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *UploadJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the UploadJob entity.
// If the UploadJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *UploadJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[uploadjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *UploadJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[uploadjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *UploadJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, uploadjob.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *UploadJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UploadJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UploadJob entity.
// If the UploadJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UploadJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddChunkReportIDs adds the "chunk_reports" edge to the ChunkReport entity by ids.
func (m *UploadJobMutation) AddChunkReportIDs(ids ...uuid.UUID) {
	if m.chunk_reports == nil {
		m.chunk_reports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.chunk_reports[ids[i]] = struct{}{}
	}
}

// ClearChunkReports clears the "chunk_reports" edge to the ChunkReport entity.
func (m *UploadJobMutation) ClearChunkReports() {
	m.clearedchunk_reports = true
}

// ChunkReportsCleared reports if the "chunk_reports" edge to the ChunkReport entity was cleared.
func (m *UploadJobMutation) ChunkReportsCleared() bool {
	return m.clearedchunk_reports
}

// RemoveChunkReportIDs removes the "chunk_reports" edge to the ChunkReport entity by IDs.
func (m *UploadJobMutation) RemoveChunkReportIDs(ids ...uuid.UUID) {
	if m.removedchunk_reports == nil {
		m.removedchunk_reports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.chunk_reports, ids[i])
		m.removedchunk_reports[ids[i]] = struct{}{}
	}
}

// RemovedChunkReports returns the removed IDs of the "chunk_reports" edge to the ChunkReport entity.
func (m *UploadJobMutation) RemovedChunkReportsIDs() (ids []uuid.UUID) {
	for id := range m.removedchunk_reports {
		ids = append(ids, id)
	}
	return
}

// ChunkReportsIDs returns the "chunk_reports" edge IDs in the mutation.
func (m *UploadJobMutation) ChunkReportsIDs() (ids []uuid.UUID) {
	for id := range m.chunk_reports {
		ids = append(ids, id)
	}
	return
}

// ResetChunkReports resets all changes to the "chunk_reports" edge.
func (m *UploadJobMutation) ResetChunkReports() {
	m.chunk_reports = nil
	m.clearedchunk_reports = false
	m.removedchunk_reports = nil
}

// Where appends a list predicates to the UploadJobMutation builder.
func (m *UploadJobMutation) Where(ps ...predicate.UploadJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UploadJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UploadJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UploadJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UploadJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UploadJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UploadJob).
func (m *UploadJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UploadJobMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.job_type != nil {
		fields = append(fields, uploadjob.FieldJobType)
	}
	if m.status != nil {
		fields = append(fields, uploadjob.FieldStatus)
	}
	if m.total_rows != nil {
		fields = append(fields, uploadjob.FieldTotalRows)
	}
	if m.total_chunks != nil {
		fields = append(fields, uploadjob.FieldTotalChunks)
	}
	if m.completed_chunks != nil {
		fields = append(fields, uploadjob.FieldCompletedChunks)
	}
	if m.processed_rows != nil {
		fields = append(fields, uploadjob.FieldProcessedRows)
	}
	if m.successful_rows != nil {
		fields = append(fields, uploadjob.FieldSuccessfulRows)
	}
	if m.failed_rows != nil {
		fields = append(fields, uploadjob.FieldFailedRows)
	}
	if m.error_message != nil {
		fields = append(fields, uploadjob.FieldErrorMessage)
	}
	if m.error_details != nil {
		fields = append(fields, uploadjob.FieldErrorDetails)
	}
	if m.scope_type != nil {
		fields = append(fields, uploadjob.FieldScopeType)
	}
	if m.scope_id != nil {
		fields = append(fields, uploadjob.FieldScopeID)
	}
	if m.started_at != nil {
		fields = append(fields, uploadjob.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, uploadjob.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, uploadjob.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UploadJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case uploadjob.FieldJobType:
		return m.JobType()
	case uploadjob.FieldStatus:
		return m.Status()
	case uploadjob.FieldTotalRows:
		return m.TotalRows()
	case uploadjob.FieldTotalChunks:
		return m.TotalChunks()
	case uploadjob.FieldCompletedChunks:
		return m.CompletedChunks()
	case uploadjob.FieldProcessedRows:
		return m.ProcessedRows()
	case uploadjob.FieldSuccessfulRows:
		return m.SuccessfulRows()
	case uploadjob.FieldFailedRows:
		return m.FailedRows()
	case uploadjob.FieldErrorMessage:
		return m.ErrorMessage()
	case uploadjob.FieldErrorDetails:
		return m.ErrorDetails()
	case uploadjob.FieldScopeType:
		return m.ScopeType()
	case uploadjob.FieldScopeID:
		return m.ScopeID()
	case uploadjob.FieldStartedAt:
		return m.StartedAt()
	case uploadjob.FieldCompletedAt:
		return m.CompletedAt()
	case uploadjob.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UploadJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case uploadjob.FieldJobType:
		return m.OldJobType(ctx)
	case uploadjob.FieldStatus:
		return m.OldStatus(ctx)
	case uploadjob.FieldTotalRows:
		return m.OldTotalRows(ctx)
	case uploadjob.FieldTotalChunks:
		return m.OldTotalChunks(ctx)
	case uploadjob.FieldCompletedChunks:
		return m.OldCompletedChunks(ctx)
	case uploadjob.FieldProcessedRows:
		return m.OldProcessedRows(ctx)
	case uploadjob.FieldSuccessfulRows:
		return m.OldSuccessfulRows(ctx)
	case uploadjob.FieldFailedRows:
		return m.OldFailedRows(ctx)
	case uploadjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case uploadjob.FieldErrorDetails:
		return m.OldErrorDetails(ctx)
	case uploadjob.FieldScopeType:
		return m.OldScopeType(ctx)
	case uploadjob.FieldScopeID:
		return m.OldScopeID(ctx)
	case uploadjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case uploadjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case uploadjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UploadJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UploadJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case uploadjob.FieldJobType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobType(v)
		return nil
	case uploadjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case uploadjob.FieldTotalRows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalRows(v)
		return nil
	case uploadjob.FieldTotalChunks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalChunks(v)
		return nil
	case uploadjob.FieldCompletedChunks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedChunks(v)
		return nil
	case uploadjob.FieldProcessedRows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedRows(v)
		return nil
	case uploadjob.FieldSuccessfulRows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessfulRows(v)
		return nil
	case uploadjob.FieldFailedRows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedRows(v)
		return nil
	case uploadjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case uploadjob.FieldErrorDetails:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorDetails(v)
		return nil
	case uploadjob.FieldScopeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeType(v)
		return nil
	case uploadjob.FieldScopeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeID(v)
		return nil
	case uploadjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case uploadjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case uploadjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UploadJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UploadJobMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_rows != nil {
		fields = append(fields, uploadjob.FieldTotalRows)
	}
	if m.addtotal_chunks != nil {
		fields = append(fields, uploadjob.FieldTotalChunks)
	}
	if m.addcompleted_chunks != nil {
		fields = append(fields, uploadjob.FieldCompletedChunks)
	}
	if m.addprocessed_rows != nil {
		fields = append(fields, uploadjob.FieldProcessedRows)
	}
	if m.addsuccessful_rows != nil {
		fields = append(fields, uploadjob.FieldSuccessfulRows)
	}
	if m.addfailed_rows != nil {
		fields = append(fields, uploadjob.FieldFailedRows)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UploadJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case uploadjob.FieldTotalRows:
		return m.AddedTotalRows()
	case uploadjob.FieldTotalChunks:
		return m.AddedTotalChunks()
	case uploadjob.FieldCompletedChunks:
		return m.AddedCompletedChunks()
	case uploadjob.FieldProcessedRows:
		return m.AddedProcessedRows()
	case uploadjob.FieldSuccessfulRows:
		return m.AddedSuccessfulRows()
	case uploadjob.FieldFailedRows:
		return m.AddedFailedRows()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UploadJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case uploadjob.FieldTotalRows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalRows(v)
		return nil
	case uploadjob.FieldTotalChunks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalChunks(v)
		return nil
	case uploadjob.FieldCompletedChunks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedChunks(v)
		return nil
	case uploadjob.FieldProcessedRows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessedRows(v)
		return nil
	case uploadjob.FieldSuccessfulRows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccessfulRows(v)
		return nil
	case uploadjob.FieldFailedRows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedRows(v)
		return nil
	}
	return fmt.Errorf("unknown UploadJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UploadJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(uploadjob.FieldErrorMessage) {
		fields = append(fields, uploadjob.FieldErrorMessage)
	}
	if m.FieldCleared(uploadjob.FieldErrorDetails) {
		fields = append(fields, uploadjob.FieldErrorDetails)
	}
	if m.FieldCleared(uploadjob.FieldStartedAt) {
		fields = append(fields, uploadjob.FieldStartedAt)
	}
	if m.FieldCleared(uploadjob.FieldCompletedAt) {
		fields = append(fields, uploadjob.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UploadJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UploadJobMutation) ClearField(name string) error {
	switch name {
	case uploadjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case uploadjob.FieldErrorDetails:
		m.ClearErrorDetails()
		return nil
	case uploadjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case uploadjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown UploadJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UploadJobMutation) ResetField(name string) error {
	switch name {
	case uploadjob.FieldJobType:
		m.ResetJobType()
		return nil
	case uploadjob.FieldStatus:
		m.ResetStatus()
		return nil
	case uploadjob.FieldTotalRows:
		m.ResetTotalRows()
		return nil
	case uploadjob.FieldTotalChunks:
		m.ResetTotalChunks()
		return nil
	case uploadjob.FieldCompletedChunks:
		m.ResetCompletedChunks()
		return nil
	case uploadjob.FieldProcessedRows:
		m.ResetProcessedRows()
		return nil
	case uploadjob.FieldSuccessfulRows:
		m.ResetSuccessfulRows()
		return nil
	case uploadjob.FieldFailedRows:
		m.ResetFailedRows()
		return nil
	case uploadjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case uploadjob.FieldErrorDetails:
		m.ResetErrorDetails()
		return nil
	case uploadjob.FieldScopeType:
		m.ResetScopeType()
		return nil
	case uploadjob.FieldScopeID:
		m.ResetScopeID()
		return nil
	case uploadjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case uploadjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case uploadjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UploadJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UploadJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.chunk_reports != nil {
		edges = append(edges, uploadjob.EdgeChunkReports)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UploadJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case uploadjob.EdgeChunkReports:
		ids := make([]ent.Value, 0, len(m.chunk_reports))
		for id := range m.chunk_reports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UploadJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedchunk_reports != nil {
		edges = append(edges, uploadjob.EdgeChunkReports)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UploadJobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case uploadjob.EdgeChunkReports:
		ids := make([]ent.Value, 0, len(m.removedchunk_reports))
		for id := range m.removedchunk_reports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UploadJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchunk_reports {
		edges = append(edges, uploadjob.EdgeChunkReports)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UploadJobMutation) EdgeCleared(name string) bool {
	switch name {
	case uploadjob.EdgeChunkReports:
		return m.clearedchunk_reports
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UploadJobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown UploadJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UploadJobMutation) ResetEdge(name string) error {
	switch name {
	case uploadjob.EdgeChunkReports:
		m.ResetChunkReports()
		return nil
	}
	return fmt.Errorf("unknown UploadJob edge %s", name)
}
