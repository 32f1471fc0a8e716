// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/seyi-adeleke/riskscore/gen/ent/company"
	"github.com/seyi-adeleke/riskscore/gen/ent/predicate"
	"github.com/seyi-adeleke/riskscore/gen/ent/quarterlyprediction"
)

// QuarterlyPredictionUpdate is the builder for updating QuarterlyPrediction entities.
type QuarterlyPredictionUpdate struct {
	config
	hooks    []Hook
	mutation *QuarterlyPredictionMutation
}

// Where appends a list predicates to the QuarterlyPredictionUpdate builder.
func (_u *QuarterlyPredictionUpdate) Where(ps ...predicate.QuarterlyPrediction) *QuarterlyPredictionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *QuarterlyPredictionUpdate) SetCompanyID(v uuid.UUID) *QuarterlyPredictionUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *QuarterlyPredictionUpdate) SetNillableCompanyID(v *uuid.UUID) *QuarterlyPredictionUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetRatios sets the "ratios" field.
func (_u *QuarterlyPredictionUpdate) SetRatios(v map[string]string) *QuarterlyPredictionUpdate {
	_u.mutation.SetRatios(v)
	return _u
}

// SetLogitProbability sets the "logit_probability" field.
func (_u *QuarterlyPredictionUpdate) SetLogitProbability(v float64) *QuarterlyPredictionUpdate {
	_u.mutation.ResetLogitProbability()
	_u.mutation.SetLogitProbability(v)
	return _u
}

// SetNillableLogitProbability sets the "logit_probability" field if the given value is not nil.
func (_u *QuarterlyPredictionUpdate) SetNillableLogitProbability(v *float64) *QuarterlyPredictionUpdate {
	if v != nil {
		_u.SetLogitProbability(*v)
	}
	return _u
}

// AddLogitProbability adds value to the "logit_probability" field.
func (_u *QuarterlyPredictionUpdate) AddLogitProbability(v float64) *QuarterlyPredictionUpdate {
	_u.mutation.AddLogitProbability(v)
	return _u
}

// SetGbmProbability sets the "gbm_probability" field.
func (_u *QuarterlyPredictionUpdate) SetGbmProbability(v float64) *QuarterlyPredictionUpdate {
	_u.mutation.ResetGbmProbability()
	_u.mutation.SetGbmProbability(v)
	return _u
}

// SetNillableGbmProbability sets the "gbm_probability" field if the given value is not nil.
func (_u *QuarterlyPredictionUpdate) SetNillableGbmProbability(v *float64) *QuarterlyPredictionUpdate {
	if v != nil {
		_u.SetGbmProbability(*v)
	}
	return _u
}

// AddGbmProbability adds value to the "gbm_probability" field.
func (_u *QuarterlyPredictionUpdate) AddGbmProbability(v float64) *QuarterlyPredictionUpdate {
	_u.mutation.AddGbmProbability(v)
	return _u
}

// SetEnsembleProbability sets the "ensemble_probability" field.
func (_u *QuarterlyPredictionUpdate) SetEnsembleProbability(v float64) *QuarterlyPredictionUpdate {
	_u.mutation.ResetEnsembleProbability()
	_u.mutation.SetEnsembleProbability(v)
	return _u
}

// SetNillableEnsembleProbability sets the "ensemble_probability" field if the given value is not nil.
func (_u *QuarterlyPredictionUpdate) SetNillableEnsembleProbability(v *float64) *QuarterlyPredictionUpdate {
	if v != nil {
		_u.SetEnsembleProbability(*v)
	}
	return _u
}

// AddEnsembleProbability adds value to the "ensemble_probability" field.
func (_u *QuarterlyPredictionUpdate) AddEnsembleProbability(v float64) *QuarterlyPredictionUpdate {
	_u.mutation.AddEnsembleProbability(v)
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *QuarterlyPredictionUpdate) SetRiskLevel(v string) *QuarterlyPredictionUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *QuarterlyPredictionUpdate) SetNillableRiskLevel(v *string) *QuarterlyPredictionUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *QuarterlyPredictionUpdate) SetConfidence(v float64) *QuarterlyPredictionUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *QuarterlyPredictionUpdate) SetNillableConfidence(v *float64) *QuarterlyPredictionUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *QuarterlyPredictionUpdate) AddConfidence(v float64) *QuarterlyPredictionUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *QuarterlyPredictionUpdate) SetJobID(v uuid.UUID) *QuarterlyPredictionUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *QuarterlyPredictionUpdate) SetNillableJobID(v *uuid.UUID) *QuarterlyPredictionUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetChunkIndex sets the "chunk_index" field.
func (_u *QuarterlyPredictionUpdate) SetChunkIndex(v int) *QuarterlyPredictionUpdate {
	_u.mutation.ResetChunkIndex()
	_u.mutation.SetChunkIndex(v)
	return _u
}

// SetNillableChunkIndex sets the "chunk_index" field if the given value is not nil.
func (_u *QuarterlyPredictionUpdate) SetNillableChunkIndex(v *int) *QuarterlyPredictionUpdate {
	if v != nil {
		_u.SetChunkIndex(*v)
	}
	return _u
}

// AddChunkIndex adds value to the "chunk_index" field.
func (_u *QuarterlyPredictionUpdate) AddChunkIndex(v int) *QuarterlyPredictionUpdate {
	_u.mutation.AddChunkIndex(v)
	return _u
}

// SetRowIndex sets the "row_index" field.
func (_u *QuarterlyPredictionUpdate) SetRowIndex(v int) *QuarterlyPredictionUpdate {
	_u.mutation.ResetRowIndex()
	_u.mutation.SetRowIndex(v)
	return _u
}

// SetNillableRowIndex sets the "row_index" field if the given value is not nil.
func (_u *QuarterlyPredictionUpdate) SetNillableRowIndex(v *int) *QuarterlyPredictionUpdate {
	if v != nil {
		_u.SetRowIndex(*v)
	}
	return _u
}

// AddRowIndex adds value to the "row_index" field.
func (_u *QuarterlyPredictionUpdate) AddRowIndex(v int) *QuarterlyPredictionUpdate {
	_u.mutation.AddRowIndex(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *QuarterlyPredictionUpdate) SetCreatedAt(v time.Time) *QuarterlyPredictionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *QuarterlyPredictionUpdate) SetNillableCreatedAt(v *time.Time) *QuarterlyPredictionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *QuarterlyPredictionUpdate) SetCompany(v *Company) *QuarterlyPredictionUpdate {
	return _u.SetCompanyID(v.ID)
}

// Mutation returns the QuarterlyPredictionMutation object of the builder.
func (_u *QuarterlyPredictionUpdate) Mutation() *QuarterlyPredictionMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *QuarterlyPredictionUpdate) ClearCompany() *QuarterlyPredictionUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuarterlyPredictionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuarterlyPredictionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuarterlyPredictionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuarterlyPredictionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuarterlyPredictionUpdate) check() error {
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := quarterlyprediction.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "QuarterlyPrediction.risk_level": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuarterlyPrediction.company"`)
	}
	return nil
}

func (_u *QuarterlyPredictionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quarterlyprediction.Table, quarterlyprediction.Columns, sqlgraph.NewFieldSpec(quarterlyprediction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Ratios(); ok {
		_spec.SetField(quarterlyprediction.FieldRatios, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.LogitProbability(); ok {
		_spec.SetField(quarterlyprediction.FieldLogitProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLogitProbability(); ok {
		_spec.AddField(quarterlyprediction.FieldLogitProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GbmProbability(); ok {
		_spec.SetField(quarterlyprediction.FieldGbmProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGbmProbability(); ok {
		_spec.AddField(quarterlyprediction.FieldGbmProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EnsembleProbability(); ok {
		_spec.SetField(quarterlyprediction.FieldEnsembleProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEnsembleProbability(); ok {
		_spec.AddField(quarterlyprediction.FieldEnsembleProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(quarterlyprediction.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(quarterlyprediction.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(quarterlyprediction.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(quarterlyprediction.FieldJobID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ChunkIndex(); ok {
		_spec.SetField(quarterlyprediction.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkIndex(); ok {
		_spec.AddField(quarterlyprediction.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RowIndex(); ok {
		_spec.SetField(quarterlyprediction.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowIndex(); ok {
		_spec.AddField(quarterlyprediction.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(quarterlyprediction.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quarterlyprediction.CompanyTable,
			Columns: []string{quarterlyprediction.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quarterlyprediction.CompanyTable,
			Columns: []string{quarterlyprediction.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quarterlyprediction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuarterlyPredictionUpdateOne is the builder for updating a single QuarterlyPrediction entity.
type QuarterlyPredictionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuarterlyPredictionMutation
}

// SetCompanyID sets the "company_id" field.
func (_u *QuarterlyPredictionUpdateOne) SetCompanyID(v uuid.UUID) *QuarterlyPredictionUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *QuarterlyPredictionUpdateOne) SetNillableCompanyID(v *uuid.UUID) *QuarterlyPredictionUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetRatios sets the "ratios" field.
func (_u *QuarterlyPredictionUpdateOne) SetRatios(v map[string]string) *QuarterlyPredictionUpdateOne {
	_u.mutation.SetRatios(v)
	return _u
}

// SetLogitProbability sets the "logit_probability" field.
func (_u *QuarterlyPredictionUpdateOne) SetLogitProbability(v float64) *QuarterlyPredictionUpdateOne {
	_u.mutation.ResetLogitProbability()
	_u.mutation.SetLogitProbability(v)
	return _u
}

// SetNillableLogitProbability sets the "logit_probability" field if the given value is not nil.
func (_u *QuarterlyPredictionUpdateOne) SetNillableLogitProbability(v *float64) *QuarterlyPredictionUpdateOne {
	if v != nil {
		_u.SetLogitProbability(*v)
	}
	return _u
}

// AddLogitProbability adds value to the "logit_probability" field.
func (_u *QuarterlyPredictionUpdateOne) AddLogitProbability(v float64) *QuarterlyPredictionUpdateOne {
	_u.mutation.AddLogitProbability(v)
	return _u
}

// SetGbmProbability sets the "gbm_probability" field.
func (_u *QuarterlyPredictionUpdateOne) SetGbmProbability(v float64) *QuarterlyPredictionUpdateOne {
	_u.mutation.ResetGbmProbability()
	_u.mutation.SetGbmProbability(v)
	return _u
}

// SetNillableGbmProbability sets the "gbm_probability" field if the given value is not nil.
func (_u *QuarterlyPredictionUpdateOne) SetNillableGbmProbability(v *float64) *QuarterlyPredictionUpdateOne {
	if v != nil {
		_u.SetGbmProbability(*v)
	}
	return _u
}

// AddGbmProbability adds value to the "gbm_probability" field.
func (_u *QuarterlyPredictionUpdateOne) AddGbmProbability(v float64) *QuarterlyPredictionUpdateOne {
	_u.mutation.AddGbmProbability(v)
	return _u
}

// SetEnsembleProbability sets the "ensemble_probability" field.
func (_u *QuarterlyPredictionUpdateOne) SetEnsembleProbability(v float64) *QuarterlyPredictionUpdateOne {
	_u.mutation.ResetEnsembleProbability()
	_u.mutation.SetEnsembleProbability(v)
	return _u
}

// SetNillableEnsembleProbability sets the "ensemble_probability" field if the given value is not nil.
func (_u *QuarterlyPredictionUpdateOne) SetNillableEnsembleProbability(v *float64) *QuarterlyPredictionUpdateOne {
	if v != nil {
		_u.SetEnsembleProbability(*v)
	}
	return _u
}

// AddEnsembleProbability adds value to the "ensemble_probability" field.
func (_u *QuarterlyPredictionUpdateOne) AddEnsembleProbability(v float64) *QuarterlyPredictionUpdateOne {
	_u.mutation.AddEnsembleProbability(v)
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *QuarterlyPredictionUpdateOne) SetRiskLevel(v string) *QuarterlyPredictionUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *QuarterlyPredictionUpdateOne) SetNillableRiskLevel(v *string) *QuarterlyPredictionUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *QuarterlyPredictionUpdateOne) SetConfidence(v float64) *QuarterlyPredictionUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *QuarterlyPredictionUpdateOne) SetNillableConfidence(v *float64) *QuarterlyPredictionUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *QuarterlyPredictionUpdateOne) AddConfidence(v float64) *QuarterlyPredictionUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *QuarterlyPredictionUpdateOne) SetJobID(v uuid.UUID) *QuarterlyPredictionUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *QuarterlyPredictionUpdateOne) SetNillableJobID(v *uuid.UUID) *QuarterlyPredictionUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetChunkIndex sets the "chunk_index" field.
func (_u *QuarterlyPredictionUpdateOne) SetChunkIndex(v int) *QuarterlyPredictionUpdateOne {
	_u.mutation.ResetChunkIndex()
	_u.mutation.SetChunkIndex(v)
	return _u
}

// SetNillableChunkIndex sets the "chunk_index" field if the given value is not nil.
func (_u *QuarterlyPredictionUpdateOne) SetNillableChunkIndex(v *int) *QuarterlyPredictionUpdateOne {
	if v != nil {
		_u.SetChunkIndex(*v)
	}
	return _u
}

// AddChunkIndex adds value to the "chunk_index" field.
func (_u *QuarterlyPredictionUpdateOne) AddChunkIndex(v int) *QuarterlyPredictionUpdateOne {
	_u.mutation.AddChunkIndex(v)
	return _u
}

// SetRowIndex sets the "row_index" field.
func (_u *QuarterlyPredictionUpdateOne) SetRowIndex(v int) *QuarterlyPredictionUpdateOne {
	_u.mutation.ResetRowIndex()
	_u.mutation.SetRowIndex(v)
	return _u
}

// SetNillableRowIndex sets the "row_index" field if the given value is not nil.
func (_u *QuarterlyPredictionUpdateOne) SetNillableRowIndex(v *int) *QuarterlyPredictionUpdateOne {
	if v != nil {
		_u.SetRowIndex(*v)
	}
	return _u
}

// AddRowIndex adds value to the "row_index" field.
func (_u *QuarterlyPredictionUpdateOne) AddRowIndex(v int) *QuarterlyPredictionUpdateOne {
	_u.mutation.AddRowIndex(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *QuarterlyPredictionUpdateOne) SetCreatedAt(v time.Time) *QuarterlyPredictionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *QuarterlyPredictionUpdateOne) SetNillableCreatedAt(v *time.Time) *QuarterlyPredictionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *QuarterlyPredictionUpdateOne) SetCompany(v *Company) *QuarterlyPredictionUpdateOne {
	return _u.SetCompanyID(v.ID)
}

// Mutation returns the QuarterlyPredictionMutation object of the builder.
func (_u *QuarterlyPredictionUpdateOne) Mutation() *QuarterlyPredictionMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *QuarterlyPredictionUpdateOne) ClearCompany() *QuarterlyPredictionUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// Where appends a list predicates to the QuarterlyPredictionUpdate builder.
func (_u *QuarterlyPredictionUpdateOne) Where(ps ...predicate.QuarterlyPrediction) *QuarterlyPredictionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuarterlyPredictionUpdateOne) Select(field string, fields ...string) *QuarterlyPredictionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuarterlyPrediction entity.
func (_u *QuarterlyPredictionUpdateOne) Save(ctx context.Context) (*QuarterlyPrediction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuarterlyPredictionUpdateOne) SaveX(ctx context.Context) *QuarterlyPrediction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuarterlyPredictionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuarterlyPredictionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuarterlyPredictionUpdateOne) check() error {
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := quarterlyprediction.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "QuarterlyPrediction.risk_level": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuarterlyPrediction.company"`)
	}
	return nil
}

func (_u *QuarterlyPredictionUpdateOne) sqlSave(ctx context.Context) (_node *QuarterlyPrediction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quarterlyprediction.Table, quarterlyprediction.Columns, sqlgraph.NewFieldSpec(quarterlyprediction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuarterlyPrediction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quarterlyprediction.FieldID)
		for _, f := range fields {
			if !quarterlyprediction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quarterlyprediction.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Ratios(); ok {
		_spec.SetField(quarterlyprediction.FieldRatios, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.LogitProbability(); ok {
		_spec.SetField(quarterlyprediction.FieldLogitProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLogitProbability(); ok {
		_spec.AddField(quarterlyprediction.FieldLogitProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GbmProbability(); ok {
		_spec.SetField(quarterlyprediction.FieldGbmProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGbmProbability(); ok {
		_spec.AddField(quarterlyprediction.FieldGbmProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EnsembleProbability(); ok {
		_spec.SetField(quarterlyprediction.FieldEnsembleProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEnsembleProbability(); ok {
		_spec.AddField(quarterlyprediction.FieldEnsembleProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(quarterlyprediction.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(quarterlyprediction.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(quarterlyprediction.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(quarterlyprediction.FieldJobID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ChunkIndex(); ok {
		_spec.SetField(quarterlyprediction.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkIndex(); ok {
		_spec.AddField(quarterlyprediction.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RowIndex(); ok {
		_spec.SetField(quarterlyprediction.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowIndex(); ok {
		_spec.AddField(quarterlyprediction.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(quarterlyprediction.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quarterlyprediction.CompanyTable,
			Columns: []string{quarterlyprediction.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quarterlyprediction.CompanyTable,
			Columns: []string{quarterlyprediction.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &QuarterlyPrediction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quarterlyprediction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
