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
	"github.com/seyi-adeleke/riskscore/gen/ent/annualprediction"
	"github.com/seyi-adeleke/riskscore/gen/ent/company"
	"github.com/seyi-adeleke/riskscore/gen/ent/predicate"
)

// AnnualPredictionUpdate is the builder for updating AnnualPrediction entities.
type AnnualPredictionUpdate struct {
	config
	hooks    []Hook
	mutation *AnnualPredictionMutation
}

// Where appends a list predicates to the AnnualPredictionUpdate builder.
func (_u *AnnualPredictionUpdate) Where(ps ...predicate.AnnualPrediction) *AnnualPredictionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *AnnualPredictionUpdate) SetCompanyID(v uuid.UUID) *AnnualPredictionUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *AnnualPredictionUpdate) SetNillableCompanyID(v *uuid.UUID) *AnnualPredictionUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetRatios sets the "ratios" field.
func (_u *AnnualPredictionUpdate) SetRatios(v map[string]string) *AnnualPredictionUpdate {
	_u.mutation.SetRatios(v)
	return _u
}

// SetProbability sets the "probability" field.
func (_u *AnnualPredictionUpdate) SetProbability(v float64) *AnnualPredictionUpdate {
	_u.mutation.ResetProbability()
	_u.mutation.SetProbability(v)
	return _u
}

// SetNillableProbability sets the "probability" field if the given value is not nil.
func (_u *AnnualPredictionUpdate) SetNillableProbability(v *float64) *AnnualPredictionUpdate {
	if v != nil {
		_u.SetProbability(*v)
	}
	return _u
}

// AddProbability adds value to the "probability" field.
func (_u *AnnualPredictionUpdate) AddProbability(v float64) *AnnualPredictionUpdate {
	_u.mutation.AddProbability(v)
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *AnnualPredictionUpdate) SetRiskLevel(v string) *AnnualPredictionUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *AnnualPredictionUpdate) SetNillableRiskLevel(v *string) *AnnualPredictionUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AnnualPredictionUpdate) SetConfidence(v float64) *AnnualPredictionUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AnnualPredictionUpdate) SetNillableConfidence(v *float64) *AnnualPredictionUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AnnualPredictionUpdate) AddConfidence(v float64) *AnnualPredictionUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *AnnualPredictionUpdate) SetJobID(v uuid.UUID) *AnnualPredictionUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *AnnualPredictionUpdate) SetNillableJobID(v *uuid.UUID) *AnnualPredictionUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetChunkIndex sets the "chunk_index" field.
func (_u *AnnualPredictionUpdate) SetChunkIndex(v int) *AnnualPredictionUpdate {
	_u.mutation.ResetChunkIndex()
	_u.mutation.SetChunkIndex(v)
	return _u
}

// SetNillableChunkIndex sets the "chunk_index" field if the given value is not nil.
func (_u *AnnualPredictionUpdate) SetNillableChunkIndex(v *int) *AnnualPredictionUpdate {
	if v != nil {
		_u.SetChunkIndex(*v)
	}
	return _u
}

// AddChunkIndex adds value to the "chunk_index" field.
func (_u *AnnualPredictionUpdate) AddChunkIndex(v int) *AnnualPredictionUpdate {
	_u.mutation.AddChunkIndex(v)
	return _u
}

// SetRowIndex sets the "row_index" field.
func (_u *AnnualPredictionUpdate) SetRowIndex(v int) *AnnualPredictionUpdate {
	_u.mutation.ResetRowIndex()
	_u.mutation.SetRowIndex(v)
	return _u
}

// SetNillableRowIndex sets the "row_index" field if the given value is not nil.
func (_u *AnnualPredictionUpdate) SetNillableRowIndex(v *int) *AnnualPredictionUpdate {
	if v != nil {
		_u.SetRowIndex(*v)
	}
	return _u
}

// AddRowIndex adds value to the "row_index" field.
func (_u *AnnualPredictionUpdate) AddRowIndex(v int) *AnnualPredictionUpdate {
	_u.mutation.AddRowIndex(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AnnualPredictionUpdate) SetCreatedAt(v time.Time) *AnnualPredictionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AnnualPredictionUpdate) SetNillableCreatedAt(v *time.Time) *AnnualPredictionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *AnnualPredictionUpdate) SetCompany(v *Company) *AnnualPredictionUpdate {
	return _u.SetCompanyID(v.ID)
}

// Mutation returns the AnnualPredictionMutation object of the builder.
func (_u *AnnualPredictionUpdate) Mutation() *AnnualPredictionMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *AnnualPredictionUpdate) ClearCompany() *AnnualPredictionUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnnualPredictionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnnualPredictionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnnualPredictionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnnualPredictionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnnualPredictionUpdate) check() error {
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := annualprediction.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "AnnualPrediction.risk_level": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnnualPrediction.company"`)
	}
	return nil
}

func (_u *AnnualPredictionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(annualprediction.Table, annualprediction.Columns, sqlgraph.NewFieldSpec(annualprediction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Ratios(); ok {
		_spec.SetField(annualprediction.FieldRatios, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Probability(); ok {
		_spec.SetField(annualprediction.FieldProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProbability(); ok {
		_spec.AddField(annualprediction.FieldProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(annualprediction.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(annualprediction.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(annualprediction.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(annualprediction.FieldJobID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ChunkIndex(); ok {
		_spec.SetField(annualprediction.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkIndex(); ok {
		_spec.AddField(annualprediction.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RowIndex(); ok {
		_spec.SetField(annualprediction.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowIndex(); ok {
		_spec.AddField(annualprediction.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(annualprediction.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   annualprediction.CompanyTable,
			Columns: []string{annualprediction.CompanyColumn},
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
			Table:   annualprediction.CompanyTable,
			Columns: []string{annualprediction.CompanyColumn},
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
			err = &NotFoundError{annualprediction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnnualPredictionUpdateOne is the builder for updating a single AnnualPrediction entity.
type AnnualPredictionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnnualPredictionMutation
}

// SetCompanyID sets the "company_id" field.
func (_u *AnnualPredictionUpdateOne) SetCompanyID(v uuid.UUID) *AnnualPredictionUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *AnnualPredictionUpdateOne) SetNillableCompanyID(v *uuid.UUID) *AnnualPredictionUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetRatios sets the "ratios" field.
func (_u *AnnualPredictionUpdateOne) SetRatios(v map[string]string) *AnnualPredictionUpdateOne {
	_u.mutation.SetRatios(v)
	return _u
}

// SetProbability sets the "probability" field.
func (_u *AnnualPredictionUpdateOne) SetProbability(v float64) *AnnualPredictionUpdateOne {
	_u.mutation.ResetProbability()
	_u.mutation.SetProbability(v)
	return _u
}

// SetNillableProbability sets the "probability" field if the given value is not nil.
func (_u *AnnualPredictionUpdateOne) SetNillableProbability(v *float64) *AnnualPredictionUpdateOne {
	if v != nil {
		_u.SetProbability(*v)
	}
	return _u
}

// AddProbability adds value to the "probability" field.
func (_u *AnnualPredictionUpdateOne) AddProbability(v float64) *AnnualPredictionUpdateOne {
	_u.mutation.AddProbability(v)
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *AnnualPredictionUpdateOne) SetRiskLevel(v string) *AnnualPredictionUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *AnnualPredictionUpdateOne) SetNillableRiskLevel(v *string) *AnnualPredictionUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AnnualPredictionUpdateOne) SetConfidence(v float64) *AnnualPredictionUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AnnualPredictionUpdateOne) SetNillableConfidence(v *float64) *AnnualPredictionUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AnnualPredictionUpdateOne) AddConfidence(v float64) *AnnualPredictionUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *AnnualPredictionUpdateOne) SetJobID(v uuid.UUID) *AnnualPredictionUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *AnnualPredictionUpdateOne) SetNillableJobID(v *uuid.UUID) *AnnualPredictionUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetChunkIndex sets the "chunk_index" field.
func (_u *AnnualPredictionUpdateOne) SetChunkIndex(v int) *AnnualPredictionUpdateOne {
	_u.mutation.ResetChunkIndex()
	_u.mutation.SetChunkIndex(v)
	return _u
}

// SetNillableChunkIndex sets the "chunk_index" field if the given value is not nil.
func (_u *AnnualPredictionUpdateOne) SetNillableChunkIndex(v *int) *AnnualPredictionUpdateOne {
	if v != nil {
		_u.SetChunkIndex(*v)
	}
	return _u
}

// AddChunkIndex adds value to the "chunk_index" field.
func (_u *AnnualPredictionUpdateOne) AddChunkIndex(v int) *AnnualPredictionUpdateOne {
	_u.mutation.AddChunkIndex(v)
	return _u
}

// SetRowIndex sets the "row_index" field.
func (_u *AnnualPredictionUpdateOne) SetRowIndex(v int) *AnnualPredictionUpdateOne {
	_u.mutation.ResetRowIndex()
	_u.mutation.SetRowIndex(v)
	return _u
}

// SetNillableRowIndex sets the "row_index" field if the given value is not nil.
func (_u *AnnualPredictionUpdateOne) SetNillableRowIndex(v *int) *AnnualPredictionUpdateOne {
	if v != nil {
		_u.SetRowIndex(*v)
	}
	return _u
}

// AddRowIndex adds value to the "row_index" field.
func (_u *AnnualPredictionUpdateOne) AddRowIndex(v int) *AnnualPredictionUpdateOne {
	_u.mutation.AddRowIndex(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AnnualPredictionUpdateOne) SetCreatedAt(v time.Time) *AnnualPredictionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AnnualPredictionUpdateOne) SetNillableCreatedAt(v *time.Time) *AnnualPredictionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *AnnualPredictionUpdateOne) SetCompany(v *Company) *AnnualPredictionUpdateOne {
	return _u.SetCompanyID(v.ID)
}

// Mutation returns the AnnualPredictionMutation object of the builder.
func (_u *AnnualPredictionUpdateOne) Mutation() *AnnualPredictionMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *AnnualPredictionUpdateOne) ClearCompany() *AnnualPredictionUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// Where appends a list predicates to the AnnualPredictionUpdate builder.
func (_u *AnnualPredictionUpdateOne) Where(ps ...predicate.AnnualPrediction) *AnnualPredictionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnnualPredictionUpdateOne) Select(field string, fields ...string) *AnnualPredictionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnnualPrediction entity.
func (_u *AnnualPredictionUpdateOne) Save(ctx context.Context) (*AnnualPrediction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnnualPredictionUpdateOne) SaveX(ctx context.Context) *AnnualPrediction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnnualPredictionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnnualPredictionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnnualPredictionUpdateOne) check() error {
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := annualprediction.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "AnnualPrediction.risk_level": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnnualPrediction.company"`)
	}
	return nil
}

func (_u *AnnualPredictionUpdateOne) sqlSave(ctx context.Context) (_node *AnnualPrediction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(annualprediction.Table, annualprediction.Columns, sqlgraph.NewFieldSpec(annualprediction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnnualPrediction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, annualprediction.FieldID)
		for _, f := range fields {
			if !annualprediction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != annualprediction.FieldID {
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
		_spec.SetField(annualprediction.FieldRatios, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Probability(); ok {
		_spec.SetField(annualprediction.FieldProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProbability(); ok {
		_spec.AddField(annualprediction.FieldProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(annualprediction.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(annualprediction.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(annualprediction.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(annualprediction.FieldJobID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ChunkIndex(); ok {
		_spec.SetField(annualprediction.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkIndex(); ok {
		_spec.AddField(annualprediction.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RowIndex(); ok {
		_spec.SetField(annualprediction.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowIndex(); ok {
		_spec.AddField(annualprediction.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(annualprediction.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   annualprediction.CompanyTable,
			Columns: []string{annualprediction.CompanyColumn},
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
			Table:   annualprediction.CompanyTable,
			Columns: []string{annualprediction.CompanyColumn},
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
	_node = &AnnualPrediction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{annualprediction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
