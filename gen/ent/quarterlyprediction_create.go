// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/seyi-adeleke/riskscore/gen/ent/company"
	"github.com/seyi-adeleke/riskscore/gen/ent/quarterlyprediction"
)

// QuarterlyPredictionCreate is the builder for creating a QuarterlyPrediction entity.
type QuarterlyPredictionCreate struct {
	config
	mutation *QuarterlyPredictionMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *QuarterlyPredictionCreate) SetCompanyID(v uuid.UUID) *QuarterlyPredictionCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetReportingYear sets the "reporting_year" field.
func (_c *QuarterlyPredictionCreate) SetReportingYear(v int) *QuarterlyPredictionCreate {
	_c.mutation.SetReportingYear(v)
	return _c
}

// SetReportingQuarter sets the "reporting_quarter" field.
func (_c *QuarterlyPredictionCreate) SetReportingQuarter(v int) *QuarterlyPredictionCreate {
	_c.mutation.SetReportingQuarter(v)
	return _c
}

// SetRatios sets the "ratios" field.
func (_c *QuarterlyPredictionCreate) SetRatios(v map[string]string) *QuarterlyPredictionCreate {
	_c.mutation.SetRatios(v)
	return _c
}

// SetLogitProbability sets the "logit_probability" field.
func (_c *QuarterlyPredictionCreate) SetLogitProbability(v float64) *QuarterlyPredictionCreate {
	_c.mutation.SetLogitProbability(v)
	return _c
}

// SetGbmProbability sets the "gbm_probability" field.
func (_c *QuarterlyPredictionCreate) SetGbmProbability(v float64) *QuarterlyPredictionCreate {
	_c.mutation.SetGbmProbability(v)
	return _c
}

// SetEnsembleProbability sets the "ensemble_probability" field.
func (_c *QuarterlyPredictionCreate) SetEnsembleProbability(v float64) *QuarterlyPredictionCreate {
	_c.mutation.SetEnsembleProbability(v)
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *QuarterlyPredictionCreate) SetRiskLevel(v string) *QuarterlyPredictionCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *QuarterlyPredictionCreate) SetConfidence(v float64) *QuarterlyPredictionCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *QuarterlyPredictionCreate) SetJobID(v uuid.UUID) *QuarterlyPredictionCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetChunkIndex sets the "chunk_index" field.
func (_c *QuarterlyPredictionCreate) SetChunkIndex(v int) *QuarterlyPredictionCreate {
	_c.mutation.SetChunkIndex(v)
	return _c
}

// SetRowIndex sets the "row_index" field.
func (_c *QuarterlyPredictionCreate) SetRowIndex(v int) *QuarterlyPredictionCreate {
	_c.mutation.SetRowIndex(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuarterlyPredictionCreate) SetCreatedAt(v time.Time) *QuarterlyPredictionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuarterlyPredictionCreate) SetNillableCreatedAt(v *time.Time) *QuarterlyPredictionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuarterlyPredictionCreate) SetID(v uuid.UUID) *QuarterlyPredictionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QuarterlyPredictionCreate) SetNillableID(v *uuid.UUID) *QuarterlyPredictionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *QuarterlyPredictionCreate) SetCompany(v *Company) *QuarterlyPredictionCreate {
	return _c.SetCompanyID(v.ID)
}

// Mutation returns the QuarterlyPredictionMutation object of the builder.
func (_c *QuarterlyPredictionCreate) Mutation() *QuarterlyPredictionMutation {
	return _c.mutation
}

// Save creates the QuarterlyPrediction in the database.
func (_c *QuarterlyPredictionCreate) Save(ctx context.Context) (*QuarterlyPrediction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuarterlyPredictionCreate) SaveX(ctx context.Context) *QuarterlyPrediction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuarterlyPredictionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuarterlyPredictionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuarterlyPredictionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := quarterlyprediction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := quarterlyprediction.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuarterlyPredictionCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "QuarterlyPrediction.company_id"`)}
	}
	if _, ok := _c.mutation.ReportingYear(); !ok {
		return &ValidationError{Name: "reporting_year", err: errors.New(`ent: missing required field "QuarterlyPrediction.reporting_year"`)}
	}
	if v, ok := _c.mutation.ReportingYear(); ok {
		if err := quarterlyprediction.ReportingYearValidator(v); err != nil {
			return &ValidationError{Name: "reporting_year", err: fmt.Errorf(`ent: validator failed for field "QuarterlyPrediction.reporting_year": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReportingQuarter(); !ok {
		return &ValidationError{Name: "reporting_quarter", err: errors.New(`ent: missing required field "QuarterlyPrediction.reporting_quarter"`)}
	}
	if v, ok := _c.mutation.ReportingQuarter(); ok {
		if err := quarterlyprediction.ReportingQuarterValidator(v); err != nil {
			return &ValidationError{Name: "reporting_quarter", err: fmt.Errorf(`ent: validator failed for field "QuarterlyPrediction.reporting_quarter": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Ratios(); !ok {
		return &ValidationError{Name: "ratios", err: errors.New(`ent: missing required field "QuarterlyPrediction.ratios"`)}
	}
	if _, ok := _c.mutation.LogitProbability(); !ok {
		return &ValidationError{Name: "logit_probability", err: errors.New(`ent: missing required field "QuarterlyPrediction.logit_probability"`)}
	}
	if _, ok := _c.mutation.GbmProbability(); !ok {
		return &ValidationError{Name: "gbm_probability", err: errors.New(`ent: missing required field "QuarterlyPrediction.gbm_probability"`)}
	}
	if _, ok := _c.mutation.EnsembleProbability(); !ok {
		return &ValidationError{Name: "ensemble_probability", err: errors.New(`ent: missing required field "QuarterlyPrediction.ensemble_probability"`)}
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		return &ValidationError{Name: "risk_level", err: errors.New(`ent: missing required field "QuarterlyPrediction.risk_level"`)}
	}
	if v, ok := _c.mutation.RiskLevel(); ok {
		if err := quarterlyprediction.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "QuarterlyPrediction.risk_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "QuarterlyPrediction.confidence"`)}
	}
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "QuarterlyPrediction.job_id"`)}
	}
	if _, ok := _c.mutation.ChunkIndex(); !ok {
		return &ValidationError{Name: "chunk_index", err: errors.New(`ent: missing required field "QuarterlyPrediction.chunk_index"`)}
	}
	if _, ok := _c.mutation.RowIndex(); !ok {
		return &ValidationError{Name: "row_index", err: errors.New(`ent: missing required field "QuarterlyPrediction.row_index"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QuarterlyPrediction.created_at"`)}
	}
	if len(_c.mutation.CompanyIDs()) == 0 {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required edge "QuarterlyPrediction.company"`)}
	}
	return nil
}

func (_c *QuarterlyPredictionCreate) sqlSave(ctx context.Context) (*QuarterlyPrediction, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuarterlyPredictionCreate) createSpec() (*QuarterlyPrediction, *sqlgraph.CreateSpec) {
	var (
		_node = &QuarterlyPrediction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quarterlyprediction.Table, sqlgraph.NewFieldSpec(quarterlyprediction.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ReportingYear(); ok {
		_spec.SetField(quarterlyprediction.FieldReportingYear, field.TypeInt, value)
		_node.ReportingYear = value
	}
	if value, ok := _c.mutation.ReportingQuarter(); ok {
		_spec.SetField(quarterlyprediction.FieldReportingQuarter, field.TypeInt, value)
		_node.ReportingQuarter = value
	}
	if value, ok := _c.mutation.Ratios(); ok {
		_spec.SetField(quarterlyprediction.FieldRatios, field.TypeJSON, value)
		_node.Ratios = value
	}
	if value, ok := _c.mutation.LogitProbability(); ok {
		_spec.SetField(quarterlyprediction.FieldLogitProbability, field.TypeFloat64, value)
		_node.LogitProbability = value
	}
	if value, ok := _c.mutation.GbmProbability(); ok {
		_spec.SetField(quarterlyprediction.FieldGbmProbability, field.TypeFloat64, value)
		_node.GbmProbability = value
	}
	if value, ok := _c.mutation.EnsembleProbability(); ok {
		_spec.SetField(quarterlyprediction.FieldEnsembleProbability, field.TypeFloat64, value)
		_node.EnsembleProbability = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(quarterlyprediction.FieldRiskLevel, field.TypeString, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(quarterlyprediction.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(quarterlyprediction.FieldJobID, field.TypeUUID, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.ChunkIndex(); ok {
		_spec.SetField(quarterlyprediction.FieldChunkIndex, field.TypeInt, value)
		_node.ChunkIndex = value
	}
	if value, ok := _c.mutation.RowIndex(); ok {
		_spec.SetField(quarterlyprediction.FieldRowIndex, field.TypeInt, value)
		_node.RowIndex = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(quarterlyprediction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_node.CompanyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QuarterlyPredictionCreateBulk is the builder for creating many QuarterlyPrediction entities in bulk.
type QuarterlyPredictionCreateBulk struct {
	config
	err      error
	builders []*QuarterlyPredictionCreate
}

// Save creates the QuarterlyPrediction entities in the database.
func (_c *QuarterlyPredictionCreateBulk) Save(ctx context.Context) ([]*QuarterlyPrediction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuarterlyPrediction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuarterlyPredictionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuarterlyPredictionCreateBulk) SaveX(ctx context.Context) []*QuarterlyPrediction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuarterlyPredictionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuarterlyPredictionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
