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
	"github.com/seyi-adeleke/riskscore/gen/ent/annualprediction"
	"github.com/seyi-adeleke/riskscore/gen/ent/company"
)

// AnnualPredictionCreate is the builder for creating a AnnualPrediction entity.
type AnnualPredictionCreate struct {
	config
	mutation *AnnualPredictionMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *AnnualPredictionCreate) SetCompanyID(v uuid.UUID) *AnnualPredictionCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetReportingYear sets the "reporting_year" field.
func (_c *AnnualPredictionCreate) SetReportingYear(v int) *AnnualPredictionCreate {
	_c.mutation.SetReportingYear(v)
	return _c
}

// SetRatios sets the "ratios" field.
func (_c *AnnualPredictionCreate) SetRatios(v map[string]string) *AnnualPredictionCreate {
	_c.mutation.SetRatios(v)
	return _c
}

// SetProbability sets the "probability" field.
func (_c *AnnualPredictionCreate) SetProbability(v float64) *AnnualPredictionCreate {
	_c.mutation.SetProbability(v)
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *AnnualPredictionCreate) SetRiskLevel(v string) *AnnualPredictionCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *AnnualPredictionCreate) SetConfidence(v float64) *AnnualPredictionCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *AnnualPredictionCreate) SetJobID(v uuid.UUID) *AnnualPredictionCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetChunkIndex sets the "chunk_index" field.
func (_c *AnnualPredictionCreate) SetChunkIndex(v int) *AnnualPredictionCreate {
	_c.mutation.SetChunkIndex(v)
	return _c
}

// SetRowIndex sets the "row_index" field.
func (_c *AnnualPredictionCreate) SetRowIndex(v int) *AnnualPredictionCreate {
	_c.mutation.SetRowIndex(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnnualPredictionCreate) SetCreatedAt(v time.Time) *AnnualPredictionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnnualPredictionCreate) SetNillableCreatedAt(v *time.Time) *AnnualPredictionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnnualPredictionCreate) SetID(v uuid.UUID) *AnnualPredictionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AnnualPredictionCreate) SetNillableID(v *uuid.UUID) *AnnualPredictionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *AnnualPredictionCreate) SetCompany(v *Company) *AnnualPredictionCreate {
	return _c.SetCompanyID(v.ID)
}

// Mutation returns the AnnualPredictionMutation object of the builder.
func (_c *AnnualPredictionCreate) Mutation() *AnnualPredictionMutation {
	return _c.mutation
}

// Save creates the AnnualPrediction in the database.
func (_c *AnnualPredictionCreate) Save(ctx context.Context) (*AnnualPrediction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnnualPredictionCreate) SaveX(ctx context.Context) *AnnualPrediction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnnualPredictionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnnualPredictionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnnualPredictionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := annualprediction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := annualprediction.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnnualPredictionCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "AnnualPrediction.company_id"`)}
	}
	if _, ok := _c.mutation.ReportingYear(); !ok {
		return &ValidationError{Name: "reporting_year", err: errors.New(`ent: missing required field "AnnualPrediction.reporting_year"`)}
	}
	if v, ok := _c.mutation.ReportingYear(); ok {
		if err := annualprediction.ReportingYearValidator(v); err != nil {
			return &ValidationError{Name: "reporting_year", err: fmt.Errorf(`ent: validator failed for field "AnnualPrediction.reporting_year": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Ratios(); !ok {
		return &ValidationError{Name: "ratios", err: errors.New(`ent: missing required field "AnnualPrediction.ratios"`)}
	}
	if _, ok := _c.mutation.Probability(); !ok {
		return &ValidationError{Name: "probability", err: errors.New(`ent: missing required field "AnnualPrediction.probability"`)}
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		return &ValidationError{Name: "risk_level", err: errors.New(`ent: missing required field "AnnualPrediction.risk_level"`)}
	}
	if v, ok := _c.mutation.RiskLevel(); ok {
		if err := annualprediction.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "AnnualPrediction.risk_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "AnnualPrediction.confidence"`)}
	}
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "AnnualPrediction.job_id"`)}
	}
	if _, ok := _c.mutation.ChunkIndex(); !ok {
		return &ValidationError{Name: "chunk_index", err: errors.New(`ent: missing required field "AnnualPrediction.chunk_index"`)}
	}
	if _, ok := _c.mutation.RowIndex(); !ok {
		return &ValidationError{Name: "row_index", err: errors.New(`ent: missing required field "AnnualPrediction.row_index"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnnualPrediction.created_at"`)}
	}
	if len(_c.mutation.CompanyIDs()) == 0 {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required edge "AnnualPrediction.company"`)}
	}
	return nil
}

func (_c *AnnualPredictionCreate) sqlSave(ctx context.Context) (*AnnualPrediction, error) {
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

func (_c *AnnualPredictionCreate) createSpec() (*AnnualPrediction, *sqlgraph.CreateSpec) {
	var (
		_node = &AnnualPrediction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(annualprediction.Table, sqlgraph.NewFieldSpec(annualprediction.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ReportingYear(); ok {
		_spec.SetField(annualprediction.FieldReportingYear, field.TypeInt, value)
		_node.ReportingYear = value
	}
	if value, ok := _c.mutation.Ratios(); ok {
		_spec.SetField(annualprediction.FieldRatios, field.TypeJSON, value)
		_node.Ratios = value
	}
	if value, ok := _c.mutation.Probability(); ok {
		_spec.SetField(annualprediction.FieldProbability, field.TypeFloat64, value)
		_node.Probability = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(annualprediction.FieldRiskLevel, field.TypeString, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(annualprediction.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(annualprediction.FieldJobID, field.TypeUUID, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.ChunkIndex(); ok {
		_spec.SetField(annualprediction.FieldChunkIndex, field.TypeInt, value)
		_node.ChunkIndex = value
	}
	if value, ok := _c.mutation.RowIndex(); ok {
		_spec.SetField(annualprediction.FieldRowIndex, field.TypeInt, value)
		_node.RowIndex = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(annualprediction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_node.CompanyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnnualPredictionCreateBulk is the builder for creating many AnnualPrediction entities in bulk.
type AnnualPredictionCreateBulk struct {
	config
	err      error
	builders []*AnnualPredictionCreate
}

// Save creates the AnnualPrediction entities in the database.
func (_c *AnnualPredictionCreateBulk) Save(ctx context.Context) ([]*AnnualPrediction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnnualPrediction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnnualPredictionMutation)
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
func (_c *AnnualPredictionCreateBulk) SaveX(ctx context.Context) []*AnnualPrediction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnnualPredictionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnnualPredictionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
