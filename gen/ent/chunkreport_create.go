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
	"github.com/seyi-adeleke/riskscore/gen/ent/chunkreport"
	"github.com/seyi-adeleke/riskscore/gen/ent/uploadjob"
)

// ChunkReportCreate is the builder for creating a ChunkReport entity.
type ChunkReportCreate struct {
	config
	mutation *ChunkReportMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *ChunkReportCreate) SetJobID(v uuid.UUID) *ChunkReportCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetChunkIndex sets the "chunk_index" field.
func (_c *ChunkReportCreate) SetChunkIndex(v int) *ChunkReportCreate {
	_c.mutation.SetChunkIndex(v)
	return _c
}

// SetRowsProcessed sets the "rows_processed" field.
func (_c *ChunkReportCreate) SetRowsProcessed(v int) *ChunkReportCreate {
	_c.mutation.SetRowsProcessed(v)
	return _c
}

// SetRowsSuccessful sets the "rows_successful" field.
func (_c *ChunkReportCreate) SetRowsSuccessful(v int) *ChunkReportCreate {
	_c.mutation.SetRowsSuccessful(v)
	return _c
}

// SetRowsFailed sets the "rows_failed" field.
func (_c *ChunkReportCreate) SetRowsFailed(v int) *ChunkReportCreate {
	_c.mutation.SetRowsFailed(v)
	return _c
}

// SetReportedAt sets the "reported_at" field.
func (_c *ChunkReportCreate) SetReportedAt(v time.Time) *ChunkReportCreate {
	_c.mutation.SetReportedAt(v)
	return _c
}

// SetNillableReportedAt sets the "reported_at" field if the given value is not nil.
func (_c *ChunkReportCreate) SetNillableReportedAt(v *time.Time) *ChunkReportCreate {
	if v != nil {
		_c.SetReportedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChunkReportCreate) SetID(v uuid.UUID) *ChunkReportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ChunkReportCreate) SetNillableID(v *uuid.UUID) *ChunkReportCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the UploadJob entity.
func (_c *ChunkReportCreate) SetJob(v *UploadJob) *ChunkReportCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the ChunkReportMutation object of the builder.
func (_c *ChunkReportCreate) Mutation() *ChunkReportMutation {
	return _c.mutation
}

// Save creates the ChunkReport in the database.
func (_c *ChunkReportCreate) Save(ctx context.Context) (*ChunkReport, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChunkReportCreate) SaveX(ctx context.Context) *ChunkReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChunkReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChunkReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChunkReportCreate) defaults() {
	if _, ok := _c.mutation.ReportedAt(); !ok {
		v := chunkreport.DefaultReportedAt()
		_c.mutation.SetReportedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := chunkreport.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChunkReportCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "ChunkReport.job_id"`)}
	}
	if _, ok := _c.mutation.ChunkIndex(); !ok {
		return &ValidationError{Name: "chunk_index", err: errors.New(`ent: missing required field "ChunkReport.chunk_index"`)}
	}
	if _, ok := _c.mutation.RowsProcessed(); !ok {
		return &ValidationError{Name: "rows_processed", err: errors.New(`ent: missing required field "ChunkReport.rows_processed"`)}
	}
	if _, ok := _c.mutation.RowsSuccessful(); !ok {
		return &ValidationError{Name: "rows_successful", err: errors.New(`ent: missing required field "ChunkReport.rows_successful"`)}
	}
	if _, ok := _c.mutation.RowsFailed(); !ok {
		return &ValidationError{Name: "rows_failed", err: errors.New(`ent: missing required field "ChunkReport.rows_failed"`)}
	}
	if _, ok := _c.mutation.ReportedAt(); !ok {
		return &ValidationError{Name: "reported_at", err: errors.New(`ent: missing required field "ChunkReport.reported_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "ChunkReport.job"`)}
	}
	return nil
}

func (_c *ChunkReportCreate) sqlSave(ctx context.Context) (*ChunkReport, error) {
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

func (_c *ChunkReportCreate) createSpec() (*ChunkReport, *sqlgraph.CreateSpec) {
	var (
		_node = &ChunkReport{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chunkreport.Table, sqlgraph.NewFieldSpec(chunkreport.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ChunkIndex(); ok {
		_spec.SetField(chunkreport.FieldChunkIndex, field.TypeInt, value)
		_node.ChunkIndex = value
	}
	if value, ok := _c.mutation.RowsProcessed(); ok {
		_spec.SetField(chunkreport.FieldRowsProcessed, field.TypeInt, value)
		_node.RowsProcessed = value
	}
	if value, ok := _c.mutation.RowsSuccessful(); ok {
		_spec.SetField(chunkreport.FieldRowsSuccessful, field.TypeInt, value)
		_node.RowsSuccessful = value
	}
	if value, ok := _c.mutation.RowsFailed(); ok {
		_spec.SetField(chunkreport.FieldRowsFailed, field.TypeInt, value)
		_node.RowsFailed = value
	}
	if value, ok := _c.mutation.ReportedAt(); ok {
		_spec.SetField(chunkreport.FieldReportedAt, field.TypeTime, value)
		_node.ReportedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chunkreport.JobTable,
			Columns: []string{chunkreport.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uploadjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ChunkReportCreateBulk is the builder for creating many ChunkReport entities in bulk.
type ChunkReportCreateBulk struct {
	config
	err      error
	builders []*ChunkReportCreate
}

// Save creates the ChunkReport entities in the database.
func (_c *ChunkReportCreateBulk) Save(ctx context.Context) ([]*ChunkReport, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChunkReport, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChunkReportMutation)
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
func (_c *ChunkReportCreateBulk) SaveX(ctx context.Context) []*ChunkReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChunkReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChunkReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
