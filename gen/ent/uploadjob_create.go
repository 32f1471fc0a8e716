// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/seyi-adeleke/riskscore/gen/ent/chunkreport"
	"github.com/seyi-adeleke/riskscore/gen/ent/uploadjob"
)

// UploadJobCreate is the builder for creating a UploadJob entity.
type UploadJobCreate struct {
	config
	mutation *UploadJobMutation
	hooks    []Hook
}

// SetJobType sets the "job_type" field.
func (_c *UploadJobCreate) SetJobType(v string) *UploadJobCreate {
	_c.mutation.SetJobType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *UploadJobCreate) SetStatus(v string) *UploadJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *UploadJobCreate) SetNillableStatus(v *string) *UploadJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTotalRows sets the "total_rows" field.
func (_c *UploadJobCreate) SetTotalRows(v int) *UploadJobCreate {
	_c.mutation.SetTotalRows(v)
	return _c
}

// SetTotalChunks sets the "total_chunks" field.
func (_c *UploadJobCreate) SetTotalChunks(v int) *UploadJobCreate {
	_c.mutation.SetTotalChunks(v)
	return _c
}

// SetCompletedChunks sets the "completed_chunks" field.
func (_c *UploadJobCreate) SetCompletedChunks(v int) *UploadJobCreate {
	_c.mutation.SetCompletedChunks(v)
	return _c
}

// SetNillableCompletedChunks sets the "completed_chunks" field if the given value is not nil.
func (_c *UploadJobCreate) SetNillableCompletedChunks(v *int) *UploadJobCreate {
	if v != nil {
		_c.SetCompletedChunks(*v)
	}
	return _c
}

// SetProcessedRows sets the "processed_rows" field.
func (_c *UploadJobCreate) SetProcessedRows(v int) *UploadJobCreate {
	_c.mutation.SetProcessedRows(v)
	return _c
}

// SetNillableProcessedRows sets the "processed_rows" field if the given value is not nil.
func (_c *UploadJobCreate) SetNillableProcessedRows(v *int) *UploadJobCreate {
	if v != nil {
		_c.SetProcessedRows(*v)
	}
	return _c
}

// SetSuccessfulRows sets the "successful_rows" field.
func (_c *UploadJobCreate) SetSuccessfulRows(v int) *UploadJobCreate {
	_c.mutation.SetSuccessfulRows(v)
	return _c
}

// SetNillableSuccessfulRows sets the "successful_rows" field if the given value is not nil.
func (_c *UploadJobCreate) SetNillableSuccessfulRows(v *int) *UploadJobCreate {
	if v != nil {
		_c.SetSuccessfulRows(*v)
	}
	return _c
}

// SetFailedRows sets the "failed_rows" field.
func (_c *UploadJobCreate) SetFailedRows(v int) *UploadJobCreate {
	_c.mutation.SetFailedRows(v)
	return _c
}

// SetNillableFailedRows sets the "failed_rows" field if the given value is not nil.
func (_c *UploadJobCreate) SetNillableFailedRows(v *int) *UploadJobCreate {
	if v != nil {
		_c.SetFailedRows(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *UploadJobCreate) SetErrorMessage(v string) *UploadJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *UploadJobCreate) SetNillableErrorMessage(v *string) *UploadJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetErrorDetails sets the "error_details" field.
func (_c *UploadJobCreate) SetErrorDetails(v json.RawMessage) *UploadJobCreate {
	_c.mutation.SetErrorDetails(v)
	return _c
}

// SetScopeType sets the "scope_type" field.
func (_c *UploadJobCreate) SetScopeType(v string) *UploadJobCreate {
	_c.mutation.SetScopeType(v)
	return _c
}

// SetScopeID sets the "scope_id" field.
func (_c *UploadJobCreate) SetScopeID(v uuid.UUID) *UploadJobCreate {
	_c.mutation.SetScopeID(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *UploadJobCreate) SetStartedAt(v time.Time) *UploadJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *UploadJobCreate) SetNillableStartedAt(v *time.Time) *UploadJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *UploadJobCreate) SetCompletedAt(v time.Time) *UploadJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *UploadJobCreate) SetNillableCompletedAt(v *time.Time) *UploadJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UploadJobCreate) SetCreatedAt(v time.Time) *UploadJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UploadJobCreate) SetNillableCreatedAt(v *time.Time) *UploadJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UploadJobCreate) SetID(v uuid.UUID) *UploadJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UploadJobCreate) SetNillableID(v *uuid.UUID) *UploadJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddChunkReportIDs adds the "chunk_reports" edge to the ChunkReport entity by IDs.
func (_c *UploadJobCreate) AddChunkReportIDs(ids ...uuid.UUID) *UploadJobCreate {
	_c.mutation.AddChunkReportIDs(ids...)
	return _c
}

// AddChunkReports adds the "chunk_reports" edges to the ChunkReport entity.
func (_c *UploadJobCreate) AddChunkReports(v ...*ChunkReport) *UploadJobCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChunkReportIDs(ids...)
}

// Mutation returns the UploadJobMutation object of the builder.
func (_c *UploadJobCreate) Mutation() *UploadJobMutation {
	return _c.mutation
}

// Save creates the UploadJob in the database.
func (_c *UploadJobCreate) Save(ctx context.Context) (*UploadJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UploadJobCreate) SaveX(ctx context.Context) *UploadJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UploadJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := uploadjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CompletedChunks(); !ok {
		v := uploadjob.DefaultCompletedChunks
		_c.mutation.SetCompletedChunks(v)
	}
	if _, ok := _c.mutation.ProcessedRows(); !ok {
		v := uploadjob.DefaultProcessedRows
		_c.mutation.SetProcessedRows(v)
	}
	if _, ok := _c.mutation.SuccessfulRows(); !ok {
		v := uploadjob.DefaultSuccessfulRows
		_c.mutation.SetSuccessfulRows(v)
	}
	if _, ok := _c.mutation.FailedRows(); !ok {
		v := uploadjob.DefaultFailedRows
		_c.mutation.SetFailedRows(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := uploadjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := uploadjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UploadJobCreate) check() error {
	if _, ok := _c.mutation.JobType(); !ok {
		return &ValidationError{Name: "job_type", err: errors.New(`ent: missing required field "UploadJob.job_type"`)}
	}
	if v, ok := _c.mutation.JobType(); ok {
		if err := uploadjob.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "UploadJob.job_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "UploadJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := uploadjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UploadJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalRows(); !ok {
		return &ValidationError{Name: "total_rows", err: errors.New(`ent: missing required field "UploadJob.total_rows"`)}
	}
	if _, ok := _c.mutation.TotalChunks(); !ok {
		return &ValidationError{Name: "total_chunks", err: errors.New(`ent: missing required field "UploadJob.total_chunks"`)}
	}
	if _, ok := _c.mutation.CompletedChunks(); !ok {
		return &ValidationError{Name: "completed_chunks", err: errors.New(`ent: missing required field "UploadJob.completed_chunks"`)}
	}
	if _, ok := _c.mutation.ProcessedRows(); !ok {
		return &ValidationError{Name: "processed_rows", err: errors.New(`ent: missing required field "UploadJob.processed_rows"`)}
	}
	if _, ok := _c.mutation.SuccessfulRows(); !ok {
		return &ValidationError{Name: "successful_rows", err: errors.New(`ent: missing required field "UploadJob.successful_rows"`)}
	}
	if _, ok := _c.mutation.FailedRows(); !ok {
		return &ValidationError{Name: "failed_rows", err: errors.New(`ent: missing required field "UploadJob.failed_rows"`)}
	}
	if _, ok := _c.mutation.ScopeType(); !ok {
		return &ValidationError{Name: "scope_type", err: errors.New(`ent: missing required field "UploadJob.scope_type"`)}
	}
	if v, ok := _c.mutation.ScopeType(); ok {
		if err := uploadjob.ScopeTypeValidator(v); err != nil {
			return &ValidationError{Name: "scope_type", err: fmt.Errorf(`ent: validator failed for field "UploadJob.scope_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScopeID(); !ok {
		return &ValidationError{Name: "scope_id", err: errors.New(`ent: missing required field "UploadJob.scope_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UploadJob.created_at"`)}
	}
	return nil
}

func (_c *UploadJobCreate) sqlSave(ctx context.Context) (*UploadJob, error) {
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

func (_c *UploadJobCreate) createSpec() (*UploadJob, *sqlgraph.CreateSpec) {
	var (
		_node = &UploadJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(uploadjob.Table, sqlgraph.NewFieldSpec(uploadjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.JobType(); ok {
		_spec.SetField(uploadjob.FieldJobType, field.TypeString, value)
		_node.JobType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(uploadjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TotalRows(); ok {
		_spec.SetField(uploadjob.FieldTotalRows, field.TypeInt, value)
		_node.TotalRows = value
	}
	if value, ok := _c.mutation.TotalChunks(); ok {
		_spec.SetField(uploadjob.FieldTotalChunks, field.TypeInt, value)
		_node.TotalChunks = value
	}
	if value, ok := _c.mutation.CompletedChunks(); ok {
		_spec.SetField(uploadjob.FieldCompletedChunks, field.TypeInt, value)
		_node.CompletedChunks = value
	}
	if value, ok := _c.mutation.ProcessedRows(); ok {
		_spec.SetField(uploadjob.FieldProcessedRows, field.TypeInt, value)
		_node.ProcessedRows = value
	}
	if value, ok := _c.mutation.SuccessfulRows(); ok {
		_spec.SetField(uploadjob.FieldSuccessfulRows, field.TypeInt, value)
		_node.SuccessfulRows = value
	}
	if value, ok := _c.mutation.FailedRows(); ok {
		_spec.SetField(uploadjob.FieldFailedRows, field.TypeInt, value)
		_node.FailedRows = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(uploadjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ErrorDetails(); ok {
		_spec.SetField(uploadjob.FieldErrorDetails, field.TypeJSON, value)
		_node.ErrorDetails = value
	}
	if value, ok := _c.mutation.ScopeType(); ok {
		_spec.SetField(uploadjob.FieldScopeType, field.TypeString, value)
		_node.ScopeType = value
	}
	if value, ok := _c.mutation.ScopeID(); ok {
		_spec.SetField(uploadjob.FieldScopeID, field.TypeUUID, value)
		_node.ScopeID = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(uploadjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(uploadjob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(uploadjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ChunkReportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   uploadjob.ChunkReportsTable,
			Columns: []string{uploadjob.ChunkReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chunkreport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UploadJobCreateBulk is the builder for creating many UploadJob entities in bulk.
type UploadJobCreateBulk struct {
	config
	err      error
	builders []*UploadJobCreate
}

// Save creates the UploadJob entities in the database.
func (_c *UploadJobCreateBulk) Save(ctx context.Context) ([]*UploadJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UploadJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UploadJobMutation)
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
func (_c *UploadJobCreateBulk) SaveX(ctx context.Context) []*UploadJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
