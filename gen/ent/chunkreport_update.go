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
	"github.com/seyi-adeleke/riskscore/gen/ent/chunkreport"
	"github.com/seyi-adeleke/riskscore/gen/ent/predicate"
	"github.com/seyi-adeleke/riskscore/gen/ent/uploadjob"
)

// ChunkReportUpdate is the builder for updating ChunkReport entities.
type ChunkReportUpdate struct {
	config
	hooks    []Hook
	mutation *ChunkReportMutation
}

// Where appends a list predicates to the ChunkReportUpdate builder.
func (_u *ChunkReportUpdate) Where(ps ...predicate.ChunkReport) *ChunkReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *ChunkReportUpdate) SetJobID(v uuid.UUID) *ChunkReportUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ChunkReportUpdate) SetNillableJobID(v *uuid.UUID) *ChunkReportUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetChunkIndex sets the "chunk_index" field.
func (_u *ChunkReportUpdate) SetChunkIndex(v int) *ChunkReportUpdate {
	_u.mutation.ResetChunkIndex()
	_u.mutation.SetChunkIndex(v)
	return _u
}

// SetNillableChunkIndex sets the "chunk_index" field if the given value is not nil.
func (_u *ChunkReportUpdate) SetNillableChunkIndex(v *int) *ChunkReportUpdate {
	if v != nil {
		_u.SetChunkIndex(*v)
	}
	return _u
}

// AddChunkIndex adds value to the "chunk_index" field.
func (_u *ChunkReportUpdate) AddChunkIndex(v int) *ChunkReportUpdate {
	_u.mutation.AddChunkIndex(v)
	return _u
}

// SetRowsProcessed sets the "rows_processed" field.
func (_u *ChunkReportUpdate) SetRowsProcessed(v int) *ChunkReportUpdate {
	_u.mutation.ResetRowsProcessed()
	_u.mutation.SetRowsProcessed(v)
	return _u
}

// SetNillableRowsProcessed sets the "rows_processed" field if the given value is not nil.
func (_u *ChunkReportUpdate) SetNillableRowsProcessed(v *int) *ChunkReportUpdate {
	if v != nil {
		_u.SetRowsProcessed(*v)
	}
	return _u
}

// AddRowsProcessed adds value to the "rows_processed" field.
func (_u *ChunkReportUpdate) AddRowsProcessed(v int) *ChunkReportUpdate {
	_u.mutation.AddRowsProcessed(v)
	return _u
}

// SetRowsSuccessful sets the "rows_successful" field.
func (_u *ChunkReportUpdate) SetRowsSuccessful(v int) *ChunkReportUpdate {
	_u.mutation.ResetRowsSuccessful()
	_u.mutation.SetRowsSuccessful(v)
	return _u
}

// SetNillableRowsSuccessful sets the "rows_successful" field if the given value is not nil.
func (_u *ChunkReportUpdate) SetNillableRowsSuccessful(v *int) *ChunkReportUpdate {
	if v != nil {
		_u.SetRowsSuccessful(*v)
	}
	return _u
}

// AddRowsSuccessful adds value to the "rows_successful" field.
func (_u *ChunkReportUpdate) AddRowsSuccessful(v int) *ChunkReportUpdate {
	_u.mutation.AddRowsSuccessful(v)
	return _u
}

// SetRowsFailed sets the "rows_failed" field.
func (_u *ChunkReportUpdate) SetRowsFailed(v int) *ChunkReportUpdate {
	_u.mutation.ResetRowsFailed()
	_u.mutation.SetRowsFailed(v)
	return _u
}

// SetNillableRowsFailed sets the "rows_failed" field if the given value is not nil.
func (_u *ChunkReportUpdate) SetNillableRowsFailed(v *int) *ChunkReportUpdate {
	if v != nil {
		_u.SetRowsFailed(*v)
	}
	return _u
}

// AddRowsFailed adds value to the "rows_failed" field.
func (_u *ChunkReportUpdate) AddRowsFailed(v int) *ChunkReportUpdate {
	_u.mutation.AddRowsFailed(v)
	return _u
}

// SetReportedAt sets the "reported_at" field.
func (_u *ChunkReportUpdate) SetReportedAt(v time.Time) *ChunkReportUpdate {
	_u.mutation.SetReportedAt(v)
	return _u
}

// SetNillableReportedAt sets the "reported_at" field if the given value is not nil.
func (_u *ChunkReportUpdate) SetNillableReportedAt(v *time.Time) *ChunkReportUpdate {
	if v != nil {
		_u.SetReportedAt(*v)
	}
	return _u
}

// SetJob sets the "job" edge to the UploadJob entity.
func (_u *ChunkReportUpdate) SetJob(v *UploadJob) *ChunkReportUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the ChunkReportMutation object of the builder.
func (_u *ChunkReportUpdate) Mutation() *ChunkReportMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the UploadJob entity.
func (_u *ChunkReportUpdate) ClearJob() *ChunkReportUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChunkReportUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChunkReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChunkReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChunkReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChunkReportUpdate) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChunkReport.job"`)
	}
	return nil
}

func (_u *ChunkReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chunkreport.Table, chunkreport.Columns, sqlgraph.NewFieldSpec(chunkreport.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChunkIndex(); ok {
		_spec.SetField(chunkreport.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkIndex(); ok {
		_spec.AddField(chunkreport.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RowsProcessed(); ok {
		_spec.SetField(chunkreport.FieldRowsProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowsProcessed(); ok {
		_spec.AddField(chunkreport.FieldRowsProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RowsSuccessful(); ok {
		_spec.SetField(chunkreport.FieldRowsSuccessful, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowsSuccessful(); ok {
		_spec.AddField(chunkreport.FieldRowsSuccessful, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RowsFailed(); ok {
		_spec.SetField(chunkreport.FieldRowsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowsFailed(); ok {
		_spec.AddField(chunkreport.FieldRowsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReportedAt(); ok {
		_spec.SetField(chunkreport.FieldReportedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chunkreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChunkReportUpdateOne is the builder for updating a single ChunkReport entity.
type ChunkReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChunkReportMutation
}

// SetJobID sets the "job_id" field.
func (_u *ChunkReportUpdateOne) SetJobID(v uuid.UUID) *ChunkReportUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ChunkReportUpdateOne) SetNillableJobID(v *uuid.UUID) *ChunkReportUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetChunkIndex sets the "chunk_index" field.
func (_u *ChunkReportUpdateOne) SetChunkIndex(v int) *ChunkReportUpdateOne {
	_u.mutation.ResetChunkIndex()
	_u.mutation.SetChunkIndex(v)
	return _u
}

// SetNillableChunkIndex sets the "chunk_index" field if the given value is not nil.
func (_u *ChunkReportUpdateOne) SetNillableChunkIndex(v *int) *ChunkReportUpdateOne {
	if v != nil {
		_u.SetChunkIndex(*v)
	}
	return _u
}

// AddChunkIndex adds value to the "chunk_index" field.
func (_u *ChunkReportUpdateOne) AddChunkIndex(v int) *ChunkReportUpdateOne {
	_u.mutation.AddChunkIndex(v)
	return _u
}

// SetRowsProcessed sets the "rows_processed" field.
func (_u *ChunkReportUpdateOne) SetRowsProcessed(v int) *ChunkReportUpdateOne {
	_u.mutation.ResetRowsProcessed()
	_u.mutation.SetRowsProcessed(v)
	return _u
}

// SetNillableRowsProcessed sets the "rows_processed" field if the given value is not nil.
func (_u *ChunkReportUpdateOne) SetNillableRowsProcessed(v *int) *ChunkReportUpdateOne {
	if v != nil {
		_u.SetRowsProcessed(*v)
	}
	return _u
}

// AddRowsProcessed adds value to the "rows_processed" field.
func (_u *ChunkReportUpdateOne) AddRowsProcessed(v int) *ChunkReportUpdateOne {
	_u.mutation.AddRowsProcessed(v)
	return _u
}

// SetRowsSuccessful sets the "rows_successful" field.
func (_u *ChunkReportUpdateOne) SetRowsSuccessful(v int) *ChunkReportUpdateOne {
	_u.mutation.ResetRowsSuccessful()
	_u.mutation.SetRowsSuccessful(v)
	return _u
}

// SetNillableRowsSuccessful sets the "rows_successful" field if the given value is not nil.
func (_u *ChunkReportUpdateOne) SetNillableRowsSuccessful(v *int) *ChunkReportUpdateOne {
	if v != nil {
		_u.SetRowsSuccessful(*v)
	}
	return _u
}

// AddRowsSuccessful adds value to the "rows_successful" field.
func (_u *ChunkReportUpdateOne) AddRowsSuccessful(v int) *ChunkReportUpdateOne {
	_u.mutation.AddRowsSuccessful(v)
	return _u
}

// SetRowsFailed sets the "rows_failed" field.
func (_u *ChunkReportUpdateOne) SetRowsFailed(v int) *ChunkReportUpdateOne {
	_u.mutation.ResetRowsFailed()
	_u.mutation.SetRowsFailed(v)
	return _u
}

// SetNillableRowsFailed sets the "rows_failed" field if the given value is not nil.
func (_u *ChunkReportUpdateOne) SetNillableRowsFailed(v *int) *ChunkReportUpdateOne {
	if v != nil {
		_u.SetRowsFailed(*v)
	}
	return _u
}

// AddRowsFailed adds value to the "rows_failed" field.
func (_u *ChunkReportUpdateOne) AddRowsFailed(v int) *ChunkReportUpdateOne {
	_u.mutation.AddRowsFailed(v)
	return _u
}

// SetReportedAt sets the "reported_at" field.
func (_u *ChunkReportUpdateOne) SetReportedAt(v time.Time) *ChunkReportUpdateOne {
	_u.mutation.SetReportedAt(v)
	return _u
}

// SetNillableReportedAt sets the "reported_at" field if the given value is not nil.
func (_u *ChunkReportUpdateOne) SetNillableReportedAt(v *time.Time) *ChunkReportUpdateOne {
	if v != nil {
		_u.SetReportedAt(*v)
	}
	return _u
}

// SetJob sets the "job" edge to the UploadJob entity.
func (_u *ChunkReportUpdateOne) SetJob(v *UploadJob) *ChunkReportUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the ChunkReportMutation object of the builder.
func (_u *ChunkReportUpdateOne) Mutation() *ChunkReportMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the UploadJob entity.
func (_u *ChunkReportUpdateOne) ClearJob() *ChunkReportUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the ChunkReportUpdate builder.
func (_u *ChunkReportUpdateOne) Where(ps ...predicate.ChunkReport) *ChunkReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChunkReportUpdateOne) Select(field string, fields ...string) *ChunkReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChunkReport entity.
func (_u *ChunkReportUpdateOne) Save(ctx context.Context) (*ChunkReport, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChunkReportUpdateOne) SaveX(ctx context.Context) *ChunkReport {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChunkReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChunkReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChunkReportUpdateOne) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChunkReport.job"`)
	}
	return nil
}

func (_u *ChunkReportUpdateOne) sqlSave(ctx context.Context) (_node *ChunkReport, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chunkreport.Table, chunkreport.Columns, sqlgraph.NewFieldSpec(chunkreport.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChunkReport.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chunkreport.FieldID)
		for _, f := range fields {
			if !chunkreport.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chunkreport.FieldID {
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
	if value, ok := _u.mutation.ChunkIndex(); ok {
		_spec.SetField(chunkreport.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkIndex(); ok {
		_spec.AddField(chunkreport.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RowsProcessed(); ok {
		_spec.SetField(chunkreport.FieldRowsProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowsProcessed(); ok {
		_spec.AddField(chunkreport.FieldRowsProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RowsSuccessful(); ok {
		_spec.SetField(chunkreport.FieldRowsSuccessful, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowsSuccessful(); ok {
		_spec.AddField(chunkreport.FieldRowsSuccessful, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RowsFailed(); ok {
		_spec.SetField(chunkreport.FieldRowsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowsFailed(); ok {
		_spec.AddField(chunkreport.FieldRowsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReportedAt(); ok {
		_spec.SetField(chunkreport.FieldReportedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ChunkReport{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chunkreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
