// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/seyi-adeleke/riskscore/gen/ent/chunkreport"
	"github.com/seyi-adeleke/riskscore/gen/ent/predicate"
	"github.com/seyi-adeleke/riskscore/gen/ent/uploadjob"
)

// UploadJobUpdate is the builder for updating UploadJob entities.
type UploadJobUpdate struct {
	config
	hooks    []Hook
	mutation *UploadJobMutation
}

// Where appends a list predicates to the UploadJobUpdate builder.
func (_u *UploadJobUpdate) Where(ps ...predicate.UploadJob) *UploadJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *UploadJobUpdate) SetStatus(v string) *UploadJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableStatus(v *string) *UploadJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalRows sets the "total_rows" field.
func (_u *UploadJobUpdate) SetTotalRows(v int) *UploadJobUpdate {
	_u.mutation.ResetTotalRows()
	_u.mutation.SetTotalRows(v)
	return _u
}

// SetNillableTotalRows sets the "total_rows" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableTotalRows(v *int) *UploadJobUpdate {
	if v != nil {
		_u.SetTotalRows(*v)
	}
	return _u
}

// AddTotalRows adds value to the "total_rows" field.
func (_u *UploadJobUpdate) AddTotalRows(v int) *UploadJobUpdate {
	_u.mutation.AddTotalRows(v)
	return _u
}

// SetTotalChunks sets the "total_chunks" field.
func (_u *UploadJobUpdate) SetTotalChunks(v int) *UploadJobUpdate {
	_u.mutation.ResetTotalChunks()
	_u.mutation.SetTotalChunks(v)
	return _u
}

// SetNillableTotalChunks sets the "total_chunks" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableTotalChunks(v *int) *UploadJobUpdate {
	if v != nil {
		_u.SetTotalChunks(*v)
	}
	return _u
}

// AddTotalChunks adds value to the "total_chunks" field.
func (_u *UploadJobUpdate) AddTotalChunks(v int) *UploadJobUpdate {
	_u.mutation.AddTotalChunks(v)
	return _u
}

// SetCompletedChunks sets the "completed_chunks" field.
func (_u *UploadJobUpdate) SetCompletedChunks(v int) *UploadJobUpdate {
	_u.mutation.ResetCompletedChunks()
	_u.mutation.SetCompletedChunks(v)
	return _u
}

// SetNillableCompletedChunks sets the "completed_chunks" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableCompletedChunks(v *int) *UploadJobUpdate {
	if v != nil {
		_u.SetCompletedChunks(*v)
	}
	return _u
}

// AddCompletedChunks adds value to the "completed_chunks" field.
func (_u *UploadJobUpdate) AddCompletedChunks(v int) *UploadJobUpdate {
	_u.mutation.AddCompletedChunks(v)
	return _u
}

// SetProcessedRows sets the "processed_rows" field.
func (_u *UploadJobUpdate) SetProcessedRows(v int) *UploadJobUpdate {
	_u.mutation.ResetProcessedRows()
	_u.mutation.SetProcessedRows(v)
	return _u
}

// SetNillableProcessedRows sets the "processed_rows" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableProcessedRows(v *int) *UploadJobUpdate {
	if v != nil {
		_u.SetProcessedRows(*v)
	}
	return _u
}

// AddProcessedRows adds value to the "processed_rows" field.
func (_u *UploadJobUpdate) AddProcessedRows(v int) *UploadJobUpdate {
	_u.mutation.AddProcessedRows(v)
	return _u
}

// SetSuccessfulRows sets the "successful_rows" field.
func (_u *UploadJobUpdate) SetSuccessfulRows(v int) *UploadJobUpdate {
	_u.mutation.ResetSuccessfulRows()
	_u.mutation.SetSuccessfulRows(v)
	return _u
}

// SetNillableSuccessfulRows sets the "successful_rows" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableSuccessfulRows(v *int) *UploadJobUpdate {
	if v != nil {
		_u.SetSuccessfulRows(*v)
	}
	return _u
}

// AddSuccessfulRows adds value to the "successful_rows" field.
func (_u *UploadJobUpdate) AddSuccessfulRows(v int) *UploadJobUpdate {
	_u.mutation.AddSuccessfulRows(v)
	return _u
}

// SetFailedRows sets the "failed_rows" field.
func (_u *UploadJobUpdate) SetFailedRows(v int) *UploadJobUpdate {
	_u.mutation.ResetFailedRows()
	_u.mutation.SetFailedRows(v)
	return _u
}

// SetNillableFailedRows sets the "failed_rows" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableFailedRows(v *int) *UploadJobUpdate {
	if v != nil {
		_u.SetFailedRows(*v)
	}
	return _u
}

// AddFailedRows adds value to the "failed_rows" field.
func (_u *UploadJobUpdate) AddFailedRows(v int) *UploadJobUpdate {
	_u.mutation.AddFailedRows(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *UploadJobUpdate) SetErrorMessage(v string) *UploadJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableErrorMessage(v *string) *UploadJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *UploadJobUpdate) ClearErrorMessage() *UploadJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorDetails sets the "error_details" field.
func (_u *UploadJobUpdate) SetErrorDetails(v json.RawMessage) *UploadJobUpdate {
	_u.mutation.SetErrorDetails(v)
	return _u
}

// AppendErrorDetails appends value to the "error_details" field.
func (_u *UploadJobUpdate) AppendErrorDetails(v json.RawMessage) *UploadJobUpdate {
	_u.mutation.AppendErrorDetails(v)
	return _u
}

// ClearErrorDetails clears the value of the "error_details" field.
func (_u *UploadJobUpdate) ClearErrorDetails() *UploadJobUpdate {
	_u.mutation.ClearErrorDetails()
	return _u
}

// SetScopeType sets the "scope_type" field.
func (_u *UploadJobUpdate) SetScopeType(v string) *UploadJobUpdate {
	_u.mutation.SetScopeType(v)
	return _u
}

// SetNillableScopeType sets the "scope_type" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableScopeType(v *string) *UploadJobUpdate {
	if v != nil {
		_u.SetScopeType(*v)
	}
	return _u
}

// SetScopeID sets the "scope_id" field.
func (_u *UploadJobUpdate) SetScopeID(v uuid.UUID) *UploadJobUpdate {
	_u.mutation.SetScopeID(v)
	return _u
}

// SetNillableScopeID sets the "scope_id" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableScopeID(v *uuid.UUID) *UploadJobUpdate {
	if v != nil {
		_u.SetScopeID(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *UploadJobUpdate) SetStartedAt(v time.Time) *UploadJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableStartedAt(v *time.Time) *UploadJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *UploadJobUpdate) ClearStartedAt() *UploadJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *UploadJobUpdate) SetCompletedAt(v time.Time) *UploadJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableCompletedAt(v *time.Time) *UploadJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *UploadJobUpdate) ClearCompletedAt() *UploadJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UploadJobUpdate) SetCreatedAt(v time.Time) *UploadJobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableCreatedAt(v *time.Time) *UploadJobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddChunkReportIDs adds the "chunk_reports" edge to the ChunkReport entity by IDs.
func (_u *UploadJobUpdate) AddChunkReportIDs(ids ...uuid.UUID) *UploadJobUpdate {
	_u.mutation.AddChunkReportIDs(ids...)
	return _u
}

// AddChunkReports adds the "chunk_reports" edges to the ChunkReport entity.
func (_u *UploadJobUpdate) AddChunkReports(v ...*ChunkReport) *UploadJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChunkReportIDs(ids...)
}

// Mutation returns the UploadJobMutation object of the builder.
func (_u *UploadJobUpdate) Mutation() *UploadJobMutation {
	return _u.mutation
}

// ClearChunkReports clears all "chunk_reports" edges to the ChunkReport entity.
func (_u *UploadJobUpdate) ClearChunkReports() *UploadJobUpdate {
	_u.mutation.ClearChunkReports()
	return _u
}

// RemoveChunkReportIDs removes the "chunk_reports" edge to ChunkReport entities by IDs.
func (_u *UploadJobUpdate) RemoveChunkReportIDs(ids ...uuid.UUID) *UploadJobUpdate {
	_u.mutation.RemoveChunkReportIDs(ids...)
	return _u
}

// RemoveChunkReports removes "chunk_reports" edges to ChunkReport entities.
func (_u *UploadJobUpdate) RemoveChunkReports(v ...*ChunkReport) *UploadJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChunkReportIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UploadJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UploadJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := uploadjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UploadJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScopeType(); ok {
		if err := uploadjob.ScopeTypeValidator(v); err != nil {
			return &ValidationError{Name: "scope_type", err: fmt.Errorf(`ent: validator failed for field "UploadJob.scope_type": %w`, err)}
		}
	}
	return nil
}

func (_u *UploadJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uploadjob.Table, uploadjob.Columns, sqlgraph.NewFieldSpec(uploadjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(uploadjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalRows(); ok {
		_spec.SetField(uploadjob.FieldTotalRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalRows(); ok {
		_spec.AddField(uploadjob.FieldTotalRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalChunks(); ok {
		_spec.SetField(uploadjob.FieldTotalChunks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalChunks(); ok {
		_spec.AddField(uploadjob.FieldTotalChunks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedChunks(); ok {
		_spec.SetField(uploadjob.FieldCompletedChunks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedChunks(); ok {
		_spec.AddField(uploadjob.FieldCompletedChunks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedRows(); ok {
		_spec.SetField(uploadjob.FieldProcessedRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedRows(); ok {
		_spec.AddField(uploadjob.FieldProcessedRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessfulRows(); ok {
		_spec.SetField(uploadjob.FieldSuccessfulRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessfulRows(); ok {
		_spec.AddField(uploadjob.FieldSuccessfulRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedRows(); ok {
		_spec.SetField(uploadjob.FieldFailedRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedRows(); ok {
		_spec.AddField(uploadjob.FieldFailedRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(uploadjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(uploadjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorDetails(); ok {
		_spec.SetField(uploadjob.FieldErrorDetails, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedErrorDetails(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, uploadjob.FieldErrorDetails, value)
		})
	}
	if _u.mutation.ErrorDetailsCleared() {
		_spec.ClearField(uploadjob.FieldErrorDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScopeType(); ok {
		_spec.SetField(uploadjob.FieldScopeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScopeID(); ok {
		_spec.SetField(uploadjob.FieldScopeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(uploadjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(uploadjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(uploadjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(uploadjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(uploadjob.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ChunkReportsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChunkReportsIDs(); len(nodes) > 0 && !_u.mutation.ChunkReportsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChunkReportsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uploadjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UploadJobUpdateOne is the builder for updating a single UploadJob entity.
type UploadJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UploadJobMutation
}

// SetStatus sets the "status" field.
func (_u *UploadJobUpdateOne) SetStatus(v string) *UploadJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableStatus(v *string) *UploadJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalRows sets the "total_rows" field.
func (_u *UploadJobUpdateOne) SetTotalRows(v int) *UploadJobUpdateOne {
	_u.mutation.ResetTotalRows()
	_u.mutation.SetTotalRows(v)
	return _u
}

// SetNillableTotalRows sets the "total_rows" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableTotalRows(v *int) *UploadJobUpdateOne {
	if v != nil {
		_u.SetTotalRows(*v)
	}
	return _u
}

// AddTotalRows adds value to the "total_rows" field.
func (_u *UploadJobUpdateOne) AddTotalRows(v int) *UploadJobUpdateOne {
	_u.mutation.AddTotalRows(v)
	return _u
}

// SetTotalChunks sets the "total_chunks" field.
func (_u *UploadJobUpdateOne) SetTotalChunks(v int) *UploadJobUpdateOne {
	_u.mutation.ResetTotalChunks()
	_u.mutation.SetTotalChunks(v)
	return _u
}

// SetNillableTotalChunks sets the "total_chunks" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableTotalChunks(v *int) *UploadJobUpdateOne {
	if v != nil {
		_u.SetTotalChunks(*v)
	}
	return _u
}

// AddTotalChunks adds value to the "total_chunks" field.
func (_u *UploadJobUpdateOne) AddTotalChunks(v int) *UploadJobUpdateOne {
	_u.mutation.AddTotalChunks(v)
	return _u
}

// SetCompletedChunks sets the "completed_chunks" field.
func (_u *UploadJobUpdateOne) SetCompletedChunks(v int) *UploadJobUpdateOne {
	_u.mutation.ResetCompletedChunks()
	_u.mutation.SetCompletedChunks(v)
	return _u
}

// SetNillableCompletedChunks sets the "completed_chunks" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableCompletedChunks(v *int) *UploadJobUpdateOne {
	if v != nil {
		_u.SetCompletedChunks(*v)
	}
	return _u
}

// AddCompletedChunks adds value to the "completed_chunks" field.
func (_u *UploadJobUpdateOne) AddCompletedChunks(v int) *UploadJobUpdateOne {
	_u.mutation.AddCompletedChunks(v)
	return _u
}

// SetProcessedRows sets the "processed_rows" field.
func (_u *UploadJobUpdateOne) SetProcessedRows(v int) *UploadJobUpdateOne {
	_u.mutation.ResetProcessedRows()
	_u.mutation.SetProcessedRows(v)
	return _u
}

// SetNillableProcessedRows sets the "processed_rows" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableProcessedRows(v *int) *UploadJobUpdateOne {
	if v != nil {
		_u.SetProcessedRows(*v)
	}
	return _u
}

// AddProcessedRows adds value to the "processed_rows" field.
func (_u *UploadJobUpdateOne) AddProcessedRows(v int) *UploadJobUpdateOne {
	_u.mutation.AddProcessedRows(v)
	return _u
}

// SetSuccessfulRows sets the "successful_rows" field.
func (_u *UploadJobUpdateOne) SetSuccessfulRows(v int) *UploadJobUpdateOne {
	_u.mutation.ResetSuccessfulRows()
	_u.mutation.SetSuccessfulRows(v)
	return _u
}

// SetNillableSuccessfulRows sets the "successful_rows" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableSuccessfulRows(v *int) *UploadJobUpdateOne {
	if v != nil {
		_u.SetSuccessfulRows(*v)
	}
	return _u
}

// AddSuccessfulRows adds value to the "successful_rows" field.
func (_u *UploadJobUpdateOne) AddSuccessfulRows(v int) *UploadJobUpdateOne {
	_u.mutation.AddSuccessfulRows(v)
	return _u
}

// SetFailedRows sets the "failed_rows" field.
func (_u *UploadJobUpdateOne) SetFailedRows(v int) *UploadJobUpdateOne {
	_u.mutation.ResetFailedRows()
	_u.mutation.SetFailedRows(v)
	return _u
}

// SetNillableFailedRows sets the "failed_rows" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableFailedRows(v *int) *UploadJobUpdateOne {
	if v != nil {
		_u.SetFailedRows(*v)
	}
	return _u
}

// AddFailedRows adds value to the "failed_rows" field.
func (_u *UploadJobUpdateOne) AddFailedRows(v int) *UploadJobUpdateOne {
	_u.mutation.AddFailedRows(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *UploadJobUpdateOne) SetErrorMessage(v string) *UploadJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableErrorMessage(v *string) *UploadJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *UploadJobUpdateOne) ClearErrorMessage() *UploadJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorDetails sets the "error_details" field.
func (_u *UploadJobUpdateOne) SetErrorDetails(v json.RawMessage) *UploadJobUpdateOne {
	_u.mutation.SetErrorDetails(v)
	return _u
}

// AppendErrorDetails appends value to the "error_details" field.
func (_u *UploadJobUpdateOne) AppendErrorDetails(v json.RawMessage) *UploadJobUpdateOne {
	_u.mutation.AppendErrorDetails(v)
	return _u
}

// ClearErrorDetails clears the value of the "error_details" field.
func (_u *UploadJobUpdateOne) ClearErrorDetails() *UploadJobUpdateOne {
	_u.mutation.ClearErrorDetails()
	return _u
}

// SetScopeType sets the "scope_type" field.
func (_u *UploadJobUpdateOne) SetScopeType(v string) *UploadJobUpdateOne {
	_u.mutation.SetScopeType(v)
	return _u
}

// SetNillableScopeType sets the "scope_type" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableScopeType(v *string) *UploadJobUpdateOne {
	if v != nil {
		_u.SetScopeType(*v)
	}
	return _u
}

// SetScopeID sets the "scope_id" field.
func (_u *UploadJobUpdateOne) SetScopeID(v uuid.UUID) *UploadJobUpdateOne {
	_u.mutation.SetScopeID(v)
	return _u
}

// SetNillableScopeID sets the "scope_id" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableScopeID(v *uuid.UUID) *UploadJobUpdateOne {
	if v != nil {
		_u.SetScopeID(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *UploadJobUpdateOne) SetStartedAt(v time.Time) *UploadJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableStartedAt(v *time.Time) *UploadJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *UploadJobUpdateOne) ClearStartedAt() *UploadJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *UploadJobUpdateOne) SetCompletedAt(v time.Time) *UploadJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableCompletedAt(v *time.Time) *UploadJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *UploadJobUpdateOne) ClearCompletedAt() *UploadJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UploadJobUpdateOne) SetCreatedAt(v time.Time) *UploadJobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableCreatedAt(v *time.Time) *UploadJobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddChunkReportIDs adds the "chunk_reports" edge to the ChunkReport entity by IDs.
func (_u *UploadJobUpdateOne) AddChunkReportIDs(ids ...uuid.UUID) *UploadJobUpdateOne {
	_u.mutation.AddChunkReportIDs(ids...)
	return _u
}

// AddChunkReports adds the "chunk_reports" edges to the ChunkReport entity.
func (_u *UploadJobUpdateOne) AddChunkReports(v ...*ChunkReport) *UploadJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChunkReportIDs(ids...)
}

// Mutation returns the UploadJobMutation object of the builder.
func (_u *UploadJobUpdateOne) Mutation() *UploadJobMutation {
	return _u.mutation
}

// ClearChunkReports clears all "chunk_reports" edges to the ChunkReport entity.
func (_u *UploadJobUpdateOne) ClearChunkReports() *UploadJobUpdateOne {
	_u.mutation.ClearChunkReports()
	return _u
}

// RemoveChunkReportIDs removes the "chunk_reports" edge to ChunkReport entities by IDs.
func (_u *UploadJobUpdateOne) RemoveChunkReportIDs(ids ...uuid.UUID) *UploadJobUpdateOne {
	_u.mutation.RemoveChunkReportIDs(ids...)
	return _u
}

// RemoveChunkReports removes "chunk_reports" edges to ChunkReport entities.
func (_u *UploadJobUpdateOne) RemoveChunkReports(v ...*ChunkReport) *UploadJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChunkReportIDs(ids...)
}

// Where appends a list predicates to the UploadJobUpdate builder.
func (_u *UploadJobUpdateOne) Where(ps ...predicate.UploadJob) *UploadJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UploadJobUpdateOne) Select(field string, fields ...string) *UploadJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UploadJob entity.
func (_u *UploadJobUpdateOne) Save(ctx context.Context) (*UploadJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadJobUpdateOne) SaveX(ctx context.Context) *UploadJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UploadJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := uploadjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UploadJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScopeType(); ok {
		if err := uploadjob.ScopeTypeValidator(v); err != nil {
			return &ValidationError{Name: "scope_type", err: fmt.Errorf(`ent: validator failed for field "UploadJob.scope_type": %w`, err)}
		}
	}
	return nil
}

func (_u *UploadJobUpdateOne) sqlSave(ctx context.Context) (_node *UploadJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uploadjob.Table, uploadjob.Columns, sqlgraph.NewFieldSpec(uploadjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UploadJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, uploadjob.FieldID)
		for _, f := range fields {
			if !uploadjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != uploadjob.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(uploadjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalRows(); ok {
		_spec.SetField(uploadjob.FieldTotalRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalRows(); ok {
		_spec.AddField(uploadjob.FieldTotalRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalChunks(); ok {
		_spec.SetField(uploadjob.FieldTotalChunks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalChunks(); ok {
		_spec.AddField(uploadjob.FieldTotalChunks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedChunks(); ok {
		_spec.SetField(uploadjob.FieldCompletedChunks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedChunks(); ok {
		_spec.AddField(uploadjob.FieldCompletedChunks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedRows(); ok {
		_spec.SetField(uploadjob.FieldProcessedRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedRows(); ok {
		_spec.AddField(uploadjob.FieldProcessedRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessfulRows(); ok {
		_spec.SetField(uploadjob.FieldSuccessfulRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessfulRows(); ok {
		_spec.AddField(uploadjob.FieldSuccessfulRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedRows(); ok {
		_spec.SetField(uploadjob.FieldFailedRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedRows(); ok {
		_spec.AddField(uploadjob.FieldFailedRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(uploadjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(uploadjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorDetails(); ok {
		_spec.SetField(uploadjob.FieldErrorDetails, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedErrorDetails(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, uploadjob.FieldErrorDetails, value)
		})
	}
	if _u.mutation.ErrorDetailsCleared() {
		_spec.ClearField(uploadjob.FieldErrorDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScopeType(); ok {
		_spec.SetField(uploadjob.FieldScopeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScopeID(); ok {
		_spec.SetField(uploadjob.FieldScopeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(uploadjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(uploadjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(uploadjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(uploadjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(uploadjob.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ChunkReportsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChunkReportsIDs(); len(nodes) > 0 && !_u.mutation.ChunkReportsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChunkReportsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UploadJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uploadjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
