// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/seyi-adeleke/riskscore/gen/ent/uploadjob"
)

// UploadJob is the model entity for the UploadJob schema.
type UploadJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobType holds the value of the "job_type" field.
	JobType string `json:"job_type,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// TotalRows holds the value of the "total_rows" field.
	TotalRows int `json:"total_rows,omitempty"`
	// TotalChunks holds the value of the "total_chunks" field.
	TotalChunks int `json:"total_chunks,omitempty"`
	// CompletedChunks holds the value of the "completed_chunks" field.
	CompletedChunks int `json:"completed_chunks,omitempty"`
	// ProcessedRows holds the value of the "processed_rows" field.
	ProcessedRows int `json:"processed_rows,omitempty"`
	// SuccessfulRows holds the value of the "successful_rows" field.
	SuccessfulRows int `json:"successful_rows,omitempty"`
	// FailedRows holds the value of the "failed_rows" field.
	FailedRows int `json:"failed_rows,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// ErrorDetails holds the value of the "error_details" field.
	ErrorDetails json.RawMessage `json:"error_details,omitempty"`
	// ScopeType holds the value of the "scope_type" field.
	ScopeType string `json:"scope_type,omitempty"`
	// ScopeID holds the value of the "scope_id" field.
	ScopeID uuid.UUID `json:"scope_id,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UploadJobQuery when eager-loading is set.
	Edges        UploadJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UploadJobEdges holds the relations/edges for other nodes in the graph.
type UploadJobEdges struct {
	// ChunkReports holds the value of the chunk_reports edge.
	ChunkReports []*ChunkReport `json:"chunk_reports,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ChunkReportsOrErr returns the ChunkReports value or an error if the edge
// was not loaded in eager-loading.
func (e UploadJobEdges) ChunkReportsOrErr() ([]*ChunkReport, error) {
	if e.loadedTypes[0] {
		return e.ChunkReports, nil
	}
	return nil, &NotLoadedError{edge: "chunk_reports"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UploadJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case uploadjob.FieldErrorDetails:
			values[i] = new([]byte)
		case uploadjob.FieldTotalRows, uploadjob.FieldTotalChunks, uploadjob.FieldCompletedChunks, uploadjob.FieldProcessedRows, uploadjob.FieldSuccessfulRows, uploadjob.FieldFailedRows:
			values[i] = new(sql.NullInt64)
		case uploadjob.FieldJobType, uploadjob.FieldStatus, uploadjob.FieldErrorMessage, uploadjob.FieldScopeType:
			values[i] = new(sql.NullString)
		case uploadjob.FieldStartedAt, uploadjob.FieldCompletedAt, uploadjob.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case uploadjob.FieldID, uploadjob.FieldScopeID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UploadJob fields.
func (_m *UploadJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case uploadjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case uploadjob.FieldJobType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_type", values[i])
			} else if value.Valid {
				_m.JobType = value.String
			}
		case uploadjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case uploadjob.FieldTotalRows:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_rows", values[i])
			} else if value.Valid {
				_m.TotalRows = int(value.Int64)
			}
		case uploadjob.FieldTotalChunks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_chunks", values[i])
			} else if value.Valid {
				_m.TotalChunks = int(value.Int64)
			}
		case uploadjob.FieldCompletedChunks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_chunks", values[i])
			} else if value.Valid {
				_m.CompletedChunks = int(value.Int64)
			}
		case uploadjob.FieldProcessedRows:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processed_rows", values[i])
			} else if value.Valid {
				_m.ProcessedRows = int(value.Int64)
			}
		case uploadjob.FieldSuccessfulRows:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field successful_rows", values[i])
			} else if value.Valid {
				_m.SuccessfulRows = int(value.Int64)
			}
		case uploadjob.FieldFailedRows:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed_rows", values[i])
			} else if value.Valid {
				_m.FailedRows = int(value.Int64)
			}
		case uploadjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case uploadjob.FieldErrorDetails:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field error_details", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ErrorDetails); err != nil {
					return fmt.Errorf("unmarshal field error_details: %w", err)
				}
			}
		case uploadjob.FieldScopeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope_type", values[i])
			} else if value.Valid {
				_m.ScopeType = value.String
			}
		case uploadjob.FieldScopeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field scope_id", values[i])
			} else if value != nil {
				_m.ScopeID = *value
			}
		case uploadjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case uploadjob.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case uploadjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UploadJob.
// This includes values selected through modifiers, order, etc.
func (_m *UploadJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChunkReports queries the "chunk_reports" edge of the UploadJob entity.
func (_m *UploadJob) QueryChunkReports() *ChunkReportQuery {
	return NewUploadJobClient(_m.config).QueryChunkReports(_m)
}

// Update returns a builder for updating this UploadJob.
// Note that you need to call UploadJob.Unwrap() before calling this method if this UploadJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UploadJob) Update() *UploadJobUpdateOne {
	return NewUploadJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UploadJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UploadJob) Unwrap() *UploadJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UploadJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UploadJob) String() string {
	var builder strings.Builder
	builder.WriteString("UploadJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_type=")
	builder.WriteString(_m.JobType)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("total_rows=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalRows))
	builder.WriteString(", ")
	builder.WriteString("total_chunks=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalChunks))
	builder.WriteString(", ")
	builder.WriteString("completed_chunks=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedChunks))
	builder.WriteString(", ")
	builder.WriteString("processed_rows=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessedRows))
	builder.WriteString(", ")
	builder.WriteString("successful_rows=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuccessfulRows))
	builder.WriteString(", ")
	builder.WriteString("failed_rows=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedRows))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("error_details=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorDetails))
	builder.WriteString(", ")
	builder.WriteString("scope_type=")
	builder.WriteString(_m.ScopeType)
	builder.WriteString(", ")
	builder.WriteString("scope_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScopeID))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UploadJobs is a parsable slice of UploadJob.
type UploadJobs []*UploadJob
