// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/seyi-adeleke/riskscore/gen/ent/chunkreport"
	"github.com/seyi-adeleke/riskscore/gen/ent/uploadjob"
)

// ChunkReport is the model entity for the ChunkReport schema.
type ChunkReport struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// ChunkIndex holds the value of the "chunk_index" field.
	ChunkIndex int `json:"chunk_index,omitempty"`
	// RowsProcessed holds the value of the "rows_processed" field.
	RowsProcessed int `json:"rows_processed,omitempty"`
	// RowsSuccessful holds the value of the "rows_successful" field.
	RowsSuccessful int `json:"rows_successful,omitempty"`
	// RowsFailed holds the value of the "rows_failed" field.
	RowsFailed int `json:"rows_failed,omitempty"`
	// ReportedAt holds the value of the "reported_at" field.
	ReportedAt time.Time `json:"reported_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChunkReportQuery when eager-loading is set.
	Edges        ChunkReportEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChunkReportEdges holds the relations/edges for other nodes in the graph.
type ChunkReportEdges struct {
	// Job holds the value of the job edge.
	Job *UploadJob `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChunkReportEdges) JobOrErr() (*UploadJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: uploadjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChunkReport) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chunkreport.FieldChunkIndex, chunkreport.FieldRowsProcessed, chunkreport.FieldRowsSuccessful, chunkreport.FieldRowsFailed:
			values[i] = new(sql.NullInt64)
		case chunkreport.FieldReportedAt:
			values[i] = new(sql.NullTime)
		case chunkreport.FieldID, chunkreport.FieldJobID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChunkReport fields.
func (_m *ChunkReport) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chunkreport.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case chunkreport.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case chunkreport.FieldChunkIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chunk_index", values[i])
			} else if value.Valid {
				_m.ChunkIndex = int(value.Int64)
			}
		case chunkreport.FieldRowsProcessed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rows_processed", values[i])
			} else if value.Valid {
				_m.RowsProcessed = int(value.Int64)
			}
		case chunkreport.FieldRowsSuccessful:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rows_successful", values[i])
			} else if value.Valid {
				_m.RowsSuccessful = int(value.Int64)
			}
		case chunkreport.FieldRowsFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rows_failed", values[i])
			} else if value.Valid {
				_m.RowsFailed = int(value.Int64)
			}
		case chunkreport.FieldReportedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reported_at", values[i])
			} else if value.Valid {
				_m.ReportedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ChunkReport.
// This includes values selected through modifiers, order, etc.
func (_m *ChunkReport) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the ChunkReport entity.
func (_m *ChunkReport) QueryJob() *UploadJobQuery {
	return NewChunkReportClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this ChunkReport.
// Note that you need to call ChunkReport.Unwrap() before calling this method if this ChunkReport
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChunkReport) Update() *ChunkReportUpdateOne {
	return NewChunkReportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChunkReport entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChunkReport) Unwrap() *ChunkReport {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChunkReport is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChunkReport) String() string {
	var builder strings.Builder
	builder.WriteString("ChunkReport(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("chunk_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChunkIndex))
	builder.WriteString(", ")
	builder.WriteString("rows_processed=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowsProcessed))
	builder.WriteString(", ")
	builder.WriteString("rows_successful=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowsSuccessful))
	builder.WriteString(", ")
	builder.WriteString("rows_failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowsFailed))
	builder.WriteString(", ")
	builder.WriteString("reported_at=")
	builder.WriteString(_m.ReportedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ChunkReports is a parsable slice of ChunkReport.
type ChunkReports []*ChunkReport
