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
	"github.com/seyi-adeleke/riskscore/gen/ent/annualprediction"
	"github.com/seyi-adeleke/riskscore/gen/ent/company"
)

// AnnualPrediction is the model entity for the AnnualPrediction schema.
type AnnualPrediction struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID uuid.UUID `json:"company_id,omitempty"`
	// ReportingYear holds the value of the "reporting_year" field.
	ReportingYear int `json:"reporting_year,omitempty"`
	// Ratios holds the value of the "ratios" field.
	Ratios map[string]string `json:"ratios,omitempty"`
	// Probability holds the value of the "probability" field.
	Probability float64 `json:"probability,omitempty"`
	// RiskLevel holds the value of the "risk_level" field.
	RiskLevel string `json:"risk_level,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// ChunkIndex holds the value of the "chunk_index" field.
	ChunkIndex int `json:"chunk_index,omitempty"`
	// RowIndex holds the value of the "row_index" field.
	RowIndex int `json:"row_index,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnnualPredictionQuery when eager-loading is set.
	Edges        AnnualPredictionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnnualPredictionEdges holds the relations/edges for other nodes in the graph.
type AnnualPredictionEdges struct {
	// Company holds the value of the company edge.
	Company *Company `json:"company,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CompanyOrErr returns the Company value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnnualPredictionEdges) CompanyOrErr() (*Company, error) {
	if e.Company != nil {
		return e.Company, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "company"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnnualPrediction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case annualprediction.FieldRatios:
			values[i] = new([]byte)
		case annualprediction.FieldProbability, annualprediction.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case annualprediction.FieldReportingYear, annualprediction.FieldChunkIndex, annualprediction.FieldRowIndex:
			values[i] = new(sql.NullInt64)
		case annualprediction.FieldRiskLevel:
			values[i] = new(sql.NullString)
		case annualprediction.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case annualprediction.FieldID, annualprediction.FieldCompanyID, annualprediction.FieldJobID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnnualPrediction fields.
func (_m *AnnualPrediction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case annualprediction.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case annualprediction.FieldCompanyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value != nil {
				_m.CompanyID = *value
			}
		case annualprediction.FieldReportingYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reporting_year", values[i])
			} else if value.Valid {
				_m.ReportingYear = int(value.Int64)
			}
		case annualprediction.FieldRatios:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ratios", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Ratios); err != nil {
					return fmt.Errorf("unmarshal field ratios: %w", err)
				}
			}
		case annualprediction.FieldProbability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field probability", values[i])
			} else if value.Valid {
				_m.Probability = value.Float64
			}
		case annualprediction.FieldRiskLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_level", values[i])
			} else if value.Valid {
				_m.RiskLevel = value.String
			}
		case annualprediction.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case annualprediction.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case annualprediction.FieldChunkIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chunk_index", values[i])
			} else if value.Valid {
				_m.ChunkIndex = int(value.Int64)
			}
		case annualprediction.FieldRowIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field row_index", values[i])
			} else if value.Valid {
				_m.RowIndex = int(value.Int64)
			}
		case annualprediction.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AnnualPrediction.
// This includes values selected through modifiers, order, etc.
func (_m *AnnualPrediction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCompany queries the "company" edge of the AnnualPrediction entity.
func (_m *AnnualPrediction) QueryCompany() *CompanyQuery {
	return NewAnnualPredictionClient(_m.config).QueryCompany(_m)
}

// Update returns a builder for updating this AnnualPrediction.
// Note that you need to call AnnualPrediction.Unwrap() before calling this method if this AnnualPrediction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnnualPrediction) Update() *AnnualPredictionUpdateOne {
	return NewAnnualPredictionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnnualPrediction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnnualPrediction) Unwrap() *AnnualPrediction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnnualPrediction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnnualPrediction) String() string {
	var builder strings.Builder
	builder.WriteString("AnnualPrediction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanyID))
	builder.WriteString(", ")
	builder.WriteString("reporting_year=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReportingYear))
	builder.WriteString(", ")
	builder.WriteString("ratios=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ratios))
	builder.WriteString(", ")
	builder.WriteString("probability=")
	builder.WriteString(fmt.Sprintf("%v", _m.Probability))
	builder.WriteString(", ")
	builder.WriteString("risk_level=")
	builder.WriteString(_m.RiskLevel)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("chunk_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChunkIndex))
	builder.WriteString(", ")
	builder.WriteString("row_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowIndex))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AnnualPredictions is a parsable slice of AnnualPrediction.
type AnnualPredictions []*AnnualPrediction
