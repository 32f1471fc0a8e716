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
	"github.com/seyi-adeleke/riskscore/gen/ent/company"
	"github.com/seyi-adeleke/riskscore/gen/ent/quarterlyprediction"
)

// QuarterlyPrediction is the model entity for the QuarterlyPrediction schema.
type QuarterlyPrediction struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID uuid.UUID `json:"company_id,omitempty"`
	// ReportingYear holds the value of the "reporting_year" field.
	ReportingYear int `json:"reporting_year,omitempty"`
	// ReportingQuarter holds the value of the "reporting_quarter" field.
	ReportingQuarter int `json:"reporting_quarter,omitempty"`
	// Ratios holds the value of the "ratios" field.
	Ratios map[string]string `json:"ratios,omitempty"`
	// LogitProbability holds the value of the "logit_probability" field.
	LogitProbability float64 `json:"logit_probability,omitempty"`
	// GbmProbability holds the value of the "gbm_probability" field.
	GbmProbability float64 `json:"gbm_probability,omitempty"`
	// EnsembleProbability holds the value of the "ensemble_probability" field.
	EnsembleProbability float64 `json:"ensemble_probability,omitempty"`
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
	// The values are being populated by the QuarterlyPredictionQuery when eager-loading is set.
	Edges        QuarterlyPredictionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuarterlyPredictionEdges holds the relations/edges for other nodes in the graph.
type QuarterlyPredictionEdges struct {
	// Company holds the value of the company edge.
	Company *Company `json:"company,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CompanyOrErr returns the Company value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuarterlyPredictionEdges) CompanyOrErr() (*Company, error) {
	if e.Company != nil {
		return e.Company, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "company"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuarterlyPrediction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quarterlyprediction.FieldRatios:
			values[i] = new([]byte)
		case quarterlyprediction.FieldLogitProbability, quarterlyprediction.FieldGbmProbability, quarterlyprediction.FieldEnsembleProbability, quarterlyprediction.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case quarterlyprediction.FieldReportingYear, quarterlyprediction.FieldReportingQuarter, quarterlyprediction.FieldChunkIndex, quarterlyprediction.FieldRowIndex:
			values[i] = new(sql.NullInt64)
		case quarterlyprediction.FieldRiskLevel:
			values[i] = new(sql.NullString)
		case quarterlyprediction.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case quarterlyprediction.FieldID, quarterlyprediction.FieldCompanyID, quarterlyprediction.FieldJobID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuarterlyPrediction fields.
func (_m *QuarterlyPrediction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quarterlyprediction.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case quarterlyprediction.FieldCompanyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value != nil {
				_m.CompanyID = *value
			}
		case quarterlyprediction.FieldReportingYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reporting_year", values[i])
			} else if value.Valid {
				_m.ReportingYear = int(value.Int64)
			}
		case quarterlyprediction.FieldReportingQuarter:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reporting_quarter", values[i])
			} else if value.Valid {
				_m.ReportingQuarter = int(value.Int64)
			}
		case quarterlyprediction.FieldRatios:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ratios", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Ratios); err != nil {
					return fmt.Errorf("unmarshal field ratios: %w", err)
				}
			}
		case quarterlyprediction.FieldLogitProbability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field logit_probability", values[i])
			} else if value.Valid {
				_m.LogitProbability = value.Float64
			}
		case quarterlyprediction.FieldGbmProbability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field gbm_probability", values[i])
			} else if value.Valid {
				_m.GbmProbability = value.Float64
			}
		case quarterlyprediction.FieldEnsembleProbability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ensemble_probability", values[i])
			} else if value.Valid {
				_m.EnsembleProbability = value.Float64
			}
		case quarterlyprediction.FieldRiskLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_level", values[i])
			} else if value.Valid {
				_m.RiskLevel = value.String
			}
		case quarterlyprediction.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case quarterlyprediction.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case quarterlyprediction.FieldChunkIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chunk_index", values[i])
			} else if value.Valid {
				_m.ChunkIndex = int(value.Int64)
			}
		case quarterlyprediction.FieldRowIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field row_index", values[i])
			} else if value.Valid {
				_m.RowIndex = int(value.Int64)
			}
		case quarterlyprediction.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the QuarterlyPrediction.
// This includes values selected through modifiers, order, etc.
func (_m *QuarterlyPrediction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCompany queries the "company" edge of the QuarterlyPrediction entity.
func (_m *QuarterlyPrediction) QueryCompany() *CompanyQuery {
	return NewQuarterlyPredictionClient(_m.config).QueryCompany(_m)
}

// Update returns a builder for updating this QuarterlyPrediction.
// Note that you need to call QuarterlyPrediction.Unwrap() before calling this method if this QuarterlyPrediction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuarterlyPrediction) Update() *QuarterlyPredictionUpdateOne {
	return NewQuarterlyPredictionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuarterlyPrediction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuarterlyPrediction) Unwrap() *QuarterlyPrediction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuarterlyPrediction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuarterlyPrediction) String() string {
	var builder strings.Builder
	builder.WriteString("QuarterlyPrediction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanyID))
	builder.WriteString(", ")
	builder.WriteString("reporting_year=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReportingYear))
	builder.WriteString(", ")
	builder.WriteString("reporting_quarter=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReportingQuarter))
	builder.WriteString(", ")
	builder.WriteString("ratios=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ratios))
	builder.WriteString(", ")
	builder.WriteString("logit_probability=")
	builder.WriteString(fmt.Sprintf("%v", _m.LogitProbability))
	builder.WriteString(", ")
	builder.WriteString("gbm_probability=")
	builder.WriteString(fmt.Sprintf("%v", _m.GbmProbability))
	builder.WriteString(", ")
	builder.WriteString("ensemble_probability=")
	builder.WriteString(fmt.Sprintf("%v", _m.EnsembleProbability))
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

// QuarterlyPredictions is a parsable slice of QuarterlyPrediction.
type QuarterlyPredictions []*QuarterlyPrediction
