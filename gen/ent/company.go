// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/seyi-adeleke/riskscore/gen/ent/company"
)

// Company is the model entity for the Company schema.
type Company struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Symbol holds the value of the "symbol" field.
	Symbol string `json:"symbol,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Sector holds the value of the "sector" field.
	Sector *string `json:"sector,omitempty"`
	// MarketCap holds the value of the "market_cap" field.
	MarketCap *float64 `json:"market_cap,omitempty"`
	// ScopeType holds the value of the "scope_type" field.
	ScopeType string `json:"scope_type,omitempty"`
	// ScopeID holds the value of the "scope_id" field.
	ScopeID uuid.UUID `json:"scope_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CompanyQuery when eager-loading is set.
	Edges        CompanyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CompanyEdges holds the relations/edges for other nodes in the graph.
type CompanyEdges struct {
	// AnnualPredictions holds the value of the annual_predictions edge.
	AnnualPredictions []*AnnualPrediction `json:"annual_predictions,omitempty"`
	// QuarterlyPredictions holds the value of the quarterly_predictions edge.
	QuarterlyPredictions []*QuarterlyPrediction `json:"quarterly_predictions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AnnualPredictionsOrErr returns the AnnualPredictions value or an error if the edge
// was not loaded in eager-loading.
func (e CompanyEdges) AnnualPredictionsOrErr() ([]*AnnualPrediction, error) {
	if e.loadedTypes[0] {
		return e.AnnualPredictions, nil
	}
	return nil, &NotLoadedError{edge: "annual_predictions"}
}

// QuarterlyPredictionsOrErr returns the QuarterlyPredictions value or an error if the edge
// was not loaded in eager-loading.
func (e CompanyEdges) QuarterlyPredictionsOrErr() ([]*QuarterlyPrediction, error) {
	if e.loadedTypes[1] {
		return e.QuarterlyPredictions, nil
	}
	return nil, &NotLoadedError{edge: "quarterly_predictions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Company) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case company.FieldMarketCap:
			values[i] = new(sql.NullFloat64)
		case company.FieldSymbol, company.FieldName, company.FieldSector, company.FieldScopeType:
			values[i] = new(sql.NullString)
		case company.FieldCreatedAt, company.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case company.FieldID, company.FieldScopeID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Company fields.
func (_m *Company) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case company.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case company.FieldSymbol:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field symbol", values[i])
			} else if value.Valid {
				_m.Symbol = value.String
			}
		case company.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case company.FieldSector:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sector", values[i])
			} else if value.Valid {
				_m.Sector = new(string)
				*_m.Sector = value.String
			}
		case company.FieldMarketCap:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field market_cap", values[i])
			} else if value.Valid {
				_m.MarketCap = new(float64)
				*_m.MarketCap = value.Float64
			}
		case company.FieldScopeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope_type", values[i])
			} else if value.Valid {
				_m.ScopeType = value.String
			}
		case company.FieldScopeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field scope_id", values[i])
			} else if value != nil {
				_m.ScopeID = *value
			}
		case company.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case company.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Company.
// This includes values selected through modifiers, order, etc.
func (_m *Company) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAnnualPredictions queries the "annual_predictions" edge of the Company entity.
func (_m *Company) QueryAnnualPredictions() *AnnualPredictionQuery {
	return NewCompanyClient(_m.config).QueryAnnualPredictions(_m)
}

// QueryQuarterlyPredictions queries the "quarterly_predictions" edge of the Company entity.
func (_m *Company) QueryQuarterlyPredictions() *QuarterlyPredictionQuery {
	return NewCompanyClient(_m.config).QueryQuarterlyPredictions(_m)
}

// Update returns a builder for updating this Company.
// Note that you need to call Company.Unwrap() before calling this method if this Company
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Company) Update() *CompanyUpdateOne {
	return NewCompanyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Company entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Company) Unwrap() *Company {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Company is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Company) String() string {
	var builder strings.Builder
	builder.WriteString("Company(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("symbol=")
	builder.WriteString(_m.Symbol)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Sector; v != nil {
		builder.WriteString("sector=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MarketCap; v != nil {
		builder.WriteString("market_cap=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("scope_type=")
	builder.WriteString(_m.ScopeType)
	builder.WriteString(", ")
	builder.WriteString("scope_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScopeID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Companies is a parsable slice of Company.
type Companies []*Company
