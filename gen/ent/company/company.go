// Code generated by ent, DO NOT EDIT.

package company

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the company type in the database.
	Label = "company"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSymbol holds the string denoting the symbol field in the database.
	FieldSymbol = "symbol"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSector holds the string denoting the sector field in the database.
	FieldSector = "sector"
	// FieldMarketCap holds the string denoting the market_cap field in the database.
	FieldMarketCap = "market_cap"
	// FieldScopeType holds the string denoting the scope_type field in the database.
	FieldScopeType = "scope_type"
	// FieldScopeID holds the string denoting the scope_id field in the database.
	FieldScopeID = "scope_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAnnualPredictions holds the string denoting the annual_predictions edge name in mutations.
	EdgeAnnualPredictions = "annual_predictions"
	// EdgeQuarterlyPredictions holds the string denoting the quarterly_predictions edge name in mutations.
	EdgeQuarterlyPredictions = "quarterly_predictions"
	// Table holds the table name of the company in the database.
	Table = "company"
	// AnnualPredictionsTable is the table that holds the annual_predictions relation/edge.
	AnnualPredictionsTable = "annual_prediction"
	// AnnualPredictionsInverseTable is the table name for the AnnualPrediction entity.
	// It exists in this package in order to avoid circular dependency with the "annualprediction" package.
	AnnualPredictionsInverseTable = "annual_prediction"
	// AnnualPredictionsColumn is the table column denoting the annual_predictions relation/edge.
	AnnualPredictionsColumn = "company_id"
	// QuarterlyPredictionsTable is the table that holds the quarterly_predictions relation/edge.
	QuarterlyPredictionsTable = "quarterly_prediction"
	// QuarterlyPredictionsInverseTable is the table name for the QuarterlyPrediction entity.
	// It exists in this package in order to avoid circular dependency with the "quarterlyprediction" package.
	QuarterlyPredictionsInverseTable = "quarterly_prediction"
	// QuarterlyPredictionsColumn is the table column denoting the quarterly_predictions relation/edge.
	QuarterlyPredictionsColumn = "company_id"
)

// Columns holds all SQL columns for company fields.
var Columns = []string{
	FieldID,
	FieldSymbol,
	FieldName,
	FieldSector,
	FieldMarketCap,
	FieldScopeType,
	FieldScopeID,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SymbolValidator is a validator for the "symbol" field. It is called by the builders before save.
	SymbolValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// ScopeTypeValidator is a validator for the "scope_type" field. It is called by the builders before save.
	ScopeTypeValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Company queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySymbol orders the results by the symbol field.
func BySymbol(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSymbol, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySector orders the results by the sector field.
func BySector(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSector, opts...).ToFunc()
}

// ByMarketCap orders the results by the market_cap field.
func ByMarketCap(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarketCap, opts...).ToFunc()
}

// ByScopeType orders the results by the scope_type field.
func ByScopeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScopeType, opts...).ToFunc()
}

// ByScopeID orders the results by the scope_id field.
func ByScopeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScopeID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAnnualPredictionsCount orders the results by annual_predictions count.
func ByAnnualPredictionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAnnualPredictionsStep(), opts...)
	}
}

// ByAnnualPredictions orders the results by annual_predictions terms.
func ByAnnualPredictions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnnualPredictionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByQuarterlyPredictionsCount orders the results by quarterly_predictions count.
func ByQuarterlyPredictionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQuarterlyPredictionsStep(), opts...)
	}
}

// ByQuarterlyPredictions orders the results by quarterly_predictions terms.
func ByQuarterlyPredictions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuarterlyPredictionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAnnualPredictionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnnualPredictionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AnnualPredictionsTable, AnnualPredictionsColumn),
	)
}
func newQuarterlyPredictionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuarterlyPredictionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QuarterlyPredictionsTable, QuarterlyPredictionsColumn),
	)
}
