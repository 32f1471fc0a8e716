// Code generated by ent, DO NOT EDIT.

package quarterlyprediction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the quarterlyprediction type in the database.
	Label = "quarterly_prediction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldReportingYear holds the string denoting the reporting_year field in the database.
	FieldReportingYear = "reporting_year"
	// FieldReportingQuarter holds the string denoting the reporting_quarter field in the database.
	FieldReportingQuarter = "reporting_quarter"
	// FieldRatios holds the string denoting the ratios field in the database.
	FieldRatios = "ratios"
	// FieldLogitProbability holds the string denoting the logit_probability field in the database.
	FieldLogitProbability = "logit_probability"
	// FieldGbmProbability holds the string denoting the gbm_probability field in the database.
	FieldGbmProbability = "gbm_probability"
	// FieldEnsembleProbability holds the string denoting the ensemble_probability field in the database.
	FieldEnsembleProbability = "ensemble_probability"
	// FieldRiskLevel holds the string denoting the risk_level field in the database.
	FieldRiskLevel = "risk_level"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldChunkIndex holds the string denoting the chunk_index field in the database.
	FieldChunkIndex = "chunk_index"
	// FieldRowIndex holds the string denoting the row_index field in the database.
	FieldRowIndex = "row_index"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeCompany holds the string denoting the company edge name in mutations.
	EdgeCompany = "company"
	// Table holds the table name of the quarterlyprediction in the database.
	Table = "quarterly_prediction"
	// CompanyTable is the table that holds the company relation/edge.
	CompanyTable = "quarterly_prediction"
	// CompanyInverseTable is the table name for the Company entity.
	// It exists in this package in order to avoid circular dependency with the "company" package.
	CompanyInverseTable = "company"
	// CompanyColumn is the table column denoting the company relation/edge.
	CompanyColumn = "company_id"
)

// Columns holds all SQL columns for quarterlyprediction fields.
var Columns = []string{
	FieldID,
	FieldCompanyID,
	FieldReportingYear,
	FieldReportingQuarter,
	FieldRatios,
	FieldLogitProbability,
	FieldGbmProbability,
	FieldEnsembleProbability,
	FieldRiskLevel,
	FieldConfidence,
	FieldJobID,
	FieldChunkIndex,
	FieldRowIndex,
	FieldCreatedAt,
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
	// ReportingYearValidator is a validator for the "reporting_year" field. It is called by the builders before save.
	ReportingYearValidator func(int) error
	// ReportingQuarterValidator is a validator for the "reporting_quarter" field. It is called by the builders before save.
	ReportingQuarterValidator func(int) error
	// RiskLevelValidator is a validator for the "risk_level" field. It is called by the builders before save.
	RiskLevelValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the QuarterlyPrediction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByReportingYear orders the results by the reporting_year field.
func ByReportingYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportingYear, opts...).ToFunc()
}

// ByReportingQuarter orders the results by the reporting_quarter field.
func ByReportingQuarter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportingQuarter, opts...).ToFunc()
}

// ByLogitProbability orders the results by the logit_probability field.
func ByLogitProbability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogitProbability, opts...).ToFunc()
}

// ByGbmProbability orders the results by the gbm_probability field.
func ByGbmProbability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGbmProbability, opts...).ToFunc()
}

// ByEnsembleProbability orders the results by the ensemble_probability field.
func ByEnsembleProbability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnsembleProbability, opts...).ToFunc()
}

// ByRiskLevel orders the results by the risk_level field.
func ByRiskLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskLevel, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByChunkIndex orders the results by the chunk_index field.
func ByChunkIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChunkIndex, opts...).ToFunc()
}

// ByRowIndex orders the results by the row_index field.
func ByRowIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRowIndex, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompanyField orders the results by company field.
func ByCompanyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCompanyStep(), sql.OrderByField(field, opts...))
	}
}
func newCompanyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CompanyInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
	)
}
