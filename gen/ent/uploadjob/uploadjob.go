// Code generated by ent, DO NOT EDIT.

package uploadjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the uploadjob type in the database.
	Label = "upload_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobType holds the string denoting the job_type field in the database.
	FieldJobType = "job_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTotalRows holds the string denoting the total_rows field in the database.
	FieldTotalRows = "total_rows"
	// FieldTotalChunks holds the string denoting the total_chunks field in the database.
	FieldTotalChunks = "total_chunks"
	// FieldCompletedChunks holds the string denoting the completed_chunks field in the database.
	FieldCompletedChunks = "completed_chunks"
	// FieldProcessedRows holds the string denoting the processed_rows field in the database.
	FieldProcessedRows = "processed_rows"
	// FieldSuccessfulRows holds the string denoting the successful_rows field in the database.
	FieldSuccessfulRows = "successful_rows"
	// FieldFailedRows holds the string denoting the failed_rows field in the database.
	FieldFailedRows = "failed_rows"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldErrorDetails holds the string denoting the error_details field in the database.
	FieldErrorDetails = "error_details"
	// FieldScopeType holds the string denoting the scope_type field in the database.
	FieldScopeType = "scope_type"
	// FieldScopeID holds the string denoting the scope_id field in the database.
	FieldScopeID = "scope_id"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeChunkReports holds the string denoting the chunk_reports edge name in mutations.
	EdgeChunkReports = "chunk_reports"
	// Table holds the table name of the uploadjob in the database.
	Table = "upload_job"
	// ChunkReportsTable is the table that holds the chunk_reports relation/edge.
	ChunkReportsTable = "chunk_report"
	// ChunkReportsInverseTable is the table name for the ChunkReport entity.
	// It exists in this package in order to avoid circular dependency with the "chunkreport" package.
	ChunkReportsInverseTable = "chunk_report"
	// ChunkReportsColumn is the table column denoting the chunk_reports relation/edge.
	ChunkReportsColumn = "job_id"
)

// Columns holds all SQL columns for uploadjob fields.
var Columns = []string{
	FieldID,
	FieldJobType,
	FieldStatus,
	FieldTotalRows,
	FieldTotalChunks,
	FieldCompletedChunks,
	FieldProcessedRows,
	FieldSuccessfulRows,
	FieldFailedRows,
	FieldErrorMessage,
	FieldErrorDetails,
	FieldScopeType,
	FieldScopeID,
	FieldStartedAt,
	FieldCompletedAt,
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
	// JobTypeValidator is a validator for the "job_type" field. It is called by the builders before save.
	JobTypeValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultCompletedChunks holds the default value on creation for the "completed_chunks" field.
	DefaultCompletedChunks int
	// DefaultProcessedRows holds the default value on creation for the "processed_rows" field.
	DefaultProcessedRows int
	// DefaultSuccessfulRows holds the default value on creation for the "successful_rows" field.
	DefaultSuccessfulRows int
	// DefaultFailedRows holds the default value on creation for the "failed_rows" field.
	DefaultFailedRows int
	// ScopeTypeValidator is a validator for the "scope_type" field. It is called by the builders before save.
	ScopeTypeValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the UploadJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobType orders the results by the job_type field.
func ByJobType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTotalRows orders the results by the total_rows field.
func ByTotalRows(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalRows, opts...).ToFunc()
}

// ByTotalChunks orders the results by the total_chunks field.
func ByTotalChunks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalChunks, opts...).ToFunc()
}

// ByCompletedChunks orders the results by the completed_chunks field.
func ByCompletedChunks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedChunks, opts...).ToFunc()
}

// ByProcessedRows orders the results by the processed_rows field.
func ByProcessedRows(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedRows, opts...).ToFunc()
}

// BySuccessfulRows orders the results by the successful_rows field.
func BySuccessfulRows(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessfulRows, opts...).ToFunc()
}

// ByFailedRows orders the results by the failed_rows field.
func ByFailedRows(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedRows, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByScopeType orders the results by the scope_type field.
func ByScopeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScopeType, opts...).ToFunc()
}

// ByScopeID orders the results by the scope_id field.
func ByScopeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScopeID, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByChunkReportsCount orders the results by chunk_reports count.
func ByChunkReportsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChunkReportsStep(), opts...)
	}
}

// ByChunkReports orders the results by chunk_reports terms.
func ByChunkReports(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChunkReportsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newChunkReportsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChunkReportsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChunkReportsTable, ChunkReportsColumn),
	)
}
