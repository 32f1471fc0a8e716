// Code generated by ent, DO NOT EDIT.

package chunkreport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the chunkreport type in the database.
	Label = "chunk_report"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldChunkIndex holds the string denoting the chunk_index field in the database.
	FieldChunkIndex = "chunk_index"
	// FieldRowsProcessed holds the string denoting the rows_processed field in the database.
	FieldRowsProcessed = "rows_processed"
	// FieldRowsSuccessful holds the string denoting the rows_successful field in the database.
	FieldRowsSuccessful = "rows_successful"
	// FieldRowsFailed holds the string denoting the rows_failed field in the database.
	FieldRowsFailed = "rows_failed"
	// FieldReportedAt holds the string denoting the reported_at field in the database.
	FieldReportedAt = "reported_at"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// Table holds the table name of the chunkreport in the database.
	Table = "chunk_report"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "chunk_report"
	// JobInverseTable is the table name for the UploadJob entity.
	// It exists in this package in order to avoid circular dependency with the "uploadjob" package.
	JobInverseTable = "upload_job"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
)

// Columns holds all SQL columns for chunkreport fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldChunkIndex,
	FieldRowsProcessed,
	FieldRowsSuccessful,
	FieldRowsFailed,
	FieldReportedAt,
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
	// DefaultReportedAt holds the default value on creation for the "reported_at" field.
	DefaultReportedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ChunkReport queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByChunkIndex orders the results by the chunk_index field.
func ByChunkIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChunkIndex, opts...).ToFunc()
}

// ByRowsProcessed orders the results by the rows_processed field.
func ByRowsProcessed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRowsProcessed, opts...).ToFunc()
}

// ByRowsSuccessful orders the results by the rows_successful field.
func ByRowsSuccessful(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRowsSuccessful, opts...).ToFunc()
}

// ByRowsFailed orders the results by the rows_failed field.
func ByRowsFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRowsFailed, opts...).ToFunc()
}

// ByReportedAt orders the results by the reported_at field.
func ByReportedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportedAt, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
