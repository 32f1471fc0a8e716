// Code generated by ent, DO NOT EDIT.

package chunkreport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/seyi-adeleke/riskscore/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldEQ(FieldJobID, v))
}

// ChunkIndex applies equality check predicate on the "chunk_index" field. It's identical to ChunkIndexEQ.
func ChunkIndex(v int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldEQ(FieldChunkIndex, v))
}

// RowsProcessed applies equality check predicate on the "rows_processed" field. It's identical to RowsProcessedEQ.
func RowsProcessed(v int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldEQ(FieldRowsProcessed, v))
}

// RowsSuccessful applies equality check predicate on the "rows_successful" field. It's identical to RowsSuccessfulEQ.
func RowsSuccessful(v int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldEQ(FieldRowsSuccessful, v))
}

// RowsFailed applies equality check predicate on the "rows_failed" field. It's identical to RowsFailedEQ.
func RowsFailed(v int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldEQ(FieldRowsFailed, v))
}

// ReportedAt applies equality check predicate on the "reported_at" field. It's identical to ReportedAtEQ.
func ReportedAt(v time.Time) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldEQ(FieldReportedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldNotIn(FieldJobID, vs...))
}

// ChunkIndexEQ applies the EQ predicate on the "chunk_index" field.
func ChunkIndexEQ(v int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldEQ(FieldChunkIndex, v))
}

// ChunkIndexNEQ applies the NEQ predicate on the "chunk_index" field.
func ChunkIndexNEQ(v int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldNEQ(FieldChunkIndex, v))
}

// ChunkIndexIn applies the In predicate on the "chunk_index" field.
func ChunkIndexIn(vs ...int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldIn(FieldChunkIndex, vs...))
}

// ChunkIndexNotIn applies the NotIn predicate on the "chunk_index" field.
func ChunkIndexNotIn(vs ...int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldNotIn(FieldChunkIndex, vs...))
}

// ChunkIndexGT applies the GT predicate on the "chunk_index" field.
func ChunkIndexGT(v int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldGT(FieldChunkIndex, v))
}

// ChunkIndexGTE applies the GTE predicate on the "chunk_index" field.
func ChunkIndexGTE(v int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldGTE(FieldChunkIndex, v))
}

// ChunkIndexLT applies the LT predicate on the "chunk_index" field.
func ChunkIndexLT(v int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldLT(FieldChunkIndex, v))
}

// ChunkIndexLTE applies the LTE predicate on the "chunk_index" field.
func ChunkIndexLTE(v int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldLTE(FieldChunkIndex, v))
}

// RowsProcessedEQ applies the EQ predicate on the "rows_processed" field.
func RowsProcessedEQ(v int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldEQ(FieldRowsProcessed, v))
}

// RowsProcessedNEQ applies the NEQ predicate on the "rows_processed" field.
func RowsProcessedNEQ(v int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldNEQ(FieldRowsProcessed, v))
}

// RowsProcessedIn applies the In predicate on the "rows_processed" field.
func RowsProcessedIn(vs ...int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldIn(FieldRowsProcessed, vs...))
}

// RowsProcessedNotIn applies the NotIn predicate on the "rows_processed" field.
func RowsProcessedNotIn(vs ...int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldNotIn(FieldRowsProcessed, vs...))
}

// RowsProcessedGT applies the GT predicate on the "rows_processed" field.
func RowsProcessedGT(v int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldGT(FieldRowsProcessed, v))
}

// RowsProcessedGTE applies the GTE predicate on the "rows_processed" field.
func RowsProcessedGTE(v int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldGTE(FieldRowsProcessed, v))
}

// RowsProcessedLT applies the LT predicate on the "rows_processed" field.
func RowsProcessedLT(v int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldLT(FieldRowsProcessed, v))
}

// RowsProcessedLTE applies the LTE predicate on the "rows_processed" field.
func RowsProcessedLTE(v int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldLTE(FieldRowsProcessed, v))
}

// RowsSuccessfulEQ applies the EQ predicate on the "rows_successful" field.
func RowsSuccessfulEQ(v int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldEQ(FieldRowsSuccessful, v))
}

// RowsSuccessfulNEQ applies the NEQ predicate on the "rows_successful" field.
func RowsSuccessfulNEQ(v int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldNEQ(FieldRowsSuccessful, v))
}

// RowsSuccessfulIn applies the In predicate on the "rows_successful" field.
func RowsSuccessfulIn(vs ...int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldIn(FieldRowsSuccessful, vs...))
}

// RowsSuccessfulNotIn applies the NotIn predicate on the "rows_successful" field.
func RowsSuccessfulNotIn(vs ...int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldNotIn(FieldRowsSuccessful, vs...))
}

// RowsSuccessfulGT applies the GT predicate on the "rows_successful" field.
func RowsSuccessfulGT(v int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldGT(FieldRowsSuccessful, v))
}

// RowsSuccessfulGTE applies the GTE predicate on the "rows_successful" field.
func RowsSuccessfulGTE(v int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldGTE(FieldRowsSuccessful, v))
}

// RowsSuccessfulLT applies the LT predicate on the "rows_successful" field.
func RowsSuccessfulLT(v int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldLT(FieldRowsSuccessful, v))
}

// RowsSuccessfulLTE applies the LTE predicate on the "rows_successful" field.
func RowsSuccessfulLTE(v int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldLTE(FieldRowsSuccessful, v))
}

// RowsFailedEQ applies the EQ predicate on the "rows_failed" field.
func RowsFailedEQ(v int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldEQ(FieldRowsFailed, v))
}

// RowsFailedNEQ applies the NEQ predicate on the "rows_failed" field.
func RowsFailedNEQ(v int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldNEQ(FieldRowsFailed, v))
}

// RowsFailedIn applies the In predicate on the "rows_failed" field.
func RowsFailedIn(vs ...int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldIn(FieldRowsFailed, vs...))
}

// RowsFailedNotIn applies the NotIn predicate on the "rows_failed" field.
func RowsFailedNotIn(vs ...int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldNotIn(FieldRowsFailed, vs...))
}

// RowsFailedGT applies the GT predicate on the "rows_failed" field.
func RowsFailedGT(v int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldGT(FieldRowsFailed, v))
}

// RowsFailedGTE applies the GTE predicate on the "rows_failed" field.
func RowsFailedGTE(v int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldGTE(FieldRowsFailed, v))
}

// RowsFailedLT applies the LT predicate on the "rows_failed" field.
func RowsFailedLT(v int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldLT(FieldRowsFailed, v))
}

// RowsFailedLTE applies the LTE predicate on the "rows_failed" field.
func RowsFailedLTE(v int) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldLTE(FieldRowsFailed, v))
}

// ReportedAtEQ applies the EQ predicate on the "reported_at" field.
func ReportedAtEQ(v time.Time) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldEQ(FieldReportedAt, v))
}

// ReportedAtNEQ applies the NEQ predicate on the "reported_at" field.
func ReportedAtNEQ(v time.Time) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldNEQ(FieldReportedAt, v))
}

// ReportedAtIn applies the In predicate on the "reported_at" field.
func ReportedAtIn(vs ...time.Time) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldIn(FieldReportedAt, vs...))
}

// ReportedAtNotIn applies the NotIn predicate on the "reported_at" field.
func ReportedAtNotIn(vs ...time.Time) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldNotIn(FieldReportedAt, vs...))
}

// ReportedAtGT applies the GT predicate on the "reported_at" field.
func ReportedAtGT(v time.Time) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldGT(FieldReportedAt, v))
}

// ReportedAtGTE applies the GTE predicate on the "reported_at" field.
func ReportedAtGTE(v time.Time) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldGTE(FieldReportedAt, v))
}

// ReportedAtLT applies the LT predicate on the "reported_at" field.
func ReportedAtLT(v time.Time) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldLT(FieldReportedAt, v))
}

// ReportedAtLTE applies the LTE predicate on the "reported_at" field.
func ReportedAtLTE(v time.Time) predicate.ChunkReport {
	return predicate.ChunkReport(sql.FieldLTE(FieldReportedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.ChunkReport {
	return predicate.ChunkReport(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.UploadJob) predicate.ChunkReport {
	return predicate.ChunkReport(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChunkReport) predicate.ChunkReport {
	return predicate.ChunkReport(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChunkReport) predicate.ChunkReport {
	return predicate.ChunkReport(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChunkReport) predicate.ChunkReport {
	return predicate.ChunkReport(sql.NotPredicates(p))
}
