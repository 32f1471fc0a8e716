// Code generated by ent, DO NOT EDIT.

package uploadjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/seyi-adeleke/riskscore/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLTE(FieldID, id))
}

// JobType applies equality check predicate on the "job_type" field. It's identical to JobTypeEQ.
func JobType(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldJobType, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldStatus, v))
}

// TotalRows applies equality check predicate on the "total_rows" field. It's identical to TotalRowsEQ.
func TotalRows(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldTotalRows, v))
}

// TotalChunks applies equality check predicate on the "total_chunks" field. It's identical to TotalChunksEQ.
func TotalChunks(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldTotalChunks, v))
}

// CompletedChunks applies equality check predicate on the "completed_chunks" field. It's identical to CompletedChunksEQ.
func CompletedChunks(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldCompletedChunks, v))
}

// ProcessedRows applies equality check predicate on the "processed_rows" field. It's identical to ProcessedRowsEQ.
func ProcessedRows(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldProcessedRows, v))
}

// SuccessfulRows applies equality check predicate on the "successful_rows" field. It's identical to SuccessfulRowsEQ.
func SuccessfulRows(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldSuccessfulRows, v))
}

// FailedRows applies equality check predicate on the "failed_rows" field. It's identical to FailedRowsEQ.
func FailedRows(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldFailedRows, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ScopeType applies equality check predicate on the "scope_type" field. It's identical to ScopeTypeEQ.
func ScopeType(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldScopeType, v))
}

// ScopeID applies equality check predicate on the "scope_id" field. It's identical to ScopeIDEQ.
func ScopeID(v uuid.UUID) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldScopeID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldCreatedAt, v))
}

// JobTypeEQ applies the EQ predicate on the "job_type" field.
func JobTypeEQ(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldJobType, v))
}

// JobTypeNEQ applies the NEQ predicate on the "job_type" field.
func JobTypeNEQ(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNEQ(FieldJobType, v))
}

// JobTypeIn applies the In predicate on the "job_type" field.
func JobTypeIn(vs ...string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIn(FieldJobType, vs...))
}

// JobTypeNotIn applies the NotIn predicate on the "job_type" field.
func JobTypeNotIn(vs ...string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotIn(FieldJobType, vs...))
}

// JobTypeGT applies the GT predicate on the "job_type" field.
func JobTypeGT(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGT(FieldJobType, v))
}

// JobTypeGTE applies the GTE predicate on the "job_type" field.
func JobTypeGTE(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGTE(FieldJobType, v))
}

// JobTypeLT applies the LT predicate on the "job_type" field.
func JobTypeLT(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLT(FieldJobType, v))
}

// JobTypeLTE applies the LTE predicate on the "job_type" field.
func JobTypeLTE(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLTE(FieldJobType, v))
}

// JobTypeContains applies the Contains predicate on the "job_type" field.
func JobTypeContains(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldContains(FieldJobType, v))
}

// JobTypeHasPrefix applies the HasPrefix predicate on the "job_type" field.
func JobTypeHasPrefix(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldHasPrefix(FieldJobType, v))
}

// JobTypeHasSuffix applies the HasSuffix predicate on the "job_type" field.
func JobTypeHasSuffix(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldHasSuffix(FieldJobType, v))
}

// JobTypeEqualFold applies the EqualFold predicate on the "job_type" field.
func JobTypeEqualFold(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEqualFold(FieldJobType, v))
}

// JobTypeContainsFold applies the ContainsFold predicate on the "job_type" field.
func JobTypeContainsFold(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldContainsFold(FieldJobType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldContainsFold(FieldStatus, v))
}

// TotalRowsEQ applies the EQ predicate on the "total_rows" field.
func TotalRowsEQ(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldTotalRows, v))
}

// TotalRowsNEQ applies the NEQ predicate on the "total_rows" field.
func TotalRowsNEQ(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNEQ(FieldTotalRows, v))
}

// TotalRowsIn applies the In predicate on the "total_rows" field.
func TotalRowsIn(vs ...int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIn(FieldTotalRows, vs...))
}

// TotalRowsNotIn applies the NotIn predicate on the "total_rows" field.
func TotalRowsNotIn(vs ...int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotIn(FieldTotalRows, vs...))
}

// TotalRowsGT applies the GT predicate on the "total_rows" field.
func TotalRowsGT(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGT(FieldTotalRows, v))
}

// TotalRowsGTE applies the GTE predicate on the "total_rows" field.
func TotalRowsGTE(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGTE(FieldTotalRows, v))
}

// TotalRowsLT applies the LT predicate on the "total_rows" field.
func TotalRowsLT(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLT(FieldTotalRows, v))
}

// TotalRowsLTE applies the LTE predicate on the "total_rows" field.
func TotalRowsLTE(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLTE(FieldTotalRows, v))
}

// TotalChunksEQ applies the EQ predicate on the "total_chunks" field.
func TotalChunksEQ(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldTotalChunks, v))
}

// TotalChunksNEQ applies the NEQ predicate on the "total_chunks" field.
func TotalChunksNEQ(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNEQ(FieldTotalChunks, v))
}

// TotalChunksIn applies the In predicate on the "total_chunks" field.
func TotalChunksIn(vs ...int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIn(FieldTotalChunks, vs...))
}

// TotalChunksNotIn applies the NotIn predicate on the "total_chunks" field.
func TotalChunksNotIn(vs ...int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotIn(FieldTotalChunks, vs...))
}

// TotalChunksGT applies the GT predicate on the "total_chunks" field.
func TotalChunksGT(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGT(FieldTotalChunks, v))
}

// TotalChunksGTE applies the GTE predicate on the "total_chunks" field.
func TotalChunksGTE(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGTE(FieldTotalChunks, v))
}

// TotalChunksLT applies the LT predicate on the "total_chunks" field.
func TotalChunksLT(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLT(FieldTotalChunks, v))
}

// TotalChunksLTE applies the LTE predicate on the "total_chunks" field.
func TotalChunksLTE(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLTE(FieldTotalChunks, v))
}

// CompletedChunksEQ applies the EQ predicate on the "completed_chunks" field.
func CompletedChunksEQ(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldCompletedChunks, v))
}

// CompletedChunksNEQ applies the NEQ predicate on the "completed_chunks" field.
func CompletedChunksNEQ(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNEQ(FieldCompletedChunks, v))
}

// CompletedChunksIn applies the In predicate on the "completed_chunks" field.
func CompletedChunksIn(vs ...int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIn(FieldCompletedChunks, vs...))
}

// CompletedChunksNotIn applies the NotIn predicate on the "completed_chunks" field.
func CompletedChunksNotIn(vs ...int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotIn(FieldCompletedChunks, vs...))
}

// CompletedChunksGT applies the GT predicate on the "completed_chunks" field.
func CompletedChunksGT(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGT(FieldCompletedChunks, v))
}

// CompletedChunksGTE applies the GTE predicate on the "completed_chunks" field.
func CompletedChunksGTE(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGTE(FieldCompletedChunks, v))
}

// CompletedChunksLT applies the LT predicate on the "completed_chunks" field.
func CompletedChunksLT(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLT(FieldCompletedChunks, v))
}

// CompletedChunksLTE applies the LTE predicate on the "completed_chunks" field.
func CompletedChunksLTE(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLTE(FieldCompletedChunks, v))
}

// ProcessedRowsEQ applies the EQ predicate on the "processed_rows" field.
func ProcessedRowsEQ(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldProcessedRows, v))
}

// ProcessedRowsNEQ applies the NEQ predicate on the "processed_rows" field.
func ProcessedRowsNEQ(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNEQ(FieldProcessedRows, v))
}

// ProcessedRowsIn applies the In predicate on the "processed_rows" field.
func ProcessedRowsIn(vs ...int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIn(FieldProcessedRows, vs...))
}

// ProcessedRowsNotIn applies the NotIn predicate on the "processed_rows" field.
func ProcessedRowsNotIn(vs ...int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotIn(FieldProcessedRows, vs...))
}

// ProcessedRowsGT applies the GT predicate on the "processed_rows" field.
func ProcessedRowsGT(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGT(FieldProcessedRows, v))
}

// ProcessedRowsGTE applies the GTE predicate on the "processed_rows" field.
func ProcessedRowsGTE(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGTE(FieldProcessedRows, v))
}

// ProcessedRowsLT applies the LT predicate on the "processed_rows" field.
func ProcessedRowsLT(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLT(FieldProcessedRows, v))
}

// ProcessedRowsLTE applies the LTE predicate on the "processed_rows" field.
func ProcessedRowsLTE(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLTE(FieldProcessedRows, v))
}

// SuccessfulRowsEQ applies the EQ predicate on the "successful_rows" field.
func SuccessfulRowsEQ(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldSuccessfulRows, v))
}

// SuccessfulRowsNEQ applies the NEQ predicate on the "successful_rows" field.
func SuccessfulRowsNEQ(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNEQ(FieldSuccessfulRows, v))
}

// SuccessfulRowsIn applies the In predicate on the "successful_rows" field.
func SuccessfulRowsIn(vs ...int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIn(FieldSuccessfulRows, vs...))
}

// SuccessfulRowsNotIn applies the NotIn predicate on the "successful_rows" field.
func SuccessfulRowsNotIn(vs ...int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotIn(FieldSuccessfulRows, vs...))
}

// SuccessfulRowsGT applies the GT predicate on the "successful_rows" field.
func SuccessfulRowsGT(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGT(FieldSuccessfulRows, v))
}

// SuccessfulRowsGTE applies the GTE predicate on the "successful_rows" field.
func SuccessfulRowsGTE(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGTE(FieldSuccessfulRows, v))
}

// SuccessfulRowsLT applies the LT predicate on the "successful_rows" field.
func SuccessfulRowsLT(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLT(FieldSuccessfulRows, v))
}

// SuccessfulRowsLTE applies the LTE predicate on the "successful_rows" field.
func SuccessfulRowsLTE(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLTE(FieldSuccessfulRows, v))
}

// FailedRowsEQ applies the EQ predicate on the "failed_rows" field.
func FailedRowsEQ(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldFailedRows, v))
}

// FailedRowsNEQ applies the NEQ predicate on the "failed_rows" field.
func FailedRowsNEQ(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNEQ(FieldFailedRows, v))
}

// FailedRowsIn applies the In predicate on the "failed_rows" field.
func FailedRowsIn(vs ...int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIn(FieldFailedRows, vs...))
}

// FailedRowsNotIn applies the NotIn predicate on the "failed_rows" field.
func FailedRowsNotIn(vs ...int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotIn(FieldFailedRows, vs...))
}

// FailedRowsGT applies the GT predicate on the "failed_rows" field.
func FailedRowsGT(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGT(FieldFailedRows, v))
}

// FailedRowsGTE applies the GTE predicate on the "failed_rows" field.
func FailedRowsGTE(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGTE(FieldFailedRows, v))
}

// FailedRowsLT applies the LT predicate on the "failed_rows" field.
func FailedRowsLT(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLT(FieldFailedRows, v))
}

// FailedRowsLTE applies the LTE predicate on the "failed_rows" field.
func FailedRowsLTE(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLTE(FieldFailedRows, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ErrorDetailsIsNil applies the IsNil predicate on the "error_details" field.
func ErrorDetailsIsNil() predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIsNull(FieldErrorDetails))
}

// ErrorDetailsNotNil applies the NotNil predicate on the "error_details" field.
func ErrorDetailsNotNil() predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotNull(FieldErrorDetails))
}

// ScopeTypeEQ applies the EQ predicate on the "scope_type" field.
func ScopeTypeEQ(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldScopeType, v))
}

// ScopeTypeNEQ applies the NEQ predicate on the "scope_type" field.
func ScopeTypeNEQ(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNEQ(FieldScopeType, v))
}

// ScopeTypeIn applies the In predicate on the "scope_type" field.
func ScopeTypeIn(vs ...string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIn(FieldScopeType, vs...))
}

// ScopeTypeNotIn applies the NotIn predicate on the "scope_type" field.
func ScopeTypeNotIn(vs ...string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotIn(FieldScopeType, vs...))
}

// ScopeTypeGT applies the GT predicate on the "scope_type" field.
func ScopeTypeGT(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGT(FieldScopeType, v))
}

// ScopeTypeGTE applies the GTE predicate on the "scope_type" field.
func ScopeTypeGTE(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGTE(FieldScopeType, v))
}

// ScopeTypeLT applies the LT predicate on the "scope_type" field.
func ScopeTypeLT(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLT(FieldScopeType, v))
}

// ScopeTypeLTE applies the LTE predicate on the "scope_type" field.
func ScopeTypeLTE(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLTE(FieldScopeType, v))
}

// ScopeTypeContains applies the Contains predicate on the "scope_type" field.
func ScopeTypeContains(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldContains(FieldScopeType, v))
}

// ScopeTypeHasPrefix applies the HasPrefix predicate on the "scope_type" field.
func ScopeTypeHasPrefix(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldHasPrefix(FieldScopeType, v))
}

// ScopeTypeHasSuffix applies the HasSuffix predicate on the "scope_type" field.
func ScopeTypeHasSuffix(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldHasSuffix(FieldScopeType, v))
}

// ScopeTypeEqualFold applies the EqualFold predicate on the "scope_type" field.
func ScopeTypeEqualFold(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEqualFold(FieldScopeType, v))
}

// ScopeTypeContainsFold applies the ContainsFold predicate on the "scope_type" field.
func ScopeTypeContainsFold(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldContainsFold(FieldScopeType, v))
}

// ScopeIDEQ applies the EQ predicate on the "scope_id" field.
func ScopeIDEQ(v uuid.UUID) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldScopeID, v))
}

// ScopeIDNEQ applies the NEQ predicate on the "scope_id" field.
func ScopeIDNEQ(v uuid.UUID) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNEQ(FieldScopeID, v))
}

// ScopeIDIn applies the In predicate on the "scope_id" field.
func ScopeIDIn(vs ...uuid.UUID) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIn(FieldScopeID, vs...))
}

// ScopeIDNotIn applies the NotIn predicate on the "scope_id" field.
func ScopeIDNotIn(vs ...uuid.UUID) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotIn(FieldScopeID, vs...))
}

// ScopeIDGT applies the GT predicate on the "scope_id" field.
func ScopeIDGT(v uuid.UUID) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGT(FieldScopeID, v))
}

// ScopeIDGTE applies the GTE predicate on the "scope_id" field.
func ScopeIDGTE(v uuid.UUID) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGTE(FieldScopeID, v))
}

// ScopeIDLT applies the LT predicate on the "scope_id" field.
func ScopeIDLT(v uuid.UUID) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLT(FieldScopeID, v))
}

// ScopeIDLTE applies the LTE predicate on the "scope_id" field.
func ScopeIDLTE(v uuid.UUID) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLTE(FieldScopeID, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotNull(FieldCompletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLTE(FieldCreatedAt, v))
}

// HasChunkReports applies the HasEdge predicate on the "chunk_reports" edge.
func HasChunkReports() predicate.UploadJob {
	return predicate.UploadJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChunkReportsTable, ChunkReportsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChunkReportsWith applies the HasEdge predicate on the "chunk_reports" edge with a given conditions (other predicates).
func HasChunkReportsWith(preds ...predicate.ChunkReport) predicate.UploadJob {
	return predicate.UploadJob(func(s *sql.Selector) {
		step := newChunkReportsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UploadJob) predicate.UploadJob {
	return predicate.UploadJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UploadJob) predicate.UploadJob {
	return predicate.UploadJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UploadJob) predicate.UploadJob {
	return predicate.UploadJob(sql.NotPredicates(p))
}
