// Code generated by ent, DO NOT EDIT.

package annualprediction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/seyi-adeleke/riskscore/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldLTE(FieldID, id))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v uuid.UUID) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldEQ(FieldCompanyID, v))
}

// ReportingYear applies equality check predicate on the "reporting_year" field. It's identical to ReportingYearEQ.
func ReportingYear(v int) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldEQ(FieldReportingYear, v))
}

// Probability applies equality check predicate on the "probability" field. It's identical to ProbabilityEQ.
func Probability(v float64) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldEQ(FieldProbability, v))
}

// RiskLevel applies equality check predicate on the "risk_level" field. It's identical to RiskLevelEQ.
func RiskLevel(v string) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldEQ(FieldRiskLevel, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldEQ(FieldConfidence, v))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldEQ(FieldJobID, v))
}

// ChunkIndex applies equality check predicate on the "chunk_index" field. It's identical to ChunkIndexEQ.
func ChunkIndex(v int) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldEQ(FieldChunkIndex, v))
}

// RowIndex applies equality check predicate on the "row_index" field. It's identical to RowIndexEQ.
func RowIndex(v int) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldEQ(FieldRowIndex, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldEQ(FieldCreatedAt, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v uuid.UUID) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v uuid.UUID) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...uuid.UUID) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...uuid.UUID) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldNotIn(FieldCompanyID, vs...))
}

// ReportingYearEQ applies the EQ predicate on the "reporting_year" field.
func ReportingYearEQ(v int) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldEQ(FieldReportingYear, v))
}

// ReportingYearNEQ applies the NEQ predicate on the "reporting_year" field.
func ReportingYearNEQ(v int) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldNEQ(FieldReportingYear, v))
}

// ReportingYearIn applies the In predicate on the "reporting_year" field.
func ReportingYearIn(vs ...int) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldIn(FieldReportingYear, vs...))
}

// ReportingYearNotIn applies the NotIn predicate on the "reporting_year" field.
func ReportingYearNotIn(vs ...int) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldNotIn(FieldReportingYear, vs...))
}

// ReportingYearGT applies the GT predicate on the "reporting_year" field.
func ReportingYearGT(v int) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldGT(FieldReportingYear, v))
}

// ReportingYearGTE applies the GTE predicate on the "reporting_year" field.
func ReportingYearGTE(v int) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldGTE(FieldReportingYear, v))
}

// ReportingYearLT applies the LT predicate on the "reporting_year" field.
func ReportingYearLT(v int) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldLT(FieldReportingYear, v))
}

// ReportingYearLTE applies the LTE predicate on the "reporting_year" field.
func ReportingYearLTE(v int) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldLTE(FieldReportingYear, v))
}

// ProbabilityEQ applies the EQ predicate on the "probability" field.
func ProbabilityEQ(v float64) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldEQ(FieldProbability, v))
}

// ProbabilityNEQ applies the NEQ predicate on the "probability" field.
func ProbabilityNEQ(v float64) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldNEQ(FieldProbability, v))
}

// ProbabilityIn applies the In predicate on the "probability" field.
func ProbabilityIn(vs ...float64) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldIn(FieldProbability, vs...))
}

// ProbabilityNotIn applies the NotIn predicate on the "probability" field.
func ProbabilityNotIn(vs ...float64) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldNotIn(FieldProbability, vs...))
}

// ProbabilityGT applies the GT predicate on the "probability" field.
func ProbabilityGT(v float64) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldGT(FieldProbability, v))
}

// ProbabilityGTE applies the GTE predicate on the "probability" field.
func ProbabilityGTE(v float64) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldGTE(FieldProbability, v))
}

// ProbabilityLT applies the LT predicate on the "probability" field.
func ProbabilityLT(v float64) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldLT(FieldProbability, v))
}

// ProbabilityLTE applies the LTE predicate on the "probability" field.
func ProbabilityLTE(v float64) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldLTE(FieldProbability, v))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v string) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v string) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...string) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...string) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// RiskLevelGT applies the GT predicate on the "risk_level" field.
func RiskLevelGT(v string) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldGT(FieldRiskLevel, v))
}

// RiskLevelGTE applies the GTE predicate on the "risk_level" field.
func RiskLevelGTE(v string) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldGTE(FieldRiskLevel, v))
}

// RiskLevelLT applies the LT predicate on the "risk_level" field.
func RiskLevelLT(v string) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldLT(FieldRiskLevel, v))
}

// RiskLevelLTE applies the LTE predicate on the "risk_level" field.
func RiskLevelLTE(v string) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldLTE(FieldRiskLevel, v))
}

// RiskLevelContains applies the Contains predicate on the "risk_level" field.
func RiskLevelContains(v string) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldContains(FieldRiskLevel, v))
}

// RiskLevelHasPrefix applies the HasPrefix predicate on the "risk_level" field.
func RiskLevelHasPrefix(v string) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldHasPrefix(FieldRiskLevel, v))
}

// RiskLevelHasSuffix applies the HasSuffix predicate on the "risk_level" field.
func RiskLevelHasSuffix(v string) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldHasSuffix(FieldRiskLevel, v))
}

// RiskLevelEqualFold applies the EqualFold predicate on the "risk_level" field.
func RiskLevelEqualFold(v string) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldEqualFold(FieldRiskLevel, v))
}

// RiskLevelContainsFold applies the ContainsFold predicate on the "risk_level" field.
func RiskLevelContainsFold(v string) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldContainsFold(FieldRiskLevel, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldLTE(FieldConfidence, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v uuid.UUID) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v uuid.UUID) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v uuid.UUID) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v uuid.UUID) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldLTE(FieldJobID, v))
}

// ChunkIndexEQ applies the EQ predicate on the "chunk_index" field.
func ChunkIndexEQ(v int) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldEQ(FieldChunkIndex, v))
}

// ChunkIndexNEQ applies the NEQ predicate on the "chunk_index" field.
func ChunkIndexNEQ(v int) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldNEQ(FieldChunkIndex, v))
}

// ChunkIndexIn applies the In predicate on the "chunk_index" field.
func ChunkIndexIn(vs ...int) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldIn(FieldChunkIndex, vs...))
}

// ChunkIndexNotIn applies the NotIn predicate on the "chunk_index" field.
func ChunkIndexNotIn(vs ...int) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldNotIn(FieldChunkIndex, vs...))
}

// ChunkIndexGT applies the GT predicate on the "chunk_index" field.
func ChunkIndexGT(v int) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldGT(FieldChunkIndex, v))
}

// ChunkIndexGTE applies the GTE predicate on the "chunk_index" field.
func ChunkIndexGTE(v int) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldGTE(FieldChunkIndex, v))
}

// ChunkIndexLT applies the LT predicate on the "chunk_index" field.
func ChunkIndexLT(v int) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldLT(FieldChunkIndex, v))
}

// ChunkIndexLTE applies the LTE predicate on the "chunk_index" field.
func ChunkIndexLTE(v int) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldLTE(FieldChunkIndex, v))
}

// RowIndexEQ applies the EQ predicate on the "row_index" field.
func RowIndexEQ(v int) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldEQ(FieldRowIndex, v))
}

// RowIndexNEQ applies the NEQ predicate on the "row_index" field.
func RowIndexNEQ(v int) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldNEQ(FieldRowIndex, v))
}

// RowIndexIn applies the In predicate on the "row_index" field.
func RowIndexIn(vs ...int) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldIn(FieldRowIndex, vs...))
}

// RowIndexNotIn applies the NotIn predicate on the "row_index" field.
func RowIndexNotIn(vs ...int) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldNotIn(FieldRowIndex, vs...))
}

// RowIndexGT applies the GT predicate on the "row_index" field.
func RowIndexGT(v int) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldGT(FieldRowIndex, v))
}

// RowIndexGTE applies the GTE predicate on the "row_index" field.
func RowIndexGTE(v int) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldGTE(FieldRowIndex, v))
}

// RowIndexLT applies the LT predicate on the "row_index" field.
func RowIndexLT(v int) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldLT(FieldRowIndex, v))
}

// RowIndexLTE applies the LTE predicate on the "row_index" field.
func RowIndexLTE(v int) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldLTE(FieldRowIndex, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.FieldLTE(FieldCreatedAt, v))
}

// HasCompany applies the HasEdge predicate on the "company" edge.
func HasCompany() predicate.AnnualPrediction {
	return predicate.AnnualPrediction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCompanyWith applies the HasEdge predicate on the "company" edge with a given conditions (other predicates).
func HasCompanyWith(preds ...predicate.Company) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(func(s *sql.Selector) {
		step := newCompanyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnnualPrediction) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnnualPrediction) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnnualPrediction) predicate.AnnualPrediction {
	return predicate.AnnualPrediction(sql.NotPredicates(p))
}
