// Code generated by ent, DO NOT EDIT.

package quarterlyprediction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/seyi-adeleke/riskscore/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldLTE(FieldID, id))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v uuid.UUID) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldEQ(FieldCompanyID, v))
}

// ReportingYear applies equality check predicate on the "reporting_year" field. It's identical to ReportingYearEQ.
func ReportingYear(v int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldEQ(FieldReportingYear, v))
}

// ReportingQuarter applies equality check predicate on the "reporting_quarter" field. It's identical to ReportingQuarterEQ.
func ReportingQuarter(v int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldEQ(FieldReportingQuarter, v))
}

// LogitProbability applies equality check predicate on the "logit_probability" field. It's identical to LogitProbabilityEQ.
func LogitProbability(v float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldEQ(FieldLogitProbability, v))
}

// GbmProbability applies equality check predicate on the "gbm_probability" field. It's identical to GbmProbabilityEQ.
func GbmProbability(v float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldEQ(FieldGbmProbability, v))
}

// EnsembleProbability applies equality check predicate on the "ensemble_probability" field. It's identical to EnsembleProbabilityEQ.
func EnsembleProbability(v float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldEQ(FieldEnsembleProbability, v))
}

// RiskLevel applies equality check predicate on the "risk_level" field. It's identical to RiskLevelEQ.
func RiskLevel(v string) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldEQ(FieldRiskLevel, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldEQ(FieldConfidence, v))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldEQ(FieldJobID, v))
}

// ChunkIndex applies equality check predicate on the "chunk_index" field. It's identical to ChunkIndexEQ.
func ChunkIndex(v int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldEQ(FieldChunkIndex, v))
}

// RowIndex applies equality check predicate on the "row_index" field. It's identical to RowIndexEQ.
func RowIndex(v int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldEQ(FieldRowIndex, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldEQ(FieldCreatedAt, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v uuid.UUID) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v uuid.UUID) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...uuid.UUID) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...uuid.UUID) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldNotIn(FieldCompanyID, vs...))
}

// ReportingYearEQ applies the EQ predicate on the "reporting_year" field.
func ReportingYearEQ(v int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldEQ(FieldReportingYear, v))
}

// ReportingYearNEQ applies the NEQ predicate on the "reporting_year" field.
func ReportingYearNEQ(v int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldNEQ(FieldReportingYear, v))
}

// ReportingYearIn applies the In predicate on the "reporting_year" field.
func ReportingYearIn(vs ...int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldIn(FieldReportingYear, vs...))
}

// ReportingYearNotIn applies the NotIn predicate on the "reporting_year" field.
func ReportingYearNotIn(vs ...int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldNotIn(FieldReportingYear, vs...))
}

// ReportingYearGT applies the GT predicate on the "reporting_year" field.
func ReportingYearGT(v int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldGT(FieldReportingYear, v))
}

// ReportingYearGTE applies the GTE predicate on the "reporting_year" field.
func ReportingYearGTE(v int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldGTE(FieldReportingYear, v))
}

// ReportingYearLT applies the LT predicate on the "reporting_year" field.
func ReportingYearLT(v int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldLT(FieldReportingYear, v))
}

// ReportingYearLTE applies the LTE predicate on the "reporting_year" field.
func ReportingYearLTE(v int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldLTE(FieldReportingYear, v))
}

// ReportingQuarterEQ applies the EQ predicate on the "reporting_quarter" field.
func ReportingQuarterEQ(v int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldEQ(FieldReportingQuarter, v))
}

// ReportingQuarterNEQ applies the NEQ predicate on the "reporting_quarter" field.
func ReportingQuarterNEQ(v int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldNEQ(FieldReportingQuarter, v))
}

// ReportingQuarterIn applies the In predicate on the "reporting_quarter" field.
func ReportingQuarterIn(vs ...int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldIn(FieldReportingQuarter, vs...))
}

// ReportingQuarterNotIn applies the NotIn predicate on the "reporting_quarter" field.
func ReportingQuarterNotIn(vs ...int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldNotIn(FieldReportingQuarter, vs...))
}

// ReportingQuarterGT applies the GT predicate on the "reporting_quarter" field.
func ReportingQuarterGT(v int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldGT(FieldReportingQuarter, v))
}

// ReportingQuarterGTE applies the GTE predicate on the "reporting_quarter" field.
func ReportingQuarterGTE(v int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldGTE(FieldReportingQuarter, v))
}

// ReportingQuarterLT applies the LT predicate on the "reporting_quarter" field.
func ReportingQuarterLT(v int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldLT(FieldReportingQuarter, v))
}

// ReportingQuarterLTE applies the LTE predicate on the "reporting_quarter" field.
func ReportingQuarterLTE(v int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldLTE(FieldReportingQuarter, v))
}

// LogitProbabilityEQ applies the EQ predicate on the "logit_probability" field.
func LogitProbabilityEQ(v float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldEQ(FieldLogitProbability, v))
}

// LogitProbabilityNEQ applies the NEQ predicate on the "logit_probability" field.
func LogitProbabilityNEQ(v float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldNEQ(FieldLogitProbability, v))
}

// LogitProbabilityIn applies the In predicate on the "logit_probability" field.
func LogitProbabilityIn(vs ...float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldIn(FieldLogitProbability, vs...))
}

// LogitProbabilityNotIn applies the NotIn predicate on the "logit_probability" field.
func LogitProbabilityNotIn(vs ...float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldNotIn(FieldLogitProbability, vs...))
}

// LogitProbabilityGT applies the GT predicate on the "logit_probability" field.
func LogitProbabilityGT(v float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldGT(FieldLogitProbability, v))
}

// LogitProbabilityGTE applies the GTE predicate on the "logit_probability" field.
func LogitProbabilityGTE(v float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldGTE(FieldLogitProbability, v))
}

// LogitProbabilityLT applies the LT predicate on the "logit_probability" field.
func LogitProbabilityLT(v float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldLT(FieldLogitProbability, v))
}

// LogitProbabilityLTE applies the LTE predicate on the "logit_probability" field.
func LogitProbabilityLTE(v float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldLTE(FieldLogitProbability, v))
}

// GbmProbabilityEQ applies the EQ predicate on the "gbm_probability" field.
func GbmProbabilityEQ(v float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldEQ(FieldGbmProbability, v))
}

// GbmProbabilityNEQ applies the NEQ predicate on the "gbm_probability" field.
func GbmProbabilityNEQ(v float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldNEQ(FieldGbmProbability, v))
}

// GbmProbabilityIn applies the In predicate on the "gbm_probability" field.
func GbmProbabilityIn(vs ...float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldIn(FieldGbmProbability, vs...))
}

// GbmProbabilityNotIn applies the NotIn predicate on the "gbm_probability" field.
func GbmProbabilityNotIn(vs ...float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldNotIn(FieldGbmProbability, vs...))
}

// GbmProbabilityGT applies the GT predicate on the "gbm_probability" field.
func GbmProbabilityGT(v float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldGT(FieldGbmProbability, v))
}

// GbmProbabilityGTE applies the GTE predicate on the "gbm_probability" field.
func GbmProbabilityGTE(v float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldGTE(FieldGbmProbability, v))
}

// GbmProbabilityLT applies the LT predicate on the "gbm_probability" field.
func GbmProbabilityLT(v float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldLT(FieldGbmProbability, v))
}

// GbmProbabilityLTE applies the LTE predicate on the "gbm_probability" field.
func GbmProbabilityLTE(v float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldLTE(FieldGbmProbability, v))
}

// EnsembleProbabilityEQ applies the EQ predicate on the "ensemble_probability" field.
func EnsembleProbabilityEQ(v float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldEQ(FieldEnsembleProbability, v))
}

// EnsembleProbabilityNEQ applies the NEQ predicate on the "ensemble_probability" field.
func EnsembleProbabilityNEQ(v float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldNEQ(FieldEnsembleProbability, v))
}

// EnsembleProbabilityIn applies the In predicate on the "ensemble_probability" field.
func EnsembleProbabilityIn(vs ...float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldIn(FieldEnsembleProbability, vs...))
}

// EnsembleProbabilityNotIn applies the NotIn predicate on the "ensemble_probability" field.
func EnsembleProbabilityNotIn(vs ...float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldNotIn(FieldEnsembleProbability, vs...))
}

// EnsembleProbabilityGT applies the GT predicate on the "ensemble_probability" field.
func EnsembleProbabilityGT(v float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldGT(FieldEnsembleProbability, v))
}

// EnsembleProbabilityGTE applies the GTE predicate on the "ensemble_probability" field.
func EnsembleProbabilityGTE(v float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldGTE(FieldEnsembleProbability, v))
}

// EnsembleProbabilityLT applies the LT predicate on the "ensemble_probability" field.
func EnsembleProbabilityLT(v float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldLT(FieldEnsembleProbability, v))
}

// EnsembleProbabilityLTE applies the LTE predicate on the "ensemble_probability" field.
func EnsembleProbabilityLTE(v float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldLTE(FieldEnsembleProbability, v))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v string) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v string) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...string) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...string) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// RiskLevelGT applies the GT predicate on the "risk_level" field.
func RiskLevelGT(v string) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldGT(FieldRiskLevel, v))
}

// RiskLevelGTE applies the GTE predicate on the "risk_level" field.
func RiskLevelGTE(v string) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldGTE(FieldRiskLevel, v))
}

// RiskLevelLT applies the LT predicate on the "risk_level" field.
func RiskLevelLT(v string) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldLT(FieldRiskLevel, v))
}

// RiskLevelLTE applies the LTE predicate on the "risk_level" field.
func RiskLevelLTE(v string) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldLTE(FieldRiskLevel, v))
}

// RiskLevelContains applies the Contains predicate on the "risk_level" field.
func RiskLevelContains(v string) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldContains(FieldRiskLevel, v))
}

// RiskLevelHasPrefix applies the HasPrefix predicate on the "risk_level" field.
func RiskLevelHasPrefix(v string) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldHasPrefix(FieldRiskLevel, v))
}

// RiskLevelHasSuffix applies the HasSuffix predicate on the "risk_level" field.
func RiskLevelHasSuffix(v string) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldHasSuffix(FieldRiskLevel, v))
}

// RiskLevelEqualFold applies the EqualFold predicate on the "risk_level" field.
func RiskLevelEqualFold(v string) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldEqualFold(FieldRiskLevel, v))
}

// RiskLevelContainsFold applies the ContainsFold predicate on the "risk_level" field.
func RiskLevelContainsFold(v string) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldContainsFold(FieldRiskLevel, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldLTE(FieldConfidence, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v uuid.UUID) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v uuid.UUID) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v uuid.UUID) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v uuid.UUID) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldLTE(FieldJobID, v))
}

// ChunkIndexEQ applies the EQ predicate on the "chunk_index" field.
func ChunkIndexEQ(v int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldEQ(FieldChunkIndex, v))
}

// ChunkIndexNEQ applies the NEQ predicate on the "chunk_index" field.
func ChunkIndexNEQ(v int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldNEQ(FieldChunkIndex, v))
}

// ChunkIndexIn applies the In predicate on the "chunk_index" field.
func ChunkIndexIn(vs ...int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldIn(FieldChunkIndex, vs...))
}

// ChunkIndexNotIn applies the NotIn predicate on the "chunk_index" field.
func ChunkIndexNotIn(vs ...int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldNotIn(FieldChunkIndex, vs...))
}

// ChunkIndexGT applies the GT predicate on the "chunk_index" field.
func ChunkIndexGT(v int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldGT(FieldChunkIndex, v))
}

// ChunkIndexGTE applies the GTE predicate on the "chunk_index" field.
func ChunkIndexGTE(v int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldGTE(FieldChunkIndex, v))
}

// ChunkIndexLT applies the LT predicate on the "chunk_index" field.
func ChunkIndexLT(v int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldLT(FieldChunkIndex, v))
}

// ChunkIndexLTE applies the LTE predicate on the "chunk_index" field.
func ChunkIndexLTE(v int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldLTE(FieldChunkIndex, v))
}

// RowIndexEQ applies the EQ predicate on the "row_index" field.
func RowIndexEQ(v int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldEQ(FieldRowIndex, v))
}

// RowIndexNEQ applies the NEQ predicate on the "row_index" field.
func RowIndexNEQ(v int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldNEQ(FieldRowIndex, v))
}

// RowIndexIn applies the In predicate on the "row_index" field.
func RowIndexIn(vs ...int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldIn(FieldRowIndex, vs...))
}

// RowIndexNotIn applies the NotIn predicate on the "row_index" field.
func RowIndexNotIn(vs ...int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldNotIn(FieldRowIndex, vs...))
}

// RowIndexGT applies the GT predicate on the "row_index" field.
func RowIndexGT(v int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldGT(FieldRowIndex, v))
}

// RowIndexGTE applies the GTE predicate on the "row_index" field.
func RowIndexGTE(v int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldGTE(FieldRowIndex, v))
}

// RowIndexLT applies the LT predicate on the "row_index" field.
func RowIndexLT(v int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldLT(FieldRowIndex, v))
}

// RowIndexLTE applies the LTE predicate on the "row_index" field.
func RowIndexLTE(v int) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldLTE(FieldRowIndex, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.FieldLTE(FieldCreatedAt, v))
}

// HasCompany applies the HasEdge predicate on the "company" edge.
func HasCompany() predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCompanyWith applies the HasEdge predicate on the "company" edge with a given conditions (other predicates).
func HasCompanyWith(preds ...predicate.Company) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(func(s *sql.Selector) {
		step := newCompanyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuarterlyPrediction) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuarterlyPrediction) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuarterlyPrediction) predicate.QuarterlyPrediction {
	return predicate.QuarterlyPrediction(sql.NotPredicates(p))
}
