// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/seyi-adeleke/riskscore/db/ent/schema"
	"github.com/seyi-adeleke/riskscore/gen/ent/annualprediction"
	"github.com/seyi-adeleke/riskscore/gen/ent/chunkreport"
	"github.com/seyi-adeleke/riskscore/gen/ent/company"
	"github.com/seyi-adeleke/riskscore/gen/ent/quarterlyprediction"
	"github.com/seyi-adeleke/riskscore/gen/ent/uploadjob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	annualpredictionFields := schema.AnnualPrediction{}.Fields()
	_ = annualpredictionFields
	// annualpredictionDescReportingYear is the schema descriptor for reporting_year field.
	annualpredictionDescReportingYear := annualpredictionFields[2].Descriptor()
	// annualprediction.ReportingYearValidator is a validator for the "reporting_year" field. It is called by the builders before save.
	annualprediction.ReportingYearValidator = annualpredictionDescReportingYear.Validators[0].(func(int) error)
	// annualpredictionDescRiskLevel is the schema descriptor for risk_level field.
	annualpredictionDescRiskLevel := annualpredictionFields[5].Descriptor()
	// annualprediction.RiskLevelValidator is a validator for the "risk_level" field. It is called by the builders before save.
	annualprediction.RiskLevelValidator = func() func(string) error {
		validators := annualpredictionDescRiskLevel.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(risk_level string) error {
			for _, fn := range fns {
				if err := fn(risk_level); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// annualpredictionDescCreatedAt is the schema descriptor for created_at field.
	annualpredictionDescCreatedAt := annualpredictionFields[10].Descriptor()
	// annualprediction.DefaultCreatedAt holds the default value on creation for the created_at field.
	annualprediction.DefaultCreatedAt = annualpredictionDescCreatedAt.Default.(func() time.Time)
	// annualpredictionDescID is the schema descriptor for id field.
	annualpredictionDescID := annualpredictionFields[0].Descriptor()
	// annualprediction.DefaultID holds the default value on creation for the id field.
	annualprediction.DefaultID = annualpredictionDescID.Default.(func() uuid.UUID)
	chunkreportFields := schema.ChunkReport{}.Fields()
	_ = chunkreportFields
	// chunkreportDescReportedAt is the schema descriptor for reported_at field.
	chunkreportDescReportedAt := chunkreportFields[6].Descriptor()
	// chunkreport.DefaultReportedAt holds the default value on creation for the reported_at field.
	chunkreport.DefaultReportedAt = chunkreportDescReportedAt.Default.(func() time.Time)
	// chunkreportDescID is the schema descriptor for id field.
	chunkreportDescID := chunkreportFields[0].Descriptor()
	// chunkreport.DefaultID holds the default value on creation for the id field.
	chunkreport.DefaultID = chunkreportDescID.Default.(func() uuid.UUID)
	companyFields := schema.Company{}.Fields()
	_ = companyFields
	// companyDescSymbol is the schema descriptor for symbol field.
	companyDescSymbol := companyFields[1].Descriptor()
	// company.SymbolValidator is a validator for the "symbol" field. It is called by the builders before save.
	company.SymbolValidator = companyDescSymbol.Validators[0].(func(string) error)
	// companyDescName is the schema descriptor for name field.
	companyDescName := companyFields[2].Descriptor()
	// company.NameValidator is a validator for the "name" field. It is called by the builders before save.
	company.NameValidator = companyDescName.Validators[0].(func(string) error)
	// companyDescScopeType is the schema descriptor for scope_type field.
	companyDescScopeType := companyFields[5].Descriptor()
	// company.ScopeTypeValidator is a validator for the "scope_type" field. It is called by the builders before save.
	company.ScopeTypeValidator = func() func(string) error {
		validators := companyDescScopeType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(scope_type string) error {
			for _, fn := range fns {
				if err := fn(scope_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// companyDescCreatedAt is the schema descriptor for created_at field.
	companyDescCreatedAt := companyFields[7].Descriptor()
	// company.DefaultCreatedAt holds the default value on creation for the created_at field.
	company.DefaultCreatedAt = companyDescCreatedAt.Default.(func() time.Time)
	// companyDescUpdatedAt is the schema descriptor for updated_at field.
	companyDescUpdatedAt := companyFields[8].Descriptor()
	// company.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	company.DefaultUpdatedAt = companyDescUpdatedAt.Default.(func() time.Time)
	// company.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	company.UpdateDefaultUpdatedAt = companyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// companyDescID is the schema descriptor for id field.
	companyDescID := companyFields[0].Descriptor()
	// company.DefaultID holds the default value on creation for the id field.
	company.DefaultID = companyDescID.Default.(func() uuid.UUID)
	quarterlypredictionFields := schema.QuarterlyPrediction{}.Fields()
	_ = quarterlypredictionFields
	// quarterlypredictionDescReportingYear is the schema descriptor for reporting_year field.
	quarterlypredictionDescReportingYear := quarterlypredictionFields[2].Descriptor()
	// quarterlyprediction.ReportingYearValidator is a validator for the "reporting_year" field. It is called by the builders before save.
	quarterlyprediction.ReportingYearValidator = quarterlypredictionDescReportingYear.Validators[0].(func(int) error)
	// quarterlypredictionDescReportingQuarter is the schema descriptor for reporting_quarter field.
	quarterlypredictionDescReportingQuarter := quarterlypredictionFields[3].Descriptor()
	// quarterlyprediction.ReportingQuarterValidator is a validator for the "reporting_quarter" field. It is called by the builders before save.
	quarterlyprediction.ReportingQuarterValidator = func() func(int) error {
		validators := quarterlypredictionDescReportingQuarter.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(reporting_quarter int) error {
			for _, fn := range fns {
				if err := fn(reporting_quarter); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// quarterlypredictionDescRiskLevel is the schema descriptor for risk_level field.
	quarterlypredictionDescRiskLevel := quarterlypredictionFields[8].Descriptor()
	// quarterlyprediction.RiskLevelValidator is a validator for the "risk_level" field. It is called by the builders before save.
	quarterlyprediction.RiskLevelValidator = func() func(string) error {
		validators := quarterlypredictionDescRiskLevel.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(risk_level string) error {
			for _, fn := range fns {
				if err := fn(risk_level); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// quarterlypredictionDescCreatedAt is the schema descriptor for created_at field.
	quarterlypredictionDescCreatedAt := quarterlypredictionFields[13].Descriptor()
	// quarterlyprediction.DefaultCreatedAt holds the default value on creation for the created_at field.
	quarterlyprediction.DefaultCreatedAt = quarterlypredictionDescCreatedAt.Default.(func() time.Time)
	// quarterlypredictionDescID is the schema descriptor for id field.
	quarterlypredictionDescID := quarterlypredictionFields[0].Descriptor()
	// quarterlyprediction.DefaultID holds the default value on creation for the id field.
	quarterlyprediction.DefaultID = quarterlypredictionDescID.Default.(func() uuid.UUID)
	uploadjobFields := schema.UploadJob{}.Fields()
	_ = uploadjobFields
	// uploadjobDescJobType is the schema descriptor for job_type field.
	uploadjobDescJobType := uploadjobFields[1].Descriptor()
	// uploadjob.JobTypeValidator is a validator for the "job_type" field. It is called by the builders before save.
	uploadjob.JobTypeValidator = func() func(string) error {
		validators := uploadjobDescJobType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(job_type string) error {
			for _, fn := range fns {
				if err := fn(job_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// uploadjobDescStatus is the schema descriptor for status field.
	uploadjobDescStatus := uploadjobFields[2].Descriptor()
	// uploadjob.DefaultStatus holds the default value on creation for the status field.
	uploadjob.DefaultStatus = uploadjobDescStatus.Default.(string)
	// uploadjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	uploadjob.StatusValidator = uploadjobDescStatus.Validators[0].(func(string) error)
	// uploadjobDescCompletedChunks is the schema descriptor for completed_chunks field.
	uploadjobDescCompletedChunks := uploadjobFields[5].Descriptor()
	// uploadjob.DefaultCompletedChunks holds the default value on creation for the completed_chunks field.
	uploadjob.DefaultCompletedChunks = uploadjobDescCompletedChunks.Default.(int)
	// uploadjobDescProcessedRows is the schema descriptor for processed_rows field.
	uploadjobDescProcessedRows := uploadjobFields[6].Descriptor()
	// uploadjob.DefaultProcessedRows holds the default value on creation for the processed_rows field.
	uploadjob.DefaultProcessedRows = uploadjobDescProcessedRows.Default.(int)
	// uploadjobDescSuccessfulRows is the schema descriptor for successful_rows field.
	uploadjobDescSuccessfulRows := uploadjobFields[7].Descriptor()
	// uploadjob.DefaultSuccessfulRows holds the default value on creation for the successful_rows field.
	uploadjob.DefaultSuccessfulRows = uploadjobDescSuccessfulRows.Default.(int)
	// uploadjobDescFailedRows is the schema descriptor for failed_rows field.
	uploadjobDescFailedRows := uploadjobFields[8].Descriptor()
	// uploadjob.DefaultFailedRows holds the default value on creation for the failed_rows field.
	uploadjob.DefaultFailedRows = uploadjobDescFailedRows.Default.(int)
	// uploadjobDescScopeType is the schema descriptor for scope_type field.
	uploadjobDescScopeType := uploadjobFields[11].Descriptor()
	// uploadjob.ScopeTypeValidator is a validator for the "scope_type" field. It is called by the builders before save.
	uploadjob.ScopeTypeValidator = func() func(string) error {
		validators := uploadjobDescScopeType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(scope_type string) error {
			for _, fn := range fns {
				if err := fn(scope_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// uploadjobDescCreatedAt is the schema descriptor for created_at field.
	uploadjobDescCreatedAt := uploadjobFields[15].Descriptor()
	// uploadjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	uploadjob.DefaultCreatedAt = uploadjobDescCreatedAt.Default.(func() time.Time)
	// uploadjobDescID is the schema descriptor for id field.
	uploadjobDescID := uploadjobFields[0].Descriptor()
	// uploadjob.DefaultID holds the default value on creation for the id field.
	uploadjob.DefaultID = uploadjobDescID.Default.(func() uuid.UUID)
}
