// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnnualPredictionColumns holds the columns for the "annual_prediction" table.
	AnnualPredictionColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "reporting_year", Type: field.TypeInt},
		{Name: "ratios", Type: field.TypeJSON},
		{Name: "probability", Type: field.TypeFloat64},
		{Name: "risk_level", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "job_id", Type: field.TypeUUID},
		{Name: "chunk_index", Type: field.TypeInt},
		{Name: "row_index", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeUUID},
	}
	// AnnualPredictionTable holds the schema information for the "annual_prediction" table.
	AnnualPredictionTable = &schema.Table{
		Name:       "annual_prediction",
		Columns:    AnnualPredictionColumns,
		PrimaryKey: []*schema.Column{AnnualPredictionColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "annual_prediction_company_annual_predictions",
				Columns:    []*schema.Column{AnnualPredictionColumns[10]},
				RefColumns: []*schema.Column{CompanyColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "annualprediction_company_id_reporting_year",
				Unique:  true,
				Columns: []*schema.Column{AnnualPredictionColumns[10], AnnualPredictionColumns[1]},
			},
			{
				Name:    "annualprediction_job_id",
				Unique:  false,
				Columns: []*schema.Column{AnnualPredictionColumns[6]},
			},
		},
	}
	// ChunkReportColumns holds the columns for the "chunk_report" table.
	ChunkReportColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "chunk_index", Type: field.TypeInt},
		{Name: "rows_processed", Type: field.TypeInt},
		{Name: "rows_successful", Type: field.TypeInt},
		{Name: "rows_failed", Type: field.TypeInt},
		{Name: "reported_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// ChunkReportTable holds the schema information for the "chunk_report" table.
	ChunkReportTable = &schema.Table{
		Name:       "chunk_report",
		Columns:    ChunkReportColumns,
		PrimaryKey: []*schema.Column{ChunkReportColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chunk_report_upload_job_chunk_reports",
				Columns:    []*schema.Column{ChunkReportColumns[6]},
				RefColumns: []*schema.Column{UploadJobColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chunkreport_job_id_chunk_index",
				Unique:  true,
				Columns: []*schema.Column{ChunkReportColumns[6], ChunkReportColumns[1]},
			},
		},
	}
	// CompanyColumns holds the columns for the "company" table.
	CompanyColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "symbol", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "sector", Type: field.TypeString, Nullable: true},
		{Name: "market_cap", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(20,2)"}},
		{Name: "scope_type", Type: field.TypeString},
		{Name: "scope_id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CompanyTable holds the schema information for the "company" table.
	CompanyTable = &schema.Table{
		Name:       "company",
		Columns:    CompanyColumns,
		PrimaryKey: []*schema.Column{CompanyColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "company_symbol_scope_type_scope_id",
				Unique:  true,
				Columns: []*schema.Column{CompanyColumns[1], CompanyColumns[5], CompanyColumns[6]},
			},
		},
	}
	// QuarterlyPredictionColumns holds the columns for the "quarterly_prediction" table.
	QuarterlyPredictionColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "reporting_year", Type: field.TypeInt},
		{Name: "reporting_quarter", Type: field.TypeInt},
		{Name: "ratios", Type: field.TypeJSON},
		{Name: "logit_probability", Type: field.TypeFloat64},
		{Name: "gbm_probability", Type: field.TypeFloat64},
		{Name: "ensemble_probability", Type: field.TypeFloat64},
		{Name: "risk_level", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "job_id", Type: field.TypeUUID},
		{Name: "chunk_index", Type: field.TypeInt},
		{Name: "row_index", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeUUID},
	}
	// QuarterlyPredictionTable holds the schema information for the "quarterly_prediction" table.
	QuarterlyPredictionTable = &schema.Table{
		Name:       "quarterly_prediction",
		Columns:    QuarterlyPredictionColumns,
		PrimaryKey: []*schema.Column{QuarterlyPredictionColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "quarterly_prediction_company_quarterly_predictions",
				Columns:    []*schema.Column{QuarterlyPredictionColumns[13]},
				RefColumns: []*schema.Column{CompanyColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "quarterlyprediction_company_id_reporting_year_reporting_quarter",
				Unique:  true,
				Columns: []*schema.Column{QuarterlyPredictionColumns[13], QuarterlyPredictionColumns[1], QuarterlyPredictionColumns[2]},
			},
			{
				Name:    "quarterlyprediction_job_id",
				Unique:  false,
				Columns: []*schema.Column{QuarterlyPredictionColumns[9]},
			},
		},
	}
	// UploadJobColumns holds the columns for the "upload_job" table.
	UploadJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "job_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "total_rows", Type: field.TypeInt},
		{Name: "total_chunks", Type: field.TypeInt},
		{Name: "completed_chunks", Type: field.TypeInt, Default: 0},
		{Name: "processed_rows", Type: field.TypeInt, Default: 0},
		{Name: "successful_rows", Type: field.TypeInt, Default: 0},
		{Name: "failed_rows", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "error_details", Type: field.TypeJSON, Nullable: true},
		{Name: "scope_type", Type: field.TypeString},
		{Name: "scope_id", Type: field.TypeUUID},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UploadJobTable holds the schema information for the "upload_job" table.
	UploadJobTable = &schema.Table{
		Name:       "upload_job",
		Columns:    UploadJobColumns,
		PrimaryKey: []*schema.Column{UploadJobColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "uploadjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{UploadJobColumns[2], UploadJobColumns[15]},
			},
			{
				Name:    "uploadjob_scope_type_scope_id",
				Unique:  false,
				Columns: []*schema.Column{UploadJobColumns[11], UploadJobColumns[12]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnnualPredictionTable,
		ChunkReportTable,
		CompanyTable,
		QuarterlyPredictionTable,
		UploadJobTable,
	}
)

func init() {
	AnnualPredictionTable.ForeignKeys[0].RefTable = CompanyTable
	AnnualPredictionTable.Annotation = &entsql.Annotation{
		Table: "annual_prediction",
	}
	ChunkReportTable.ForeignKeys[0].RefTable = UploadJobTable
	ChunkReportTable.Annotation = &entsql.Annotation{
		Table: "chunk_report",
	}
	CompanyTable.Annotation = &entsql.Annotation{
		Table: "company",
	}
	QuarterlyPredictionTable.ForeignKeys[0].RefTable = CompanyTable
	QuarterlyPredictionTable.Annotation = &entsql.Annotation{
		Table: "quarterly_prediction",
	}
	UploadJobTable.Annotation = &entsql.Annotation{
		Table: "upload_job",
	}
}
