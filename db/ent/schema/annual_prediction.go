package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/seyi-adeleke/riskscore/constants"
	"github.com/seyi-adeleke/riskscore/db/ent/schema/utils"
)

type AnnualPrediction struct{ ent.Schema }

func (AnnualPrediction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "annual_prediction"},
	}
}

func (AnnualPrediction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("company_id", uuid.UUID{}),
		field.Int("reporting_year").Positive().Immutable(),
		// raw cell snapshot of the scored row, keyed by canonical ratio name
		field.JSON("ratios", map[string]string{}),
		field.Float("probability"),
		field.String("risk_level").NotEmpty().
			Validate(utils.EnumValidator(constants.RiskLevelStrings()...)),
		field.Float("confidence"),
		// audit linkage back to the bulk upload that created the row
		field.UUID("job_id", uuid.UUID{}),
		field.Int("chunk_index"),
		field.Int("row_index"),
		field.Time("created_at").Default(time.Now),
	}
}

func (AnnualPrediction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("annual_predictions").
			Field("company_id").
			Unique().
			Required(),
	}
}

func (AnnualPrediction) Indexes() []ent.Index {
	return []ent.Index{
		// one prediction per (company, reporting period)
		index.Fields("company_id", "reporting_year").Unique(),
		index.Fields("job_id"),
	}
}
