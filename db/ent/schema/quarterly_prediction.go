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

type QuarterlyPrediction struct{ ent.Schema }

func (QuarterlyPrediction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "quarterly_prediction"},
	}
}

func (QuarterlyPrediction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("company_id", uuid.UUID{}),
		field.Int("reporting_year").Positive().Immutable(),
		field.Int("reporting_quarter").Min(1).Max(4).Immutable(),
		field.JSON("ratios", map[string]string{}),
		field.Float("logit_probability"),
		field.Float("gbm_probability"),
		// unweighted mean of the two model probabilities
		field.Float("ensemble_probability"),
		field.String("risk_level").NotEmpty().
			Validate(utils.EnumValidator(constants.RiskLevelStrings()...)),
		field.Float("confidence"),
		field.UUID("job_id", uuid.UUID{}),
		field.Int("chunk_index"),
		field.Int("row_index"),
		field.Time("created_at").Default(time.Now),
	}
}

func (QuarterlyPrediction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("quarterly_predictions").
			Field("company_id").
			Unique().
			Required(),
	}
}

func (QuarterlyPrediction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id", "reporting_year", "reporting_quarter").Unique(),
		index.Fields("job_id"),
	}
}
