package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/seyi-adeleke/riskscore/constants"
	"github.com/seyi-adeleke/riskscore/db/ent/schema/utils"
)

type Company struct{ ent.Schema }

func (Company) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "company"},
	}
}

func (Company) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// symbol is stored uppercased; identity is (symbol, scope_type, scope_id)
		field.String("symbol").NotEmpty(),
		field.String("name").NotEmpty(),
		field.String("sector").Optional().Nillable(),
		field.Float("market_cap").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(20,2)"}),
		field.String("scope_type").NotEmpty().
			Validate(utils.EnumValidator(constants.ScopeTypeStrings()...)),
		field.UUID("scope_id", uuid.UUID{}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Company) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("annual_predictions", AnnualPrediction.Type),
		edge.To("quarterly_predictions", QuarterlyPrediction.Type),
	}
}

func (Company) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("symbol", "scope_type", "scope_id").Unique(),
	}
}
