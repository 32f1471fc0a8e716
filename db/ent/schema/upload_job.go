package schema

import (
	"encoding/json"
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

type UploadJob struct{ ent.Schema }

func (UploadJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "upload_job"},
	}
}

func (UploadJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("job_type").NotEmpty().Immutable().
			Validate(utils.EnumValidator(constants.JobTypeStrings()...)),
		field.String("status").Default(string(constants.JobStatusPending)).
			Validate(utils.EnumValidator(constants.JobStatusStrings()...)),
		field.Int("total_rows"),
		field.Int("total_chunks"),
		field.Int("completed_chunks").Default(0),
		field.Int("processed_rows").Default(0),
		field.Int("successful_rows").Default(0),
		field.Int("failed_rows").Default(0),
		field.String("error_message").Optional().Nillable(),
		// bounded array of row-error entries, capped at constants.MaxErrorDetails
		field.JSON("error_details", json.RawMessage{}).Optional(),
		field.String("scope_type").NotEmpty().
			Validate(utils.EnumValidator(constants.ScopeTypeStrings()...)),
		field.UUID("scope_id", uuid.UUID{}),
		field.Time("started_at").Optional().Nillable(),
		field.Time("completed_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (UploadJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("chunk_reports", ChunkReport.Type),
	}
}

func (UploadJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("scope_type", "scope_id"),
	}
}
