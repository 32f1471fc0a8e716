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
)

// ChunkReport is the merge ledger: one row per chunk whose progress delta
// has been applied to its job. The unique (job_id, chunk_index) index is
// what makes progress merging idempotent under task redelivery.
type ChunkReport struct{ ent.Schema }

func (ChunkReport) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "chunk_report"},
	}
}

func (ChunkReport) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("job_id", uuid.UUID{}),
		field.Int("chunk_index"),
		field.Int("rows_processed"),
		field.Int("rows_successful"),
		field.Int("rows_failed"),
		field.Time("reported_at").Default(time.Now),
	}
}

func (ChunkReport) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", UploadJob.Type).
			Ref("chunk_reports").
			Field("job_id").
			Unique().
			Required(),
	}
}

func (ChunkReport) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "chunk_index").Unique(),
	}
}
