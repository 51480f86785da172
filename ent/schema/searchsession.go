package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SearchSession holds the schema definition for one search run: inputs,
// lifecycle columns, counts, and generated artifacts.
type SearchSession struct {
	ent.Schema
}

// Fields of the SearchSession.
func (SearchSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("search_id").
			Unique().
			Immutable().
			Comment("Client-supplied search UUID"),
		field.String("user_id"),
		field.Enum("status").
			Values("created", "validating", "fetching", "filtering", "enriching",
				"generating", "persisting", "completed", "failed", "rate_limited", "timed_out").
			Default("created"),
		field.String("pipeline_stage").
			Optional(),

		// Inputs.
		field.JSON("sectors", []string{}).
			Optional(),
		field.JSON("ufs", []string{}).
			Optional(),
		field.Time("data_inicial").
			Optional().
			Nillable(),
		field.Time("data_final").
			Optional().
			Nillable(),
		field.JSON("custom_keywords", []string{}).
			Optional(),
		field.JSON("filters", map[string]interface{}{}).
			Optional().
			Comment("Status/modality/value/esfera/municipality filters as submitted"),

		// Lifecycle.
		field.Time("started_at").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("error_code").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),

		// Counts.
		field.Int("total_raw").
			Default(0),
		field.Int("total_filtered").
			Default(0),
		field.Float("valor_total").
			Default(0),

		// Generated artifacts.
		field.Text("resumo_executivo").
			Optional().
			Nillable(),
		field.JSON("destaques", []map[string]interface{}{}).
			Optional(),
		field.String("excel_path").
			Optional().
			Nillable().
			Comment("Storage path; null when generation or upload failed"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SearchSession.
func (SearchSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("transitions", SearchStateTransition.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the SearchSession.
func (SearchSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("status"),
		index.Fields("status", "started_at"),
		index.Fields("user_id", "created_at"),
	}
}
