package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SearchStateTransition is one immutable row of a search's transition log.
type SearchStateTransition struct {
	ent.Schema
}

// Fields of the SearchStateTransition.
func (SearchStateTransition) Fields() []ent.Field {
	return []ent.Field{
		field.String("search_id"),
		field.String("from_state"),
		field.String("to_state"),
		field.String("stage").
			Optional(),
		field.JSON("details", map[string]interface{}{}).
			Optional(),
		field.Int64("duration_since_previous_ms").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SearchStateTransition.
func (SearchStateTransition) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", SearchSession.Type).
			Ref("transitions").
			Field("search_id").
			Unique().
			Required(),
	}
}

// Indexes of the SearchStateTransition.
func (SearchStateTransition) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("search_id", "created_at"),
	}
}
