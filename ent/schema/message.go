package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message is a user-facing notification (search finished, quota warnings).
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id"),
		field.String("kind").
			Default("info"),
		field.String("title"),
		field.Text("body").
			Optional(),
		field.String("search_id").
			Optional(),
		field.Bool("read").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "read"),
		index.Fields("user_id", "created_at"),
	}
}
