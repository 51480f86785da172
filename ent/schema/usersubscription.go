package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserSubscription links a user to a billing plan.
type UserSubscription struct {
	ent.Schema
}

// Fields of the UserSubscription.
func (UserSubscription) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id"),
		field.String("plan_id").
			Default("FREE"),
		field.Enum("status").
			Values("active", "canceled", "past_due", "trialing").
			Default("active"),
		field.Time("current_period_end").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the UserSubscription.
func (UserSubscription) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").
			Unique(),
	}
}
