package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Profile is the per-user account record the quota service consults for
// admin/master bypass and trial expiry.
type Profile struct {
	ent.Schema
}

// Fields of the Profile.
func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.String("email").
			Optional(),
		field.Bool("is_admin").
			Default(false),
		field.String("plan_type").
			Default("free"),
		field.Time("trial_expires_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
