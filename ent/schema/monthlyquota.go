package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MonthlyQuota counts searches per user per UTC month. The atomic
// check-and-increment lives in a stored procedure (see migrations); this
// entity backs the read paths and the upsert fallback.
type MonthlyQuota struct {
	ent.Schema
}

// Fields of the MonthlyQuota.
func (MonthlyQuota) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id"),
		field.String("month_key").
			Comment("YYYY-MM in UTC"),
		field.Int("searches_count").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the MonthlyQuota.
func (MonthlyQuota) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "month_key").
			Unique(),
	}
}
