// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString, Default: "info"},
		{Name: "title", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "search_id", Type: field.TypeString, Nullable: true},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "message_user_id_read",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[1], MessagesColumns[6]},
			},
			{
				Name:    "message_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[1], MessagesColumns[7]},
			},
		},
	}
	// MonthlyQuotaColumns holds the columns for the "monthly_quota" table.
	MonthlyQuotaColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "month_key", Type: field.TypeString},
		{Name: "searches_count", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MonthlyQuotaTable holds the schema information for the "monthly_quota" table.
	MonthlyQuotaTable = &schema.Table{
		Name:       "monthly_quota",
		Columns:    MonthlyQuotaColumns,
		PrimaryKey: []*schema.Column{MonthlyQuotaColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "monthlyquota_user_id_month_key",
				Unique:  true,
				Columns: []*schema.Column{MonthlyQuotaColumns[1], MonthlyQuotaColumns[2]},
			},
		},
	}
	// OauthTokensColumns holds the columns for the "oauth_tokens" table.
	OauthTokensColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "access_token_encrypted", Type: field.TypeString, Size: 2147483647},
		{Name: "refresh_token_encrypted", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// OauthTokensTable holds the schema information for the "oauth_tokens" table.
	OauthTokensTable = &schema.Table{
		Name:       "oauth_tokens",
		Columns:    OauthTokensColumns,
		PrimaryKey: []*schema.Column{OauthTokensColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "oauthtoken_user_id_provider",
				Unique:  true,
				Columns: []*schema.Column{OauthTokensColumns[1], OauthTokensColumns[2]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "is_admin", Type: field.TypeBool, Default: false},
		{Name: "plan_type", Type: field.TypeString, Default: "free"},
		{Name: "trial_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// SearchSessionsColumns holds the columns for the "search_sessions" table.
	SearchSessionsColumns = []*schema.Column{
		{Name: "search_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"created", "validating", "fetching", "filtering", "enriching", "generating", "persisting", "completed", "failed", "rate_limited", "timed_out"}, Default: "created"},
		{Name: "pipeline_stage", Type: field.TypeString, Nullable: true},
		{Name: "sectors", Type: field.TypeJSON, Nullable: true},
		{Name: "ufs", Type: field.TypeJSON, Nullable: true},
		{Name: "data_inicial", Type: field.TypeTime, Nullable: true},
		{Name: "data_final", Type: field.TypeTime, Nullable: true},
		{Name: "custom_keywords", Type: field.TypeJSON, Nullable: true},
		{Name: "filters", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "total_raw", Type: field.TypeInt, Default: 0},
		{Name: "total_filtered", Type: field.TypeInt, Default: 0},
		{Name: "valor_total", Type: field.TypeFloat64, Default: 0},
		{Name: "resumo_executivo", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "destaques", Type: field.TypeJSON, Nullable: true},
		{Name: "excel_path", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SearchSessionsTable holds the schema information for the "search_sessions" table.
	SearchSessionsTable = &schema.Table{
		Name:       "search_sessions",
		Columns:    SearchSessionsColumns,
		PrimaryKey: []*schema.Column{SearchSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "searchsession_user_id",
				Unique:  false,
				Columns: []*schema.Column{SearchSessionsColumns[1]},
			},
			{
				Name:    "searchsession_status",
				Unique:  false,
				Columns: []*schema.Column{SearchSessionsColumns[2]},
			},
			{
				Name:    "searchsession_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{SearchSessionsColumns[2], SearchSessionsColumns[10]},
			},
			{
				Name:    "searchsession_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SearchSessionsColumns[1], SearchSessionsColumns[20]},
			},
		},
	}
	// SearchStateTransitionsColumns holds the columns for the "search_state_transitions" table.
	SearchStateTransitionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "from_state", Type: field.TypeString},
		{Name: "to_state", Type: field.TypeString},
		{Name: "stage", Type: field.TypeString, Nullable: true},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "duration_since_previous_ms", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "search_id", Type: field.TypeString},
	}
	// SearchStateTransitionsTable holds the schema information for the "search_state_transitions" table.
	SearchStateTransitionsTable = &schema.Table{
		Name:       "search_state_transitions",
		Columns:    SearchStateTransitionsColumns,
		PrimaryKey: []*schema.Column{SearchStateTransitionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "search_state_transitions_search_sessions_transitions",
				Columns:    []*schema.Column{SearchStateTransitionsColumns[7]},
				RefColumns: []*schema.Column{SearchSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "searchstatetransition_search_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SearchStateTransitionsColumns[7], SearchStateTransitionsColumns[6]},
			},
		},
	}
	// UserSubscriptionsColumns holds the columns for the "user_subscriptions" table.
	UserSubscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "plan_id", Type: field.TypeString, Default: "FREE"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "canceled", "past_due", "trialing"}, Default: "active"},
		{Name: "current_period_end", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UserSubscriptionsTable holds the schema information for the "user_subscriptions" table.
	UserSubscriptionsTable = &schema.Table{
		Name:       "user_subscriptions",
		Columns:    UserSubscriptionsColumns,
		PrimaryKey: []*schema.Column{UserSubscriptionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "usersubscription_user_id",
				Unique:  true,
				Columns: []*schema.Column{UserSubscriptionsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		MessagesTable,
		MonthlyQuotaTable,
		OauthTokensTable,
		ProfilesTable,
		SearchSessionsTable,
		SearchStateTransitionsTable,
		UserSubscriptionsTable,
	}
)

func init() {
	SearchStateTransitionsTable.ForeignKeys[0].RefTable = SearchSessionsTable
}
