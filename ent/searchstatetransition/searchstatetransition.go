// Code generated by ent, DO NOT EDIT.

package searchstatetransition

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the searchstatetransition type in the database.
	Label = "search_state_transition"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSearchID holds the string denoting the search_id field in the database.
	FieldSearchID = "search_id"
	// FieldFromState holds the string denoting the from_state field in the database.
	FieldFromState = "from_state"
	// FieldToState holds the string denoting the to_state field in the database.
	FieldToState = "to_state"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldDetails holds the string denoting the details field in the database.
	FieldDetails = "details"
	// FieldDurationSincePreviousMs holds the string denoting the duration_since_previous_ms field in the database.
	FieldDurationSincePreviousMs = "duration_since_previous_ms"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// SearchSessionFieldID holds the string denoting the ID field of the SearchSession.
	SearchSessionFieldID = "search_id"
	// Table holds the table name of the searchstatetransition in the database.
	Table = "search_state_transitions"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "search_state_transitions"
	// SessionInverseTable is the table name for the SearchSession entity.
	// It exists in this package in order to avoid circular dependency with the "searchsession" package.
	SessionInverseTable = "search_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "search_id"
)

// Columns holds all SQL columns for searchstatetransition fields.
var Columns = []string{
	FieldID,
	FieldSearchID,
	FieldFromState,
	FieldToState,
	FieldStage,
	FieldDetails,
	FieldDurationSincePreviousMs,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultDurationSincePreviousMs holds the default value on creation for the "duration_since_previous_ms" field.
	DefaultDurationSincePreviousMs int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the SearchStateTransition queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySearchID orders the results by the search_id field.
func BySearchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSearchID, opts...).ToFunc()
}

// ByFromState orders the results by the from_state field.
func ByFromState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromState, opts...).ToFunc()
}

// ByToState orders the results by the to_state field.
func ByToState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToState, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByDurationSincePreviousMs orders the results by the duration_since_previous_ms field.
func ByDurationSincePreviousMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSincePreviousMs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, SearchSessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
