// Code generated by ent, DO NOT EDIT.

package monthlyquota

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the monthlyquota type in the database.
	Label = "monthly_quota"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldMonthKey holds the string denoting the month_key field in the database.
	FieldMonthKey = "month_key"
	// FieldSearchesCount holds the string denoting the searches_count field in the database.
	FieldSearchesCount = "searches_count"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the monthlyquota in the database.
	Table = "monthly_quota"
)

// Columns holds all SQL columns for monthlyquota fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldMonthKey,
	FieldSearchesCount,
	FieldUpdatedAt,
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
	// DefaultSearchesCount holds the default value on creation for the "searches_count" field.
	DefaultSearchesCount int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the MonthlyQuota queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByMonthKey orders the results by the month_key field.
func ByMonthKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonthKey, opts...).ToFunc()
}

// BySearchesCount orders the results by the searches_count field.
func BySearchesCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSearchesCount, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
