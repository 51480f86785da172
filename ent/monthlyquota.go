// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/bidiq/bidiq/ent/monthlyquota"
)

// MonthlyQuota is the model entity for the MonthlyQuota schema.
type MonthlyQuota struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// YYYY-MM in UTC
	MonthKey string `json:"month_key,omitempty"`
	// SearchesCount holds the value of the "searches_count" field.
	SearchesCount int `json:"searches_count,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MonthlyQuota) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case monthlyquota.FieldID, monthlyquota.FieldSearchesCount:
			values[i] = new(sql.NullInt64)
		case monthlyquota.FieldUserID, monthlyquota.FieldMonthKey:
			values[i] = new(sql.NullString)
		case monthlyquota.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MonthlyQuota fields.
func (_m *MonthlyQuota) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case monthlyquota.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case monthlyquota.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case monthlyquota.FieldMonthKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field month_key", values[i])
			} else if value.Valid {
				_m.MonthKey = value.String
			}
		case monthlyquota.FieldSearchesCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field searches_count", values[i])
			} else if value.Valid {
				_m.SearchesCount = int(value.Int64)
			}
		case monthlyquota.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MonthlyQuota.
// This includes values selected through modifiers, order, etc.
func (_m *MonthlyQuota) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MonthlyQuota.
// Note that you need to call MonthlyQuota.Unwrap() before calling this method if this MonthlyQuota
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MonthlyQuota) Update() *MonthlyQuotaUpdateOne {
	return NewMonthlyQuotaClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MonthlyQuota entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MonthlyQuota) Unwrap() *MonthlyQuota {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MonthlyQuota is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MonthlyQuota) String() string {
	var builder strings.Builder
	builder.WriteString("MonthlyQuota(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("month_key=")
	builder.WriteString(_m.MonthKey)
	builder.WriteString(", ")
	builder.WriteString("searches_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SearchesCount))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MonthlyQuotaSlice is a parsable slice of MonthlyQuota.
type MonthlyQuotaSlice []*MonthlyQuota
