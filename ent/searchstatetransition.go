// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/bidiq/bidiq/ent/searchsession"
	"github.com/bidiq/bidiq/ent/searchstatetransition"
)

// SearchStateTransition is the model entity for the SearchStateTransition schema.
type SearchStateTransition struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SearchID holds the value of the "search_id" field.
	SearchID string `json:"search_id,omitempty"`
	// FromState holds the value of the "from_state" field.
	FromState string `json:"from_state,omitempty"`
	// ToState holds the value of the "to_state" field.
	ToState string `json:"to_state,omitempty"`
	// Stage holds the value of the "stage" field.
	Stage string `json:"stage,omitempty"`
	// Details holds the value of the "details" field.
	Details map[string]interface{} `json:"details,omitempty"`
	// DurationSincePreviousMs holds the value of the "duration_since_previous_ms" field.
	DurationSincePreviousMs int64 `json:"duration_since_previous_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SearchStateTransitionQuery when eager-loading is set.
	Edges        SearchStateTransitionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SearchStateTransitionEdges holds the relations/edges for other nodes in the graph.
type SearchStateTransitionEdges struct {
	// Session holds the value of the session edge.
	Session *SearchSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SearchStateTransitionEdges) SessionOrErr() (*SearchSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: searchsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SearchStateTransition) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case searchstatetransition.FieldDetails:
			values[i] = new([]byte)
		case searchstatetransition.FieldID, searchstatetransition.FieldDurationSincePreviousMs:
			values[i] = new(sql.NullInt64)
		case searchstatetransition.FieldSearchID, searchstatetransition.FieldFromState, searchstatetransition.FieldToState, searchstatetransition.FieldStage:
			values[i] = new(sql.NullString)
		case searchstatetransition.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SearchStateTransition fields.
func (_m *SearchStateTransition) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case searchstatetransition.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case searchstatetransition.FieldSearchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field search_id", values[i])
			} else if value.Valid {
				_m.SearchID = value.String
			}
		case searchstatetransition.FieldFromState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_state", values[i])
			} else if value.Valid {
				_m.FromState = value.String
			}
		case searchstatetransition.FieldToState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_state", values[i])
			} else if value.Valid {
				_m.ToState = value.String
			}
		case searchstatetransition.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = value.String
			}
		case searchstatetransition.FieldDetails:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field details", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Details); err != nil {
					return fmt.Errorf("unmarshal field details: %w", err)
				}
			}
		case searchstatetransition.FieldDurationSincePreviousMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_since_previous_ms", values[i])
			} else if value.Valid {
				_m.DurationSincePreviousMs = value.Int64
			}
		case searchstatetransition.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SearchStateTransition.
// This includes values selected through modifiers, order, etc.
func (_m *SearchStateTransition) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the SearchStateTransition entity.
func (_m *SearchStateTransition) QuerySession() *SearchSessionQuery {
	return NewSearchStateTransitionClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this SearchStateTransition.
// Note that you need to call SearchStateTransition.Unwrap() before calling this method if this SearchStateTransition
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SearchStateTransition) Update() *SearchStateTransitionUpdateOne {
	return NewSearchStateTransitionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SearchStateTransition entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SearchStateTransition) Unwrap() *SearchStateTransition {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SearchStateTransition is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SearchStateTransition) String() string {
	var builder strings.Builder
	builder.WriteString("SearchStateTransition(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("search_id=")
	builder.WriteString(_m.SearchID)
	builder.WriteString(", ")
	builder.WriteString("from_state=")
	builder.WriteString(_m.FromState)
	builder.WriteString(", ")
	builder.WriteString("to_state=")
	builder.WriteString(_m.ToState)
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(_m.Stage)
	builder.WriteString(", ")
	builder.WriteString("details=")
	builder.WriteString(fmt.Sprintf("%v", _m.Details))
	builder.WriteString(", ")
	builder.WriteString("duration_since_previous_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSincePreviousMs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SearchStateTransitions is a parsable slice of SearchStateTransition.
type SearchStateTransitions []*SearchStateTransition
