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
)

// SearchSession is the model entity for the SearchSession schema.
type SearchSession struct {
	config `json:"-"`
	// ID of the ent.
	// Client-supplied search UUID
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Status holds the value of the "status" field.
	Status searchsession.Status `json:"status,omitempty"`
	// PipelineStage holds the value of the "pipeline_stage" field.
	PipelineStage string `json:"pipeline_stage,omitempty"`
	// Sectors holds the value of the "sectors" field.
	Sectors []string `json:"sectors,omitempty"`
	// Ufs holds the value of the "ufs" field.
	Ufs []string `json:"ufs,omitempty"`
	// DataInicial holds the value of the "data_inicial" field.
	DataInicial *time.Time `json:"data_inicial,omitempty"`
	// DataFinal holds the value of the "data_final" field.
	DataFinal *time.Time `json:"data_final,omitempty"`
	// CustomKeywords holds the value of the "custom_keywords" field.
	CustomKeywords []string `json:"custom_keywords,omitempty"`
	// Status/modality/value/esfera/municipality filters as submitted
	Filters map[string]interface{} `json:"filters,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ErrorCode holds the value of the "error_code" field.
	ErrorCode *string `json:"error_code,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// TotalRaw holds the value of the "total_raw" field.
	TotalRaw int `json:"total_raw,omitempty"`
	// TotalFiltered holds the value of the "total_filtered" field.
	TotalFiltered int `json:"total_filtered,omitempty"`
	// ValorTotal holds the value of the "valor_total" field.
	ValorTotal float64 `json:"valor_total,omitempty"`
	// ResumoExecutivo holds the value of the "resumo_executivo" field.
	ResumoExecutivo *string `json:"resumo_executivo,omitempty"`
	// Destaques holds the value of the "destaques" field.
	Destaques []map[string]interface{} `json:"destaques,omitempty"`
	// Storage path; null when generation or upload failed
	ExcelPath *string `json:"excel_path,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SearchSessionQuery when eager-loading is set.
	Edges        SearchSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SearchSessionEdges holds the relations/edges for other nodes in the graph.
type SearchSessionEdges struct {
	// Transitions holds the value of the transitions edge.
	Transitions []*SearchStateTransition `json:"transitions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TransitionsOrErr returns the Transitions value or an error if the edge
// was not loaded in eager-loading.
func (e SearchSessionEdges) TransitionsOrErr() ([]*SearchStateTransition, error) {
	if e.loadedTypes[0] {
		return e.Transitions, nil
	}
	return nil, &NotLoadedError{edge: "transitions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SearchSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case searchsession.FieldSectors, searchsession.FieldUfs, searchsession.FieldCustomKeywords, searchsession.FieldFilters, searchsession.FieldDestaques:
			values[i] = new([]byte)
		case searchsession.FieldValorTotal:
			values[i] = new(sql.NullFloat64)
		case searchsession.FieldTotalRaw, searchsession.FieldTotalFiltered:
			values[i] = new(sql.NullInt64)
		case searchsession.FieldID, searchsession.FieldUserID, searchsession.FieldStatus, searchsession.FieldPipelineStage, searchsession.FieldErrorCode, searchsession.FieldErrorMessage, searchsession.FieldResumoExecutivo, searchsession.FieldExcelPath:
			values[i] = new(sql.NullString)
		case searchsession.FieldDataInicial, searchsession.FieldDataFinal, searchsession.FieldStartedAt, searchsession.FieldCompletedAt, searchsession.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SearchSession fields.
func (_m *SearchSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case searchsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case searchsession.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case searchsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = searchsession.Status(value.String)
			}
		case searchsession.FieldPipelineStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pipeline_stage", values[i])
			} else if value.Valid {
				_m.PipelineStage = value.String
			}
		case searchsession.FieldSectors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field sectors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Sectors); err != nil {
					return fmt.Errorf("unmarshal field sectors: %w", err)
				}
			}
		case searchsession.FieldUfs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ufs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Ufs); err != nil {
					return fmt.Errorf("unmarshal field ufs: %w", err)
				}
			}
		case searchsession.FieldDataInicial:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field data_inicial", values[i])
			} else if value.Valid {
				_m.DataInicial = new(time.Time)
				*_m.DataInicial = value.Time
			}
		case searchsession.FieldDataFinal:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field data_final", values[i])
			} else if value.Valid {
				_m.DataFinal = new(time.Time)
				*_m.DataFinal = value.Time
			}
		case searchsession.FieldCustomKeywords:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field custom_keywords", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CustomKeywords); err != nil {
					return fmt.Errorf("unmarshal field custom_keywords: %w", err)
				}
			}
		case searchsession.FieldFilters:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field filters", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Filters); err != nil {
					return fmt.Errorf("unmarshal field filters: %w", err)
				}
			}
		case searchsession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case searchsession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case searchsession.FieldErrorCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_code", values[i])
			} else if value.Valid {
				_m.ErrorCode = new(string)
				*_m.ErrorCode = value.String
			}
		case searchsession.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case searchsession.FieldTotalRaw:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_raw", values[i])
			} else if value.Valid {
				_m.TotalRaw = int(value.Int64)
			}
		case searchsession.FieldTotalFiltered:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_filtered", values[i])
			} else if value.Valid {
				_m.TotalFiltered = int(value.Int64)
			}
		case searchsession.FieldValorTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field valor_total", values[i])
			} else if value.Valid {
				_m.ValorTotal = value.Float64
			}
		case searchsession.FieldResumoExecutivo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resumo_executivo", values[i])
			} else if value.Valid {
				_m.ResumoExecutivo = new(string)
				*_m.ResumoExecutivo = value.String
			}
		case searchsession.FieldDestaques:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field destaques", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Destaques); err != nil {
					return fmt.Errorf("unmarshal field destaques: %w", err)
				}
			}
		case searchsession.FieldExcelPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field excel_path", values[i])
			} else if value.Valid {
				_m.ExcelPath = new(string)
				*_m.ExcelPath = value.String
			}
		case searchsession.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SearchSession.
// This includes values selected through modifiers, order, etc.
func (_m *SearchSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTransitions queries the "transitions" edge of the SearchSession entity.
func (_m *SearchSession) QueryTransitions() *SearchStateTransitionQuery {
	return NewSearchSessionClient(_m.config).QueryTransitions(_m)
}

// Update returns a builder for updating this SearchSession.
// Note that you need to call SearchSession.Unwrap() before calling this method if this SearchSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SearchSession) Update() *SearchSessionUpdateOne {
	return NewSearchSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SearchSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SearchSession) Unwrap() *SearchSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SearchSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SearchSession) String() string {
	var builder strings.Builder
	builder.WriteString("SearchSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("pipeline_stage=")
	builder.WriteString(_m.PipelineStage)
	builder.WriteString(", ")
	builder.WriteString("sectors=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sectors))
	builder.WriteString(", ")
	builder.WriteString("ufs=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ufs))
	builder.WriteString(", ")
	if v := _m.DataInicial; v != nil {
		builder.WriteString("data_inicial=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DataFinal; v != nil {
		builder.WriteString("data_final=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("custom_keywords=")
	builder.WriteString(fmt.Sprintf("%v", _m.CustomKeywords))
	builder.WriteString(", ")
	builder.WriteString("filters=")
	builder.WriteString(fmt.Sprintf("%v", _m.Filters))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorCode; v != nil {
		builder.WriteString("error_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("total_raw=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalRaw))
	builder.WriteString(", ")
	builder.WriteString("total_filtered=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalFiltered))
	builder.WriteString(", ")
	builder.WriteString("valor_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValorTotal))
	builder.WriteString(", ")
	if v := _m.ResumoExecutivo; v != nil {
		builder.WriteString("resumo_executivo=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("destaques=")
	builder.WriteString(fmt.Sprintf("%v", _m.Destaques))
	builder.WriteString(", ")
	if v := _m.ExcelPath; v != nil {
		builder.WriteString("excel_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SearchSessions is a parsable slice of SearchSession.
type SearchSessions []*SearchSession
