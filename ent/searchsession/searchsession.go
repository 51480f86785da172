// Code generated by ent, DO NOT EDIT.

package searchsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the searchsession type in the database.
	Label = "search_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "search_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPipelineStage holds the string denoting the pipeline_stage field in the database.
	FieldPipelineStage = "pipeline_stage"
	// FieldSectors holds the string denoting the sectors field in the database.
	FieldSectors = "sectors"
	// FieldUfs holds the string denoting the ufs field in the database.
	FieldUfs = "ufs"
	// FieldDataInicial holds the string denoting the data_inicial field in the database.
	FieldDataInicial = "data_inicial"
	// FieldDataFinal holds the string denoting the data_final field in the database.
	FieldDataFinal = "data_final"
	// FieldCustomKeywords holds the string denoting the custom_keywords field in the database.
	FieldCustomKeywords = "custom_keywords"
	// FieldFilters holds the string denoting the filters field in the database.
	FieldFilters = "filters"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldErrorCode holds the string denoting the error_code field in the database.
	FieldErrorCode = "error_code"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldTotalRaw holds the string denoting the total_raw field in the database.
	FieldTotalRaw = "total_raw"
	// FieldTotalFiltered holds the string denoting the total_filtered field in the database.
	FieldTotalFiltered = "total_filtered"
	// FieldValorTotal holds the string denoting the valor_total field in the database.
	FieldValorTotal = "valor_total"
	// FieldResumoExecutivo holds the string denoting the resumo_executivo field in the database.
	FieldResumoExecutivo = "resumo_executivo"
	// FieldDestaques holds the string denoting the destaques field in the database.
	FieldDestaques = "destaques"
	// FieldExcelPath holds the string denoting the excel_path field in the database.
	FieldExcelPath = "excel_path"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTransitions holds the string denoting the transitions edge name in mutations.
	EdgeTransitions = "transitions"
	// SearchStateTransitionFieldID holds the string denoting the ID field of the SearchStateTransition.
	SearchStateTransitionFieldID = "id"
	// Table holds the table name of the searchsession in the database.
	Table = "search_sessions"
	// TransitionsTable is the table that holds the transitions relation/edge.
	TransitionsTable = "search_state_transitions"
	// TransitionsInverseTable is the table name for the SearchStateTransition entity.
	// It exists in this package in order to avoid circular dependency with the "searchstatetransition" package.
	TransitionsInverseTable = "search_state_transitions"
	// TransitionsColumn is the table column denoting the transitions relation/edge.
	TransitionsColumn = "search_id"
)

// Columns holds all SQL columns for searchsession fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldStatus,
	FieldPipelineStage,
	FieldSectors,
	FieldUfs,
	FieldDataInicial,
	FieldDataFinal,
	FieldCustomKeywords,
	FieldFilters,
	FieldStartedAt,
	FieldCompletedAt,
	FieldErrorCode,
	FieldErrorMessage,
	FieldTotalRaw,
	FieldTotalFiltered,
	FieldValorTotal,
	FieldResumoExecutivo,
	FieldDestaques,
	FieldExcelPath,
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
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultTotalRaw holds the default value on creation for the "total_raw" field.
	DefaultTotalRaw int
	// DefaultTotalFiltered holds the default value on creation for the "total_filtered" field.
	DefaultTotalFiltered int
	// DefaultValorTotal holds the default value on creation for the "valor_total" field.
	DefaultValorTotal float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusCreated is the default value of the Status enum.
const DefaultStatus = StatusCreated

// Status values.
const (
	StatusCreated     Status = "created"
	StatusValidating  Status = "validating"
	StatusFetching    Status = "fetching"
	StatusFiltering   Status = "filtering"
	StatusEnriching   Status = "enriching"
	StatusGenerating  Status = "generating"
	StatusPersisting  Status = "persisting"
	StatusCompleted   Status = "completed"
	StatusFailed      Status = "failed"
	StatusRateLimited Status = "rate_limited"
	StatusTimedOut    Status = "timed_out"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusCreated, StatusValidating, StatusFetching, StatusFiltering, StatusEnriching, StatusGenerating, StatusPersisting, StatusCompleted, StatusFailed, StatusRateLimited, StatusTimedOut:
		return nil
	default:
		return fmt.Errorf("searchsession: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the SearchSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPipelineStage orders the results by the pipeline_stage field.
func ByPipelineStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPipelineStage, opts...).ToFunc()
}

// ByDataInicial orders the results by the data_inicial field.
func ByDataInicial(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDataInicial, opts...).ToFunc()
}

// ByDataFinal orders the results by the data_final field.
func ByDataFinal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDataFinal, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByErrorCode orders the results by the error_code field.
func ByErrorCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCode, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByTotalRaw orders the results by the total_raw field.
func ByTotalRaw(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalRaw, opts...).ToFunc()
}

// ByTotalFiltered orders the results by the total_filtered field.
func ByTotalFiltered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalFiltered, opts...).ToFunc()
}

// ByValorTotal orders the results by the valor_total field.
func ByValorTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValorTotal, opts...).ToFunc()
}

// ByResumoExecutivo orders the results by the resumo_executivo field.
func ByResumoExecutivo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResumoExecutivo, opts...).ToFunc()
}

// ByExcelPath orders the results by the excel_path field.
func ByExcelPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExcelPath, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTransitionsCount orders the results by transitions count.
func ByTransitionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTransitionsStep(), opts...)
	}
}

// ByTransitions orders the results by transitions terms.
func ByTransitions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTransitionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTransitionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TransitionsInverseTable, SearchStateTransitionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TransitionsTable, TransitionsColumn),
	)
}
