// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/bidiq/bidiq/ent/predicate"
	"github.com/bidiq/bidiq/ent/searchsession"
	"github.com/bidiq/bidiq/ent/searchstatetransition"
)

// SearchSessionUpdate is the builder for updating SearchSession entities.
type SearchSessionUpdate struct {
	config
	hooks    []Hook
	mutation *SearchSessionMutation
}

// Where appends a list predicates to the SearchSessionUpdate builder.
func (_u *SearchSessionUpdate) Where(ps ...predicate.SearchSession) *SearchSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SearchSessionUpdate) SetUserID(v string) *SearchSessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SearchSessionUpdate) SetNillableUserID(v *string) *SearchSessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SearchSessionUpdate) SetStatus(v searchsession.Status) *SearchSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SearchSessionUpdate) SetNillableStatus(v *searchsession.Status) *SearchSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPipelineStage sets the "pipeline_stage" field.
func (_u *SearchSessionUpdate) SetPipelineStage(v string) *SearchSessionUpdate {
	_u.mutation.SetPipelineStage(v)
	return _u
}

// SetNillablePipelineStage sets the "pipeline_stage" field if the given value is not nil.
func (_u *SearchSessionUpdate) SetNillablePipelineStage(v *string) *SearchSessionUpdate {
	if v != nil {
		_u.SetPipelineStage(*v)
	}
	return _u
}

// ClearPipelineStage clears the value of the "pipeline_stage" field.
func (_u *SearchSessionUpdate) ClearPipelineStage() *SearchSessionUpdate {
	_u.mutation.ClearPipelineStage()
	return _u
}

// SetSectors sets the "sectors" field.
func (_u *SearchSessionUpdate) SetSectors(v []string) *SearchSessionUpdate {
	_u.mutation.SetSectors(v)
	return _u
}

// AppendSectors appends value to the "sectors" field.
func (_u *SearchSessionUpdate) AppendSectors(v []string) *SearchSessionUpdate {
	_u.mutation.AppendSectors(v)
	return _u
}

// ClearSectors clears the value of the "sectors" field.
func (_u *SearchSessionUpdate) ClearSectors() *SearchSessionUpdate {
	_u.mutation.ClearSectors()
	return _u
}

// SetUfs sets the "ufs" field.
func (_u *SearchSessionUpdate) SetUfs(v []string) *SearchSessionUpdate {
	_u.mutation.SetUfs(v)
	return _u
}

// AppendUfs appends value to the "ufs" field.
func (_u *SearchSessionUpdate) AppendUfs(v []string) *SearchSessionUpdate {
	_u.mutation.AppendUfs(v)
	return _u
}

// ClearUfs clears the value of the "ufs" field.
func (_u *SearchSessionUpdate) ClearUfs() *SearchSessionUpdate {
	_u.mutation.ClearUfs()
	return _u
}

// SetDataInicial sets the "data_inicial" field.
func (_u *SearchSessionUpdate) SetDataInicial(v time.Time) *SearchSessionUpdate {
	_u.mutation.SetDataInicial(v)
	return _u
}

// SetNillableDataInicial sets the "data_inicial" field if the given value is not nil.
func (_u *SearchSessionUpdate) SetNillableDataInicial(v *time.Time) *SearchSessionUpdate {
	if v != nil {
		_u.SetDataInicial(*v)
	}
	return _u
}

// ClearDataInicial clears the value of the "data_inicial" field.
func (_u *SearchSessionUpdate) ClearDataInicial() *SearchSessionUpdate {
	_u.mutation.ClearDataInicial()
	return _u
}

// SetDataFinal sets the "data_final" field.
func (_u *SearchSessionUpdate) SetDataFinal(v time.Time) *SearchSessionUpdate {
	_u.mutation.SetDataFinal(v)
	return _u
}

// SetNillableDataFinal sets the "data_final" field if the given value is not nil.
func (_u *SearchSessionUpdate) SetNillableDataFinal(v *time.Time) *SearchSessionUpdate {
	if v != nil {
		_u.SetDataFinal(*v)
	}
	return _u
}

// ClearDataFinal clears the value of the "data_final" field.
func (_u *SearchSessionUpdate) ClearDataFinal() *SearchSessionUpdate {
	_u.mutation.ClearDataFinal()
	return _u
}

// SetCustomKeywords sets the "custom_keywords" field.
func (_u *SearchSessionUpdate) SetCustomKeywords(v []string) *SearchSessionUpdate {
	_u.mutation.SetCustomKeywords(v)
	return _u
}

// AppendCustomKeywords appends value to the "custom_keywords" field.
func (_u *SearchSessionUpdate) AppendCustomKeywords(v []string) *SearchSessionUpdate {
	_u.mutation.AppendCustomKeywords(v)
	return _u
}

// ClearCustomKeywords clears the value of the "custom_keywords" field.
func (_u *SearchSessionUpdate) ClearCustomKeywords() *SearchSessionUpdate {
	_u.mutation.ClearCustomKeywords()
	return _u
}

// SetFilters sets the "filters" field.
func (_u *SearchSessionUpdate) SetFilters(v map[string]interface{}) *SearchSessionUpdate {
	_u.mutation.SetFilters(v)
	return _u
}

// ClearFilters clears the value of the "filters" field.
func (_u *SearchSessionUpdate) ClearFilters() *SearchSessionUpdate {
	_u.mutation.ClearFilters()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SearchSessionUpdate) SetStartedAt(v time.Time) *SearchSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SearchSessionUpdate) SetNillableStartedAt(v *time.Time) *SearchSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SearchSessionUpdate) SetCompletedAt(v time.Time) *SearchSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SearchSessionUpdate) SetNillableCompletedAt(v *time.Time) *SearchSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SearchSessionUpdate) ClearCompletedAt() *SearchSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *SearchSessionUpdate) SetErrorCode(v string) *SearchSessionUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *SearchSessionUpdate) SetNillableErrorCode(v *string) *SearchSessionUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *SearchSessionUpdate) ClearErrorCode() *SearchSessionUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SearchSessionUpdate) SetErrorMessage(v string) *SearchSessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SearchSessionUpdate) SetNillableErrorMessage(v *string) *SearchSessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SearchSessionUpdate) ClearErrorMessage() *SearchSessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetTotalRaw sets the "total_raw" field.
func (_u *SearchSessionUpdate) SetTotalRaw(v int) *SearchSessionUpdate {
	_u.mutation.ResetTotalRaw()
	_u.mutation.SetTotalRaw(v)
	return _u
}

// SetNillableTotalRaw sets the "total_raw" field if the given value is not nil.
func (_u *SearchSessionUpdate) SetNillableTotalRaw(v *int) *SearchSessionUpdate {
	if v != nil {
		_u.SetTotalRaw(*v)
	}
	return _u
}

// AddTotalRaw adds value to the "total_raw" field.
func (_u *SearchSessionUpdate) AddTotalRaw(v int) *SearchSessionUpdate {
	_u.mutation.AddTotalRaw(v)
	return _u
}

// SetTotalFiltered sets the "total_filtered" field.
func (_u *SearchSessionUpdate) SetTotalFiltered(v int) *SearchSessionUpdate {
	_u.mutation.ResetTotalFiltered()
	_u.mutation.SetTotalFiltered(v)
	return _u
}

// SetNillableTotalFiltered sets the "total_filtered" field if the given value is not nil.
func (_u *SearchSessionUpdate) SetNillableTotalFiltered(v *int) *SearchSessionUpdate {
	if v != nil {
		_u.SetTotalFiltered(*v)
	}
	return _u
}

// AddTotalFiltered adds value to the "total_filtered" field.
func (_u *SearchSessionUpdate) AddTotalFiltered(v int) *SearchSessionUpdate {
	_u.mutation.AddTotalFiltered(v)
	return _u
}

// SetValorTotal sets the "valor_total" field.
func (_u *SearchSessionUpdate) SetValorTotal(v float64) *SearchSessionUpdate {
	_u.mutation.ResetValorTotal()
	_u.mutation.SetValorTotal(v)
	return _u
}

// SetNillableValorTotal sets the "valor_total" field if the given value is not nil.
func (_u *SearchSessionUpdate) SetNillableValorTotal(v *float64) *SearchSessionUpdate {
	if v != nil {
		_u.SetValorTotal(*v)
	}
	return _u
}

// AddValorTotal adds value to the "valor_total" field.
func (_u *SearchSessionUpdate) AddValorTotal(v float64) *SearchSessionUpdate {
	_u.mutation.AddValorTotal(v)
	return _u
}

// SetResumoExecutivo sets the "resumo_executivo" field.
func (_u *SearchSessionUpdate) SetResumoExecutivo(v string) *SearchSessionUpdate {
	_u.mutation.SetResumoExecutivo(v)
	return _u
}

// SetNillableResumoExecutivo sets the "resumo_executivo" field if the given value is not nil.
func (_u *SearchSessionUpdate) SetNillableResumoExecutivo(v *string) *SearchSessionUpdate {
	if v != nil {
		_u.SetResumoExecutivo(*v)
	}
	return _u
}

// ClearResumoExecutivo clears the value of the "resumo_executivo" field.
func (_u *SearchSessionUpdate) ClearResumoExecutivo() *SearchSessionUpdate {
	_u.mutation.ClearResumoExecutivo()
	return _u
}

// SetDestaques sets the "destaques" field.
func (_u *SearchSessionUpdate) SetDestaques(v []map[string]interface{}) *SearchSessionUpdate {
	_u.mutation.SetDestaques(v)
	return _u
}

// AppendDestaques appends value to the "destaques" field.
func (_u *SearchSessionUpdate) AppendDestaques(v []map[string]interface{}) *SearchSessionUpdate {
	_u.mutation.AppendDestaques(v)
	return _u
}

// ClearDestaques clears the value of the "destaques" field.
func (_u *SearchSessionUpdate) ClearDestaques() *SearchSessionUpdate {
	_u.mutation.ClearDestaques()
	return _u
}

// SetExcelPath sets the "excel_path" field.
func (_u *SearchSessionUpdate) SetExcelPath(v string) *SearchSessionUpdate {
	_u.mutation.SetExcelPath(v)
	return _u
}

// SetNillableExcelPath sets the "excel_path" field if the given value is not nil.
func (_u *SearchSessionUpdate) SetNillableExcelPath(v *string) *SearchSessionUpdate {
	if v != nil {
		_u.SetExcelPath(*v)
	}
	return _u
}

// ClearExcelPath clears the value of the "excel_path" field.
func (_u *SearchSessionUpdate) ClearExcelPath() *SearchSessionUpdate {
	_u.mutation.ClearExcelPath()
	return _u
}

// AddTransitionIDs adds the "transitions" edge to the SearchStateTransition entity by IDs.
func (_u *SearchSessionUpdate) AddTransitionIDs(ids ...int) *SearchSessionUpdate {
	_u.mutation.AddTransitionIDs(ids...)
	return _u
}

// AddTransitions adds the "transitions" edges to the SearchStateTransition entity.
func (_u *SearchSessionUpdate) AddTransitions(v ...*SearchStateTransition) *SearchSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransitionIDs(ids...)
}

// Mutation returns the SearchSessionMutation object of the builder.
func (_u *SearchSessionUpdate) Mutation() *SearchSessionMutation {
	return _u.mutation
}

// ClearTransitions clears all "transitions" edges to the SearchStateTransition entity.
func (_u *SearchSessionUpdate) ClearTransitions() *SearchSessionUpdate {
	_u.mutation.ClearTransitions()
	return _u
}

// RemoveTransitionIDs removes the "transitions" edge to SearchStateTransition entities by IDs.
func (_u *SearchSessionUpdate) RemoveTransitionIDs(ids ...int) *SearchSessionUpdate {
	_u.mutation.RemoveTransitionIDs(ids...)
	return _u
}

// RemoveTransitions removes "transitions" edges to SearchStateTransition entities.
func (_u *SearchSessionUpdate) RemoveTransitions(v ...*SearchStateTransition) *SearchSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransitionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SearchSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SearchSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SearchSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SearchSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SearchSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := searchsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SearchSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SearchSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(searchsession.Table, searchsession.Columns, sqlgraph.NewFieldSpec(searchsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(searchsession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(searchsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PipelineStage(); ok {
		_spec.SetField(searchsession.FieldPipelineStage, field.TypeString, value)
	}
	if _u.mutation.PipelineStageCleared() {
		_spec.ClearField(searchsession.FieldPipelineStage, field.TypeString)
	}
	if value, ok := _u.mutation.Sectors(); ok {
		_spec.SetField(searchsession.FieldSectors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSectors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, searchsession.FieldSectors, value)
		})
	}
	if _u.mutation.SectorsCleared() {
		_spec.ClearField(searchsession.FieldSectors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Ufs(); ok {
		_spec.SetField(searchsession.FieldUfs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUfs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, searchsession.FieldUfs, value)
		})
	}
	if _u.mutation.UfsCleared() {
		_spec.ClearField(searchsession.FieldUfs, field.TypeJSON)
	}
	if value, ok := _u.mutation.DataInicial(); ok {
		_spec.SetField(searchsession.FieldDataInicial, field.TypeTime, value)
	}
	if _u.mutation.DataInicialCleared() {
		_spec.ClearField(searchsession.FieldDataInicial, field.TypeTime)
	}
	if value, ok := _u.mutation.DataFinal(); ok {
		_spec.SetField(searchsession.FieldDataFinal, field.TypeTime, value)
	}
	if _u.mutation.DataFinalCleared() {
		_spec.ClearField(searchsession.FieldDataFinal, field.TypeTime)
	}
	if value, ok := _u.mutation.CustomKeywords(); ok {
		_spec.SetField(searchsession.FieldCustomKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCustomKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, searchsession.FieldCustomKeywords, value)
		})
	}
	if _u.mutation.CustomKeywordsCleared() {
		_spec.ClearField(searchsession.FieldCustomKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.Filters(); ok {
		_spec.SetField(searchsession.FieldFilters, field.TypeJSON, value)
	}
	if _u.mutation.FiltersCleared() {
		_spec.ClearField(searchsession.FieldFilters, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(searchsession.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(searchsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(searchsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(searchsession.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(searchsession.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(searchsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(searchsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.TotalRaw(); ok {
		_spec.SetField(searchsession.FieldTotalRaw, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalRaw(); ok {
		_spec.AddField(searchsession.FieldTotalRaw, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalFiltered(); ok {
		_spec.SetField(searchsession.FieldTotalFiltered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalFiltered(); ok {
		_spec.AddField(searchsession.FieldTotalFiltered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ValorTotal(); ok {
		_spec.SetField(searchsession.FieldValorTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValorTotal(); ok {
		_spec.AddField(searchsession.FieldValorTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ResumoExecutivo(); ok {
		_spec.SetField(searchsession.FieldResumoExecutivo, field.TypeString, value)
	}
	if _u.mutation.ResumoExecutivoCleared() {
		_spec.ClearField(searchsession.FieldResumoExecutivo, field.TypeString)
	}
	if value, ok := _u.mutation.Destaques(); ok {
		_spec.SetField(searchsession.FieldDestaques, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDestaques(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, searchsession.FieldDestaques, value)
		})
	}
	if _u.mutation.DestaquesCleared() {
		_spec.ClearField(searchsession.FieldDestaques, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExcelPath(); ok {
		_spec.SetField(searchsession.FieldExcelPath, field.TypeString, value)
	}
	if _u.mutation.ExcelPathCleared() {
		_spec.ClearField(searchsession.FieldExcelPath, field.TypeString)
	}
	if _u.mutation.TransitionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   searchsession.TransitionsTable,
			Columns: []string{searchsession.TransitionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(searchstatetransition.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTransitionsIDs(); len(nodes) > 0 && !_u.mutation.TransitionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   searchsession.TransitionsTable,
			Columns: []string{searchsession.TransitionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(searchstatetransition.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransitionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   searchsession.TransitionsTable,
			Columns: []string{searchsession.TransitionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(searchstatetransition.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{searchsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SearchSessionUpdateOne is the builder for updating a single SearchSession entity.
type SearchSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SearchSessionMutation
}

// SetUserID sets the "user_id" field.
func (_u *SearchSessionUpdateOne) SetUserID(v string) *SearchSessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SearchSessionUpdateOne) SetNillableUserID(v *string) *SearchSessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SearchSessionUpdateOne) SetStatus(v searchsession.Status) *SearchSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SearchSessionUpdateOne) SetNillableStatus(v *searchsession.Status) *SearchSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPipelineStage sets the "pipeline_stage" field.
func (_u *SearchSessionUpdateOne) SetPipelineStage(v string) *SearchSessionUpdateOne {
	_u.mutation.SetPipelineStage(v)
	return _u
}

// SetNillablePipelineStage sets the "pipeline_stage" field if the given value is not nil.
func (_u *SearchSessionUpdateOne) SetNillablePipelineStage(v *string) *SearchSessionUpdateOne {
	if v != nil {
		_u.SetPipelineStage(*v)
	}
	return _u
}

// ClearPipelineStage clears the value of the "pipeline_stage" field.
func (_u *SearchSessionUpdateOne) ClearPipelineStage() *SearchSessionUpdateOne {
	_u.mutation.ClearPipelineStage()
	return _u
}

// SetSectors sets the "sectors" field.
func (_u *SearchSessionUpdateOne) SetSectors(v []string) *SearchSessionUpdateOne {
	_u.mutation.SetSectors(v)
	return _u
}

// AppendSectors appends value to the "sectors" field.
func (_u *SearchSessionUpdateOne) AppendSectors(v []string) *SearchSessionUpdateOne {
	_u.mutation.AppendSectors(v)
	return _u
}

// ClearSectors clears the value of the "sectors" field.
func (_u *SearchSessionUpdateOne) ClearSectors() *SearchSessionUpdateOne {
	_u.mutation.ClearSectors()
	return _u
}

// SetUfs sets the "ufs" field.
func (_u *SearchSessionUpdateOne) SetUfs(v []string) *SearchSessionUpdateOne {
	_u.mutation.SetUfs(v)
	return _u
}

// AppendUfs appends value to the "ufs" field.
func (_u *SearchSessionUpdateOne) AppendUfs(v []string) *SearchSessionUpdateOne {
	_u.mutation.AppendUfs(v)
	return _u
}

// ClearUfs clears the value of the "ufs" field.
func (_u *SearchSessionUpdateOne) ClearUfs() *SearchSessionUpdateOne {
	_u.mutation.ClearUfs()
	return _u
}

// SetDataInicial sets the "data_inicial" field.
func (_u *SearchSessionUpdateOne) SetDataInicial(v time.Time) *SearchSessionUpdateOne {
	_u.mutation.SetDataInicial(v)
	return _u
}

// SetNillableDataInicial sets the "data_inicial" field if the given value is not nil.
func (_u *SearchSessionUpdateOne) SetNillableDataInicial(v *time.Time) *SearchSessionUpdateOne {
	if v != nil {
		_u.SetDataInicial(*v)
	}
	return _u
}

// ClearDataInicial clears the value of the "data_inicial" field.
func (_u *SearchSessionUpdateOne) ClearDataInicial() *SearchSessionUpdateOne {
	_u.mutation.ClearDataInicial()
	return _u
}

// SetDataFinal sets the "data_final" field.
func (_u *SearchSessionUpdateOne) SetDataFinal(v time.Time) *SearchSessionUpdateOne {
	_u.mutation.SetDataFinal(v)
	return _u
}

// SetNillableDataFinal sets the "data_final" field if the given value is not nil.
func (_u *SearchSessionUpdateOne) SetNillableDataFinal(v *time.Time) *SearchSessionUpdateOne {
	if v != nil {
		_u.SetDataFinal(*v)
	}
	return _u
}

// ClearDataFinal clears the value of the "data_final" field.
func (_u *SearchSessionUpdateOne) ClearDataFinal() *SearchSessionUpdateOne {
	_u.mutation.ClearDataFinal()
	return _u
}

// SetCustomKeywords sets the "custom_keywords" field.
func (_u *SearchSessionUpdateOne) SetCustomKeywords(v []string) *SearchSessionUpdateOne {
	_u.mutation.SetCustomKeywords(v)
	return _u
}

// AppendCustomKeywords appends value to the "custom_keywords" field.
func (_u *SearchSessionUpdateOne) AppendCustomKeywords(v []string) *SearchSessionUpdateOne {
	_u.mutation.AppendCustomKeywords(v)
	return _u
}

// ClearCustomKeywords clears the value of the "custom_keywords" field.
func (_u *SearchSessionUpdateOne) ClearCustomKeywords() *SearchSessionUpdateOne {
	_u.mutation.ClearCustomKeywords()
	return _u
}

// SetFilters sets the "filters" field.
func (_u *SearchSessionUpdateOne) SetFilters(v map[string]interface{}) *SearchSessionUpdateOne {
	_u.mutation.SetFilters(v)
	return _u
}

// ClearFilters clears the value of the "filters" field.
func (_u *SearchSessionUpdateOne) ClearFilters() *SearchSessionUpdateOne {
	_u.mutation.ClearFilters()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SearchSessionUpdateOne) SetStartedAt(v time.Time) *SearchSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SearchSessionUpdateOne) SetNillableStartedAt(v *time.Time) *SearchSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SearchSessionUpdateOne) SetCompletedAt(v time.Time) *SearchSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SearchSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *SearchSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SearchSessionUpdateOne) ClearCompletedAt() *SearchSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *SearchSessionUpdateOne) SetErrorCode(v string) *SearchSessionUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *SearchSessionUpdateOne) SetNillableErrorCode(v *string) *SearchSessionUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *SearchSessionUpdateOne) ClearErrorCode() *SearchSessionUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SearchSessionUpdateOne) SetErrorMessage(v string) *SearchSessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SearchSessionUpdateOne) SetNillableErrorMessage(v *string) *SearchSessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SearchSessionUpdateOne) ClearErrorMessage() *SearchSessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetTotalRaw sets the "total_raw" field.
func (_u *SearchSessionUpdateOne) SetTotalRaw(v int) *SearchSessionUpdateOne {
	_u.mutation.ResetTotalRaw()
	_u.mutation.SetTotalRaw(v)
	return _u
}

// SetNillableTotalRaw sets the "total_raw" field if the given value is not nil.
func (_u *SearchSessionUpdateOne) SetNillableTotalRaw(v *int) *SearchSessionUpdateOne {
	if v != nil {
		_u.SetTotalRaw(*v)
	}
	return _u
}

// AddTotalRaw adds value to the "total_raw" field.
func (_u *SearchSessionUpdateOne) AddTotalRaw(v int) *SearchSessionUpdateOne {
	_u.mutation.AddTotalRaw(v)
	return _u
}

// SetTotalFiltered sets the "total_filtered" field.
func (_u *SearchSessionUpdateOne) SetTotalFiltered(v int) *SearchSessionUpdateOne {
	_u.mutation.ResetTotalFiltered()
	_u.mutation.SetTotalFiltered(v)
	return _u
}

// SetNillableTotalFiltered sets the "total_filtered" field if the given value is not nil.
func (_u *SearchSessionUpdateOne) SetNillableTotalFiltered(v *int) *SearchSessionUpdateOne {
	if v != nil {
		_u.SetTotalFiltered(*v)
	}
	return _u
}

// AddTotalFiltered adds value to the "total_filtered" field.
func (_u *SearchSessionUpdateOne) AddTotalFiltered(v int) *SearchSessionUpdateOne {
	_u.mutation.AddTotalFiltered(v)
	return _u
}

// SetValorTotal sets the "valor_total" field.
func (_u *SearchSessionUpdateOne) SetValorTotal(v float64) *SearchSessionUpdateOne {
	_u.mutation.ResetValorTotal()
	_u.mutation.SetValorTotal(v)
	return _u
}

// SetNillableValorTotal sets the "valor_total" field if the given value is not nil.
func (_u *SearchSessionUpdateOne) SetNillableValorTotal(v *float64) *SearchSessionUpdateOne {
	if v != nil {
		_u.SetValorTotal(*v)
	}
	return _u
}

// AddValorTotal adds value to the "valor_total" field.
func (_u *SearchSessionUpdateOne) AddValorTotal(v float64) *SearchSessionUpdateOne {
	_u.mutation.AddValorTotal(v)
	return _u
}

// SetResumoExecutivo sets the "resumo_executivo" field.
func (_u *SearchSessionUpdateOne) SetResumoExecutivo(v string) *SearchSessionUpdateOne {
	_u.mutation.SetResumoExecutivo(v)
	return _u
}

// SetNillableResumoExecutivo sets the "resumo_executivo" field if the given value is not nil.
func (_u *SearchSessionUpdateOne) SetNillableResumoExecutivo(v *string) *SearchSessionUpdateOne {
	if v != nil {
		_u.SetResumoExecutivo(*v)
	}
	return _u
}

// ClearResumoExecutivo clears the value of the "resumo_executivo" field.
func (_u *SearchSessionUpdateOne) ClearResumoExecutivo() *SearchSessionUpdateOne {
	_u.mutation.ClearResumoExecutivo()
	return _u
}

// SetDestaques sets the "destaques" field.
func (_u *SearchSessionUpdateOne) SetDestaques(v []map[string]interface{}) *SearchSessionUpdateOne {
	_u.mutation.SetDestaques(v)
	return _u
}

// AppendDestaques appends value to the "destaques" field.
func (_u *SearchSessionUpdateOne) AppendDestaques(v []map[string]interface{}) *SearchSessionUpdateOne {
	_u.mutation.AppendDestaques(v)
	return _u
}

// ClearDestaques clears the value of the "destaques" field.
func (_u *SearchSessionUpdateOne) ClearDestaques() *SearchSessionUpdateOne {
	_u.mutation.ClearDestaques()
	return _u
}

// SetExcelPath sets the "excel_path" field.
func (_u *SearchSessionUpdateOne) SetExcelPath(v string) *SearchSessionUpdateOne {
	_u.mutation.SetExcelPath(v)
	return _u
}

// SetNillableExcelPath sets the "excel_path" field if the given value is not nil.
func (_u *SearchSessionUpdateOne) SetNillableExcelPath(v *string) *SearchSessionUpdateOne {
	if v != nil {
		_u.SetExcelPath(*v)
	}
	return _u
}

// ClearExcelPath clears the value of the "excel_path" field.
func (_u *SearchSessionUpdateOne) ClearExcelPath() *SearchSessionUpdateOne {
	_u.mutation.ClearExcelPath()
	return _u
}

// AddTransitionIDs adds the "transitions" edge to the SearchStateTransition entity by IDs.
func (_u *SearchSessionUpdateOne) AddTransitionIDs(ids ...int) *SearchSessionUpdateOne {
	_u.mutation.AddTransitionIDs(ids...)
	return _u
}

// AddTransitions adds the "transitions" edges to the SearchStateTransition entity.
func (_u *SearchSessionUpdateOne) AddTransitions(v ...*SearchStateTransition) *SearchSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransitionIDs(ids...)
}

// Mutation returns the SearchSessionMutation object of the builder.
func (_u *SearchSessionUpdateOne) Mutation() *SearchSessionMutation {
	return _u.mutation
}

// ClearTransitions clears all "transitions" edges to the SearchStateTransition entity.
func (_u *SearchSessionUpdateOne) ClearTransitions() *SearchSessionUpdateOne {
	_u.mutation.ClearTransitions()
	return _u
}

// RemoveTransitionIDs removes the "transitions" edge to SearchStateTransition entities by IDs.
func (_u *SearchSessionUpdateOne) RemoveTransitionIDs(ids ...int) *SearchSessionUpdateOne {
	_u.mutation.RemoveTransitionIDs(ids...)
	return _u
}

// RemoveTransitions removes "transitions" edges to SearchStateTransition entities.
func (_u *SearchSessionUpdateOne) RemoveTransitions(v ...*SearchStateTransition) *SearchSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransitionIDs(ids...)
}

// Where appends a list predicates to the SearchSessionUpdate builder.
func (_u *SearchSessionUpdateOne) Where(ps ...predicate.SearchSession) *SearchSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SearchSessionUpdateOne) Select(field string, fields ...string) *SearchSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SearchSession entity.
func (_u *SearchSessionUpdateOne) Save(ctx context.Context) (*SearchSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SearchSessionUpdateOne) SaveX(ctx context.Context) *SearchSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SearchSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SearchSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SearchSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := searchsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SearchSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SearchSessionUpdateOne) sqlSave(ctx context.Context) (_node *SearchSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(searchsession.Table, searchsession.Columns, sqlgraph.NewFieldSpec(searchsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SearchSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, searchsession.FieldID)
		for _, f := range fields {
			if !searchsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != searchsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(searchsession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(searchsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PipelineStage(); ok {
		_spec.SetField(searchsession.FieldPipelineStage, field.TypeString, value)
	}
	if _u.mutation.PipelineStageCleared() {
		_spec.ClearField(searchsession.FieldPipelineStage, field.TypeString)
	}
	if value, ok := _u.mutation.Sectors(); ok {
		_spec.SetField(searchsession.FieldSectors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSectors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, searchsession.FieldSectors, value)
		})
	}
	if _u.mutation.SectorsCleared() {
		_spec.ClearField(searchsession.FieldSectors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Ufs(); ok {
		_spec.SetField(searchsession.FieldUfs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUfs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, searchsession.FieldUfs, value)
		})
	}
	if _u.mutation.UfsCleared() {
		_spec.ClearField(searchsession.FieldUfs, field.TypeJSON)
	}
	if value, ok := _u.mutation.DataInicial(); ok {
		_spec.SetField(searchsession.FieldDataInicial, field.TypeTime, value)
	}
	if _u.mutation.DataInicialCleared() {
		_spec.ClearField(searchsession.FieldDataInicial, field.TypeTime)
	}
	if value, ok := _u.mutation.DataFinal(); ok {
		_spec.SetField(searchsession.FieldDataFinal, field.TypeTime, value)
	}
	if _u.mutation.DataFinalCleared() {
		_spec.ClearField(searchsession.FieldDataFinal, field.TypeTime)
	}
	if value, ok := _u.mutation.CustomKeywords(); ok {
		_spec.SetField(searchsession.FieldCustomKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCustomKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, searchsession.FieldCustomKeywords, value)
		})
	}
	if _u.mutation.CustomKeywordsCleared() {
		_spec.ClearField(searchsession.FieldCustomKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.Filters(); ok {
		_spec.SetField(searchsession.FieldFilters, field.TypeJSON, value)
	}
	if _u.mutation.FiltersCleared() {
		_spec.ClearField(searchsession.FieldFilters, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(searchsession.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(searchsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(searchsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(searchsession.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(searchsession.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(searchsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(searchsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.TotalRaw(); ok {
		_spec.SetField(searchsession.FieldTotalRaw, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalRaw(); ok {
		_spec.AddField(searchsession.FieldTotalRaw, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalFiltered(); ok {
		_spec.SetField(searchsession.FieldTotalFiltered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalFiltered(); ok {
		_spec.AddField(searchsession.FieldTotalFiltered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ValorTotal(); ok {
		_spec.SetField(searchsession.FieldValorTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValorTotal(); ok {
		_spec.AddField(searchsession.FieldValorTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ResumoExecutivo(); ok {
		_spec.SetField(searchsession.FieldResumoExecutivo, field.TypeString, value)
	}
	if _u.mutation.ResumoExecutivoCleared() {
		_spec.ClearField(searchsession.FieldResumoExecutivo, field.TypeString)
	}
	if value, ok := _u.mutation.Destaques(); ok {
		_spec.SetField(searchsession.FieldDestaques, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDestaques(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, searchsession.FieldDestaques, value)
		})
	}
	if _u.mutation.DestaquesCleared() {
		_spec.ClearField(searchsession.FieldDestaques, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExcelPath(); ok {
		_spec.SetField(searchsession.FieldExcelPath, field.TypeString, value)
	}
	if _u.mutation.ExcelPathCleared() {
		_spec.ClearField(searchsession.FieldExcelPath, field.TypeString)
	}
	if _u.mutation.TransitionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   searchsession.TransitionsTable,
			Columns: []string{searchsession.TransitionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(searchstatetransition.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTransitionsIDs(); len(nodes) > 0 && !_u.mutation.TransitionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   searchsession.TransitionsTable,
			Columns: []string{searchsession.TransitionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(searchstatetransition.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransitionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   searchsession.TransitionsTable,
			Columns: []string{searchsession.TransitionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(searchstatetransition.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SearchSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{searchsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
