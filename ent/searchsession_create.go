// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bidiq/bidiq/ent/searchsession"
	"github.com/bidiq/bidiq/ent/searchstatetransition"
)

// SearchSessionCreate is the builder for creating a SearchSession entity.
type SearchSessionCreate struct {
	config
	mutation *SearchSessionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *SearchSessionCreate) SetUserID(v string) *SearchSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SearchSessionCreate) SetStatus(v searchsession.Status) *SearchSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SearchSessionCreate) SetNillableStatus(v *searchsession.Status) *SearchSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPipelineStage sets the "pipeline_stage" field.
func (_c *SearchSessionCreate) SetPipelineStage(v string) *SearchSessionCreate {
	_c.mutation.SetPipelineStage(v)
	return _c
}

// SetNillablePipelineStage sets the "pipeline_stage" field if the given value is not nil.
func (_c *SearchSessionCreate) SetNillablePipelineStage(v *string) *SearchSessionCreate {
	if v != nil {
		_c.SetPipelineStage(*v)
	}
	return _c
}

// SetSectors sets the "sectors" field.
func (_c *SearchSessionCreate) SetSectors(v []string) *SearchSessionCreate {
	_c.mutation.SetSectors(v)
	return _c
}

// SetUfs sets the "ufs" field.
func (_c *SearchSessionCreate) SetUfs(v []string) *SearchSessionCreate {
	_c.mutation.SetUfs(v)
	return _c
}

// SetDataInicial sets the "data_inicial" field.
func (_c *SearchSessionCreate) SetDataInicial(v time.Time) *SearchSessionCreate {
	_c.mutation.SetDataInicial(v)
	return _c
}

// SetNillableDataInicial sets the "data_inicial" field if the given value is not nil.
func (_c *SearchSessionCreate) SetNillableDataInicial(v *time.Time) *SearchSessionCreate {
	if v != nil {
		_c.SetDataInicial(*v)
	}
	return _c
}

// SetDataFinal sets the "data_final" field.
func (_c *SearchSessionCreate) SetDataFinal(v time.Time) *SearchSessionCreate {
	_c.mutation.SetDataFinal(v)
	return _c
}

// SetNillableDataFinal sets the "data_final" field if the given value is not nil.
func (_c *SearchSessionCreate) SetNillableDataFinal(v *time.Time) *SearchSessionCreate {
	if v != nil {
		_c.SetDataFinal(*v)
	}
	return _c
}

// SetCustomKeywords sets the "custom_keywords" field.
func (_c *SearchSessionCreate) SetCustomKeywords(v []string) *SearchSessionCreate {
	_c.mutation.SetCustomKeywords(v)
	return _c
}

// SetFilters sets the "filters" field.
func (_c *SearchSessionCreate) SetFilters(v map[string]interface{}) *SearchSessionCreate {
	_c.mutation.SetFilters(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SearchSessionCreate) SetStartedAt(v time.Time) *SearchSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *SearchSessionCreate) SetNillableStartedAt(v *time.Time) *SearchSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SearchSessionCreate) SetCompletedAt(v time.Time) *SearchSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SearchSessionCreate) SetNillableCompletedAt(v *time.Time) *SearchSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *SearchSessionCreate) SetErrorCode(v string) *SearchSessionCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *SearchSessionCreate) SetNillableErrorCode(v *string) *SearchSessionCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SearchSessionCreate) SetErrorMessage(v string) *SearchSessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SearchSessionCreate) SetNillableErrorMessage(v *string) *SearchSessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetTotalRaw sets the "total_raw" field.
func (_c *SearchSessionCreate) SetTotalRaw(v int) *SearchSessionCreate {
	_c.mutation.SetTotalRaw(v)
	return _c
}

// SetNillableTotalRaw sets the "total_raw" field if the given value is not nil.
func (_c *SearchSessionCreate) SetNillableTotalRaw(v *int) *SearchSessionCreate {
	if v != nil {
		_c.SetTotalRaw(*v)
	}
	return _c
}

// SetTotalFiltered sets the "total_filtered" field.
func (_c *SearchSessionCreate) SetTotalFiltered(v int) *SearchSessionCreate {
	_c.mutation.SetTotalFiltered(v)
	return _c
}

// SetNillableTotalFiltered sets the "total_filtered" field if the given value is not nil.
func (_c *SearchSessionCreate) SetNillableTotalFiltered(v *int) *SearchSessionCreate {
	if v != nil {
		_c.SetTotalFiltered(*v)
	}
	return _c
}

// SetValorTotal sets the "valor_total" field.
func (_c *SearchSessionCreate) SetValorTotal(v float64) *SearchSessionCreate {
	_c.mutation.SetValorTotal(v)
	return _c
}

// SetNillableValorTotal sets the "valor_total" field if the given value is not nil.
func (_c *SearchSessionCreate) SetNillableValorTotal(v *float64) *SearchSessionCreate {
	if v != nil {
		_c.SetValorTotal(*v)
	}
	return _c
}

// SetResumoExecutivo sets the "resumo_executivo" field.
func (_c *SearchSessionCreate) SetResumoExecutivo(v string) *SearchSessionCreate {
	_c.mutation.SetResumoExecutivo(v)
	return _c
}

// SetNillableResumoExecutivo sets the "resumo_executivo" field if the given value is not nil.
func (_c *SearchSessionCreate) SetNillableResumoExecutivo(v *string) *SearchSessionCreate {
	if v != nil {
		_c.SetResumoExecutivo(*v)
	}
	return _c
}

// SetDestaques sets the "destaques" field.
func (_c *SearchSessionCreate) SetDestaques(v []map[string]interface{}) *SearchSessionCreate {
	_c.mutation.SetDestaques(v)
	return _c
}

// SetExcelPath sets the "excel_path" field.
func (_c *SearchSessionCreate) SetExcelPath(v string) *SearchSessionCreate {
	_c.mutation.SetExcelPath(v)
	return _c
}

// SetNillableExcelPath sets the "excel_path" field if the given value is not nil.
func (_c *SearchSessionCreate) SetNillableExcelPath(v *string) *SearchSessionCreate {
	if v != nil {
		_c.SetExcelPath(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SearchSessionCreate) SetCreatedAt(v time.Time) *SearchSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SearchSessionCreate) SetNillableCreatedAt(v *time.Time) *SearchSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SearchSessionCreate) SetID(v string) *SearchSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddTransitionIDs adds the "transitions" edge to the SearchStateTransition entity by IDs.
func (_c *SearchSessionCreate) AddTransitionIDs(ids ...int) *SearchSessionCreate {
	_c.mutation.AddTransitionIDs(ids...)
	return _c
}

// AddTransitions adds the "transitions" edges to the SearchStateTransition entity.
func (_c *SearchSessionCreate) AddTransitions(v ...*SearchStateTransition) *SearchSessionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTransitionIDs(ids...)
}

// Mutation returns the SearchSessionMutation object of the builder.
func (_c *SearchSessionCreate) Mutation() *SearchSessionMutation {
	return _c.mutation
}

// Save creates the SearchSession in the database.
func (_c *SearchSessionCreate) Save(ctx context.Context) (*SearchSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SearchSessionCreate) SaveX(ctx context.Context) *SearchSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SearchSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SearchSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SearchSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := searchsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := searchsession.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.TotalRaw(); !ok {
		v := searchsession.DefaultTotalRaw
		_c.mutation.SetTotalRaw(v)
	}
	if _, ok := _c.mutation.TotalFiltered(); !ok {
		v := searchsession.DefaultTotalFiltered
		_c.mutation.SetTotalFiltered(v)
	}
	if _, ok := _c.mutation.ValorTotal(); !ok {
		v := searchsession.DefaultValorTotal
		_c.mutation.SetValorTotal(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := searchsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SearchSessionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SearchSession.user_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SearchSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := searchsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SearchSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "SearchSession.started_at"`)}
	}
	if _, ok := _c.mutation.TotalRaw(); !ok {
		return &ValidationError{Name: "total_raw", err: errors.New(`ent: missing required field "SearchSession.total_raw"`)}
	}
	if _, ok := _c.mutation.TotalFiltered(); !ok {
		return &ValidationError{Name: "total_filtered", err: errors.New(`ent: missing required field "SearchSession.total_filtered"`)}
	}
	if _, ok := _c.mutation.ValorTotal(); !ok {
		return &ValidationError{Name: "valor_total", err: errors.New(`ent: missing required field "SearchSession.valor_total"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SearchSession.created_at"`)}
	}
	return nil
}

func (_c *SearchSessionCreate) sqlSave(ctx context.Context) (*SearchSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SearchSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SearchSessionCreate) createSpec() (*SearchSession, *sqlgraph.CreateSpec) {
	var (
		_node = &SearchSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(searchsession.Table, sqlgraph.NewFieldSpec(searchsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(searchsession.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(searchsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PipelineStage(); ok {
		_spec.SetField(searchsession.FieldPipelineStage, field.TypeString, value)
		_node.PipelineStage = value
	}
	if value, ok := _c.mutation.Sectors(); ok {
		_spec.SetField(searchsession.FieldSectors, field.TypeJSON, value)
		_node.Sectors = value
	}
	if value, ok := _c.mutation.Ufs(); ok {
		_spec.SetField(searchsession.FieldUfs, field.TypeJSON, value)
		_node.Ufs = value
	}
	if value, ok := _c.mutation.DataInicial(); ok {
		_spec.SetField(searchsession.FieldDataInicial, field.TypeTime, value)
		_node.DataInicial = &value
	}
	if value, ok := _c.mutation.DataFinal(); ok {
		_spec.SetField(searchsession.FieldDataFinal, field.TypeTime, value)
		_node.DataFinal = &value
	}
	if value, ok := _c.mutation.CustomKeywords(); ok {
		_spec.SetField(searchsession.FieldCustomKeywords, field.TypeJSON, value)
		_node.CustomKeywords = value
	}
	if value, ok := _c.mutation.Filters(); ok {
		_spec.SetField(searchsession.FieldFilters, field.TypeJSON, value)
		_node.Filters = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(searchsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(searchsession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(searchsession.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(searchsession.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.TotalRaw(); ok {
		_spec.SetField(searchsession.FieldTotalRaw, field.TypeInt, value)
		_node.TotalRaw = value
	}
	if value, ok := _c.mutation.TotalFiltered(); ok {
		_spec.SetField(searchsession.FieldTotalFiltered, field.TypeInt, value)
		_node.TotalFiltered = value
	}
	if value, ok := _c.mutation.ValorTotal(); ok {
		_spec.SetField(searchsession.FieldValorTotal, field.TypeFloat64, value)
		_node.ValorTotal = value
	}
	if value, ok := _c.mutation.ResumoExecutivo(); ok {
		_spec.SetField(searchsession.FieldResumoExecutivo, field.TypeString, value)
		_node.ResumoExecutivo = &value
	}
	if value, ok := _c.mutation.Destaques(); ok {
		_spec.SetField(searchsession.FieldDestaques, field.TypeJSON, value)
		_node.Destaques = value
	}
	if value, ok := _c.mutation.ExcelPath(); ok {
		_spec.SetField(searchsession.FieldExcelPath, field.TypeString, value)
		_node.ExcelPath = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(searchsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TransitionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SearchSessionCreateBulk is the builder for creating many SearchSession entities in bulk.
type SearchSessionCreateBulk struct {
	config
	err      error
	builders []*SearchSessionCreate
}

// Save creates the SearchSession entities in the database.
func (_c *SearchSessionCreateBulk) Save(ctx context.Context) ([]*SearchSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SearchSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SearchSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SearchSessionCreateBulk) SaveX(ctx context.Context) []*SearchSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SearchSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SearchSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
